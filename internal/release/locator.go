// Package release resolves the download source of a binary for the current
// target. Three interchangeable strategies exist: building the tag URL
// directly, searching the public release listing, and searching it with a
// bearer credential.
package release

import (
	"context"
	"fmt"
	"net/http"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/rs/zerolog"
)

// Locator resolves a fetchable source for a descriptor
type Locator interface {
	// Name returns the strategy name
	Name() string

	// Locate returns the URL and headers to download the descriptor's asset
	Locate(ctx context.Context, desc *core.BinaryDescriptor) (*core.Source, error)
}

// NewLocator builds the strategy selected by cfg.Strategy.
// For the authenticated strategy an empty token fails here, before any
// client exists, so no request can be issued without the credential.
func NewLocator(cfg config.ReleaseConfig, token string, httpClient *http.Client, log *zerolog.Logger) (Locator, error) {
	switch core.Strategy(cfg.Strategy) {
	case core.StrategyDirect:
		return NewDirectLocator(cfg.DownloadHost, cfg.UserAgent, log), nil

	case core.StrategyPublic:
		client := NewClient(httpClient, cfg.APIHost, cfg.UserAgent, "", log)
		return NewListingLocator(client, log), nil

	case core.StrategyAuthenticated:
		if token == "" {
			return nil, &core.MissingCredentialError{EnvVar: cfg.TokenEnv}
		}
		client := NewClient(httpClient, cfg.APIHost, cfg.UserAgent, token, log)
		return NewListingLocator(client, log), nil

	default:
		return nil, fmt.Errorf("unknown release strategy %q", cfg.Strategy)
	}
}
