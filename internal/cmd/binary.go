package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/paths"
	"github.com/capterqa/capter-shim/internal/platform"
	"github.com/capterqa/capter-shim/internal/release"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
)

// Swapped in tests
var (
	currentPlatform = platform.Current
	httpClient      = &http.Client{}
)

// resolveBinary validates the configuration and builds the descriptor of
// the binary for the running platform
func resolveBinary(cfg *config.Config, version string) (core.SupportedPlatform, *core.BinaryDescriptor, error) {
	if err := cfg.Validate(); err != nil {
		return core.SupportedPlatform{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	p, err := currentPlatform()
	if err != nil {
		return core.SupportedPlatform{}, nil, err
	}

	desc, err := paths.NewResolver(cfg).Descriptor(p, version)
	if err != nil {
		return core.SupportedPlatform{}, nil, fmt.Errorf("resolve binary: %w", err)
	}

	return p, desc, nil
}

// readToken returns the credential named by release.token_env
func readToken(cfg *config.Config) string {
	if cfg.Release.TokenEnv == "" {
		return ""
	}
	return os.Getenv(cfg.Release.TokenEnv)
}

// newLocator builds the configured strategy. With the authenticated
// strategy and no credential it fails before any request is possible.
func newLocator(cfg *config.Config, log *zerolog.Logger) (release.Locator, error) {
	return release.NewLocator(cfg.Release, readToken(cfg), httpClient, log)
}

// reportError prints err for the user. Unsupported platforms also get the
// table of supported ones.
func reportError(err error) {
	ui.PrintError("%v", err)

	var unsupported *core.UnsupportedPlatformError
	if errors.As(err, &unsupported) {
		fmt.Fprintf(ui.Stderr(), "Your system must be one of the following:\n\n")
		if rerr := platform.RenderTable(ui.Stderr(), unsupported.Supported); rerr != nil {
			ui.PrintError("%v", rerr)
		}
	}
}
