package release

import (
	"context"
	"fmt"
	"net/http"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/rs/zerolog"
)

// DirectLocator builds the download URL from the release tag naming convention.
// It performs no network call; a wrong guess surfaces as a download error.
type DirectLocator struct {
	downloadHost string
	userAgent    string
	logger       *zerolog.Logger
}

// NewDirectLocator creates a tag-based locator
func NewDirectLocator(downloadHost, userAgent string, log *zerolog.Logger) *DirectLocator {
	return &DirectLocator{
		downloadHost: downloadHost,
		userAgent:    userAgent,
		logger:       log,
	}
}

// Name returns the strategy name
func (l *DirectLocator) Name() string {
	return string(core.StrategyDirect)
}

// Locate returns <host>/<repo>/releases/download/v<version>/<name>-v<version>-<target>
func (l *DirectLocator) Locate(_ context.Context, desc *core.BinaryDescriptor) (*core.Source, error) {
	url := fmt.Sprintf("%s/%s/releases/download/v%s/%s-v%s-%s",
		l.downloadHost,
		desc.Repository(),
		desc.Version(),
		desc.Name(),
		desc.Version(),
		desc.Target(),
	)

	l.logger.Debug().Str("url", url).Msg("built tag download url")

	header := http.Header{}
	if l.userAgent != "" {
		header.Set("User-Agent", l.userAgent)
	}

	return &core.Source{URL: url, Header: header}, nil
}
