package release

import (
	"context"
	"strings"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/rs/zerolog"
)

// ListingLocator searches the most recent release for an asset whose name
// contains the target. Whether requests are authenticated depends on the
// client it was built with.
type ListingLocator struct {
	client *Client
	logger *zerolog.Logger
}

// NewListingLocator creates a listing-search locator
func NewListingLocator(client *Client, log *zerolog.Logger) *ListingLocator {
	return &ListingLocator{
		client: client,
		logger: log,
	}
}

// Name returns the strategy name
func (l *ListingLocator) Name() string {
	if l.client.token != "" {
		return string(core.StrategyAuthenticated)
	}
	return string(core.StrategyPublic)
}

// Locate lists releases, takes the first one and returns its first asset
// whose name contains the descriptor's target
func (l *ListingLocator) Locate(ctx context.Context, desc *core.BinaryDescriptor) (*core.Source, error) {
	releases, err := l.client.ListReleases(ctx, desc.Repository())
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, &core.ReleaseFetchError{Repository: desc.Repository(), Err: core.ErrEmptyListing}
	}

	latest := releases[0]
	asset := FindAsset(latest.Assets, desc.Target())
	if asset == nil {
		return nil, &core.AssetNotFoundError{Release: latest.TagName, Target: desc.Target()}
	}

	l.logger.Debug().
		Str("release", latest.TagName).
		Str("asset", asset.Name).
		Int64("asset_id", asset.ID).
		Msg("matched release asset")

	header := l.client.Header()
	url := asset.BrowserDownloadURL

	// Private assets and assets without a browser URL stream from the API endpoint
	if l.client.token != "" || url == "" {
		url = l.client.AssetURL(desc.Repository(), asset.ID)
		header.Set("Accept", "application/octet-stream")
	} else {
		header.Del("Accept")
	}

	return &core.Source{URL: url, Header: header, Asset: asset}, nil
}

// FindAsset returns the first asset whose name contains target, or nil.
// Matching is a plain substring test; when several names contain the
// target, list order decides.
func FindAsset(assets []core.ReleaseAsset, target string) *core.ReleaseAsset {
	if target == "" {
		return nil
	}
	for i := range assets {
		if strings.Contains(assets[i].Name, target) {
			return &assets[i]
		}
	}
	return nil
}
