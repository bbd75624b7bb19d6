package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/rs/zerolog"
)

// maxErrorBody bounds how much of a failed response is quoted in errors
const maxErrorBody = 512

// Client talks to the GitHub releases API
type Client struct {
	httpClient *http.Client
	apiHost    string
	userAgent  string
	token      string
	logger     *zerolog.Logger
}

// NewClient creates a releases API client. An empty token sends no
// Authorization header.
func NewClient(httpClient *http.Client, apiHost, userAgent, token string, log *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		apiHost:    apiHost,
		userAgent:  userAgent,
		token:      token,
		logger:     log,
	}
}

// Header returns the headers every request to the API carries
func (c *Client) Header() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
	return h
}

// ListReleases fetches the first page of releases for repo, most recent first
func (c *Client) ListReleases(ctx context.Context, repo string) ([]core.Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases", c.apiHost, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.ReleaseFetchError{Repository: repo, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header = c.Header()

	c.logger.Debug().
		Str("url", url).
		Bool("authenticated", c.token != "").
		Msg("listing releases")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &core.ReleaseFetchError{Repository: repo, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &core.ReleaseFetchError{
			Repository: repo,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body),
		}
	}

	var releases []core.Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, &core.ReleaseFetchError{Repository: repo, Err: fmt.Errorf("decode listing: %w", err)}
	}

	return releases, nil
}

// AssetURL returns the API endpoint that streams asset id
func (c *Client) AssetURL(repo string, id int64) string {
	return fmt.Sprintf("%s/repos/%s/releases/assets/%d", c.apiHost, repo, id)
}
