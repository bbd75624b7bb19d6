package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/capterqa/capter-shim/internal/core"
)

// Fetcher opens the byte stream behind a located source
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher; a nil client uses http.DefaultClient.
// No timeout or retry is layered on top of the client's own behavior.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Open issues the GET for src and returns the body with its declared
// length (-1 when unknown). Callers must close the body.
func (f *Fetcher) Open(ctx context.Context, src *core.Source) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, 0, &core.DownloadError{URL: src.URL, Err: fmt.Errorf("create request: %w", err)}
	}
	for key, values := range src.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, &core.DownloadError{URL: src.URL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, 0, &core.DownloadError{URL: src.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return resp.Body, resp.ContentLength, nil
}
