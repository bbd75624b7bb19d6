package ui

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps progressbar/v3 with capter-shim styling
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewDownloadBar creates a byte progress bar on w. A max of -1 renders a
// spinner for responses without Content-Length; visible=false swallows all
// rendering so non-interactive installs stay quiet.
func NewDownloadBar(w io.Writer, max int64, description string, visible bool) *ProgressBar {
	bar := progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if visible {
				fmt.Fprint(w, "\n")
			}
		}),
	)

	return &ProgressBar{bar: bar}
}

// Write implements io.Writer for streaming operations
func (p *ProgressBar) Write(b []byte) (int, error) {
	return p.bar.Write(b)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() error {
	return p.bar.Finish()
}

// ProgressReader wraps an io.Reader with a progress bar
type ProgressReader struct {
	reader io.Reader
	bar    *ProgressBar
}

// NewProgressReader creates a new reader with progress tracking
func NewProgressReader(reader io.Reader, bar *ProgressBar) *ProgressReader {
	return &ProgressReader{
		reader: reader,
		bar:    bar,
	}
}

// Read implements io.Reader with progress tracking
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		_, _ = pr.bar.Write(p[:n])
	}
	return n, err
}

// Close finishes the progress bar
func (pr *ProgressReader) Close() error {
	return pr.bar.Finish()
}
