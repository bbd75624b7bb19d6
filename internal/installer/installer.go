// Package installer replaces the install directory with a freshly
// downloaded executable for the current platform.
package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/fsops"
	"github.com/capterqa/capter-shim/internal/logging"
	"github.com/capterqa/capter-shim/internal/release"
	"github.com/capterqa/capter-shim/internal/transaction"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Installer downloads and persists the wrapped executable
type Installer struct {
	fs       afero.Fs
	locator  release.Locator
	fetcher  *Fetcher
	logger   *zerolog.Logger
	progress io.Writer
}

// New creates an installer writing to the OS filesystem
func New(locator release.Locator, httpClient *http.Client, log *zerolog.Logger) *Installer {
	return NewWithDeps(afero.NewOsFs(), locator, NewFetcher(httpClient), log)
}

// NewWithDeps creates an installer with injected dependencies (for tests)
func NewWithDeps(fs afero.Fs, locator release.Locator, fetcher *Fetcher, log *zerolog.Logger) *Installer {
	return &Installer{
		fs:      fs,
		locator: locator,
		fetcher: fetcher,
		logger:  log,
	}
}

// SetProgressOutput enables a download progress bar on w; nil disables it
func (i *Installer) SetProgressOutput(w io.Writer) {
	i.progress = w
}

// Install wipes the install directory, resolves the asset and streams it to
// the binary path. It returns nil only once the file is synced and closed.
func (i *Installer) Install(ctx context.Context, desc *core.BinaryDescriptor) (err error) {
	log := logging.WithDescriptor(i.logger, desc)
	dir := desc.InstallDirectory()
	binaryPath := desc.BinaryPath()

	log.Debug().Str("dir", dir).Msg("resetting install directory")
	if err := fsops.ResetDir(i.fs, dir); err != nil {
		return fmt.Errorf("reset install directory: %w", err)
	}

	tx := transaction.NewManager(log)
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Warn().Err(rbErr).Msg("cleanup after failed install was incomplete")
			}
		}
	}()

	src, err := i.locator.Locate(ctx, desc)
	if err != nil {
		return err
	}

	log.Info().
		Str("repository", desc.Repository()).
		Str("strategy", i.locator.Name()).
		Str("url", src.URL).
		Msg("downloading binary")

	body, size, err := i.fetcher.Open(ctx, src)
	if err != nil {
		return err
	}
	defer body.Close()

	var reader io.Reader = body
	var tracked *ui.ProgressReader
	if i.progress != nil {
		bar := ui.NewDownloadBar(i.progress, size, "downloading "+desc.Name(), true)
		tracked = ui.NewProgressReader(body, bar)
		reader = tracked
	}

	tx.Add("remove partial binary", func() error {
		if err := i.fs.Remove(binaryPath); err != nil && !fsops.IsNotExist(err) {
			return err
		}
		return nil
	})

	written, err := fsops.WriteExecutable(i.fs, binaryPath, reader)
	if tracked != nil {
		_ = tracked.Close()
	}
	if err != nil {
		return &core.DownloadError{URL: src.URL, Err: err}
	}

	if size >= 0 && written != size {
		return &core.DownloadError{
			URL: src.URL,
			Err: fmt.Errorf("short transfer: got %d of %d bytes", written, size),
		}
	}

	tx.Commit()

	log.Info().
		Str("path", binaryPath).
		Int64("bytes", written).
		Msg("binary installed")

	return nil
}

// Uninstall removes the install directory and everything in it
func (i *Installer) Uninstall(_ context.Context, desc *core.BinaryDescriptor) error {
	dir := desc.InstallDirectory()
	if !fsops.Exists(i.fs, dir) {
		return nil
	}
	if err := i.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove install directory: %w", err)
	}
	logging.WithDescriptor(i.logger, desc).Info().Str("dir", dir).Msg("install directory removed")
	return nil
}

// Installed reports whether the binary exists and is executable
func (i *Installer) Installed(desc *core.BinaryDescriptor) bool {
	return fsops.IsExecutable(i.fs, desc.BinaryPath())
}
