package core

import (
	"errors"
	"fmt"
)

// UnsupportedPlatformError is returned when no table entry matches the host
type UnsupportedPlatformError struct {
	OSKind       string
	Architecture string
	Supported    []SupportedPlatform
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("platform with type %q and architecture %q is not supported", e.OSKind, e.Architecture)
}

// MissingCredentialError is returned before any network activity when the
// authenticated strategy is selected and the token variable is unset
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("environment variable %s must be set to download from a private repository", e.EnvVar)
}

// ReleaseFetchError wraps a failed or empty release listing
type ReleaseFetchError struct {
	Repository string
	Err        error
}

func (e *ReleaseFetchError) Error() string {
	return fmt.Sprintf("error fetching release for %s: %v", e.Repository, e.Err)
}

func (e *ReleaseFetchError) Unwrap() error { return e.Err }

// AssetNotFoundError is returned when no asset name contains the target
type AssetNotFoundError struct {
	Release string
	Target  string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("no asset in release %s matches target %s", e.Release, e.Target)
}

// DownloadError wraps a failed or interrupted transfer
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// NotInstalledError is returned by the launcher when the binary is absent
type NotInstalledError struct {
	Name string
	Path string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("you must install %s before you can run it (missing %s)", e.Name, e.Path)
}

// SpawnError wraps a failure to start the child process
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError carries a child's exit status up to main
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ErrEmptyListing is wrapped in a ReleaseFetchError when the listing has no releases
var ErrEmptyListing = errors.New("release listing is empty")

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}
