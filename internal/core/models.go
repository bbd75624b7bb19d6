package core

import (
	"net/http"
	"path/filepath"
	"strings"
)

// Strategy selects how a release asset is located
type Strategy string

const (
	StrategyDirect        Strategy = "direct"
	StrategyPublic        Strategy = "public"
	StrategyAuthenticated Strategy = "authenticated"
)

// Strategies lists every supported strategy in display order
var Strategies = []Strategy{StrategyDirect, StrategyPublic, StrategyAuthenticated}

// Valid reports whether s names a known strategy
func (s Strategy) Valid() bool {
	for _, known := range Strategies {
		if s == known {
			return true
		}
	}
	return false
}

// SupportedPlatform is one row of the static platform table
type SupportedPlatform struct {
	OSKind       string `json:"os_kind"`
	Architecture string `json:"architecture"`
	TargetTriple string `json:"target_triple"`
	BinaryName   string `json:"binary_name"`
}

// BinaryDescriptor identifies the binary, version and target being installed or run.
// The binary path is derived from the install directory and never set on its own.
type BinaryDescriptor struct {
	name             string
	repository       string
	version          string
	target           string
	installDirectory string
}

// NewBinaryDescriptor builds a descriptor rooted at installRoot/bin.
// A single leading "v" is dropped from version; release URLs add their own.
func NewBinaryDescriptor(name, repository, version, target, installRoot string) *BinaryDescriptor {
	return &BinaryDescriptor{
		name:             name,
		repository:       repository,
		version:          strings.TrimPrefix(version, "v"),
		target:           target,
		installDirectory: filepath.Join(installRoot, "bin"),
	}
}

// Name returns the executable file name
func (d *BinaryDescriptor) Name() string { return d.name }

// Repository returns the owner/repo the releases are published under
func (d *BinaryDescriptor) Repository() string { return d.repository }

// Version returns the release version without the leading "v"
func (d *BinaryDescriptor) Version() string { return d.version }

// Target returns the target triple used to pick the asset
func (d *BinaryDescriptor) Target() string { return d.target }

// InstallDirectory returns the directory wholly owned by the installer
func (d *BinaryDescriptor) InstallDirectory() string { return d.installDirectory }

// BinaryPath returns InstallDirectory/Name
func (d *BinaryDescriptor) BinaryPath() string {
	return filepath.Join(d.installDirectory, d.name)
}

// Release is one entry of a repository's release listing
type Release struct {
	TagName string         `json:"tag_name"`
	Name    string         `json:"name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is a downloadable file attached to a release
type ReleaseAsset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Source is a resolved download location and the headers its request must carry
type Source struct {
	URL    string
	Header http.Header
	// Asset is set when the source came from a release listing
	Asset *ReleaseAsset
}

// Exit codes
const (
	ExitSuccess = 0
	ExitGeneral = 1
)
