// Package platform maps the host OS kind and CPU architecture to the
// prebuilt asset target and executable name published for it.
package platform

import (
	"runtime"
	"strings"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BinaryName is the base name of the wrapped executable
const BinaryName = "capter"

// supported is the static platform table; one entry per (os, arch) pair
var supported = []core.SupportedPlatform{
	{OSKind: "windows", Architecture: "amd64", TargetTriple: "x86_64-pc-windows-msvc", BinaryName: BinaryName + ".exe"},
	{OSKind: "linux", Architecture: "amd64", TargetTriple: "x86_64-unknown-linux-musl", BinaryName: BinaryName},
	{OSKind: "linux", Architecture: "arm64", TargetTriple: "aarch64-unknown-linux-musl", BinaryName: BinaryName},
	{OSKind: "darwin", Architecture: "amd64", TargetTriple: "x86_64-apple-darwin", BinaryName: BinaryName},
	{OSKind: "darwin", Architecture: "arm64", TargetTriple: "aarch64-apple-darwin", BinaryName: BinaryName},
}

// Supported returns a copy of the platform table
func Supported() []core.SupportedPlatform {
	out := make([]core.SupportedPlatform, len(supported))
	copy(out, supported)
	return out
}

// Resolve looks up the table entry for osKind and arch.
// Both values are normalized first, so "Linux"/"x64" and "linux"/"amd64" resolve alike.
func Resolve(osKind, arch string) (core.SupportedPlatform, error) {
	normOS := normalizeOS(osKind)
	normArch := normalizeArch(arch)

	for _, p := range supported {
		if p.OSKind == normOS && p.Architecture == normArch {
			return p, nil
		}
	}

	return core.SupportedPlatform{}, &core.UnsupportedPlatformError{
		OSKind:       osKind,
		Architecture: arch,
		Supported:    Supported(),
	}
}

// Current resolves the platform the process is running on
func Current() (core.SupportedPlatform, error) {
	return Resolve(runtime.GOOS, runtime.GOARCH)
}

// Filter returns the table entries whose os, arch or target fuzzily match query.
// An empty query returns the whole table.
func Filter(query string) []core.SupportedPlatform {
	query = strings.TrimSpace(query)
	if query == "" {
		return Supported()
	}

	out := []core.SupportedPlatform{}
	for _, p := range supported {
		if fuzzy.MatchFold(query, p.OSKind) ||
			fuzzy.MatchFold(query, p.Architecture) ||
			fuzzy.MatchFold(query, p.TargetTriple) {
			out = append(out, p)
		}
	}
	return out
}

// ExecutableName returns the file name base is stored under on p.
// The table's own name wins for the default binary.
func ExecutableName(base string, p core.SupportedPlatform) string {
	if base == "" || base == BinaryName {
		return p.BinaryName
	}
	if p.OSKind == "windows" && !strings.HasSuffix(strings.ToLower(base), ".exe") {
		return base + ".exe"
	}
	return base
}
