package platform

import "strings"

// osAliases maps OS identifiers reported by Go, uname and Node's os.type()
// to GOOS values
var osAliases = map[string]string{
	"linux":      "linux",
	"darwin":     "darwin",
	"macos":      "darwin",
	"windows":    "windows",
	"windows_nt": "windows",
}

// archAliases maps CPU identifiers to GOARCH values
var archAliases = map[string]string{
	"amd64":   "amd64",
	"x64":     "amd64",
	"x86_64":  "amd64",
	"arm64":   "arm64",
	"aarch64": "arm64",
}

// normalizeOS returns the GOOS spelling of osKind, or the lowercased input when unknown
func normalizeOS(osKind string) string {
	key := strings.ToLower(strings.TrimSpace(osKind))
	if canonical, ok := osAliases[key]; ok {
		return canonical
	}
	return key
}

// normalizeArch returns the GOARCH spelling of arch, or the lowercased input when unknown
func normalizeArch(arch string) string {
	key := strings.ToLower(strings.TrimSpace(arch))
	if canonical, ok := archAliases[key]; ok {
		return canonical
	}
	return key
}
