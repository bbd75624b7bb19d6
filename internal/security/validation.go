package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ValidBinaryNameRegex allows alphanumeric, dash, underscore, and dot
	ValidBinaryNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

	// ValidVersionRegex allows standard version formats
	ValidVersionRegex = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)

	// ValidRepositoryRegex matches GitHub's owner/repo slugs
	ValidRepositoryRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+/[a-zA-Z0-9._-]+$`)
)

// ValidateBinaryName validates the file name the executable is stored under
func ValidateBinaryName(name string) error {
	if name == "" {
		return fmt.Errorf("binary name cannot be empty")
	}

	if len(name) > 255 {
		return fmt.Errorf("binary name too long (max 255 characters)")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid binary name: %q", name)
	}

	if !ValidBinaryNameRegex.MatchString(name) {
		return fmt.Errorf("invalid binary name: must contain only alphanumeric, dash, underscore, or dot characters")
	}

	return nil
}

// ValidateRepository validates an owner/repo slug used to build release URLs
func ValidateRepository(repo string) error {
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}

	if strings.Contains(repo, "..") {
		return fmt.Errorf("invalid repository: contains dangerous pattern: ..")
	}

	if !ValidRepositoryRegex.MatchString(repo) {
		return fmt.Errorf("invalid repository %q: must be owner/repo", repo)
	}

	return nil
}

// ValidateVersion validates a version string
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("invalid version: version cannot be empty")
	}

	// Length is checked before content
	if len(version) >= 100 {
		return fmt.Errorf("version string too long (max 100 characters)")
	}

	if strings.Contains(version, "\x00") {
		return fmt.Errorf("invalid version: contains null byte")
	}

	// The version is spliced into a URL path segment
	dangerousPatterns := []string{
		"..", "/", "\\", "?", "#", "%", "\n", "\r",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(version, pattern) {
			return fmt.Errorf("invalid version: contains dangerous pattern: %s", pattern)
		}
	}

	if !ValidVersionRegex.MatchString(version) {
		return fmt.Errorf("invalid version format: must be alphanumeric with dots, dashes, or plus signs")
	}

	return nil
}

// IsPathWithinDirectory checks if a target path is within a given base directory.
// Both paths must be absolute; the base itself counts as within.
func IsPathWithinDirectory(targetPath, basePath string) (bool, error) {
	if !filepath.IsAbs(targetPath) {
		return false, fmt.Errorf("target path must be absolute, got relative path: %s", targetPath)
	}
	if !filepath.IsAbs(basePath) {
		return false, fmt.Errorf("base path must be absolute, got relative path: %s", basePath)
	}

	cleanBase := filepath.Clean(basePath)
	cleanTarget := filepath.Clean(targetPath)

	rel, err := filepath.Rel(cleanBase, cleanTarget)
	if err != nil {
		return false, fmt.Errorf("failed to compute relative path: %w", err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}

	return true, nil
}
