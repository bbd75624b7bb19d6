//go:build windows

package fsops

import (
	"fmt"
	"os"
)

// CheckExecAccess verifies path is a regular file; Windows has no execute bit
func CheckExecAccess(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("access %s: not a regular file", path)
	}
	return nil
}
