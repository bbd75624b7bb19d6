//go:build !windows

package fsops

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckExecAccess asks the kernel whether the current user may execute path
func CheckExecAccess(path string) error {
	if err := unix.Access(path, unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	return nil
}
