//go:build windows

package helpers

import (
	"errors"
	"os/exec"
)

// ExitCode maps a Wait error to the child's exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}
