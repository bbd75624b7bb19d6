//go:build !windows

package helpers

import (
	"errors"
	"os/exec"
	"syscall"
)

// ExitCode maps a Wait error to the status a shell would report.
// A child killed by a signal yields 128+signal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return 128 + int(ws.Signal())
			}
			return ws.ExitStatus()
		}
		return ee.ExitCode()
	}
	return 1
}
