//go:build !windows

package launcher

import (
	"os"

	"golang.org/x/sys/unix"
)

var forwardedSignals = []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}

// Keyboard signals reach the whole foreground process group, child included,
// so only signals addressed to the shim alone are relayed.
func forwardSignal(p *os.Process, sig os.Signal) {
	if sig == os.Interrupt || sig == unix.SIGQUIT {
		return
	}
	_ = p.Signal(sig)
}
