//go:build windows

package launcher

import "os"

// The console delivers Ctrl+C to the child directly; the shim only has to
// survive it long enough to report the child's status.
var forwardedSignals = []os.Signal{os.Interrupt}

func forwardSignal(*os.Process, os.Signal) {}
