// Package launcher runs the installed executable in place of the shim,
// forwarding arguments and stdio and propagating the child's exit status.
package launcher

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/fsops"
	"github.com/capterqa/capter-shim/internal/helpers"
	"github.com/capterqa/capter-shim/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Launcher spawns the installed binary
type Launcher struct {
	fs          afero.Fs
	runner      helpers.CommandRunner
	logger      *zerolog.Logger
	checkAccess func(path string) error
	getwd       func() (string, error)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a launcher for the OS filesystem with inherited stdio
func New(log *zerolog.Logger) *Launcher {
	l := NewWithDeps(afero.NewOsFs(), helpers.NewOSCommandRunner(), log)
	l.checkAccess = fsops.CheckExecAccess
	return l
}

// NewWithDeps creates a launcher with injected dependencies (for tests)
func NewWithDeps(fs afero.Fs, runner helpers.CommandRunner, log *zerolog.Logger) *Launcher {
	return &Launcher{
		fs:     fs,
		runner: runner,
		logger: log,
		getwd:  os.Getwd,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetStdio replaces the streams handed to the child
func (l *Launcher) SetStdio(stdin io.Reader, stdout, stderr io.Writer) {
	l.stdin = stdin
	l.stdout = stdout
	l.stderr = stderr
}

// Run starts the installed binary with args unchanged and waits for it.
// The returned code is the child's exit status; a non-nil error means no
// child ran and the code is core.ExitGeneral.
func (l *Launcher) Run(ctx context.Context, desc *core.BinaryDescriptor, args []string) (int, error) {
	log := logging.WithDescriptor(l.logger, desc)
	binaryPath := desc.BinaryPath()

	if _, err := l.fs.Stat(binaryPath); err != nil {
		if fsops.IsNotExist(err) {
			return core.ExitGeneral, &core.NotInstalledError{Name: desc.Name(), Path: binaryPath}
		}
		return core.ExitGeneral, &core.SpawnError{Path: binaryPath, Err: err}
	}

	if l.checkAccess != nil {
		if err := l.checkAccess(binaryPath); err != nil {
			return core.ExitGeneral, &core.SpawnError{Path: binaryPath, Err: err}
		}
	}

	cmd := l.runner.PrepareCommand(ctx, binaryPath, args...)
	if wd, err := l.getwd(); err == nil {
		cmd.Dir = wd
	} else {
		log.Debug().Err(err).Msg("working directory unavailable, child inherits it")
	}
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	log.Debug().
		Str("path", binaryPath).
		Strs("args", args).
		Str("dir", cmd.Dir).
		Msg("spawning binary")

	if err := cmd.Start(); err != nil {
		return core.ExitGeneral, &core.SpawnError{Path: binaryPath, Err: err}
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, forwardedSignals...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				forwardSignal(cmd.Process, sig)
			case <-done:
				return
			}
		}
	}()

	waitErr := cmd.Wait()
	signal.Stop(sigCh)
	close(done)

	code := helpers.ExitCode(waitErr)
	log.Debug().Int("exit_code", code).Msg("binary exited")

	return code, nil
}
