package cmd

import (
	"context"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/launcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Swapped in tests
var newLauncher = launcher.New

// NewRunCmd creates the run command
func NewRunCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [args...]",
		Short: "Run the installed binary",
		Long: `Run the installed binary with the given arguments, passed through untouched.
The shim exits with the binary's exit status.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return Proxy(ctx, cfg, log, version, args)
		},
	}

	return cmd
}

// Proxy runs the installed binary with args. A non-zero child status comes
// back as *core.ExitError so the caller can exit with it.
func Proxy(ctx context.Context, cfg *config.Config, log *zerolog.Logger, version string, args []string) error {
	_, desc, err := resolveBinary(cfg, version)
	if err != nil {
		reportError(err)
		return err
	}

	// The credential gates running as well as installing
	if _, err := newLocator(cfg, log); err != nil {
		reportError(err)
		return err
	}

	code, err := newLauncher(log).Run(ctx, desc, args)
	if err != nil {
		reportError(err)
		return err
	}

	if code != core.ExitSuccess {
		return &core.ExitError{Code: code}
	}
	return nil
}
