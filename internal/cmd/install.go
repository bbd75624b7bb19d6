package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/installer"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command
func NewInstallCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var (
		timeoutSecs int
		noProgress  bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download the binary for this platform",
		Long: `Download the prebuilt binary for this platform from its GitHub release,
replacing any previous installation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeoutSecs > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
				defer cancel()
			}

			_, desc, err := resolveBinary(cfg, version)
			if err != nil {
				reportError(err)
				return err
			}

			locator, err := newLocator(cfg, log)
			if err != nil {
				reportError(err)
				return err
			}

			log.Info().
				Str("binary", desc.Name()).
				Str("target", desc.Target()).
				Str("strategy", locator.Name()).
				Msg("starting installation")

			ui.PrintInfo("downloading binary from %s...", desc.Repository())

			inst := installer.New(locator, httpClient, log)
			if !noProgress && ui.IsTerminal(ui.Stderr()) {
				inst.SetProgressOutput(ui.Stderr())
			}

			if err := inst.Install(ctx, desc); err != nil {
				reportError(err)
				return fmt.Errorf("installation failed: %w", err)
			}

			ui.PrintSuccess("%s has been installed!", desc.Name())
			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "installation timeout in seconds (0 disables)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "never draw a progress bar")

	return cmd
}
