package cmd

import (
	"context"
	"fmt"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/installer"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Swapped in tests
var confirmAction = ui.ConfirmDangerousAction

// NewUninstallCmd creates the uninstall command
func NewUninstallCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the installed binary",
		Long:  `Remove the install directory and the binary inside it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			_, desc, err := resolveBinary(cfg, version)
			if err != nil {
				reportError(err)
				return err
			}

			// Uninstalling never downloads, so no locator or credential is needed
			inst := installer.New(nil, httpClient, log)

			if !inst.Installed(desc) {
				ui.PrintWarning("%s is not installed", desc.Name())
			}

			if !yes {
				confirmed, err := confirmAction("remove", desc.InstallDirectory())
				if err != nil {
					reportError(err)
					return fmt.Errorf("confirmation failed: %w", err)
				}
				if !confirmed {
					ui.PrintInfo("Uninstall cancelled")
					return nil
				}
			}

			if err := inst.Uninstall(ctx, desc); err != nil {
				reportError(err)
				return fmt.Errorf("uninstall failed: %w", err)
			}

			ui.PrintSuccess("%s has been uninstalled", desc.Name())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
