package cmd

import (
	"github.com/capterqa/capter-shim/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capter-shim",
		Short: "Install and launch the capter CLI",
		Long: `capter-shim downloads the prebuilt capter executable for this platform
from its GitHub release and runs it with the arguments it was given.`,
		SilenceUsage: true,
		// Every RunE reports its own failure through ui
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add subcommands
	cmd.AddCommand(NewInstallCmd(cfg, log, version))
	cmd.AddCommand(NewRunCmd(cfg, log, version))
	cmd.AddCommand(NewUninstallCmd(cfg, log, version))
	cmd.AddCommand(NewPlatformsCmd(cfg, log))
	cmd.AddCommand(NewLocateCmd(cfg, log, version))
	cmd.AddCommand(NewDoctorCmd(cfg, log, version))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(cfg, version))

	return cmd
}
