package cmd

import (
	"fmt"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(cfg *config.Config, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "capter-shim version %s\n", version)

			if cfg == nil {
				return
			}
			binaryVersion := version
			if cfg.Binary.Version != "" {
				binaryVersion = cfg.Binary.Version
			}
			if cfg.Binary.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cfg.Binary.Name, binaryVersion)
			}
		},
	}

	return cmd
}
