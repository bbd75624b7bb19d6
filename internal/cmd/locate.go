package cmd

import (
	"context"
	"fmt"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewLocateCmd creates the locate command
func NewLocateCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the download URL without downloading",
		Long: `Resolve the download URL of the binary for this platform with the configured
release strategy and print it. Nothing is written to disk.`,
		Args: cobra.NoArgs,
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

			locator, err := newLocator(cfg, log)
			if err != nil {
				reportError(err)
				return err
			}

			src, err := locator.Locate(ctx, desc)
			if err != nil {
				reportError(err)
				return err
			}

			if verbose {
				ui.PrintKeyValue("Strategy", ui.ColorizeStrategy(locator.Name()))
				ui.PrintKeyValue("Repository", desc.Repository())
				ui.PrintKeyValue("Version", desc.Version())
				ui.PrintKeyValue("Target", desc.Target())
				if src.Asset != nil {
					ui.PrintKeyValue("Asset", fmt.Sprintf("%s (id %d)", src.Asset.Name, src.Asset.ID))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), src.URL)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print how the URL was resolved")

	return cmd
}
