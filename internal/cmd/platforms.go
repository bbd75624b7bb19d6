package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/platform"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewPlatformsCmd creates the platforms command
func NewPlatformsCmd(_ *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		filter     string
	)

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms",
		Long:  `List the operating system and architecture pairs a prebuilt binary is published for.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platforms := platform.Filter(filter)

			log.Debug().
				Str("filter", filter).
				Int("matches", len(platforms)).
				Msg("listing platforms")

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(platforms); err != nil {
					return fmt.Errorf("encode platforms: %w", err)
				}
				return nil
			}

			if len(platforms) == 0 {
				ui.PrintWarning("No supported platform matches %q", filter)
				return nil
			}

			if err := platform.RenderTable(cmd.OutOrStdout(), platforms); err != nil {
				ui.PrintError("failed to render table: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on os, architecture or target")

	return cmd
}
