package platform

import (
	"fmt"
	"io"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable writes platforms as a table to w
func RenderTable(w io.Writer, platforms []core.SupportedPlatform) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"OS", "Architecture", "Target", "Binary"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for _, p := range platforms {
		if err := table.Append(p.OSKind, p.Architecture, p.TargetTriple, p.BinaryName); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
