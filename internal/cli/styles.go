package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/table"
)

func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show every border style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, name := range table.StyleNames() {
				style, err := table.StyleByName(name)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, StyleTitle.Render(name))
				fmt.Fprintln(w, styleSample(style).Render())
			}
			return nil
		},
	}
}

// styleSample is a small table exercising every junction of a style.
func styleSample(style table.Style) table.Table {
	return table.New().
		WithStyle(style).
		WithRow(table.NewRow().WithCell(table.NewCell("Header").WithColumnSpan(3).WithAlignment(table.AlignCenter))).
		WithRow(table.NewRow().WithCells(table.NewCell("a"), table.NewCell("b"), table.NewCell("c"))).
		WithRow(table.NewRow().WithCells(table.NewCell("d").WithColumnSpan(2), table.NewCell("e")))
}
