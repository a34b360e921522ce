package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/errors"
	tio "github.com/matzehuels/tableau/pkg/io"
	"github.com/matzehuels/tableau/pkg/table"
)

// renderOpts holds the command-line flags for the render command.
// Zero values mean "not given"; the description and config decide.
type renderOpts struct {
	output         string   // output file; empty writes to stdout
	format         string   // input format when reading stdin
	style          string   // border style preset
	maxWidth       int      // width limit for every column
	maxWidthSet    bool     // --max-width was given
	maxWidthAt     []string // per-column limits as index=width
	noSeparateRows bool
	noTopBorder    bool
	noBottomBorder bool
	strict         bool // fail on descriptions that would render degenerate
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a table description as text",
		Long: `Render a table description as text.

The description is read from a .json, .toml, .yaml, .yml or .csv file, or
from standard input when the file is "-" or omitted (see --format).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			opts.maxWidthSet = cmd.Flags().Changed("max-width")
			return c.runRender(cmd.Context(), cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the table to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(tio.FormatJSON), "input format for stdin: json, toml, yaml, csv")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "border style: "+strings.Join(table.StyleNames(), ", "))
	cmd.Flags().IntVarP(&opts.maxWidth, "max-width", "w", 0, "maximum width of every column, padding included")
	cmd.Flags().StringArrayVar(&opts.maxWidthAt, "max-width-at", nil, "maximum width of one column as index=width (repeatable)")
	cmd.Flags().BoolVar(&opts.noSeparateRows, "no-separate-rows", false, "omit border lines between rows")
	cmd.Flags().BoolVar(&opts.noTopBorder, "no-top-border", false, "omit the line above the first row")
	cmd.Flags().BoolVar(&opts.noBottomBorder, "no-bottom-border", false, "omit the line below the last row")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject empty tables, spans below 1 and negative widths")

	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return table.StyleNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, cfgPath, err := c.effectiveConfig()
	if err != nil {
		return err
	}
	logger.Debug("Loaded config", "path", cfgPath, "style", cfg.Style)

	doc, err := readDocument(cmd.InOrStdin(), input, opts.format)
	if err != nil {
		return err
	}
	logger.Debug("Read description", "input", input, "rows", len(doc.Rows))

	t, err := cfg.applyTo(doc).Table()
	if err != nil {
		return err
	}
	if t, err = opts.apply(t); err != nil {
		return err
	}

	if err := t.Validate(); err != nil {
		if opts.strict || cfg.Strict {
			return err
		}
		printWarning(cmd.ErrOrStderr(), "%s; rendering anyway", errors.UserMessage(err))
	}

	out := t.Render()
	if opts.output == "" {
		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		prog.done("Rendered table", "rows", len(t.Rows), "columns", len(t.ColumnWidths()))
		return nil
	}

	if err := writeOutput(opts.output, out); err != nil {
		return err
	}
	prog.done("Rendered table", "rows", len(t.Rows), "columns", len(t.ColumnWidths()))
	printSuccess(cmd.OutOrStdout(), "Rendered %d rows", len(t.Rows))
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// apply layers the flags that were given over t.
func (o *renderOpts) apply(t table.Table) (table.Table, error) {
	if o.style != "" {
		style, err := table.StyleByName(o.style)
		if err != nil {
			return table.Table{}, err
		}
		t = t.WithStyle(style)
	}
	if o.maxWidthSet {
		if err := errors.ValidateWidth("--max-width", o.maxWidth); err != nil {
			return table.Table{}, err
		}
		t = t.WithMaxColumnWidth(o.maxWidth)
	}
	for _, pair := range o.maxWidthAt {
		index, width, err := parseColumnLimit(pair)
		if err != nil {
			return table.Table{}, err
		}
		t = t.WithMaxColumnWidthAtIndex(index, width)
	}
	if o.noSeparateRows {
		t = t.WithoutSeparateRows()
	}
	if o.noTopBorder {
		t = t.WithoutTopBorder()
	}
	if o.noBottomBorder {
		t = t.WithoutBottomBorder()
	}
	return t, nil
}

// parseColumnLimit parses an index=width pair such as "2=30".
func parseColumnLimit(pair string) (index, width int, err error) {
	left, right, ok := strings.Cut(pair, "=")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "column limit %q must look like index=width", pair)
	}
	index, err = strconv.Atoi(strings.TrimSpace(left))
	if err != nil || index < 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "column limit %q: index must be a non-negative integer", pair)
	}
	width, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "column limit %q: width must be an integer", pair)
	}
	if err := errors.ValidateWidth("column limit "+strconv.Quote(pair), width); err != nil {
		return 0, 0, err
	}
	return index, width, nil
}

// readDocument reads a description from path, or from stdin in the named
// format when path is "-".
func readDocument(stdin io.Reader, path, format string) (tio.Document, error) {
	if path != "-" {
		return tio.Import(path)
	}
	f, err := tio.ParseFormat(format)
	if err != nil {
		return tio.Document{}, err
	}
	return tio.Read(stdin, f)
}

// writeOutput writes s and a trailing newline to path.
func writeOutput(path, s string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
