package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/errors"
	tio "github.com/matzehuels/tableau/pkg/io"
)

type convertOpts struct {
	from string // input format when reading stdin
	to   string // output format when writing stdout
}

func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{from: string(tio.FormatJSON), to: string(tio.FormatJSON)}

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a table description between formats",
		Long: `Convert a table description between formats.

Formats follow the file extensions. Use "-" for standard input or output
together with --from or --to. CSV can be read but not written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			doc, err := readDocument(cmd.InOrStdin(), args[0], opts.from)
			if err != nil {
				return err
			}
			// Reject descriptions that cannot be rendered before writing them.
			if _, err := doc.Table(); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "%s", args[0])
			}

			if args[1] == "-" {
				to, err := tio.ParseFormat(opts.to)
				if err != nil {
					return err
				}
				return tio.Write(doc, cmd.OutOrStdout(), to)
			}

			if err := tio.Export(doc, args[1]); err != nil {
				return err
			}
			prog.done("Converted description", "rows", len(doc.Rows))
			printSuccess(cmd.OutOrStdout(), "Converted %s", args[0])
			printFile(cmd.OutOrStdout(), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", opts.from, "input format for stdin: json, toml, yaml, csv")
	cmd.Flags().StringVar(&opts.to, "to", opts.to, "output format for stdout: json, toml, yaml")

	return cmd
}
