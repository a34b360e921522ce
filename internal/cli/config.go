package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/errors"
	tio "github.com/matzehuels/tableau/pkg/io"
	"github.com/matzehuels/tableau/pkg/table"
)

// Config holds user defaults read from config.toml. Values set in a table
// description take precedence, and command-line flags override both.
type Config struct {
	Style          string `toml:"style"`
	MaxColumnWidth *int   `toml:"max_column_width,omitempty"`
	SeparateRows   bool   `toml:"separate_rows"`
	TopBorder      bool   `toml:"top_border"`
	BottomBorder   bool   `toml:"bottom_border"`
	Strict         bool   `toml:"strict"`
}

func defaultConfig() Config {
	return Config{
		Style:        table.DefaultStyleName,
		SeparateRows: true,
		TopBorder:    true,
		BottomBorder: true,
	}
}

// loadConfig reads the config file at path over the defaults. A missing file
// yields the defaults unless required is set. Unknown keys and invalid values
// are errors.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
			}
			return defaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := table.StyleByName(c.Style); err != nil {
		return err
	}
	if c.MaxColumnWidth != nil {
		return errors.ValidateWidth("max_column_width", *c.MaxColumnWidth)
	}
	return nil
}

// applyTo fills the settings doc leaves unset with the config values.
func (c Config) applyTo(doc tio.Document) tio.Document {
	if doc.Style == "" {
		doc.Style = c.Style
	}
	if doc.MaxColumnWidth == nil && c.MaxColumnWidth != nil {
		width := *c.MaxColumnWidth
		doc.MaxColumnWidth = &width
	}
	if doc.SeparateRows == nil {
		doc.SeparateRows = &c.SeparateRows
	}
	if doc.TopBorder == nil {
		doc.TopBorder = &c.TopBorder
	}
	if doc.BottomBorder == nil {
		doc.BottomBorder = &c.BottomBorder
	}
	return doc
}

// effectiveConfig reads the config selected by --config or the default
// location. Only a file named with --config has to exist.
func (c *CLI) effectiveConfig() (Config, string, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate config")
	}
	cfg, err := loadConfig(path, c.configPath != "")
	return cfg, path, err
}

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
		Long: `Inspect the configuration file.

The config file is TOML. Recognized keys:

  style            = "rounded"   # ascii, thin, rounded, heavy, fancy, empty
  max_column_width = 40
  separate_rows    = true
  top_border       = true
  bottom_border    = true
  strict           = false`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "locate config")
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				printDetail(cmd.ErrOrStderr(), "file does not exist; defaults apply")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := c.effectiveConfig()
			if err != nil {
				return err
			}
			printKeyValue(cmd.ErrOrStderr(), "source", path)
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
			}
			return nil
		},
	})

	return cmd
}
