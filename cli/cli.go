package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	NoColor bool
	TUI     bool
}

// ParseFlags defines and parses command-line flags using pflag.
// None of the flags change which files are processed, and positional
// arguments are ignored.
func ParseFlags(args []string) (*Config, error) {
	return parse(args, os.Stdout)
}

func parse(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}

	flags := pflag.NewFlagSet("nobom", pflag.ContinueOnError)
	flags.SetOutput(out)

	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	flags.BoolVar(&cfg.TUI, "tui", false, "Show the results in an interactive summary view.")

	flags.Usage = func() {
		fmt.Fprintln(out, "Usage: nobom [flags]")
		fmt.Fprintln(out, "\nRemove a UTF-8 byte-order mark from the project's config files")
		fmt.Fprintln(out, "(package.json, postcss.config.js, tailwind.config.js, vite.config.js, index.html).")
		fmt.Fprintln(out, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
