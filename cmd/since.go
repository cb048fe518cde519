package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/log"
	"github.com/spiffcs/tempo/internal/output"
	"github.com/spiffcs/tempo/internal/timestamp"
)

// NewCmdSince creates the since command.
func NewCmdSince(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "since <timestamp>",
		Short: "Show how long ago a timestamp was",
		Long: `Prints a human-readable description of how long ago the given timestamp
was, e.g. "2 days and 3 hours ago". ISO-8601 and RFC1123 inputs are accepted.
Future timestamps are reported as an absolute distance, also "... ago".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSince(args[0], opts)
		},
	}

	addFormattingFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "Compact single-unit age (5m, 2h, 3d)")
	return cmd
}

func runSince(arg string, opts *Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	precision, maxUnits, err := resolveFormatting(cfg, opts)
	if err != nil {
		return err
	}

	past, err := timestamp.Parse(arg)
	if err != nil {
		return err
	}
	log.Debug("parsed timestamp", "value", past)

	p := output.NewPrinter(os.Stdout)

	if opts.Compact {
		age := time.Since(past)
		if age < 0 {
			age = -age
		}
		p.Line(timestamp.Age(age))
		return nil
	}

	humanized, err := timestamp.Since(past, precision, maxUnits)
	if err != nil {
		return err
	}
	p.Line(humanized)
	return nil
}
