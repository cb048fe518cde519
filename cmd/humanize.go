package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/duration"
	"github.com/spiffcs/tempo/internal/humanize"
	"github.com/spiffcs/tempo/internal/output"
)

// NewCmdHumanize creates the humanize command.
func NewCmdHumanize(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humanize <duration>",
		Short: "Render a duration like 1y2mo3d in natural language",
		Long: `Parses a compound duration (e.g. 1d2h, 6mo, 1y2mo3d4h5m6s) and renders
it as natural language, e.g. "1 day and 2 hours".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHumanize(args[0], opts)
		},
	}

	addFormattingFlags(cmd, opts)
	return cmd
}

func runHumanize(arg string, opts *Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	precision, maxUnits, err := resolveFormatting(cfg, opts)
	if err != nil {
		return err
	}

	delta, err := duration.Parse(arg)
	if err != nil {
		return err
	}

	humanized, err := humanize.Humanize(delta, precision, maxUnits)
	if err != nil {
		return err
	}

	output.NewPrinter(os.Stdout).Line(humanized)
	return nil
}
