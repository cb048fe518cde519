package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/output"
	"github.com/spiffcs/tempo/internal/timestamp"
)

// NewCmdInfraction creates the infraction command.
func NewCmdInfraction(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infraction <timestamp>",
		Short: "Format an infraction timestamp",
		Long: `Re-renders an ISO-8601 infraction timestamp as "YYYY-MM-DD HH:MM",
with the humanized duration from now (or --from) in parentheses, e.g.
"2024-06-18 15:00 (3 days and 3 hours)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfraction(args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.MaxUnits, "max-units", "n", 0, "Maximum number of unit phrases (default 2)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Reference timestamp for the duration (default: now)")
	cmd.Flags().BoolVar(&opts.Signed, "signed", false, "Keep the duration's sign for past timestamps")
	cmd.Flags().BoolVar(&opts.NoDuration, "no-duration", false, "Print only the formatted timestamp")
	return cmd
}

func runInfraction(arg string, opts *Options) error {
	if _, err := loadConfig(opts); err != nil {
		return err
	}

	p := output.NewPrinter(os.Stdout)

	if opts.NoDuration {
		formatted, err := timestamp.FormatInfraction(arg)
		if err != nil {
			return err
		}
		p.Line(formatted)
		return nil
	}

	var from time.Time
	if opts.From != "" {
		var err error
		from, err = timestamp.Parse(opts.From)
		if err != nil {
			return err
		}
	}

	formatted, err := timestamp.InfractionWithDuration(arg, from, headlineUnits(opts), !opts.Signed)
	if err != nil {
		return err
	}
	p.Line(formatted)
	return nil
}
