package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/output"
	"github.com/spiffcs/tempo/internal/timestamp"
)

// NewCmdUntil creates the until command.
func NewCmdUntil(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "until <expiry>",
		Short: "Show the remaining time before an expiry",
		Long: `Prints the remaining time before the given expiry timestamp, e.g.
"3 days and 3 hours". Already-expired timestamps print "expired".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUntil(args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.MaxUnits, "max-units", "n", 0, "Maximum number of unit phrases (default 2)")
	return cmd
}

func runUntil(arg string, opts *Options) error {
	if _, err := loadConfig(opts); err != nil {
		return err
	}

	remaining, err := timestamp.UntilExpiration(arg, time.Time{}, headlineUnits(opts))
	if err != nil {
		return err
	}

	p := output.NewPrinter(os.Stdout)
	if remaining == "" {
		p.Expired("expired")
		return nil
	}
	p.Line(remaining)
	return nil
}
