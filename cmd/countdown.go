package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/output"
	"github.com/spiffcs/tempo/internal/schedule"
	"github.com/spiffcs/tempo/internal/timestamp"
	"github.com/spiffcs/tempo/internal/tui"
)

// NewCmdCountdown creates the countdown command.
func NewCmdCountdown(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countdown <expiry>",
		Short: "Show a live countdown to an expiry",
		Long: `Displays a live countdown to the given timestamp, refreshing every
second. Falls back to a plain blocking wait when stdout is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.MaxUnits, "max-units", "n", 0, "Maximum number of unit phrases (default 2)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Disable the live display")
	return cmd
}

func runCountdown(cmd *cobra.Command, arg string, opts *Options) error {
	if _, err := loadConfig(opts); err != nil {
		return err
	}

	target, err := timestamp.Parse(arg)
	if err != nil {
		return err
	}

	p := output.NewPrinter(os.Stdout)
	if !target.After(time.Now().UTC()) {
		p.Expired("expired")
		return nil
	}

	if opts.Plain || !tui.ShouldUseTUI() {
		return plainCountdown(cmd, target, opts, p)
	}

	return tui.Run(tui.NewCountdown(target, headlineUnits(opts)))
}

// plainCountdown prints the remaining time once, then blocks until the
// target passes.
func plainCountdown(cmd *cobra.Command, target time.Time, opts *Options, p *output.Printer) error {
	remaining, err := timestamp.UntilExpiration(target.Format(time.RFC3339), time.Time{}, headlineUnits(opts))
	if err != nil {
		return err
	}
	if remaining != "" {
		p.Line(remaining)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := schedule.WaitUntil(ctx, target); err != nil {
		return fmt.Errorf("countdown interrupted: %w", err)
	}

	p.Reached(target, timestamp.InfractionLayout)
	return nil
}
