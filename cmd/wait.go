package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/internal/log"
	"github.com/spiffcs/tempo/internal/output"
	"github.com/spiffcs/tempo/internal/schedule"
	"github.com/spiffcs/tempo/internal/timestamp"
)

// NewCmdWait creates the wait command.
func NewCmdWait(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "wait <timestamp>...",
		Short: "Block until one or more timestamps pass",
		Long: `Blocks until each given timestamp passes, announcing each one as it is
reached. Timestamps less than a second away return immediately. Interrupt
with Ctrl-C to stop waiting.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWait(cmd, args, opts)
		},
	}
}

func runWait(cmd *cobra.Command, args []string, opts *Options) error {
	if _, err := loadConfig(opts); err != nil {
		return err
	}

	targets := make([]time.Time, 0, len(args))
	for _, arg := range args {
		target, err := timestamp.Parse(arg)
		if err != nil {
			return err
		}
		targets = append(targets, target)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("waiting", "targets", len(targets))

	p := output.NewPrinter(os.Stdout)
	if err := schedule.WaitEach(ctx, targets, func(target time.Time) {
		p.Reached(target, timestamp.InfractionLayout)
	}); err != nil {
		return fmt.Errorf("wait interrupted: %w", err)
	}
	return nil
}
