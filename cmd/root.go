package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/config"
	"github.com/spiffcs/tempo/internal/humanize"
	"github.com/spiffcs/tempo/internal/log"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "tempo",
		Short: "Human-readable time formatting for chat bots",
		Long: `A CLI tool for humanizing time: relative ages ("2 days and 3 hours ago"),
infraction timestamps, expiration countdowns, and deadline waiting.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Initialize(opts.Verbosity, os.Stderr)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// Register subcommands
	rootCmd.AddCommand(NewCmdHumanize(opts))
	rootCmd.AddCommand(NewCmdSince(opts))
	rootCmd.AddCommand(NewCmdUntil(opts))
	rootCmd.AddCommand(NewCmdInfraction(opts))
	rootCmd.AddCommand(NewCmdWait(opts))
	rootCmd.AddCommand(NewCmdCountdown(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// loadConfig loads the config file and applies the color preference.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.NoColor || !cfg.ColorEnabled() {
		color.NoColor = true
	}
	return cfg, nil
}

// resolveFormatting fills unset precision and max-units flags from config.
func resolveFormatting(cfg *config.Config, opts *Options) (humanize.Unit, int, error) {
	precision := cfg.PrecisionUnit()
	if opts.Precision != "" {
		var err error
		precision, err = humanize.ParseUnit(opts.Precision)
		if err != nil {
			return 0, 0, err
		}
	}

	maxUnits := cfg.MaxUnits
	if opts.MaxUnits > 0 {
		maxUnits = opts.MaxUnits
	}

	log.Debug("resolved formatting", "precision", precision.String(), "max_units", maxUnits)
	return precision, maxUnits, nil
}

// headlineUnits resolves the unit cap for the expiry-oriented commands,
// which default to the two headline units rather than the config-wide cap.
func headlineUnits(opts *Options) int {
	if opts.MaxUnits > 0 {
		return opts.MaxUnits
	}
	return 2
}

// addFormattingFlags adds the humanization flags shared by several commands.
func addFormattingFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Precision, "precision", "p", "", "Finest unit to report (years, months, days, hours, minutes, seconds)")
	cmd.Flags().IntVarP(&opts.MaxUnits, "max-units", "n", 0, "Maximum number of unit phrases (default from config)")
}
