package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spiffcs/tempo/config"
	"github.com/spiffcs/tempo/internal/output"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(newCmdConfigShow())
	cmd.AddCommand(newCmdConfigSet())
	return cmd
}

func newCmdConfigShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			p := output.NewPrinter(os.Stdout)
			p.KV("Config file", config.ConfigPath())
			p.KV("max_units", strconv.Itoa(cfg.MaxUnits))
			p.KV("precision", cfg.Precision)
			p.KV("color", strconv.FormatBool(cfg.ColorEnabled()))
			return nil
		},
	}
}

func newCmdConfigSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Available keys:
  max_units   - Maximum number of unit phrases in humanized durations
  precision   - Finest unit to report (years, months, days, hours, minutes, seconds)
  color       - Colored output (true, false)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "max_units":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid max_units: %s", value)
				}
				if err := cfg.SetMaxUnits(n); err != nil {
					return err
				}
			case "precision":
				if err := cfg.SetPrecision(value); err != nil {
					return err
				}
			case "color":
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid color value: %s (must be true or false)", value)
				}
				if err := cfg.SetColor(enabled); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown config key: %s", key)
			}

			fmt.Printf("%s set to %s.\n", key, value)
			return nil
		},
	}
}
