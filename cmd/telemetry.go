/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/interncare/internal/telemetry"
	"github.com/spf13/cobra"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage telemetry settings",
	Long: `View and manage InternCare's anonymous telemetry settings.

Telemetry is off until you enable it. Each run reports the command name,
whether it succeeded and how long it took, plus version and platform. Tasks,
moods and health data never leave your machine. Disabling also forgets your
anonymous ID.`,
}

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current telemetry status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := telemetry.Load()
		if err != nil {
			return fmt.Errorf("failed to read telemetry status: %w", err)
		}
		out := cmd.OutOrStdout()
		switch {
		case !cfg.ConsentAsked:
			fmt.Fprintln(out, "Telemetry: not configured (off)")
			fmt.Fprintln(out, "   To enable: interncare telemetry enable")
		case cfg.IsEnabled():
			fmt.Fprintln(out, "Telemetry: enabled")
			fmt.Fprintf(out, "   Anonymous ID: %s\n", cfg.AnonymousID)
			fmt.Fprintln(out, "   To disable: interncare telemetry disable")
		default:
			fmt.Fprintln(out, "Telemetry: disabled")
			fmt.Fprintln(out, "   To enable: interncare telemetry enable")
		}
		return nil
	},
}

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable anonymous telemetry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetry(cmd, true)
	},
}

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable anonymous telemetry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetry(cmd, false)
	},
}

func init() {
	rootCmd.AddCommand(telemetryCmd)
	telemetryCmd.AddCommand(telemetryStatusCmd, telemetryEnableCmd, telemetryDisableCmd)
}

func setTelemetry(cmd *cobra.Command, enabled bool) error {
	cfg, err := telemetry.Load()
	if err != nil {
		return fmt.Errorf("failed to read telemetry config: %w", err)
	}
	if enabled {
		cfg.Enable()
	} else {
		cfg.Disable()
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save telemetry config: %w", err)
	}
	if enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Telemetry enabled. Thank you for helping improve InternCare!")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Telemetry disabled.")
	}
	return nil
}
