/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/interncare/internal/logger"
	"github.com/spf13/cobra"
)

var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List saved crash reports",
	Long: `List the crash reports InternCare saved after an unexpected error.

Attach the output of 'interncare crashes --last' when reporting a bug.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		last, _ := cmd.Flags().GetBool("last")
		out := cmd.OutOrStdout()

		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Fprintln(out, "No crash reports.")
			return nil
		}

		if !last {
			for _, path := range logs {
				fmt.Fprintln(out, path)
			}
			return nil
		}

		report, err := logger.ReadCrashLog(logs[len(logs)-1])
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(out, report)
		}
		fmt.Fprintf(out, "%s  %s %s (%s, %s)\npanic: %s\n\n%s",
			report.Timestamp.Format("2006-01-02 15:04:05"), report.Command, report.Args,
			report.Version, report.Platform, report.PanicValue, report.StackTrace)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crashesCmd)
	crashesCmd.Flags().Bool("last", false, "print the most recent report")
}
