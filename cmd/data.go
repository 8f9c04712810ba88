/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Back up all data as JSON or YAML",
	Example: `  interncare export -o backup.json
  interncare export --format yaml > backup.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = formatFromPath(output)
		}

		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			snap := tr.Store().Snapshot()
			if output == "" {
				return snap.Encode(cmd.OutOrStdout(), format)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := snap.Encode(f, format); err != nil {
				_ = f.Close()
				return fmt.Errorf("write %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}

			summary := fmt.Sprintf("%d tasks, %d mood entries, %d health entries\n→ %s",
				len(snap.Tasks), len(snap.Moods), len(snap.Health), output)
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel("Exported", summary))
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore data from an export, replacing everything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = formatFromPath(path)
		}
		yes, _ := cmd.Flags().GetBool("yes")

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()

		snap, err := store.DecodeSnapshot(f, format)
		if err != nil {
			return err
		}

		if !yes && !confirmOrAbort(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("Replace all current data with %d tasks, %d mood and %d health entries from %s? [y/N]: ",
				len(snap.Tasks), len(snap.Moods), len(snap.Health), path)) {
			return nil
		}

		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			if err := tr.Store().Restore(ctx, snap); err != nil {
				return fmt.Errorf("restore %s: %w", path, err)
			}
			ui.ApplyTheme(snap.DarkMode)
			summary := fmt.Sprintf("%d tasks, %d mood entries, %d health entries", len(snap.Tasks), len(snap.Moods), len(snap.Health))
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel("Imported", summary))
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tasks, mood and health entries and suggestions",
	Long: `Delete every record InternCare has stored. The dark mode preference is kept.

Run 'interncare export' first if you might want the data back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprintln(out, ui.RenderWarningPanel("Reset",
				fmt.Sprintf("All records in %s will be PERMANENTLY DELETED.", config.DataDir())))
			if !confirmOrAbort(cmd.InOrStdin(), out, "Are you sure? [y/N]: ") {
				return nil
			}
		}

		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			if err := tr.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s All data cleared.\n", ui.Icon("✓", ui.StyleSuccess))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)

	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().String("format", "", "json or yaml (default: from the file extension, else json)")
	importCmd.Flags().String("format", "", "json or yaml (default: from the file extension, else json)")
	importCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	resetCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

// formatFromPath picks yaml for .yaml/.yml files and json otherwise.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return store.FormatYAML
	default:
		return store.FormatJSON
	}
}
