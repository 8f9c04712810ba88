/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// watchDebounce collapses the burst of events a single save produces.
const watchDebounce = 200 * time.Millisecond

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show averages and task completion for the last days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 0 {
			return fmt.Errorf("--days must be positive, got %d", days)
		}
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			stats := tr.Stats(days)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderStats(stats))
			return nil
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a day-by-day report for the last week or month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("range")
		r, err := analytics.ParseRange(raw)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			report := tr.Report(r)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderReport(report))
			return nil
		})
	},
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "home"},
	Short:   "Show pending tasks, this week's mood and top suggestions",
	Long: `Show the InternCare home view.

With --watch the dashboard redraws whenever the data directory changes, for
example when you log a mood from another terminal. Press Ctrl+C to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		out := cmd.OutOrStdout()
		if !watch {
			return renderDashboard(cmd, out, false)
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		clearScreen := isTerminal(out)
		if err := renderDashboard(cmd, out, clearScreen); err != nil {
			return err
		}
		return watchDir(ctx, config.DataDir(), func() {
			if err := renderDashboard(cmd, out, clearScreen); err != nil {
				slog.Warn("dashboard refresh failed", "error", err)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, reportCmd, dashboardCmd)
	statsCmd.Flags().Int("days", 0, "window in days (default: analytics.windowDays)")
	reportCmd.Flags().String("range", string(analytics.RangeWeek), "report range: week or month")
	dashboardCmd.Flags().Bool("watch", false, "redraw when data changes")
}

// renderDashboard reopens the store on every call so changes written by
// other processes are picked up.
func renderDashboard(cmd *cobra.Command, out io.Writer, clearScreen bool) error {
	return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
		view := tr.Dashboard()
		if isJSON() {
			return printJSON(out, view)
		}
		if clearScreen {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		fmt.Fprint(out, ui.RenderDashboard(view))
		return nil
	})
}

// watchDir calls onChange after each debounced burst of changes in dir
// until ctx is cancelled.
func watchDir(ctx context.Context, dir string, onChange func()) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Debug("watching data dir", "dir", dir)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		case <-timer.C:
			onChange()
		case <-ctx.Done():
			return nil
		}
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
