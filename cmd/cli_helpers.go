package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// confirmOrAbort asks a yes/no question on out and reads the answer from in.
func confirmOrAbort(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(out, "Cancelled.")
		return false
	}
	return true
}

// openTracker opens the configured backend and store and applies the stored theme.
func openTracker(ctx context.Context) (*app.Tracker, error) {
	cfg := GetConfig()
	dir := config.DataDir()
	slog.Debug("opening store", "dir", dir, "backend", cfg.Data.Backend)

	backend, err := store.OpenBackend(cfg.Data.Backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s backend at %s: %w", cfg.Data.Backend, dir, err)
	}
	s, err := store.Open(ctx, backend)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	ui.ApplyTheme(s.DarkMode())
	return app.NewTracker(s, suggest.NewEngine(), app.WithWindowDays(cfg.Analytics.WindowDays)), nil
}

// withTracker runs fn against an open tracker and closes it afterwards.
func withTracker(cmd *cobra.Command, fn func(ctx context.Context, tr *app.Tracker) error) error {
	ctx := commandContext(cmd)
	tr, err := openTracker(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tr.Store().Close(); cerr != nil {
			LogError("close store", cerr)
		}
	}()
	return fn(ctx, tr)
}

