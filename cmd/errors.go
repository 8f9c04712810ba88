package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/types"
	"github.com/spf13/viper"
)

// Exit codes. Bad input is distinguished from failures so scripts can
// retry only the latter.
const (
	exitFailure    = 1
	exitBadRequest = 2
)

// HandleFatalError prints err for the user and exits.
func HandleFatalError(err error) {
	PrintError(err)
	os.Exit(exitCode(err))
}

// PrintError prints a short message with a hint to stderr, or the full
// error chain when --verbose is set.
func PrintError(err error) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
}

// LogError records an error that does not fail the command. It is only
// visible with --verbose.
func LogError(msg string, err error) {
	slog.Debug(msg, "error", err)
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, util.ErrAmbiguousID):
		return "Hint: type more characters of the ID."
	case errors.Is(err, util.ErrNotFound):
		return "Hint: run 'interncare task list' or 'interncare suggestions --all' to see IDs."
	case errors.Is(err, types.ErrValidation):
		return "Hint: run the command with --help to see accepted values."
	default:
		return ""
	}
}

func exitCode(err error) int {
	if errors.Is(err, types.ErrValidation) {
		return exitBadRequest
	}
	return exitFailure
}
