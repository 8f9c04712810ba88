// Package logger provides slog setup plus crash reports for InternCare.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// MaxCrashLogs is how many crash reports are kept; older ones are pruned
// after each write.
const MaxCrashLogs = 10

const (
	crashPrefix     = "crash_"
	crashSuffix     = ".json"
	crashTimeLayout = "20060102_150405.000"
	maxInputLength  = 500
)

// CrashLog is one crash report as written to disk.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	GoVersion  string    `json:"go_version"`
	Platform   string    `json:"platform"`
}

// crashState is what the running command has told us about itself.
type crashState struct {
	mu      sync.RWMutex
	fs      afero.Fs
	dir     string
	version string
	command string
	args    string
}

var state = &crashState{fs: afero.NewOsFs()}

// SetBasePath sets the directory crash reports are written to.
func SetBasePath(dir string) { state.set(func(s *crashState) { s.dir = dir }) }

// SetVersion records the application version.
func SetVersion(v string) { state.set(func(s *crashState) { s.version = v }) }

// SetCommand records the command path being run, e.g. "interncare mood log".
func SetCommand(cmd string) { state.set(func(s *crashState) { s.command = cmd }) }

// SetLastInput records the command's arguments, truncated.
func SetLastInput(input string) {
	input = strings.TrimSpace(input)
	if len(input) > maxInputLength {
		input = input[:maxInputLength] + "... [truncated]"
	}
	state.set(func(s *crashState) { s.args = input })
}

// SetFs swaps the filesystem crash reports go to. nil restores the OS filesystem.
func SetFs(fsys afero.Fs) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	state.set(func(s *crashState) { s.fs = fsys })
}

func (s *crashState) set(fn func(*crashState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func (s *crashState) snapshot() (afero.Fs, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dir := s.dir
	if dir == "" {
		dir = filepath.Join(".interncare", "crash_logs")
	}
	return s.fs, dir
}

// HandlePanic recovers a panic, saves a crash report and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	report := newCrashLog(r, time.Now())
	path, err := writeCrashLog(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, report.StackTrace)
	}
	printCrashNotice(os.Stderr, path)
	os.Exit(1)
}

func printCrashNotice(w io.Writer, path string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "InternCare hit an unexpected error and had to stop.")
	if path != "" {
		fmt.Fprintf(w, "A crash report was saved to:\n  %s\n", path)
		fmt.Fprintln(w, "Run 'interncare crashes --last' to view it.")
	}
	fmt.Fprintln(w, "Your tasks and wellness records were not modified.")
}

func newCrashLog(panicValue any, now time.Time) CrashLog {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return CrashLog{
		Timestamp:  now,
		Version:    state.version,
		Command:    state.command,
		Args:       state.args,
		PanicValue: fmt.Sprint(panicValue),
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// writeCrashLog saves report and prunes old reports. It returns the path written.
func writeCrashLog(report CrashLog) (string, error) {
	fsys, dir := state.snapshot()
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}
	path := filepath.Join(dir, crashPrefix+report.Timestamp.Format(crashTimeLayout)+crashSuffix)
	if err := afero.WriteFile(fsys, path, content, 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}

	if err := pruneCrashLogs(fsys, dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}
	return path, nil
}

// crashLogNames returns report file names in dir, oldest first. Names embed
// the timestamp, so lexical order is chronological.
func crashLogNames(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), crashPrefix) && strings.HasSuffix(e.Name(), crashSuffix) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func pruneCrashLogs(fsys afero.Fs, dir string) error {
	names, err := crashLogNames(fsys, dir)
	if err != nil || len(names) <= MaxCrashLogs {
		return err
	}
	for _, name := range names[:len(names)-MaxCrashLogs] {
		if err := fsys.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

// ListCrashLogs returns the paths of saved crash reports, oldest first.
func ListCrashLogs() ([]string, error) {
	fsys, dir := state.snapshot()
	names, err := crashLogNames(fsys, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// ReadCrashLog decodes the crash report at path.
func ReadCrashLog(path string) (CrashLog, error) {
	fsys, _ := state.snapshot()
	var report CrashLog
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return report, err
	}
	if err := json.Unmarshal(content, &report); err != nil {
		return report, fmt.Errorf("decode crash log %s: %w", path, err)
	}
	return report, nil
}
