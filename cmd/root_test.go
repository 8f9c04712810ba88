package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag in the command tree to its default so
// values from one Execute do not leak into the next.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil), "reset flag %s", f.Name)
		} else {
			require.NoError(t, f.Value.Set(f.DefValue), "reset flag %s", f.Name)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

// testEnv isolates a CLI run: its own data dir, home and global config dir.
type testEnv struct {
	t       *testing.T
	dataDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	origDir := config.GetGlobalConfigDir
	config.GetGlobalConfigDir = func() (string, error) { return home, nil }
	telemetry.SetConfigDir(home)
	t.Cleanup(func() {
		config.GetGlobalConfigDir = origDir
		telemetry.SetConfigDir("")
		viper.Reset()
		resetFlags(t, rootCmd)
		rootCmd.SetIn(nil)
	})
	return &testEnv{t: t, dataDir: t.TempDir()}
}

// run executes the CLI with args against the env's data dir.
func (e *testEnv) run(args ...string) (string, error) {
	return e.runWithInput("", args...)
}

func (e *testEnv) runWithInput(input string, args ...string) (string, error) {
	e.t.Helper()
	viper.Reset()
	resetFlags(e.t, rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(append([]string{"--data-dir", e.dataDir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "interncare %s\n%s", strings.Join(args, " "), out)
	return out
}

func (e *testEnv) decode(v any, args ...string) {
	e.t.Helper()
	out := e.mustRun(append(args, "--json")...)
	require.NoError(e.t, json.Unmarshal([]byte(out), v), out)
}

func TestRootCmd_Help(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("--help")
	assert.Contains(t, out, "InternCare")
	for _, sub := range []string{"task", "mood", "health", "checkin", "dashboard", "mcp"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersionCmd(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("version")
	assert.Equal(t, "interncare version "+GetVersion()+"\n", out)
}

func TestRootCmd_InvalidBackend(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("--backend", "postgres", "task", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.backend")
	assert.Contains(t, err.Error(), "oneof")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("--config", "/does/not/exist.yaml", "task", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestConfigKey(t *testing.T) {
	tests := map[string]string{
		"AppConfig.Data.Backend":         "data.backend",
		"AppConfig.LLM.BaseURL":          "llm.baseURL",
		"AppConfig.Analytics.WindowDays": "analytics.windowDays",
		"AppConfig.Telemetry.Endpoint":   "telemetry.endpoint",
	}
	for in, want := range tests {
		assert.Equal(t, want, configKey(in), in)
	}
}

func TestCrashesCmd_Empty(t *testing.T) {
	env := newTestEnv(t)
	assert.Contains(t, env.mustRun("crashes"), "No crash reports.")
}
