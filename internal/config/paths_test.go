package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func overrideConfigDir(t *testing.T, dir string, err error) {
	t.Helper()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, err }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
}

func TestDataDir_Precedence(t *testing.T) {
	home := t.TempDir()
	overrideConfigDir(t, filepath.Join(home, ".interncare"), nil)

	t.Run("explicit config wins", func(t *testing.T) {
		resetViperForTest(t)
		t.Setenv("XDG_DATA_HOME", "/xdg")
		viper.Set("data.dir", "/custom/data")

		if got := DataDir(); got != "/custom/data" {
			t.Errorf("DataDir() = %q, want /custom/data", got)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		resetViperForTest(t)
		t.Setenv("XDG_DATA_HOME", "/xdg")

		want := filepath.Join("/xdg", "interncare")
		if got := DataDir(); got != want {
			t.Errorf("DataDir() = %q, want %q", got, want)
		}
	})

	t.Run("global fallback", func(t *testing.T) {
		resetViperForTest(t)
		t.Setenv("XDG_DATA_HOME", "")

		want := filepath.Join(home, ".interncare", "data")
		if got := DataDir(); got != want {
			t.Errorf("DataDir() = %q, want %q", got, want)
		}
	})

	t.Run("home unavailable", func(t *testing.T) {
		resetViperForTest(t)
		t.Setenv("XDG_DATA_HOME", "")
		overrideConfigDir(t, "", errors.New("no home"))

		if got := DataDir(); got != "./data" {
			t.Errorf("DataDir() = %q, want ./data", got)
		}
	})
}

func TestCrashLogDir(t *testing.T) {
	overrideConfigDir(t, "/cfg", nil)

	got, err := CrashLogDir()
	if err != nil {
		t.Fatalf("CrashLogDir() error = %v", err)
	}
	if want := filepath.Join("/cfg", "crash_logs"); got != want {
		t.Errorf("CrashLogDir() = %q, want %q", got, want)
	}
}

func TestPromptsDir(t *testing.T) {
	overrideConfigDir(t, "/cfg", nil)

	got, err := PromptsDir()
	if err != nil {
		t.Fatalf("PromptsDir() error = %v", err)
	}
	if want := filepath.Join("/cfg", "prompts"); got != want {
		t.Errorf("PromptsDir() = %q, want %q", got, want)
	}

	overrideConfigDir(t, "", errors.New("no home"))
	if _, err := PromptsDir(); err == nil {
		t.Error("PromptsDir() expected error without a home directory")
	}
}
