// Package telemetry records opt-in, anonymous command usage for InternCare.
// Only command names, outcome and timing are ever sent; task, mood and
// health data never leave the machine.
package telemetry

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigFileName lives next to the main config file but is never merged into it.
const ConfigFileName = "telemetry.yaml"

// Config is the user's telemetry choice.
type Config struct {
	Enabled bool `yaml:"enabled"`

	// ConsentAsked is set once the user has made an explicit choice.
	ConsentAsked bool `yaml:"consent_asked"`

	// AnonymousID is a random UUID. Disabling telemetry rotates it, so a
	// later opt-in cannot be linked to earlier events.
	AnonymousID string `yaml:"anonymous_id,omitempty"`
}

// location says where the config file lives. Tests point it at a memory fs.
type location struct {
	mu  sync.RWMutex
	fs  afero.Fs
	dir string
}

var loc = &location{fs: afero.NewOsFs()}

// SetConfigDir overrides the directory holding the file. Empty restores
// the global config directory.
func SetConfigDir(dir string) {
	loc.mu.Lock()
	defer loc.mu.Unlock()
	loc.dir = dir
}

// SetFs swaps the filesystem. Nil restores the OS filesystem.
func SetFs(f afero.Fs) {
	loc.mu.Lock()
	defer loc.mu.Unlock()
	if f == nil {
		f = afero.NewOsFs()
	}
	loc.fs = f
}

func (l *location) resolve() (afero.Fs, string, error) {
	l.mu.RLock()
	f, dir := l.fs, l.dir
	l.mu.RUnlock()

	if dir == "" {
		var err error
		if dir, err = config.GetGlobalConfigDir(); err != nil {
			return nil, "", fmt.Errorf("get config directory: %w", err)
		}
	}
	return f, filepath.Join(dir, ConfigFileName), nil
}

// GetConfigPath returns the full path to the telemetry config file.
func GetConfigPath() (string, error) {
	_, path, err := loc.resolve()
	return path, err
}

// Load reads the telemetry config. A missing file means the user was never
// asked: telemetry stays off.
func Load() (*Config, error) {
	f, path, err := loc.resolve()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := afero.ReadFile(f, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config with owner-only permissions.
func (c *Config) Save() error {
	f, path, err := loc.resolve()
	if err != nil {
		return err
	}
	if err := f.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode telemetry config: %w", err)
	}
	if err := afero.WriteFile(f, path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Enable opts in, generating an anonymous ID if there is none.
func (c *Config) Enable() {
	c.Enabled = true
	c.ConsentAsked = true
	if c.AnonymousID == "" {
		c.AnonymousID = uuid.NewString()
	}
}

// Disable opts out and forgets the anonymous ID.
func (c *Config) Disable() {
	c.Enabled = false
	c.ConsentAsked = true
	c.AnonymousID = ""
}

// IsEnabled reports whether events may be sent.
func (c *Config) IsEnabled() bool {
	return c.Enabled && c.AnonymousID != ""
}
