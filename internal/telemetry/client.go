package telemetry

import (
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/posthog/posthog-go"
)

// EventCommandExecuted is sent once per CLI invocation, after it finishes.
const EventCommandExecuted = "command_executed"

// allowedProperties lists the caller-supplied properties that may be sent.
// Anything else is dropped so record data can never leak into an event.
var allowedProperties = map[string]bool{
	"command":     true,
	"success":     true,
	"duration_ms": true,
}

// Client sends anonymous usage events.
type Client interface {
	// Track queues an event. It never blocks the CLI.
	Track(event string, properties map[string]any)

	// Close flushes queued events.
	Close() error
}

// Properties is a type alias for event properties.
type Properties = map[string]any

// enqueuer is the part of the PostHog client used here, so tests can fake it.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// ClientConfig holds configuration for initializing the telemetry client.
type ClientConfig struct {
	APIKey   string
	Version  string
	Config   *Config
	Endpoint string // optional, for self-hosted PostHog
}

// New returns a PostHog-backed client when the user opted in and an API
// key is configured, and a NoopClient otherwise.
func New(cfg ClientConfig) Client {
	if cfg.APIKey == "" || cfg.Config == nil || !cfg.Config.IsEnabled() {
		return NewNoopClient()
	}

	phConfig := posthog.Config{
		BatchSize: 10,
		Interval:  time.Second,
		Logger:    quietPostHogLogger{},
		Endpoint:  cfg.Endpoint,
	}
	ph, err := posthog.NewWithConfig(cfg.APIKey, phConfig)
	if err != nil {
		slog.Debug("telemetry disabled", "error", err)
		return NewNoopClient()
	}
	return newPostHogClient(ph, cfg.Config.AnonymousID, cfg.Version)
}

// postHogClient stamps every event with the anonymous ID and platform.
type postHogClient struct {
	enq        enqueuer
	distinctID string
	version    string
	closeOnce  sync.Once
	closeErr   error
}

func newPostHogClient(enq enqueuer, distinctID, version string) *postHogClient {
	return &postHogClient{enq: enq, distinctID: distinctID, version: version}
}

func (c *postHogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties().
		Set("os", runtime.GOOS).
		Set("arch", runtime.GOARCH).
		Set("cli_version", c.version).
		Set("$process_person_profile", false)
	for k, v := range properties {
		if allowedProperties[k] {
			props.Set(k, v)
		}
	}

	if err := c.enq.Enqueue(posthog.Capture{DistinctId: c.distinctID, Event: event, Properties: props}); err != nil {
		slog.Debug("telemetry event dropped", "event", event, "error", err)
	}
}

func (c *postHogClient) Close() error {
	c.closeOnce.Do(func() { c.closeErr = c.enq.Close() })
	return c.closeErr
}

// TrackCommand records how one command invocation went.
func TrackCommand(c Client, command string, success bool, elapsed time.Duration) {
	c.Track(EventCommandExecuted, Properties{
		"command":     command,
		"success":     success,
		"duration_ms": elapsed.Milliseconds(),
	})
}

// NoopClient is a telemetry client that does nothing.
type NoopClient struct{}

// Track is a no-op.
func (c *NoopClient) Track(event string, properties map[string]any) {}

// Close is a no-op.
func (c *NoopClient) Close() error { return nil }

// NewNoopClient returns a client that does nothing.
func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

// quietPostHogLogger keeps PostHog transport warnings out of CLI output.
type quietPostHogLogger struct{}

func (quietPostHogLogger) Debugf(string, ...interface{}) {}
func (quietPostHogLogger) Logf(string, ...interface{})   {}
func (quietPostHogLogger) Warnf(string, ...interface{})  {}
func (quietPostHogLogger) Errorf(string, ...interface{}) {}
