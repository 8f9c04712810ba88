/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"omitempty"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// Dir is resolved by internal/config when empty.
	Dir     string `mapstructure:"dir"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
}

// AnalyticsConfig controls the trailing window used by stats and the dashboard.
type AnalyticsConfig struct {
	WindowDays int `mapstructure:"windowDays" validate:"min=1,max=365"`
}

// LLMConfig holds configuration for the optional AI suggestions.
type LLMConfig struct {
	Provider       string `mapstructure:"provider" validate:"omitempty,oneof=openai ollama anthropic gemini"`
	ModelName      string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey         string `mapstructure:"apiKey"`
	BaseURL        string `mapstructure:"baseURL" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" validate:"omitempty,min=5,max=600"`
}

// TelemetryConfig points the opt-in usage client at a PostHog project.
type TelemetryConfig struct {
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}
