// Package llm builds Eino chat models for the supported providers.
package llm

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Provider names an LLM backend.
type Provider string

// Config selects and configures one provider.
type Config struct {
	Provider Provider
	Model    string // empty means the provider's default
	APIKey   string
	BaseURL  string
	Timeout  time.Duration // not every provider client honours it
}

type builder func(ctx context.Context, cfg Config) (model.BaseChatModel, error)

// providerInfo is everything that differs between providers.
type providerInfo struct {
	defaultModel string
	envKeys      []string // checked in order; empty means no key is needed
	build        builder
}

var providers = map[Provider]providerInfo{
	ProviderOpenAI: {
		defaultModel: "gpt-4o-mini",
		envKeys:      []string{"OPENAI_API_KEY"},
		build: func(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
			return openai.NewChatModel(ctx, &openai.ChatModelConfig{
				Model:   cfg.Model,
				APIKey:  cfg.APIKey,
				BaseURL: cfg.BaseURL,
				Timeout: cfg.Timeout,
			})
		},
	},
	ProviderOllama: {
		defaultModel: "llama3.2",
		build: func(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
			baseURL := cfg.BaseURL
			if baseURL == "" {
				baseURL = DefaultOllamaURL
			}
			return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
				BaseURL: baseURL,
				Model:   cfg.Model,
				Timeout: cfg.Timeout,
			})
		},
	},
	ProviderAnthropic: {
		defaultModel: "claude-3-5-haiku-latest",
		envKeys:      []string{"ANTHROPIC_API_KEY"},
		build: func(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
			c := &claude.Config{APIKey: cfg.APIKey, Model: cfg.Model, MaxTokens: DefaultMaxTokens}
			if cfg.BaseURL != "" {
				c.BaseURL = &cfg.BaseURL
			}
			return claude.NewChatModel(ctx, c)
		},
	},
	ProviderGemini: {
		defaultModel: "gemini-2.0-flash",
		envKeys:      []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"},
		build: func(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cfg.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("create gemini client: %w", err)
			}
			return gemini.NewChatModel(ctx, &gemini.Config{Client: client, Model: cfg.Model})
		},
	},
}

// NewChatModel returns a chat model for cfg.Provider, filling in the
// default model name.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	info, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider %q (supported: %s)", cfg.Provider, supportedList())
	}
	if len(info.envKeys) > 0 && cfg.APIKey == "" {
		return nil, fmt.Errorf("%s needs an API key: set llm.apiKey or %s", cfg.Provider, info.envKeys[0])
	}
	if cfg.Model == "" {
		cfg.Model = info.defaultModel
	}
	return info.build(ctx, cfg)
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	if _, ok := providers[Provider(p)]; !ok {
		return "", fmt.Errorf("unsupported provider %q (supported: %s)", p, supportedList())
	}
	return Provider(p), nil
}

// DefaultModelForProvider returns the provider's default model, or "" when
// the provider is unknown.
func DefaultModelForProvider(p Provider) string {
	return providers[p].defaultModel
}

// APIKeyFromEnv returns the first non-empty environment variable the
// provider conventionally reads its key from.
func APIKeyFromEnv(p Provider) string {
	for _, name := range providers[p].envKeys {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return ""
}

func supportedList() string {
	names := make([]string, 0, len(providers))
	for p := range providers {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
