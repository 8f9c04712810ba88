package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/interncare/internal/llm"
	"github.com/spf13/viper"
)

// DefaultLLMTimeout applies when llm.timeoutSeconds is unset.
const DefaultLLMTimeout = 30 * time.Second

// LoadLLMConfig resolves the llm.* settings. The provider comes from
// llm.provider, else from the llm.modelName prefix, else the default.
// The key comes from llm.apiKey, else the provider's environment variable.
func LoadLLMConfig() (llm.Config, error) {
	model := strings.TrimSpace(viper.GetString("llm.modelName"))

	provider, err := resolveProvider(viper.GetString("llm.provider"), model)
	if err != nil {
		return llm.Config{}, err
	}
	if model == "" {
		model = llm.DefaultModelForProvider(provider)
	}

	key := strings.TrimSpace(viper.GetString("llm.apiKey"))
	if key == "" {
		key = llm.APIKeyFromEnv(provider)
	}

	baseURL := viper.GetString("llm.baseURL")
	if baseURL == "" && provider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	timeout := DefaultLLMTimeout
	if secs := viper.GetInt("llm.timeoutSeconds"); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	return llm.Config{
		Provider: provider,
		Model:    model,
		APIKey:   key,
		BaseURL:  baseURL,
		Timeout:  timeout,
	}, nil
}

func resolveProvider(configured, model string) (llm.Provider, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		p, err := llm.ValidateProvider(configured)
		if err != nil {
			return "", fmt.Errorf("llm.provider: %w", err)
		}
		return p, nil
	}
	if p, ok := llm.InferProviderFromModel(model); ok {
		return p, nil
	}
	return llm.DefaultProvider, nil
}
