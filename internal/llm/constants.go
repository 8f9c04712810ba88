package llm

import "strings"

const (
	ProviderOpenAI    Provider = "openai"
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"

	// DefaultProvider is used when neither llm.provider nor a recognisable
	// llm.modelName is configured.
	DefaultProvider = ProviderGemini
)

// DefaultOllamaURL is where a local Ollama server listens by default.
const DefaultOllamaURL = "http://localhost:11434"

// DefaultMaxTokens caps responses for providers that require an explicit limit.
// Suggestions are short; this leaves room for a handful of JSON objects.
const DefaultMaxTokens = 1024

// modelPrefixes maps lower-case model name prefixes to the provider serving them.
var modelPrefixes = []struct {
	prefix   string
	provider Provider
}{
	{"gpt-", ProviderOpenAI},
	{"o1", ProviderOpenAI},
	{"o3", ProviderOpenAI},
	{"o4", ProviderOpenAI},
	{"claude-", ProviderAnthropic},
	{"gemini-", ProviderGemini},
	{"llama", ProviderOllama},
	{"mistral", ProviderOllama},
	{"qwen", ProviderOllama},
	{"phi", ProviderOllama},
}

// InferProviderFromModel guesses the provider from a model name prefix.
func InferProviderFromModel(model string) (Provider, bool) {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, mp := range modelPrefixes {
		if strings.HasPrefix(m, mp.prefix) {
			return mp.provider, true
		}
	}
	return "", false
}
