package prompts

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyAISuggestions is the prompt behind 'interncare suggestions ai'.
	KeyAISuggestions PromptKey = "AISuggestions"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyAISuggestions: {
		defaultContent: AISuggestionsSystemPrompt,
		filename:       "ai_suggestions_prompt.txt",
	},
}

// Filename returns the override filename for key, or "" if key is unknown.
func Filename(key PromptKey) string {
	return promptRegistry[key].filename
}

// GetPrompt returns the user's override for key from templatesDir when one
// exists, and the built-in default otherwise.
func GetPrompt(fsys afero.Fs, key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)
	content, err := afero.ReadFile(fsys, customPromptPath)
	switch {
	case err == nil:
		if strings.TrimSpace(string(content)) == "" {
			return config.defaultContent, nil
		}
		slog.Debug("using custom prompt", "key", key, "path", customPromptPath)
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return config.defaultContent, nil
	default:
		return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, err)
	}
}
