package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/josephgoksu/interncare/internal/utils"
	"github.com/josephgoksu/interncare/models"
	"github.com/josephgoksu/interncare/prompts"
)

// AIContextLimit is how many of the most recent records per collection are
// sent to the model.
const AIContextLimit = 7

// AISuggester asks a chat model for free-form suggestions.
type AISuggester struct {
	model  model.BaseChatModel
	prompt string
	now    func() time.Time
	newID  func() string
}

// AIOption configures an AISuggester.
type AIOption func(*AISuggester)

// WithAIClock overrides the timestamp stamped on AI suggestions.
func WithAIClock(now func() time.Time) AIOption {
	return func(a *AISuggester) { a.now = now }
}

// WithAIIDGenerator overrides suggestion id generation.
func WithAIIDGenerator(newID func() string) AIOption {
	return func(a *AISuggester) { a.newID = newID }
}

// WithPromptTemplate replaces the built-in prompt. The template sees
// .Limit, .Health, .Moods and .Tasks.
func WithPromptTemplate(text string) AIOption {
	return func(a *AISuggester) { a.prompt = text }
}

// NewAISuggester wraps a chat model.
func NewAISuggester(chatModel model.BaseChatModel, opts ...AIOption) *AISuggester {
	a := &AISuggester{
		model:  chatModel,
		prompt: prompts.AISuggestionsSystemPrompt,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type aiSuggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// Suggest sends the latest records to the model and returns the suggestions
// it produced. Entries with an unknown type or priority, or an empty
// message, are dropped. On any failure the returned slice is empty and the
// error says why.
func (a *AISuggester) Suggest(ctx context.Context, health []models.HealthData, moods []models.MoodEntry, tasks []models.Task) ([]models.Suggestion, error) {
	prompt, err := a.buildPrompt(health, moods, tasks)
	if err != nil {
		return []models.Suggestion{}, err
	}

	resp, err := a.model.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return []models.Suggestion{}, fmt.Errorf("generate suggestions: %w", err)
	}

	raw, err := utils.ExtractAndParseJSON[[]aiSuggestion](resp.Content)
	if err != nil {
		return []models.Suggestion{}, fmt.Errorf("parse model response: %w", err)
	}

	now := a.now()
	out := make([]models.Suggestion, 0, len(raw))
	for _, r := range raw {
		typ := models.SuggestionType(strings.ToLower(strings.TrimSpace(r.Type)))
		priority, perr := models.ParsePriority(r.Priority)
		msg := strings.TrimSpace(r.Message)
		if !typ.Valid() || perr != nil || msg == "" {
			continue
		}
		out = append(out, models.Suggestion{
			ID:        a.newID(),
			Type:      typ,
			Message:   msg,
			Priority:  priority,
			CreatedAt: now,
		})
	}
	return out, nil
}

func (a *AISuggester) buildPrompt(health []models.HealthData, moods []models.MoodEntry, tasks []models.Task) (string, error) {
	tmpl, err := template.New("ai_suggestions").Parse(a.prompt)
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}

	enc := func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	}
	h, err := enc(lastN(health, AIContextLimit))
	if err != nil {
		return "", fmt.Errorf("encode health: %w", err)
	}
	m, err := enc(lastN(moods, AIContextLimit))
	if err != nil {
		return "", fmt.Errorf("encode moods: %w", err)
	}
	t, err := enc(lastN(tasks, AIContextLimit))
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Limit":  AIContextLimit,
		"Health": h,
		"Moods":  m,
		"Tasks":  t,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// lastN returns the trailing n items (the newest, in insertion order).
func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
