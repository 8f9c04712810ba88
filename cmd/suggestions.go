/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/llm"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/prompts"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:     "suggestions",
	Aliases: []string{"suggest", "tips"},
	Short:   "Show personalised suggestions",
	Long: `Show suggestions generated from your last week of tasks, mood and health data.

Suggestions are regenerated every time you log something, so a dismissed
suggestion comes back after the next change if its rule still applies.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			list := tr.Suggestions(all)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), list)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderSuggestions(list))
			return nil
		})
	},
}

var suggestionsDismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "Hide a suggestion until the next refresh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			id, err := tr.ResolveSuggestionID(args[0])
			if err != nil {
				return err
			}
			if _, err := tr.Dismiss(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Dismissed suggestion %s\n", ui.Icon("✓", ui.StyleSuccess), util.ShortID(id, 0))
			return nil
		})
	},
}

var suggestionsAICmd = &cobra.Command{
	Use:   "ai",
	Short: "Ask an LLM for suggestions based on your recent data",
	Long: `Send your last 7 tasks, mood entries and health entries to the configured
LLM provider and show the suggestions it returns. AI suggestions are shown
only; they are not stored.

Configure the provider with llm.provider (openai, ollama, anthropic, gemini)
and an API key via llm.apiKey or the provider's environment variable
(e.g. GEMINI_API_KEY).

To change what is asked, put your own prompt in
~/.interncare/prompts/ai_suggestions_prompt.txt. It is a Go template that
receives .Limit, .Health, .Moods and .Tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		llmCfg, err := config.LoadLLMConfig()
		if err != nil {
			return err
		}
		promptText, err := loadAIPrompt()
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			chatModel, err := llm.NewChatModel(ctx, llmCfg)
			if err != nil {
				return fmt.Errorf("set up %s model: %w", llmCfg.Provider, err)
			}

			spinner := ui.NewSpinner(cmd.ErrOrStderr(), fmt.Sprintf(" Asking %s...", llmCfg.Model))
			if !isJSON() {
				spinner.Start()
			}
			list, err := tr.AISuggest(ctx, suggest.NewAISuggester(chatModel, suggest.WithPromptTemplate(promptText)))
			spinner.Stop()
			if err != nil {
				slog.Warn("ai suggestions failed", "provider", llmCfg.Provider, "error", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), list)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderSuggestions(list))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
	suggestionsCmd.AddCommand(suggestionsDismissCmd, suggestionsAICmd)
	suggestionsCmd.Flags().Bool("all", false, "include dismissed suggestions")
}

func loadAIPrompt() (string, error) {
	dir, err := config.PromptsDir()
	if err != nil {
		// No home directory: the built-in prompt still works.
		dir = ""
	}
	return prompts.GetPrompt(afero.NewOsFs(), prompts.KeyAISuggestions, dir)
}
