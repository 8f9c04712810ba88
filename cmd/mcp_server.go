/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server so AI assistants can read and log your data",
	Long: `Start a Model Context Protocol server on stdio.

Add it to your assistant's MCP configuration, for example:

  {"mcpServers": {"interncare": {"command": "interncare", "args": ["mcp"]}}}

Tools: add_task, toggle_task, log_mood, log_health, get_suggestions,
get_stats and get_dashboard.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(commandContext(cmd))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// mcpMarkdownResponse wraps markdown in an MCP tool result.
func mcpMarkdownResponse(markdown string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: markdown}},
	}, nil
}

// mcpErrorResponse reports a rejected call with IsError=true.
func mcpErrorResponse(code, msg string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("**Error (%s):** %s", code, msg)}},
		IsError: true,
	}, nil
}

// toolHandler adapts an internal/mcp handler to the SDK. Each call opens
// the store fresh so writes from the CLI are visible, and calls are
// serialised because they share the data directory.
func toolHandler[T any](mu *sync.Mutex, handle func(context.Context, *app.Tracker, T) (*mcp.ToolResult, error)) mcpsdk.ToolHandlerFor[T, any] {
	return func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[T]) (*mcpsdk.CallToolResultFor[any], error) {
		mu.Lock()
		defer mu.Unlock()

		tr, err := openTracker(ctx)
		if err != nil {
			return mcpErrorResponse(mcp.CodeInternal, err.Error())
		}
		defer func() {
			if cerr := tr.Store().Close(); cerr != nil {
				LogError("close store", cerr)
			}
		}()

		result, err := handle(ctx, tr, params.Arguments)
		if err != nil {
			return mcpErrorResponse(mcp.CodeInternal, err.Error())
		}
		if result.Failed() {
			return mcpErrorResponse(result.Code, result.Error)
		}
		return mcpMarkdownResponse(result.Content)
	}
}

func runMCPServer(ctx context.Context) error {
	// NOTE: MCP uses stdio transport. stdout MUST be pure JSON-RPC.
	fmt.Fprintf(os.Stderr, "MCP Server starting...\n")
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[DEBUG] Using data dir: %s\n", config.DataDir())
	}

	// Fail before the handshake if the store cannot be opened at all.
	tr, err := openTracker(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := tr.Store().Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	impl := &mcpsdk.Implementation{
		Name:    "interncare-mcp",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintf(os.Stderr, "✓ MCP connection established\n")
			if viper.GetBool("verbose") {
				fmt.Fprintf(os.Stderr, "[DEBUG] Client initialized\n")
			}
		},
	}
	server := mcpsdk.NewServer(impl, serverOpts)
	registerMCPTools(server)

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func registerMCPTools(server *mcpsdk.Server) {
	var mu sync.Mutex

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolAddTask,
		Description: `Add a task. Required: {"title":"..."}. Optional: description, priority (low|medium|high), due_date (YYYY-MM-DD), start and end (HH:MM, together), tags.`,
	}, toolHandler(&mu, mcp.HandleAddTask))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolToggleTask,
		Description: `Mark a task done, or pending again if it is already done. Use {"id":"..."}; a unique ID prefix is enough.`,
	}, toolHandler(&mu, mcp.HandleToggleTask))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolLogMood,
		Description: `Log a mood entry. Required: {"score":1-10}. Optional: notes, factors (list of strings). Returns the top suggestions after the update.`,
	}, toolHandler(&mu, mcp.HandleLogMood))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolLogHealth,
		Description: `Log health data. Required: sleep_hours (0-24), stress_level (1-10), water_intake (glasses). Optional: exercise_minutes, exercise_type, notes. Returns the top suggestions after the update.`,
	}, toolHandler(&mu, mcp.HandleLogHealth))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolGetSuggestions,
		Description: fmt.Sprintf(`List current suggestions, highest priority first. Optional: limit (default %d, max %d), include_dismissed.`, mcp.DefaultSuggestionLimit, mcp.MaxSuggestionLimit),
	}, toolHandler(&mu, mcp.HandleGetSuggestions))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolGetStats,
		Description: fmt.Sprintf(`Average mood, sleep, stress, water and task completion. Optional: days (default: the configured window, max %d).`, mcp.MaxStatsDays),
	}, toolHandler(&mu, mcp.HandleGetStats))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        mcp.ToolGetDashboard,
		Description: "Summary of the user's week: stats, next pending tasks and top suggestions. Call this first to get context.",
	}, toolHandler(&mu, mcp.HandleGetDashboard))
}
