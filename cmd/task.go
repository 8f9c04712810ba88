/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `Add, list, update, complete and delete tasks.

Tasks are referenced by ID; any unique prefix of an ID works:
  interncare task done 3f2b`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Example: `  interncare task add "Prepare sprint demo" -p high --due 2025-03-14
  interncare task add "Standup" --start 09:00 --end 09:15 --tag work`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newTaskFromFlags(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			task, err := tr.AddTask(ctx, in)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added task %s %s\n",
				ui.Icon("✓", ui.StyleSuccess), ui.StyleSubtle.Render(util.ShortID(task.ID, 0)), task.Title)
			return nil
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, _ := cmd.Flags().GetBool("pending")
		done, _ := cmd.Flags().GetBool("done")
		if pending && done {
			return errors.New("--pending and --done are mutually exclusive")
		}
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			var tasks []models.Task
			for _, t := range tr.Store().Tasks() {
				if (pending && t.Completed) || (done && !t.Completed) {
					continue
				}
				tasks = append(tasks, t)
			}
			if isJSON() {
				if tasks == nil {
					tasks = []models.Task{}
				}
				return printJSON(cmd.OutOrStdout(), tasks)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderTasks(tasks))
			return nil
		})
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a task",
	Long: `Update a task. Only the flags you pass are changed; everything else is kept.

Pass --tag "" to clear all tags.`,
	Example: `  interncare task update 3f2b -p low
  interncare task update 3f2b --title "Prepare demo slides" --due 2025-03-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			return errors.New("nothing to update: pass at least one flag (see --help)")
		}
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			id, err := tr.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			task, changed, err := tr.UpdateTask(ctx, id, patch)
			if err != nil {
				return err
			}
			if !changed {
				return fmt.Errorf("task %s: %w", args[0], util.ErrNotFound)
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated task %s %s\n",
				ui.Icon("✓", ui.StyleSuccess), ui.StyleSubtle.Render(util.ShortID(task.ID, 0)), task.Title)
			return nil
		})
	},
}

var taskDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task between done and pending",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			id, err := tr.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			task, changed, err := tr.ToggleTask(ctx, id)
			if err != nil {
				return err
			}
			if !changed {
				return fmt.Errorf("task %s: %w", args[0], util.ErrNotFound)
			}
			state := "pending"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", ui.Icon("✓", ui.StyleSuccess), task.Title, state)
			return nil
		})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			id, err := tr.ResolveTaskID(args[0])
			if errors.Is(err, util.ErrNotFound) {
				// Deleting something that is already gone is not a failure.
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found. Nothing to delete.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			deleted, err := tr.DeleteTask(ctx, id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found. Nothing to delete.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted task %s\n", ui.Icon("✓", ui.StyleSuccess), util.ShortID(id, 0))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskUpdateCmd, taskDoneCmd, taskDeleteCmd)

	for _, c := range []*cobra.Command{taskAddCmd, taskUpdateCmd} {
		c.Flags().StringP("description", "d", "", "task description")
		c.Flags().StringP("priority", "p", "", "priority: low, medium or high (default medium)")
		c.Flags().String("due", "", "due date (YYYY-MM-DD)")
		c.Flags().String("start", "", "time block start (HH:MM)")
		c.Flags().String("end", "", "time block end (HH:MM)")
		c.Flags().StringSliceP("tag", "t", nil, "tag (repeatable)")
	}
	taskUpdateCmd.Flags().String("title", "", "new title")

	taskListCmd.Flags().Bool("pending", false, "only pending tasks")
	taskListCmd.Flags().Bool("done", false, "only completed tasks")
}

// newTaskFromFlags builds a NewTask from the add flags.
func newTaskFromFlags(cmd *cobra.Command, title string) (models.NewTask, error) {
	f := cmd.Flags()
	in := models.NewTask{Title: title}
	in.Description, _ = f.GetString("description")
	in.DueDate, _ = f.GetString("due")
	in.Tags, _ = f.GetStringSlice("tag")

	if raw, _ := f.GetString("priority"); raw != "" {
		p, err := models.ParsePriority(raw)
		if err != nil {
			return in, err
		}
		in.Priority = p
	}

	block, err := timeBlockFromFlags(cmd)
	if err != nil {
		return in, err
	}
	in.TimeBlock = block
	return in, nil
}

// patchFromFlags builds a TaskPatch from the flags that were actually set.
func patchFromFlags(cmd *cobra.Command) (models.TaskPatch, error) {
	f := cmd.Flags()
	var patch models.TaskPatch

	if f.Changed("title") {
		v, _ := f.GetString("title")
		if strings.TrimSpace(v) == "" {
			return patch, errors.New("title cannot be empty")
		}
		patch.Title = &v
	}
	if f.Changed("description") {
		v, _ := f.GetString("description")
		patch.Description = &v
	}
	if f.Changed("priority") {
		raw, _ := f.GetString("priority")
		p, err := models.ParsePriority(raw)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	if f.Changed("due") {
		v, _ := f.GetString("due")
		patch.DueDate = &v
	}
	if f.Changed("tag") {
		tags, _ := f.GetStringSlice("tag")
		patch.Tags = make([]string, 0, len(tags))
		for _, t := range tags {
			if t = strings.TrimSpace(t); t != "" {
				patch.Tags = append(patch.Tags, t)
			}
		}
	}

	block, err := timeBlockFromFlags(cmd)
	if err != nil {
		return patch, err
	}
	patch.TimeBlock = block
	return patch, nil
}

func timeBlockFromFlags(cmd *cobra.Command) (*models.TimeBlock, error) {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, errors.New("--start and --end must be given together")
	}
	return &models.TimeBlock{Start: start, End: end}, nil
}
