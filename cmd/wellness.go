/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/models"
	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review your mood",
}

var moodLogCmd = &cobra.Command{
	Use:     "log <score>",
	Short:   "Log a mood score from 1 (low) to 10 (great)",
	Example: `  interncare mood log 7 -n "good retro" -f sleep -f team`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("score must be a whole number from 1 to 10, got %q", args[0])
		}
		notes, _ := cmd.Flags().GetString("notes")
		factors, _ := cmd.Flags().GetStringSlice("factor")

		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			entry, err := tr.AddMood(ctx, models.NewMoodEntry{Score: score, Notes: notes, Factors: factors})
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged mood %d/10 %s\n",
				ui.Icon("✓", ui.StyleSuccess), entry.Score, ui.StylePrimary.Render(ui.MoodBar(entry.Score)))
			return nil
		})
	},
}

var moodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			moods := tr.Store().Moods()
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), moods)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderMoods(moods))
			return nil
		})
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Log and review sleep, stress, water, exercise and meals",
}

var healthLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log today's health data",
	Example: `  interncare health log --sleep 7.5 --stress 4 --water 8
  interncare health log --sleep 6 --stress 7 --water 5 --exercise-min 30 --exercise-type run --breakfast --lunch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := healthFromFlags(cmd)
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			entry, err := tr.AddHealth(ctx, in)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %.1fh sleep, stress %d/10, %g glasses of water\n",
				ui.Icon("✓", ui.StyleSuccess), entry.SleepHours, entry.StressLevel, entry.WaterIntake)
			return nil
		})
	},
}

var healthListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List health entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(_ context.Context, tr *app.Tracker) error {
			health := tr.Store().Health()
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), health)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderHealth(health))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(moodCmd, healthCmd)
	moodCmd.AddCommand(moodLogCmd, moodListCmd)
	healthCmd.AddCommand(healthLogCmd, healthListCmd)

	moodLogCmd.Flags().StringP("notes", "n", "", "free-form notes")
	moodLogCmd.Flags().StringSliceP("factor", "f", nil, "what influenced your mood (repeatable)")

	f := healthLogCmd.Flags()
	f.Float64("sleep", 0, "hours slept last night")
	f.Int("stress", 0, "stress level from 1 to 10")
	f.Float64("water", 0, "glasses of water today")
	f.Int("exercise-min", 0, "minutes of exercise")
	f.String("exercise-type", "", "kind of exercise (run, yoga, ...)")
	f.Bool("breakfast", false, "had breakfast")
	f.Bool("lunch", false, "had lunch")
	f.Bool("dinner", false, "had dinner")
	f.Int("snacks", 0, "number of snacks")
	f.StringP("notes", "n", "", "free-form notes")
	_ = healthLogCmd.MarkFlagRequired("sleep")
	_ = healthLogCmd.MarkFlagRequired("stress")
	_ = healthLogCmd.MarkFlagRequired("water")
}

// healthFromFlags builds a NewHealthData. Exercise and meals are only set
// when one of their flags was given.
func healthFromFlags(cmd *cobra.Command) models.NewHealthData {
	f := cmd.Flags()
	var in models.NewHealthData
	in.SleepHours, _ = f.GetFloat64("sleep")
	in.StressLevel, _ = f.GetInt("stress")
	in.WaterIntake, _ = f.GetFloat64("water")
	in.Notes, _ = f.GetString("notes")

	if f.Changed("exercise-min") || f.Changed("exercise-type") {
		ex := &models.Exercise{}
		ex.Minutes, _ = f.GetInt("exercise-min")
		ex.Type, _ = f.GetString("exercise-type")
		in.Exercise = ex
	}
	if f.Changed("breakfast") || f.Changed("lunch") || f.Changed("dinner") || f.Changed("snacks") {
		meals := &models.Meals{}
		meals.Breakfast, _ = f.GetBool("breakfast")
		meals.Lunch, _ = f.GetBool("lunch")
		meals.Dinner, _ = f.GetBool("dinner")
		meals.Snacks, _ = f.GetInt("snacks")
		in.Meals = meals
	}
	return in
}
