/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/josephgoksu/interncare/models"
	"github.com/spf13/cobra"
)

var checkinFlagNames = []string{"mood", "sleep", "stress", "water", "notes"}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Daily check-in: log mood and health in one go",
	Long: `Open a short form asking for your mood, last night's sleep, stress level and
water intake, then save one mood entry and one health entry.

Without a terminal (scripts, pipes) pass the values as flags instead:
  interncare checkin --mood 7 --sleep 7.5 --stress 4 --water 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := checkinInput(cmd)
		if errors.Is(err, ui.ErrCheckInCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Check-in cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			mood, health, err := tr.CheckIn(ctx, in.Mood, in.Health)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{"mood": mood, "health": health})
			}
			summary := fmt.Sprintf("Mood %d/10  %s\nSleep %.1fh · stress %d/10 · %g glasses",
				mood.Score, ui.MoodBar(mood.Score), health.SleepHours, health.StressLevel, health.WaterIntake)
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel("Checked in", summary))

			if top := suggest.Top(tr.Suggestions(false), 3); len(top) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderSuggestions(top))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)
	f := checkinCmd.Flags()
	f.Int("mood", 0, "mood score from 1 to 10")
	f.Float64("sleep", 0, "hours slept last night")
	f.Int("stress", 0, "stress level from 1 to 10")
	f.Float64("water", 0, "glasses of water today")
	f.StringP("notes", "n", "", "notes saved with both entries")
	checkinCmd.MarkFlagsRequiredTogether("mood", "sleep", "stress", "water")
}

// checkinInput reads the check-in from flags when any are set, and from
// the interactive form otherwise.
func checkinInput(cmd *cobra.Command) (ui.CheckIn, error) {
	f := cmd.Flags()
	if slices.ContainsFunc(checkinFlagNames, f.Changed) {
		score, _ := f.GetInt("mood")
		sleep, _ := f.GetFloat64("sleep")
		stress, _ := f.GetInt("stress")
		water, _ := f.GetFloat64("water")
		notes, _ := f.GetString("notes")
		return ui.CheckIn{
			Mood:   models.NewMoodEntry{Score: score, Notes: notes},
			Health: models.NewHealthData{SleepHours: sleep, StressLevel: stress, WaterIntake: water, Notes: notes},
		}, nil
	}

	if !ui.IsInteractive() {
		return ui.CheckIn{}, errors.New("checkin needs an interactive terminal; pass --mood, --sleep, --stress and --water instead")
	}
	return ui.RunCheckIn()
}
