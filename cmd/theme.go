/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/ui"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [on|off|toggle]",
	Short:     "Show or change dark mode",
	Long:      `Dark mode picks the color palette used for all output. It is stored with your data.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *app.Tracker) error {
			s := tr.Store()
			dark := s.DarkMode()
			if len(args) == 1 {
				var err error
				switch args[0] {
				case "on":
					dark, err = true, s.SetDarkMode(ctx, true)
				case "off":
					dark, err = false, s.SetDarkMode(ctx, false)
				case "toggle":
					dark, err = s.ToggleDarkMode(ctx)
				}
				if err != nil {
					return err
				}
				ui.ApplyTheme(dark)
			}

			state := "off"
			if dark {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dark mode: %s\n", ui.StylePrimary.Render(state))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
