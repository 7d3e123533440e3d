package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the study profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileWindowCmd(app),
		newProfileSetupCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current study profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var focus, breakMin int
	var dailyLimit float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile pacing values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("focus") {
				p.FocusSessionMin = focus
			}
			if cmd.Flags().Changed("break") {
				p.BreakDurationMin = breakMin
			}
			if cmd.Flags().Changed("daily-limit") {
				p.DailyLimitHours = dailyLimit
			}

			if err := app.Profile.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return nil
		},
	}

	cmd.Flags().IntVar(&focus, "focus", 0, "Focus session length in minutes")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Break length in minutes")
	cmd.Flags().Float64Var(&dailyLimit, "daily-limit", 0, "Daily study limit in hours")

	return cmd
}

func newProfileWindowCmd(app *App) *cobra.Command {
	var productivity int

	cmd := &cobra.Command{
		Use:   "window DAY START END",
		Short: "Add or replace a weekly study window, e.g. 'window mon 18:00 21:00'",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseWeekday(args[0])
			if err != nil {
				return err
			}

			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			pref := domain.StudyTimePreference{
				DayOfWeek:         day,
				StartTime:         args[1],
				EndTime:           args[2],
				ProductivityScore: productivity,
			}

			// Same day + start means replace.
			replaced := false
			for i, existing := range p.Preferences {
				if existing.DayOfWeek == day && existing.StartTime == pref.StartTime {
					p.Preferences[i] = pref
					replaced = true
					break
				}
			}
			if !replaced {
				p.Preferences = append(p.Preferences, pref)
			}

			if err := app.Profile.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Study window saved: %s %s–%s\n", day, pref.StartTime, pref.EndTime)
			return nil
		},
	}

	cmd.Flags().IntVar(&productivity, "productivity", 5, "Productivity score for this window (0-10)")

	return cmd
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(s)
	if len(key) > 3 {
		key = key[:3]
	}
	if day, ok := weekdayNames[key]; ok {
		return day, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
