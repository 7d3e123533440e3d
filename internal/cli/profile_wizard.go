package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

// studyplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func studyplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h <= 0 || h > 16 {
		return fmt.Errorf("enter hours between 0 and 16")
	}
	return nil
}

func validateClockInput(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM, e.g. 18:30")
	}
	return nil
}

func newProfileSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive profile setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive() {
				return fmt.Errorf("profile setup needs an interactive terminal; use 'profile set' and 'profile window' instead")
			}

			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			focus := strconv.Itoa(p.FocusSessionMin)
			breakMin := strconv.Itoa(p.BreakDurationMin)
			daily := strconv.FormatFloat(p.DailyLimitHours, 'f', -1, 64)

			pacing := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Focus session length (minutes)").
						Description("How long can you stay on one subject before needing a break?").
						Value(&focus).
						Validate(validateMinutes),
					huh.NewInput().
						Title("Break length (minutes)").
						Value(&breakMin).
						Validate(validateMinutes),
					huh.NewInput().
						Title("Daily study limit (hours)").
						Value(&daily).
						Validate(validateHours),
				),
			).WithTheme(studyplanHuhTheme()).WithShowHelp(false)

			if err := pacing.Run(); err != nil {
				return err
			}

			p.FocusSessionMin, _ = strconv.Atoi(focus)
			p.BreakDurationMin, _ = strconv.Atoi(breakMin)
			p.DailyLimitHours, _ = strconv.ParseFloat(daily, 64)

			var days []string
			dayForm := huh.NewForm(
				huh.NewGroup(
					huh.NewMultiSelect[string]().
						Title("Which days do you study?").
						Options(
							huh.NewOption("Monday", "mon"),
							huh.NewOption("Tuesday", "tue"),
							huh.NewOption("Wednesday", "wed"),
							huh.NewOption("Thursday", "thu"),
							huh.NewOption("Friday", "fri"),
							huh.NewOption("Saturday", "sat"),
							huh.NewOption("Sunday", "sun"),
						).
						Value(&days),
				),
			).WithTheme(studyplanHuhTheme()).WithShowHelp(false)

			if err := dayForm.Run(); err != nil {
				return err
			}

			p.Preferences = nil
			for _, d := range days {
				day, _ := parseWeekday(d)
				start, end := "18:00", "21:00"
				productivity := "6"

				window := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title(fmt.Sprintf("%s: start time", day)).
							Value(&start).
							Validate(validateClockInput),
						huh.NewInput().
							Title(fmt.Sprintf("%s: end time", day)).
							Value(&end).
							Validate(validateClockInput),
						huh.NewInput().
							Title(fmt.Sprintf("%s: productivity (0-10)", day)).
							Value(&productivity),
					),
				).WithTheme(studyplanHuhTheme()).WithShowHelp(false)

				if err := window.Run(); err != nil {
					return err
				}

				score, _ := strconv.Atoi(productivity)
				p.Preferences = append(p.Preferences, domain.StudyTimePreference{
					DayOfWeek:         day,
					StartTime:         start,
					EndTime:           end,
					ProductivityScore: score,
				})
			}

			if err := app.Profile.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
