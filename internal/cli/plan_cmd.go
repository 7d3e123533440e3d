package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

func newPlanCmd(cliApp *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect study schedules",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(cliApp),
		newPlanShowCmd(cliApp),
		newPlanDoneCmd(cliApp),
	)

	return cmd
}

func newPlanGenerateCmd(cliApp *App) *cobra.Command {
	var start, class string
	var days int
	var goals []string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an optimized study schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := app.NewGeneratePlanRequest()

			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				req.StartDate = &startDate
			}
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}
			for _, g := range goals {
				req.Goals = append(req.Goals, domain.OptimizationGoal(g))
			}
			if class != "" {
				classID, err := resolveClassID(ctx, cliApp, class)
				if err != nil {
					return err
				}
				req.ClassScope = []string{classID}
			}
			if dryRun {
				req.Persist = false
			}

			resp, err := cliApp.Plans.GeneratePlan(ctx, req)
			if err != nil {
				return err
			}

			names, err := classNameIndex(ctx, cliApp)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&days, "days", 14, "Planning window in days")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "Optimization goals in priority order (maximize_retention, meet_deadlines, minimize_stress, balance_subjects, focus_difficult)")
	cmd.Flags().StringVar(&class, "class", "", "Scope to a single class")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without saving the schedule")

	return cmd
}

func newPlanShowCmd(cliApp *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the latest saved schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sched, sessions, err := cliApp.Plans.LatestSchedule(ctx)
			if err != nil {
				return err
			}
			names, err := classNameIndex(ctx, cliApp)
			if err != nil {
				return err
			}

			if interactive && cliApp.Interactive() {
				return runScheduleView(sched, sessions, names)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(sched, sessions, names))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the schedule in a scrollable view")

	return cmd
}

func newPlanDoneCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done SESSION",
		Short: "Mark a study session completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessionID, err := resolveSessionID(ctx, cliApp, args[0])
			if err != nil {
				return err
			}
			if err := cliApp.Plans.CompleteSession(ctx, sessionID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session completed.")
			return nil
		},
	}
}

// resolveSessionID matches a session of the latest schedule by full ID
// or unique prefix.
func resolveSessionID(ctx context.Context, cliApp *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("session ID is required")
	}

	_, sessions, err := cliApp.Plans.LatestSchedule(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range sessions {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sessions {
		if len(input) <= len(s.ID) && s.ID[:len(input)] == input {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("session not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
