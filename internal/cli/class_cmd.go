package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage classes",
	}

	cmd.AddCommand(
		newClassAddCmd(app),
		newClassListCmd(app),
		newClassRemoveCmd(app),
	)

	return cmd
}

func newClassAddCmd(app *App) *cobra.Command {
	var subject, code string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Class{
				Name:    args[0],
				Subject: subject,
				Code:    code,
			}
			if err := app.Classes.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added class %s (%s)\n", c.Name, c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject area (defaults to the class name)")
	cmd.Flags().StringVar(&code, "code", "", "Course code, e.g. MATH201")

	return cmd
}

func newClassListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			classes, err := app.Classes.List(ctx)
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No classes yet. Add one with 'studyplan class add'.")
				return nil
			}

			tasks, err := app.Tasks.List(ctx, false)
			if err != nil {
				return err
			}
			pending := make(map[string]int)
			for _, t := range tasks {
				pending[t.ClassID]++
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassList(classes, pending))
			return nil
		},
	}
}

func newClassRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CLASS",
		Short: "Remove a class (its tasks become unassigned)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			classID, err := resolveClassID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Classes.Delete(ctx, classID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Class removed.")
			return nil
		},
	}
}
