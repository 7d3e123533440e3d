package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and deadlines",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var class, typeStr, due, description string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t := &domain.Task{
				Title:       args[0],
				Type:        domain.TaskType(typeStr),
				Description: description,
			}
			if class != "" {
				classID, err := resolveClassID(ctx, app, class)
				if err != nil {
					return err
				}
				t.ClassID = classID
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (%s)\n", t.Title, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Class name, code, or ID")
	cmd.Flags().StringVar(&typeStr, "type", "assignment", "Task type (assignment, exam, quiz, project, paper, homework, lab, reading, discussion, presentation)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "notes", "", "Free-form description")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool
	var class string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []*domain.Task
			var err error
			if class != "" {
				classID, rerr := resolveClassID(ctx, app, class)
				if rerr != nil {
					return rerr
				}
				tasks, err = app.Tasks.ListByClass(ctx, classID)
			} else {
				tasks, err = app.Tasks.List(ctx, all)
			}
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			names, err := classNameIndex(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, names, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	cmd.Flags().StringVar(&class, "class", "", "Scope to a single class")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkCompleted(ctx, taskID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task completed.")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task removed.")
			return nil
		},
	}
}
