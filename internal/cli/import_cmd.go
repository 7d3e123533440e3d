package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import classes, tasks, and a study profile from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateSemesterImport(schema); len(errs) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render("Import file is invalid:"))
				for _, e := range errs {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", e)
				}
				return fmt.Errorf("%d validation error(s)", len(errs))
			}

			converted := importer.Convert(schema)
			ctx := context.Background()

			for _, c := range converted.Classes {
				if err := app.Classes.Create(ctx, c); err != nil {
					return fmt.Errorf("importing class %q: %w", c.Name, err)
				}
			}
			for _, t := range converted.Tasks {
				if err := app.Tasks.Create(ctx, t); err != nil {
					return fmt.Errorf("importing task %q: %w", t.Title, err)
				}
			}
			if converted.Profile != nil {
				if err := app.Profile.Save(ctx, converted.Profile); err != nil {
					return fmt.Errorf("importing profile: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d classes and %d tasks", len(converted.Classes), len(converted.Tasks))
			if converted.Profile != nil {
				fmt.Fprint(cmd.OutOrStdout(), ", plus the study profile")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ".")
			return nil
		},
	}
}
