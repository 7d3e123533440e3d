package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/cli/formatter"
)

func newWorkloadCmd(cliApp *App) *cobra.Command {
	var class string
	var noEstimate bool

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Analyze workload per class",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := app.NewWorkloadRequest()

			if class != "" {
				classID, err := resolveClassID(ctx, cliApp, class)
				if err != nil {
					return err
				}
				req.ClassScope = []string{classID}
			}
			if noEstimate {
				req.Estimate = false
			}

			resp, err := cliApp.Workload.AnalyzeWorkload(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkload(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Scope to a single class")
	cmd.Flags().BoolVar(&noEstimate, "no-estimate", false, "Skip the stress/burnout estimate")

	return cmd
}
