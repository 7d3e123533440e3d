package service

import (
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/engine"
)

func derefTasks(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out
}

func derefClasses(classes []*domain.Class) []domain.Class {
	out := make([]domain.Class, 0, len(classes))
	for _, c := range classes {
		out = append(out, *c)
	}
	return out
}

// filterTasksByScope keeps only tasks belonging to the scoped classes.
// An empty scope means everything, including unassigned tasks.
func filterTasksByScope(tasks []domain.Task, scope []string) []domain.Task {
	if len(scope) == 0 {
		return tasks
	}
	keep := make(map[string]bool, len(scope))
	for _, id := range scope {
		keep[id] = true
	}
	var out []domain.Task
	for _, t := range tasks {
		if keep[t.ClassID] {
			out = append(out, t)
		}
	}
	return out
}

// validateScope checks every scoped class ID against the roster.
func validateScope(scope []string, classes []domain.Class) error {
	known := make(map[string]bool, len(classes))
	for _, c := range classes {
		known[c.ID] = true
	}
	for _, id := range scope {
		if !known[id] {
			return &app.PlanError{
				Code:    app.PlanErrInvalidScope,
				Message: fmt.Sprintf("unknown class %q in scope", id),
			}
		}
	}
	return nil
}

func workloadViews(workload []engine.ClassWorkload) []app.ClassWorkloadView {
	views := make([]app.ClassWorkloadView, 0, len(workload))
	for _, w := range workload {
		view := app.ClassWorkloadView{
			ClassID:             w.ClassID,
			ClassName:           w.ClassName,
			PendingTasks:        w.PendingTasks,
			EstimatedHours:      w.EstimatedHours,
			AvgDifficulty:       w.AvgDifficulty,
			RecommendedDailyMin: w.RecommendedDailyMin,
			PriorityScore:       w.PriorityScore,
		}
		for _, d := range w.UpcomingDeadlines {
			view.UpcomingDeadlines = append(view.UpcomingDeadlines, d.Format("2006-01-02"))
		}
		views = append(views, view)
	}
	return views
}

func estimateView(est *engine.WorkloadEstimate) *app.WorkloadEstimateView {
	if est == nil {
		return nil
	}
	view := &app.WorkloadEstimateView{
		EstimatedTotalHours:   est.EstimatedTotalHours,
		StressLevel:           string(est.StressLevel),
		RecommendedDailyHours: est.RecommendedDailyHours,
		Recommendations:       est.Recommendations,
		OverloadRisk:          string(est.OverloadRisk),
		BurnoutRisk:           est.BurnoutRisk,
	}
	for _, d := range est.PeakWorkloadDates {
		view.PeakWorkloadDates = append(view.PeakWorkloadDates, d.Format("2006-01-02"))
	}
	if est.DeadlineConflicts > 0 {
		view.DeadlineConflicts = append(view.DeadlineConflicts,
			fmt.Sprintf("%d deadlines cluster on %d day(s)", est.DeadlineConflicts, len(est.PeakWorkloadDates)))
	}
	return view
}

func timeOrNow(t *time.Time) time.Time {
	if t != nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
