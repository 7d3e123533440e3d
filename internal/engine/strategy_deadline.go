package engine

import (
	"math"
	"sort"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

type deadlineStrategy struct{}

func (deadlineStrategy) Name() string { return "deadline" }

// allocSlice is one task's share of one day's budget.
type allocSlice struct {
	task    domain.Task
	minutes int
}

// Generate front-loads work toward the nearest deadlines: each dated,
// incomplete task has its remaining estimated minutes spread over the
// days before its due date, weighted so days closer to the deadline
// receive proportionally more. Windows then consume the day's slices in
// due-date order.
func (deadlineStrategy) Generate(ctx *Context) []domain.StudySession {
	tasks := datedIncompleteTasks(ctx.Tasks)
	if len(tasks) == 0 {
		return nil
	}
	byClass := workloadByClass(ctx)

	daily := make(map[string][]allocSlice)
	for _, t := range tasks {
		spreadTaskMinutes(daily, t, ctx.Start, ctx.End)
	}

	var out []domain.StudySession
	for _, s := range collectSlots(ctx) {
		key := dayKey(s.date)
		slices := daily[key]
		if len(slices) == 0 {
			continue
		}

		// One slice per window; a partially consumed slice stays at the
		// front for the day's next window.
		sl := slices[0]
		dur := minInt(sl.minutes, s.minutes())
		if dur <= 0 {
			daily[key] = slices[1:]
			continue
		}
		if sl.minutes > dur {
			slices[0].minutes -= dur
		} else {
			daily[key] = slices[1:]
		}

		w, ok := byClass[sl.task.ClassID]
		if !ok {
			w = byClass[UnassignedClassID]
		}
		out = append(out, newSession(s.date, s.startMin, dur, w,
			sessionTypeForTask(sl.task.Type), []string{sl.task.ID}))
	}
	return out
}

// datedIncompleteTasks filters and sorts tasks ascending by due date,
// tie-broken by ID for determinism.
func datedIncompleteTasks(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if !t.Completed && t.DueDate != nil {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(*out[j].DueDate) {
			return out[i].DueDate.Before(*out[j].DueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// spreadTaskMinutes distributes a task's estimated minutes across the
// days from range start through its due date (clamped to the range),
// weighting day i by 1/(daysUntilDue+1) so the allocation ramps up as
// the deadline approaches.
func spreadTaskMinutes(daily map[string][]allocSlice, t domain.Task, start, end time.Time) {
	due := dateOnly(*t.DueDate)
	last := due
	if last.After(end) {
		last = end
	}
	if last.Before(start) {
		return // deadline already past the range start
	}

	totalMin := int(math.Round(EstimatedHours(t) * 60))

	var weightSum float64
	for day := start; !day.After(last); day = day.AddDate(0, 0, 1) {
		weightSum += proximityWeight(day, due)
	}
	if weightSum == 0 {
		return
	}

	for day := start; !day.After(last); day = day.AddDate(0, 0, 1) {
		share := int(math.Round(float64(totalMin) * proximityWeight(day, due) / weightSum))
		if share <= 0 {
			continue
		}
		key := dayKey(day)
		daily[key] = append(daily[key], allocSlice{task: t, minutes: share})
	}
}

func proximityWeight(day, due time.Time) float64 {
	daysUntil := int(due.Sub(day).Hours() / 24)
	if daysUntil < 0 {
		return 0
	}
	return 1 / float64(daysUntil+1)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// workloadByClass indexes the analysis by class id, with a synthetic
// entry for tasks whose class never made it into the roster.
func workloadByClass(ctx *Context) map[string]ClassWorkload {
	byClass := make(map[string]ClassWorkload, len(ctx.Workload))
	for _, w := range ctx.Workload {
		byClass[w.ClassID] = w
	}
	if _, ok := byClass[UnassignedClassID]; !ok {
		byClass[UnassignedClassID] = ClassWorkload{
			ClassID:       UnassignedClassID,
			ClassName:     "Unassigned",
			AvgDifficulty: defaultDifficulty,
		}
	}
	return byClass
}
