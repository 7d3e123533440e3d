package engine

import (
	"math"

	"github.com/alexmoren/studyplan/internal/domain"
)

type stressStrategy struct{}

func (stressStrategy) Name() string { return "stress" }

// Generate spreads the workload flat and thin: a uniform daily target
// well under the hard cap, halved on buffer days that sit next to
// clustered deadlines, always feeding the least-loaded class first.
func (stressStrategy) Generate(ctx *Context) []domain.StudySession {
	if len(ctx.Workload) == 0 || ctx.TotalDays == 0 {
		return nil
	}

	dailyTargetMin := int(math.Min(
		0.8*float64(ctx.DailyLimitMin()),
		ctx.TotalWorkloadHours()*60/float64(ctx.TotalDays),
	))
	if dailyTargetMin <= 0 {
		return nil
	}

	bufferDays := highStressBufferDays(ctx)
	usedByDay := make(map[string]int)
	loadByClass := make(map[string]int)

	var out []domain.StudySession
	for _, s := range collectSlots(ctx) {
		key := dayKey(s.date)
		target := dailyTargetMin
		if bufferDays[key] {
			target /= 2
		}

		budget := target - usedByDay[key]
		if budget <= 0 {
			continue
		}

		dur := minInt(focusMinutes(ctx, s), budget)
		if dur <= 0 {
			continue
		}

		w := leastLoadedClass(ctx.Workload, loadByClass)
		out = append(out, newSession(s.date, s.startMin, dur, w, domain.SessionPractice, nil))
		usedByDay[key] += dur
		loadByClass[w.ClassID] += dur
	}
	return out
}

// highStressBufferDays flags days adjacent to two or more deadlines
// (the day itself or its neighbors).
func highStressBufferDays(ctx *Context) map[string]bool {
	deadlinesByDay := make(map[string]int)
	for _, t := range ctx.Tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		deadlinesByDay[dayKey(dateOnly(*t.DueDate))]++
	}

	buffer := make(map[string]bool)
	for day := ctx.Start; !day.After(ctx.End); day = day.AddDate(0, 0, 1) {
		nearby := deadlinesByDay[dayKey(day.AddDate(0, 0, -1))] +
			deadlinesByDay[dayKey(day)] +
			deadlinesByDay[dayKey(day.AddDate(0, 0, 1))]
		if nearby >= 2 {
			buffer[dayKey(day)] = true
		}
	}
	return buffer
}

// leastLoadedClass returns the class with the fewest allocated minutes
// so far; workload order (priority descending) breaks ties.
func leastLoadedClass(workload []ClassWorkload, loadByClass map[string]int) ClassWorkload {
	best := workload[0]
	for _, w := range workload[1:] {
		if loadByClass[w.ClassID] < loadByClass[best.ClassID] {
			best = w
		}
	}
	return best
}
