package engine

import (
	"math"

	"github.com/alexmoren/studyplan/internal/domain"
)

type balancedStrategy struct{}

func (balancedStrategy) Name() string { return "balanced" }

// Generate splits the available hours evenly across classes and deals
// windows out round-robin, decrementing each class's allocation until
// it is exhausted.
func (balancedStrategy) Generate(ctx *Context) []domain.StudySession {
	if len(ctx.Workload) == 0 {
		return nil
	}

	shareMin := int(math.Round(ctx.AvailableHours * 60 / float64(len(ctx.Workload))))
	remaining := make(map[string]int, len(ctx.Workload))
	for _, w := range ctx.Workload {
		// A class never gets more than its estimated workload.
		remaining[w.ClassID] = minInt(shareMin, int(math.Round(w.EstimatedHours*60)))
	}

	var out []domain.StudySession
	next := 0
	for _, s := range collectSlots(ctx) {
		w, ok := nextWithAllocation(ctx.Workload, remaining, &next)
		if !ok {
			break
		}
		dur := minInt(s.minutes(), remaining[w.ClassID])
		if dur <= 0 {
			continue
		}
		out = append(out, newSession(s.date, s.startMin, dur, w, domain.SessionPractice, nil))
		remaining[w.ClassID] -= dur
	}
	return out
}

// nextWithAllocation advances the round-robin cursor to the next class
// that still has minutes left.
func nextWithAllocation(workload []ClassWorkload, remaining map[string]int, cursor *int) (ClassWorkload, bool) {
	for i := 0; i < len(workload); i++ {
		w := workload[(*cursor+i)%len(workload)]
		if remaining[w.ClassID] > 0 {
			*cursor = (*cursor + i + 1) % len(workload)
			return w, true
		}
	}
	return ClassWorkload{}, false
}
