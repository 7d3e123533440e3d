package engine

import (
	"math"
	"sort"

	"github.com/alexmoren/studyplan/internal/domain"
)

// peakProductivityScore marks windows reserved for the hardest class.
const peakProductivityScore = 8

// peakFocusFactor lets peak-window sessions run past the normal focus
// duration.
const peakFocusFactor = 1.2

type difficultyStrategy struct{}

func (difficultyStrategy) Name() string { return "difficulty" }

// Generate gives harder classes more hours, and reserves the student's
// highest-productivity windows for the hardest class that still has
// allocation left.
func (difficultyStrategy) Generate(ctx *Context) []domain.StudySession {
	if len(ctx.Workload) == 0 {
		return nil
	}

	ranked := make([]ClassWorkload, len(ctx.Workload))
	copy(ranked, ctx.Workload)
	sort.SliceStable(ranked, func(i, j int) bool {
		return weightedDifficulty(ctx.Profile, ranked[i]) > weightedDifficulty(ctx.Profile, ranked[j])
	})

	var weightSum float64
	for _, w := range ranked {
		weightSum += weightedDifficulty(ctx.Profile, w)
	}
	if weightSum == 0 {
		return nil
	}

	availableMin := ctx.AvailableHours * 60
	remaining := make(map[string]int, len(ranked))
	for _, w := range ranked {
		remaining[w.ClassID] = int(math.Round(availableMin * weightedDifficulty(ctx.Profile, w) / weightSum))
	}

	var out []domain.StudySession
	for _, s := range collectSlots(ctx) {
		w, ok := firstWithAllocation(ranked, remaining)
		if !ok {
			break
		}

		dur := focusMinutes(ctx, s)
		if s.productivity >= peakProductivityScore {
			// Peak windows run long for the hardest remaining class.
			dur = minInt(int(float64(ctx.Profile.FocusSessionMin)*peakFocusFactor), s.minutes())
			if dur <= 0 {
				dur = s.minutes()
			}
		}
		dur = minInt(dur, remaining[w.ClassID])
		if dur <= 0 {
			continue
		}

		out = append(out, newSession(s.date, s.startMin, dur, w, domain.SessionPractice, nil))
		remaining[w.ClassID] -= dur
	}
	return out
}

// weightedDifficulty modifies a class's average difficulty by the
// profile's per-subject weighting (keyed by class name; unweighted
// subjects count as 1).
func weightedDifficulty(profile domain.StudyProfile, w ClassWorkload) float64 {
	weight := 1.0
	if v, ok := profile.SubjectDifficulty[w.ClassName]; ok && v > 0 {
		weight = v
	}
	return w.AvgDifficulty * weight
}

// firstWithAllocation returns the hardest class that still has minutes.
func firstWithAllocation(ranked []ClassWorkload, remaining map[string]int) (ClassWorkload, bool) {
	for _, w := range ranked {
		if remaining[w.ClassID] > 0 {
			return w, true
		}
	}
	return ClassWorkload{}, false
}
