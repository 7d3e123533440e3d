package engine

import (
	"math"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// baseReviewIntervals is the spaced-repetition ladder in days.
var baseReviewIntervals = [5]int{1, 3, 7, 14, 30}

func reviewIntervals(multiplier float64) []int {
	if multiplier <= 0 {
		multiplier = 1
	}
	out := make([]int, len(baseReviewIntervals))
	for i, d := range baseReviewIntervals {
		scaled := int(math.Round(float64(d) * multiplier))
		if scaled < 1 {
			scaled = 1
		}
		out[i] = scaled
	}
	return out
}

// retentionState is the accumulator threaded through the day-by-day
// walk: when each class was last studied, and how far along the review
// ladder it is.
type retentionState struct {
	lastStudied map[string]time.Time
	intervalIdx map[string]int
}

type retentionStrategy struct{}

func (retentionStrategy) Name() string { return "retention" }

// Generate places each class so that the gap since its last session
// tracks the next unconsumed review interval. Classes never studied in
// the range are seeded first, highest priority first.
func (retentionStrategy) Generate(ctx *Context) []domain.StudySession {
	if len(ctx.Workload) == 0 {
		return nil
	}

	intervals := reviewIntervals(ctx.Profile.ReviewIntervalMultiplier)
	steepness := ctx.Profile.RetentionCurveSteepness
	if steepness <= 0 {
		steepness = 1
	}

	state := retentionState{
		lastStudied: make(map[string]time.Time),
		intervalIdx: make(map[string]int),
	}

	var out []domain.StudySession
	for _, s := range collectSlots(ctx) {
		best := -1
		bestScore := math.Inf(-1)
		for i, w := range ctx.Workload {
			score := w.PriorityScore
			if last, studied := state.lastStudied[w.ClassID]; studied {
				daysSince := int(s.date.Sub(last).Hours() / 24)
				if daysSince == 0 {
					continue // one session per class per day
				}
				idx := state.intervalIdx[w.ClassID]
				if idx >= len(intervals) {
					idx = len(intervals) - 1
				}
				score -= steepness * math.Abs(float64(daysSince-intervals[idx]))
			}
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			continue
		}

		w := ctx.Workload[best]
		sType := domain.SessionNewMaterial
		if state.intervalIdx[w.ClassID] > 0 {
			sType = domain.SessionReview
		}
		out = append(out, newSession(s.date, s.startMin, focusMinutes(ctx, s), w, sType, nil))

		state.lastStudied[w.ClassID] = s.date
		state.intervalIdx[w.ClassID]++
	}
	return out
}

// focusMinutes clamps the profile's focus duration to the window.
func focusMinutes(ctx *Context, s slot) int {
	focus := ctx.Profile.FocusSessionMin
	if focus <= 0 {
		return s.minutes()
	}
	return minInt(focus, s.minutes())
}
