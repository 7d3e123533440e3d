package engine

import (
	"math"

	"github.com/alexmoren/studyplan/internal/domain"
)

// longSessionMin marks sessions heavy enough to need recovery time
// afterwards.
const longSessionMin = 90

// validationPasses enforce the hard constraints the optimization passes
// are not required to guarantee. Running them on an already-valid
// schedule returns it unchanged.
var validationPasses = []Pass{
	clampSessionLengths,
	enforceRecovery,
	rebalanceWeeks,
	dropOutOfRange,
}

// ApplyValidation runs the validation pipeline on its own. Exposed so
// callers can re-validate a schedule they have edited.
func ApplyValidation(sessions []domain.StudySession, ctx *Context) []domain.StudySession {
	return applyPasses(sessions, ctx, validationPasses)
}

// clampSessionLengths caps sessions at twice the focus duration and
// drops those shorter than the break duration.
func clampSessionLengths(in []domain.StudySession, ctx *Context) []domain.StudySession {
	maxLen := 2 * ctx.Profile.FocusSessionMin
	minLen := ctx.Profile.BreakDurationMin

	var out []domain.StudySession
	for _, s := range sortChronological(in) {
		if s.DurationMin < minLen {
			continue
		}
		if maxLen > 0 && s.DurationMin > maxLen {
			s = rescale(s, maxLen)
		}
		out = append(out, s)
	}
	return out
}

// enforceRecovery keeps at least twice the break duration between two
// consecutive long sessions on the same day, shifting the later one.
func enforceRecovery(in []domain.StudySession, ctx *Context) []domain.StudySession {
	recovery := 2 * ctx.Profile.BreakDurationMin
	if recovery <= 0 {
		return in
	}

	var out []domain.StudySession
	for _, s := range sortChronological(in) {
		if len(out) > 0 {
			prev := out[len(out)-1]
			if prev.Date.Equal(s.Date) {
				// Shifted predecessors must not swallow this session; both-long
				// pairs additionally need the full recovery gap.
				minStart := parseClock(prev.EndTime)
				if prev.DurationMin > longSessionMin && s.DurationMin > longSessionMin {
					minStart += recovery
				}
				if parseClock(s.StartTime) < minStart {
					s = reschedule(s, minStart)
					if minStart+s.DurationMin > 24*60 {
						s = rescale(s, 24*60-minStart)
					}
					if s.DurationMin < minViableSessionMin {
						continue
					}
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// rebalanceWeeks proportionally shrinks every session in a week whose
// total exceeds seven days at the daily cap, never below the viable
// floor.
func rebalanceWeeks(in []domain.StudySession, ctx *Context) []domain.StudySession {
	weeklyCap := ctx.DailyLimitMin() * 7
	if weeklyCap <= 0 {
		return nil
	}

	sessions := sortChronological(in)
	totals := make(map[int]int)
	for _, s := range sessions {
		totals[weekIndex(ctx, s)] += s.DurationMin
	}

	out := make([]domain.StudySession, 0, len(sessions))
	for _, s := range sessions {
		total := totals[weekIndex(ctx, s)]
		if total > weeklyCap {
			shrunk := int(math.Floor(float64(s.DurationMin) * float64(weeklyCap) / float64(total)))
			if shrunk < minViableSessionMin {
				shrunk = minViableSessionMin
			}
			s = rescale(s, shrunk)
		}
		out = append(out, s)
	}
	return out
}

func weekIndex(ctx *Context, s domain.StudySession) int {
	return int(s.Date.Sub(ctx.Start).Hours() / 24 / 7)
}

// dropOutOfRange removes any session dated outside the planning window.
func dropOutOfRange(in []domain.StudySession, ctx *Context) []domain.StudySession {
	var out []domain.StudySession
	for _, s := range sortChronological(in) {
		if s.Date.Before(ctx.Start) || s.Date.After(ctx.End) {
			continue
		}
		out = append(out, s)
	}
	return out
}
