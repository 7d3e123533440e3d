package engine

import (
	"fmt"
	"sort"

	"github.com/alexmoren/studyplan/internal/domain"
)

// minViableSessionMin is the floor below which a session is not worth
// keeping.
const minViableSessionMin = 15

// noonMin splits morning from afternoon for sequencing.
const noonMin = 12 * 60

// Pass is one stateless transformation over the session list. Passes
// never fail; they degrade by dropping or shrinking sessions.
type Pass func([]domain.StudySession, *Context) []domain.StudySession

// optimizationPasses run in fixed order. Conflict resolution must run
// before sequencing and load balancing.
var optimizationPasses = []Pass{
	resolveConflicts,
	sequenceDays,
	balanceCognitiveLoad,
	insertBreaks,
	finalCleanup,
}

func applyPasses(sessions []domain.StudySession, ctx *Context, passes []Pass) []domain.StudySession {
	for _, pass := range passes {
		sessions = pass(sessions, ctx)
	}
	return sessions
}

// sortChronological orders sessions by (date, start time), tie-broken
// by class id for determinism.
func sortChronological(sessions []domain.StudySession) []domain.StudySession {
	out := make([]domain.StudySession, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		si, sj := parseClock(out[i].StartTime), parseClock(out[j].StartTime)
		if si != sj {
			return si < sj
		}
		return out[i].ClassID < out[j].ClassID
	})
	return out
}

// reschedule returns a copy of the session moved to a new start, and
// rescale returns a copy with a new duration. Sessions are value
// objects; date/time identity is never edited in place.
func reschedule(s domain.StudySession, startMin int) domain.StudySession {
	s.StartTime = formatClock(startMin)
	s.EndTime = formatClock(startMin + s.DurationMin)
	return s
}

func rescale(s domain.StudySession, durMin int) domain.StudySession {
	s.DurationMin = durMin
	s.EndTime = formatClock(parseClock(s.StartTime) + durMin)
	return s
}

// resolveConflicts walks sessions in chronological order and pushes any
// session overlapping an already-accepted one to the next free moment
// of its day. Sessions pushed past midnight are dropped.
func resolveConflicts(in []domain.StudySession, _ *Context) []domain.StudySession {
	var out []domain.StudySession
	lastEndByDay := make(map[string]int)
	for _, s := range sortChronological(in) {
		key := dayKey(s.Date)
		start := parseClock(s.StartTime)
		if start < lastEndByDay[key] {
			start = lastEndByDay[key]
		}
		end := start + s.DurationMin
		if end > 24*60 {
			continue
		}
		out = append(out, reschedule(s, start))
		lastEndByDay[key] = end
	}
	return out
}

// sequenceDays repacks each day's morning block so longer and harder
// sessions land earliest, when cognition peaks. Afternoon sessions stay
// chronological.
func sequenceDays(in []domain.StudySession, _ *Context) []domain.StudySession {
	sessions := sortChronological(in)

	var out []domain.StudySession
	for i := 0; i < len(sessions); {
		j := i
		for j < len(sessions) && sessions[j].Date.Equal(sessions[i].Date) {
			j++
		}
		out = append(out, sequenceMorning(sessions[i:j])...)
		i = j
	}
	return out
}

func sequenceMorning(day []domain.StudySession) []domain.StudySession {
	var morning, afternoon []domain.StudySession
	for _, s := range day {
		if parseClock(s.StartTime) < noonMin {
			morning = append(morning, s)
		} else {
			afternoon = append(afternoon, s)
		}
	}
	if len(morning) < 2 {
		return day
	}

	cursor := parseClock(morning[0].StartTime)
	sort.SliceStable(morning, func(i, j int) bool {
		if morning[i].DurationMin != morning[j].DurationMin {
			return morning[i].DurationMin > morning[j].DurationMin
		}
		return morning[i].Difficulty > morning[j].Difficulty
	})

	out := make([]domain.StudySession, 0, len(day))
	for _, s := range morning {
		out = append(out, reschedule(s, cursor))
		cursor += s.DurationMin
	}
	return append(out, afternoon...)
}

// balanceCognitiveLoad drops sessions that would push a day past the
// hard daily cap.
func balanceCognitiveLoad(in []domain.StudySession, ctx *Context) []domain.StudySession {
	limit := ctx.DailyLimitMin()
	usedByDay := make(map[string]int)

	var out []domain.StudySession
	for _, s := range sortChronological(in) {
		key := dayKey(s.Date)
		if usedByDay[key]+s.DurationMin > limit {
			continue
		}
		usedByDay[key] += s.DurationMin
		out = append(out, s)
	}
	return out
}

// insertBreaks restores the minimum gap between adjacent sessions by
// shifting the later session forward. A shifted session that runs past
// midnight gets trimmed; the cleanup pass drops it if too little
// remains.
func insertBreaks(in []domain.StudySession, ctx *Context) []domain.StudySession {
	gap := ctx.Profile.BreakDurationMin
	if gap <= 0 {
		return in
	}

	var out []domain.StudySession
	prevEndByDay := make(map[string]int)
	for _, s := range sortChronological(in) {
		key := dayKey(s.Date)
		start := parseClock(s.StartTime)
		if prevEnd, seen := prevEndByDay[key]; seen && start-prevEnd < gap {
			start = prevEnd + gap
		}
		s = reschedule(s, start)
		if start+s.DurationMin > 24*60 {
			s = rescale(s, 24*60-start)
		}
		if s.DurationMin <= 0 {
			continue
		}
		out = append(out, s)
		prevEndByDay[key] = start + s.DurationMin
	}
	return out
}

// finalCleanup drops sub-viable sessions and stamps each note with a
// readable day-of-week summary.
func finalCleanup(in []domain.StudySession, _ *Context) []domain.StudySession {
	var kept []domain.StudySession
	countByDay := make(map[string]int)
	for _, s := range sortChronological(in) {
		if s.DurationMin < minViableSessionMin {
			continue
		}
		countByDay[dayKey(s.Date)]++
		kept = append(kept, s)
	}

	seq := make(map[string]int)
	for i, s := range kept {
		key := dayKey(s.Date)
		seq[key]++
		note := fmt.Sprintf("%s: session %d of %d", s.Date.Weekday(), seq[key], countByDay[key])
		if s.Notes != "" {
			note = s.Notes + " · " + note
		}
		kept[i].Notes = note
	}
	return kept
}
