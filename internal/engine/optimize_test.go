package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/domain"
)

func passCtx(t *testing.T) *Context {
	t.Helper()
	profile := testProfile(pref(time.Monday, "09:00", "18:00", 8))
	return mustContext(t, date(2025, 9, 1), date(2025, 9, 14), nil, profile, nil, nil)
}

func TestResolveConflicts_PushesOverlapToNextFreeSlot(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "09:00", 60, "c1"),
		sess(day, "09:30", 60, "c2"), // overlaps the first
	}

	out := resolveConflicts(in, passCtx(t))

	require.Len(t, out, 2)
	assert.Equal(t, "10:00", out[1].StartTime, "second session pushed to the first free moment")
	assert.Equal(t, "11:00", out[1].EndTime)
}

func TestResolveConflicts_DropsSessionPushedPastMidnight(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "23:00", 50, "c1"),
		sess(day, "23:10", 50, "c2"),
	}

	out := resolveConflicts(in, passCtx(t))

	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ClassID)
}

func TestSequenceDays_MorningFavorsLongerHarderSessions(t *testing.T) {
	day := date(2025, 9, 1)
	short := sess(day, "09:00", 30, "c1")
	long := sess(day, "10:00", 90, "c2")
	afternoon := sess(day, "15:00", 45, "c3")

	out := sequenceDays([]domain.StudySession{short, long, afternoon}, passCtx(t))

	require.Len(t, out, 3)
	assert.Equal(t, "c2", out[0].ClassID, "longest session moves to the cognitive peak")
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "10:30", out[1].StartTime, "shorter session repacked after it")
	assert.Equal(t, "15:00", out[2].StartTime, "afternoon stays chronological")
}

func TestSequenceDays_TiesBrokenByDifficulty(t *testing.T) {
	day := date(2025, 9, 1)
	easy := sess(day, "09:00", 60, "c1")
	easy.Difficulty = 2
	hard := sess(day, "10:30", 60, "c2")
	hard.Difficulty = 5

	out := sequenceDays([]domain.StudySession{easy, hard}, passCtx(t))

	require.Len(t, out, 2)
	assert.Equal(t, "c2", out[0].ClassID)
}

func TestBalanceCognitiveLoad_DropsOverCapSessions(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "09:00", 120, "c1"),
		sess(day, "11:30", 120, "c2"),
		sess(day, "14:30", 30, "c3"), // would exceed the 4h cap
	}

	out := balanceCognitiveLoad(in, passCtx(t))

	require.Len(t, out, 2)
	for _, s := range out {
		assert.NotEqual(t, "c3", s.ClassID)
	}
}

func TestInsertBreaks_RestoresMinimumGap(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "09:00", 60, "c1"),
		sess(day, "10:05", 60, "c2"), // only 5 min after the first ends
	}

	out := insertBreaks(in, passCtx(t))

	require.Len(t, out, 2)
	assert.Equal(t, "10:10", out[1].StartTime, "start shifted to restore the 10 min break")
	assert.Equal(t, 60, out[1].DurationMin, "duration preserved by the shift")
}

func TestInsertBreaks_LeavesWideGapsAlone(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "09:00", 60, "c1"),
		sess(day, "11:00", 60, "c2"),
	}

	out := insertBreaks(in, passCtx(t))

	require.Len(t, out, 2)
	assert.Equal(t, "11:00", out[1].StartTime)
}

func TestFinalCleanup_DropsSubViableAndAnnotates(t *testing.T) {
	day := date(2025, 9, 1) // a Monday
	in := []domain.StudySession{
		sess(day, "09:00", 10, "c1"), // under the 15 min floor
		sess(day, "10:00", 60, "c2"),
		sess(day, "12:00", 60, "c3"),
	}

	out := finalCleanup(in, passCtx(t))

	require.Len(t, out, 2)
	assert.Equal(t, "Monday: session 1 of 2", out[0].Notes)
	assert.Equal(t, "Monday: session 2 of 2", out[1].Notes)
}

func TestOptimizationPipeline_ProducesNonOverlappingDays(t *testing.T) {
	day := date(2025, 9, 1)
	in := []domain.StudySession{
		sess(day, "09:00", 90, "c1"),
		sess(day, "09:30", 60, "c2"),
		sess(day, "10:00", 45, "c3"),
	}

	out := applyPasses(in, passCtx(t), optimizationPasses)

	assertNoOverlaps(t, out)
}

// assertNoOverlaps checks the schedule-wide no-overlap invariant.
func assertNoOverlaps(t *testing.T, sessions []domain.StudySession) {
	t.Helper()
	ordered := sortChronological(sessions)
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if !prev.Date.Equal(cur.Date) {
			continue
		}
		require.GreaterOrEqual(t, parseClock(cur.StartTime), parseClock(prev.EndTime),
			"sessions %q and %q overlap on %s", prev.StartTime, cur.StartTime, prev.Date.Format("2006-01-02"))
	}
}
