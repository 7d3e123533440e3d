package engine

import (
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

func testProfile(prefs ...domain.StudyTimePreference) domain.StudyProfile {
	return domain.StudyProfile{
		ID:                       "profile-1",
		Preferences:              prefs,
		FocusSessionMin:          50,
		BreakDurationMin:         10,
		DailyLimitHours:          4,
		SubjectDifficulty:        map[string]float64{},
		RetentionCurveSteepness:  1,
		ReviewIntervalMultiplier: 1,
	}
}

func pref(day time.Weekday, start, end string, productivity int) domain.StudyTimePreference {
	return domain.StudyTimePreference{
		DayOfWeek:         day,
		StartTime:         start,
		EndTime:           end,
		ProductivityScore: productivity,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func duePtr(t time.Time) *time.Time {
	return &t
}

func task(id, classID string, typ domain.TaskType, due *time.Time) domain.Task {
	return domain.Task{
		ID:      id,
		ClassID: classID,
		Title:   id,
		Type:    typ,
		DueDate: due,
	}
}

func class(id, name string) domain.Class {
	return domain.Class{ID: id, Name: name}
}

func sess(day time.Time, start string, durMin int, classID string) domain.StudySession {
	return domain.StudySession{
		Date:        day,
		StartTime:   start,
		EndTime:     formatClock(parseClock(start) + durMin),
		DurationMin: durMin,
		ClassID:     classID,
		Type:        domain.SessionPractice,
		Difficulty:  3,
		Status:      domain.SessionScheduled,
	}
}
