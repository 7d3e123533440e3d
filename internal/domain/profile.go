package domain

import "time"

// StudyTimePreference is a recurring weekly slot the student is willing
// to study in. Times are "HH:MM" 24h strings; ProductivityScore is 0-10.
type StudyTimePreference struct {
	DayOfWeek         time.Weekday
	StartTime         string
	EndTime           string
	ProductivityScore int
}

// StudyProfile is the student's capacity contract. Read-only to the
// scheduling engine; owned and edited by the caller.
type StudyProfile struct {
	ID          string
	Preferences []StudyTimePreference

	FocusSessionMin  int
	BreakDurationMin int
	DailyLimitHours  float64

	// Per-subject difficulty weighting, keyed by class subject.
	SubjectDifficulty map[string]float64

	// Spaced-repetition tuning
	RetentionCurveSteepness  float64
	ReviewIntervalMultiplier float64
}

// DefaultProfile returns a profile with sensible starting values and no
// configured study windows.
func DefaultProfile() *StudyProfile {
	return &StudyProfile{
		FocusSessionMin:          50,
		BreakDurationMin:         10,
		DailyLimitHours:          4,
		SubjectDifficulty:        map[string]float64{},
		RetentionCurveSteepness:  1.0,
		ReviewIntervalMultiplier: 1.0,
	}
}
