package domain

import "time"

// StudySession is the unit of scheduler output. Sessions are value
// objects: the engine appends, filters, or replaces them, and never
// mutates a session's date/time identity in place.
type StudySession struct {
	ID         string
	ScheduleID string

	Date        time.Time // calendar date, midnight UTC
	StartTime   string    // "HH:MM" 24h
	EndTime     string
	DurationMin int

	ClassID    string
	TaskIDs    []string
	Type       SessionType
	FocusArea  string
	Difficulty int
	Status     SessionStatus
	Notes      string
}
