package domain

import "time"

// Schedule is a persisted planning run: the window it covered, the goal
// it optimized for, and summary metadata. Its sessions are stored
// separately and cascade with it.
type Schedule struct {
	ID          string
	Start       time.Time
	End         time.Time
	PrimaryGoal OptimizationGoal

	TotalMinutes int
	SessionCount int
	Warnings     []string

	CreatedAt time.Time
}
