package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/domain"
)

// Result is the outcome of a scheduling run. An empty or sparse session
// list is a valid, if low-quality, outcome: infeasibility shows up in
// the metadata and warnings, never as an error.
type Result struct {
	ScheduleID   string
	Sessions     []domain.StudySession
	PrimaryGoal  domain.OptimizationGoal
	TotalMinutes int
	SessionCount int
	Warnings     []string
}

// GenerateOptimizedSchedule runs the full pipeline for one planning
// window: base generation by the primary goal's strategy, then the
// optimization passes, then the validation passes. The only error is an
// inverted date range.
func GenerateOptimizedSchedule(ctx *Context, scheduleID string) *Result {
	result := &Result{
		ScheduleID:  scheduleID,
		PrimaryGoal: ctx.Primary,
	}

	if len(ctx.Profile.Preferences) == 0 {
		result.Warnings = append(result.Warnings, "no study time preferences configured; schedule is empty")
		return result
	}
	if ctx.Profile.DailyLimitHours <= 0 {
		result.Warnings = append(result.Warnings, "daily study limit is zero; schedule is empty")
		return result
	}

	strategy := StrategyFor(ctx.Primary)
	sessions := strategy.Generate(ctx)
	sessions = applyPasses(sessions, ctx, optimizationPasses)
	sessions = applyPasses(sessions, ctx, validationPasses)

	for i := range sessions {
		sessions[i].ScheduleID = scheduleID
		sessions[i].ID = sessionID(scheduleID, sessions[i])
		result.TotalMinutes += sessions[i].DurationMin
	}
	result.Sessions = sessions
	result.SessionCount = len(sessions)

	if len(sessions) == 0 {
		result.Warnings = append(result.Warnings, "no feasible sessions in range")
	}
	return result
}

// sessionID derives a stable id from the session's scheduling identity,
// so identical inputs yield identical output.
func sessionID(scheduleID string, s domain.StudySession) string {
	seed := fmt.Sprintf("%s|%s|%s|%s", scheduleID, dayKey(s.Date), s.StartTime, s.ClassID)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}
