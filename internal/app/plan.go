package app

import (
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

type GeneratePlanRequest struct {
	Now        *time.Time
	StartDate  *time.Time
	WindowDays int
	Goals      []domain.OptimizationGoal
	ClassScope []string
	Persist    bool
}

func NewGeneratePlanRequest() GeneratePlanRequest {
	return GeneratePlanRequest{
		WindowDays: 14,
		Persist:    true,
	}
}

type GeneratePlanResponse struct {
	GeneratedAt  time.Time
	ScheduleID   string
	Start        time.Time
	End          time.Time
	PrimaryGoal  domain.OptimizationGoal
	Sessions     []domain.StudySession
	TotalMinutes int
	SessionCount int
	Warnings     []string
	Estimate     *WorkloadEstimateView
}

type PlanErrorCode string

const (
	PlanErrInvalidRange  PlanErrorCode = "INVALID_RANGE"
	PlanErrInvalidGoal   PlanErrorCode = "INVALID_GOAL"
	PlanErrInvalidScope  PlanErrorCode = "INVALID_SCOPE"
	PlanErrNoProfile     PlanErrorCode = "NO_PROFILE"
	PlanErrDataIntegrity PlanErrorCode = "DATA_INTEGRITY"
	PlanErrInternal      PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
