package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/engine"
	"github.com/alexmoren/studyplan/internal/intelligence"
	"github.com/alexmoren/studyplan/internal/repository"
)

type planService struct {
	tasks     repository.TaskRepo
	classes   repository.ClassRepo
	profiles  repository.ProfileRepo
	schedules repository.ScheduleRepo
	estimator intelligence.EstimateService
	observer  UseCaseObserver
}

// NewPlanService wires the full planning pipeline: load state, analyze
// workload, generate and validate a schedule, persist the result.
func NewPlanService(
	tasks repository.TaskRepo,
	classes repository.ClassRepo,
	profiles repository.ProfileRepo,
	schedules repository.ScheduleRepo,
	estimator intelligence.EstimateService,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		tasks:     tasks,
		classes:   classes,
		profiles:  profiles,
		schedules: schedules,
		estimator: estimator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) GeneratePlan(ctx context.Context, req app.GeneratePlanRequest) (resp *app.GeneratePlanResponse, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate_plan",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	now := timeOrNow(req.Now)

	for _, goal := range req.Goals {
		if !domain.ValidGoals[string(goal)] {
			return nil, &app.PlanError{
				Code:    app.PlanErrInvalidGoal,
				Message: fmt.Sprintf("unknown optimization goal %q", goal),
			}
		}
	}

	start := now
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = 14
	}
	end := start.AddDate(0, 0, windowDays-1)

	var warnings []string
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading study profile: %w", err)
		}
		profile = domain.DefaultProfile()
		warnings = append(warnings, "no study profile configured; using defaults")
	}

	classPtrs, err := s.classes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	classes := derefClasses(classPtrs)

	if err := validateScope(req.ClassScope, classes); err != nil {
		return nil, err
	}

	taskPtrs, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	tasks := filterTasksByScope(derefTasks(taskPtrs), req.ClassScope)

	workload := engine.AnalyzeWorkload(now, tasks, classes)

	engCtx, err := engine.BuildContext(start, end, workload, *profile, req.Goals, tasks)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidRange) {
			return nil, &app.PlanError{Code: app.PlanErrInvalidRange, Message: err.Error()}
		}
		return nil, fmt.Errorf("building planning context: %w", err)
	}

	scheduleID := uuid.New().String()
	result := engine.GenerateOptimizedSchedule(engCtx, scheduleID)
	warnings = append(warnings, result.Warnings...)

	var estView *app.WorkloadEstimateView
	if s.estimator != nil {
		est, estErr := s.estimator.EstimateWorkload(ctx, workload, profile.DailyLimitHours)
		if estErr == nil {
			estView = estimateView(est)
		}
	}

	if req.Persist {
		sched := &domain.Schedule{
			ID:           scheduleID,
			Start:        engCtx.Start,
			End:          engCtx.End,
			PrimaryGoal:  result.PrimaryGoal,
			TotalMinutes: result.TotalMinutes,
			SessionCount: result.SessionCount,
			Warnings:     warnings,
		}
		if err := s.schedules.Create(ctx, sched, result.Sessions); err != nil {
			return nil, fmt.Errorf("persisting schedule: %w", err)
		}
	}

	return &app.GeneratePlanResponse{
		GeneratedAt:  now,
		ScheduleID:   scheduleID,
		Start:        engCtx.Start,
		End:          engCtx.End,
		PrimaryGoal:  result.PrimaryGoal,
		Sessions:     result.Sessions,
		TotalMinutes: result.TotalMinutes,
		SessionCount: result.SessionCount,
		Warnings:     warnings,
		Estimate:     estView,
	}, nil
}

func (s *planService) LatestSchedule(ctx context.Context) (*domain.Schedule, []domain.StudySession, error) {
	sched, err := s.schedules.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	sessions, err := s.schedules.ListSessions(ctx, sched.ID)
	if err != nil {
		return nil, nil, err
	}
	return sched, sessions, nil
}

func (s *planService) CompleteSession(ctx context.Context, sessionID string) error {
	return s.schedules.UpdateSessionStatus(ctx, sessionID, domain.SessionCompleted)
}
