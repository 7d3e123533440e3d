package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/engine"
	"github.com/alexmoren/studyplan/internal/intelligence"
	"github.com/alexmoren/studyplan/internal/repository"
)

type workloadService struct {
	tasks     repository.TaskRepo
	classes   repository.ClassRepo
	profiles  repository.ProfileRepo
	estimator intelligence.EstimateService
	observer  UseCaseObserver
}

func NewWorkloadService(
	tasks repository.TaskRepo,
	classes repository.ClassRepo,
	profiles repository.ProfileRepo,
	estimator intelligence.EstimateService,
	observers ...UseCaseObserver,
) WorkloadService {
	return &workloadService{
		tasks:     tasks,
		classes:   classes,
		profiles:  profiles,
		estimator: estimator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *workloadService) AnalyzeWorkload(ctx context.Context, req app.WorkloadRequest) (resp *app.WorkloadResponse, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze_workload",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	now := timeOrNow(req.Now)

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

	var warnings []string
	var estView *app.WorkloadEstimateView
	if req.Estimate {
		dailyLimit := domain.DefaultProfile().DailyLimitHours
		profile, profErr := s.profiles.Get(ctx)
		if profErr == nil {
			dailyLimit = profile.DailyLimitHours
		} else if !errors.Is(profErr, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading study profile: %w", profErr)
		} else {
			warnings = append(warnings, "no study profile configured; estimate assumes default capacity")
		}

		if s.estimator != nil {
			est, estErr := s.estimator.EstimateWorkload(ctx, workload, dailyLimit)
			if estErr == nil {
				estView = estimateView(est)
			}
		} else {
			est := engine.HeuristicEstimate(workload, dailyLimit)
			estView = estimateView(&est)
		}
	}

	return &app.WorkloadResponse{
		GeneratedAt: now,
		Classes:     workloadViews(workload),
		Estimate:    estView,
		Warnings:    warnings,
	}, nil
}
