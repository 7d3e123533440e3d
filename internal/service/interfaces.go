package service

import (
	"context"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
)

type ClassService interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListByClass(ctx context.Context, classID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.StudyProfile, error)
	Save(ctx context.Context, p *domain.StudyProfile) error
}

type WorkloadService interface {
	AnalyzeWorkload(ctx context.Context, req app.WorkloadRequest) (*app.WorkloadResponse, error)
}

type PlanService interface {
	GeneratePlan(ctx context.Context, req app.GeneratePlanRequest) (*app.GeneratePlanResponse, error)
	LatestSchedule(ctx context.Context) (*domain.Schedule, []domain.StudySession, error)
	CompleteSession(ctx context.Context, sessionID string) error
}

// The service implementations double as the app-layer use cases.
var (
	_ app.PlanUseCase     = (PlanService)(nil)
	_ app.WorkloadUseCase = (WorkloadService)(nil)
)
