package repository

import (
	"context"

	"github.com/alexmoren/studyplan/internal/domain"
)

type ClassRepo interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListByClass(ctx context.Context, classID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.StudyProfile, error)
	Upsert(ctx context.Context, p *domain.StudyProfile) error
}

type ScheduleRepo interface {
	// Create stores a schedule and its sessions in one transaction.
	Create(ctx context.Context, s *domain.Schedule, sessions []domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	Latest(ctx context.Context) (*domain.Schedule, error)
	ListSessions(ctx context.Context, scheduleID string) ([]domain.StudySession, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) error
	Delete(ctx context.Context, id string) error
}
