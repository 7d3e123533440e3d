package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
)

type taskService struct {
	tasks   repository.TaskRepo
	classes repository.ClassRepo
}

func NewTaskService(tasks repository.TaskRepo, classes repository.ClassRepo) TaskService {
	return &taskService{tasks: tasks, classes: classes}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Type == "" {
		t.Type = domain.TaskAssignment
	}
	if !domain.ValidTaskTypes[string(t.Type)] {
		return fmt.Errorf("unknown task type %q", t.Type)
	}
	if t.ClassID != "" {
		if _, err := s.classes.GetByID(ctx, t.ClassID); err != nil {
			return fmt.Errorf("resolving class for task: %w", err)
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) ListByClass(ctx context.Context, classID string) ([]*domain.Task, error) {
	return s.tasks.ListByClass(ctx, classID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if !domain.ValidTaskTypes[string(t.Type)] {
		return fmt.Errorf("unknown task type %q", t.Type)
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkCompleted(ctx context.Context, id string) error {
	return s.tasks.MarkCompleted(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
