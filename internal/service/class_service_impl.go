package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
)

type classService struct {
	classes repository.ClassRepo
}

func NewClassService(classes repository.ClassRepo) ClassService {
	return &classService{classes: classes}
}

func (s *classService) Create(ctx context.Context, c *domain.Class) error {
	if c.Name == "" {
		return fmt.Errorf("class name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Subject == "" {
		c.Subject = c.Name
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.classes.Create(ctx, c)
}

func (s *classService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.GetByID(ctx, id)
}

func (s *classService) List(ctx context.Context) ([]*domain.Class, error) {
	return s.classes.List(ctx)
}

func (s *classService) Update(ctx context.Context, c *domain.Class) error {
	if c.Name == "" {
		return fmt.Errorf("class name is required")
	}
	c.UpdatedAt = time.Now().UTC()
	return s.classes.Update(ctx, c)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.classes.Delete(ctx, id)
}
