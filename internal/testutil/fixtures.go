package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/domain"
)

// Class options
type ClassOption func(*domain.Class)

func WithSubject(s string) ClassOption {
	return func(c *domain.Class) {
		c.Subject = s
	}
}

func WithCode(code string) ClassOption {
	return func(c *domain.Class) {
		c.Code = code
	}
}

func NewTestClass(name string, opts ...ClassOption) *domain.Class {
	now := time.Now().UTC()
	c := &domain.Class{
		ID:        uuid.New().String(),
		Name:      name,
		Subject:   name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskType(typ domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = typ
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithDescription(desc string) TaskOption {
	return func(t *domain.Task) {
		t.Description = desc
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(classID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:        uuid.New().String(),
		ClassID:   classID,
		Title:     title,
		Type:      domain.TaskAssignment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Profile helpers
func NewTestProfile(prefs ...domain.StudyTimePreference) *domain.StudyProfile {
	p := domain.DefaultProfile()
	p.ID = "default"
	p.Preferences = prefs
	return p
}

func Pref(day time.Weekday, start, end string, productivity int) domain.StudyTimePreference {
	return domain.StudyTimePreference{
		DayOfWeek:         day,
		StartTime:         start,
		EndTime:           end,
		ProductivityScore: productivity,
	}
}
