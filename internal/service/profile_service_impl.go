package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.StudyProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Save(ctx context.Context, p *domain.StudyProfile) error {
	if p.FocusSessionMin <= 0 {
		return fmt.Errorf("focus session length must be positive")
	}
	if p.BreakDurationMin < 0 {
		return fmt.Errorf("break duration cannot be negative")
	}
	if p.DailyLimitHours < 0 {
		return fmt.Errorf("daily limit cannot be negative")
	}
	for _, pref := range p.Preferences {
		if err := validateClock(pref.StartTime); err != nil {
			return fmt.Errorf("preference start time: %w", err)
		}
		if err := validateClock(pref.EndTime); err != nil {
			return fmt.Errorf("preference end time: %w", err)
		}
		if pref.ProductivityScore < 0 || pref.ProductivityScore > 10 {
			return fmt.Errorf("productivity score %d out of range 0-10", pref.ProductivityScore)
		}
	}
	return s.profiles.Upsert(ctx, p)
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%q is not a valid HH:MM time", s)
	}
	return nil
}
