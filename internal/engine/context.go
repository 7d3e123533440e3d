package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// ErrInvalidRange indicates the planning window ends before it starts.
// The caller must not invoke schedule generation in that case.
var ErrInvalidRange = errors.New("planning range end precedes start")

// Context bundles everything a scheduling run reads: the date range,
// capacity, workload analysis, profile, goals, and raw tasks. Built once
// per run; passes read it but never mutate it.
type Context struct {
	Start time.Time
	End   time.Time

	TotalDays         int
	AvailableHours    float64
	WeeklyTargetHours float64

	Workload []ClassWorkload
	Profile  domain.StudyProfile
	Goals    []domain.OptimizationGoal
	Primary  domain.OptimizationGoal
	Tasks    []domain.Task
}

// BuildContext computes the derived capacity figures for a planning
// range. Fails only on an inverted range.
func BuildContext(
	start, end time.Time,
	workload []ClassWorkload,
	profile domain.StudyProfile,
	goals []domain.OptimizationGoal,
	tasks []domain.Task,
) (*Context, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s before %s", ErrInvalidRange,
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1

	var availableMin int
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, pref := range profile.Preferences {
			if pref.DayOfWeek == day.Weekday() {
				availableMin += windowMinutes(pref)
			}
		}
	}
	availableHours := float64(availableMin) / 60

	weeks := float64(totalDays) / 7
	if weeks < 1 {
		weeks = 1
	}

	return &Context{
		Start:             start,
		End:               end,
		TotalDays:         totalDays,
		AvailableHours:    availableHours,
		WeeklyTargetHours: availableHours / weeks,
		Workload:          workload,
		Profile:           profile,
		Goals:             goals,
		Primary:           PrimaryGoal(goals),
		Tasks:             tasks,
	}, nil
}

// DailyLimitMin is the hard per-day capacity in minutes.
func (c *Context) DailyLimitMin() int {
	return int(c.Profile.DailyLimitHours * 60)
}

// TotalWorkloadHours sums estimated hours across the workload analysis.
func (c *Context) TotalWorkloadHours() float64 {
	var total float64
	for _, w := range c.Workload {
		total += w.EstimatedHours
	}
	return total
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseClock converts "HH:MM" to minutes since midnight. Malformed
// values parse as zero, which downstream window math treats as empty.
func parseClock(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

// formatClock converts minutes since midnight to "HH:MM".
func formatClock(min int) string {
	if min < 0 {
		min = 0
	}
	if min > 24*60 {
		min = 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func windowMinutes(pref domain.StudyTimePreference) int {
	d := parseClock(pref.EndTime) - parseClock(pref.StartTime)
	if d < 0 {
		return 0
	}
	return d
}
