package engine

import (
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// Strategy produces an initial, possibly-conflicting session list from a
// context. Hard constraints are the pass pipelines' job, not the
// strategy's.
type Strategy interface {
	Name() string
	Generate(ctx *Context) []domain.StudySession
}

// goalPriority is the fixed order used to derive the single primary goal
// from a requested set. First match wins.
var goalPriority = []domain.OptimizationGoal{
	domain.GoalMeetDeadlines,
	domain.GoalMaximizeRetention,
	domain.GoalMinimizeStress,
	domain.GoalFocusDifficult,
	domain.GoalBalanceSubjects,
}

// PrimaryGoal selects the one goal that drives base generation.
// Secondary goals are advisory and do not blend into the base schedule.
func PrimaryGoal(goals []domain.OptimizationGoal) domain.OptimizationGoal {
	for _, candidate := range goalPriority {
		for _, g := range goals {
			if g == candidate {
				return candidate
			}
		}
	}
	return domain.GoalBalanceSubjects
}

// StrategyFor maps a primary goal to its generator.
func StrategyFor(goal domain.OptimizationGoal) Strategy {
	switch goal {
	case domain.GoalMeetDeadlines:
		return deadlineStrategy{}
	case domain.GoalMaximizeRetention:
		return retentionStrategy{}
	case domain.GoalMinimizeStress:
		return stressStrategy{}
	case domain.GoalFocusDifficult:
		return difficultyStrategy{}
	default:
		return balancedStrategy{}
	}
}

// slot is one concrete study window on one calendar day.
type slot struct {
	date         time.Time
	startMin     int
	endMin       int
	productivity int
}

func (s slot) minutes() int {
	return s.endMin - s.startMin
}

// collectSlots walks the day range and expands the profile's weekly
// preferences into concrete windows, chronological. All five strategies
// share this skeleton and differ only in allocation policy.
func collectSlots(ctx *Context) []slot {
	var slots []slot
	for day := ctx.Start; !day.After(ctx.End); day = day.AddDate(0, 0, 1) {
		for _, pref := range ctx.Profile.Preferences {
			if pref.DayOfWeek != day.Weekday() {
				continue
			}
			s := slot{
				date:         day,
				startMin:     parseClock(pref.StartTime),
				endMin:       parseClock(pref.EndTime),
				productivity: pref.ProductivityScore,
			}
			if s.minutes() > 0 {
				slots = append(slots, s)
			}
		}
	}
	return slots
}

// newSession builds a scheduled session value. IDs and the owning
// schedule id are stamped by the caller after the pipelines run.
func newSession(day time.Time, startMin, durMin int, w ClassWorkload, sType domain.SessionType, taskIDs []string) domain.StudySession {
	difficulty := int(w.AvgDifficulty + 0.5)
	if difficulty < 1 {
		difficulty = 1
	}
	return domain.StudySession{
		Date:        day,
		StartTime:   formatClock(startMin),
		EndTime:     formatClock(startMin + durMin),
		DurationMin: durMin,
		ClassID:     w.ClassID,
		TaskIDs:     taskIDs,
		Type:        sType,
		FocusArea:   w.ClassName,
		Difficulty:  difficulty,
		Status:      domain.SessionScheduled,
	}
}

func sessionTypeForTask(t domain.TaskType) domain.SessionType {
	switch t {
	case domain.TaskExam, domain.TaskQuiz:
		return domain.SessionReview
	case domain.TaskReading, domain.TaskDiscussion:
		return domain.SessionNewMaterial
	default:
		return domain.SessionPractice
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
