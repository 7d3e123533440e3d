package engine

import (
	"math"
	"sort"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// planningWindowDays is the fixed window the recommended daily pace is
// spread over.
const planningWindowDays = 14

// deadlineHorizonDays bounds the per-class critical deadline list.
const deadlineHorizonDays = 7

// ClassWorkload is the per-class aggregate produced by AnalyzeWorkload.
// Recomputed fresh on every call; never persisted.
type ClassWorkload struct {
	ClassID             string
	ClassName           string
	PendingTasks        int
	EstimatedHours      float64
	AvgDifficulty       float64
	RecommendedDailyMin int
	PriorityScore       float64
	UpcomingDeadlines   []time.Time // due within the next 7 days
}

// UnassignedClassID is the synthetic bucket for tasks without a class.
const UnassignedClassID = "unassigned"

var baseHoursForType = map[domain.TaskType]float64{
	domain.TaskExam:         8,
	domain.TaskProject:      12,
	domain.TaskPaper:        6,
	domain.TaskPresentation: 5,
	domain.TaskLab:          4,
	domain.TaskAssignment:   3,
	domain.TaskHomework:     2,
	domain.TaskReading:      2,
	domain.TaskQuiz:         1,
	domain.TaskDiscussion:   1,
}

const defaultBaseHours = 3

var difficultyForType = map[domain.TaskType]int{
	domain.TaskExam:         5,
	domain.TaskProject:      4,
	domain.TaskPaper:        4,
	domain.TaskPresentation: 3,
	domain.TaskLab:          3,
	domain.TaskAssignment:   3,
	domain.TaskHomework:     2,
	domain.TaskReading:      2,
	domain.TaskQuiz:         2,
	domain.TaskDiscussion:   1,
}

const defaultDifficulty = 3

// BaseHours returns the fixed effort estimate for a task type.
func BaseHours(t domain.TaskType) float64 {
	if h, ok := baseHoursForType[t]; ok {
		return h
	}
	return defaultBaseHours
}

// TypeDifficulty returns the 1-5 difficulty for a task type.
func TypeDifficulty(t domain.TaskType) int {
	if d, ok := difficultyForType[t]; ok {
		return d
	}
	return defaultDifficulty
}

// EstimatedHours returns the heuristic effort for a single task:
// base hours for its type scaled by a description-length complexity
// multiplier, capped at 2x.
func EstimatedHours(t domain.Task) float64 {
	mult := 1 + float64(len(t.Description))/500
	if mult > 2 {
		mult = 2
	}
	return BaseHours(t.Type) * mult
}

// Urgency scores how soon a task is due: 10 when due now, decaying by a
// third of a point per day, floored at zero around 30 days out.
// Undated tasks get a small non-zero urgency so they still rank.
func Urgency(t domain.Task, now time.Time) float64 {
	if t.DueDate == nil {
		return 1
	}
	daysUntil := t.DueDate.Sub(now).Hours() / 24
	return math.Max(0, 10-daysUntil/3)
}

// AnalyzeWorkload groups pending tasks by class and computes the ranked
// per-class workload summary. Pure function of its inputs: no I/O.
func AnalyzeWorkload(now time.Time, tasks []domain.Task, classes []domain.Class) []ClassWorkload {
	names := make(map[string]string, len(classes))
	known := make(map[string]bool, len(classes))
	for _, c := range classes {
		names[c.ID] = c.Name
		known[c.ID] = true
	}

	grouped := make(map[string][]domain.Task)
	var order []string // first-seen class order, for stable ties
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		classID := t.ClassID
		if !known[classID] {
			classID = UnassignedClassID
		}
		if _, seen := grouped[classID]; !seen {
			order = append(order, classID)
		}
		grouped[classID] = append(grouped[classID], t)
	}

	horizon := now.AddDate(0, 0, deadlineHorizonDays)
	workloads := make([]ClassWorkload, 0, len(order))
	for _, classID := range order {
		group := grouped[classID]

		w := ClassWorkload{
			ClassID:      classID,
			ClassName:    names[classID],
			PendingTasks: len(group),
		}
		if w.ClassName == "" {
			w.ClassName = "Unassigned"
		}

		var difficultySum int
		for _, t := range group {
			w.EstimatedHours += EstimatedHours(t)
			w.PriorityScore += Urgency(t, now) * BaseHours(t.Type)
			difficultySum += TypeDifficulty(t.Type)

			if t.DueDate != nil && !t.DueDate.Before(now) && !t.DueDate.After(horizon) {
				w.UpcomingDeadlines = append(w.UpcomingDeadlines, *t.DueDate)
			}
		}
		w.AvgDifficulty = float64(difficultySum) / float64(len(group))
		w.RecommendedDailyMin = int(math.Round(w.EstimatedHours * 60 / planningWindowDays))
		sort.Slice(w.UpcomingDeadlines, func(i, j int) bool {
			return w.UpcomingDeadlines[i].Before(w.UpcomingDeadlines[j])
		})

		workloads = append(workloads, w)
	}

	// Descending by priority; stable sort keeps grouping order on ties.
	sort.SliceStable(workloads, func(i, j int) bool {
		return workloads[i].PriorityScore > workloads[j].PriorityScore
	})
	return workloads
}
