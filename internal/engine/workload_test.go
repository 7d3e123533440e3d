package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/domain"
)

func TestAnalyzeWorkload_GroupsByClass(t *testing.T) {
	now := date(2025, 9, 1)
	classes := []domain.Class{class("c1", "Calculus"), class("c2", "History")}
	tasks := []domain.Task{
		task("t1", "c1", domain.TaskAssignment, duePtr(date(2025, 9, 5))),
		task("t2", "c1", domain.TaskQuiz, duePtr(date(2025, 9, 4))),
		task("t3", "c2", domain.TaskReading, nil),
	}

	workloads := AnalyzeWorkload(now, tasks, classes)

	require.Len(t, workloads, 2)
	byID := map[string]ClassWorkload{}
	for _, w := range workloads {
		byID[w.ClassID] = w
	}
	assert.Equal(t, 2, byID["c1"].PendingTasks)
	assert.Equal(t, 1, byID["c2"].PendingTasks)
	assert.Equal(t, "Calculus", byID["c1"].ClassName)
}

func TestAnalyzeWorkload_UnassignedBucket(t *testing.T) {
	now := date(2025, 9, 1)
	tasks := []domain.Task{
		task("t1", "", domain.TaskAssignment, nil),
		task("t2", "ghost-class", domain.TaskHomework, nil),
	}

	workloads := AnalyzeWorkload(now, tasks, nil)

	require.Len(t, workloads, 1)
	assert.Equal(t, UnassignedClassID, workloads[0].ClassID)
	assert.Equal(t, "Unassigned", workloads[0].ClassName)
	assert.Equal(t, 2, workloads[0].PendingTasks)
}

func TestAnalyzeWorkload_SkipsCompletedTasks(t *testing.T) {
	now := date(2025, 9, 1)
	done := task("t1", "c1", domain.TaskExam, duePtr(date(2025, 9, 3)))
	done.Completed = true

	workloads := AnalyzeWorkload(now, []domain.Task{done}, []domain.Class{class("c1", "Calculus")})

	assert.Empty(t, workloads)
}

func TestEstimatedHours_ComplexityCappedAtDouble(t *testing.T) {
	short := task("t1", "c1", domain.TaskAssignment, nil)
	long := short
	long.Description = strings.Repeat("x", 10000)

	assert.InDelta(t, 3, EstimatedHours(short), 0.01)
	assert.InDelta(t, 6, EstimatedHours(long), 0.01, "multiplier caps at 2x base hours")
}

func TestUrgency_DecaysWithDistance(t *testing.T) {
	now := date(2025, 9, 1)

	dueToday := task("t1", "c1", domain.TaskExam, duePtr(now))
	dueFar := task("t2", "c1", domain.TaskExam, duePtr(now.AddDate(0, 0, 45)))
	undated := task("t3", "c1", domain.TaskExam, nil)

	assert.InDelta(t, 10, Urgency(dueToday, now), 0.01)
	assert.Zero(t, Urgency(dueFar, now), "urgency floors at zero past ~30 days")
	assert.Equal(t, 1.0, Urgency(undated, now), "undated tasks keep a small urgency")
}

func TestAnalyzeWorkload_SortedByPriorityDescending(t *testing.T) {
	now := date(2025, 9, 1)
	classes := []domain.Class{class("c1", "Calculus"), class("c2", "History")}
	tasks := []domain.Task{
		// History: exam due in 2 days, far heavier urgency*importance.
		task("t1", "c2", domain.TaskExam, duePtr(now.AddDate(0, 0, 2))),
		// Calculus: one discussion due in 20 days.
		task("t2", "c1", domain.TaskDiscussion, duePtr(now.AddDate(0, 0, 20))),
	}

	workloads := AnalyzeWorkload(now, tasks, classes)

	require.Len(t, workloads, 2)
	assert.Equal(t, "c2", workloads[0].ClassID)
	assert.Greater(t, workloads[0].PriorityScore, workloads[1].PriorityScore)
}

func TestAnalyzeWorkload_DeadlinesWithinSevenDays(t *testing.T) {
	now := date(2025, 9, 1)
	classes := []domain.Class{class("c1", "Calculus")}
	tasks := []domain.Task{
		task("t1", "c1", domain.TaskQuiz, duePtr(now.AddDate(0, 0, 3))),
		task("t2", "c1", domain.TaskExam, duePtr(now.AddDate(0, 0, 10))),
		task("t3", "c1", domain.TaskHomework, duePtr(now.AddDate(0, 0, 6))),
	}

	workloads := AnalyzeWorkload(now, tasks, classes)

	require.Len(t, workloads, 1)
	require.Len(t, workloads[0].UpcomingDeadlines, 2, "only deadlines inside the 7-day horizon")
	assert.True(t, workloads[0].UpcomingDeadlines[0].Before(workloads[0].UpcomingDeadlines[1]))
}

func TestAnalyzeWorkload_RecommendedDailySpreadsOverWindow(t *testing.T) {
	now := date(2025, 9, 1)
	tasks := []domain.Task{task("t1", "c1", domain.TaskExam, duePtr(now.AddDate(0, 0, 5)))}

	workloads := AnalyzeWorkload(now, tasks, []domain.Class{class("c1", "Calculus")})

	require.Len(t, workloads, 1)
	expected := int(workloads[0].EstimatedHours*60/planningWindowDays + 0.5)
	assert.Equal(t, expected, workloads[0].RecommendedDailyMin)
}

func TestAnalyzeWorkload_PureFunctionOfInputs(t *testing.T) {
	now := date(2025, 9, 1)
	classes := []domain.Class{class("c1", "Calculus"), class("c2", "History")}
	tasks := []domain.Task{
		task("t1", "c1", domain.TaskExam, duePtr(now.AddDate(0, 0, 2))),
		task("t2", "c2", domain.TaskPaper, duePtr(now.AddDate(0, 0, 9))),
		task("t3", "c2", domain.TaskLab, nil),
	}

	first := AnalyzeWorkload(now, tasks, classes)
	second := AnalyzeWorkload(now, tasks, classes)

	assert.Equal(t, first, second)
}

func TestBaseHours_UnknownTypeDefaults(t *testing.T) {
	assert.Equal(t, float64(defaultBaseHours), BaseHours(domain.TaskType("seminar")))
	assert.Equal(t, 8.0, BaseHours(domain.TaskExam))
	assert.Equal(t, 12.0, BaseHours(domain.TaskProject))
}
