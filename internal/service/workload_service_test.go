package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
	"github.com/alexmoren/studyplan/internal/testutil"
)

func newWorkloadService(t *testing.T) (WorkloadService, repository.ClassRepo, repository.TaskRepo) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	classes := repository.NewSQLiteClassRepo(conn)
	tasks := repository.NewSQLiteTaskRepo(conn)
	profiles := repository.NewSQLiteProfileRepo(conn)
	return NewWorkloadService(tasks, classes, profiles, nil), classes, tasks
}

func TestAnalyzeWorkload_PerClassBreakdown(t *testing.T) {
	svc, classes, tasks := newWorkloadService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	math := testutil.NewTestClass("Calculus")
	bio := testutil.NewTestClass("Biology")
	require.NoError(t, classes.Create(ctx, math))
	require.NoError(t, classes.Create(ctx, bio))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(math.ID, "Problem set",
		testutil.WithDueDate(now.AddDate(0, 0, 3)))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(math.ID, "Quiz prep",
		testutil.WithTaskType(domain.TaskQuiz),
		testutil.WithDueDate(now.AddDate(0, 0, 6)))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(bio.ID, "Reading ch. 4",
		testutil.WithTaskType(domain.TaskReading))))

	req := app.NewWorkloadRequest()
	req.Now = &now
	resp, err := svc.AnalyzeWorkload(ctx, req)
	require.NoError(t, err)

	byName := map[string]app.ClassWorkloadView{}
	for _, v := range resp.Classes {
		byName[v.ClassName] = v
	}
	require.Contains(t, byName, "Calculus")
	require.Contains(t, byName, "Biology")
	assert.Equal(t, 2, byName["Calculus"].PendingTasks)
	assert.Equal(t, 1, byName["Biology"].PendingTasks)
	assert.Len(t, byName["Calculus"].UpcomingDeadlines, 2)
	assert.Greater(t, byName["Calculus"].EstimatedHours, 0.0)

	require.NotNil(t, resp.Estimate)
	assert.Greater(t, resp.Estimate.EstimatedTotalHours, 0.0)
	assert.NotEmpty(t, resp.Estimate.StressLevel)
}

func TestAnalyzeWorkload_ScopeFiltersClasses(t *testing.T) {
	svc, classes, tasks := newWorkloadService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	math := testutil.NewTestClass("Calculus")
	bio := testutil.NewTestClass("Biology")
	require.NoError(t, classes.Create(ctx, math))
	require.NoError(t, classes.Create(ctx, bio))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(math.ID, "Problem set")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(bio.ID, "Reading")))

	req := app.NewWorkloadRequest()
	req.Now = &now
	req.ClassScope = []string{math.ID}
	resp, err := svc.AnalyzeWorkload(ctx, req)
	require.NoError(t, err)

	require.Len(t, resp.Classes, 1)
	assert.Equal(t, "Calculus", resp.Classes[0].ClassName)
}

func TestAnalyzeWorkload_UnknownScopeClass(t *testing.T) {
	svc, _, _ := newWorkloadService(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	req := app.NewWorkloadRequest()
	req.Now = &now
	req.ClassScope = []string{"nope"}
	_, err := svc.AnalyzeWorkload(context.Background(), req)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrInvalidScope, planErr.Code)
}

func TestAnalyzeWorkload_EstimateOptional(t *testing.T) {
	svc, classes, tasks := newWorkloadService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	class := testutil.NewTestClass("Physics")
	require.NoError(t, classes.Create(ctx, class))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(class.ID, "Homework")))

	req := app.NewWorkloadRequest()
	req.Now = &now
	req.Estimate = false
	resp, err := svc.AnalyzeWorkload(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, resp.Estimate)
	assert.NotEmpty(t, resp.Classes)
}

func TestAnalyzeWorkload_IgnoresCompletedTasks(t *testing.T) {
	svc, classes, tasks := newWorkloadService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	class := testutil.NewTestClass("Statistics")
	require.NoError(t, classes.Create(ctx, class))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(class.ID, "Done already",
		testutil.Completed())))

	req := app.NewWorkloadRequest()
	req.Now = &now
	resp, err := svc.AnalyzeWorkload(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Classes)
}
