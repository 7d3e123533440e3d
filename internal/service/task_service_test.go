package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
	"github.com/alexmoren/studyplan/internal/testutil"
)

func newTaskService(t *testing.T) (TaskService, repository.ClassRepo) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	classes := repository.NewSQLiteClassRepo(conn)
	return NewTaskService(repository.NewSQLiteTaskRepo(conn), classes), classes
}

func TestTaskService_CreateAssignsDefaults(t *testing.T) {
	svc, classes := newTaskService(t)
	ctx := context.Background()

	class := testutil.NewTestClass("Algorithms")
	require.NoError(t, classes.Create(ctx, class))

	task := &domain.Task{ClassID: class.ID, Title: "Heap exercises"}
	require.NoError(t, svc.Create(ctx, task))

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskAssignment, task.Type)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heap exercises", got.Title)
}

func TestTaskService_CreateRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTaskService(t)
	err := svc.Create(context.Background(), &domain.Task{})
	assert.Error(t, err)
}

func TestTaskService_CreateRejectsUnknownType(t *testing.T) {
	svc, _ := newTaskService(t)
	err := svc.Create(context.Background(), &domain.Task{Title: "x", Type: "karaoke"})
	assert.Error(t, err)
}

func TestTaskService_CreateRejectsUnknownClass(t *testing.T) {
	svc, _ := newTaskService(t)
	err := svc.Create(context.Background(), &domain.Task{Title: "x", ClassID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_CreateAllowsUnassigned(t *testing.T) {
	svc, _ := newTaskService(t)
	task := &domain.Task{Title: "Review flashcards", Type: domain.TaskReading}
	require.NoError(t, svc.Create(context.Background(), task))
	assert.Empty(t, task.ClassID)
}

func TestTaskService_MarkCompletedHidesFromList(t *testing.T) {
	svc, classes := newTaskService(t)
	ctx := context.Background()

	class := testutil.NewTestClass("Algorithms")
	require.NoError(t, classes.Create(ctx, class))

	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{ClassID: class.ID, Title: "Graph homework", DueDate: &due}
	require.NoError(t, svc.Create(ctx, task))
	require.NoError(t, svc.MarkCompleted(ctx, task.ID))

	pending, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.True(t, all[0].Completed)
}

func TestTaskService_UpdateValidatesType(t *testing.T) {
	svc, classes := newTaskService(t)
	ctx := context.Background()

	class := testutil.NewTestClass("Algorithms")
	require.NoError(t, classes.Create(ctx, class))

	task := &domain.Task{ClassID: class.ID, Title: "Essay", Type: domain.TaskPaper}
	require.NoError(t, svc.Create(ctx, task))

	task.Type = "interpretive_dance"
	assert.Error(t, svc.Update(ctx, task))
}
