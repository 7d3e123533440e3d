package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
	"github.com/alexmoren/studyplan/internal/repository"
	"github.com/alexmoren/studyplan/internal/testutil"
)

type planHarness struct {
	svc      PlanService
	conn     *sql.DB
	classes  repository.ClassRepo
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
}

func newPlanHarness(t *testing.T) *planHarness {
	t.Helper()
	conn := testutil.NewTestDB(t)
	classes := repository.NewSQLiteClassRepo(conn)
	tasks := repository.NewSQLiteTaskRepo(conn)
	profiles := repository.NewSQLiteProfileRepo(conn)
	schedules := repository.NewSQLiteScheduleRepo(conn)
	return &planHarness{
		svc:      NewPlanService(tasks, classes, profiles, schedules, nil),
		conn:     conn,
		classes:  classes,
		tasks:    tasks,
		profiles: profiles,
	}
}

// seedSemester sets up a profile with study windows every day plus one
// class with a couple of dated tasks, enough for every strategy to
// place sessions.
func (h *planHarness) seedSemester(t *testing.T, now time.Time) *domain.Class {
	t.Helper()
	ctx := context.Background()

	profile := testutil.NewTestProfile(
		testutil.Pref(time.Sunday, "09:00", "12:00", 6),
		testutil.Pref(time.Monday, "09:00", "12:00", 7),
		testutil.Pref(time.Tuesday, "09:00", "12:00", 7),
		testutil.Pref(time.Wednesday, "09:00", "12:00", 8),
		testutil.Pref(time.Thursday, "09:00", "12:00", 7),
		testutil.Pref(time.Friday, "09:00", "12:00", 6),
		testutil.Pref(time.Saturday, "09:00", "12:00", 5),
	)
	require.NoError(t, h.profiles.Upsert(ctx, profile))

	class := testutil.NewTestClass("Linear Algebra")
	require.NoError(t, h.classes.Create(ctx, class))
	require.NoError(t, h.tasks.Create(ctx, testutil.NewTestTask(class.ID, "Problem set 3",
		testutil.WithDueDate(now.AddDate(0, 0, 5)))))
	require.NoError(t, h.tasks.Create(ctx, testutil.NewTestTask(class.ID, "Midterm",
		testutil.WithTaskType(domain.TaskExam),
		testutil.WithDueDate(now.AddDate(0, 0, 10)))))
	return class
}

func TestGeneratePlan_PersistsSchedule(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	resp, err := h.svc.GeneratePlan(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ScheduleID)
	assert.NotEmpty(t, resp.Sessions)
	assert.Equal(t, len(resp.Sessions), resp.SessionCount)

	sched, sessions, err := h.svc.LatestSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.ScheduleID, sched.ID)
	assert.Equal(t, resp.PrimaryGoal, sched.PrimaryGoal)
	assert.Len(t, sessions, resp.SessionCount)
}

func TestGeneratePlan_WithoutPersist(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	req.Persist = false
	resp, err := h.svc.GeneratePlan(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Sessions)

	_, _, err = h.svc.LatestSchedule(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGeneratePlan_RespectsWindow(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	req := app.NewGeneratePlanRequest()
	req.Now = &now
	req.StartDate = &start
	req.WindowDays = 7
	resp, err := h.svc.GeneratePlan(context.Background(), req)
	require.NoError(t, err)

	end := start.AddDate(0, 0, 6)
	for _, sess := range resp.Sessions {
		assert.False(t, sess.Date.Before(start), "session %s before window start", sess.ID)
		assert.False(t, sess.Date.After(end), "session %s after window end", sess.ID)
	}
}

func TestGeneratePlan_UnknownGoal(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	req.Goals = []domain.OptimizationGoal{"cram_everything"}
	_, err := h.svc.GeneratePlan(context.Background(), req)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrInvalidGoal, planErr.Code)
}

func TestGeneratePlan_UnknownScopeClass(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	req.ClassScope = []string{"no-such-class"}
	_, err := h.svc.GeneratePlan(context.Background(), req)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrInvalidScope, planErr.Code)
}

func TestGeneratePlan_MissingProfileFallsBackToDefaults(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()

	class := testutil.NewTestClass("History")
	require.NoError(t, h.classes.Create(ctx, class))
	require.NoError(t, h.tasks.Create(ctx, testutil.NewTestTask(class.ID, "Essay",
		testutil.WithDueDate(now.AddDate(0, 0, 7)))))

	_, err := h.conn.Exec("DELETE FROM study_profile")
	require.NoError(t, err)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	resp, err := h.svc.GeneratePlan(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, resp.Warnings, "no study profile configured; using defaults")
}

func TestGeneratePlan_NoPreferencesYieldsEmptySchedule(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// The seeded default profile has no study time windows.
	class := testutil.NewTestClass("Chemistry")
	require.NoError(t, h.classes.Create(ctx, class))
	require.NoError(t, h.tasks.Create(ctx, testutil.NewTestTask(class.ID, "Lab report",
		testutil.WithDueDate(now.AddDate(0, 0, 4)))))

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	resp, err := h.svc.GeneratePlan(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Sessions)
	assert.Contains(t, resp.Warnings, "no study time preferences configured; schedule is empty")
}

func TestCompleteSession(t *testing.T) {
	h := newPlanHarness(t)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	h.seedSemester(t, now)

	req := app.NewGeneratePlanRequest()
	req.Now = &now
	resp, err := h.svc.GeneratePlan(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Sessions)

	target := resp.Sessions[0]
	require.NoError(t, h.svc.CompleteSession(context.Background(), target.ID))

	_, sessions, err := h.svc.LatestSchedule(context.Background())
	require.NoError(t, err)
	found := false
	for _, sess := range sessions {
		if sess.ID == target.ID {
			found = true
			assert.Equal(t, domain.SessionCompleted, sess.Status)
		}
	}
	assert.True(t, found)
}

func TestCompleteSession_UnknownID(t *testing.T) {
	h := newPlanHarness(t)
	err := h.svc.CompleteSession(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
