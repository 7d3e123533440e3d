package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/testutil"
)

func TestProfileRepo_Get_DefaultSeededProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	profile, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "default", profile.ID)
	assert.Equal(t, 50, profile.FocusSessionMin)
	assert.Equal(t, 10, profile.BreakDurationMin)
	assert.Equal(t, 4.0, profile.DailyLimitHours)
	assert.Empty(t, profile.Preferences)
}

func TestProfileRepo_Upsert_RoundTripsPreferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	profile := testutil.NewTestProfile(
		testutil.Pref(time.Monday, "09:00", "11:00", 8),
		testutil.Pref(time.Wednesday, "14:00", "16:00", 6),
	)
	profile.FocusSessionMin = 45
	profile.DailyLimitHours = 5
	profile.SubjectDifficulty = map[string]float64{"Calculus": 1.5}

	require.NoError(t, repo.Upsert(ctx, profile))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.FocusSessionMin)
	assert.Equal(t, 5.0, got.DailyLimitHours)
	assert.Equal(t, map[string]float64{"Calculus": 1.5}, got.SubjectDifficulty)
	require.Len(t, got.Preferences, 2)
	assert.Equal(t, time.Monday, got.Preferences[0].DayOfWeek)
	assert.Equal(t, "09:00", got.Preferences[0].StartTime)
	assert.Equal(t, 8, got.Preferences[0].ProductivityScore)
}

func TestProfileRepo_Upsert_ReplacesPreferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(
		testutil.Pref(time.Monday, "09:00", "11:00", 8),
		testutil.Pref(time.Tuesday, "09:00", "11:00", 7),
	)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(
		testutil.Pref(time.Friday, "10:00", "12:00", 9),
	)))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got.Preferences, 1)
	assert.Equal(t, time.Friday, got.Preferences[0].DayOfWeek)
}

func TestProfileRepo_Get_NotFoundWhenDefaultDeleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `DELETE FROM study_profile WHERE id = 'default'`)
	require.NoError(t, err)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
