package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/db"
	"github.com/alexmoren/studyplan/internal/domain"
)

// profileID is the singleton row key; one student per database.
const profileID = "default"

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db *sql.DB
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db *sql.DB) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.StudyProfile, error) {
	query := `SELECT id, focus_session_min, break_duration_min, daily_limit_hours,
		retention_curve_steepness, review_interval_multiplier, subject_difficulty
		FROM study_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, profileID)

	var p domain.StudyProfile
	var difficulty string
	err := row.Scan(
		&p.ID,
		&p.FocusSessionMin,
		&p.BreakDurationMin,
		&p.DailyLimitHours,
		&p.RetentionCurveSteepness,
		&p.ReviewIntervalMultiplier,
		&difficulty,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study profile: %w", err)
	}
	p.SubjectDifficulty = decodeFloatMap(difficulty)

	prefs, err := r.listPreferences(ctx)
	if err != nil {
		return nil, err
	}
	p.Preferences = prefs
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.StudyProfile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting profile transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT OR REPLACE INTO study_profile (id, focus_session_min, break_duration_min,
		daily_limit_hours, retention_curve_steepness, review_interval_multiplier,
		subject_difficulty, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		profileID,
		p.FocusSessionMin,
		p.BreakDurationMin,
		p.DailyLimitHours,
		p.RetentionCurveSteepness,
		p.ReviewIntervalMultiplier,
		encodeJSON(p.SubjectDifficulty, "{}"),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting study profile: %w", err)
	}

	// Preferences are replaced wholesale; the set is small and order is
	// reconstructed from (day, start) on read.
	if _, err := tx.ExecContext(ctx, `DELETE FROM study_time_prefs WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("clearing study time preferences: %w", err)
	}
	for _, pref := range p.Preferences {
		if err := insertPreference(ctx, tx, pref); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing profile transaction: %w", err)
	}
	committed = true
	return nil
}

func insertPreference(ctx context.Context, q db.DBTX, pref domain.StudyTimePreference) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO study_time_prefs (profile_id, day_of_week, start_time, end_time, productivity_score)
		VALUES (?, ?, ?, ?, ?)`,
		profileID, int(pref.DayOfWeek), pref.StartTime, pref.EndTime, pref.ProductivityScore,
	)
	if err != nil {
		return fmt.Errorf("inserting study time preference: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) listPreferences(ctx context.Context) ([]domain.StudyTimePreference, error) {
	query := `SELECT day_of_week, start_time, end_time, productivity_score
		FROM study_time_prefs WHERE profile_id = ? ORDER BY day_of_week, start_time`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing study time preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.StudyTimePreference
	for rows.Next() {
		var pref domain.StudyTimePreference
		var day int
		if err := rows.Scan(&day, &pref.StartTime, &pref.EndTime, &pref.ProductivityScore); err != nil {
			return nil, fmt.Errorf("scanning study time preference: %w", err)
		}
		pref.DayOfWeek = time.Weekday(day)
		prefs = append(prefs, pref)
	}
	return prefs, rows.Err()
}
