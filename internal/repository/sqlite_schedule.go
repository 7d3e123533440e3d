package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/db"
	"github.com/alexmoren/studyplan/internal/domain"
)

// scheduleColumns is the canonical SELECT column list for schedules.
const scheduleColumns = `id, start_date, end_date, primary_goal, total_minutes, session_count, warnings, created_at`

// sessionColumns is the canonical SELECT column list for study_sessions.
const sessionColumns = `id, schedule_id, date, start_time, end_time, duration_min,
		class_id, task_ids, type, focus_area, difficulty, status, notes`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule, sessions []domain.StudySession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting schedule transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO schedules (id, start_date, end_date, primary_goal, total_minutes, session_count, warnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		s.ID,
		s.Start.Format(dateLayout),
		s.End.Format(dateLayout),
		string(s.PrimaryGoal),
		s.TotalMinutes,
		s.SessionCount,
		encodeJSON(s.Warnings, "[]"),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}

	for _, sess := range sessions {
		if err := insertSession(ctx, tx, s.ID, sess); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schedule transaction: %w", err)
	}
	committed = true
	return nil
}

func insertSession(ctx context.Context, q db.DBTX, scheduleID string, sess domain.StudySession) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO study_sessions (id, schedule_id, date, start_time, end_time, duration_min,
			class_id, task_ids, type, focus_area, difficulty, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		scheduleID,
		sess.Date.Format(dateLayout),
		sess.StartTime,
		sess.EndTime,
		sess.DurationMin,
		sess.ClassID,
		encodeJSON(sess.TaskIDs, "[]"),
		string(sess.Type),
		sess.FocusArea,
		sess.Difficulty,
		string(sess.Status),
		sess.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting study session %s: %w", sess.ID, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) Latest(ctx context.Context) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY created_at DESC, id DESC LIMIT 1`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("latest schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) ListSessions(ctx context.Context, scheduleID string) ([]domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE schedule_id = ? ORDER BY date, start_time, class_id`
	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var date, taskIDs string
		err := rows.Scan(
			&s.ID,
			&s.ScheduleID,
			&date,
			&s.StartTime,
			&s.EndTime,
			&s.DurationMin,
			&s.ClassID,
			&taskIDs,
			&s.Type,
			&s.FocusArea,
			&s.Difficulty,
			&s.Status,
			&s.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning study session: %w", err)
		}
		s.Date, _ = time.Parse(dateLayout, date)
		s.TaskIDs = decodeStringSlice(taskIDs)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SQLiteScheduleRepo) UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE study_sessions SET status = ? WHERE id = ?`, string(status), sessionID)
	if err != nil {
		return fmt.Errorf("updating session status: %w", err)
	}
	return requireRowAffected(res, "study session", sessionID)
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return requireRowAffected(res, "schedule", id)
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var start, end, warnings, createdAt string
	err := row.Scan(
		&s.ID,
		&start,
		&end,
		&s.PrimaryGoal,
		&s.TotalMinutes,
		&s.SessionCount,
		&warnings,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	s.Start, _ = time.Parse(dateLayout, start)
	s.End, _ = time.Parse(dateLayout, end)
	s.Warnings = decodeStringSlice(warnings)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}
