package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// re-running the full list against an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS classes (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		subject    TEXT NOT NULL DEFAULT '',
		code       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		class_id    TEXT REFERENCES classes(id) ON DELETE SET NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT 'assignment'
		            CHECK(type IN ('assignment','exam','quiz','project','paper',
		                           'homework','lab','reading','discussion','presentation')),
		due_date    TEXT,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_class ON tasks(class_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	`CREATE TABLE IF NOT EXISTS study_profile (
		id                         TEXT PRIMARY KEY,
		focus_session_min          INTEGER NOT NULL DEFAULT 50,
		break_duration_min         INTEGER NOT NULL DEFAULT 10,
		daily_limit_hours          REAL NOT NULL DEFAULT 4,
		retention_curve_steepness  REAL NOT NULL DEFAULT 1,
		review_interval_multiplier REAL NOT NULL DEFAULT 1,
		subject_difficulty         TEXT NOT NULL DEFAULT '{}',
		updated_at                 TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_time_prefs (
		profile_id         TEXT NOT NULL REFERENCES study_profile(id) ON DELETE CASCADE,
		day_of_week        INTEGER NOT NULL CHECK(day_of_week BETWEEN 0 AND 6),
		start_time         TEXT NOT NULL,
		end_time           TEXT NOT NULL,
		productivity_score INTEGER NOT NULL DEFAULT 5
		                   CHECK(productivity_score BETWEEN 0 AND 10),
		PRIMARY KEY (profile_id, day_of_week, start_time)
	)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id            TEXT PRIMARY KEY,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		primary_goal  TEXT NOT NULL
		              CHECK(primary_goal IN ('maximize_retention','meet_deadlines',
		                                     'minimize_stress','balance_subjects','focus_difficult')),
		total_minutes INTEGER NOT NULL DEFAULT 0,
		session_count INTEGER NOT NULL DEFAULT 0,
		warnings      TEXT NOT NULL DEFAULT '[]',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id           TEXT PRIMARY KEY,
		schedule_id  TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		class_id     TEXT NOT NULL DEFAULT '',
		task_ids     TEXT NOT NULL DEFAULT '[]',
		type         TEXT NOT NULL
		             CHECK(type IN ('new_material','review','practice')),
		focus_area   TEXT NOT NULL DEFAULT '',
		difficulty   INTEGER NOT NULL DEFAULT 0,
		status       TEXT NOT NULL DEFAULT 'scheduled'
		             CHECK(status IN ('scheduled','completed','skipped','missed')),
		notes        TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_schedule ON study_sessions(schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON study_sessions(date)`,

	// Seed the singleton profile so Get always has a row to return.
	`INSERT OR IGNORE INTO study_profile (id, updated_at)
		VALUES ('default', '1970-01-01T00:00:00Z')`,
}
