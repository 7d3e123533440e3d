package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, class_id, title, description, type, due_date, completed, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := nowUTC()
	query := `INSERT INTO tasks (id, class_id, title, description, type, due_date, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		nullableString(t.ClassID),
		t.Title,
		t.Description,
		string(t.Type),
		nullableTimeToString(t.DueDate, dateLayout),
		boolToInt(t.Completed),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY due_date IS NULL, due_date, id`
	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) ListByClass(ctx context.Context, classID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE class_id = ? ORDER BY due_date IS NULL, due_date, id`
	return r.queryTasks(ctx, query, classID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET class_id = ?, title = ?, description = ?, type = ?,
		due_date = ?, completed = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(t.ClassID),
		t.Title,
		t.Description,
		string(t.Type),
		nullableTimeToString(t.DueDate, dateLayout),
		boolToInt(t.Completed),
		nowUTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE tasks SET completed = 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	return requireRowAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRowAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var classID, dueDate sql.NullString
	var completed int
	var createdAt, updatedAt string
	err := row.Scan(
		&t.ID,
		&classID,
		&t.Title,
		&t.Description,
		&t.Type,
		&dueDate,
		&completed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.ClassID = classID.String
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.Completed = intToBool(completed)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}
