package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db *sql.DB
}

// NewSQLiteClassRepo creates a new SQLiteClassRepo.
func NewSQLiteClassRepo(db *sql.DB) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: db}
}

func (r *SQLiteClassRepo) Create(ctx context.Context, c *domain.Class) error {
	now := nowUTC()
	query := `INSERT INTO classes (id, name, subject, code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Subject, c.Code, now, now)
	if err != nil {
		return fmt.Errorf("inserting class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `SELECT id, name, subject, code, created_at, updated_at FROM classes WHERE id = ?`
	c, err := scanClass(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("class %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}
	return c, nil
}

func (r *SQLiteClassRepo) List(ctx context.Context) ([]*domain.Class, error) {
	query := `SELECT id, name, subject, code, created_at, updated_at FROM classes ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*domain.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *SQLiteClassRepo) Update(ctx context.Context, c *domain.Class) error {
	query := `UPDATE classes SET name = ?, subject = ?, code = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Subject, c.Code, nowUTC(), c.ID)
	if err != nil {
		return fmt.Errorf("updating class: %w", err)
	}
	return requireRowAffected(res, "class", c.ID)
}

func (r *SQLiteClassRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting class: %w", err)
	}
	return requireRowAffected(res, "class", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClass(row rowScanner) (*domain.Class, error) {
	var c domain.Class
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.Name, &c.Subject, &c.Code, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &c, nil
}

// requireRowAffected maps zero-row writes to ErrNotFound.
func requireRowAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
