package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/levelup/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteRepository keeps the latest saved checklist in a SQLite database.
type SQLiteRepository struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// OpenSQLite opens (or creates) the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	repo.path = path
	return repo, nil
}

func (r *SQLiteRepository) Location() string {
	return r.path
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save replaces the stored snapshot in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (position, text, tag, completed) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, t := range tasks {
		if _, err := stmt.ExecContext(ctx, i, t.Description, string(t.Tag), boolInt(t.Completed)); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, saved_at, task_count) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at, task_count = excluded.task_count`,
		r.now().UTC().Format(sqliteTimeLayout), len(tasks),
	); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return tx.Commit()
}

// Load returns the saved snapshot in position order, or ErrNotFound if nothing was saved yet.
func (r *SQLiteRepository) Load(ctx context.Context) ([]model.Task, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT task_count FROM snapshots WHERE id = 1`).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no snapshot in %s", ErrNotFound, r.path)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT text, tag, completed FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0, count)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) != count {
		return nil, fmt.Errorf("%w: snapshot lists %d tasks, found %d", ErrMalformed, count, len(out))
	}
	return out, nil
}

// SavedAt reports when the snapshot was last written.
func (r *SQLiteRepository) SavedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshots WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return time.Parse(sqliteTimeLayout, raw)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var tag string
	var completed int
	if err := s.Scan(&out.Description, &tag, &completed); err != nil {
		return model.Task{}, err
	}
	out.Tag = model.Tag(tag)
	out.Completed = completed == 1
	return out, nil
}
