package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/levelup/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "levelup-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteLoadBeforeSave(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if _, err := repo.SavedAt(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from SavedAt, got: %v", err)
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	repo.now = func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }

	if err := repo.Save(ctx, sampleTasks()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := sampleTasks()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Description != want[i].Description || got[i].Tag != want[i].Tag || got[i].Completed != want[i].Completed {
			t.Fatalf("task %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}

	savedAt, err := repo.SavedAt(ctx)
	if err != nil {
		t.Fatalf("saved at: %v", err)
	}
	if !savedAt.Equal(time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected saved_at: %s", savedAt)
	}
}

func TestSQLiteSaveReplacesSnapshot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	if err := repo.Save(ctx, sampleTasks()); err != nil {
		t.Fatalf("save: %v", err)
	}
	next := []model.Task{{Description: "Only one", Tag: model.TagWork, Completed: true}}
	if err := repo.Save(ctx, next); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Only one" || !got[0].Completed {
		t.Fatalf("unexpected snapshot: %+v", got)
	}

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("empty save: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after empty save must succeed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.Save(t.Context(), []model.Task{{Description: "Roundtrip task", Tag: model.TagStudy}}); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}
	got, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load after roundtrip failed: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Roundtrip task" {
		t.Fatalf("unexpected tasks after roundtrip: %+v", got)
	}
}

func TestNewSQLiteRepositoryRejectsNilDB(t *testing.T) {
	if _, err := NewSQLiteRepository(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
