package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/levelup/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "a", Description: "Read 10 pages", Tag: model.TagStudy, Completed: true},
		{ID: "b", Description: "Morning run", Tag: model.TagExercise},
		{ID: "c", Description: "Read 10 pages", Tag: model.TagStudy},
		{ID: "d", Description: "Water plants", Tag: model.Tag("garden"), Completed: true},
	}
}

func TestJSONSaveLoadRoundTrip(t *testing.T) {
	repo := NewJSONFileRepository(filepath.Join(t.TempDir(), "nested", "tasks.json"))
	ctx := context.Background()

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
		if got[i].ID != "" {
			t.Fatalf("ids must not be persisted, got %q", got[i].ID)
		}
	}
}

func TestJSONSaveWritesOnlyTextTagCompleted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewJSONFileRepository(path)
	if err := repo.Save(context.Background(), sampleTasks()[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var doc []map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc) != 1 || len(doc[0]) != 3 {
		t.Fatalf("unexpected document: %s", raw)
	}
	if doc[0]["text"] != "Read 10 pages" || doc[0]["tag"] != "study" || doc[0]["completed"] != true {
		t.Fatalf("unexpected entry: %v", doc[0])
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestJSONSaveOverwrites(t *testing.T) {
	repo := NewJSONFileRepository(filepath.Join(t.TempDir(), "tasks.json"))
	ctx := context.Background()
	if err := repo.Save(ctx, sampleTasks()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list after overwrite, got %d", len(got))
	}
}

func TestJSONLoadMissingFile(t *testing.T) {
	repo := NewJSONFileRepository(filepath.Join(t.TempDir(), "absent.json"))
	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestJSONLoadReadsOriginalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	doc := `[{"text": "Fix bug", "tag": "coding", "completed": true}, {"text": "Sweep", "tag": "chores", "completed": false}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewJSONFileRepository(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Tag != model.TagCoding || !got[0].Completed || got[1].Completed {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}

func TestJSONLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{{`,
		"not an array":    `{"text": "x", "tag": "study", "completed": false}`,
		"missing text":    `[{"tag": "study", "completed": false}]`,
		"missing tag":     `[{"text": "x", "completed": false}]`,
		"missing flag":    `[{"text": "x", "tag": "study"}]`,
		"null entry":      `[null]`,
		"wrong flag type": `[{"text": "x", "tag": "study", "completed": "yes"}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := NewJSONFileRepository(path).Load(context.Background())
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got: %v", err)
			}
			if got != nil {
				t.Fatalf("expected no tasks on malformed input, got %+v", got)
			}
		})
	}
}

func TestJSONLoadBlankFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewJSONFileRepository(path).Load(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v %v", got, err)
	}
}

func TestRoundTripRebuildsPoints(t *testing.T) {
	repo := NewJSONFileRepository(filepath.Join(t.TempDir(), "tasks.json"))
	ctx := context.Background()

	src := model.NewChecklist()
	for _, tag := range model.Tags() {
		task, _ := src.Add("task "+string(tag), tag)
		if tag != model.TagChores {
			if _, err := src.Toggle(task.ID); err != nil {
				t.Fatalf("toggle: %v", err)
			}
		}
	}
	if err := repo.Save(ctx, src.Tasks()); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	dst := model.NewChecklist()
	dst.Restore(loaded)
	if dst.TotalPoints() != src.TotalPoints() || dst.Level() != src.Level() {
		t.Fatalf("restored %d/%d, want %d/%d", dst.TotalPoints(), dst.Level(), src.TotalPoints(), src.Level())
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(BackendJSON, filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatalf("open json: %v", err)
	}
	if _, ok := repo.(*JSONFileRepository); !ok {
		t.Fatalf("unexpected repository type %T", repo)
	}

	repo, err = Open(BackendSQLite, filepath.Join(dir, "levelup.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	if _, ok := repo.(*SQLiteRepository); !ok {
		t.Fatalf("unexpected repository type %T", repo)
	}

	if _, err := Open(Backend("yaml"), "x"); err == nil {
		t.Fatal("expected unknown backend error")
	}
}
