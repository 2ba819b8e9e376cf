package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
)

const DefaultTasksFile = "tasks.json"

// JSONFileRepository stores the checklist as a JSON array of {text, tag, completed}.
type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	if strings.TrimSpace(path) == "" {
		path = DefaultTasksFile
	}
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) Location() string {
	return r.path
}

func (r *JSONFileRepository) Close() error {
	return nil
}

// Save overwrites the file with the given tasks, in order.
func (r *JSONFileRepository) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, recordFromTask(t))
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

// Load reads the file back. A missing file yields ErrNotFound; a file that is not
// an array of complete records yields ErrMalformed and no tasks.
func (r *JSONFileRepository) Load(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []model.Task{}, nil
	}
	return decodeTasks(raw)
}

func decodeTasks(raw []byte) ([]model.Task, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]model.Task, 0, len(entries))
	for i, entry := range entries {
		var rec taskRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		task, err := rec.toTask(i)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, nil
}
