package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/levelup/internal/model"
)

var (
	ErrNotFound  = errors.New("storage: not found")
	ErrMalformed = errors.New("storage: malformed task file")
)

// Repository persists the whole checklist as an ordered list of records.
// Only description, tag and completion are stored; points are always recomputed.
type Repository interface {
	Save(ctx context.Context, tasks []model.Task) error
	Load(ctx context.Context) ([]model.Task, error)
	Location() string
	Close() error
}

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendJSON, BackendSQLite:
		return true
	default:
		return false
	}
}

// Open returns the repository for backend rooted at path.
func Open(backend Backend, path string) (Repository, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONFileRepository(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
