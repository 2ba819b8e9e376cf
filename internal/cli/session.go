package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/levelup/internal/logging"
	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/storage"
)

// session is one CLI invocation: an open repository and the checklist restored from it.
type session struct {
	repo      storage.Repository
	checklist *model.Checklist
	logger    *slog.Logger
	closeLog  func() error
}

func openSession(ctx context.Context, cmd *cobra.Command, app *App) (*session, error) {
	level, err := logging.ParseLevel(app.Config.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Open(app.Config.LogFile, level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	repo, err := storage.Open(storage.Backend(app.Config.Backend), app.Config.StoragePath())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	s := &session{repo: repo, checklist: model.NewChecklist(), logger: logger, closeLog: closeLog}

	tasks, err := repo.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logger.Debug("load_skipped", "location", repo.Location())
	case err != nil:
		logger.Error("load_failed", "location", repo.Location(), "error", err.Error())
		s.close()
		return nil, fmt.Errorf("load tasks: %w", err)
	default:
		s.checklist.Restore(tasks)
		logger.Debug("tasks_loaded", "location", repo.Location(), "count", len(tasks))
	}
	return s, nil
}

func (s *session) save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.checklist.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Debug("tasks_saved", "location", s.repo.Location(), "count", s.checklist.Len())
	return nil
}

// lastSaved reports the snapshot time for backends that record one.
func (s *session) lastSaved(ctx context.Context) (time.Time, bool) {
	stamped, ok := s.repo.(interface {
		SavedAt(context.Context) (time.Time, error)
	})
	if !ok {
		return time.Time{}, false
	}
	at, err := stamped.SavedAt(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("saved_at_failed", "location", s.repo.Location(), "error", err.Error())
		}
		return time.Time{}, false
	}
	return at, true
}

func (s *session) close() {
	_ = s.repo.Close()
	_ = s.closeLog()
}
