package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/storage"
)

var errNoRepository = errors.New("no task file configured")

// statusClearDelay is how long a save or load result stays on the status line.
const statusClearDelay = 4 * time.Second

type SavedMsg struct {
	Count    int
	Location string
	Err      error
}

type LoadedMsg struct {
	Tasks    []model.Task
	Location string
	Err      error
}

func saveCmd(repo storage.Repository, tasks []model.Task) tea.Cmd {
	return func() tea.Msg {
		err := repo.Save(context.Background(), tasks)
		return SavedMsg{Count: len(tasks), Location: repo.Location(), Err: err}
	}
}

func loadCmd(repo storage.Repository) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.Load(context.Background())
		return LoadedMsg{Tasks: tasks, Location: repo.Location(), Err: err}
	}
}

// clearStatusAfter schedules clearing of a successful status. Errors stay until replaced.
func clearStatusAfter(status StatusBar) tea.Cmd {
	if status.IsError || status.Text == "" {
		return nil
	}
	text := status.Text
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Text: text}
	})
}

func (m Model) requestSave() (Model, tea.Cmd) {
	if m.repo == nil {
		m.Status = StatusBar{Text: errNoRepository.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "saving..."}
	return m, saveCmd(m.repo, m.Checklist.Tasks())
}

func (m Model) requestLoad() (Model, tea.Cmd) {
	if m.repo == nil {
		m.Status = StatusBar{Text: errNoRepository.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "loading..."}
	return m, loadCmd(m.repo)
}

func (m Model) onSaved(msg SavedMsg) Model {
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", msg.Err), IsError: true}
		m.logger.Error("save_failed", "location", msg.Location, "error", msg.Err.Error())
		m.notify("Save Failed", msg.Err.Error(), levelFromError(true))
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("tasks saved to %s", msg.Location)}
	m.logger.Info("tasks_saved", "location", msg.Location, "count", msg.Count)
	return m
}

// onLoaded replaces the checklist on success. Failures leave the current list untouched.
func (m Model) onLoaded(msg LoadedMsg) Model {
	switch {
	case errors.Is(msg.Err, storage.ErrNotFound):
		m.Status = StatusBar{Text: "no saved file found yet"}
		m.logger.Info("load_skipped", "location", msg.Location)
		return m
	case msg.Err != nil:
		m.LastError = msg.Err
		m.Status = StatusBar{Text: fmt.Sprintf("load failed: %v", msg.Err), IsError: true}
		m.logger.Error("load_failed", "location", msg.Location, "error", msg.Err.Error())
		m.notify("Load Failed", msg.Err.Error(), levelFromError(true))
		return m
	}
	m.Checklist.Restore(msg.Tasks)
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("loaded %d task(s) from %s", m.Checklist.Len(), msg.Location)}
	m.logger.Info("tasks_loaded",
		"location", msg.Location,
		"count", m.Checklist.Len(),
		"total_points", m.Checklist.TotalPoints(),
		"level", m.Checklist.Level(),
	)
	return m
}
