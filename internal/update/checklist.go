package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/levelup/internal/model"
)

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case m.Keys.Add, "i":
		m.Mode = ModeCapture
		m.entryInput.Focus()
		m.Status = StatusBar{Text: "capture mode"}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.Checklist.Len()-1 {
			m.Cursor++
		}
	case " ", "space", "x":
		return m.toggleAt(m.Cursor)
	case "tab":
		m.cycleTag(1)
	case "shift+tab":
		m.cycleTag(-1)
	case m.Keys.Save, "S":
		return m.requestSave()
	case m.Keys.Load, "L":
		return m.requestLoad()
	case "pgdown", "pgup":
		if m.HelpVisible {
			var cmd tea.Cmd
			m.helpViewport, cmd = m.helpViewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeList
		m.entryInput.Blur()
		m.Status = StatusBar{Text: "list mode"}
		return m, nil
	case "enter":
		m.addTask(m.entryInput.Value(), m.SelectedTag())
		m.entryInput.SetValue("")
		return m, nil
	case "tab":
		m.cycleTag(1)
		return m, nil
	case "shift+tab":
		m.cycleTag(-1)
		return m, nil
	case m.Keys.Save:
		return m.requestSave()
	}
	var cmd tea.Cmd
	m.entryInput, cmd = m.entryInput.Update(msg)
	return m, cmd
}

func (m *Model) addTask(description string, tag model.Tag) (model.Task, bool) {
	task, ok := m.Checklist.Add(description, tag)
	if !ok {
		return model.Task{}, false
	}
	m.Cursor = m.Checklist.Len() - 1
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Label())}
	m.logger.Info("task_added", "tag", string(task.Tag), "points", task.Points(), "tasks", m.Checklist.Len())
	return task, true
}

func (m Model) toggleAt(index int) (Model, tea.Cmd) {
	change, err := m.Checklist.ToggleAt(index)
	if err != nil {
		if m.Checklist.Len() == 0 {
			m.Status = StatusBar{Text: "no tasks yet"}
			return m, nil
		}
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	cmd := m.applyChange(change)
	return m, cmd
}

// applyChange reports a toggle and starts the level-up effects when the level rose.
func (m *Model) applyChange(change model.Change) tea.Cmd {
	state := "reopened"
	if change.Task.Completed {
		state = "completed"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s (%d pts, level %d)", state, change.Task.Label(), change.TotalPoints, change.Level)}
	m.logger.Info("task_toggled",
		"tag", string(change.Task.Tag),
		"completed", change.Task.Completed,
		"total_points", change.TotalPoints,
		"level", change.Level,
	)
	if !change.LeveledUp {
		return nil
	}
	return m.startLevelUp(change.PreviousLevel, change.Level)
}
