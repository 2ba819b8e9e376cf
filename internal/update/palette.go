package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/levelup/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.commandInput.CursorEnd()
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok := m.addTask(a.Description, a.Tag)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "description is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Label())}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			change, err := m.Checklist.ToggleAt(a.Position - 1)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task number %d", a.Position)}
			}
			m.Cursor = a.Position - 1
			next = m.applyChange(change)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Save: func() (commands.Result, error) {
			var saved Model
			saved, next = m.requestSave()
			m = saved
			return commands.Result{Message: m.Status.Text}, nil
		},
		Load: func() (commands.Result, error) {
			var loaded Model
			loaded, next = m.requestLoad()
			m = loaded
			return commands.Result{Message: m.Status.Text}, nil
		},
		Tag: func(a commands.TagArgs) (commands.Result, error) {
			m.selectTag(a.Tag)
			return commands.Result{Message: fmt.Sprintf("tag set to %s", a.Tag)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: m.Status.IsError}
	return m, next
}
