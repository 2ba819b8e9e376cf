package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/levelup/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.autoload && m.repo != nil {
		return loadCmd(m.repo)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Mode == ModeCapture {
			return m.handleCaptureKey(typed)
		}
		return m.handleListKey(typed)
	case SavedMsg:
		m = m.onSaved(typed)
		return m, clearStatusAfter(m.Status)
	case LoadedMsg:
		m = m.onLoaded(typed)
		return m, clearStatusAfter(m.Status)
	case BannerExpiredMsg:
		if m.Banner.Visible && typed.Seq == m.Banner.Seq {
			m.Banner.Visible = false
		}
		return m, nil
	case PopupExpiredMsg:
		if m.Popup.Visible && typed.Seq == m.Popup.Seq {
			m.Popup.Visible = false
		}
		return m, nil
	case ClearStatusMsg:
		if typed.Text == "" || typed.Text == m.Status.Text {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	location := "(no file)"
	if m.repo != nil {
		location = m.repo.Location()
	}
	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("levelup | level %d | %d pts | %s", m.Checklist.Level(), m.Checklist.TotalPoints(), location),
		Banner:        views.RenderLevelUpBanner(m.Banner.Visible),
		Entry:         m.renderEntryPanel(),
		LeftPane:      m.renderChecklistPanel(),
		RightPane:     m.renderProgressPanel(),
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Palette:       views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		Popup:         views.RenderCelebration(m.Popup.Visible, m.Popup.Level),
		Help:          m.renderHelpIfVisible(),
		Notification:  m.renderLatestNotification(),
		Footer: fmt.Sprintf("keys: %s add | j/k move | %s toggle | %s save | %s load | %s cmd | %s help | %s quit",
			m.Keys.Add, m.Keys.Toggle, m.Keys.Save, m.Keys.Load, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
