package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// BannerExpiredMsg hides the level-up banner started with the same Seq.
type BannerExpiredMsg struct {
	Seq int
}

// PopupExpiredMsg closes the celebration popup started with the same Seq.
type PopupExpiredMsg struct {
	Seq int
}

func (m *Model) startLevelUp(from, to int) tea.Cmd {
	m.effectSeq++
	seq := m.effectSeq
	m.Banner = LevelUpEffect{Visible: true, Level: to, Seq: seq}
	m.Popup = LevelUpEffect{Visible: true, Level: to, Seq: seq}
	m.logger.Info("level_up", "from", from, "to", to, "total_points", m.Checklist.TotalPoints())
	m.notify("Level Up!", fmt.Sprintf("You reached level %d", to), "info")
	return tea.Batch(
		tea.Tick(m.bannerDuration, func(time.Time) tea.Msg { return BannerExpiredMsg{Seq: seq} }),
		tea.Tick(m.popupDuration, func(time.Time) tea.Msg { return PopupExpiredMsg{Seq: seq} }),
	)
}
