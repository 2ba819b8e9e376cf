package update

import (
	"github.com/sandeepkv93/levelup/internal/views"
)

func (m Model) renderEntryPanel() string {
	return views.RenderEntryPanel(views.EntryPanelData{
		InputView: m.entryInput.View(),
		Tag:       string(m.SelectedTag()),
		Capturing: m.Mode == ModeCapture,
	})
}

func (m Model) renderChecklistPanel() string {
	tasks := m.Checklist.Tasks()
	items := make([]views.ChecklistItemData, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, views.ChecklistItemData{Label: task.Label(), Completed: task.Completed})
	}
	return views.RenderChecklistPanel(views.ChecklistPanelData{Items: items, Cursor: m.Cursor})
}

func (m Model) renderProgressPanel() string {
	s := m.Checklist.Summary()
	return views.RenderProgressPanel(views.ProgressPanelData{
		TotalPoints: s.TotalPoints,
		Level:       s.Level,
		Percent:     s.Progress,
		BarView:     m.levelProgress.ViewAs(barFraction(s.Progress)),
		NextAt:      s.NextAt,
		MaxLevel:    s.MaxLevel,
	})
}

// barFraction clamps a percentage into the 0..1 range the progress bar draws.
func barFraction(percent float64) float64 {
	f := percent / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
