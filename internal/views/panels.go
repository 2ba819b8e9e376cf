package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	LevelUpBanner    = "🎉 Level Up! 🎉"
	CelebrationTitle = "🎉 Level Up! 🎉"
	celebrationRow   = "🎊🎉🎈💫🎆✨🎉🎊"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

type EntryPanelData struct {
	InputView string
	Tag       string
	Capturing bool
}

type ChecklistItemData struct {
	Label     string
	Completed bool
}

type ChecklistPanelData struct {
	Items  []ChecklistItemData
	Cursor int
}

type ProgressPanelData struct {
	TotalPoints int
	Level       int
	Percent     float64
	BarView     string
	NextAt      int
	MaxLevel    bool
}

type HelpPanelData struct {
	Bindings  []string
	HelpView  string
	TagsTable string
}

func RenderEntryPanel(data EntryPanelData) string {
	mode := "press [a] to add a task"
	if data.Capturing {
		mode = "[enter] add  [tab] next tag  [esc] done"
	}
	return fmt.Sprintf("Task: %s\nTag: %s\n%s", data.InputView, tagStyle.Render("< "+data.Tag+" >"), mode)
}

func RenderChecklistPanel(data ChecklistPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet)")
		return b.String()
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = cursorStyle.Render(">")
		}
		line := fmt.Sprintf("%s %s", Checkbox(item.Completed), item.Label)
		if item.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, line))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Today's Total Points: %d\n", data.TotalPoints))
	b.WriteString(fmt.Sprintf("Level: %d\n", data.Level))
	b.WriteString(fmt.Sprintf("%s %.0f%%\n", data.BarView, data.Percent))
	if data.MaxLevel {
		b.WriteString("max level reached")
	} else {
		b.WriteString(fmt.Sprintf("next level at %d pts", data.NextAt))
	}
	return b.String()
}

func RenderLevelUpBanner(visible bool) string {
	if !visible {
		return ""
	}
	return bannerStyle.Render(LevelUpBanner)
}

func RenderCelebration(visible bool, level int) string {
	if !visible {
		return ""
	}
	return fmt.Sprintf("%s\n%s\nYou leveled up!\nLevel %d\n%s", CelebrationTitle, celebrationRow, level, celebrationRow)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.TagsTable != "" {
		b.WriteString("\n" + data.TagsTable)
	}
	return b.String()
}
