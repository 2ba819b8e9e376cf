package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/levelup/internal/model"
)

// Shared CLI styles.
var (
	cPrimary = lipgloss.Color("63")
	cAccent  = lipgloss.Color("205")
	cGood    = lipgloss.Color("42")
	cMuted   = lipgloss.Color("244")
	cGold    = lipgloss.Color("220")
	cBad     = lipgloss.Color("196")

	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// TagsMarkdown lists the tag point table as a markdown table.
func TagsMarkdown() string {
	var b strings.Builder
	b.WriteString("| tag | points |\n|---|---|\n")
	for _, tag := range model.Tags() {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", tag, model.PointsFor(tag)))
	}
	return b.String()
}
