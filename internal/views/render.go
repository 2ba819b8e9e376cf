package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	Banner        string
	Entry         string
	LeftPane      string
	RightPane     string
	StatusLine    string
	StatusIsError bool
	Palette       string
	Popup         string
	Help          string
	Notification  string
	Footer        string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("220")).Padding(1, 4).Align(lipgloss.Center)
)

func RenderApp(data AppData) string {
	left := panelStyle.Width(52).Render(data.LeftPane)
	right := panelStyle.Width(40).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusIsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{headerStyle.Render(data.Header)}
	if data.Banner != "" {
		lines = append(lines, data.Banner)
	}
	if data.Entry != "" {
		lines = append(lines, panelStyle.Render(data.Entry))
	}
	lines = append(lines, row)
	if data.Popup != "" {
		lines = append(lines, popupStyle.Render(data.Popup))
	}
	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	lines = append(lines, status)
	if data.Notification != "" {
		lines = append(lines, noticeStyle.Render(data.Notification))
	}
	if data.Help != "" {
		lines = append(lines, panelStyle.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
