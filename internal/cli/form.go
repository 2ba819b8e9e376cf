package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/levelup/internal/model"
)

func levelupHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	t.Blurred.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return t
}

// addTaskForm asks for a description and a tag, preselecting tag.
func addTaskForm(description *string, tag *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(model.Tags()))
	for _, t := range model.Tags() {
		options = append(options, huh.NewOption(string(t)+" (+"+pointsLabel(t)+")", string(t)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Read 10 pages").
				Value(description).
				Validate(validateDescription),
			huh.NewSelect[string]().
				Title("Tag").
				Options(options...).
				Value(tag),
		),
	).WithTheme(levelupHuhTheme()).WithShowHelp(false)
}

func runAddForm(initial model.Tag) (string, model.Tag, error) {
	description := ""
	tag := string(initial)
	if !initial.IsKnown() {
		tag = string(model.DefaultTag())
	}
	if err := addTaskForm(&description, &tag).Run(); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(description), model.Tag(tag), nil
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("description is required")
	}
	return nil
}

func pointsLabel(t model.Tag) string {
	return strconv.Itoa(model.PointsFor(t))
}
