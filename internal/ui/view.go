package ui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"tomo/internal/app"
	"tomo/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	feedback lipgloss.Style
	help     lipgloss.Style
	key      lipgloss.Style
	box      lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	feedback: lipgloss.NewStyle().
		Foreground(colorGood),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")),

	key: lipgloss.NewStyle().
		Foreground(colorFair),

	box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2),
}

var moodColors = map[pet.Mood]lipgloss.Color{
	pet.MoodHappy:     colorGood,
	pet.MoodContent:   colorFair,
	pet.MoodSad:       colorPoor,
	pet.MoodMiserable: colorBad,
}

// View implements tea.Model
func (m Model) View() string {
	if m.Frame.Quitting {
		return "Thanks for playing!\n"
	}
	if !m.HasFrame {
		return ""
	}
	if m.Frame.Phase == app.PhaseNaming {
		return m.namingView()
	}
	return m.petView()
}

func (m Model) namingView() string {
	name := m.Frame.NameInput
	count := utf8.RuneCountInString(name)

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🥚 A new pet has hatched!"),
		"",
		gameStyles.status.Render("What will you call it?"),
		gameStyles.box.Render("> "+name+"█"),
		gameStyles.help.Render(fmt.Sprintf("%d/%d", count, pet.MaxNameLength)),
		"",
		gameStyles.help.Render(fmt.Sprintf("enter to confirm (empty for %s) • esc to quit", pet.DefaultName)),
		gameStyles.help.Render("f, p and q are commands, not letters"),
	)
}

func (m Model) petView() string {
	p := m.Frame.Pet
	color := moodColors[m.Frame.Mood]

	header := gameStyles.title.
		Foreground(color).
		Render(fmt.Sprintf("%s is %s", p.Name, m.Frame.Mood.Label()))

	art := gameStyles.box.
		BorderForeground(color).
		Foreground(color).
		Render(GetMoodArt(m.Frame.Mood))

	sections := []string{
		header,
		"",
		art,
		"",
		renderGauge("Hunger", p.Hunger),
		renderGauge("Happiness", p.Happiness),
	}

	if m.Frame.Feedback != "" {
		sections = append(sections, "", gameStyles.feedback.Render(m.Frame.Feedback))
	}

	sections = append(sections, "", renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHelp() string {
	return gameStyles.key.Render("f") + gameStyles.help.Render(": Feed | ") +
		gameStyles.key.Render("p") + gameStyles.help.Render(": Play | ") +
		gameStyles.key.Render("q") + gameStyles.help.Render(": Quit")
}
