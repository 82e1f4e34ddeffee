package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tomo/internal/pet"
)

const gaugeWidth = 20

var (
	colorGood = lipgloss.Color("10")
	colorFair = lipgloss.Color("11")
	colorPoor = lipgloss.Color("9")
	colorBad  = lipgloss.Color("1")
)

// statColor picks a gauge colour: green from 70, yellow from 40, red below
func statColor(value int) lipgloss.Color {
	switch {
	case value >= 70:
		return colorGood
	case value >= 40:
		return colorFair
	default:
		return colorPoor
	}
}

func makeBar(value, width int) string {
	value = max(min(value, pet.MaxStat), pet.MinStat)
	filled := value * width / pet.MaxStat
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func renderGauge(label string, value int) string {
	bar := lipgloss.NewStyle().Foreground(statColor(value)).Render(makeBar(value, gaugeWidth))
	return fmt.Sprintf("%-10s %s %3d/%d", label+":", bar, value, pet.MaxStat)
}
