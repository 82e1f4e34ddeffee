package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tomo/internal/app"
	"tomo/internal/pet"
)

func TestViewBeforeFirstFrame(t *testing.T) {
	assert.Equal(t, "", NewModel(&recordingSink{}).View())
}

func TestNamingView(t *testing.T) {
	m := Model{HasFrame: true, Frame: app.Snapshot{Phase: app.PhaseNaming, NameInput: "Mo"}}
	view := m.View()

	assert.Contains(t, view, "What will you call it?")
	assert.Contains(t, view, "> Mo█")
	assert.Contains(t, view, "2/20")
	assert.Contains(t, view, "empty for Tomo")
}

func TestPetView(t *testing.T) {
	snap := app.Snapshot{
		Phase:    app.PhaseRunning,
		Pet:      pet.Pet{Name: "Mochi", Hunger: 80, Happiness: 45},
		Mood:     pet.MoodFor(80, 45),
		Feedback: "You fed Mochi!",
	}
	view := Model{HasFrame: true, Frame: snap}.View()

	assert.Contains(t, view, "Mochi is Content 😌")
	assert.Contains(t, view, "( -.- )")
	assert.Contains(t, view, " 80/100")
	assert.Contains(t, view, " 45/100")
	assert.Contains(t, view, "You fed Mochi!")
	assert.Contains(t, view, ": Feed")
	assert.Contains(t, view, ": Quit")
}

func TestPetViewWithoutFeedback(t *testing.T) {
	snap := app.Snapshot{
		Phase: app.PhaseRunning,
		Pet:   pet.Pet{Name: "Mochi", Hunger: 5, Happiness: 5},
		Mood:  pet.MoodMiserable,
	}
	view := Model{HasFrame: true, Frame: snap}.View()

	assert.Contains(t, view, "Mochi is Miserable 😭")
	assert.Contains(t, view, "( x_x )")
	assert.NotContains(t, view, "You fed")
}

func TestMakeBar(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, strings.Repeat("░", 10)},
		{50, strings.Repeat("█", 5) + strings.Repeat("░", 5)},
		{100, strings.Repeat("█", 10)},
		{79, strings.Repeat("█", 7) + strings.Repeat("░", 3)},
		{150, strings.Repeat("█", 10)},
		{-5, strings.Repeat("░", 10)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, makeBar(tt.value, 10), "value %d", tt.value)
	}
}

func TestStatColor(t *testing.T) {
	assert.Equal(t, colorGood, statColor(100))
	assert.Equal(t, colorGood, statColor(70))
	assert.Equal(t, colorFair, statColor(69))
	assert.Equal(t, colorFair, statColor(40))
	assert.Equal(t, colorPoor, statColor(39))
	assert.Equal(t, colorPoor, statColor(0))
}

func TestAllMoodsHaveArt(t *testing.T) {
	for _, mood := range []pet.Mood{pet.MoodHappy, pet.MoodContent, pet.MoodSad, pet.MoodMiserable} {
		art := GetMoodArt(mood)
		assert.NotEmpty(t, art, "mood %v has no art", mood)
		assert.Contains(t, art, "/\\_/\\")
	}
	assert.Equal(t, MoodArt[pet.MoodContent], GetMoodArt(pet.Mood(99)))
}
