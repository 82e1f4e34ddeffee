package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPetStartsHealthy(t *testing.T) {
	p := New("Tomo")

	assert.Equal(t, "Tomo", p.Name)
	assert.Equal(t, 80, p.Hunger)
	assert.Equal(t, 80, p.Happiness)
	assert.Equal(t, MoodHappy, p.Mood())
}

func TestTickDecaysStats(t *testing.T) {
	p := New("Tomo")
	p.Tick()

	assert.Equal(t, 78, p.Hunger)
	assert.Equal(t, 79, p.Happiness)
}

func TestTickClampsAtZero(t *testing.T) {
	tests := []struct {
		name          string
		hunger        int
		happiness     int
		wantHunger    int
		wantHappiness int
	}{
		{"hunger one, happiness zero", 1, 0, 0, 0},
		{"both zero", 0, 0, 0, 0},
		{"hunger two, happiness one", 2, 1, 0, 0},
		{"hunger three", 3, 5, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pet{Name: "Tomo", Hunger: tt.hunger, Happiness: tt.happiness}
			p.Tick()
			assert.Equal(t, tt.wantHunger, p.Hunger)
			assert.Equal(t, tt.wantHappiness, p.Happiness)
		})
	}
}

func TestRepeatedTicksHoldAtZero(t *testing.T) {
	p := New("Tomo")
	for i := 0; i < 200; i++ {
		p.Tick()
		assert.GreaterOrEqual(t, p.Hunger, MinStat)
		assert.GreaterOrEqual(t, p.Happiness, MinStat)
	}
	assert.Equal(t, 0, p.Hunger)
	assert.Equal(t, 0, p.Happiness)
}

func TestFeed(t *testing.T) {
	tests := []struct {
		name   string
		hunger int
		want   int
	}{
		{"mid range", 50, 70},
		{"near full caps at max", 95, 100},
		{"already full", 100, 100},
		{"empty", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pet{Name: "Tomo", Hunger: tt.hunger, Happiness: 42}
			p.Feed()
			assert.Equal(t, tt.want, p.Hunger)
			assert.Equal(t, 42, p.Happiness, "feeding must not touch happiness")
		})
	}
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name      string
		happiness int
		want      int
	}{
		{"mid range", 50, 65},
		{"near full caps at max", 90, 100},
		{"already full", 100, 100},
		{"empty", 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pet{Name: "Tomo", Hunger: 42, Happiness: tt.happiness}
			p.Play()
			assert.Equal(t, tt.want, p.Happiness)
			assert.Equal(t, 42, p.Hunger, "playing must not touch hunger")
		})
	}
}

func TestMoodThresholds(t *testing.T) {
	tests := []struct {
		hunger, happiness int
		want              Mood
	}{
		{80, 80, MoodHappy},
		{50, 50, MoodContent},
		{30, 30, MoodSad},
		{10, 10, MoodMiserable},
		{100, 100, MoodHappy},
		{70, 70, MoodHappy},
		{70, 69, MoodContent}, // avg 69.5 floors to 69
		{40, 40, MoodContent},
		{40, 39, MoodSad},
		{20, 20, MoodSad},
		{20, 19, MoodMiserable},
		{0, 0, MoodMiserable},
		{100, 0, MoodContent},
	}

	for _, tt := range tests {
		p := &Pet{Name: "Tomo", Hunger: tt.hunger, Happiness: tt.happiness}
		assert.Equal(t, tt.want, p.Mood(), "hunger=%d happiness=%d", tt.hunger, tt.happiness)
	}
}

func TestMoodIsTotalAndPure(t *testing.T) {
	valid := map[Mood]bool{MoodHappy: true, MoodContent: true, MoodSad: true, MoodMiserable: true}

	for h := MinStat; h <= MaxStat; h++ {
		for p := MinStat; p <= MaxStat; p++ {
			first := MoodFor(h, p)
			if !valid[first] {
				t.Fatalf("MoodFor(%d, %d) = %v, not a known mood", h, p, first)
			}
			if second := MoodFor(h, p); second != first {
				t.Fatalf("MoodFor(%d, %d) changed between calls: %v then %v", h, p, first, second)
			}
		}
	}
}

func TestMoodLabels(t *testing.T) {
	assert.Equal(t, "Happy 😊", MoodHappy.Label())
	assert.Equal(t, "Content 😌", MoodContent.Label())
	assert.Equal(t, "Sad 😞", MoodSad.Label())
	assert.Equal(t, "Miserable 😭", MoodMiserable.Label())
	assert.Equal(t, "Unknown", Mood(42).String())
}
