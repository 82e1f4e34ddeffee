package app

import "tomo/internal/pet"

// Phase names the current state for renderers
type Phase int

const (
	PhaseNaming Phase = iota
	PhaseRunning
)

// Snapshot is a read-only copy of the app state handed to the renderer
type Snapshot struct {
	Phase     Phase
	NameInput string
	Pet       pet.Pet
	Mood      pet.Mood
	Feedback  string
	Quitting  bool
}

// Snapshot copies the current state
func (a *App) Snapshot() Snapshot {
	s := Snapshot{Quitting: !a.running}
	switch st := a.state.(type) {
	case *Naming:
		s.Phase = PhaseNaming
		s.NameInput = string(st.Input)
	case *Running:
		s.Phase = PhaseRunning
		s.Pet = *st.Pet
		s.Mood = st.Pet.Mood()
		if st.LastAction != nil {
			s.Feedback = st.LastAction.Message
		}
	}
	return s
}
