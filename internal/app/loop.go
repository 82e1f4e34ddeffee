package app

import (
	"unicode"

	"tomo/internal/event"
)

// EventSource yields the next key press or tick
type EventSource interface {
	Next() (event.Event, error)
}

// Renderer draws a frame from a snapshot
type Renderer interface {
	Render(Snapshot)
}

// Run renders, waits for an event and dispatches it until the app quits,
// then renders one last frame with Quitting set. Event source errors end
// the loop and are returned unchanged.
func Run(a *App, src EventSource, r Renderer) error {
	for a.Running() {
		r.Render(a.Snapshot())

		ev, err := src.Next()
		if err != nil {
			return err
		}
		a.HandleEvent(ev)
	}
	r.Render(a.Snapshot())
	return nil
}

// HandleEvent applies a single event to the app
func (a *App) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.Tick:
		a.Tick()
	case event.KeyPress:
		a.handleKey(ev.Key)
	}
}

func (a *App) handleKey(k event.Key) {
	switch {
	case k.Is('q'), k.Is('Q'), k.Ctrl && k.Code == event.KeyRune && (k.Rune == 'c' || k.Rune == 'C'):
		a.Quit()
		return
	case k.Is('f'), k.Is('F'):
		a.Feed()
		return
	case k.Is('p'), k.Is('P'):
		a.Play()
		return
	}

	if _, naming := a.state.(*Naming); !naming {
		return
	}
	switch k.Code {
	case event.KeyRune:
		if !k.Ctrl && unicode.IsPrint(k.Rune) {
			a.InputChar(k.Rune)
		}
	case event.KeyBackspace:
		a.InputBackspace()
	case event.KeyEnter:
		a.ConfirmName()
	case event.KeyEscape:
		a.Quit()
	}
}
