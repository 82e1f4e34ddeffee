package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tomo/internal/app"
	"tomo/internal/event"
)

// KeySink receives decoded key presses
type KeySink interface {
	Push(keys ...event.Key)
}

// Model is the Bubble Tea side of the game. It owns no game state: it
// forwards keys to the event source and draws whatever frame it was sent
// last.
type Model struct {
	Frame    app.Snapshot
	HasFrame bool
	keys     KeySink
}

type frameMsg app.Snapshot
type closeMsg struct{}

// NewModel creates a model that forwards key presses to keys
func NewModel(keys KeySink) Model {
	return Model{keys: keys}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.Push(TranslateKey(msg)...)

	case frameMsg:
		m.Frame = app.Snapshot(msg)
		m.HasFrame = true

	case closeMsg:
		return m, tea.Quit
	}

	return m, nil
}

// TranslateKey converts a Bubble Tea key message into game keys. Pasted
// or fast-typed text can arrive as several runes in one message.
func TranslateKey(msg tea.KeyMsg) []event.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []event.Key{{Code: event.KeyOther}}
		}
		keys := make([]event.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, event.RuneKey(r))
		}
		return keys
	case tea.KeySpace:
		return []event.Key{event.RuneKey(' ')}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []event.Key{{Code: event.KeyBackspace}}
	case tea.KeyEnter:
		return []event.Key{{Code: event.KeyEnter}}
	case tea.KeyEsc:
		return []event.Key{{Code: event.KeyEscape}}
	case tea.KeyTab:
		return []event.Key{{Code: event.KeyOther}}
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []event.Key{event.CtrlKey(rune('a' + int(msg.Type-tea.KeyCtrlA)))}
	}
	return []event.Key{{Code: event.KeyOther}}
}

type sender interface {
	Send(msg tea.Msg)
}

// Renderer hands snapshots to a running Bubble Tea program
type Renderer struct {
	program sender
}

// NewRenderer creates a renderer for program, usually a *tea.Program
func NewRenderer(program sender) *Renderer {
	return &Renderer{program: program}
}

// Render implements app.Renderer
func (r *Renderer) Render(s app.Snapshot) {
	r.program.Send(frameMsg(s))
}

// Close stops the program, leaving the last frame on screen
func (r *Renderer) Close() {
	r.program.Send(closeMsg{})
}
