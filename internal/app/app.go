// Package app holds the application state machine that sits between the
// event source and the pet, and the loop that drives it.
package app

import (
	"fmt"
	"log"
	"time"

	"tomo/internal/pet"
)

// DefaultFeedbackTTL is how long a feed/play message stays on screen
const DefaultFeedbackTTL = 2 * time.Second

// State is either Naming or Running
type State interface {
	isState()
}

// Naming is the phase before a pet exists
type Naming struct {
	Input []rune
}

// Running is the phase after the pet has been named
type Running struct {
	Pet        *pet.Pet
	LastAction *Feedback
}

func (*Naming) isState()  {}
func (*Running) isState() {}

// Feedback is a transient message shown after an action
type Feedback struct {
	Message string
	At      time.Time
}

// App is the application state machine. It is not safe for concurrent use;
// the run loop is its only owner.
type App struct {
	state       State
	running     bool
	now         func() time.Time
	feedbackTTL time.Duration
}

// Option configures an App
type Option func(*App)

// WithClock replaces time.Now as the source of feedback timestamps
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithFeedbackTTL sets how long feedback messages last
func WithFeedbackTTL(ttl time.Duration) Option {
	return func(a *App) {
		a.feedbackTTL = ttl
	}
}

// New creates an app in the naming phase
func New(opts ...Option) *App {
	a := &App{
		state:       &Naming{},
		running:     true,
		now:         time.Now,
		feedbackTTL: DefaultFeedbackTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewRunning creates an app that skips naming. An empty name falls back
// to the default.
func NewRunning(name string, opts ...Option) *App {
	a := New(opts...)
	a.state = &Running{Pet: pet.New(nameOrDefault(name))}
	log.Printf("Started with pet %q", a.Pet().Name)
	return a
}

// State returns the current state
func (a *App) State() State {
	return a.state
}

// Pet returns the pet, or nil while naming
func (a *App) Pet() *pet.Pet {
	if r, ok := a.state.(*Running); ok {
		return r.Pet
	}
	return nil
}

// Running reports whether the loop should keep going
func (a *App) Running() bool {
	return a.running
}

// InputChar appends r to the name buffer if there is room
func (a *App) InputChar(r rune) {
	n, ok := a.state.(*Naming)
	if !ok {
		return
	}
	if len(n.Input) < pet.MaxNameLength {
		n.Input = append(n.Input, r)
	}
}

// InputBackspace removes the last rune of the name buffer
func (a *App) InputBackspace() {
	n, ok := a.state.(*Naming)
	if !ok || len(n.Input) == 0 {
		return
	}
	n.Input = n.Input[:len(n.Input)-1]
}

// ConfirmName creates the pet from the buffer and starts the game.
// The buffer is used as typed, without trimming.
func (a *App) ConfirmName() {
	n, ok := a.state.(*Naming)
	if !ok {
		return
	}
	name := nameOrDefault(string(n.Input))
	a.state = &Running{Pet: pet.New(name)}
	log.Printf("Named pet %q", name)
}

// Feed feeds the pet. No-op while naming.
func (a *App) Feed() {
	r, ok := a.state.(*Running)
	if !ok {
		return
	}
	r.Pet.Feed()
	r.LastAction = &Feedback{Message: fmt.Sprintf("You fed %s!", r.Pet.Name), At: a.now()}
	log.Printf("Fed pet. Hunger is now %d", r.Pet.Hunger)
}

// Play plays with the pet. No-op while naming.
func (a *App) Play() {
	r, ok := a.state.(*Running)
	if !ok {
		return
	}
	r.Pet.Play()
	r.LastAction = &Feedback{Message: fmt.Sprintf("You played with %s!", r.Pet.Name), At: a.now()}
	log.Printf("Played with pet. Happiness is now %d", r.Pet.Happiness)
}

// Quit stops the run loop after the current iteration
func (a *App) Quit() {
	if a.running {
		log.Printf("Quit requested")
	}
	a.running = false
}

// Tick decays the pet's stats and expires old feedback
func (a *App) Tick() {
	r, ok := a.state.(*Running)
	if !ok {
		return
	}
	r.Pet.Tick()
	log.Printf("Hunger decreased to %d, Happiness decreased to %d", r.Pet.Hunger, r.Pet.Happiness)
	if r.LastAction != nil && a.now().Sub(r.LastAction.At) >= a.feedbackTTL {
		r.LastAction = nil
	}
}

func nameOrDefault(name string) string {
	if name == "" {
		return pet.DefaultName
	}
	return name
}
