package event

import (
	"errors"
	"time"
)

// ErrInputClosed is returned once the input mechanism has shut down cleanly
var ErrInputClosed = errors.New("input closed")

// DefaultTickRate is how long Next waits for a key before yielding a Tick
const DefaultTickRate = 250 * time.Millisecond

// Type distinguishes key presses from ticks
type Type int

const (
	Tick Type = iota
	KeyPress
)

// Event is either a key press or a tick
type Event struct {
	Type Type
	Key  Key
}

// Poller is the external input mechanism. Poll waits up to timeout for a
// key; ok is false when the timeout elapsed with no input.
type Poller interface {
	Poll(timeout time.Duration) (key Key, ok bool, err error)
}

// Source produces one event per call to Next
type Source struct {
	poller   Poller
	tickRate time.Duration
}

// NewSource creates an event source polling with the given tick rate
func NewSource(poller Poller, tickRate time.Duration) *Source {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Source{poller: poller, tickRate: tickRate}
}

// TickRate returns the poll timeout
func (s *Source) TickRate() time.Duration {
	return s.tickRate
}

// Next blocks for up to the tick rate. A key that arrives is returned as a
// KeyPress; otherwise a Tick is returned. Poller errors are returned as is.
func (s *Source) Next() (Event, error) {
	key, ok, err := s.poller.Poll(s.tickRate)
	if err != nil {
		return Event{}, err
	}
	if ok {
		return Event{Type: KeyPress, Key: key}, nil
	}
	return Event{Type: Tick}, nil
}
