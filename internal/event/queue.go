package event

import (
	"sync"
	"time"
)

// KeyQueue is a Poller fed by another goroutine, usually the terminal
// reader. Push never blocks. Keys already queued are always handed out
// before a timeout or a close is reported.
type KeyQueue struct {
	mu      sync.Mutex
	pending []Key
	ready   chan struct{}

	done      chan struct{}
	closeOnce sync.Once
	err       error
}

// NewKeyQueue creates an empty queue
func NewKeyQueue() *KeyQueue {
	return &KeyQueue{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push appends keys to the queue
func (q *KeyQueue) Push(keys ...Key) {
	if len(keys) == 0 {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, keys...)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Close marks the input as finished. Poll returns err once the queue is
// drained; a nil err is reported as ErrInputClosed. Only the first call
// has an effect.
func (q *KeyQueue) Close(err error) {
	q.closeOnce.Do(func() {
		if err == nil {
			err = ErrInputClosed
		}
		q.mu.Lock()
		q.err = err
		q.mu.Unlock()
		close(q.done)
	})
}

// Len returns the number of queued keys
func (q *KeyQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Poll implements Poller
func (q *KeyQueue) Poll(timeout time.Duration) (Key, bool, error) {
	if key, ok := q.pop(); ok {
		return key, true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-q.ready:
			if key, ok := q.pop(); ok {
				return key, true, nil
			}
		case <-q.done:
			if key, ok := q.pop(); ok {
				return key, true, nil
			}
			q.mu.Lock()
			err := q.err
			q.mu.Unlock()
			return Key{}, false, err
		case <-timer.C:
			if key, ok := q.pop(); ok {
				return key, true, nil
			}
			return Key{}, false, nil
		}
	}
}

func (q *KeyQueue) pop() (Key, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return Key{}, false
	}
	key := q.pending[0]
	q.pending = q.pending[1:]
	return key, true
}
