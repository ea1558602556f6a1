// Package verification tracks the client side of the approve/reject
// workflow as an explicit state machine per record, so double submits and
// retry-after-failure are unambiguous instead of hidden in boolean flags.
package verification

import (
	"errors"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateConfirmed
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:       "idle",
	StateSubmitting: "submitting",
	StateConfirmed:  "confirmed",
	StateFailed:     "failed",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

var (
	ErrSubmissionInFlight = errors.New("a submission for this record is already in flight")
	ErrAlreadySettled     = errors.New("this record has already been settled")
)

// Tracker guards one submission per record at a time. A failed submission
// returns the record to an actionable state; a confirmed one blocks any
// further action, matching the pending-only transition rule of the
// contract.
type Tracker struct {
	mu     sync.Mutex
	states map[uint64]State
}

func NewTracker() *Tracker {
	return &Tracker{states: make(map[uint64]State)}
}

// Begin moves the record to Submitting. Valid only from Idle or Failed.
func (t *Tracker) Begin(id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.states[id] {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateConfirmed:
		return ErrAlreadySettled
	}

	t.states[id] = StateSubmitting
	return nil
}

// Finish settles an in-flight submission: Confirmed on success, Failed on
// error. Finishing a record that is not Submitting is a no-op.
func (t *Tracker) Finish(id uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[id] != StateSubmitting {
		return
	}

	if err != nil {
		t.states[id] = StateFailed
	} else {
		t.states[id] = StateConfirmed
	}
}

func (t *Tracker) State(id uint64) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.states[id]
}
