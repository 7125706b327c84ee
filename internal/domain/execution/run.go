package execution

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents a single execution of a sort algorithm over the sequence.
type Run struct {
	ID        string // UUID
	Algorithm string // Algorithm ID (bubble, selection, ...)

	State State

	StartedAt   time.Time
	CompletedAt *time.Time
	Duration    *time.Duration
}

// NewRun creates a running Run for the given algorithm.
func NewRun(algorithm string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Algorithm: algorithm,
		State:     StateRunning,
		StartedAt: time.Now(),
	}
}

// IsFinished checks if the run is in a terminal state.
func (r *Run) IsFinished() bool {
	return r.State.IsTerminal()
}

// SetState sets the state with validation.
// Returns an error if the transition is invalid.
func (r *Run) SetState(newState State) error {
	if !r.State.CanTransitionTo(newState) {
		return &InvalidStateTransitionError{
			From: r.State,
			To:   newState,
		}
	}
	r.State = newState
	return nil
}

// finish records the completion time and duration alongside the final state.
func (r *Run) finish(state State) error {
	if err := r.SetState(state); err != nil {
		return err
	}
	now := time.Now()
	r.CompletedAt = &now
	duration := now.Sub(r.StartedAt)
	r.Duration = &duration
	return nil
}

// MarkCompleted transitions the run to the completed state.
func (r *Run) MarkCompleted() error { return r.finish(StateCompleted) }

// MarkCancelled transitions the run to the cancelled state.
func (r *Run) MarkCancelled() error { return r.finish(StateCancelled) }

// MarkFailed transitions the run to the failed state.
func (r *Run) MarkFailed() error { return r.finish(StateFailed) }

// InvalidStateTransitionError represents an invalid state transition.
type InvalidStateTransitionError struct {
	From State
	To   State
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.From, e.To)
}
