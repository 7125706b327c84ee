// Package execution provides the sort run domain model and its state machine.
package execution

// State represents the lifecycle state of a sort run.
type State string

const (
	StateIdle      State = "idle"      // No run active, sequence editable
	StateRunning   State = "running"   // A variant is executing
	StateCompleted State = "completed" // Variant finished with no stop observed
	StateCancelled State = "cancelled" // Stop requested and observed mid-run
	StateFailed    State = "failed"    // Variant returned an unexpected error
)

// IsValid checks if the state is valid.
func (s State) IsValid() bool {
	switch s {
	case StateIdle, StateRunning, StateCompleted, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}

// IsTerminal checks if the state ends a run. Terminal states permit
// structural edits (resize/shuffle) and starting a new run, same as idle.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

// CanTransitionTo checks if a transition from the current state to the
// target state is valid.
func (s State) CanTransitionTo(target State) bool {
	transitions := map[State][]State{
		StateIdle:      {StateRunning},
		StateRunning:   {StateCompleted, StateCancelled, StateFailed},
		StateCompleted: {StateIdle, StateRunning},
		StateCancelled: {StateIdle, StateRunning},
		StateFailed:    {StateIdle, StateRunning},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, state := range allowed {
		if state == target {
			return true
		}
	}
	return false
}

// String implements Stringer interface.
func (s State) String() string {
	return string(s)
}
