// Package execution provides unit tests for the run state machine.
package execution

import (
	"testing"
)

// TestState_IsValid tests valid state detection.
func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"idle is valid", StateIdle, true},
		{"running is valid", StateRunning, true},
		{"completed is valid", StateCompleted, true},
		{"cancelled is valid", StateCancelled, true},
		{"failed is valid", StateFailed, true},
		{"invalid state", State("paused"), false},
		{"empty state", State(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.want {
				t.Errorf("State.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestState_IsTerminal tests terminal state detection.
func TestState_IsTerminal(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"completed is terminal", StateCompleted, true},
		{"cancelled is terminal", StateCancelled, true},
		{"failed is terminal", StateFailed, true},
		{"idle is not terminal", StateIdle, false},
		{"running is not terminal", StateRunning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsTerminal(); got != tt.want {
				t.Errorf("State.IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestState_CanTransitionTo tests valid state transitions.
func TestState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		to     State
		wantOk bool
	}{
		// Happy path
		{"idle -> running", StateIdle, StateRunning, true},
		{"running -> completed", StateRunning, StateCompleted, true},

		// Cooperative cancellation
		{"running -> cancelled", StateRunning, StateCancelled, true},

		// Variant bugs
		{"running -> failed", StateRunning, StateFailed, true},

		// Structural edits and restarts after a run
		{"completed -> idle", StateCompleted, StateIdle, true},
		{"cancelled -> idle", StateCancelled, StateIdle, true},
		{"failed -> idle", StateFailed, StateIdle, true},
		{"completed -> running", StateCompleted, StateRunning, true},
		{"cancelled -> running", StateCancelled, StateRunning, true},

		// Invalid transitions
		{"idle -> completed (skip)", StateIdle, StateCompleted, false},
		{"idle -> cancelled (skip)", StateIdle, StateCancelled, false},
		{"running -> running (no change)", StateRunning, StateRunning, false},
		{"running -> idle (skip)", StateRunning, StateIdle, false},
		{"completed -> cancelled", StateCompleted, StateCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOk := tt.from.CanTransitionTo(tt.to)
			if gotOk != tt.wantOk {
				t.Errorf("State.CanTransitionTo() = %v, want %v", gotOk, tt.wantOk)
			}
		})
	}
}

// TestState_String tests string representation.
func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateCompleted, "completed"},
		{StateCancelled, "cancelled"},
		{StateFailed, "failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
