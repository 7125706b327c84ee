package execution

import "sync/atomic"

// StopToken is the shared stop flag for one run. The controller trips it
// from the UI goroutine; the run goroutine polls it around every pause.
// It is never reset; each run gets a fresh token.
type StopToken struct {
	stopped atomic.Bool
}

// NewStopToken creates an untripped token.
func NewStopToken() *StopToken {
	return &StopToken{}
}

// RequestStop trips the token. Idempotent and safe from any goroutine.
func (t *StopToken) RequestStop() {
	t.stopped.Store(true)
}

// Stopped reports whether a stop has been requested. Never blocks.
func (t *StopToken) Stopped() bool {
	return t.stopped.Load()
}
