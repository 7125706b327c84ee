package execution

import (
	"sync/atomic"
	"time"
)

// Delay bounds in milliseconds. The floor is 1, never 0: a zero-length pause
// would let a run hog its goroutine without ever observing cancellation.
const (
	MinDelayMs = 1
	MaxDelayMs = 201
)

// Pacer holds the live step delay. It is written by the UI at any time and
// read once per step by the stepper; a change applies from the next step on.
type Pacer struct {
	ms atomic.Int64
}

// NewPacer creates a pacer with the given initial delay, clamped.
func NewPacer(ms int) *Pacer {
	p := &Pacer{}
	p.SetDelay(ms)
	return p
}

// SetDelay sets the delay in milliseconds, clamped to [MinDelayMs, MaxDelayMs].
func (p *Pacer) SetDelay(ms int) {
	if ms < MinDelayMs {
		ms = MinDelayMs
	}
	if ms > MaxDelayMs {
		ms = MaxDelayMs
	}
	p.ms.Store(int64(ms))
}

// DelayMs returns the current delay in milliseconds.
func (p *Pacer) DelayMs() int {
	return int(p.ms.Load())
}

// Delay returns the current delay as a duration.
func (p *Pacer) Delay() time.Duration {
	return time.Duration(p.ms.Load()) * time.Millisecond
}
