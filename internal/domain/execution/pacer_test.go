// Package execution provides unit tests for the pacer and stop token.
package execution

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestPacer_Clamp tests delay clamping at both bounds.
func TestPacer_Clamp(t *testing.T) {
	tests := []struct {
		name string
		set  int
		want int
	}{
		{"below floor", 0, MinDelayMs},
		{"negative", -10, MinDelayMs},
		{"at floor", 1, 1},
		{"mid range", 100, 100},
		{"at ceiling", 201, 201},
		{"above ceiling", 5000, MaxDelayMs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPacer(tt.set)
			assert.Equal(t, tt.want, p.DelayMs())
			assert.Equal(t, time.Duration(tt.want)*time.Millisecond, p.Delay())
		})
	}
}

// TestPacer_LiveUpdate tests that a delay change is visible to the next read.
func TestPacer_LiveUpdate(t *testing.T) {
	p := NewPacer(40)
	p.SetDelay(MaxDelayMs)
	assert.Equal(t, MaxDelayMs, p.DelayMs())
	p.SetDelay(MinDelayMs)
	assert.Equal(t, MinDelayMs, p.DelayMs())
}

// TestStopToken tests tripping semantics.
func TestStopToken(t *testing.T) {
	tok := NewStopToken()
	assert.False(t, tok.Stopped())

	tok.RequestStop()
	assert.True(t, tok.Stopped())

	// Idempotent: repeated requests change nothing.
	tok.RequestStop()
	tok.RequestStop()
	assert.True(t, tok.Stopped())
}

// TestStopToken_Concurrent trips the token from many goroutines at once.
func TestStopToken_Concurrent(t *testing.T) {
	tok := NewStopToken()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok.RequestStop()
		}()
	}
	wg.Wait()

	assert.True(t, tok.Stopped())
}
