package usecase

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"

// NoHighlight marks an absent highlight index in a Frame.
const NoHighlight = -1

// Frame is one observable snapshot of the visualizer: the sequence, the pair
// of indices most recently touched, the run state, and whether the sequence
// has been fully sorted. Frames are published once per step and once per
// state transition, in the exact order the run produced them.
type Frame struct {
	Sequence   []int
	HighlightA int // NoHighlight when nothing is active
	HighlightB int
	State      execution.State
	Sorted     bool
	Steps      uint64 // steps emitted so far in the current run
}

// FrameCallback receives frames. It is invoked synchronously from the run
// goroutine (or from the controller on state transitions), so implementations
// must not block; UI consumers marshal onto their own event loop.
type FrameCallback func(frame Frame)
