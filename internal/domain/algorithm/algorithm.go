// Package algorithm provides the comparison sort variants that drive the
// visualizer, expressed purely in terms of sequence store access and Stepper
// calls so that pacing and cancellation stay outside the algorithms.
package algorithm

import (
	"errors"
	"fmt"

	"github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"
)

var (
	// ErrStopRequested is returned by a Stepper once a stop has been
	// requested. It is the only way a running sort unwinds early; variants
	// propagate it without cleanup or rollback.
	ErrStopRequested = errors.New("stop requested")

	// ErrUnknownAlgorithm is returned when looking up an ID that is not
	// registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Stepper is called by a variant once per observable unit of progress.
// Step marks indices a and b as active, publishes the current sequence to
// any observer, pauses for the configured delay, and returns
// ErrStopRequested if a stop was requested before or after the pause.
type Stepper interface {
	Step(a, b int) error
}

// Algorithm is one sort variant. Sort returns nil on completion,
// ErrStopRequested when cancelled, and any other error only on a store
// access bug. On early return the store keeps whatever partial order the
// variant reached.
type Algorithm interface {
	ID() string
	Name() string
	Sort(s *sequence.Store, st Stepper) error
}

// The registry is a closed set; the slice fixes the display order.
var registry = []Algorithm{
	bubbleSort{},
	selectionSort{},
	insertionSort{},
	mergeSort{},
	quickSort{},
}

// All returns the registered algorithms in display order.
func All() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)
	return out
}

// IDs returns the registered algorithm IDs in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, a := range registry {
		ids[i] = a.ID()
	}
	return ids
}

// Get returns the algorithm registered under id.
func Get(id string) (Algorithm, error) {
	for _, a := range registry {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
}
