// Package usecase provides the run controller and pacing machinery that
// drive stepwise sort execution for the UI and CLI frontends.
package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/amitbaghel07/SortingVisualizer/internal/domain/algorithm"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"
)

var (
	// ErrAlreadyRunning is returned when Start is called while a run is active.
	ErrAlreadyRunning = errors.New("a sort run is already in progress")

	// ErrNotIdle is returned when a structural edit is attempted while a run
	// is active.
	ErrNotIdle = errors.New("sequence is locked while a run is in progress")

	// ErrInvalidSize is returned when a resize target is outside the
	// supported sequence length range.
	ErrInvalidSize = errors.New("invalid sequence size")
)

// VisualizerUseCase orchestrates sort runs over a single sequence store.
// Exactly one run executes at a time, on its own goroutine; the controller
// communicates with it only through the stop token and the pacer, and the
// run reports back through frames and the final state transition.
type VisualizerUseCase struct {
	pacer *execution.Pacer

	mu      sync.Mutex // guards state, current, token and structural edits
	store   *sequence.Store
	state   execution.State
	current *execution.Run
	token   *execution.StopToken

	callbackMu sync.RWMutex
	callback   FrameCallback

	steps atomic.Uint64
}

// NewVisualizerUseCase creates a controller with a random sequence of the
// given size and an initial step delay in milliseconds. Both are clamped to
// their supported ranges.
func NewVisualizerUseCase(size, delayMs int) *VisualizerUseCase {
	if size < sequence.MinLength {
		size = sequence.MinLength
	}
	if size > sequence.MaxLength {
		size = sequence.MaxLength
	}
	return &VisualizerUseCase{
		pacer: execution.NewPacer(delayMs),
		store: sequence.NewRandom(size),
		state: execution.StateIdle,
	}
}

// SetFrameCallback sets the callback that receives frames. Pass nil to stop
// receiving. The callback is invoked from the run goroutine.
func (uc *VisualizerUseCase) SetFrameCallback(cb FrameCallback) {
	uc.callbackMu.Lock()
	defer uc.callbackMu.Unlock()
	uc.callback = cb
}

// Start begins a run of the algorithm registered under algorithmID. It fails
// with ErrAlreadyRunning if a run is active and with
// algorithm.ErrUnknownAlgorithm for an unregistered ID.
func (uc *VisualizerUseCase) Start(algorithmID string) (*execution.Run, error) {
	algo, err := algorithm.Get(algorithmID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if uc.state == execution.StateRunning {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, uc.current.Algorithm)
	}

	run := execution.NewRun(algorithmID)
	token := execution.NewStopToken()
	uc.current = run
	uc.token = token
	uc.state = execution.StateRunning
	uc.steps.Store(0)
	uc.mu.Unlock()

	slog.Info("Run started", "run_id", run.ID, "algorithm", algorithmID, "size", uc.store.Len(), "delay_ms", uc.pacer.DelayMs())
	uc.publish(NoHighlight, NoHighlight, false)

	go uc.execute(run, algo, token)

	return run, nil
}

// execute runs one variant to completion or cancellation.
// This runs in a goroutine.
func (uc *VisualizerUseCase) execute(run *execution.Run, algo algorithm.Algorithm, token *execution.StopToken) {
	stepper := &pacedStepper{
		pacer:   uc.pacer,
		token:   token,
		publish: uc.publishStep,
	}

	err := algo.Sort(uc.store, stepper)

	uc.mu.Lock()
	switch {
	case err == nil:
		uc.state = execution.StateCompleted
		err = run.MarkCompleted()
	case errors.Is(err, algorithm.ErrStopRequested):
		uc.state = execution.StateCancelled
		err = run.MarkCancelled()
	default:
		uc.state = execution.StateFailed
		slog.Error("Run failed", "run_id", run.ID, "algorithm", run.Algorithm, "err", err)
		err = run.MarkFailed()
	}
	sorted := uc.state == execution.StateCompleted
	uc.mu.Unlock()

	if err != nil {
		// Only possible if the run was finished twice, which would be a bug
		// in this controller.
		slog.Error("Run finalization failed", "run_id", run.ID, "err", err)
	}

	slog.Info("Run finished", "run_id", run.ID, "algorithm", run.Algorithm, "state", run.State, "steps", uc.steps.Load(), "duration", run.Duration)
	uc.publish(NoHighlight, NoHighlight, sorted)
}

// RequestStop trips the current run's stop token. It is a no-op unless a run
// is active, and calling it repeatedly has the same effect as calling it once.
func (uc *VisualizerUseCase) RequestStop() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state != execution.StateRunning {
		return
	}
	slog.Info("Stop requested", "run_id", uc.current.ID)
	uc.token.RequestStop()
}

// Resize regenerates the sequence with n fresh random magnitudes. It fails
// with ErrNotIdle while a run is active and ErrInvalidSize outside
// [sequence.MinLength, sequence.MaxLength].
func (uc *VisualizerUseCase) Resize(n int) error {
	if n < sequence.MinLength || n > sequence.MaxLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSize, n, sequence.MinLength, sequence.MaxLength)
	}
	return uc.regenerate(n)
}

// Shuffle regenerates the sequence at its current length. Same state rules
// as Resize.
func (uc *VisualizerUseCase) Shuffle() error {
	return uc.regenerate(uc.store.Len())
}

func (uc *VisualizerUseCase) regenerate(n int) error {
	uc.mu.Lock()
	if uc.state == execution.StateRunning {
		uc.mu.Unlock()
		return ErrNotIdle
	}
	uc.store.Replace(sequence.RandomValues(n))
	uc.state = execution.StateIdle
	uc.current = nil
	uc.steps.Store(0)
	uc.mu.Unlock()

	slog.Info("Sequence regenerated", "size", n)
	uc.publish(NoHighlight, NoHighlight, false)
	return nil
}

// SetSequence replaces the sequence with explicit values, for reproducible
// runs. Same state rules as Resize.
func (uc *VisualizerUseCase) SetSequence(values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidSize)
	}
	uc.mu.Lock()
	if uc.state == execution.StateRunning {
		uc.mu.Unlock()
		return ErrNotIdle
	}
	uc.store.Replace(values)
	uc.state = execution.StateIdle
	uc.current = nil
	uc.steps.Store(0)
	uc.mu.Unlock()

	uc.publish(NoHighlight, NoHighlight, false)
	return nil
}

// SetDelay sets the step delay in milliseconds, clamped to the pacer's
// bounds. Allowed at any time; it applies from the next step on.
func (uc *VisualizerUseCase) SetDelay(ms int) {
	uc.pacer.SetDelay(ms)
}

// DelayMs returns the current step delay in milliseconds.
func (uc *VisualizerUseCase) DelayMs() int {
	return uc.pacer.DelayMs()
}

// State returns the current run state.
func (uc *VisualizerUseCase) State() execution.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// CurrentRun returns the most recent run, or nil before the first start or
// after a structural edit.
func (uc *VisualizerUseCase) CurrentRun() *execution.Run {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Snapshot returns a copy of the current sequence.
func (uc *VisualizerUseCase) Snapshot() []int {
	return uc.store.Snapshot()
}

// Len returns the current sequence length.
func (uc *VisualizerUseCase) Len() int {
	return uc.store.Len()
}

// publishStep is the stepper's publish hook.
func (uc *VisualizerUseCase) publishStep(a, b int) {
	uc.steps.Add(1)
	uc.publish(a, b, false)
}

func (uc *VisualizerUseCase) publish(a, b int, sorted bool) {
	uc.callbackMu.RLock()
	cb := uc.callback
	uc.callbackMu.RUnlock()
	if cb == nil {
		return
	}
	cb(Frame{
		Sequence:   uc.store.Snapshot(),
		HighlightA: a,
		HighlightB: b,
		State:      uc.State(),
		Sorted:     sorted,
		Steps:      uc.steps.Load(),
	})
}
