package usecase

import (
	"time"

	"github.com/amitbaghel07/SortingVisualizer/internal/domain/algorithm"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"
)

// pacedStepper is the algorithm.Stepper used by real runs. Each step
// publishes the highlight pair, pauses for the pacer's current delay, and
// checks the stop token on both sides of the pause. Centralizing the
// pause and the check here means every variant yields and observes
// cancellation at least once per comparison.
type pacedStepper struct {
	pacer   *execution.Pacer
	token   *execution.StopToken
	publish func(a, b int)
}

// Step implements algorithm.Stepper.
func (p *pacedStepper) Step(a, b int) error {
	if p.token.Stopped() {
		return algorithm.ErrStopRequested
	}
	p.publish(a, b)
	time.Sleep(p.pacer.Delay())
	if p.token.Stopped() {
		return algorithm.ErrStopRequested
	}
	return nil
}
