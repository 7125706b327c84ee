// Package pages provides the GUI pages for the sorting visualizer.
package pages

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/algorithm"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/config"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"
)

// VisualizerPage wires the bars widget and the run controls to the use case.
type VisualizerPage struct {
	win fyne.Window
	uc  *usecase.VisualizerUseCase

	bars        *BarsWidget
	statusLabel *widget.Label

	algoSelect  *widget.Select
	btnStart    *widget.Button
	btnShuffle  *widget.Button
	speedSlider *widget.Slider
	sizeSlider  *widget.Slider
	running     bool

	// algoIDs is parallel to algoSelect.Options.
	algoIDs []string
}

// NewVisualizerPage creates the main visualizer page.
func NewVisualizerPage(win fyne.Window, uc *usecase.VisualizerUseCase, cfg *config.Config) fyne.CanvasObject {
	page := &VisualizerPage{
		win:  win,
		uc:   uc,
		bars: NewBarsWidget(),
	}

	var names []string
	for _, a := range algorithm.All() {
		page.algoIDs = append(page.algoIDs, a.ID())
		names = append(names, a.Name())
	}
	page.algoSelect = widget.NewSelect(names, nil)
	page.algoSelect.SetSelectedIndex(indexOf(page.algoIDs, cfg.DefaultAlgorithm))

	page.btnStart = widget.NewButton("Start", func() {
		page.onStartStop()
	})
	page.btnShuffle = widget.NewButton("Shuffle", func() {
		page.onShuffle()
	})

	// The slider runs 0..200 with "faster" to the right; delay is the
	// inverse, clamped to at least 1ms so a run always yields.
	page.speedSlider = widget.NewSlider(0, float64(execution.MaxDelayMs-1))
	page.speedSlider.SetValue(float64(execution.MaxDelayMs - cfg.DefaultDelayMs))
	page.speedSlider.OnChanged = func(v float64) {
		uc.SetDelay(execution.MaxDelayMs - int(v))
		page.updateStatus(uc.State())
	}

	page.sizeSlider = widget.NewSlider(10, 300)
	page.sizeSlider.SetValue(float64(cfg.DefaultSize))
	page.sizeSlider.OnChangeEnded = func(v float64) {
		page.onResize(int(v))
	}

	page.statusLabel = widget.NewLabel("")
	page.updateStatus(uc.State())

	// Frames arrive on the run goroutine; marshal onto the UI goroutine.
	uc.SetFrameCallback(func(f usecase.Frame) {
		fyne.Do(func() {
			page.applyFrame(f)
		})
	})
	page.bars.SetFrame(usecase.Frame{
		Sequence:   uc.Snapshot(),
		HighlightA: usecase.NoHighlight,
		HighlightB: usecase.NoHighlight,
		State:      uc.State(),
	})

	controls := container.NewVBox(
		container.NewHBox(page.algoSelect, page.btnStart, page.btnShuffle),
		container.NewGridWithColumns(2,
			widget.NewLabel("Speed:"), page.speedSlider,
			widget.NewLabel("Size:"), page.sizeSlider,
		),
	)

	return container.NewBorder(controls, page.statusLabel, nil, nil, page.bars)
}

// onStartStop starts a run, or requests a stop if one is active.
func (p *VisualizerPage) onStartStop() {
	if p.uc.State() == execution.StateRunning {
		p.uc.RequestStop()
		return
	}

	idx := p.algoSelect.SelectedIndex()
	if idx < 0 {
		idx = 0
	}
	run, err := p.uc.Start(p.algoIDs[idx])
	if err != nil {
		dialog.ShowError(err, p.win)
		return
	}
	slog.Info("Visualizer: Run started from UI", "run_id", run.ID, "algorithm", run.Algorithm)
}

func (p *VisualizerPage) onShuffle() {
	if err := p.uc.Shuffle(); err != nil {
		dialog.ShowError(err, p.win)
	}
}

func (p *VisualizerPage) onResize(n int) {
	if err := p.uc.Resize(n); err != nil {
		slog.Warn("Visualizer: Resize rejected", "size", n, "err", err)
		p.sizeSlider.SetValue(float64(p.uc.Len()))
		dialog.ShowError(err, p.win)
	}
}

// applyFrame repaints the bars and mirrors the run state in the controls.
// Must run on the UI goroutine.
func (p *VisualizerPage) applyFrame(f usecase.Frame) {
	p.bars.SetFrame(f)
	p.updateStatus(f.State)

	running := f.State == execution.StateRunning
	if running == p.running {
		return
	}
	p.running = running

	if running {
		p.btnStart.SetText("Stop")
		p.algoSelect.Disable()
		p.btnShuffle.Disable()
		p.sizeSlider.Disable()
	} else {
		p.btnStart.SetText("Start")
		p.algoSelect.Enable()
		p.btnShuffle.Enable()
		p.sizeSlider.Enable()
	}
}

func (p *VisualizerPage) updateStatus(state execution.State) {
	name := ""
	if idx := p.algoSelect.SelectedIndex(); idx >= 0 {
		name = p.algoSelect.Options[idx]
	}
	p.statusLabel.SetText(fmt.Sprintf("%d items | delay %dms | %s | %s",
		p.uc.Len(), p.uc.DelayMs(), name, state))
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return 0
}
