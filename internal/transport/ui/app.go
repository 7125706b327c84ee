// Package ui provides the GUI implementation using Fyne. It only handles
// rendering and user interaction; run orchestration lives in the use case.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/config"
	"github.com/amitbaghel07/SortingVisualizer/internal/transport/ui/pages"
)

// Application represents the Fyne GUI application.
type Application struct {
	app fyne.App
	uc  *usecase.VisualizerUseCase
	cfg *config.Config
}

// NewApplication creates a new Fyne application around the visualizer use case.
func NewApplication(uc *usecase.VisualizerUseCase, cfg *config.Config) *Application {
	return &Application{
		app: app.NewWithID("com.github.amitbaghel07.sortviz"),
		uc:  uc,
		cfg: cfg,
	}
}

// Run starts the application and blocks until the window is closed.
func (a *Application) Run() {
	window := a.app.NewWindow("Sorting Visualizer")
	window.Resize(fyne.NewSize(float32(a.cfg.WindowWidth), float32(a.cfg.WindowHeight)))
	window.SetMaster()

	window.SetCloseIntercept(func() {
		// Stop a run cooperatively before tearing the window down.
		a.uc.RequestStop()
		a.app.Quit()
	})

	window.SetContent(pages.NewVisualizerPage(window, a.uc, a.cfg))
	window.ShowAndRun()
}
