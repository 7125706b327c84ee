// Package pages provides GUI page tests.
package pages

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/config"
)

// TestVisualizerPageInitialization tests that the page builds without panics.
func TestVisualizerPageInitialization(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()
	win := testApp.NewWindow("Test Window")

	uc := usecase.NewVisualizerUseCase(20, 1)
	content := NewVisualizerPage(win, uc, config.Default())
	if content == nil {
		t.Fatal("Visualizer page should not be nil")
	}
	win.SetContent(content)
}

func TestBarsWidgetRendersFrames(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	bars := NewBarsWidget()
	win := testApp.NewWindow("Bars")
	win.SetContent(bars)

	bars.SetFrame(usecase.Frame{
		Sequence:   []int{10, 250, 489},
		HighlightA: 0,
		HighlightB: 2,
	})
	bars.SetFrame(usecase.Frame{
		Sequence:   []int{10, 250, 489},
		HighlightA: usecase.NoHighlight,
		HighlightB: usecase.NoHighlight,
		Sorted:     true,
	})
}
