package pages

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
)

// Bar colors follow the original panel: lime green once sorted, orange-red
// for the active pair, a blue-to-cyan hue gradient by magnitude otherwise.
var (
	colorSorted = color.NRGBA{R: 50, G: 205, B: 50, A: 255}
	colorActive = color.NRGBA{R: 255, G: 69, B: 0, A: 255}
)

// valueScale maps magnitudes (up to ~489) onto the panel height.
const valueScale = 500.0

// BarsWidget renders the sequence as vertical bars on a black background.
// It repaints whole frames; SetFrame must be called on the Fyne UI goroutine.
type BarsWidget struct {
	widget.BaseWidget

	mu    sync.Mutex
	frame usecase.Frame
}

// NewBarsWidget creates an empty bars widget.
func NewBarsWidget() *BarsWidget {
	b := &BarsWidget{
		frame: usecase.Frame{
			HighlightA: usecase.NoHighlight,
			HighlightB: usecase.NoHighlight,
		},
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetFrame replaces the rendered frame and repaints.
func (b *BarsWidget) SetFrame(f usecase.Frame) {
	b.mu.Lock()
	b.frame = f
	b.mu.Unlock()
	b.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (b *BarsWidget) CreateRenderer() fyne.WidgetRenderer {
	return &barsRenderer{
		widget: b,
		bg:     canvas.NewRectangle(color.Black),
	}
}

func (b *BarsWidget) snapshot() usecase.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

type barsRenderer struct {
	widget *BarsWidget
	bg     *canvas.Rectangle
	bars   []*canvas.Rectangle
	size   fyne.Size
}

func (r *barsRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 200)
}

func (r *barsRenderer) Layout(size fyne.Size) {
	r.size = size
	r.bg.Resize(size)
	r.bg.Move(fyne.Position{})
	r.layoutBars()
}

func (r *barsRenderer) Refresh() {
	r.layoutBars()
	r.bg.Refresh()
	for _, bar := range r.bars {
		bar.Refresh()
	}
}

func (r *barsRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.bars)+1)
	objects = append(objects, r.bg)
	for _, bar := range r.bars {
		objects = append(objects, bar)
	}
	return objects
}

func (r *barsRenderer) Destroy() {}

// layoutBars sizes, positions and colors one rectangle per element.
func (r *barsRenderer) layoutBars() {
	frame := r.widget.snapshot()
	n := len(frame.Sequence)

	for len(r.bars) < n {
		r.bars = append(r.bars, canvas.NewRectangle(colorSorted))
	}
	if len(r.bars) > n {
		r.bars = r.bars[:n]
	}
	if n == 0 {
		return
	}

	w := r.size.Width
	h := r.size.Height
	barWidth := w / float32(n)
	if barWidth < 1 {
		barWidth = 1
	}

	for i, bar := range r.bars {
		val := frame.Sequence[i]
		barHeight := float32(val) / valueScale * h

		switch {
		case frame.Sorted:
			bar.FillColor = colorSorted
		case i == frame.HighlightA || i == frame.HighlightB:
			bar.FillColor = colorActive
		default:
			bar.FillColor = magnitudeColor(val)
		}

		bar.Move(fyne.NewPos(float32(i)*barWidth, h-barHeight))
		bar.Resize(fyne.NewSize(barWidth-1, barHeight))
	}
}

// magnitudeColor maps a magnitude to a hue between blue and cyan.
func magnitudeColor(val int) color.NRGBA {
	hue := 0.6 * float64(val) / valueScale
	return hsvToNRGBA(hue, 0.9, 0.9)
}

// hsvToNRGBA converts h in [0,1), s, v in [0,1] to an opaque color.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 1.0) * 6
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var red, green, blue float64
	switch i {
	case 0:
		red, green, blue = v, t, p
	case 1:
		red, green, blue = q, v, p
	case 2:
		red, green, blue = p, v, t
	case 3:
		red, green, blue = p, q, v
	case 4:
		red, green, blue = t, p, v
	default:
		red, green, blue = v, p, q
	}

	return color.NRGBA{
		R: uint8(red * 255),
		G: uint8(green * 255),
		B: uint8(blue * 255),
		A: 255,
	}
}
