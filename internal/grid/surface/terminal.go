package surface

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/text"
)

// Terminal rasterizes the pixel-space drawing contract coarsely onto a
// tcell screen. One character cell stands for PxPerCol x PxPerRow pixels.
// It exists for the demo viewer and for eyeballing render output; precise
// sub-pixel features (dashes, rotation) degrade gracefully.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// Pixels represented by one character cell.
	pxW float64
	pxH float64

	measurer text.RuneMeasurer

	state      termState
	stateStack []termState
}

// termState is the saved clip/transform/dash state.
type termState struct {
	clip    core.Rect
	hasClip bool
	dx, dy  float64
	dashed  bool
}

// NewTerminal creates a terminal surface. pxPerCol and pxPerRow set the
// pixel extent of one character cell; zero values use 8x16.
func NewTerminal(pxPerCol, pxPerRow float64) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if pxPerCol <= 0 {
		pxPerCol = 8
	}
	if pxPerRow <= 0 {
		pxPerRow = 16
	}
	return &Terminal{screen: screen, pxW: pxPerCol, pxH: pxPerRow}, nil
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// PollEvent blocks for the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// EnableMouse turns on mouse event reporting.
func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.EnableMouse()
}

// ToPixel converts a character cell position to the pixel-space point at
// the cell's center, for feeding terminal mouse events to hit testing.
func (t *Terminal) ToPixel(col, row int) (float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return (float64(col) + 0.5) * t.pxW, (float64(row) + 0.5) * t.pxH
}

// Size returns the drawable size in pixels.
func (t *Terminal) Size() (float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.screen.Size()
	return float64(w) * t.pxW, float64(h) * t.pxH
}

// MeasureWidth approximates text width in pixel space so that one average
// glyph occupies one character cell.
func (t *Terminal) MeasureWidth(s string, font text.Font) float64 {
	cells := t.measurer.MeasureWidth(s, text.Font{Size: 1, Family: font.Family})
	return cells / text.DefaultCellFactor * t.pxW
}

func (t *Terminal) Clear(c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

func (t *Terminal) FillRect(r core.Rect, c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	x0, y0, x1, y1, ok := t.cellBounds(r)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(toTcell(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *Terminal) StrokeRect(r core.Rect, c core.Color, width float64) {
	t.StrokeLine(r.X, r.Y, r.Right(), r.Y, c, width)
	t.StrokeLine(r.X, r.Bottom(), r.Right(), r.Bottom(), c, width)
	t.StrokeLine(r.X, r.Y, r.X, r.Bottom(), c, width)
	t.StrokeLine(r.Right(), r.Y, r.Right(), r.Bottom(), c, width)
}

func (t *Terminal) StrokeLine(x1, y1, x2, y2 float64, c core.Color, width float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	x1, y1 = t.toDevice(x1, y1)
	x2, y2 = t.toDevice(x2, y2)
	style := tcell.StyleDefault.Foreground(toTcell(c))

	switch {
	case y1 == y2:
		cy := int(y1 / t.pxH)
		ca, cb := int(x1/t.pxW), int(x2/t.pxW)
		if ca > cb {
			ca, cb = cb, ca
		}
		for x := ca; x <= cb; x++ {
			if t.state.dashed && x%2 == 1 {
				continue
			}
			t.setClipped(x, cy, '─', style)
		}
	case x1 == x2:
		cx := int(x1 / t.pxW)
		ca, cb := int(y1/t.pxH), int(y2/t.pxH)
		if ca > cb {
			ca, cb = cb, ca
		}
		for y := ca; y <= cb; y++ {
			if t.state.dashed && y%2 == 1 {
				continue
			}
			t.setClipped(cx, y, '│', style)
		}
	default:
		// Diagonals only appear in decorations; approximate with dots.
		steps := int(max(abs(x2-x1)/t.pxW, abs(y2-y1)/t.pxH)) + 1
		for i := 0; i <= steps; i++ {
			fx := x1 + (x2-x1)*float64(i)/float64(steps)
			fy := y1 + (y2-y1)*float64(i)/float64(steps)
			t.setClipped(int(fx/t.pxW), int(fy/t.pxH), '·', style)
		}
	}
}

func (t *Terminal) SetLineDash(segments []float64, offset float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.dashed = len(segments) > 0
}

func (t *Terminal) FillText(s string, x, y float64, font text.Font, c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	x, y = t.toDevice(x, y)
	cx := int(x / t.pxW)
	cy := int(y / t.pxH)

	style := tcell.StyleDefault.Foreground(toTcell(c))
	if font.Bold {
		style = style.Bold(true)
	}
	if font.Italic {
		style = style.Italic(true)
	}

	for _, g := range text.Graphemes(s) {
		runes := []rune(g)
		t.setClipped(cx, cy, runes[0], style)
		cx++
	}
}

func (t *Terminal) Save() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stateStack = append(t.stateStack, t.state)
}

func (t *Terminal) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := len(t.stateStack); n > 0 {
		t.state = t.stateStack[n-1]
		t.stateStack = t.stateStack[:n-1]
	}
}

func (t *Terminal) ClipRect(r core.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r = r.Translate(t.state.dx, t.state.dy)
	if t.state.hasClip {
		t.state.clip = t.state.clip.Intersect(r)
	} else {
		t.state.clip = r
		t.state.hasClip = true
	}
}

func (t *Terminal) Translate(dx, dy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.dx += dx
	t.state.dy += dy
}

// Rotate is accepted but not rasterized; rotated text renders unrotated at
// its anchor, which is the best a character grid can do.
func (t *Terminal) Rotate(rad float64) {}

// toDevice applies the current translation. Callers hold the mutex.
func (t *Terminal) toDevice(x, y float64) (float64, float64) {
	return x + t.state.dx, y + t.state.dy
}

// cellBounds converts a pixel rect to clipped character-cell bounds.
// Callers hold the mutex.
func (t *Terminal) cellBounds(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	r = r.Translate(t.state.dx, t.state.dy)
	if t.state.hasClip {
		r = r.Intersect(t.state.clip)
	}
	if r.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	x0 = int(r.X / t.pxW)
	y0 = int(r.Y / t.pxH)
	x1 = int((r.Right() + t.pxW - 1) / t.pxW)
	y1 = int((r.Bottom() + t.pxH - 1) / t.pxH)
	return x0, y0, x1, y1, true
}

// setClipped writes one character honoring the active clip.
// Callers hold the mutex; coordinates are already device cells.
func (t *Terminal) setClipped(cx, cy int, r rune, style tcell.Style) {
	if t.state.hasClip {
		px := core.Point{X: (float64(cx) + 0.5) * t.pxW, Y: (float64(cy) + 0.5) * t.pxH}
		if !t.state.clip.Contains(px) {
			return
		}
	}
	t.screen.SetContent(cx, cy, r, nil, style)
}

// toTcell converts a core color to a tcell RGB color.
func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
