// Package surface abstracts the 2D immediate-mode drawing target.
//
// Any concrete canvas satisfying Surface can host the renderer: the
// Recorder captures draw ops for tests, Terminal rasterizes coarsely onto
// a tcell screen for the demo viewer.
package surface

import (
	"math"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/text"
)

// Surface is the abstract immediate-mode drawing contract.
//
// State (clip, transform, dash) follows canvas conventions: Save pushes the
// current state, Restore pops it, ClipRect intersects the active clip.
type Surface interface {
	text.Measurer

	// Size returns the drawable extent in pixels.
	Size() (w, h float64)

	// Clear fills the whole surface with a color.
	Clear(c core.Color)

	// FillRect fills a rectangle.
	FillRect(r core.Rect, c core.Color)

	// StrokeRect outlines a rectangle with the current dash settings.
	StrokeRect(r core.Rect, c core.Color, width float64)

	// StrokeLine draws a line segment with the current dash settings.
	StrokeLine(x1, y1, x2, y2 float64, c core.Color, width float64)

	// SetLineDash configures dashing for subsequent strokes. An empty
	// segment list means solid; offset shifts the dash phase.
	SetLineDash(segments []float64, offset float64)

	// FillText draws text with its baseline-left anchor at (x, y).
	FillText(s string, x, y float64, font text.Font, c core.Color)

	// Save pushes the current clip/transform/dash state.
	Save()

	// Restore pops to the most recently saved state.
	Restore()

	// ClipRect intersects the active clip with r.
	ClipRect(r core.Rect)

	// Translate offsets the coordinate system.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by rad radians clockwise.
	Rotate(rad float64)
}

// Crisp aligns a coordinate to the pixel-center convention for 1px lines:
// a hairline at integer coordinates straddles two device pixels, so strokes
// snap to n+0.5.
func Crisp(v float64) float64 {
	return math.Floor(v) + 0.5
}
