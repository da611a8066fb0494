// Package highlight draws the transient decorations layered over cell
// content: the primary selection, clipboard marching ants, fill and drag
// previews, and formula-reference boxes.
//
// All of them resolve coordinates through the freeze-aware projector, so
// a cell in a frozen band always uses its fixed origin and a scrollable
// cell its scroll-adjusted one. A range is split at the freeze seams and
// each portion is projected with its own zone's math, then drawn under
// that zone's clip only; zero-area intersections are skipped.
package highlight

import (
	"strings"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
)

// Palette holds the highlight colors. The zero value is not usable; start
// from DefaultPalette.
type Palette struct {
	SelectionFill   core.Color
	SelectionBorder core.Color
	FillHandle      core.Color

	AntsUnder core.Color
	AntsCopy  core.Color
	AntsCut   core.Color

	FillPreviewBorder core.Color
	DragPreviewBorder core.Color
}

// DefaultPalette returns the stock highlight colors.
func DefaultPalette() Palette {
	return Palette{
		SelectionFill:   core.RGBA(33, 115, 70, 30),
		SelectionBorder: core.RGB(33, 115, 70),
		FillHandle:      core.RGB(33, 115, 70),

		AntsUnder: core.ColorWhite,
		AntsCopy:  core.RGB(59, 130, 246),
		AntsCut:   core.RGB(22, 163, 74),

		FillPreviewBorder: core.RGB(107, 114, 128),
		DragPreviewBorder: core.RGB(66, 66, 66),
	}
}

// Dash geometry for marching ants.
const (
	AntsDash   = 4.0
	AntsPeriod = 8.0

	fillHandleSize = 6.0
	refCornerSize  = 6.0
)

// NextAntsPhase advances the marching-ants dash offset by delta pixels,
// wrapping at the dash period.
func NextAntsPhase(phase, delta float64) float64 {
	phase += delta
	for phase >= AntsPeriod {
		phase -= AntsPeriod
	}
	return phase
}

// ClipboardMode distinguishes cut from copy ants.
type ClipboardMode uint8

const (
	ClipboardCopy ClipboardMode = iota
	ClipboardCut
)

// Clipboard is the marching-ants state for one frame.
type Clipboard struct {
	Range core.CellRange
	Mode  ClipboardMode

	// Phase is the current dash offset in pixels, in [0, AntsPeriod).
	Phase float64
}

// Reference is a formula range highlight.
type Reference struct {
	Range core.CellRange
	Color core.Color

	// Sheet qualifies the reference; empty means the formula's source
	// sheet.
	Sheet string

	// Passive references come from navigation rather than active
	// editing; they are shown but carry no resize corners.
	Passive bool

	FullRow    bool
	FullColumn bool
}

// OnSheet reports whether the reference is visible on the named sheet.
// Names compare case-insensitively; an unqualified reference belongs to
// the formula's source sheet.
func (ref Reference) OnSheet(current, formulaSource string) bool {
	if ref.Sheet == "" {
		return strings.EqualFold(formulaSource, current)
	}
	return strings.EqualFold(ref.Sheet, current)
}

// Renderer draws highlights for one frame.
type Renderer struct {
	s       surface.Surface
	proj    *viewport.Projector
	pal     Palette
	canvasW float64
	canvasH float64
}

// NewRenderer builds a highlight renderer over the frame's projector.
func NewRenderer(s surface.Surface, proj *viewport.Projector, pal Palette, canvasW, canvasH float64) *Renderer {
	return &Renderer{s: s, proj: proj, pal: pal, canvasW: canvasW, canvasH: canvasH}
}

// eachPiece invokes draw once per freeze zone the range occupies. The
// rect passed to draw is projected with that zone's origin and scroll,
// and the surface is clipped to that zone, so a scrollable portion never
// paints under a frozen band.
func (r *Renderer) eachPiece(rng core.CellRange, draw func(rect core.Rect)) {
	for _, pc := range r.proj.RangePieces(rng) {
		clip := r.proj.ZoneClip(pc.Zone, r.canvasW, r.canvasH)
		if clip.IsEmpty() || clip.Intersect(pc.Rect).IsEmpty() {
			continue
		}
		r.s.Save()
		r.s.ClipRect(clip)
		draw(pc.Rect)
		r.s.Restore()
	}
}

// crispRect snaps a rect's edges to the 1px stroke convention.
func crispRect(rc core.Rect) core.Rect {
	x := surface.Crisp(rc.X)
	y := surface.Crisp(rc.Y)
	return core.Rect{X: x, Y: y, W: surface.Crisp(rc.Right()) - x, H: surface.Crisp(rc.Bottom()) - y}
}

// DrawSelection renders the primary selection: translucent fill, border
// stroke, and the fill-handle square at the bottom-right corner. The
// handle is suppressed when the corner is scrolled out of its zone's
// visible clip. When a formula is being edited on a different sheet than
// the one displayed, the selection is not drawn at all.
func (r *Renderer) DrawSelection(sel core.CellRange, currentSheet, formulaSourceSheet string, editingFormula bool) {
	if editingFormula && !strings.EqualFold(currentSheet, formulaSourceSheet) {
		return
	}
	sel = sel.Normalize()

	r.eachPiece(sel, func(rect core.Rect) {
		r.s.FillRect(rect, r.pal.SelectionFill)
		r.s.StrokeRect(crispRect(rect), r.pal.SelectionBorder, 2)
	})

	r.drawFillHandle(sel)
}

// drawFillHandle paints the drag square centered on the selection's
// bottom-right corner, only when that corner lies inside the clip of the
// zone the corner cell belongs to.
func (r *Renderer) drawFillHandle(sel core.CellRange) {
	zone := r.proj.ZoneOf(sel.EndRow, sel.EndCol)
	clip := r.proj.ZoneClip(zone, r.canvasW, r.canvasH)
	cell := r.proj.CellRect(sel.EndRow, sel.EndCol)
	corner := core.Point{X: cell.Right(), Y: cell.Bottom()}
	if !clip.Contains(corner) {
		return
	}
	half := fillHandleSize / 2
	handle := core.Rect{X: corner.X - half, Y: corner.Y - half, W: fillHandleSize, H: fillHandleSize}

	r.s.Save()
	r.s.ClipRect(clip)
	r.s.FillRect(handle, r.pal.FillHandle)
	r.s.StrokeRect(crispRect(handle), r.pal.AntsUnder, 1)
	r.s.Restore()
}

// DrawMarchingAnts renders the clipboard range: a solid white
// under-stroke, then a dashed colored over-stroke whose dash offset is
// the clipboard phase. Green marks cut, blue copy.
func (r *Renderer) DrawMarchingAnts(clip Clipboard) {
	color := r.pal.AntsCopy
	if clip.Mode == ClipboardCut {
		color = r.pal.AntsCut
	}

	r.eachPiece(clip.Range, func(rect core.Rect) {
		outline := crispRect(rect)
		r.s.SetLineDash(nil, 0)
		r.s.StrokeRect(outline, r.pal.AntsUnder, 1)
		r.s.SetLineDash([]float64{AntsDash, AntsPeriod - AntsDash}, clip.Phase)
		r.s.StrokeRect(outline, color, 1)
		r.s.SetLineDash(nil, 0)
	})
}

// DrawFillPreview renders the dashed outline shown while dragging the
// fill handle over its target range.
func (r *Renderer) DrawFillPreview(rng core.CellRange) {
	r.eachPiece(rng, func(rect core.Rect) {
		r.s.SetLineDash([]float64{AntsDash, AntsPeriod - AntsDash}, 0)
		r.s.StrokeRect(crispRect(rect), r.pal.FillPreviewBorder, 1)
		r.s.SetLineDash(nil, 0)
	})
}

// DrawDragPreview renders the solid outline shown while a selection is
// being dragged to a new position.
func (r *Renderer) DrawDragPreview(rng core.CellRange) {
	r.eachPiece(rng, func(rect core.Rect) {
		r.s.StrokeRect(crispRect(rect), r.pal.DragPreviewBorder, 2)
	})
}

// DrawReferences renders formula-reference boxes for every reference
// visible on the current sheet: a faint fill, a border in the reference's
// color, and corner squares on draggable references. Passive references
// tint toward white to recede behind the actively edited ones.
func (r *Renderer) DrawReferences(refs []Reference, currentSheet, formulaSourceSheet string) {
	for _, ref := range refs {
		if !ref.OnSheet(currentSheet, formulaSourceSheet) {
			continue
		}
		rng := ref.Range.Normalize()
		stroke := ref.Color
		if ref.Passive {
			stroke = style.Lighten(ref.Color, 0.4)
		}
		fill := stroke
		fill.A = 25

		r.eachPiece(rng, func(rect core.Rect) {
			r.s.FillRect(rect, fill)
			r.s.StrokeRect(crispRect(rect), stroke, 1)
		})

		if !ref.Passive && !ref.FullRow && !ref.FullColumn {
			r.drawRefCorners(rng, ref.Color)
		}
	}
}

// drawRefCorners paints the four drag squares. Each corner resolves
// through its own corner cell's zone and draws only when visible inside
// that zone's clip.
func (r *Renderer) drawRefCorners(rng core.CellRange, c core.Color) {
	half := refCornerSize / 2
	corners := [4]struct {
		row, col      int
		right, bottom bool
	}{
		{rng.StartRow, rng.StartCol, false, false},
		{rng.StartRow, rng.EndCol, true, false},
		{rng.EndRow, rng.StartCol, false, true},
		{rng.EndRow, rng.EndCol, true, true},
	}

	for _, cn := range corners {
		clip := r.proj.ZoneClip(r.proj.ZoneOf(cn.row, cn.col), r.canvasW, r.canvasH)
		cell := r.proj.CellRect(cn.row, cn.col)
		x, y := cell.X, cell.Y
		if cn.right {
			x = cell.Right()
		}
		if cn.bottom {
			y = cell.Bottom()
		}
		if !clip.Contains(core.Point{X: x, Y: y}) {
			continue
		}
		r.s.Save()
		r.s.ClipRect(clip)
		r.s.FillRect(core.Rect{X: x - half, Y: y - half, W: refCornerSize, H: refCornerSize}, c)
		r.s.Restore()
	}
}
