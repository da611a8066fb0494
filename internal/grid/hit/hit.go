// Package hit maps canvas pixels back to logical cells and to interactive
// handles: resize grips, selection borders, and formula-reference corners
// and edges. All tests are zone-aware: frozen bands resolve against a
// fixed origin, the scrollable region against scroll-adjusted coordinates.
package hit

import (
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
)

// Config holds the tunable hit-testing constants.
//
// The two stickiness thresholds are deliberately independent: the axes
// have historically carried different tunings, so both stay configurable
// rather than hard-coded.
type Config struct {
	// StickyX and StickyY are drag thresholds as a fraction of the
	// candidate cell's size. During a drag the pointer must penetrate at
	// least this far into a new cell, in the drag direction, before the
	// hit switches to it. Zero disables resistance on that axis.
	StickyX float64
	StickyY float64

	// ResizeHandleSize is the grab width of a header boundary; the
	// pointer hits within half of it on either side.
	ResizeHandleSize float64

	// BorderTolerance is the grab distance for selection and reference
	// edges.
	BorderTolerance float64

	// CornerSize is the side of the square corner grab area.
	CornerSize float64
}

// DefaultConfig returns the steady-state tuning.
func DefaultConfig() Config {
	return Config{
		StickyX:          0.3,
		StickyY:          0,
		ResizeHandleSize: 8,
		BorderTolerance:  5,
		CornerSize:       6,
	}
}

// Tester answers hit queries for one frame's snapshot.
type Tester struct {
	cfg    core.GridConfig
	vp     core.Viewport
	layout core.FreezePaneLayout
	d      *dims.Resolver
	proj   *viewport.Projector
	conf   Config
}

// NewTester builds a tester over the frame snapshot.
func NewTester(vp core.Viewport, cfg core.GridConfig, fz core.FreezeConfig, d *dims.Resolver, conf Config) *Tester {
	layout := viewport.FreezeLayout(fz, cfg, d)
	return &Tester{
		cfg:    cfg,
		vp:     vp,
		layout: layout,
		d:      d,
		proj:   viewport.NewProjector(vp, cfg, layout, d),
		conf:   conf,
	}
}

// inCellArea reports whether the point lies in the cell area rather than
// the header bands.
func (t *Tester) inCellArea(x, y float64) bool {
	return x >= t.cfg.RowHeaderWidth && y >= t.cfg.ColHeaderHeight
}

// colAt resolves the column covering canvas x, zone-aware.
// The second result is false outside the sheet.
func (t *Tester) colAt(x float64) (int, bool) {
	frozenEnd := t.cfg.RowHeaderWidth + t.layout.FrozenColsWidth
	if x < frozenEnd {
		// Frozen band: fixed origin, no scroll.
		return scanIndex(x-t.cfg.RowHeaderWidth, 0, t.layout.FrozenCols, t.d.ColWidth)
	}
	content := x - frozenEnd + t.vp.ScrollX
	return scanIndex(content, t.layout.FrozenCols, t.cfg.TotalCols, t.d.ColWidth)
}

// rowAt resolves the row covering canvas y, zone-aware.
func (t *Tester) rowAt(y float64) (int, bool) {
	frozenEnd := t.cfg.ColHeaderHeight + t.layout.FrozenRowsHeight
	if y < frozenEnd {
		return scanIndex(y-t.cfg.ColHeaderHeight, 0, t.layout.FrozenRows, t.d.RowHeight)
	}
	content := y - frozenEnd + t.vp.ScrollY
	return scanIndex(content, t.layout.FrozenRows, t.cfg.TotalRows, t.d.RowHeight)
}

// scanIndex finds the index whose accumulated span covers pos, scanning
// from start. pos is relative to start's origin.
func scanIndex(pos float64, start, total int, size func(int) float64) (int, bool) {
	if pos < 0 || total <= start {
		return 0, false
	}
	var accum float64
	for i := start; i < total; i++ {
		accum += size(i)
		if pos < accum {
			return i, true
		}
	}
	return 0, false
}

// CellAt resolves the cell under a canvas pixel. Header-band coordinates
// and points past the sheet extent return false.
func (t *Tester) CellAt(x, y float64) (core.CellRef, bool) {
	if !t.inCellArea(x, y) {
		return core.CellRef{}, false
	}
	col, okC := t.colAt(x)
	row, okR := t.rowAt(y)
	if !okC || !okR {
		return core.CellRef{}, false
	}
	return core.CellRef{Row: row, Col: col}, true
}

// CellAtWithDrag resolves the cell under the pointer during a drag from
// origin, applying per-axis stickiness biased toward the drag direction.
func (t *Tester) CellAtWithDrag(x, y float64, origin core.CellRef) (core.CellRef, bool) {
	ref, ok := t.CellAt(x, y)
	if !ok {
		return ref, false
	}

	if ref.Col != origin.Col && t.conf.StickyX > 0 {
		ref.Col = t.stickyAdjust(ref.Col, origin.Col, x, t.proj.CellX(ref.Col), t.d.ColWidth(ref.Col), t.conf.StickyX)
	}
	if ref.Row != origin.Row && t.conf.StickyY > 0 {
		ref.Row = t.stickyAdjust(ref.Row, origin.Row, y, t.proj.CellY(ref.Row), t.d.RowHeight(ref.Row), t.conf.StickyY)
	}
	return ref, true
}

// stickyAdjust pulls a candidate index one step back toward the origin
// when the pointer has not yet penetrated the threshold fraction of the
// candidate cell in the drag direction.
func (t *Tester) stickyAdjust(candidate, origin int, pos, cellStart, cellSize, threshold float64) int {
	if cellSize <= 0 {
		return candidate
	}
	frac := (pos - cellStart) / cellSize
	if candidate > origin {
		// Dragging toward higher indexes: need frac beyond threshold.
		if frac < threshold {
			return candidate - 1
		}
	} else {
		// Dragging toward lower indexes: mirror image.
		if frac > 1-threshold {
			return candidate + 1
		}
	}
	return candidate
}

// ColumnResizeHandleAt returns the column whose right boundary is under
// the pointer, when the pointer sits in the column header band within
// half a handle of the boundary.
func (t *Tester) ColumnResizeHandleAt(x, y float64) (int, bool) {
	if y < 0 || y >= t.cfg.ColHeaderHeight || x < t.cfg.RowHeaderWidth {
		return 0, false
	}
	half := t.conf.ResizeHandleSize / 2

	// The last frozen column's boundary sits on the freeze seam; points
	// just past it resolve into the scrollable zone, so test the seam
	// explicitly.
	if t.layout.FrozenCols > 0 {
		seam := t.cfg.RowHeaderWidth + t.layout.FrozenColsWidth
		if x >= seam-half && x <= seam+half {
			return t.layout.FrozenCols - 1, true
		}
	}

	col, ok := t.colAt(x)
	if !ok {
		// Just past the last column: its right boundary is still
		// grabbable.
		col = t.cfg.TotalCols - 1
	}

	left := t.proj.CellX(col)
	right := left + t.d.ColWidth(col)
	if x >= right-half && x <= right+half {
		return col, true
	}
	if ok && x >= left-half && x <= left+half && col > 0 {
		return col - 1, true
	}
	return 0, false
}

// RowResizeHandleAt returns the row whose bottom boundary is under the
// pointer, when the pointer sits in the row header band.
func (t *Tester) RowResizeHandleAt(x, y float64) (int, bool) {
	if x < 0 || x >= t.cfg.RowHeaderWidth || y < t.cfg.ColHeaderHeight {
		return 0, false
	}
	half := t.conf.ResizeHandleSize / 2

	if t.layout.FrozenRows > 0 {
		seam := t.cfg.ColHeaderHeight + t.layout.FrozenRowsHeight
		if y >= seam-half && y <= seam+half {
			return t.layout.FrozenRows - 1, true
		}
	}

	row, ok := t.rowAt(y)
	if !ok {
		row = t.cfg.TotalRows - 1
	}

	top := t.proj.CellY(row)
	bottom := top + t.d.RowHeight(row)
	if y >= bottom-half && y <= bottom+half {
		return row, true
	}
	if ok && y >= top-half && y <= top+half && row > 0 {
		return row - 1, true
	}
	return 0, false
}
