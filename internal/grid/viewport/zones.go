package viewport

import (
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
)

// Zone identifies one of the four freeze-pane regions of the cell area.
type Zone uint8

const (
	// ZoneScrollable is the main region; both axes scroll.
	ZoneScrollable Zone = iota
	// ZoneTop holds the frozen rows; only the X axis scrolls.
	ZoneTop
	// ZoneLeft holds the frozen columns; only the Y axis scrolls.
	ZoneLeft
	// ZoneTopLeft is the static corner where both frozen bands overlap.
	ZoneTopLeft
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneScrollable:
		return "scrollable"
	case ZoneTop:
		return "top"
	case ZoneLeft:
		return "left"
	case ZoneTopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// Projector resolves cell coordinates to canvas pixels with freeze
// awareness. Frozen cells use a fixed origin; scrollable cells subtract the
// scroll component. The two kinds of math are never mixed for one cell.
type Projector struct {
	vp     core.Viewport
	cfg    core.GridConfig
	layout core.FreezePaneLayout
	d      *dims.Resolver
}

// NewProjector creates a projector for one frame's snapshot.
func NewProjector(vp core.Viewport, cfg core.GridConfig, layout core.FreezePaneLayout, d *dims.Resolver) *Projector {
	return &Projector{vp: vp, cfg: cfg, layout: layout, d: d}
}

// ZoneOf returns the zone a cell belongs to.
func (p *Projector) ZoneOf(row, col int) Zone {
	frozenRow := row < p.layout.FrozenRows
	frozenCol := col < p.layout.FrozenCols
	switch {
	case frozenRow && frozenCol:
		return ZoneTopLeft
	case frozenRow:
		return ZoneTop
	case frozenCol:
		return ZoneLeft
	default:
		return ZoneScrollable
	}
}

// CellX returns the canvas X of the cell's left edge.
func (p *Projector) CellX(col int) float64 {
	if col < p.layout.FrozenCols {
		return p.cfg.RowHeaderWidth + p.d.ColSpanWidth(0, col)
	}
	x := p.cfg.RowHeaderWidth + p.layout.FrozenColsWidth - p.vp.ScrollX
	return x + p.d.ColSpanWidth(p.layout.FrozenCols, col-p.layout.FrozenCols)
}

// CellY returns the canvas Y of the cell's top edge.
func (p *Projector) CellY(row int) float64 {
	if row < p.layout.FrozenRows {
		return p.cfg.ColHeaderHeight + p.d.RowSpanHeight(0, row)
	}
	y := p.cfg.ColHeaderHeight + p.layout.FrozenRowsHeight - p.vp.ScrollY
	return y + p.d.RowSpanHeight(p.layout.FrozenRows, row-p.layout.FrozenRows)
}

// CellRect returns the canvas rectangle of a single cell.
func (p *Projector) CellRect(row, col int) core.Rect {
	return core.Rect{
		X: p.CellX(col),
		Y: p.CellY(row),
		W: p.d.ColWidth(col),
		H: p.d.RowHeight(row),
	}
}

// RangeRect returns the canvas rectangle covering an inclusive cell range.
// The zone math follows the range's top-left cell; ranges that may cross
// a freeze seam resolve through RangePieces instead.
func (p *Projector) RangeRect(r core.CellRange) core.Rect {
	r = r.Normalize()
	return core.Rect{
		X: p.CellX(r.StartCol),
		Y: p.CellY(r.StartRow),
		W: p.d.ColSpanWidth(r.StartCol, r.ColCount()),
		H: p.d.RowSpanHeight(r.StartRow, r.RowCount()),
	}
}

// ZonePiece is the portion of a cell range falling inside one freeze
// zone, projected with that zone's origin and scroll.
type ZonePiece struct {
	Zone Zone
	Rect core.Rect
}

// RangePieces splits an inclusive range at the freeze seams and projects
// each portion with its own zone's math. On sides where the range
// continues into a neighboring zone the rect is extended past the seam,
// so strokes drawn on it are cut by the zone clip instead of terminating
// at the seam.
func (p *Projector) RangePieces(r core.CellRange) []ZonePiece {
	r = r.Normalize()
	pieces := make([]ZonePiece, 0, 4)
	for _, z := range [4]Zone{ZoneScrollable, ZoneTop, ZoneLeft, ZoneTopLeft} {
		cl, ok := p.zoneClamp(r, z)
		if !ok {
			continue
		}
		rect := p.RangeRect(cl)
		if cl.StartCol > r.StartCol {
			ext := p.d.ColSpanWidth(r.StartCol, cl.StartCol-r.StartCol)
			rect.X -= ext
			rect.W += ext
		}
		if cl.EndCol < r.EndCol {
			rect.W += p.d.ColSpanWidth(cl.EndCol+1, r.EndCol-cl.EndCol)
		}
		if cl.StartRow > r.StartRow {
			ext := p.d.RowSpanHeight(r.StartRow, cl.StartRow-r.StartRow)
			rect.Y -= ext
			rect.H += ext
		}
		if cl.EndRow < r.EndRow {
			rect.H += p.d.RowSpanHeight(cl.EndRow+1, r.EndRow-cl.EndRow)
		}
		pieces = append(pieces, ZonePiece{Zone: z, Rect: rect})
	}
	return pieces
}

// zoneClamp restricts a normalized range to a zone's row and column
// bands. The second result is false when the range does not enter the
// zone.
func (p *Projector) zoneClamp(r core.CellRange, z Zone) (core.CellRange, bool) {
	fr := p.layout.FrozenRows
	fc := p.layout.FrozenCols

	switch z {
	case ZoneTop, ZoneTopLeft:
		if r.StartRow >= fr {
			return core.CellRange{}, false
		}
		if r.EndRow >= fr {
			r.EndRow = fr - 1
		}
	default:
		if r.EndRow < fr {
			return core.CellRange{}, false
		}
		if r.StartRow < fr {
			r.StartRow = fr
		}
	}

	switch z {
	case ZoneLeft, ZoneTopLeft:
		if r.StartCol >= fc {
			return core.CellRange{}, false
		}
		if r.EndCol >= fc {
			r.EndCol = fc - 1
		}
	default:
		if r.EndCol < fc {
			return core.CellRange{}, false
		}
		if r.StartCol < fc {
			r.StartCol = fc
		}
	}
	return r, true
}

// ZoneClip returns the canvas rectangle a zone's content is clipped to.
// The four clips jointly and disjointly cover the cell area.
func (p *Projector) ZoneClip(z Zone, canvasW, canvasH float64) core.Rect {
	hx := p.cfg.RowHeaderWidth
	hy := p.cfg.ColHeaderHeight
	fw := p.layout.FrozenColsWidth
	fh := p.layout.FrozenRowsHeight

	switch z {
	case ZoneTopLeft:
		return core.NewRect(hx, hy, fw, fh)
	case ZoneTop:
		return core.NewRect(hx+fw, hy, canvasW-hx-fw, fh)
	case ZoneLeft:
		return core.NewRect(hx, hy+fh, fw, canvasH-hy-fh)
	default:
		return core.NewRect(hx+fw, hy+fh, canvasW-hx-fw, canvasH-hy-fh)
	}
}

// Layout returns the freeze layout this projector was built with.
func (p *Projector) Layout() core.FreezePaneLayout {
	return p.layout
}
