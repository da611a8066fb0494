// Package viewport maps scroll position and canvas size to visible cell
// ranges, including the four freeze-pane zones.
package viewport

import (
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
)

// scanAxis walks indexes from start, accumulating sizes, and returns the
// first index covering scroll, the sub-pixel offset of that index, and the
// last index needed to cover extent pixels of view.
//
// The offset is -(scroll - accumulated) and lies in (-maxSize, 0].
func scanAxis(start, total int, scroll, extent float64, size func(int) float64) (first, last int, offset float64) {
	if total <= 0 || extent <= 0 {
		return 0, 0, 0
	}
	if scroll < 0 {
		scroll = 0
	}

	var accum float64
	first = start
	for i := start; i < total; i++ {
		s := size(i)
		if accum+s > scroll {
			first = i
			offset = -(scroll - accum)
			break
		}
		accum += s
		first = i + 1
	}
	if first >= total {
		first = total - 1
		offset = 0
	}

	// Continue until the visible extent is covered.
	covered := offset
	last = first
	for i := first; i < total; i++ {
		covered += size(i)
		last = i
		if covered >= extent {
			break
		}
	}
	return first, last, offset
}

// VisibleRange computes the virtualization window for an unfrozen grid.
// Non-positive canvas sizes or an invalid config degrade to the zero range.
func VisibleRange(vp core.Viewport, cfg core.GridConfig, canvasW, canvasH float64, d *dims.Resolver) core.VisibleRange {
	if d == nil || !cfg.IsValid() {
		return core.VisibleRange{}
	}
	viewW := canvasW - cfg.RowHeaderWidth
	viewH := canvasH - cfg.ColHeaderHeight
	if viewW <= 0 || viewH <= 0 {
		return core.VisibleRange{}
	}

	startCol, endCol, offX := scanAxis(0, cfg.TotalCols, vp.ScrollX, viewW, d.ColWidth)
	startRow, endRow, offY := scanAxis(0, cfg.TotalRows, vp.ScrollY, viewH, d.RowHeight)

	return core.VisibleRange{
		StartRow: startRow,
		EndRow:   endRow,
		StartCol: startCol,
		EndCol:   endCol,
		OffsetX:  offX,
		OffsetY:  offY,
	}
}

// FreezeLayout computes the pixel extent of the frozen bands.
// Freeze counts are clamped to the sheet dimensions.
func FreezeLayout(fz core.FreezeConfig, cfg core.GridConfig, d *dims.Resolver) core.FreezePaneLayout {
	rows := fz.Rows
	cols := fz.Cols
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows > cfg.TotalRows {
		rows = cfg.TotalRows
	}
	if cols > cfg.TotalCols {
		cols = cfg.TotalCols
	}

	layout := core.FreezePaneLayout{FrozenRows: rows, FrozenCols: cols}
	if d != nil {
		layout.FrozenColsWidth = d.ColSpanWidth(0, cols)
		layout.FrozenRowsHeight = d.RowSpanHeight(0, rows)
	}
	return layout
}

// TopLeftRange returns the static corner zone range. It exists only when
// both axes are frozen; otherwise the zero range is returned.
func TopLeftRange(layout core.FreezePaneLayout) core.VisibleRange {
	if layout.FrozenRows == 0 || layout.FrozenCols == 0 {
		return core.VisibleRange{}
	}
	return core.VisibleRange{
		StartRow: 0,
		EndRow:   layout.FrozenRows - 1,
		StartCol: 0,
		EndCol:   layout.FrozenCols - 1,
	}
}

// TopRange returns the top zone range: frozen rows, scrollable columns.
func TopRange(vp core.Viewport, cfg core.GridConfig, layout core.FreezePaneLayout, canvasW float64, d *dims.Resolver) core.VisibleRange {
	if layout.FrozenRows == 0 || d == nil || !cfg.IsValid() {
		return core.VisibleRange{}
	}
	viewW := canvasW - cfg.RowHeaderWidth - layout.FrozenColsWidth
	if viewW <= 0 {
		return core.VisibleRange{}
	}

	startCol, endCol, offX := scanAxis(layout.FrozenCols, cfg.TotalCols, vp.ScrollX, viewW, d.ColWidth)
	return core.VisibleRange{
		StartRow: 0,
		EndRow:   layout.FrozenRows - 1,
		StartCol: startCol,
		EndCol:   endCol,
		OffsetX:  offX,
	}
}

// LeftRange returns the left zone range: frozen columns, scrollable rows.
func LeftRange(vp core.Viewport, cfg core.GridConfig, layout core.FreezePaneLayout, canvasH float64, d *dims.Resolver) core.VisibleRange {
	if layout.FrozenCols == 0 || d == nil || !cfg.IsValid() {
		return core.VisibleRange{}
	}
	viewH := canvasH - cfg.ColHeaderHeight - layout.FrozenRowsHeight
	if viewH <= 0 {
		return core.VisibleRange{}
	}

	startRow, endRow, offY := scanAxis(layout.FrozenRows, cfg.TotalRows, vp.ScrollY, viewH, d.RowHeight)
	return core.VisibleRange{
		StartRow: startRow,
		EndRow:   endRow,
		StartCol: 0,
		EndCol:   layout.FrozenCols - 1,
		OffsetY:  offY,
	}
}

// ScrollableRange returns the main zone range: both axes scroll, starting
// after the frozen counts.
func ScrollableRange(vp core.Viewport, cfg core.GridConfig, layout core.FreezePaneLayout, canvasW, canvasH float64, d *dims.Resolver) core.VisibleRange {
	if d == nil || !cfg.IsValid() {
		return core.VisibleRange{}
	}
	viewW := canvasW - cfg.RowHeaderWidth - layout.FrozenColsWidth
	viewH := canvasH - cfg.ColHeaderHeight - layout.FrozenRowsHeight
	if viewW <= 0 || viewH <= 0 {
		return core.VisibleRange{}
	}

	startCol, endCol, offX := scanAxis(layout.FrozenCols, cfg.TotalCols, vp.ScrollX, viewW, d.ColWidth)
	startRow, endRow, offY := scanAxis(layout.FrozenRows, cfg.TotalRows, vp.ScrollY, viewH, d.RowHeight)

	return core.VisibleRange{
		StartRow: startRow,
		EndRow:   endRow,
		StartCol: startCol,
		EndCol:   endCol,
		OffsetX:  offX,
		OffsetY:  offY,
	}
}
