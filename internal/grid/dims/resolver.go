// Package dims resolves per-row and per-column pixel sizes.
//
// Sizes come from three sources in priority order: hidden rows/columns
// resolve to zero, sparse overrides win over defaults, and everything else
// uses the GridConfig default size.
package dims

import "github.com/virtgrid/virtgrid/internal/grid/core"

// Resolver answers size queries for one immutable snapshot of overrides.
type Resolver struct {
	cfg core.GridConfig
	ov  core.DimensionOverrides
}

// NewResolver creates a resolver over the given config and overrides.
// The overrides maps are borrowed, not copied; the caller keeps them
// stable for the lifetime of the resolver.
func NewResolver(cfg core.GridConfig, ov core.DimensionOverrides) *Resolver {
	return &Resolver{cfg: cfg, ov: ov}
}

// Config returns the grid config this resolver was built from.
func (r *Resolver) Config() core.GridConfig {
	return r.cfg
}

// ColWidth returns the pixel width of a column. Hidden columns are zero.
func (r *Resolver) ColWidth(col int) float64 {
	col = core.ClampIndex(col, r.cfg.TotalCols)
	if r.ov.HiddenCols[col] {
		return 0
	}
	if w, ok := r.ov.ColumnWidths[col]; ok && w >= 0 {
		return w
	}
	return r.cfg.DefaultCellWidth
}

// RowHeight returns the pixel height of a row. Hidden rows are zero.
func (r *Resolver) RowHeight(row int) float64 {
	row = core.ClampIndex(row, r.cfg.TotalRows)
	if r.ov.HiddenRows[row] {
		return 0
	}
	if h, ok := r.ov.RowHeights[row]; ok && h >= 0 {
		return h
	}
	return r.cfg.DefaultCellHeight
}

// ColSpanWidth returns the total width of count columns starting at col.
func (r *Resolver) ColSpanWidth(col, count int) float64 {
	var w float64
	for i := 0; i < count; i++ {
		w += r.ColWidth(col + i)
	}
	return w
}

// RowSpanHeight returns the total height of count rows starting at row.
func (r *Resolver) RowSpanHeight(row, count int) float64 {
	var h float64
	for i := 0; i < count; i++ {
		h += r.RowHeight(row + i)
	}
	return h
}

// MaxColWidth returns the largest width any single column can take.
// Used to bound sub-pixel offsets.
func (r *Resolver) MaxColWidth() float64 {
	m := r.cfg.DefaultCellWidth
	for _, w := range r.ov.ColumnWidths {
		if w > m {
			m = w
		}
	}
	return m
}

// MaxRowHeight returns the largest height any single row can take.
func (r *Resolver) MaxRowHeight() float64 {
	m := r.cfg.DefaultCellHeight
	for _, h := range r.ov.RowHeights {
		if h > m {
			m = h
		}
	}
	return m
}
