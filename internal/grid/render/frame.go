package render

import (
	"github.com/virtgrid/virtgrid/internal/grid/anim"
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/highlight"
	"github.com/virtgrid/virtgrid/internal/grid/overlay"
	"github.com/virtgrid/virtgrid/internal/grid/style"
)

// Frame is the immutable snapshot consumed by one render call. The
// renderer never mutates or retains any of it; all maps and slices are
// borrowed from the caller for the duration of the call. Absent optional
// state (nil pointers, empty slices) simply skips that layer.
type Frame struct {
	Config     core.GridConfig
	Viewport   core.Viewport
	Dimensions core.DimensionOverrides
	Freeze     core.FreezeConfig

	// Cells holds the fetched data for the visible range. An absent
	// cell is empty; fetching and coalescing are the caller's concern.
	Cells core.CellDataMap

	// Styles is the flyweight style table. Index 0 and unknown indexes
	// resolve to the hard default.
	Styles map[int]*style.Data

	// Selection is the primary selection, if any.
	Selection *core.CellRange

	// Editing marks the cell whose text is being edited in place; its
	// content is skipped so the editor widget above it stays legible.
	Editing *core.CellRef

	// EditingFormula is set while the edit in progress is a formula;
	// combined with the sheet names below it suppresses the selection
	// on other sheets.
	EditingFormula bool

	Clipboard   *highlight.Clipboard
	FillPreview *core.CellRange
	DragPreview *core.CellRange
	References  []highlight.Reference

	// Animation is the in-flight structural insert/delete, if any.
	Animation *anim.Structural

	CurrentSheet       string
	FormulaSourceSheet string

	// Regions are the extension-contributed grid regions for overlay
	// renderers.
	Regions []overlay.GridRegion
}
