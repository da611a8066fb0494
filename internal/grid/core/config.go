package core

// GridConfig describes the static geometry of a sheet.
// It is supplied per call and never mutated by the renderer.
type GridConfig struct {
	// TotalRows and TotalCols bound every index the renderer will touch.
	TotalRows int
	TotalCols int

	// Default cell size in pixels, used wherever no override exists.
	DefaultCellWidth  float64
	DefaultCellHeight float64

	// Header band sizes. The cell area starts below/right of these.
	RowHeaderWidth  float64
	ColHeaderHeight float64
}

// IsValid returns true if the config describes a drawable sheet.
func (c GridConfig) IsValid() bool {
	return c.TotalRows > 0 && c.TotalCols > 0 &&
		c.DefaultCellWidth > 0 && c.DefaultCellHeight > 0
}

// Viewport is the scroll position, owned by the interaction layer.
type Viewport struct {
	ScrollX float64
	ScrollY float64
}

// DimensionOverrides holds sparse size exceptions and hidden rows/columns.
// A hidden row or column resolves to zero size.
type DimensionOverrides struct {
	ColumnWidths map[int]float64
	RowHeights   map[int]float64
	HiddenRows   map[int]bool
	HiddenCols   map[int]bool
}

// FreezeConfig describes the pinned region. Zero counts mean no freeze on
// that axis.
type FreezeConfig struct {
	Rows int
	Cols int
}

// Active returns true if any axis is frozen.
func (f FreezeConfig) Active() bool {
	return f.Rows > 0 || f.Cols > 0
}

// CellData is one cell's fetched content. Absent cells are simply empty.
type CellData struct {
	Row        int
	Col        int
	Display    string
	StyleIndex int
	Formula    string

	// RowSpan and ColSpan are >1 only on a merge master.
	RowSpan int
	ColSpan int
}

// IsMergeMaster returns true if this cell anchors a merged region.
func (c CellData) IsMergeMaster() bool {
	return c.RowSpan > 1 || c.ColSpan > 1
}

// CellDataMap is the snapshot of fetched cells for the current range.
type CellDataMap map[CellRef]*CellData

// VisibleRange is the computed virtualization window, recomputed every call.
// Offsets are the sub-cell pixel shift of the first visible row/column and
// always lie in (-maxCellSize, 0].
type VisibleRange struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
	OffsetX  float64
	OffsetY  float64
}

// FreezePaneLayout is the derived pixel extent of the frozen bands.
type FreezePaneLayout struct {
	FrozenRows       int
	FrozenCols       int
	FrozenRowsHeight float64
	FrozenColsWidth  float64
}
