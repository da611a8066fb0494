package core

// CellRef identifies a single cell by zero-based row and column.
type CellRef struct {
	Row int
	Col int
}

// Equals returns true if two references point at the same cell.
func (c CellRef) Equals(other CellRef) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// CellRange represents an inclusive rectangular range of cells.
type CellRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// NewCellRange creates a normalized range covering both corners.
func NewCellRange(r1, c1, r2, c2 int) CellRange {
	return CellRange{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2}.Normalize()
}

// SingleCell returns a range covering exactly one cell.
func SingleCell(row, col int) CellRange {
	return CellRange{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Normalize returns a range where Start is the top-left corner.
func (r CellRange) Normalize() CellRange {
	if r.StartRow > r.EndRow {
		r.StartRow, r.EndRow = r.EndRow, r.StartRow
	}
	if r.StartCol > r.EndCol {
		r.StartCol, r.EndCol = r.EndCol, r.StartCol
	}
	return r
}

// Contains returns true if the cell lies within the range.
func (r CellRange) Contains(row, col int) bool {
	r = r.Normalize()
	return row >= r.StartRow && row <= r.EndRow &&
		col >= r.StartCol && col <= r.EndCol
}

// RowCount returns the number of rows covered.
func (r CellRange) RowCount() int {
	r = r.Normalize()
	return r.EndRow - r.StartRow + 1
}

// ColCount returns the number of columns covered.
func (r CellRange) ColCount() int {
	r = r.Normalize()
	return r.EndCol - r.StartCol + 1
}

// IsSingleCell returns true if the range covers exactly one cell.
func (r CellRange) IsSingleCell() bool {
	return r.RowCount() == 1 && r.ColCount() == 1
}

// Intersects returns true if two ranges share at least one cell.
func (r CellRange) Intersects(other CellRange) bool {
	r = r.Normalize()
	other = other.Normalize()
	return r.StartRow <= other.EndRow && r.EndRow >= other.StartRow &&
		r.StartCol <= other.EndCol && r.EndCol >= other.StartCol
}

// Clamp returns the range restricted to a sheet of the given dimensions.
func (r CellRange) Clamp(totalRows, totalCols int) CellRange {
	r = r.Normalize()
	return CellRange{
		StartRow: clampIndex(r.StartRow, totalRows),
		StartCol: clampIndex(r.StartCol, totalCols),
		EndRow:   clampIndex(r.EndRow, totalRows),
		EndCol:   clampIndex(r.EndCol, totalCols),
	}
}

// clampIndex restricts an index to [0, total).
func clampIndex(i, total int) int {
	if total <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= total {
		return total - 1
	}
	return i
}

// ClampIndex restricts a collaborator-supplied index to [0, total).
// Negative or past-end indexing never reaches the resolvers.
func ClampIndex(i, total int) int {
	return clampIndex(i, total)
}
