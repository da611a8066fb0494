// Package merge tracks merged cell regions and computes which grid-line
// sub-segments may be drawn around them.
//
// A merged region has a single master cell at its top-left; every other
// covered coordinate is a slave and renders nothing. No grid line may cross
// a merge interior, so line drawing subtracts "gaps" where merges straddle
// a boundary.
package merge

import (
	"sort"

	"github.com/virtgrid/virtgrid/internal/grid/core"
)

// Map indexes the merged regions of one cell snapshot.
type Map struct {
	spans map[core.CellRef]core.CellRange
}

// BuildMap collects merged regions from a cell snapshot. Cells with
// RowSpan or ColSpan greater than one anchor a region.
func BuildMap(cells core.CellDataMap) *Map {
	m := &Map{spans: make(map[core.CellRef]core.CellRange)}
	for ref, cd := range cells {
		if cd == nil || !cd.IsMergeMaster() {
			continue
		}
		rows := cd.RowSpan
		cols := cd.ColSpan
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
		m.spans[ref] = core.CellRange{
			StartRow: ref.Row,
			StartCol: ref.Col,
			EndRow:   ref.Row + rows - 1,
			EndCol:   ref.Col + cols - 1,
		}
	}
	return m
}

// Empty returns true if the snapshot contains no merges.
func (m *Map) Empty() bool {
	return len(m.spans) == 0
}

// SpanOf returns the region anchored at master, if any.
func (m *Map) SpanOf(master core.CellRef) (core.CellRange, bool) {
	r, ok := m.spans[master]
	return r, ok
}

// MasterOf returns the master anchoring the region that covers (row, col).
// The second result is false if the cell is not covered by any merge.
// The master covers itself.
func (m *Map) MasterOf(row, col int) (core.CellRef, bool) {
	for master, span := range m.spans {
		if span.Contains(row, col) {
			return master, true
		}
	}
	return core.CellRef{}, false
}

// MastersIntersecting returns the masters of every merged region that
// overlaps the inclusive row/col window, in no particular order. The
// master itself may lie outside the window.
func (m *Map) MastersIntersecting(startRow, endRow, startCol, endCol int) []core.CellRef {
	var out []core.CellRef
	for master, span := range m.spans {
		if span.StartRow <= endRow && span.EndRow >= startRow &&
			span.StartCol <= endCol && span.EndCol >= startCol {
			out = append(out, master)
		}
	}
	return out
}

// IsSlave returns true if (row, col) lies inside a merge but is not its
// master. Slaves are never drawn independently.
func (m *Map) IsSlave(row, col int) bool {
	master, ok := m.MasterOf(row, col)
	if !ok {
		return false
	}
	return master.Row != row || master.Col != col
}

// Segment is an inclusive index interval along one axis.
type Segment struct {
	Start int
	End   int
}

// VerticalSegments computes the drawable row sub-ranges of the vertical
// grid line at the left edge of column col, within rows [startRow, endRow].
// A merge spanning columns on both sides of the boundary contributes a gap
// equal to its row extent.
func (m *Map) VerticalSegments(col, startRow, endRow int) []Segment {
	var gaps []Segment
	for _, span := range m.spans {
		if span.StartCol < col && col <= span.EndCol {
			gaps = append(gaps, Segment{Start: span.StartRow, End: span.EndRow})
		}
	}
	return subtractGaps(startRow, endRow, gaps)
}

// HorizontalSegments computes the drawable column sub-ranges of the
// horizontal grid line at the top edge of row, within cols
// [startCol, endCol].
func (m *Map) HorizontalSegments(row, startCol, endCol int) []Segment {
	var gaps []Segment
	for _, span := range m.spans {
		if span.StartRow < row && row <= span.EndRow {
			gaps = append(gaps, Segment{Start: span.StartCol, End: span.EndCol})
		}
	}
	return subtractGaps(startCol, endCol, gaps)
}

// subtractGaps removes gap intervals from [start, end] and returns the
// remaining sub-ranges in ascending order.
func subtractGaps(start, end int, gaps []Segment) []Segment {
	if end < start {
		return nil
	}
	if len(gaps) == 0 {
		return []Segment{{Start: start, End: end}}
	}

	sort.Slice(gaps, func(i, j int) bool { return gaps[i].Start < gaps[j].Start })

	var out []Segment
	cur := start
	for _, g := range gaps {
		if g.End < cur || g.Start > end {
			continue
		}
		if g.Start > cur {
			out = append(out, Segment{Start: cur, End: g.Start - 1})
		}
		if g.End+1 > cur {
			cur = g.End + 1
		}
		if cur > end {
			break
		}
	}
	if cur <= end {
		out = append(out, Segment{Start: cur, End: end})
	}
	return out
}
