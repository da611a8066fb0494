package hit

import (
	"math"
	"strings"

	"github.com/virtgrid/virtgrid/internal/grid/core"
)

// Edge identifies one side of a rectangular hit target.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// SelectionType distinguishes the three selection shapes. Full-row and
// full-column selections expose only the edge pair that can be dragged.
type SelectionType uint8

const (
	SelectCells SelectionType = iota
	SelectRows
	SelectColumns
)

// SelectionBorderAt reports which border edge of the selection is under
// the pointer, within the configured tolerance. Points in the header
// bands never hit.
func (t *Tester) SelectionBorderAt(x, y float64, sel core.CellRange, typ SelectionType) (Edge, bool) {
	if !t.inCellArea(x, y) {
		return 0, false
	}
	r := t.proj.RangeRect(sel.Normalize())
	if r.IsEmpty() {
		return 0, false
	}
	tol := t.conf.BorderTolerance

	// Along-edge hits require the pointer to lie within the edge's span.
	withinX := x >= r.X-tol && x <= r.Right()+tol
	withinY := y >= r.Y-tol && y <= r.Bottom()+tol

	if typ != SelectColumns && withinX {
		if math.Abs(y-r.Y) <= tol {
			return EdgeTop, true
		}
		if math.Abs(y-r.Bottom()) <= tol {
			return EdgeBottom, true
		}
	}
	if typ != SelectRows && withinY {
		if math.Abs(x-r.X) <= tol {
			return EdgeLeft, true
		}
		if math.Abs(x-r.Right()) <= tol {
			return EdgeRight, true
		}
	}
	return 0, false
}

// Reference is a formula range reference as seen by hit testing.
type Reference struct {
	Range core.CellRange

	// Sheet qualifies the reference; empty means the sheet the formula
	// is being edited on.
	Sheet string

	// Passive references are highlighted but not draggable.
	Passive bool

	// FullRow and FullColumn mark unbounded references; these expose
	// edges but no resize corners.
	FullRow    bool
	FullColumn bool
}

// onSheet reports whether the reference belongs to the sheet currently
// displayed. Sheet names compare case-insensitively.
func (ref Reference) onSheet(current, formulaSource string) bool {
	if ref.Sheet == "" {
		return strings.EqualFold(formulaSource, current)
	}
	return strings.EqualFold(ref.Sheet, current)
}

// ReferenceCornerAt returns the index of the draggable reference whose
// resize corner is under the pointer. Corners take priority over edges;
// callers should test corners first. Full-row and full-column references
// have no corners.
func (t *Tester) ReferenceCornerAt(x, y float64, refs []Reference, currentSheet, formulaSourceSheet string) (int, bool) {
	if !t.inCellArea(x, y) {
		return 0, false
	}
	half := t.conf.CornerSize / 2
	// Later references paint on top, so scan back to front.
	for i := len(refs) - 1; i >= 0; i-- {
		ref := refs[i]
		if ref.Passive || ref.FullRow || ref.FullColumn {
			continue
		}
		if !ref.onSheet(currentSheet, formulaSourceSheet) {
			continue
		}
		r := t.proj.RangeRect(ref.Range.Normalize())
		if r.IsEmpty() {
			continue
		}
		for _, c := range [4]core.Point{
			{X: r.X, Y: r.Y},
			{X: r.Right(), Y: r.Y},
			{X: r.X, Y: r.Bottom()},
			{X: r.Right(), Y: r.Bottom()},
		} {
			if math.Abs(x-c.X) <= half && math.Abs(y-c.Y) <= half {
				return i, true
			}
		}
	}
	return 0, false
}

// ReferenceBorderAt returns the index and edge of the draggable
// reference whose border is under the pointer.
func (t *Tester) ReferenceBorderAt(x, y float64, refs []Reference, currentSheet, formulaSourceSheet string) (int, Edge, bool) {
	if !t.inCellArea(x, y) {
		return 0, 0, false
	}
	tol := t.conf.BorderTolerance
	for i := len(refs) - 1; i >= 0; i-- {
		ref := refs[i]
		if ref.Passive || !ref.onSheet(currentSheet, formulaSourceSheet) {
			continue
		}
		r := t.proj.RangeRect(ref.Range.Normalize())
		if r.IsEmpty() {
			continue
		}
		withinX := x >= r.X-tol && x <= r.Right()+tol
		withinY := y >= r.Y-tol && y <= r.Bottom()+tol
		if withinX {
			if math.Abs(y-r.Y) <= tol {
				return i, EdgeTop, true
			}
			if math.Abs(y-r.Bottom()) <= tol {
				return i, EdgeBottom, true
			}
		}
		if withinY {
			if math.Abs(x-r.X) <= tol {
				return i, EdgeLeft, true
			}
			if math.Abs(x-r.Right()) <= tol {
				return i, EdgeRight, true
			}
		}
	}
	return 0, 0, false
}
