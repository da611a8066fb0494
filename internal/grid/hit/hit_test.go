package hit

import (
	"testing"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
)

func testConfig() core.GridConfig {
	return core.GridConfig{
		TotalRows:         1000,
		TotalCols:         200,
		DefaultCellWidth:  100,
		DefaultCellHeight: 24,
		RowHeaderWidth:    50,
		ColHeaderHeight:   24,
	}
}

func newTester(vp core.Viewport, fz core.FreezeConfig) *Tester {
	cfg := testConfig()
	d := dims.NewResolver(cfg, core.DimensionOverrides{})
	return NewTester(vp, cfg, fz, d, DefaultConfig())
}

func TestCellAtRejectsHeaders(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})

	cases := []core.Point{
		{X: 10, Y: 10},  // corner chrome
		{X: 10, Y: 100}, // row header
		{X: 100, Y: 10}, // column header
	}
	for _, p := range cases {
		if _, ok := ht.CellAt(p.X, p.Y); ok {
			t.Errorf("CellAt(%v,%v) should miss header band", p.X, p.Y)
		}
	}
}

func TestCellAtOrigin(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})

	ref, ok := ht.CellAt(60, 30)
	if !ok || ref != (core.CellRef{Row: 0, Col: 0}) {
		t.Errorf("expected (0,0), got %v ok=%v", ref, ok)
	}

	// Cell boundaries belong to the next cell.
	ref, ok = ht.CellAt(150, 48)
	if !ok || ref != (core.CellRef{Row: 1, Col: 1}) {
		t.Errorf("expected (1,1), got %v ok=%v", ref, ok)
	}
}

func TestCellAtScrolled(t *testing.T) {
	ht := newTester(core.Viewport{ScrollX: 150, ScrollY: 30}, core.FreezeConfig{})

	// Content coordinate (160, 36): column 1, row 1.
	ref, ok := ht.CellAt(60, 30)
	if !ok || ref != (core.CellRef{Row: 1, Col: 1}) {
		t.Errorf("expected (1,1), got %v ok=%v", ref, ok)
	}
}

func TestCellAtFrozen(t *testing.T) {
	ht := newTester(
		core.Viewport{ScrollX: 250, ScrollY: 100},
		core.FreezeConfig{Rows: 2, Cols: 1},
	)

	// Inside the frozen column band: scroll ignored.
	ref, ok := ht.CellAt(60, 30)
	if !ok || ref != (core.CellRef{Row: 0, Col: 0}) {
		t.Errorf("frozen band: expected (0,0), got %v ok=%v", ref, ok)
	}

	// Past the frozen band: scroll-adjusted. x=160 is 10px into the
	// scrollable region, plus 250px scroll, lands in column 3.
	ref, ok = ht.CellAt(160, 50)
	if !ok || ref.Col != 3 {
		t.Errorf("scrollable x: expected col 3, got %v ok=%v", ref, ok)
	}
	if ref.Row != 1 {
		t.Errorf("frozen y band: expected row 1, got %d", ref.Row)
	}
}

func TestCellAtPastSheetExtent(t *testing.T) {
	cfg := testConfig()
	cfg.TotalRows = 2
	cfg.TotalCols = 2
	d := dims.NewResolver(cfg, core.DimensionOverrides{})
	ht := NewTester(core.Viewport{}, cfg, core.FreezeConfig{}, d, DefaultConfig())

	if _, ok := ht.CellAt(500, 30); ok {
		t.Error("point past last column should miss")
	}
	if _, ok := ht.CellAt(60, 500); ok {
		t.Error("point past last row should miss")
	}
}

func TestCellRoundTrip(t *testing.T) {
	// Any point that resolves to a cell must be contained in that
	// cell's projected rect, with and without freeze panes.
	testers := map[string]*Tester{
		"plain":    newTester(core.Viewport{}, core.FreezeConfig{}),
		"scrolled": newTester(core.Viewport{ScrollX: 212, ScrollY: 77}, core.FreezeConfig{}),
		"frozen":   newTester(core.Viewport{ScrollX: 431, ScrollY: 153}, core.FreezeConfig{Rows: 2, Cols: 2}),
	}
	for name, ht := range testers {
		for x := 51.0; x < 800; x += 37 {
			for y := 25.0; y < 600; y += 13 {
				ref, ok := ht.CellAt(x, y)
				if !ok {
					t.Fatalf("%s: CellAt(%v,%v) unexpectedly missed", name, x, y)
				}
				rect := ht.proj.CellRect(ref.Row, ref.Col)
				if !rect.Contains(core.Point{X: x, Y: y}) {
					t.Fatalf("%s: point (%v,%v) resolved to %v but rect %v does not contain it",
						name, x, y, ref, rect)
				}
			}
		}
	}
}

func TestDragStickinessX(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	origin := core.CellRef{Row: 0, Col: 1}

	// Column 2 spans x 250..350. 20px in is below the 30% threshold.
	ref, ok := ht.CellAtWithDrag(270, 30, origin)
	if !ok || ref.Col != 1 {
		t.Errorf("shallow penetration should stick to origin column, got %v", ref)
	}

	// 40px in clears the threshold.
	ref, ok = ht.CellAtWithDrag(290, 30, origin)
	if !ok || ref.Col != 2 {
		t.Errorf("deep penetration should switch columns, got %v", ref)
	}
}

func TestDragStickinessLeftward(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	origin := core.CellRef{Row: 0, Col: 2}

	// Column 1 spans x 150..250. Dragging left, 230 is only 20px into
	// column 1 from its right edge.
	ref, ok := ht.CellAtWithDrag(230, 30, origin)
	if !ok || ref.Col != 2 {
		t.Errorf("shallow leftward penetration should stick, got %v", ref)
	}

	ref, ok = ht.CellAtWithDrag(200, 30, origin)
	if !ok || ref.Col != 1 {
		t.Errorf("deep leftward penetration should switch, got %v", ref)
	}
}

func TestDragRowsSwitchInstantly(t *testing.T) {
	// StickyY defaults to zero: rows change as soon as the pointer
	// crosses the boundary.
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	origin := core.CellRef{Row: 0, Col: 0}

	ref, ok := ht.CellAtWithDrag(60, 49, origin)
	if !ok || ref.Row != 1 {
		t.Errorf("row should switch instantly, got %v", ref)
	}
}

func TestColumnResizeHandle(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})

	// Column 0's right boundary is at x=150.
	if col, ok := ht.ColumnResizeHandleAt(148, 10); !ok || col != 0 {
		t.Errorf("expected handle for col 0 left of boundary, got %d ok=%v", col, ok)
	}
	if col, ok := ht.ColumnResizeHandleAt(153, 10); !ok || col != 0 {
		t.Errorf("expected handle for col 0 right of boundary, got %d ok=%v", col, ok)
	}
	if _, ok := ht.ColumnResizeHandleAt(200, 10); ok {
		t.Error("mid-column should not hit a handle")
	}
	if _, ok := ht.ColumnResizeHandleAt(148, 30); ok {
		t.Error("below the header band should not hit a handle")
	}
	if _, ok := ht.ColumnResizeHandleAt(20, 10); ok {
		t.Error("corner chrome should not hit a handle")
	}
}

func TestRowResizeHandle(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})

	// Row 0's bottom boundary is at y=48.
	if row, ok := ht.RowResizeHandleAt(10, 46); !ok || row != 0 {
		t.Errorf("expected handle for row 0, got %d ok=%v", row, ok)
	}
	if row, ok := ht.RowResizeHandleAt(10, 51); !ok || row != 0 {
		t.Errorf("expected handle for row 0 below boundary, got %d ok=%v", row, ok)
	}
	if _, ok := ht.RowResizeHandleAt(10, 60); ok {
		t.Error("mid-row should not hit a handle")
	}
	if _, ok := ht.RowResizeHandleAt(60, 46); ok {
		t.Error("outside the row header band should not hit a handle")
	}
}

func TestResizeHandleScrolledFrozen(t *testing.T) {
	ht := newTester(core.Viewport{ScrollX: 250}, core.FreezeConfig{Cols: 1})

	// Frozen column 0's boundary stays put at x=150 regardless of
	// scroll.
	if col, ok := ht.ColumnResizeHandleAt(151, 10); !ok || col != 0 {
		t.Errorf("expected frozen col 0 handle, got %d ok=%v", col, ok)
	}

	// Scrollable boundaries shift with scroll: column 3's right edge is
	// at header(50) + frozen(100) - 250 + widths(1..3)=300 = 200.
	if col, ok := ht.ColumnResizeHandleAt(201, 10); !ok || col != 3 {
		t.Errorf("expected scrolled col 3 handle, got %d ok=%v", col, ok)
	}
}

func TestSelectionBorder(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	sel := core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}
	// Selection rect: x 150..350, y 48..96.

	cases := []struct {
		x, y float64
		typ  SelectionType
		edge Edge
		hit  bool
	}{
		{250, 50, SelectCells, EdgeTop, true},
		{250, 94, SelectCells, EdgeBottom, true},
		{152, 70, SelectCells, EdgeLeft, true},
		{348, 70, SelectCells, EdgeRight, true},
		{250, 70, SelectCells, 0, false}, // interior
		{250, 200, SelectCells, 0, false},
		{250, 50, SelectRows, EdgeTop, true},
		{152, 70, SelectRows, 0, false}, // rows expose only top/bottom
		{152, 70, SelectColumns, EdgeLeft, true},
		{250, 50, SelectColumns, 0, false},
	}
	for _, tc := range cases {
		edge, ok := ht.SelectionBorderAt(tc.x, tc.y, sel, tc.typ)
		if ok != tc.hit {
			t.Errorf("SelectionBorderAt(%v,%v,%d): hit=%v, want %v", tc.x, tc.y, tc.typ, ok, tc.hit)
			continue
		}
		if ok && edge != tc.edge {
			t.Errorf("SelectionBorderAt(%v,%v,%d): edge=%v, want %v", tc.x, tc.y, tc.typ, edge, tc.edge)
		}
	}
}

func TestSelectionBorderIgnoresHeaderBand(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	sel := core.CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 0}

	// Cell (0,0)'s top edge coincides with the header boundary; a point
	// in the header band must not hit it.
	if _, ok := ht.SelectionBorderAt(60, 22, sel, SelectCells); ok {
		t.Error("header-band point should not hit a selection border")
	}
}

func TestReferenceCorner(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	refs := []Reference{
		{Range: core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
	}
	// Reference rect: x 150..350, y 48..96.

	if i, ok := ht.ReferenceCornerAt(349, 95, refs, "Sheet1", "Sheet1"); !ok || i != 0 {
		t.Errorf("bottom-right corner should hit, got %d ok=%v", i, ok)
	}
	if i, ok := ht.ReferenceCornerAt(151, 49, refs, "Sheet1", "Sheet1"); !ok || i != 0 {
		t.Errorf("top-left corner should hit, got %d ok=%v", i, ok)
	}
	if _, ok := ht.ReferenceCornerAt(250, 70, refs, "Sheet1", "Sheet1"); ok {
		t.Error("interior should not hit a corner")
	}
}

func TestReferenceCornerExclusions(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	rng := core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}

	for _, tc := range []struct {
		name string
		ref  Reference
	}{
		{"passive", Reference{Range: rng, Passive: true}},
		{"full row", Reference{Range: rng, FullRow: true}},
		{"full column", Reference{Range: rng, FullColumn: true}},
	} {
		if _, ok := ht.ReferenceCornerAt(349, 95, []Reference{tc.ref}, "Sheet1", "Sheet1"); ok {
			t.Errorf("%s reference should not expose corners", tc.name)
		}
	}
}

func TestReferenceSheetMatching(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	rng := core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}

	// Unqualified references belong to the formula's source sheet.
	unqualified := []Reference{{Range: rng}}
	if _, ok := ht.ReferenceCornerAt(349, 95, unqualified, "Sheet2", "Sheet1"); ok {
		t.Error("unqualified reference should not hit on a different sheet")
	}
	if _, ok := ht.ReferenceCornerAt(349, 95, unqualified, "Sheet1", "Sheet1"); !ok {
		t.Error("unqualified reference should hit on the source sheet")
	}

	// Qualified references match case-insensitively.
	qualified := []Reference{{Range: rng, Sheet: "Budget"}}
	if _, ok := ht.ReferenceCornerAt(349, 95, qualified, "BUDGET", "Sheet1"); !ok {
		t.Error("qualified reference should match sheet name case-insensitively")
	}
	if _, ok := ht.ReferenceCornerAt(349, 95, qualified, "Sheet1", "Sheet1"); ok {
		t.Error("qualified reference should not hit on a non-matching sheet")
	}
}

func TestReferenceBorder(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	refs := []Reference{
		{Range: core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
	}

	if i, edge, ok := ht.ReferenceBorderAt(250, 94, refs, "Sheet1", "Sheet1"); !ok || i != 0 || edge != EdgeBottom {
		t.Errorf("expected bottom border of ref 0, got i=%d edge=%v ok=%v", i, edge, ok)
	}
	if _, _, ok := ht.ReferenceBorderAt(250, 70, refs, "Sheet1", "Sheet1"); ok {
		t.Error("interior should not hit a border")
	}

	// Full-row references still expose borders.
	full := []Reference{
		{Range: core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}, FullRow: true},
	}
	if _, _, ok := ht.ReferenceBorderAt(250, 94, full, "Sheet1", "Sheet1"); !ok {
		t.Error("full-row reference should still expose borders")
	}
}

func TestReferenceTopmostWins(t *testing.T) {
	ht := newTester(core.Viewport{}, core.FreezeConfig{})
	refs := []Reference{
		{Range: core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
		{Range: core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
	}

	if i, ok := ht.ReferenceCornerAt(349, 95, refs, "Sheet1", "Sheet1"); !ok || i != 1 {
		t.Errorf("later reference paints on top and should win, got %d ok=%v", i, ok)
	}
}
