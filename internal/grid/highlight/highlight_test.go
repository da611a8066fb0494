package highlight

import (
	"math"
	"testing"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
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

func newRenderer(rec *surface.Recorder, vp core.Viewport, fz core.FreezeConfig) *Renderer {
	cfg := testConfig()
	d := dims.NewResolver(cfg, core.DimensionOverrides{})
	layout := viewport.FreezeLayout(fz, cfg, d)
	proj := viewport.NewProjector(vp, cfg, layout, d)
	return NewRenderer(rec, proj, DefaultPalette(), rec.W, rec.H)
}

func TestNextAntsPhaseWraps(t *testing.T) {
	// 0.5px per tick against an 8px period: after 16 ticks the offset
	// has advanced a full period and wrapped exactly once.
	phase := 0.0
	wraps := 0
	for i := 0; i < 16; i++ {
		next := NextAntsPhase(phase, 0.5)
		if next < phase {
			wraps++
		}
		phase = next
	}
	if wraps != 1 {
		t.Errorf("expected exactly one wrap after 16 ticks, got %d", wraps)
	}
	if phase != 0 {
		t.Errorf("expected phase back at 0 after one full period, got %v", phase)
	}
}

func TestNextAntsPhaseStaysInPeriod(t *testing.T) {
	phase := 0.0
	for i := 0; i < 100; i++ {
		phase = NextAntsPhase(phase, 1.7)
		if phase < 0 || phase >= AntsPeriod {
			t.Fatalf("phase %v escaped [0, %v)", phase, AntsPeriod)
		}
	}
}

func TestDrawSelection(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})

	sel := core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}
	r.DrawSelection(sel, "Sheet1", "Sheet1", false)

	if rec.CountKind(surface.OpFillRect) < 1 {
		t.Error("selection should fill its area")
	}
	if rec.CountKind(surface.OpStrokeRect) < 1 {
		t.Error("selection should stroke its border")
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced save/restore, depth %d", rec.Depth())
	}
}

func TestSelectionSuppressedCrossSheetFormula(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})

	sel := core.CellRange{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}
	r.DrawSelection(sel, "Sheet2", "Sheet1", true)

	if len(rec.Ops) != 0 {
		t.Errorf("selection must not draw while editing a formula from another sheet, got %d ops", len(rec.Ops))
	}

	// Same sheet under formula editing still draws.
	r.DrawSelection(sel, "Sheet1", "sheet1", true)
	if len(rec.Ops) == 0 {
		t.Error("selection should draw when the formula's sheet is displayed")
	}
}

func TestFillHandleSuppressedWhenCornerClipped(t *testing.T) {
	// Freeze one column; selection in the scrollable zone scrolled so
	// far left its bottom-right corner sits under the frozen band.
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{ScrollX: 400}, core.FreezeConfig{Cols: 1})

	// At scrollX=400 the selection's rect has scrolled entirely under
	// the frozen band, so its bottom-right corner is outside the
	// scrollable zone's clip.
	sel := core.CellRange{StartRow: 0, StartCol: 2, EndRow: 1, EndCol: 3}
	r.DrawSelection(sel, "Sheet1", "Sheet1", false)

	// The fill handle is the only 6x6 fill; no fill op that small should
	// have been recorded.
	for _, op := range rec.Ops {
		if op.Kind == surface.OpFillRect && op.Rect.W == fillHandleSize && op.Rect.H == fillHandleSize {
			t.Fatal("fill handle should be suppressed when its corner is clipped out")
		}
	}

	rec.Reset()
	r2 := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})
	r2.DrawSelection(sel, "Sheet1", "Sheet1", false)
	found := false
	for _, op := range rec.Ops {
		if op.Kind == surface.OpFillRect && op.Rect.W == fillHandleSize && op.Rect.H == fillHandleSize {
			found = true
		}
	}
	if !found {
		t.Error("fill handle should draw when the corner is visible")
	}
}

func TestMarchingAntsStrokeOrder(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})

	clip := Clipboard{
		Range: core.CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1},
		Mode:  ClipboardCut,
		Phase: 2.5,
	}
	r.DrawMarchingAnts(clip)

	var strokes []surface.Op
	var dashes []surface.Op
	for _, op := range rec.Ops {
		switch op.Kind {
		case surface.OpStrokeRect:
			strokes = append(strokes, op)
		case surface.OpSetDash:
			dashes = append(dashes, op)
		}
	}
	if len(strokes) != 2 {
		t.Fatalf("expected under-stroke and over-stroke, got %d strokes", len(strokes))
	}
	pal := DefaultPalette()
	if strokes[0].Color != pal.AntsUnder {
		t.Errorf("first stroke should be the white under-stroke, got %v", strokes[0].Color)
	}
	if strokes[1].Color != pal.AntsCut {
		t.Errorf("cut mode should stroke green, got %v", strokes[1].Color)
	}
	if len(dashes) < 2 || len(dashes[1].Dash) == 0 {
		t.Fatal("over-stroke should be dashed")
	}
	if dashes[1].DashOffset != 2.5 {
		t.Errorf("dash offset should carry the phase, got %v", dashes[1].DashOffset)
	}
}

func TestMarchingAntsCopyColor(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})

	r.DrawMarchingAnts(Clipboard{
		Range: core.CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 0},
		Mode:  ClipboardCopy,
	})

	pal := DefaultPalette()
	found := false
	for _, op := range rec.Ops {
		if op.Kind == surface.OpStrokeRect && op.Color == pal.AntsCopy {
			found = true
		}
	}
	if !found {
		t.Error("copy mode should stroke blue")
	}
}

func TestHighlightDrawnPerZone(t *testing.T) {
	// A range spanning the freeze seams draws once per occupied zone,
	// each portion under its own zone's clip.
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{Rows: 2, Cols: 1})

	// Rows 0..4, cols 0..2: occupies all four zones.
	r.DrawDragPreview(core.CellRange{StartRow: 0, StartCol: 0, EndRow: 4, EndCol: 2})

	if got := rec.CountKind(surface.OpClip); got != 4 {
		t.Errorf("expected 4 zone clips, got %d", got)
	}
	if got := rec.CountKind(surface.OpStrokeRect); got != 4 {
		t.Errorf("expected 4 clipped strokes, got %d", got)
	}
	clips := map[core.Rect]bool{}
	for _, op := range rec.Ops {
		if op.Kind == surface.OpClip {
			clips[op.Rect] = true
		}
	}
	if len(clips) != 4 {
		t.Errorf("each portion should clip to a distinct zone, got %d distinct clips", len(clips))
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced save/restore, depth %d", rec.Depth())
	}
}

func TestScrolledSelectionHiddenUnderFrozenPane(t *testing.T) {
	// Two frozen columns put the seam at x=250. A selection entirely in
	// the scrollable zone, scrolled so its rect slides under the frozen
	// band, must draw only inside the scrollable clip.
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{ScrollX: 150}, core.FreezeConfig{Cols: 2})

	sel := core.CellRange{StartRow: 5, StartCol: 2, EndRow: 6, EndCol: 3}
	r.DrawSelection(sel, "Sheet1", "Sheet1", false)

	if rec.CountKind(surface.OpFillRect) == 0 {
		t.Fatal("the selection's visible slice should still fill")
	}
	for _, op := range rec.Ops {
		if op.Kind == surface.OpClip && op.Rect.X < 250 {
			t.Errorf("scrollable selection clipped to a frozen-band rect %+v", op.Rect)
		}
	}
}

func TestSeamSpanningSelectionUsesPerZoneMath(t *testing.T) {
	// One frozen column, scrolled by half a cell. The frozen portion
	// keeps its fixed origin; the scrollable portion shifts with scroll.
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{ScrollX: 50}, core.FreezeConfig{Cols: 1})

	sel := core.CellRange{StartRow: 2, StartCol: 0, EndRow: 3, EndCol: 2}
	r.DrawSelection(sel, "Sheet1", "Sheet1", false)

	var xs []float64
	for _, op := range rec.Ops {
		if op.Kind == surface.OpFillRect && op.Rect.W > fillHandleSize {
			xs = append(xs, op.Rect.X)
		}
	}
	if len(xs) != 2 {
		t.Fatalf("expected a fill per occupied zone, got %d", len(xs))
	}
	// Scrollable piece first in zone order, then the frozen-left piece.
	// Its left edge sits 100px (cols 0..0) before col 1 at 150-50=100.
	if xs[0] != 0 {
		t.Errorf("scrollable portion should scroll-adjust and extend past the seam, left edge %v", xs[0])
	}
	// The frozen piece keeps the fixed origin of col 0 despite scroll.
	if xs[1] != 50 {
		t.Errorf("frozen portion should keep its fixed origin, left edge %v", xs[1])
	}
}

func TestOffscreenHighlightSkipped(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{ScrollX: 100000}, core.FreezeConfig{})

	// Range far left of the visible window: every zone intersection is
	// empty, so nothing draws.
	r.DrawFillPreview(core.CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1})

	if len(rec.Ops) != 0 {
		t.Errorf("offscreen highlight should be skipped, got %d ops", len(rec.Ops))
	}
}

func TestReferenceSheetVisibility(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})

	refs := []Reference{
		{Range: core.CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}, Color: core.RGB(200, 30, 30)},
		{Range: core.CellRange{StartRow: 3, StartCol: 0, EndRow: 4, EndCol: 1}, Color: core.RGB(30, 30, 200), Sheet: "Other"},
	}

	r.DrawReferences(refs, "Sheet1", "Sheet1")
	if got := rec.CountKind(surface.OpStrokeRect); got != 1 {
		t.Errorf("only the unqualified reference should draw on the source sheet, got %d borders", got)
	}

	rec.Reset()
	r.DrawReferences(refs, "other", "Sheet1")
	if got := rec.CountKind(surface.OpStrokeRect); got != 1 {
		t.Errorf("only the qualified reference should draw on its sheet, got %d borders", got)
	}
}

func TestReferenceCornersOnlyWhenResizable(t *testing.T) {
	rng := core.CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}

	countFills := func(ref Reference) int {
		rec := surface.NewRecorder(800, 600)
		r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})
		r.DrawReferences([]Reference{ref}, "Sheet1", "Sheet1")
		return rec.CountKind(surface.OpFillRect)
	}

	// Active reference: area fill plus four corner squares.
	if got := countFills(Reference{Range: rng, Color: core.RGB(200, 30, 30)}); got != 5 {
		t.Errorf("active reference should fill area + 4 corners, got %d fills", got)
	}
	// Passive and full-axis references: area fill only.
	for _, ref := range []Reference{
		{Range: rng, Passive: true},
		{Range: rng, FullRow: true},
		{Range: rng, FullColumn: true},
	} {
		if got := countFills(ref); got != 1 {
			t.Errorf("non-resizable reference should fill only its area, got %d fills", got)
		}
	}
}

func TestPassiveReferenceTintsTowardWhite(t *testing.T) {
	rng := core.CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}
	base := core.RGB(200, 30, 30)

	strokeColor := func(ref Reference) core.Color {
		rec := surface.NewRecorder(800, 600)
		r := newRenderer(rec, core.Viewport{}, core.FreezeConfig{})
		r.DrawReferences([]Reference{ref}, "Sheet1", "Sheet1")
		for _, op := range rec.Ops {
			if op.Kind == surface.OpStrokeRect {
				return op.Color
			}
		}
		t.Fatal("reference border not drawn")
		return core.Color{}
	}

	if got := strokeColor(Reference{Range: rng, Color: base}); got != base {
		t.Errorf("active reference should stroke its own color, got %v", got)
	}
	want := style.Lighten(base, 0.4)
	if got := strokeColor(Reference{Range: rng, Color: base, Passive: true}); got != want {
		t.Errorf("passive reference should stroke the lightened color %v, got %v", want, got)
	}
}

func TestCrispRectHalfPixel(t *testing.T) {
	rc := crispRect(core.Rect{X: 150, Y: 48, W: 200, H: 48})
	if frac := math.Mod(rc.X, 1); frac != 0.5 {
		t.Errorf("crisp rect X should sit on a half pixel, got %v", rc.X)
	}
	if frac := math.Mod(rc.Y, 1); frac != 0.5 {
		t.Errorf("crisp rect Y should sit on a half pixel, got %v", rc.Y)
	}
}
