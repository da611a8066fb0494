package render

import (
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
	"github.com/virtgrid/virtgrid/internal/grid/highlight"
	"github.com/virtgrid/virtgrid/internal/grid/merge"
	"github.com/virtgrid/virtgrid/internal/grid/overlay"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
)

// RenderFrame draws one complete frame onto the surface.
//
// With freeze panes active the zones paint in painter's order, scrollable
// first and the static corner last, each independently clipped, followed
// by seam separators. After structural content the layers run in a fixed
// z-order: overlays, formula references, fill preview, drag preview,
// selection, marching ants, column headers, row headers, corner chrome.
// Reordering these changes which highlight wins where ranges overlap.
//
// The call is synchronous and draws the whole frame; the caller owns the
// frame clock and serializes calls.
func (s *Session) RenderFrame(surf surface.Surface, f *Frame) {
	w, h := surf.Size()
	th := s.Theme()
	surf.Clear(th.Background)

	if f == nil || !f.Config.IsValid() {
		return
	}
	if w <= f.Config.RowHeaderWidth || h <= f.Config.ColHeaderHeight {
		return
	}

	d := dims.NewResolver(f.Config, f.Dimensions)
	layout := viewport.FreezeLayout(f.Freeze, f.Config, d)
	proj := viewport.NewProjector(f.Viewport, f.Config, layout, d)

	p := &painter{
		s:       surf,
		m:       s.measurer,
		th:      th,
		f:       f,
		d:       d,
		proj:    proj,
		layout:  layout,
		merges:  merge.BuildMap(f.Cells),
		styles:  style.NewTable(f.Styles),
		chain:   s.chain,
		decos:   s.snapshotDecorations(),
		canvasW: w,
		canvasH: h,
	}

	mainVR := p.paintContent()

	s.overlays.RenderAll(&overlay.Context{
		Surface:   surf,
		Projector: proj,
		Visible:   mainVR,
		CanvasW:   w,
		CanvasH:   h,
	}, f.Regions)

	hl := highlight.NewRenderer(surf, proj, th.Highlight, w, h)
	hl.DrawReferences(f.References, f.CurrentSheet, f.FormulaSourceSheet)
	if f.FillPreview != nil {
		hl.DrawFillPreview(*f.FillPreview)
	}
	if f.DragPreview != nil {
		hl.DrawDragPreview(*f.DragPreview)
	}
	if f.Selection != nil {
		hl.DrawSelection(*f.Selection, f.CurrentSheet, f.FormulaSourceSheet, f.EditingFormula)
	}
	if f.Clipboard != nil {
		hl.DrawMarchingAnts(*f.Clipboard)
	}

	p.columnHeaders(mainVR)
	p.rowHeaders(mainVR)
	p.cornerChrome()
}

// paintContent draws grid lines and cells for every present zone and
// returns the scrollable range for the later layers.
func (p *painter) paintContent() core.VisibleRange {
	f := p.f
	if p.layout.FrozenRows == 0 && p.layout.FrozenCols == 0 {
		vr := viewport.VisibleRange(f.Viewport, f.Config, p.canvasW, p.canvasH, p.d)
		p.paintZone(viewport.ZoneScrollable, vr, false)
		return vr
	}

	main := viewport.ScrollableRange(f.Viewport, f.Config, p.layout, p.canvasW, p.canvasH, p.d)
	p.paintZone(viewport.ZoneScrollable, main, true)
	if p.layout.FrozenCols > 0 {
		p.paintZone(viewport.ZoneLeft, viewport.LeftRange(f.Viewport, f.Config, p.layout, p.canvasH, p.d), true)
	}
	if p.layout.FrozenRows > 0 {
		p.paintZone(viewport.ZoneTop, viewport.TopRange(f.Viewport, f.Config, p.layout, p.canvasW, p.d), true)
	}
	if p.layout.FrozenRows > 0 && p.layout.FrozenCols > 0 {
		p.paintZone(viewport.ZoneTopLeft, viewport.TopLeftRange(p.layout), true)
	}
	p.separators()
	return main
}
