package render

import (
	"github.com/virtgrid/virtgrid/internal/grid/anim"
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
	"github.com/virtgrid/virtgrid/internal/grid/merge"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/text"
	"github.com/virtgrid/virtgrid/internal/grid/theme"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
)

// Horizontal cell padding and indent step, in pixels.
const (
	cellPadX   = 4.0
	indentStep = 8.0
)

// painter draws the structural content of one frame. It lives for a
// single render call.
type painter struct {
	s  surface.Surface
	m  text.Measurer
	th theme.Theme
	f  *Frame

	d      *dims.Resolver
	proj   *viewport.Projector
	layout core.FreezePaneLayout
	merges *merge.Map
	styles *style.Table
	chain  *style.Chain
	decos  []Decoration

	canvasW float64
	canvasH float64
}

// animX returns the structural-animation shift for a column.
func (p *painter) animX(col int) float64 {
	return p.f.Animation.OffsetAt(anim.AxisColumn, col)
}

// animY returns the structural-animation shift for a row.
func (p *painter) animY(row int) float64 {
	return p.f.Animation.OffsetAt(anim.AxisRow, row)
}

// paintZone draws grid lines and cell content for one zone's range.
// When clipped, the zone's clip rect confines all drawing.
func (p *painter) paintZone(z viewport.Zone, vr core.VisibleRange, clipped bool) {
	clip := p.proj.ZoneClip(z, p.canvasW, p.canvasH)
	if clip.IsEmpty() {
		return
	}
	if clipped {
		p.s.Save()
		p.s.ClipRect(clip)
	}
	p.gridLines(vr)
	p.cells(z, vr, clip)
	if clipped {
		p.s.Restore()
	}
}

// gridLines strokes the cell boundaries of a range, skipping every
// stretch that would cross a merged region's interior.
func (p *painter) gridLines(vr core.VisibleRange) {
	for col := vr.StartCol; col <= vr.EndCol+1; col++ {
		if col > p.f.Config.TotalCols {
			break
		}
		x := surface.Crisp(p.proj.CellX(col) + p.animX(col))
		for _, seg := range p.merges.VerticalSegments(col, vr.StartRow, vr.EndRow) {
			y0 := p.proj.CellY(seg.Start) + p.animY(seg.Start)
			y1 := p.proj.CellY(seg.End) + p.d.RowHeight(seg.End) + p.animY(seg.End)
			p.s.StrokeLine(x, y0, x, y1, p.th.GridLine, 1)
		}
	}
	for row := vr.StartRow; row <= vr.EndRow+1; row++ {
		if row > p.f.Config.TotalRows {
			break
		}
		y := surface.Crisp(p.proj.CellY(row) + p.animY(row))
		for _, seg := range p.merges.HorizontalSegments(row, vr.StartCol, vr.EndCol) {
			x0 := p.proj.CellX(seg.Start) + p.animX(seg.Start)
			x1 := p.proj.CellX(seg.End) + p.d.ColWidth(seg.End) + p.animX(seg.End)
			p.s.StrokeLine(x0, y, x1, y, p.th.GridLine, 1)
		}
	}
}

// cells draws the content of every visible, non-slave cell in the range,
// then the masters of merges reaching into the range from outside it. A
// master scrolled past the window start still owns the span's content.
func (p *painter) cells(z viewport.Zone, vr core.VisibleRange, clip core.Rect) {
	for row := vr.StartRow; row <= vr.EndRow; row++ {
		if p.d.RowHeight(row) <= 0 {
			continue
		}
		for col := vr.StartCol; col <= vr.EndCol; col++ {
			if p.d.ColWidth(col) <= 0 {
				continue
			}
			if p.merges.IsSlave(row, col) {
				continue
			}
			p.cell(core.CellRef{Row: row, Col: col}, clip)
		}
	}

	for _, master := range p.merges.MastersIntersecting(vr.StartRow, vr.EndRow, vr.StartCol, vr.EndCol) {
		if master.Row >= vr.StartRow && master.Row <= vr.EndRow &&
			master.Col >= vr.StartCol && master.Col <= vr.EndCol {
			continue
		}
		if p.proj.ZoneOf(master.Row, master.Col) != z {
			continue
		}
		p.cell(master, clip)
	}
}

// cell draws one cell: background, borders, decorations, then text.
// Empty cells with a plain style draw nothing.
func (p *painter) cell(ref core.CellRef, clip core.Rect) {
	if p.f.Editing != nil && *p.f.Editing == ref {
		return
	}

	data := p.f.Cells[ref]
	var raw string
	styleIdx := 0
	if data != nil {
		raw = data.Display
		styleIdx = data.StyleIndex
	}
	st := p.styles.Resolve(styleIdx)
	if raw == "" && !st.HasVisibleBox() {
		return
	}

	rect := p.proj.CellRect(ref.Row, ref.Col)
	if span, ok := p.merges.SpanOf(ref); ok {
		rect = p.proj.RangeRect(span)
	}
	rect.X += p.animX(ref.Col)
	rect.Y += p.animY(ref.Row)
	if rect.Intersect(clip).IsEmpty() {
		return
	}

	st = p.chain.Apply(raw, st, ref)

	if bg := st.BackgroundColor; !bg.IsZero() && !bg.IsTransparent() && bg != p.th.Background {
		p.s.FillRect(rect, bg)
	}
	p.borders(rect, st)

	for _, deco := range p.decos {
		deco(&DecorationContext{Surface: p.s, Cell: ref, Rect: rect, Style: st, Data: data})
	}

	if raw != "" {
		p.text(raw, rect, st)
	}
}

// borders strokes the four edges after the background fill and before
// decorations and text.
func (p *painter) borders(rect core.Rect, st style.Data) {
	x0, y0 := surface.Crisp(rect.X), surface.Crisp(rect.Y)
	x1, y1 := surface.Crisp(rect.Right()), surface.Crisp(rect.Bottom())

	p.edge(x0, y0, x1, y0, st.BorderTop, true)
	p.edge(x1, y0, x1, y1, st.BorderRight, false)
	p.edge(x0, y1, x1, y1, st.BorderBottom, true)
	p.edge(x0, y0, x0, y1, st.BorderLeft, false)
}

// edge strokes one border edge. Double draws two parallel hairlines
// straddling the nominal edge.
func (p *painter) edge(x1, y1, x2, y2 float64, b style.Border, horizontal bool) {
	if !b.IsVisible() {
		return
	}
	c := b.Color
	if c.IsZero() {
		c = core.ColorBlack
	}

	switch b.Style {
	case style.BorderDouble:
		if horizontal {
			p.s.StrokeLine(x1, y1-1, x2, y2-1, c, 1)
			p.s.StrokeLine(x1, y1+1, x2, y2+1, c, 1)
		} else {
			p.s.StrokeLine(x1-1, y1, x2-1, y2, c, 1)
			p.s.StrokeLine(x1+1, y1, x2+1, y2, c, 1)
		}
	case style.BorderDashed:
		p.s.SetLineDash([]float64{4, 2}, 0)
		p.s.StrokeLine(x1, y1, x2, y2, c, b.EffectiveWidth())
		p.s.SetLineDash(nil, 0)
	case style.BorderDotted:
		p.s.SetLineDash([]float64{1, 2}, 0)
		p.s.StrokeLine(x1, y1, x2, y2, c, b.EffectiveWidth())
		p.s.SetLineDash(nil, 0)
	default:
		p.s.StrokeLine(x1, y1, x2, y2, c, b.EffectiveWidth())
	}
}

// text lays out the cell's text in one of three mutually exclusive
// modes: rotation, wrapping, or single-line truncation.
func (p *painter) text(raw string, rect core.Rect, st style.Data) {
	font := text.Font{Family: st.FontFamily, Size: st.FontSize, Bold: st.Bold, Italic: st.Italic}
	align := style.ResolveAlign(st.TextAlign, raw)
	color := st.TextColor
	if st.TextAlign == style.AlignGeneral && style.IsErrorText(raw) {
		color = p.th.ErrorText
	}

	switch {
	case st.Rotated():
		p.rotatedText(raw, rect, st, font, color)
	case st.WrapText:
		p.wrappedText(raw, rect, st, font, align, color)
	default:
		p.truncatedText(raw, rect, st, font, align, color)
	}
}

// lineX returns the pen X for one line of the given width.
func lineX(rect core.Rect, width float64, align style.Align, indent float64) float64 {
	switch align {
	case style.AlignRight:
		return rect.Right() - cellPadX - width
	case style.AlignCenter:
		return rect.X + (rect.W-width)/2
	default:
		return rect.X + cellPadX + indent
	}
}

func (p *painter) truncatedText(raw string, rect core.Rect, st style.Data, font text.Font, align style.Align, color core.Color) {
	indent := float64(st.Indent) * indentStep
	avail := rect.W - 2*cellPadX - indent
	line := text.Truncate(p.m, raw, font, avail)
	if line == "" {
		return
	}
	width := p.m.MeasureWidth(line, font)
	x := lineX(rect, width, align, indent)
	top := rect.Y + text.VerticalOffset(st.VerticalAlign == style.VAlignTop, st.VerticalAlign == style.VAlignBottom, rect.H, 1, font)

	baseline := top + font.Size
	p.s.FillText(line, x, baseline, font, color)
	p.strikes(x, baseline, width, st, color)
}

func (p *painter) wrappedText(raw string, rect core.Rect, st style.Data, font text.Font, align style.Align, color core.Color) {
	indent := float64(st.Indent) * indentStep
	avail := rect.W - 2*cellPadX - indent
	lines := text.Wrap(p.m, raw, font, avail)
	if len(lines) == 0 {
		return
	}
	top := rect.Y + text.VerticalOffset(st.VerticalAlign == style.VAlignTop, st.VerticalAlign == style.VAlignBottom, rect.H, len(lines), font)

	for i, line := range lines {
		width := p.m.MeasureWidth(line, font)
		x := lineX(rect, width, align, indent)
		baseline := top + float64(i)*text.LineHeight(font) + font.Size
		p.s.FillText(line, x, baseline, font, color)
		p.strikes(x, baseline, width, st, color)
	}
}

// rotatedText rotates the transform about the cell center and repurposes
// the rotated extent as the truncation width.
func (p *painter) rotatedText(raw string, rect core.Rect, st style.Data, font text.Font, color core.Color) {
	maxW := text.RotatedMaxWidth(st.TextRotation, rect.W-2*cellPadX, rect.H)
	line := text.Truncate(p.m, raw, font, maxW)
	if line == "" {
		return
	}
	width := p.m.MeasureWidth(line, font)
	center := rect.Center()

	p.s.Save()
	p.s.Translate(center.X, center.Y)
	p.s.Rotate(text.RotationRad(st.TextRotation))
	x := -width / 2
	baseline := font.Size / 2
	p.s.FillText(line, x, baseline, font, color)
	p.strikes(x, baseline, width, st, color)
	p.s.Restore()
}

// strikes draws underline and strikethrough as separate stroked
// segments relative to the measured line.
func (p *painter) strikes(x, baseline, width float64, st style.Data, color core.Color) {
	if width <= 0 {
		return
	}
	if st.Underline {
		y := surface.Crisp(baseline + 2)
		p.s.StrokeLine(x, y, x+width, y, color, 1)
	}
	if st.Strikethrough {
		y := surface.Crisp(baseline - st.FontSize*0.3)
		p.s.StrokeLine(x, y, x+width, y, color, 1)
	}
}
