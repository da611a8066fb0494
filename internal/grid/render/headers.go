package render

import (
	"strconv"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/text"
)

// ColumnLabel returns the spreadsheet-style label for a column index:
// 0 -> A, 25 -> Z, 26 -> AA.
func ColumnLabel(col int) string {
	if col < 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for col >= 0 {
		i--
		buf[i] = byte('A' + col%26)
		col = col/26 - 1
	}
	return string(buf[i:])
}

// headerFont is the chrome label font; headers do not follow cell styles.
func (p *painter) headerFont() text.Font {
	return text.Font{Family: "system-ui", Size: 10}
}

// headerCols yields every column with a visible header: frozen columns
// first, then the scrollable window.
func (p *painter) headerCols(vr core.VisibleRange, fn func(col int)) {
	for col := 0; col < p.layout.FrozenCols; col++ {
		fn(col)
	}
	for col := vr.StartCol; col <= vr.EndCol; col++ {
		fn(col)
	}
}

func (p *painter) headerRows(vr core.VisibleRange, fn func(row int)) {
	for row := 0; row < p.layout.FrozenRows; row++ {
		fn(row)
	}
	for row := vr.StartRow; row <= vr.EndRow; row++ {
		fn(row)
	}
}

// columnHeaders paints the top band: background, per-column labels and
// boundary ticks, bottom border.
func (p *painter) columnHeaders(vr core.VisibleRange) {
	cfg := p.f.Config
	band := core.NewRect(cfg.RowHeaderWidth, 0, p.canvasW-cfg.RowHeaderWidth, cfg.ColHeaderHeight)
	font := p.headerFont()

	p.s.Save()
	p.s.ClipRect(band)
	p.s.FillRect(band, p.th.HeaderBackground)

	p.headerCols(vr, func(col int) {
		w := p.d.ColWidth(col)
		if w <= 0 {
			return
		}
		x := p.proj.CellX(col) + p.animX(col)

		tick := surface.Crisp(x + w)
		p.s.StrokeLine(tick, 0, tick, cfg.ColHeaderHeight, p.th.HeaderBorder, 1)

		label := ColumnLabel(col)
		lw := p.m.MeasureWidth(label, font)
		p.s.FillText(label, x+(w-lw)/2, (cfg.ColHeaderHeight+font.Size)/2, font, p.th.HeaderText)
	})

	edge := surface.Crisp(cfg.ColHeaderHeight)
	p.s.StrokeLine(band.X, edge, band.Right(), edge, p.th.HeaderBorder, 1)
	p.s.Restore()
}

// rowHeaders paints the left band with 1-based row numbers.
func (p *painter) rowHeaders(vr core.VisibleRange) {
	cfg := p.f.Config
	band := core.NewRect(0, cfg.ColHeaderHeight, cfg.RowHeaderWidth, p.canvasH-cfg.ColHeaderHeight)
	font := p.headerFont()

	p.s.Save()
	p.s.ClipRect(band)
	p.s.FillRect(band, p.th.HeaderBackground)

	p.headerRows(vr, func(row int) {
		h := p.d.RowHeight(row)
		if h <= 0 {
			return
		}
		y := p.proj.CellY(row) + p.animY(row)

		tick := surface.Crisp(y + h)
		p.s.StrokeLine(0, tick, cfg.RowHeaderWidth, tick, p.th.HeaderBorder, 1)

		label := strconv.Itoa(row + 1)
		lw := p.m.MeasureWidth(label, font)
		p.s.FillText(label, (cfg.RowHeaderWidth-lw)/2, y+(h+font.Size)/2, font, p.th.HeaderText)
	})

	edge := surface.Crisp(cfg.RowHeaderWidth)
	p.s.StrokeLine(edge, band.Y, edge, band.Bottom(), p.th.HeaderBorder, 1)
	p.s.Restore()
}

// cornerChrome paints the select-all corner above the row headers.
func (p *painter) cornerChrome() {
	cfg := p.f.Config
	corner := core.NewRect(0, 0, cfg.RowHeaderWidth, cfg.ColHeaderHeight)
	p.s.FillRect(corner, p.th.HeaderBackground)
	bx := surface.Crisp(corner.Right())
	by := surface.Crisp(corner.Bottom())
	p.s.StrokeLine(bx, 0, bx, corner.Bottom(), p.th.HeaderBorder, 1)
	p.s.StrokeLine(0, by, corner.Right(), by, p.th.HeaderBorder, 1)
}

// separators marks the freeze seams across the whole canvas.
func (p *painter) separators() {
	if p.layout.FrozenCols > 0 {
		x := surface.Crisp(p.f.Config.RowHeaderWidth + p.layout.FrozenColsWidth)
		p.s.StrokeLine(x, 0, x, p.canvasH, p.th.HeaderBorder, 2)
	}
	if p.layout.FrozenRows > 0 {
		y := surface.Crisp(p.f.Config.ColHeaderHeight + p.layout.FrozenRowsHeight)
		p.s.StrokeLine(0, y, p.canvasW, y, p.th.HeaderBorder, 2)
	}
}
