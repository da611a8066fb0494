// Package main is a terminal viewer for exercising the grid renderer:
// a sample sheet with merges, styles, and freeze panes, scrolled with the
// arrow keys.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/dims"
	"github.com/virtgrid/virtgrid/internal/grid/hit"
	"github.com/virtgrid/virtgrid/internal/grid/render"
	"github.com/virtgrid/virtgrid/internal/grid/script"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/theme"
)

const scrollStep = 48

func main() {
	os.Exit(run())
}

func run() int {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	flag.Parse()

	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading theme: %v\n", err)
			return 1
		}
		th = loaded
	}

	session := render.NewSession(th)

	if *themePath != "" {
		w, err := theme.NewWatcher(*themePath, session.SetTheme)
		if err == nil {
			defer w.Close()
		}
	}

	// A Lua rule that flags negative amounts, to show the interceptor
	// path end to end.
	engine := script.NewEngine()
	defer engine.Close()
	if ic, err := engine.LoadInterceptor("negatives", `
return function(text, style, row, col)
	if string.sub(text, 1, 1) == "-" then
		return { bold = true, text_color = "#c62828" }
	end
	return {}
end
`); err == nil {
		session.RegisterInterceptor(ic)
	}

	term, err := surface.NewTerminal(8, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer term.Fini()
	term.EnableMouse()

	frame := sampleFrame()
	var dragOrigin *core.CellRef
	for {
		session.RenderFrame(term, frame)
		term.Show()

		switch ev := term.PollEvent().(type) {
		case *tcell.EventResize:
			continue
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			px, py := term.ToPixel(cx, cy)
			tester := newTester(frame)
			if ev.Buttons()&tcell.Button1 == 0 {
				dragOrigin = nil
				continue
			}
			if dragOrigin == nil {
				ref, ok := tester.CellAt(px, py)
				if !ok {
					continue
				}
				dragOrigin = &ref
				frame.Selection = &core.CellRange{
					StartRow: ref.Row, StartCol: ref.Col,
					EndRow: ref.Row, EndCol: ref.Col,
				}
				continue
			}
			ref, ok := tester.CellAtWithDrag(px, py, *dragOrigin)
			if !ok {
				continue
			}
			frame.Selection = &core.CellRange{
				StartRow: dragOrigin.Row, StartCol: dragOrigin.Col,
				EndRow: ref.Row, EndCol: ref.Col,
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				return 0
			case ev.Key() == tcell.KeyRight:
				frame.Viewport.ScrollX += scrollStep
			case ev.Key() == tcell.KeyLeft:
				frame.Viewport.ScrollX -= scrollStep
				if frame.Viewport.ScrollX < 0 {
					frame.Viewport.ScrollX = 0
				}
			case ev.Key() == tcell.KeyDown:
				frame.Viewport.ScrollY += scrollStep
			case ev.Key() == tcell.KeyUp:
				frame.Viewport.ScrollY -= scrollStep
				if frame.Viewport.ScrollY < 0 {
					frame.Viewport.ScrollY = 0
				}
			}
		}
	}
}

// newTester builds a hit tester against the frame's current scroll.
func newTester(f *render.Frame) *hit.Tester {
	d := dims.NewResolver(f.Config, f.Dimensions)
	return hit.NewTester(f.Viewport, f.Config, f.Freeze, d, hit.DefaultConfig())
}

// sampleFrame builds a small demonstration sheet: a merged title row, a
// styled header band, a few value rows, a frozen pane, and a selection.
func sampleFrame() *render.Frame {
	cells := core.CellDataMap{}
	put := func(row, col int, display string, styleIdx, rowSpan, colSpan int) {
		cells[core.CellRef{Row: row, Col: col}] = &core.CellData{
			Row: row, Col: col, Display: display,
			StyleIndex: styleIdx, RowSpan: rowSpan, ColSpan: colSpan,
		}
	}

	put(0, 0, "Quarterly Report", 1, 1, 4)
	for i, name := range []string{"Region", "Q1", "Q2", "Trend"} {
		put(1, i, name, 2, 0, 0)
	}
	put(2, 0, "North", 0, 0, 0)
	put(2, 1, "1250.00", 0, 0, 0)
	put(2, 2, "1430.50", 0, 0, 0)
	put(3, 0, "South", 0, 0, 0)
	put(3, 1, "-312.40", 0, 0, 0)
	put(3, 2, "#DIV/0!", 0, 0, 0)
	put(4, 0, "West", 0, 0, 0)
	put(4, 1, "980.00", 0, 0, 0)
	put(4, 2, "1021.75", 3, 0, 0)

	title := style.Default()
	title.Bold = true
	title.FontSize = 14
	title.TextAlign = style.AlignCenter
	title.BackgroundColor = core.RGB(232, 240, 254)

	header := style.Default()
	header.Bold = true
	header.BackgroundColor = core.RGB(245, 245, 245)
	header.BorderBottom = style.Border{Style: style.BorderMedium, Color: core.RGB(120, 120, 120)}

	total := style.Default()
	total.Underline = true
	total.BorderTop = style.Border{Style: style.BorderDouble, Color: core.ColorBlack}

	sel := core.CellRange{StartRow: 2, StartCol: 1, EndRow: 4, EndCol: 2}

	return &render.Frame{
		Config: core.GridConfig{
			TotalRows:         200,
			TotalCols:         50,
			DefaultCellWidth:  96,
			DefaultCellHeight: 16,
			RowHeaderWidth:    48,
			ColHeaderHeight:   16,
		},
		Freeze: core.FreezeConfig{Rows: 2, Cols: 1},
		Cells:  cells,
		Styles: map[int]*style.Data{
			1: &title,
			2: &header,
			3: &total,
		},
		Selection:          &sel,
		CurrentSheet:       "Report",
		FormulaSourceSheet: "Report",
	}
}
