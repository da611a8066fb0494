package surface

import (
	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/text"
)

// OpKind identifies a recorded drawing operation.
type OpKind string

const (
	OpClear      OpKind = "clear"
	OpFillRect   OpKind = "fill-rect"
	OpStrokeRect OpKind = "stroke-rect"
	OpStrokeLine OpKind = "stroke-line"
	OpSetDash    OpKind = "set-dash"
	OpFillText   OpKind = "fill-text"
	OpSave       OpKind = "save"
	OpRestore    OpKind = "restore"
	OpClip       OpKind = "clip"
	OpTranslate  OpKind = "translate"
	OpRotate     OpKind = "rotate"
)

// Op is one recorded drawing operation.
type Op struct {
	Kind  OpKind
	Rect  core.Rect
	Color core.Color
	Width float64

	X1, Y1, X2, Y2 float64

	Text string
	Font text.Font

	Dash       []float64
	DashOffset float64

	DX, DY float64
	Rad    float64
}

// Recorder is a Surface that captures every operation for inspection.
// It is the renderer's test double, in the spirit of a null backend.
type Recorder struct {
	W, H float64
	Ops  []Op

	measurer text.Measurer
	depth    int
}

// NewRecorder creates a recorder with the given canvas size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, measurer: text.RuneMeasurer{}}
}

// Size returns the recorder's canvas size.
func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// MeasureWidth approximates widths with the rune measurer.
func (r *Recorder) MeasureWidth(s string, font text.Font) float64 {
	return r.measurer.MeasureWidth(s, font)
}

func (r *Recorder) Clear(c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect core.Rect, c core.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: c, Width: width})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c core.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Width: width})
}

func (r *Recorder) SetLineDash(segments []float64, offset float64) {
	dash := append([]float64(nil), segments...)
	r.Ops = append(r.Ops, Op{Kind: OpSetDash, Dash: dash, DashOffset: offset})
}

func (r *Recorder) FillText(s string, x, y float64, font text.Font, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: s, X1: x, Y1: y, Font: font, Color: c})
}

func (r *Recorder) Save() {
	r.depth++
	r.Ops = append(r.Ops, Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.Ops = append(r.Ops, Op{Kind: OpRestore})
}

func (r *Recorder) ClipRect(rect core.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClip, Rect: rect})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, DX: dx, DY: dy})
}

func (r *Recorder) Rotate(rad float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRotate, Rad: rad})
}

// Depth returns the current save/restore nesting depth.
func (r *Recorder) Depth() int { return r.depth }

// Reset clears the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}

// CountKind returns how many recorded ops have the given kind.
func (r *Recorder) CountKind(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// FirstIndex returns the index of the first op of the given kind, or -1.
func (r *Recorder) FirstIndex(kind OpKind) int {
	for i, op := range r.Ops {
		if op.Kind == kind {
			return i
		}
	}
	return -1
}

// TextOps returns the recorded fill-text operations in order.
func (r *Recorder) TextOps() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFillText {
			out = append(out, op)
		}
	}
	return out
}
