// Package style resolves per-cell visual style: the flyweight style table,
// pluggable interceptor chain, value classifiers, and color validation.
package style

import "github.com/virtgrid/virtgrid/internal/grid/core"

// Align is the horizontal text alignment of a cell.
type Align uint8

const (
	// AlignGeneral resolves by content: numbers right, errors center,
	// everything else left.
	AlignGeneral Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// VAlign is the vertical text alignment of a cell.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// BorderStyle is the line style of one border edge.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderThick
	BorderDashed
	BorderDotted
	BorderDouble
)

// Border describes one edge of a cell.
type Border struct {
	Style BorderStyle
	Color core.Color
	// Width in pixels. Zero means derive from Style.
	Width float64
}

// IsVisible returns true if the edge draws anything.
func (b Border) IsVisible() bool {
	return b.Style != BorderNone
}

// EffectiveWidth returns the stroke width, deriving from the style when no
// explicit width is set.
func (b Border) EffectiveWidth() float64 {
	if b.Width > 0 {
		return b.Width
	}
	switch b.Style {
	case BorderMedium:
		return 2
	case BorderThick:
		return 3
	case BorderNone:
		return 0
	default:
		return 1
	}
}

// Data holds the visual attributes of one style table entry.
// Entries are immutable snapshots owned by the backend style table.
type Data struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool

	TextColor       core.Color
	BackgroundColor core.Color

	FontFamily string
	FontSize   float64

	TextAlign     Align
	VerticalAlign VAlign

	WrapText bool
	// TextRotation is degrees counter-clockwise, clamped to [-90, 90].
	TextRotation int

	// Indent levels for left-aligned content, ~8px each.
	Indent int

	BorderTop    Border
	BorderRight  Border
	BorderBottom Border
	BorderLeft   Border
}

// Default returns the hard default style used for index 0 and for any
// index the table cannot resolve.
func Default() Data {
	return Data{
		TextColor:       core.ColorBlack,
		BackgroundColor: core.ColorWhite,
		FontFamily:      "system-ui",
		FontSize:        11,
		TextAlign:       AlignGeneral,
		VerticalAlign:   VAlignMiddle,
	}
}

// IsDefault returns true if the style matches the hard default.
func (d Data) IsDefault() bool {
	return d == Default()
}

// HasVisibleBox returns true if an empty cell with this style still needs
// drawing: a non-default background or any visible border.
func (d Data) HasVisibleBox() bool {
	if !d.BackgroundColor.IsZero() && d.BackgroundColor != core.ColorWhite && !d.BackgroundColor.IsTransparent() {
		return true
	}
	return d.BorderTop.IsVisible() || d.BorderRight.IsVisible() ||
		d.BorderBottom.IsVisible() || d.BorderLeft.IsVisible()
}

// Rotated returns true if the cell content is drawn at an angle.
func (d Data) Rotated() bool {
	return d.TextRotation != 0
}

// Table is the indexed style lookup. Index 0 and unresolvable indexes fall
// back to the hard default.
type Table struct {
	styles map[int]*Data
	def    Data
}

// NewTable creates a table over a backend-owned style map. The map is
// borrowed, not copied.
func NewTable(styles map[int]*Data) *Table {
	return &Table{styles: styles, def: Default()}
}

// Resolve returns the style for an index, falling back to the default for
// index 0, negative indexes, and entries the map does not contain.
func (t *Table) Resolve(index int) Data {
	if t == nil || index <= 0 {
		return Default()
	}
	if s, ok := t.styles[index]; ok && s != nil {
		d := *s
		if d.FontSize <= 0 || d.FontSize > 409 {
			d.FontSize = t.def.FontSize
		}
		if d.TextRotation > 90 {
			d.TextRotation = 90
		}
		if d.TextRotation < -90 {
			d.TextRotation = -90
		}
		return d
	}
	return Default()
}
