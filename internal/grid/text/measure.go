// Package text lays out cell content: measurement, ellipsis truncation,
// word wrapping and rotation geometry.
package text

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Font identifies a measurable font configuration.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// String returns the canvas-style font string, e.g. "italic bold 11px system-ui".
func (f Font) String() string {
	var b strings.Builder
	if f.Italic {
		b.WriteString("italic ")
	}
	if f.Bold {
		b.WriteString("bold ")
	}
	fmt.Fprintf(&b, "%gpx %s", f.Size, f.Family)
	return b.String()
}

// Measurer measures rendered text width in pixels.
// Concrete drawing surfaces provide exact measurement; RuneMeasurer is the
// surface-independent approximation.
type Measurer interface {
	MeasureWidth(s string, font Font) float64
}

// RuneMeasurer approximates text width from display cell counts. Wide
// (CJK) characters count double; the per-cell advance is proportional to
// the font size.
type RuneMeasurer struct {
	// CellFactor is the advance of one display cell as a fraction of the
	// font size. Zero uses the default.
	CellFactor float64
}

// DefaultCellFactor approximates the average advance of proportional UI
// fonts rendered at typical spreadsheet sizes.
const DefaultCellFactor = 0.6

// MeasureWidth returns the approximate pixel width of s.
func (r RuneMeasurer) MeasureWidth(s string, font Font) float64 {
	if s == "" {
		return 0
	}
	factor := r.CellFactor
	if factor <= 0 {
		factor = DefaultCellFactor
	}
	cells := runewidth.StringWidth(s)
	w := float64(cells) * factor * font.Size
	if font.Bold {
		w *= 1.05
	}
	return w
}

// Graphemes splits s into user-perceived characters. Truncation and
// character-level wrap never split inside a cluster.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// CachingMeasurer memoizes width lookups of an underlying measurer, keyed
// by font string and text. It is the render session's reused measurement
// cache; it is not safe for concurrent use.
type CachingMeasurer struct {
	inner  Measurer
	widths map[string]float64
}

// NewCachingMeasurer wraps a measurer with memoization.
func NewCachingMeasurer(inner Measurer) *CachingMeasurer {
	return &CachingMeasurer{
		inner:  inner,
		widths: make(map[string]float64),
	}
}

// MeasureWidth returns a cached width, measuring on first use.
func (c *CachingMeasurer) MeasureWidth(s string, font Font) float64 {
	key := font.String() + "\x00" + s
	if w, ok := c.widths[key]; ok {
		return w
	}
	w := c.inner.MeasureWidth(s, font)
	c.widths[key] = w
	return w
}

// Reset discards the memoized widths.
func (c *CachingMeasurer) Reset() {
	c.widths = make(map[string]float64)
}

// Len returns the number of memoized entries.
func (c *CachingMeasurer) Len() int {
	return len(c.widths)
}
