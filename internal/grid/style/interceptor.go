package style

import "github.com/virtgrid/virtgrid/internal/grid/core"

// Interceptor overrides a cell's effective style at render time, e.g. for
// conditional formatting. It receives the display text, the base style and
// the cell position, and returns the adjusted style. Interceptors may
// change color, weight, decoration and font but nothing that moves text:
// alignment, borders, wrapping, rotation and indent are restored from the
// base after every call.
type Interceptor func(text string, base Data, ref core.CellRef) Data

// Chain applies interceptors in registration order.
type Chain struct {
	interceptors []Interceptor
}

// NewChain creates an empty interceptor chain.
func NewChain() *Chain {
	return &Chain{}
}

// Register appends an interceptor. First registered is first applied.
func (c *Chain) Register(i Interceptor) {
	if i == nil {
		return
	}
	c.interceptors = append(c.interceptors, i)
}

// Len returns the number of registered interceptors.
func (c *Chain) Len() int {
	return len(c.interceptors)
}

// Apply runs the chain over a base style. Alignment, border, wrap,
// rotation and indent fields are pinned to the base regardless of what
// interceptors return.
func (c *Chain) Apply(text string, base Data, ref core.CellRef) Data {
	if c == nil || len(c.interceptors) == 0 {
		return base
	}

	eff := base
	for _, in := range c.interceptors {
		next := in(text, eff, ref)

		// Locked fields.
		next.TextAlign = eff.TextAlign
		next.VerticalAlign = eff.VerticalAlign
		next.BorderTop = eff.BorderTop
		next.BorderRight = eff.BorderRight
		next.BorderBottom = eff.BorderBottom
		next.BorderLeft = eff.BorderLeft
		next.WrapText = eff.WrapText
		next.TextRotation = eff.TextRotation
		next.Indent = eff.Indent

		eff = next
	}
	return eff
}
