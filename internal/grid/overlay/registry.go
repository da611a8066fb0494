// Package overlay hosts extension-contributed render hooks.
//
// Extensions register a render closure under a region type with a
// priority. At frame time the registry runs the groups in type order, each
// group's closures in ascending priority, before any built-in highlight is
// drawn. The registry replaces the dynamic plugin-table lookup of a
// dynamically-typed host with a static type-keyed map.
package overlay

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/viewport"
)

// RegionType tags a class of grid regions, e.g. "chart" or "sparkline".
type RegionType string

// GridRegion is an extension-contributed region of the sheet, passed to
// the matching overlay renderers each frame.
type GridRegion struct {
	Type   RegionType
	Bounds core.CellRange
	Data   any
}

// Context carries everything an overlay renderer may draw with.
// The surface is already clipped to the cell area.
type Context struct {
	Surface   surface.Surface
	Projector *viewport.Projector
	Visible   core.VisibleRange
	CanvasW   float64
	CanvasH   float64

	// Regions holds the frame's regions matching the renderer's type.
	Regions []GridRegion
}

// RenderFunc draws one overlay pass.
type RenderFunc func(ctx *Context)

// registration is one registered renderer.
type registration struct {
	id       string
	typ      RegionType
	priority int
	render   RenderFunc
	seq      int
}

// Registry holds overlay registrations grouped by region type.
type Registry struct {
	mu   sync.RWMutex
	regs map[RegionType][]registration
	seq  int
}

// NewRegistry creates an empty overlay registry.
func NewRegistry() *Registry {
	return &Registry{regs: make(map[RegionType][]registration)}
}

// Register adds a renderer for a region type and returns its ID for later
// deregistration. Lower priorities render first.
func (r *Registry) Register(typ RegionType, priority int, fn RenderFunc) string {
	if fn == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.seq++
	r.regs[typ] = append(r.regs[typ], registration{
		id:       id,
		typ:      typ,
		priority: priority,
		render:   fn,
		seq:      r.seq,
	})
	return id
}

// Unregister removes a renderer by ID. Returns false if unknown.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for typ, regs := range r.regs {
		for i, reg := range regs {
			if reg.id == id {
				r.regs[typ] = append(regs[:i], regs[i+1:]...)
				if len(r.regs[typ]) == 0 {
					delete(r.regs, typ)
				}
				return true
			}
		}
	}
	return false
}

// Count returns the number of registrations across all types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, regs := range r.regs {
		n += len(regs)
	}
	return n
}

// RenderAll runs every registration: groups in region-type order, each
// group in ascending priority, ties in registration order. Each renderer
// sees only the frame regions of its own type.
func (r *Registry) RenderAll(ctx *Context, regions []GridRegion) {
	r.mu.RLock()
	types := make([]RegionType, 0, len(r.regs))
	for typ := range r.regs {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	ordered := make([]registration, 0)
	for _, typ := range types {
		group := append([]registration(nil), r.regs[typ]...)
		sort.Slice(group, func(i, j int) bool {
			if group[i].priority != group[j].priority {
				return group[i].priority < group[j].priority
			}
			return group[i].seq < group[j].seq
		})
		ordered = append(ordered, group...)
	}
	r.mu.RUnlock()

	byType := make(map[RegionType][]GridRegion)
	for _, reg := range regions {
		byType[reg.Type] = append(byType[reg.Type], reg)
	}

	for _, reg := range ordered {
		scoped := *ctx
		scoped.Regions = byType[reg.typ]
		reg.render(&scoped)
	}
}
