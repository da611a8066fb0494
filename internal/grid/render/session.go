// Package render produces complete frames: cell content, merge-aware grid
// lines, freeze-pane zones, highlights, and header chrome, in a fixed
// z-order over an abstract surface.
package render

import (
	"sync"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/overlay"
	"github.com/virtgrid/virtgrid/internal/grid/style"
	"github.com/virtgrid/virtgrid/internal/grid/surface"
	"github.com/virtgrid/virtgrid/internal/grid/text"
	"github.com/virtgrid/virtgrid/internal/grid/theme"
)

// DecorationContext is what a cell decoration hook may draw with. The
// surface is already clipped to the cell's zone; the rect is the cell's
// merged bounding box.
type DecorationContext struct {
	Surface surface.Surface
	Cell    core.CellRef
	Rect    core.Rect
	Style   style.Data

	// Data is the snapshot cell, nil for an absent cell.
	Data *core.CellData
}

// Decoration draws extra per-cell content, e.g. a sparkline. Hooks run
// after background and borders, before text.
type Decoration func(ctx *DecorationContext)

// Session holds the state that survives across frames: the measurement
// cache, theme, interceptor and decoration registrations, the overlay
// registry, and per-sheet saved selections. Rendering itself is
// synchronous and must be serialized by the caller; the session's own
// registries are safe for concurrent registration.
type Session struct {
	measurer *text.CachingMeasurer
	chain    *style.Chain
	overlays *overlay.Registry

	mu          sync.RWMutex
	theme       theme.Theme
	decorations []Decoration
	selections  map[string]core.CellRange
}

// NewSession creates a session with the given theme.
func NewSession(th theme.Theme) *Session {
	return &Session{
		measurer:   text.NewCachingMeasurer(text.RuneMeasurer{}),
		chain:      style.NewChain(),
		overlays:   overlay.NewRegistry(),
		theme:      th,
		selections: make(map[string]core.CellRange),
	}
}

// Theme returns the active theme.
func (s *Session) Theme() theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme swaps the active theme; the next frame uses it. Suitable as a
// theme.Watcher callback.
func (s *Session) SetTheme(th theme.Theme) {
	s.mu.Lock()
	s.theme = th
	s.mu.Unlock()
}

// RegisterInterceptor appends a style interceptor. Interceptors run in
// registration order and may not change alignment or borders.
func (s *Session) RegisterInterceptor(i style.Interceptor) {
	s.chain.Register(i)
}

// RegisterDecoration appends a cell decoration hook.
func (s *Session) RegisterDecoration(d Decoration) {
	s.mu.Lock()
	s.decorations = append(s.decorations, d)
	s.mu.Unlock()
}

// Overlays exposes the extension overlay registry.
func (s *Session) Overlays() *overlay.Registry {
	return s.overlays
}

// SaveSelection remembers the selection for a sheet, so switching back
// restores it.
func (s *Session) SaveSelection(sheet string, sel core.CellRange) {
	s.mu.Lock()
	s.selections[sheet] = sel
	s.mu.Unlock()
}

// SavedSelection returns the remembered selection for a sheet.
func (s *Session) SavedSelection(sheet string) (core.CellRange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[sheet]
	return sel, ok
}

// ResetMeasureCache drops memoized text measurements, e.g. after a font
// change.
func (s *Session) ResetMeasureCache() {
	s.measurer.Reset()
}

func (s *Session) snapshotDecorations() []Decoration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decorations
}
