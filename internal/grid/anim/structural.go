// Package anim computes draw-time coordinate offsets for structural edits.
//
// Inserting or deleting rows/columns animates by shifting every index at
// or after the change point, with the shift easing to zero as progress
// reaches one. Only one structural animation is active at a time; the
// frame driver owns the clock and clears the state after the final frame.
package anim

// Axis selects the animated dimension.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// Direction is the structural edit kind.
type Direction uint8

const (
	DirInsert Direction = iota
	DirDelete
)

// Structural is the state of one in-flight insert/delete animation.
type Structural struct {
	Axis       Axis
	Direction  Direction
	Index      int
	Count      int
	TargetSize float64

	progress float64
}

// easeOutCubic decelerates toward the end of the animation.
func easeOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// SetProgress advances the animation. Progress is clamped to [0, 1] and
// never moves backward.
func (s *Structural) SetProgress(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	if p > s.progress {
		s.progress = p
	}
}

// Progress returns the current progress in [0, 1].
func (s *Structural) Progress() float64 {
	return s.progress
}

// Done returns true once progress has reached one; the caller clears the
// animation and issues a final static redraw.
func (s *Structural) Done() bool {
	return s.progress >= 1
}

// Offset returns the current pixel shift for affected indexes.
// Insertions shift negative (content slides in from before its final
// position), deletions positive. Magnitude strictly decreases to zero.
func (s *Structural) Offset() float64 {
	magnitude := (1 - easeOutCubic(s.progress)) * s.TargetSize * float64(s.Count)
	if s.Direction == DirInsert {
		return -magnitude
	}
	return magnitude
}

// OffsetAt returns the shift to apply to a specific index on a specific
// axis. Indexes before the change point never move.
func (s *Structural) OffsetAt(axis Axis, index int) float64 {
	if s == nil || axis != s.Axis || index < s.Index {
		return 0
	}
	return s.Offset()
}
