package core

import "testing"

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 100, 50)
	b := NewRect(60, 20, 100, 100)

	got := a.Intersect(b)
	want := NewRect(60, 20, 40, 30)
	if !got.Equals(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 20, 10, 10)

	got := a.Intersect(b)
	if !got.IsEmpty() {
		t.Errorf("expected empty intersection, got %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Point{X: 30, Y: 30}) {
		t.Error("bottom-right corner is exclusive")
	}
	if r.Contains(Point{X: 9, Y: 15}) {
		t.Error("point left of rect should be outside")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	got := a.Union(b)
	want := NewRect(0, 0, 30, 15)
	if !got.Equals(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if !a.Union(Rect{}).Equals(a) {
		t.Error("union with empty rect should return original")
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 20, 100, 24)
	c := r.Center()
	if c.X != 60 || c.Y != 32 {
		t.Errorf("expected center (60,32), got (%v,%v)", c.X, c.Y)
	}
}
