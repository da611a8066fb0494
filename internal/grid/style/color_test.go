package style

import (
	"testing"

	"github.com/virtgrid/virtgrid/internal/grid/core"
)

func TestParseColorHexForms(t *testing.T) {
	cases := []struct {
		in   string
		want core.Color
	}{
		{"#fff", core.RGB(255, 255, 255)},
		{"fff", core.RGB(255, 255, 255)},
		{"#f00", core.RGB(255, 0, 0)},
		{"#f008", core.RGBA(255, 0, 0, 136)},
		{"#336699", core.RGB(51, 102, 153)},
		{"336699", core.RGB(51, 102, 153)},
		{"#33669980", core.RGBA(51, 102, 153, 128)},
	}
	for _, tc := range cases {
		got, ok := ParseColor(tc.in)
		if !ok {
			t.Errorf("%q should parse", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestParseColorFunctional(t *testing.T) {
	got, ok := ParseColor("rgb(10, 20, 30)")
	if !ok || got != core.RGB(10, 20, 30) {
		t.Errorf("rgb() parse failed: %v %v", got, ok)
	}

	got, ok = ParseColor("rgba(10, 20, 30, 0.5)")
	if !ok || got != core.RGBA(10, 20, 30, 128) {
		t.Errorf("rgba() parse failed: %v %v", got, ok)
	}
}

func TestParseColorNamed(t *testing.T) {
	got, ok := ParseColor("Red")
	if !ok || got != core.RGB(255, 0, 0) {
		t.Errorf("named color parse failed: %v %v", got, ok)
	}
}

func TestParseColorInvalid(t *testing.T) {
	invalid := []string{"", "nope", "#12345", "#zzz", "rgb(300,0,0)", "rgba(0,0,0,2)", "rgb(1,2)"}
	for _, s := range invalid {
		if _, ok := ParseColor(s); ok {
			t.Errorf("%q should not parse", s)
		}
	}
}

func TestParseColorOrFallback(t *testing.T) {
	fallback := core.RGB(1, 2, 3)
	if got := ParseColorOr("not-a-color", fallback); got != fallback {
		t.Errorf("expected fallback, got %v", got)
	}
	if got := ParseColorOr("#000", fallback); got != core.ColorBlack {
		t.Errorf("valid color should not use fallback, got %v", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := core.RGB(0, 0, 0)
	b := core.RGB(255, 255, 255)

	if got := Blend(a, b, 0); got != a {
		t.Errorf("t=0 should return first color, got %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("t=1 should return second color, got %v", got)
	}

	mid := Blend(a, b, 0.5)
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("midpoint should be near gray, got %v", mid)
	}
}
