package style

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/virtgrid/virtgrid/internal/grid/core"
)

// Color strings accepted: hex in 3/4/6/8 digit forms with or without '#',
// rgb()/rgba() functional notation, and a small named-color allow-list.
// Anything else is invalid and callers fall back to a theme default.

var (
	hexPattern  = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([01]?\.?\d*)\s*\)$`)
)

var namedColors = map[string]core.Color{
	"black":   core.RGB(0, 0, 0),
	"white":   core.RGB(255, 255, 255),
	"red":     core.RGB(255, 0, 0),
	"green":   core.RGB(0, 128, 0),
	"blue":    core.RGB(0, 0, 255),
	"yellow":  core.RGB(255, 255, 0),
	"orange":  core.RGB(255, 165, 0),
	"purple":  core.RGB(128, 0, 128),
	"gray":    core.RGB(128, 128, 128),
	"grey":    core.RGB(128, 128, 128),
	"cyan":    core.RGB(0, 255, 255),
	"magenta": core.RGB(255, 0, 255),
}

// ParseColor parses a color string. The second result is false for any
// string matching none of the accepted forms.
func ParseColor(s string) (core.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Color{}, false
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, true
	}

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		r, okR := parseChannel(m[1])
		g, okG := parseChannel(m[2])
		b, okB := parseChannel(m[3])
		if okR && okG && okB {
			return core.RGB(r, g, b), true
		}
		return core.Color{}, false
	}
	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		r, okR := parseChannel(m[1])
		g, okG := parseChannel(m[2])
		b, okB := parseChannel(m[3])
		a, err := strconv.ParseFloat(m[4], 64)
		if okR && okG && okB && err == nil && a >= 0 && a <= 1 {
			return core.RGBA(r, g, b, uint8(a*255+0.5)), true
		}
		return core.Color{}, false
	}

	return core.Color{}, false
}

// ParseColorOr parses a color string, returning fallback for invalid input.
func ParseColorOr(s string, fallback core.Color) core.Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}

// parseHex expands short hex forms and parses RGB(A) digits.
func parseHex(h string) (core.Color, bool) {
	switch len(h) {
	case 3, 4:
		var e strings.Builder
		for _, r := range h {
			e.WriteRune(r)
			e.WriteRune(r)
		}
		h = e.String()
	}

	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return core.Color{}, false
	}
	switch len(h) {
	case 6:
		return core.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
	case 8:
		return core.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
	default:
		return core.Color{}, false
	}
}

// parseChannel parses a 0-255 channel value.
func parseChannel(s string) (uint8, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// Blend mixes two colors in RGB space. t=0 yields a, t=1 yields b.
func Blend(a, b core.Color, t float64) core.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendRgb(cb, t)
	alpha := float64(a.A)*(1-t) + float64(b.A)*t
	return core.RGBA(uint8(m.R*255+0.5), uint8(m.G*255+0.5), uint8(m.B*255+0.5), uint8(alpha+0.5))
}

// Lighten moves a color toward white. Used for passive reference tints.
func Lighten(c core.Color, amount float64) core.Color {
	return Blend(c, core.ColorWhite, amount)
}
