package text

import (
	"math"
	"strings"
)

// Ellipsis is appended to truncated cell text.
const Ellipsis = "…"

// LineHeightFactor scales font size to line height for wrapped text.
const LineHeightFactor = 1.2

// LineHeight returns the wrapped-line advance for a font.
func LineHeight(font Font) float64 {
	return font.Size * LineHeightFactor
}

// Truncate fits s into maxW pixels, replacing the overflow with an
// ellipsis. The longest fitting prefix is found by binary search over
// grapheme clusters. Returns "" if not even the ellipsis fits.
func Truncate(m Measurer, s string, font Font, maxW float64) string {
	if s == "" || maxW <= 0 {
		return ""
	}
	if m.MeasureWidth(s, font) <= maxW {
		return s
	}

	clusters := Graphemes(s)

	// Binary search the longest prefix whose width, plus the ellipsis,
	// still fits.
	lo, hi := 0, len(clusters)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		prefix := strings.Join(clusters[:mid], "") + Ellipsis
		if m.MeasureWidth(prefix, font) <= maxW {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		if m.MeasureWidth(Ellipsis, font) <= maxW {
			return Ellipsis
		}
		return ""
	}
	return strings.Join(clusters[:lo], "") + Ellipsis
}

// Wrap breaks s into lines no wider than maxW. Breaks happen at word
// boundaries first; a single word wider than maxW falls back to
// grapheme-level breaking.
func Wrap(m Measurer, s string, font Font, maxW float64) []string {
	if s == "" {
		return nil
	}
	if maxW <= 0 || m.MeasureWidth(s, font) <= maxW {
		return []string{s}
	}

	var lines []string
	var current string

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.MeasureWidth(candidate, font) <= maxW {
			current = candidate
			continue
		}
		flush()

		if m.MeasureWidth(word, font) <= maxW {
			current = word
			continue
		}

		// Over-wide single word: break between grapheme clusters.
		for _, part := range breakWord(m, word, font, maxW) {
			lines = append(lines, part)
		}
		if len(lines) > 0 {
			// Continue filling the last fragment.
			current = lines[len(lines)-1]
			lines = lines[:len(lines)-1]
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{s}
	}
	return lines
}

// breakWord splits one over-wide word into maximal fitting fragments.
func breakWord(m Measurer, word string, font Font, maxW float64) []string {
	var parts []string
	var current string
	for _, g := range Graphemes(word) {
		next := current + g
		if current != "" && m.MeasureWidth(next, font) > maxW {
			parts = append(parts, current)
			current = g
			continue
		}
		current = next
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// VerticalOffset returns the Y of the first line's top inside a cell of
// height cellH for a block of lineCount wrapped lines.
func VerticalOffset(valignTop, valignBottom bool, cellH float64, lineCount int, font Font) float64 {
	block := float64(lineCount) * LineHeight(font)
	switch {
	case valignTop:
		return 0
	case valignBottom:
		return cellH - block
	default:
		return (cellH - block) / 2
	}
}

// RotationRad converts a rotation in degrees counter-clockwise to the
// clockwise radians used by canvas transforms.
func RotationRad(degrees int) float64 {
	return -float64(degrees) * math.Pi / 180
}

// RotatedMaxWidth returns the truncation width available to rotated text:
// ±90 degree text runs along the cell height; intermediate angles get the
// diagonal extent of the cell.
func RotatedMaxWidth(degrees int, cellW, cellH float64) float64 {
	if degrees == 90 || degrees == -90 {
		return cellH
	}
	rad := math.Abs(float64(degrees)) * math.Pi / 180
	w := cellW*math.Cos(rad) + cellH*math.Sin(rad)
	return w
}
