package style

import "regexp"

// Value classifiers used by "general" alignment: numbers align right,
// error literals center in the error color, everything else aligns left.

var (
	numericPattern = regexp.MustCompile(`^\s*[+-]?(\$\s*)?((\d{1,3}(,\d{3})*|\d+)(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*%?\s*$`)
	errorPattern   = regexp.MustCompile(`^#(DIV/0!|N/A|NAME\?|NULL!|NUM!|REF!|VALUE!|GETTING_DATA|ERROR!?)$`)
)

// IsNumericText returns true if the display text looks like a number,
// including thousands separators, leading currency, exponents and a
// trailing percent sign.
func IsNumericText(s string) bool {
	if s == "" {
		return false
	}
	return numericPattern.MatchString(s)
}

// IsErrorText returns true if the display text is a formula error literal.
func IsErrorText(s string) bool {
	return errorPattern.MatchString(s)
}

// ResolveAlign maps a style alignment and display text to a concrete
// alignment. Explicit style alignment always wins; general alignment
// resolves by content.
func ResolveAlign(a Align, text string) Align {
	if a != AlignGeneral {
		return a
	}
	switch {
	case IsErrorText(text):
		return AlignCenter
	case IsNumericText(text):
		return AlignRight
	default:
		return AlignLeft
	}
}
