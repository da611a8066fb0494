// Package theme holds the color scheme the renderer draws with, with an
// optional TOML file source and live reload.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/highlight"
	"github.com/virtgrid/virtgrid/internal/grid/style"
)

// Theme is the resolved color scheme for one renderer session.
type Theme struct {
	Background core.Color
	GridLine   core.Color

	HeaderBackground core.Color
	HeaderText       core.Color
	HeaderBorder     core.Color

	// ErrorText colors error literals like #DIV/0! under general
	// alignment.
	ErrorText core.Color

	Highlight highlight.Palette
}

// Default returns the stock light theme.
func Default() Theme {
	return Theme{
		Background: core.ColorWhite,
		GridLine:   core.RGB(224, 224, 224),

		HeaderBackground: core.RGB(245, 245, 245),
		HeaderText:       core.RGB(97, 97, 97),
		HeaderBorder:     core.RGB(208, 208, 208),

		ErrorText: core.RGB(198, 40, 40),

		Highlight: highlight.DefaultPalette(),
	}
}

// fileTheme is the TOML shape. Colors are strings in any form ParseColor
// accepts; empty or invalid values keep the default.
type fileTheme struct {
	Background string `toml:"background"`
	GridLine   string `toml:"grid_line"`

	Header struct {
		Background string `toml:"background"`
		Text       string `toml:"text"`
		Border     string `toml:"border"`
	} `toml:"header"`

	ErrorText string `toml:"error_text"`

	Selection struct {
		Fill   string `toml:"fill"`
		Border string `toml:"border"`
		Handle string `toml:"handle"`
	} `toml:"selection"`

	Ants struct {
		Copy string `toml:"copy"`
		Cut  string `toml:"cut"`
	} `toml:"ants"`
}

// Load reads a theme file and applies it over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Theme, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	var f fileTheme
	if err := toml.Unmarshal(data, &f); err != nil {
		return t, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	t.apply(f)
	return t, nil
}

// apply overlays parsed values onto the theme, keeping defaults for
// anything absent or unparseable.
func (t *Theme) apply(f fileTheme) {
	set := func(dst *core.Color, s string) {
		if s == "" {
			return
		}
		*dst = style.ParseColorOr(s, *dst)
	}

	set(&t.Background, f.Background)
	set(&t.GridLine, f.GridLine)
	set(&t.HeaderBackground, f.Header.Background)
	set(&t.HeaderText, f.Header.Text)
	set(&t.HeaderBorder, f.Header.Border)
	set(&t.ErrorText, f.ErrorText)

	set(&t.Highlight.SelectionFill, f.Selection.Fill)
	set(&t.Highlight.SelectionBorder, f.Selection.Border)
	set(&t.Highlight.FillHandle, f.Selection.Handle)
	set(&t.Highlight.AntsCopy, f.Ants.Copy)
	set(&t.Highlight.AntsCut, f.Ants.Cut)
}
