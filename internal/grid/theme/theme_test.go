package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/virtgrid/virtgrid/internal/grid/core"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if th != Default() {
		t.Error("missing file should yield the default theme")
	}
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := `
background = "#202020"
grid_line = "not-a-color"

[header]
text = "rgb(10, 20, 30)"

[ants]
cut = "#0f0"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if th.Background != core.RGB(32, 32, 32) {
		t.Errorf("background override not applied: %v", th.Background)
	}
	if th.GridLine != Default().GridLine {
		t.Error("invalid color should keep the default")
	}
	if th.HeaderText != core.RGB(10, 20, 30) {
		t.Errorf("header text override not applied: %v", th.HeaderText)
	}
	if th.Highlight.AntsCut != core.RGB(0, 255, 0) {
		t.Errorf("short hex ants color not applied: %v", th.Highlight.AntsCut)
	}
	if th.HeaderBackground != Default().HeaderBackground {
		t.Error("untouched field should keep the default")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("background = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err == nil {
		t.Error("malformed TOML should return an error")
	}
	if th != Default() {
		t.Error("malformed TOML should still return usable defaults")
	}
}
