package willowui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
debug = true
log_level = "DEBUG"
max_layout_passes = 4
clear_color = [0.0, 0.5, 1.0]
foreground = [1.0, 0.0, 0.0, 0.5]
font_path = " assets/ui.ttf "
font_size = 18.0
scroll_line_size = 24.0
toolbar_spacing = 0.0
`))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug || cfg.LogLevel != "debug" || cfg.MaxLayoutPasses != 4 {
		t.Errorf("scalars = %+v", cfg)
	}
	if !slices.Equal(cfg.ClearColor, []float64{0, 0.5, 1}) || !slices.Equal(cfg.Foreground, []float64{1, 0, 0, 0.5}) {
		t.Errorf("colors = %v / %v", cfg.ClearColor, cfg.Foreground)
	}
	if cfg.FontPath != "assets/ui.ttf" || cfg.FontSize != 18 {
		t.Errorf("font = %q %v", cfg.FontPath, cfg.FontSize)
	}
	if cfg.ScrollLineSize != 24 || cfg.ToolBarSpacing != 0 {
		t.Errorf("sizes = %v %v", cfg.ScrollLineSize, cfg.ToolBarSpacing)
	}
}

func TestParseConfigFallsBack(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
log_level = "loud"
max_layout_passes = 0
clear_color = [2.0, 0.0, 0.0]
foreground = [1.0]
font_size = -1.0
scroll_line_size = 0.0
toolbar_spacing = -3.0
`))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.LogLevel != def.LogLevel || cfg.MaxLayoutPasses != def.MaxLayoutPasses {
		t.Errorf("scalars = %+v", cfg)
	}
	if !slices.Equal(cfg.ClearColor, def.ClearColor) || !slices.Equal(cfg.Foreground, def.Foreground) {
		t.Errorf("colors = %v / %v", cfg.ClearColor, cfg.Foreground)
	}
	if cfg.FontSize != def.FontSize || cfg.ScrollLineSize != def.ScrollLineSize || cfg.ToolBarSpacing != def.ToolBarSpacing {
		t.Errorf("sizes = %+v", cfg)
	}
}

func TestParseConfigEmptyIsDefault(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" || cfg.MaxLayoutPasses != DefaultMaxLayoutPasses || cfg.ScrollLineSize != DefaultScrollLineSize {
		t.Errorf("empty config = %+v", cfg)
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte(`debug = [`))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.toml")
	if err := os.WriteFile(path, []byte("toolbar_spacing = 9.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ToolBarSpacing != 9 {
		t.Errorf("spacing = %v, want 9", cfg.ToolBarSpacing)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestColorFrom(t *testing.T) {
	tests := []struct {
		in   []float64
		want Color
		ok   bool
	}{
		{[]float64{1, 0, 0}, Color{1, 0, 0, 1}, true},
		{[]float64{0, 1, 0, 0.5}, Color{0, 1, 0, 0.5}, true},
		{[]float64{1, 1}, Color{}, false},
		{[]float64{1, 1, 1, 1, 1}, Color{}, false},
		{[]float64{-0.1, 0, 0}, Color{}, false},
		{nil, Color{}, false},
	}
	for _, tt := range tests {
		got, ok := colorFrom(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("colorFrom(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyConfig(t *testing.T) {
	captureLog(t, log.InfoLevel)
	s := NewScene()
	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	cfg.MaxLayoutPasses = 3
	cfg.ClearColor = []float64{0, 0, 0}
	cfg.Foreground = []float64{0, 1, 0, 1}
	cfg.ScrollLineSize = 30
	cfg.ToolBarSpacing = 7
	if err := s.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}

	if s.LayoutManager().MaxPasses != 3 {
		t.Errorf("MaxPasses = %d", s.LayoutManager().MaxPasses)
	}
	if s.ClearColor != (Color{0, 0, 0, 1}) {
		t.Errorf("ClearColor = %v", s.ClearColor)
	}
	if Logger().GetLevel() != log.ErrorLevel {
		t.Errorf("log level = %v", Logger().GetLevel())
	}

	label := NewTextBlock("label", "x")
	addAll(t, s.Root(), label)
	if GetValue(&label.Element, ForegroundProperty) != (Color{0, 1, 0, 1}) {
		t.Error("foreground not inherited from the root")
	}
	if GetValue(&label.Element, ScrollLineSizeProperty) != 30 {
		t.Error("scroll line size not inherited from the root")
	}
	if got := s.NewToolBar("tb").Items().Spacing(); got != 7 {
		t.Errorf("toolbar spacing = %v, want 7", got)
	}
}

func TestApplyConfigMissingFont(t *testing.T) {
	captureLog(t, log.InfoLevel)
	s := NewScene()
	cfg := DefaultConfig()
	cfg.FontPath = filepath.Join(t.TempDir(), "none.ttf")
	err := s.ApplyConfig(cfg)
	if err == nil || !strings.Contains(err.Error(), "read font") {
		t.Errorf("err = %v", err)
	}
}
