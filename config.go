package willowui

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds host-level settings, usually read from a TOML file:
//
//	debug = true
//	log_level = "debug"
//	max_layout_passes = 8
//	clear_color = [0.12, 0.12, 0.16, 1.0]
//	foreground = [1.0, 1.0, 1.0, 1.0]
//	font_path = "assets/Inter.ttf"
//	font_size = 14.0
//	scroll_line_size = 16.0
//	toolbar_spacing = 4.0
type Config struct {
	Debug           bool      `toml:"debug"`
	LogLevel        string    `toml:"log_level"`
	MaxLayoutPasses int       `toml:"max_layout_passes"`
	ClearColor      []float64 `toml:"clear_color"`
	Foreground      []float64 `toml:"foreground"`
	FontPath        string    `toml:"font_path"`
	FontSize        float64   `toml:"font_size"`
	ScrollLineSize  float64   `toml:"scroll_line_size"`
	ToolBarSpacing  float64   `toml:"toolbar_spacing"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "warn",
		MaxLayoutPasses: DefaultMaxLayoutPasses,
		ClearColor:      []float64{0.118, 0.118, 0.157, 1},
		Foreground:      []float64{1, 1, 1, 1},
		FontSize:        14,
		ScrollLineSize:  DefaultScrollLineSize,
		ToolBarSpacing:  4,
	}
}

// ParseConfig decodes TOML data over the defaults. Malformed TOML is an
// error; out-of-range values fall back to their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	return normalizeConfig(cfg), nil
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return normalizeConfig(cfg), nil
}

func normalizeConfig(c Config) Config {
	out := DefaultConfig()
	out.Debug = c.Debug
	if _, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel))); err == nil {
		out.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	}
	if c.MaxLayoutPasses >= 1 {
		out.MaxLayoutPasses = c.MaxLayoutPasses
	}
	if _, ok := colorFrom(c.ClearColor); ok {
		out.ClearColor = c.ClearColor
	}
	if _, ok := colorFrom(c.Foreground); ok {
		out.Foreground = c.Foreground
	}
	out.FontPath = strings.TrimSpace(c.FontPath)
	if c.FontSize > 0 && !math.IsInf(c.FontSize, 1) {
		out.FontSize = c.FontSize
	}
	if c.ScrollLineSize > 0 && !math.IsInf(c.ScrollLineSize, 1) {
		out.ScrollLineSize = c.ScrollLineSize
	}
	if c.ToolBarSpacing >= 0 && !math.IsInf(c.ToolBarSpacing, 1) {
		out.ToolBarSpacing = c.ToolBarSpacing
	}
	return out
}

// colorFrom converts an [r, g, b] or [r, g, b, a] list to a Color.
func colorFrom(v []float64) (Color, bool) {
	if len(v) != 3 && len(v) != 4 {
		return Color{}, false
	}
	for _, x := range v {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return Color{}, false
		}
	}
	c := Color{v[0], v[1], v[2], 1}
	if len(v) == 4 {
		c.A = v[3]
	}
	return c, true
}

// ApplyConfig applies cfg to the scene: debug mode and log level, the layout
// pass cap, the clear color, and the root's inherited foreground, font and
// scroll line size. The font file is read only when FontPath is set.
func (s *Scene) ApplyConfig(cfg Config) error {
	cfg = normalizeConfig(cfg)
	s.config = cfg

	s.SetDebugMode(cfg.Debug)
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	s.layout.MaxPasses = cfg.MaxLayoutPasses
	s.ClearColor, _ = colorFrom(cfg.ClearColor)

	root := &s.root.Element
	fg, _ := colorFrom(cfg.Foreground)
	SetValue(root, ForegroundProperty, fg)
	SetValue(root, ScrollLineSizeProperty, cfg.ScrollLineSize)

	if cfg.FontPath == "" {
		return nil
	}
	data, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	font, err := LoadTTFFont(data, cfg.FontSize)
	if err != nil {
		return err
	}
	SetValue[Font](root, FontProperty, font)
	return nil
}

// Config returns the settings last applied with ApplyConfig.
func (s *Scene) Config() Config {
	return s.config
}

// NewToolBar creates a toolbar with the configured item spacing.
func (s *Scene) NewToolBar(name string) *ToolBar {
	return NewToolBar(name, s.config.ToolBarSpacing)
}
