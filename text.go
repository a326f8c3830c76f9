package willowui

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// glyphDrawer is implemented by fonts the Scene knows how to draw.
type glyphDrawer interface {
	drawText(dst *ebiten.Image, s string, x, y float64, c Color)
}

// --- MonoFont ---

// MonoFont is a fixed-advance font. The zero-asset DebugFont matches the
// glyph grid of ebitenutil.DebugPrint, which is how it is drawn.
type MonoFont struct {
	Advance float64
	Height  float64
}

// DebugFont is the default font: Ebitengine's built-in debug glyphs.
var DebugFont = &MonoFont{Advance: 6, Height: 16}

// MeasureString returns the widest line times the advance and the line count
// times the height.
func (f *MonoFont) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > widest {
			widest = n
		}
	}
	return float64(widest) * f.Advance, float64(len(lines)) * f.Height
}

// LineHeight returns the glyph cell height.
func (f *MonoFont) LineHeight() float64 {
	return f.Height
}

// drawText ignores c: the debug glyphs are always white.
func (f *MonoFont) drawText(dst *ebiten.Image, s string, x, y float64, _ Color) {
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("willowui: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

func (f *TTFFont) drawText(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// --- Text layout ---

// TextLayout is the result of laying out a string: its total size and the
// lines it broke into.
type TextLayout struct {
	Size  Size
	Lines []string
}

// LayoutText breaks content into lines for font. Explicit newlines always
// break. With Wrap and a finite maxWidth, words are packed greedily; a single
// word wider than maxWidth gets a line of its own. The result depends only
// on the inputs.
func LayoutText(content string, font Font, maxWidth float64, wrap TextWrapping) TextLayout {
	if font == nil || content == "" {
		return TextLayout{}
	}
	wrapping := wrap == Wrap && maxWidth > 0 && !math.IsInf(maxWidth, 1) && !math.IsNaN(maxWidth)

	var lines []string
	for _, para := range strings.Split(content, "\n") {
		if !wrapping {
			lines = append(lines, para)
			continue
		}
		lines = wrapParagraph(lines, para, font, maxWidth)
	}

	var w float64
	for _, l := range lines {
		lw, _ := font.MeasureString(l)
		w = math.Max(w, lw)
	}
	return TextLayout{
		Size:  Size{w, float64(len(lines)) * font.LineHeight()},
		Lines: lines,
	}
}

func wrapParagraph(lines []string, para string, font Font, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}
	cur := ""
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		candidate := cur + " " + w
		if cw, _ := font.MeasureString(candidate); cw <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}

// --- TextBlock ---

// KindTextBlock is the kind of TextBlock.
var KindTextBlock = NewKind("TextBlock", KindElement)

var (
	// FontProperty is inherited so a container can set the font for its content.
	FontProperty = MustRegister[Font](KindElement, "Font", DebugFont, Inherits|AffectsMeasure, WithCoerce(func(_ *Element, f Font) Font {
		if f == nil {
			return DebugFont
		}
		return f
	}))
	// ForegroundProperty is the inherited text and glyph color.
	ForegroundProperty = MustRegister(KindElement, "Foreground", ColorWhite, Inherits|AffectsRender)

	TextProperty         = MustRegister(KindTextBlock, "Text", "", AffectsMeasure)
	TextWrappingProperty = MustRegister(KindTextBlock, "TextWrapping", NoWrap, AffectsMeasure)
	TextAlignProperty    = MustRegister(KindTextBlock, "TextAlign", TextAlignLeft, AffectsRender)
)

// TextBlock displays a run of text. It measures through LayoutText using its
// inherited Font and draws each line in its inherited Foreground.
type TextBlock struct {
	Element
	layout TextLayout
	font   Font
}

// NewTextBlock creates a text block showing content.
func NewTextBlock(name, content string) *TextBlock {
	t := &TextBlock{}
	t.Init(KindTextBlock, t, name)
	t.SetText(content)
	return t
}

// Text returns the displayed text.
func (t *TextBlock) Text() string { return GetValue(&t.Element, TextProperty) }

// SetText sets the displayed text.
func (t *TextBlock) SetText(s string) { SetValue(&t.Element, TextProperty, s) }

// SetWrapping sets the wrap mode.
func (t *TextBlock) SetWrapping(w TextWrapping) { SetValue(&t.Element, TextWrappingProperty, w) }

// SetAlign sets the horizontal alignment of each line.
func (t *TextBlock) SetAlign(a TextAlign) { SetValue(&t.Element, TextAlignProperty, a) }

// Lines returns the lines from the last measure. The returned slice MUST NOT be mutated by the caller.
func (t *TextBlock) Lines() []string { return t.layout.Lines }

// MeasureOverride lays the text out at the available width.
func (t *TextBlock) MeasureOverride(available Size) Size {
	t.font = GetValue(&t.Element, FontProperty)
	t.layout = LayoutText(t.Text(), t.font, available.Width, GetValue(&t.Element, TextWrappingProperty))
	return t.layout.Size
}

// Render draws each line at its aligned position.
func (t *TextBlock) Render(dc *DrawContext) {
	if t.font == nil || len(t.layout.Lines) == 0 {
		return
	}
	fg := GetValue(&t.Element, ForegroundProperty)
	align := GetValue(&t.Element, TextAlignProperty)
	width := dc.Bounds().Width
	lh := t.font.LineHeight()
	for i, line := range t.layout.Lines {
		x := 0.0
		if align != TextAlignLeft {
			lw, _ := t.font.MeasureString(line)
			x = width - lw
			if align == TextAlignCenter {
				x /= 2
			}
			x = nonNegative(x)
		}
		dc.DrawText(line, Vec2{x, float64(i) * lh}, t.font, fg)
	}
}
