package willowui

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default foreground.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent draws nothing. Used as the default background.
var ColorTransparent = Color{}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for points, offsets, and scroll positions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Size is a width/height pair. Either axis may be +Inf when used as an
// available size during Measure.
type Size struct {
	Width, Height float64
}

// Infinite is the available size used when a parent places no bound on either axis.
var Infinite = Size{math.Inf(1), math.Inf(1)}

// IsEmpty reports whether either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// clamped returns s with negative and NaN dimensions replaced by zero.
// Infinite dimensions are preserved.
func (s Size) clamped() Size {
	return Size{nonNegative(s.Width), nonNegative(s.Height)}
}

// deflate shrinks s by the thickness, keeping both axes non-negative.
func (s Size) deflate(t Thickness) Size {
	return Size{
		nonNegative(s.Width - t.Horizontal()),
		nonNegative(s.Height - t.Vertical()),
	}
}

// inflate grows s by the thickness.
func (s Size) inflate(t Thickness) Size {
	return Size{s.Width + t.Horizontal(), s.Height + t.Vertical()}
}

// min returns the per-axis minimum of s and o.
func (s Size) min(o Size) Size {
	return Size{math.Min(s.Width, o.Width), math.Min(s.Height, o.Height)}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect builds a rectangle from a location and size.
func NewRect(at Vec2, size Size) Rect {
	return Rect{at.X, at.Y, size.Width, size.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlapping region of r and other, or a zero-size
// rectangle at r's origin when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())
	if x1 < x0 || y1 < y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Location returns the top-left corner.
func (r Rect) Location() Vec2 {
	return Vec2{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Right returns X + Width.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Offset returns r translated by v.
func (r Rect) Offset(v Vec2) Rect {
	return Rect{r.X + v.X, r.Y + v.Y, r.Width, r.Height}
}

// deflate shrinks r inward by the thickness, keeping dimensions non-negative.
func (r Rect) deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  nonNegative(r.Width - t.Horizontal()),
		Height: nonNegative(r.Height - t.Vertical()),
	}
}

// clamped returns r with negative or NaN dimensions replaced by zero.
func (r Rect) clamped() Rect {
	r.Width = nonNegative(r.Width)
	r.Height = nonNegative(r.Height)
	return r
}

// Thickness describes the four edges of a margin, padding or border.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns a Thickness with all four edges set to v.
func Uniform(v float64) Thickness {
	return Thickness{v, v, v, v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Orientation selects the stacking axis of a panel or scroll bar.
type Orientation uint8

const (
	Vertical   Orientation = iota // children flow top to bottom
	Horizontal                    // children flow left to right
)

// Visibility controls whether an element renders and whether it takes layout space.
type Visibility uint8

const (
	Visible   Visibility = iota // rendered and laid out
	Hidden                      // laid out but not rendered
	Collapsed                   // neither rendered nor given layout space
)

// HorizontalAlignment positions an element inside a wider layout slot.
type HorizontalAlignment uint8

const (
	AlignStretch HorizontalAlignment = iota // fill the slot (default)
	AlignLeft                               // hug the left edge
	AlignCenter                             // center horizontally
	AlignRight                              // hug the right edge
)

// VerticalAlignment positions an element inside a taller layout slot.
type VerticalAlignment uint8

const (
	AlignFill   VerticalAlignment = iota // fill the slot (default)
	AlignTop                             // hug the top edge
	AlignMiddle                          // center vertically
	AlignBottom                          // hug the bottom edge
)

// TextWrapping selects whether text breaks at the available width.
type TextWrapping uint8

const (
	NoWrap TextWrapping = iota // single line per explicit newline
	Wrap                       // greedy word wrap at the available width
)

// TextAlign controls horizontal text alignment within a TextBlock.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)
