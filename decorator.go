package willowui

import (
	"math"
)

var (
	KindDecorator = NewKind("Decorator", KindElement)
	KindBorder    = NewKind("Border", KindDecorator)
)

var (
	// PaddingProperty is space between a Border's edge and its child.
	PaddingProperty = MustRegister(KindBorder, "Padding", Thickness{}, AffectsMeasure, WithCoerce(coerceThickness))
	// BorderThicknessProperty is the stroke width of each edge.
	BorderThicknessProperty = MustRegister(KindBorder, "BorderThickness", Thickness{}, AffectsMeasure, WithCoerce(coerceThickness))
	// BorderBrushProperty is the stroke color.
	BorderBrushProperty = MustRegister(KindBorder, "BorderBrush", ColorTransparent, AffectsRender)
)

// Decorator wraps a single child and passes layout straight through: its
// desired size is the child's, and the child receives the whole box.
type Decorator struct {
	Element
	child *Element
}

// NewDecorator creates an empty decorator.
func NewDecorator(name string) *Decorator {
	d := &Decorator{}
	d.Init(KindDecorator, d, name)
	return d
}

// Child returns the decorated child, or nil.
func (d *Decorator) Child() *Element {
	return d.child
}

// SetChild replaces the child. The new child becomes both a logical and a
// visual child. nil removes the current child.
func (d *Decorator) SetChild(child Visual) error {
	return d.setChild(child, true)
}

// setChild replaces the child; when logical is false the decorator only hosts
// the child visually and its logical owner is left to the caller.
func (d *Decorator) setChild(child Visual, logical bool) error {
	var c *Element
	if child != nil {
		c = childBase(child)
		if c == d.child {
			return nil
		}
		if err := d.checkVisualChild(c); err != nil {
			return err
		}
		if logical {
			if err := d.checkLogicalChild(c); err != nil {
				return err
			}
		}
	}
	if old := d.child; old != nil {
		d.RemoveVisualChild(old)
		if old.logicalParent == &d.Element {
			d.RemoveLogicalChild(old)
		}
		d.child = nil
	}
	if c == nil {
		return nil
	}
	if logical {
		if err := d.AddLogicalChild(c); err != nil {
			return err
		}
	}
	if err := d.AddVisualChild(c); err != nil {
		return err
	}
	d.child = c
	return nil
}

// MeasureOverride returns the child's desired size, or zero without a child.
func (d *Decorator) MeasureOverride(available Size) Size {
	if d.child == nil {
		return Size{}
	}
	return d.child.Measure(available)
}

// ArrangeOverride gives the child the entire box.
func (d *Decorator) ArrangeOverride(final Size) {
	if d.child != nil {
		d.child.Arrange(Rect{Width: final.Width, Height: final.Height})
	}
}

// Border decorates its child with padding, a background and an edge stroke.
type Border struct {
	Decorator
}

// NewBorder creates an empty border.
func NewBorder(name string) *Border {
	b := &Border{}
	b.Init(KindBorder, b, name)
	return b
}

// SetPadding sets the inner padding.
func (b *Border) SetPadding(t Thickness) { SetValue(&b.Element, PaddingProperty, t) }

// SetBorderThickness sets the edge widths.
func (b *Border) SetBorderThickness(t Thickness) { SetValue(&b.Element, BorderThicknessProperty, t) }

// SetBorderBrush sets the edge color.
func (b *Border) SetBorderBrush(c Color) { SetValue(&b.Element, BorderBrushProperty, c) }

func (b *Border) chrome() Thickness {
	p := GetValue(&b.Element, PaddingProperty)
	t := GetValue(&b.Element, BorderThicknessProperty)
	return Thickness{p.Left + t.Left, p.Top + t.Top, p.Right + t.Right, p.Bottom + t.Bottom}
}

// MeasureOverride measures the child inside the padding and border and adds
// them back.
func (b *Border) MeasureOverride(available Size) Size {
	ch := b.chrome()
	var s Size
	if b.child != nil {
		s = b.child.Measure(available.deflate(ch))
	}
	return s.inflate(ch)
}

// ArrangeOverride gives the child the box minus padding and border.
func (b *Border) ArrangeOverride(final Size) {
	if b.child != nil {
		b.child.Arrange(Rect{Width: final.Width, Height: final.Height}.deflate(b.chrome()))
	}
}

// Render fills the background and strokes each non-zero edge.
func (b *Border) Render(dc *DrawContext) {
	r := dc.Bounds()
	if bg := GetValue(&b.Element, BackgroundProperty); bg.A > 0 {
		dc.FillRect(r, bg)
	}
	brush := GetValue(&b.Element, BorderBrushProperty)
	t := GetValue(&b.Element, BorderThicknessProperty)
	if brush.A == 0 {
		return
	}
	if t.Top > 0 {
		dc.FillRect(Rect{r.X, r.Y, r.Width, math.Min(t.Top, r.Height)}, brush)
	}
	if t.Bottom > 0 {
		dc.FillRect(Rect{r.X, r.Bottom() - math.Min(t.Bottom, r.Height), r.Width, math.Min(t.Bottom, r.Height)}, brush)
	}
	if t.Left > 0 {
		dc.FillRect(Rect{r.X, r.Y, math.Min(t.Left, r.Width), r.Height}, brush)
	}
	if t.Right > 0 {
		dc.FillRect(Rect{r.Right() - math.Min(t.Right, r.Width), r.Y, math.Min(t.Right, r.Width), r.Height}, brush)
	}
}
