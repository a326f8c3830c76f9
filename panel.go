package willowui

import (
	"math"
)

// KindPanel is the base kind of multi-child containers.
var (
	KindPanel        = NewKind("Panel", KindElement)
	KindStackPanel   = NewKind("StackPanel", KindPanel)
	KindToolBarPanel = NewKind("ToolBarPanel", KindStackPanel)
)

// SpacingProperty is the gap a ToolBarPanel leaves between consecutive
// children. Negative and NaN values are coerced to zero.
var SpacingProperty = MustRegister(KindToolBarPanel, "Spacing", 0.0, AffectsMeasure, WithCoerce(func(_ *Element, v float64) float64 {
	return finite(v)
}))

// Panel is a multi-child container. Children added through a Panel belong to
// it in both trees. A bare Panel overlays its children.
type Panel struct {
	Element
}

// NewPanel creates an empty overlay panel.
func NewPanel(name string) *Panel {
	p := &Panel{}
	p.Init(KindPanel, p, name)
	return p
}

// AddChild appends child as both a logical and a visual child.
// Fails with *InvalidChildError and leaves both trees untouched if child
// already has a parent in either tree.
func (p *Panel) AddChild(child Visual) error {
	return p.InsertChild(child, len(p.visualChildren))
}

// InsertChild inserts child at index in visual order.
func (p *Panel) InsertChild(child Visual, index int) error {
	c := childBase(child)
	if index < 0 || index > len(p.visualChildren) {
		panic("willowui: child index out of range")
	}
	if err := p.checkLogicalChild(c); err != nil {
		return err
	}
	if err := p.checkVisualChild(c); err != nil {
		return err
	}
	if err := p.AddLogicalChild(child); err != nil {
		return err
	}
	return p.InsertVisualChild(child, index)
}

// RemoveChild detaches child from both trees.
// Panics if child was not added through this panel.
func (p *Panel) RemoveChild(child Visual) {
	c := childBase(child)
	if c.visualParent != &p.Element || c.logicalParent != &p.Element {
		panic("willowui: child's parent is not this panel")
	}
	p.RemoveVisualChild(c)
	p.RemoveLogicalChild(c)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (p *Panel) RemoveChildren() {
	for len(p.visualChildren) > 0 {
		c := p.visualChildren[len(p.visualChildren)-1]
		p.RemoveVisualChild(c)
		if c.logicalParent == &p.Element {
			p.RemoveLogicalChild(c)
		}
	}
}

// Children returns the children in visual order. The returned slice MUST NOT be mutated by the caller.
func (p *Panel) Children() []*Element {
	return p.visualChildren
}

// NumChildren returns the number of children.
func (p *Panel) NumChildren() int {
	return len(p.visualChildren)
}

// Render fills the background when one is set.
func (p *Panel) Render(dc *DrawContext) {
	if bg := GetValue(&p.Element, BackgroundProperty); bg.A > 0 {
		dc.FillRect(dc.Bounds(), bg)
	}
}

// StackPanel lines its children up along one axis.
type StackPanel struct {
	Panel
}

// NewStackPanel creates a stack panel with the given orientation.
func NewStackPanel(name string, o Orientation) *StackPanel {
	p := &StackPanel{}
	p.Init(KindStackPanel, p, name)
	p.SetOrientation(o)
	return p
}

// Orientation returns the stacking axis.
func (p *StackPanel) Orientation() Orientation {
	return GetValue(&p.Element, OrientationProperty)
}

// SetOrientation sets the stacking axis.
func (p *StackPanel) SetOrientation(o Orientation) {
	SetValue(&p.Element, OrientationProperty, o)
}

// MeasureOverride sums children along the stacking axis and takes the
// maximum across it.
func (p *StackPanel) MeasureOverride(available Size) Size {
	return measureStack(p.visualChildren, available, p.Orientation(), 0)
}

// ArrangeOverride advances along the stacking axis by each child's desired
// extent, giving every child the full cross-axis size.
func (p *StackPanel) ArrangeOverride(final Size) {
	arrangeStack(p.visualChildren, final, p.Orientation(), 0)
}

// ToolBarPanel is a StackPanel that leaves a fixed gap between consecutive
// children. The gap is not applied before the first or after the last child.
type ToolBarPanel struct {
	StackPanel
}

// NewToolBarPanel creates a horizontal toolbar panel with the given spacing.
func NewToolBarPanel(name string, spacing float64) *ToolBarPanel {
	p := &ToolBarPanel{}
	p.Init(KindToolBarPanel, p, name)
	p.SetOrientation(Horizontal)
	p.SetSpacing(spacing)
	return p
}

// Spacing returns the gap between consecutive children.
func (p *ToolBarPanel) Spacing() float64 {
	return GetValue(&p.Element, SpacingProperty)
}

// SetSpacing sets the gap between consecutive children.
func (p *ToolBarPanel) SetSpacing(v float64) {
	SetValue(&p.Element, SpacingProperty, v)
}

// MeasureOverride is the stacking measure with gaps.
func (p *ToolBarPanel) MeasureOverride(available Size) Size {
	return measureStack(p.visualChildren, available, p.Orientation(), p.Spacing())
}

// ArrangeOverride is the stacking arrange with gaps.
func (p *ToolBarPanel) ArrangeOverride(final Size) {
	arrangeStack(p.visualChildren, final, p.Orientation(), p.Spacing())
}

// measureStack measures children unbounded along the stacking axis.
// Collapsed children take no space and get no gap.
func measureStack(children []*Element, available Size, o Orientation, spacing float64) Size {
	childAvail := available
	if o == Vertical {
		childAvail.Height = math.Inf(1)
	} else {
		childAvail.Width = math.Inf(1)
	}
	var along, across float64
	n := 0
	for _, c := range children {
		d := c.Measure(childAvail)
		if c.takesNoSpace() {
			continue
		}
		if n > 0 {
			along += spacing
		}
		n++
		if o == Vertical {
			along += d.Height
			across = math.Max(across, d.Width)
		} else {
			along += d.Width
			across = math.Max(across, d.Height)
		}
	}
	if o == Vertical {
		return Size{across, along}
	}
	return Size{along, across}
}

func arrangeStack(children []*Element, final Size, o Orientation, spacing float64) {
	cursor := 0.0
	n := 0
	for _, c := range children {
		if c.takesNoSpace() {
			if o == Vertical {
				c.Arrange(Rect{Y: cursor})
			} else {
				c.Arrange(Rect{X: cursor})
			}
			continue
		}
		if n > 0 {
			cursor += spacing
		}
		n++
		d := c.DesiredSize()
		if o == Vertical {
			c.Arrange(Rect{X: 0, Y: cursor, Width: final.Width, Height: d.Height})
			cursor += d.Height
		} else {
			c.Arrange(Rect{X: cursor, Y: 0, Width: d.Width, Height: final.Height})
			cursor += d.Width
		}
	}
}
