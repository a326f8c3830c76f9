package willowui

var (
	KindSeparator = NewKind("Separator", KindElement)
	KindToolBar   = NewKind("ToolBar", KindBorder)
	KindExpander  = NewKind("Expander", KindElement)
)

// SeparatorThickness is the width of a separator's rule.
const SeparatorThickness = 1.0

// --- Separator ---

// Separator draws a thin rule. A Horizontal separator is a horizontal line
// that stretches across the available width (use it in a vertical stack);
// a Vertical one is a vertical line for horizontal stacks such as toolbars.
type Separator struct {
	Element
}

// NewSeparator creates a separator with the given rule direction.
func NewSeparator(name string, o Orientation) *Separator {
	s := &Separator{}
	s.Init(KindSeparator, s, name)
	SetValue(&s.Element, OrientationProperty, o)
	if o == Horizontal {
		s.SetMargin(Thickness{0, 2, 0, 2})
	} else {
		s.SetMargin(Thickness{2, 0, 2, 0})
	}
	return s
}

// MeasureOverride asks only for the rule's thickness.
func (s *Separator) MeasureOverride(Size) Size {
	if GetValue(&s.Element, OrientationProperty) == Horizontal {
		return Size{0, SeparatorThickness}
	}
	return Size{SeparatorThickness, 0}
}

// Render draws the rule in a translucent foreground.
func (s *Separator) Render(dc *DrawContext) {
	c := GetValue(&s.Element, ForegroundProperty)
	c.A *= 0.35
	dc.FillRect(dc.Bounds(), c)
}

// --- ToolBar ---

// ToolBar is a bordered strip of items laid out by a ToolBarPanel.
type ToolBar struct {
	Border
	panel *ToolBarPanel
}

// NewToolBar creates a horizontal toolbar whose items are spacing apart.
func NewToolBar(name string, spacing float64) *ToolBar {
	tb := &ToolBar{}
	tb.Init(KindToolBar, tb, name)
	tb.panel = NewToolBarPanel(name+".items", spacing)
	if err := tb.SetChild(tb.panel); err != nil {
		panic(err)
	}
	tb.SetPadding(Uniform(2))
	tb.SetBackground(Color{0.18, 0.19, 0.23, 1})
	return tb
}

// Items returns the item panel.
func (tb *ToolBar) Items() *ToolBarPanel { return tb.panel }

// AddItem appends an item.
func (tb *ToolBar) AddItem(item Visual) error { return tb.panel.AddChild(item) }

// AddSeparator appends a separator that fits the toolbar's orientation.
func (tb *ToolBar) AddSeparator() *Separator {
	o := Vertical
	if tb.panel.Orientation() == Vertical {
		o = Horizontal
	}
	s := NewSeparator(tb.Name+".sep", o)
	if err := tb.panel.AddChild(s); err != nil {
		panic(err)
	}
	return s
}

// SetSpacing sets the gap between items.
func (tb *ToolBar) SetSpacing(v float64) { tb.panel.SetSpacing(v) }

// SetOrientation sets the item flow direction.
func (tb *ToolBar) SetOrientation(o Orientation) { tb.panel.SetOrientation(o) }

// --- Expander ---

// IsExpandedProperty shows or hides an Expander's content.
var IsExpandedProperty = MustRegister(KindExpander, "IsExpanded", false, 0,
	WithChanged(func(e *Element, _, v bool) {
		if x, ok := e.visual().(*Expander); ok {
			x.presenter.SetContentVisible(v)
		}
	}))

// Expander is a header control: clicking its header shows or hides its
// content. Header and content are logical children of the Expander, while the
// header button and a CollapsiblePresenter host them visually.
type Expander struct {
	Element
	stack     *StackPanel
	header    *Button
	presenter *CollapsiblePresenter
	content   *Element
}

// NewExpander creates a collapsed expander with the given header.
func NewExpander(name string, header Visual) *Expander {
	x := &Expander{}
	x.Init(KindExpander, x, name)

	x.stack = NewStackPanel(name+".stack", Vertical)
	x.header = NewButton(name+".header", nil)
	x.presenter = NewCollapsiblePresenter(name + ".content")
	x.presenter.SetContentVisible(false)

	must(x.AddVisualChild(x.stack))
	must(x.stack.AddVisualChild(x.header))
	must(x.stack.AddVisualChild(x.presenter))
	if header != nil {
		must(x.AddLogicalChild(header))
		must(x.header.setChild(header, false))
	}
	x.header.OnClick(x.Toggle)
	return x
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Header returns the header button.
func (x *Expander) Header() *Button { return x.header }

// Content returns the content element, or nil.
func (x *Expander) Content() *Element { return x.content }

// SetContent replaces the content shown when expanded. nil removes it.
func (x *Expander) SetContent(content Visual) error {
	var c *Element
	if content != nil {
		c = childBase(content)
		if c == x.content {
			return nil
		}
		if err := x.checkLogicalChild(c); err != nil {
			return err
		}
		if err := x.presenter.checkVisualChild(c); err != nil {
			return err
		}
	}
	if old := x.content; old != nil {
		must(x.presenter.SetContent(nil))
		x.RemoveLogicalChild(old)
		x.content = nil
	}
	if c == nil {
		return nil
	}
	if err := x.AddLogicalChild(c); err != nil {
		return err
	}
	if err := x.presenter.SetContent(c); err != nil {
		x.RemoveLogicalChild(c)
		return err
	}
	x.content = c
	return nil
}

// IsExpanded reports whether the content is shown.
func (x *Expander) IsExpanded() bool { return GetValue(&x.Element, IsExpandedProperty) }

// SetExpanded shows or hides the content.
func (x *Expander) SetExpanded(v bool) { SetValue(&x.Element, IsExpandedProperty, v) }

// Toggle flips IsExpanded.
func (x *Expander) Toggle() { x.SetExpanded(!x.IsExpanded()) }
