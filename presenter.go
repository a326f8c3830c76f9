package willowui

// KindCollapsiblePresenter is the kind of CollapsiblePresenter.
var KindCollapsiblePresenter = NewKind("CollapsiblePresenter", KindElement)

// IsContentVisibleProperty switches a CollapsiblePresenter between showing
// its content and taking no space at all.
var IsContentVisibleProperty = MustRegister(KindCollapsiblePresenter, "IsContentVisible", true, AffectsMeasure|AffectsRender)

// CollapsiblePresenter hosts one content element visually. While its content
// is hidden the presenter measures and arranges as if Collapsed, ignoring its
// own margin and size limits, and arranges the content into a zero-size
// rectangle; the content stays attached and keeps its state.
//
// The presenter is a visual host only: whoever created the content owns it
// logically, so inherited values flow from that owner.
type CollapsiblePresenter struct {
	Element
	content *Element
}

// NewCollapsiblePresenter creates an empty presenter with its content visible.
func NewCollapsiblePresenter(name string) *CollapsiblePresenter {
	p := &CollapsiblePresenter{}
	p.Init(KindCollapsiblePresenter, p, name)
	return p
}

// Content returns the hosted content, or nil.
func (p *CollapsiblePresenter) Content() *Element {
	return p.content
}

// SetContent replaces the hosted content. nil removes it.
func (p *CollapsiblePresenter) SetContent(content Visual) error {
	var c *Element
	if content != nil {
		c = childBase(content)
		if c == p.content {
			return nil
		}
		if err := p.checkVisualChild(c); err != nil {
			return err
		}
	}
	if p.content != nil {
		p.content.setHostCollapsed(false)
		if p.content.visualParent == &p.Element {
			p.RemoveVisualChild(p.content)
		}
		p.content = nil
	}
	if c == nil {
		return nil
	}
	if err := p.AddVisualChild(c); err != nil {
		return err
	}
	p.content = c
	return nil
}

// IsContentVisible reports whether the content currently takes layout space.
func (p *CollapsiblePresenter) IsContentVisible() bool {
	return GetValue(&p.Element, IsContentVisibleProperty)
}

// SetContentVisible shows or hides the content.
func (p *CollapsiblePresenter) SetContentVisible(v bool) {
	SetValue(&p.Element, IsContentVisibleProperty, v)
}

// MeasureOverride returns zero while hidden without measuring the content.
func (p *CollapsiblePresenter) MeasureOverride(available Size) Size {
	if p.content == nil || !p.IsContentVisible() {
		return Size{}
	}
	return p.content.Measure(available)
}

// ArrangeOverride forces a zero-size rectangle on the content while hidden,
// whatever size the presenter itself was given.
func (p *CollapsiblePresenter) ArrangeOverride(final Size) {
	if p.content == nil {
		return
	}
	if !p.IsContentVisible() {
		p.content.setHostCollapsed(true)
		p.content.Arrange(Rect{})
		return
	}
	p.content.setHostCollapsed(false)
	p.content.Arrange(Rect{Width: final.Width, Height: final.Height})
}

func (p *CollapsiblePresenter) rendersChildren() bool { return p.IsContentVisible() }

func (p *CollapsiblePresenter) hidesSelf() bool { return !p.IsContentVisible() }
