package willowui

import (
	"math"
)

// DefaultScrollLineSize is the distance of one line step, in pixels.
const DefaultScrollLineSize = 16.0

// KindScrollContentPresenter is the kind of ScrollContentPresenter.
var KindScrollContentPresenter = NewKind("ScrollContentPresenter", KindElement)

// ScrollLineSizeProperty is the inherited distance of one line step. Values
// that are not positive and finite fall back to DefaultScrollLineSize.
var ScrollLineSizeProperty = MustRegister(KindElement, "ScrollLineSize", DefaultScrollLineSize, Inherits, WithCoerce(func(_ *Element, v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return DefaultScrollLineSize
}))

// ScrollInfo is implemented by scrollable content and driven by a viewport
// owner. Offsets are always within [0, max(0, extent-viewport)] per axis.
type ScrollInfo interface {
	Extent() Size
	Viewport() Size
	Offset() Vec2

	LineUp()
	LineDown()
	LineLeft()
	LineRight()
	PageUp()
	PageDown()
	PageLeft()
	PageRight()

	SetHorizontalOffset(x float64)
	SetVerticalOffset(y float64)

	// MakeVisible scrolls the least distance that brings rect, given in
	// visual's coordinate space, fully into view (or as far as the extent
	// allows) and returns rect in the viewport's coordinate space.
	MakeVisible(visual Visual, rect Rect) Rect

	CanHorizontallyScroll() bool
	SetCanHorizontallyScroll(bool)
	CanVerticallyScroll() bool
	SetCanVerticallyScroll(bool)

	ScrollOwner() ScrollOwner
	SetScrollOwner(ScrollOwner)
}

// ScrollOwner receives scroll change notifications from a ScrollInfo.
type ScrollOwner interface {
	OnScrollChanged(ev ScrollChangedEvent)
}

// ScrollChangedEvent carries the new scroll state and the change in each of
// the six tracked quantities. Every delta is new minus old and zero when the
// quantity did not change.
type ScrollChangedEvent struct {
	Extent   Size
	Viewport Size
	Offset   Vec2

	ExtentDelta   Size
	ViewportDelta Size
	OffsetDelta   Vec2
}

// scrollState is the extent/viewport/offset triple of one scrollable.
type scrollState struct {
	extent   Size
	viewport Size
	offset   Vec2
}

// maxOffset returns the largest valid offset on each axis.
func (s scrollState) maxOffset() Vec2 {
	return Vec2{
		nonNegative(s.extent.Width - s.viewport.Width),
		nonNegative(s.extent.Height - s.viewport.Height),
	}
}

func (s scrollState) clampOffset(o Vec2) Vec2 {
	m := s.maxOffset()
	return Vec2{clampRange(o.X, 0, m.X), clampRange(o.Y, 0, m.Y)}
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func scrollChanged(prev, cur scrollState) ScrollChangedEvent {
	return ScrollChangedEvent{
		Extent:        cur.extent,
		Viewport:      cur.viewport,
		Offset:        cur.offset,
		ExtentDelta:   Size{cur.extent.Width - prev.extent.Width, cur.extent.Height - prev.extent.Height},
		ViewportDelta: Size{cur.viewport.Width - prev.viewport.Width, cur.viewport.Height - prev.viewport.Height},
		OffsetDelta:   cur.offset.Sub(prev.offset),
	}
}

// ScrollContentPresenter hosts scrollable content and implements ScrollInfo
// by physically offsetting it: the content is arranged at the negated offset
// and the presenter clips its subtree to its own box.
type ScrollContentPresenter struct {
	Element
	content *Element

	state scrollState
	// notified is the state last reported to the owner.
	notified scrollState
	// arrangedOffset is the offset the content was last arranged at.
	arrangedOffset Vec2

	canH, canV bool
	owner      ScrollOwner
}

// NewScrollContentPresenter creates a presenter that scrolls vertically.
func NewScrollContentPresenter(name string) *ScrollContentPresenter {
	p := &ScrollContentPresenter{canV: true}
	p.Init(KindScrollContentPresenter, p, name)
	return p
}

// Content returns the scrolled content, or nil.
func (p *ScrollContentPresenter) Content() *Element {
	return p.content
}

// SetContent replaces the scrolled content. The presenter hosts it visually
// only. nil removes it.
func (p *ScrollContentPresenter) SetContent(content Visual) error {
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
		if p.content.visualParent == &p.Element {
			p.RemoveVisualChild(p.content)
		}
		p.content = nil
	}
	if c != nil {
		if err := p.AddVisualChild(c); err != nil {
			return err
		}
		p.content = c
	}
	return nil
}

func (p *ScrollContentPresenter) Extent() Size   { return p.state.extent }
func (p *ScrollContentPresenter) Viewport() Size { return p.state.viewport }
func (p *ScrollContentPresenter) Offset() Vec2   { return p.state.offset }

// MaxOffset returns the largest valid offset on each axis.
func (p *ScrollContentPresenter) MaxOffset() Vec2 { return p.state.maxOffset() }

func (p *ScrollContentPresenter) lineSize() float64 {
	return GetValue(&p.Element, ScrollLineSizeProperty)
}

func (p *ScrollContentPresenter) LineUp()    { p.SetVerticalOffset(p.state.offset.Y - p.lineSize()) }
func (p *ScrollContentPresenter) LineDown()  { p.SetVerticalOffset(p.state.offset.Y + p.lineSize()) }
func (p *ScrollContentPresenter) LineLeft()  { p.SetHorizontalOffset(p.state.offset.X - p.lineSize()) }
func (p *ScrollContentPresenter) LineRight() { p.SetHorizontalOffset(p.state.offset.X + p.lineSize()) }

func (p *ScrollContentPresenter) PageUp() {
	p.SetVerticalOffset(p.state.offset.Y - p.state.viewport.Height)
}

func (p *ScrollContentPresenter) PageDown() {
	p.SetVerticalOffset(p.state.offset.Y + p.state.viewport.Height)
}

func (p *ScrollContentPresenter) PageLeft() {
	p.SetHorizontalOffset(p.state.offset.X - p.state.viewport.Width)
}

func (p *ScrollContentPresenter) PageRight() {
	p.SetHorizontalOffset(p.state.offset.X + p.state.viewport.Width)
}

// SetHorizontalOffset scrolls to x, clamped to the valid range.
func (p *ScrollContentPresenter) SetHorizontalOffset(x float64) {
	p.setOffset(Vec2{x, p.state.offset.Y})
}

// SetVerticalOffset scrolls to y, clamped to the valid range.
func (p *ScrollContentPresenter) SetVerticalOffset(y float64) {
	p.setOffset(Vec2{p.state.offset.X, y})
}

func (p *ScrollContentPresenter) setOffset(o Vec2) {
	o = p.state.clampOffset(o)
	if o == p.state.offset {
		return
	}
	p.state.offset = o
	p.InvalidateArrange()
	p.notify()
}

// update records a new extent and viewport, re-clamps the offset and
// notifies the owner if anything changed.
func (p *ScrollContentPresenter) update(extent, viewport Size) {
	p.state.extent = extent
	p.state.viewport = viewport
	p.state.offset = p.state.clampOffset(p.state.offset)
	p.notify()
}

func (p *ScrollContentPresenter) notify() {
	if p.state == p.notified {
		return
	}
	ev := scrollChanged(p.notified, p.state)
	p.notified = p.state
	if p.owner != nil {
		p.owner.OnScrollChanged(ev)
	}
}

func (p *ScrollContentPresenter) CanHorizontallyScroll() bool { return p.canH }
func (p *ScrollContentPresenter) CanVerticallyScroll() bool   { return p.canV }

// SetCanHorizontallyScroll enables or disables horizontal scrolling. A
// non-scrolling axis gives the content the viewport's size on that axis.
func (p *ScrollContentPresenter) SetCanHorizontallyScroll(v bool) {
	if p.canH == v {
		return
	}
	p.canH = v
	p.InvalidateMeasure()
}

// SetCanVerticallyScroll enables or disables vertical scrolling.
func (p *ScrollContentPresenter) SetCanVerticallyScroll(v bool) {
	if p.canV == v {
		return
	}
	p.canV = v
	p.InvalidateMeasure()
}

func (p *ScrollContentPresenter) ScrollOwner() ScrollOwner     { return p.owner }
func (p *ScrollContentPresenter) SetScrollOwner(o ScrollOwner) { p.owner = o }

// MeasureOverride measures the content unbounded on scrolling axes and
// records its desired size as the extent. The offset is re-clamped and the
// owner notified only once Arrange knows the new viewport.
func (p *ScrollContentPresenter) MeasureOverride(available Size) Size {
	if p.content == nil {
		p.state.extent = Size{}
		return Size{}
	}
	childAvail := available
	if p.canH {
		childAvail.Width = math.Inf(1)
	}
	if p.canV {
		childAvail.Height = math.Inf(1)
	}
	d := p.content.Measure(childAvail)
	p.state.extent = d
	return d
}

// ArrangeOverride records the viewport and places the content at the negated
// offset. On scrolling axes the content is at least as large as the viewport.
func (p *ScrollContentPresenter) ArrangeOverride(final Size) {
	extent := p.state.extent
	if p.content != nil {
		extent = p.content.DesiredSize()
	}
	p.update(extent, final)
	if p.content == nil {
		return
	}
	w, h := final.Width, final.Height
	if p.canH {
		w = math.Max(w, extent.Width)
	}
	if p.canV {
		h = math.Max(h, extent.Height)
	}
	p.arrangedOffset = p.state.offset
	p.content.Arrange(Rect{-p.state.offset.X, -p.state.offset.Y, w, h})
}

func (p *ScrollContentPresenter) clipsToBounds() bool { return true }

// MakeVisible scrolls minimally so rect, in visual's coordinates, is inside
// the viewport, and returns it in the presenter's coordinates. A rect larger
// than the viewport aligns its leading edge. Returns the zero Rect when
// visual is not under the presenter.
func (p *ScrollContentPresenter) MakeVisible(visual Visual, rect Rect) Rect {
	if visual == nil {
		return Rect{}
	}
	v := visual.Base()
	if v != &p.Element && !p.IsVisualAncestorOf(v) {
		return Rect{}
	}
	origin, _ := v.TransformToAncestor(&p.Element)
	// Into content space: undo the offset the content was last arranged at.
	r := rect.Offset(origin).Offset(p.arrangedOffset)
	if v == &p.Element {
		r = rect.Offset(p.state.offset)
	}

	o := p.state.offset
	if p.canH {
		o.X = minimalScroll(o.X, p.state.viewport.Width, r.X, r.Width)
	}
	if p.canV {
		o.Y = minimalScroll(o.Y, p.state.viewport.Height, r.Y, r.Height)
	}
	p.setOffset(o)
	return r.Offset(Vec2{-p.state.offset.X, -p.state.offset.Y})
}

// minimalScroll returns the offset closest to off that shows [start,
// start+length) inside a window of size view.
func minimalScroll(off, view, start, length float64) float64 {
	end := start + length
	switch {
	case start >= off && end <= off+view:
		return off
	case start < off || length > view:
		return start
	default:
		return end - view
	}
}
