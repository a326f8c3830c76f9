package willowui

import (
	"math"

	"github.com/tanema/gween/ease"
)

// ScrollBarThickness is the cross-axis size of a ScrollBar and the side of
// its line buttons.
const ScrollBarThickness = 12.0

var (
	KindScrollBar    = NewKind("ScrollBar", KindElement)
	KindScrollViewer = NewKind("ScrollViewer", KindElement)
)

// ScrollBarVisibility decides when a ScrollViewer shows a scroll bar.
type ScrollBarVisibility uint8

const (
	ScrollBarDisabled ScrollBarVisibility = iota // no bar, and the axis does not scroll
	ScrollBarAuto                                // bar shown only when content overflows
	ScrollBarHidden                              // axis scrolls but no bar is shown
	ScrollBarVisible                             // bar always shown
)

var (
	// MaximumProperty is the largest Value of a ScrollBar.
	MaximumProperty = MustRegister(KindScrollBar, "Maximum", 0.0, AffectsRender, WithCoerce(func(_ *Element, v float64) float64 {
		return finite(v)
	}))
	// ValueProperty is the ScrollBar position in [0, Maximum].
	ValueProperty = MustRegister(KindScrollBar, "Value", 0.0, AffectsRender, WithCoerce(func(e *Element, v float64) float64 {
		return clampRange(v, 0, GetValue(e, MaximumProperty))
	}))
	// ViewportSizeProperty is the visible length the thumb represents.
	ViewportSizeProperty = MustRegister(KindScrollBar, "ViewportSize", 0.0, AffectsRender, WithCoerce(func(_ *Element, v float64) float64 {
		return finite(v)
	}))
	// ThumbBrushProperty is the thumb color.
	ThumbBrushProperty = MustRegister(KindScrollBar, "ThumbBrush", Color{0.6, 0.62, 0.68, 1}, AffectsRender)

	HorizontalScrollBarVisibilityProperty = MustRegister(KindScrollViewer, "HorizontalScrollBarVisibility", ScrollBarDisabled, AffectsMeasure)
	VerticalScrollBarVisibilityProperty   = MustRegister(KindScrollViewer, "VerticalScrollBarVisibility", ScrollBarAuto, AffectsMeasure)
)

// ScrollAction is a step requested by a ScrollBar.
type ScrollAction uint8

const (
	ScrollLineBack    ScrollAction = iota // one line toward the start
	ScrollLineForward                     // one line toward the end
	ScrollPageBack                        // one viewport toward the start
	ScrollPageForward                     // one viewport toward the end
)

// ScrollBar shows a scroll position and turns clicks into ScrollActions. It
// is built from two RepeatButtons at its ends and a track holding the thumb.
type ScrollBar struct {
	Element
	lineBack    *RepeatButton
	lineForward *RepeatButton

	// OnScroll receives the steps the bar requests.
	OnScroll func(ScrollAction)
}

// NewScrollBar creates a scroll bar along o.
func NewScrollBar(name string, o Orientation) *ScrollBar {
	sb := &ScrollBar{}
	sb.Init(KindScrollBar, sb, name)
	SetValue(&sb.Element, OrientationProperty, o)
	SetValue(&sb.Element, BackgroundProperty, Color{0.15, 0.16, 0.19, 1})

	sb.lineBack = NewRepeatButton(name+".back", nil)
	sb.lineForward = NewRepeatButton(name+".forward", nil)
	for _, b := range []*RepeatButton{sb.lineBack, sb.lineForward} {
		SetValue(&b.Element, PaddingProperty, Thickness{})
		if err := sb.AddVisualChild(b); err != nil {
			panic(err)
		}
	}
	sb.lineBack.OnClick(func() { sb.fire(ScrollLineBack) })
	sb.lineForward.OnClick(func() { sb.fire(ScrollLineForward) })
	return sb
}

func (sb *ScrollBar) fire(a ScrollAction) {
	if sb.OnScroll != nil {
		sb.OnScroll(a)
	}
}

// Orientation returns the bar's axis.
func (sb *ScrollBar) Orientation() Orientation {
	return GetValue(&sb.Element, OrientationProperty)
}

// LineBackButton returns the button at the start of the bar.
func (sb *ScrollBar) LineBackButton() *RepeatButton { return sb.lineBack }

// LineForwardButton returns the button at the end of the bar.
func (sb *ScrollBar) LineForwardButton() *RepeatButton { return sb.lineForward }

// Value returns the current position.
func (sb *ScrollBar) Value() float64 { return GetValue(&sb.Element, ValueProperty) }

// Maximum returns the largest position.
func (sb *ScrollBar) Maximum() float64 { return GetValue(&sb.Element, MaximumProperty) }

// SetRange updates maximum, value and viewport size together.
func (sb *ScrollBar) SetRange(maximum, value, viewport float64) {
	SetValue(&sb.Element, MaximumProperty, maximum)
	SetValue(&sb.Element, ValueProperty, value)
	SetValue(&sb.Element, ViewportSizeProperty, viewport)
}

// MeasureOverride asks for the bar thickness across and room for both
// buttons along the axis.
func (sb *ScrollBar) MeasureOverride(Size) Size {
	t := ScrollBarThickness
	sb.lineBack.Measure(Size{t, t})
	sb.lineForward.Measure(Size{t, t})
	if sb.Orientation() == Vertical {
		return Size{t, 2 * t}
	}
	return Size{2 * t, t}
}

// ArrangeOverride puts the buttons at the two ends.
func (sb *ScrollBar) ArrangeOverride(final Size) {
	t := ScrollBarThickness
	if sb.Orientation() == Vertical {
		t = math.Min(t, final.Height/2)
		sb.lineBack.Arrange(Rect{0, 0, final.Width, t})
		sb.lineForward.Arrange(Rect{0, final.Height - t, final.Width, t})
		return
	}
	t = math.Min(t, final.Width/2)
	sb.lineBack.Arrange(Rect{0, 0, t, final.Height})
	sb.lineForward.Arrange(Rect{final.Width - t, 0, t, final.Height})
}

// trackRect is the area between the buttons, in local coordinates.
func (sb *ScrollBar) trackRect() Rect {
	s := sb.ActualSize()
	t := ScrollBarThickness
	if sb.Orientation() == Vertical {
		t = math.Min(t, s.Height/2)
		return Rect{0, t, s.Width, nonNegative(s.Height - 2*t)}
	}
	t = math.Min(t, s.Width/2)
	return Rect{t, 0, nonNegative(s.Width - 2*t), s.Height}
}

// ThumbRect returns the thumb's rectangle in local coordinates. The thumb
// length is proportional to viewport/(maximum+viewport) with a minimum of the
// bar thickness; with nothing to scroll it fills the track.
func (sb *ScrollBar) ThumbRect() Rect {
	track := sb.trackRect()
	vertical := sb.Orientation() == Vertical
	length := track.Width
	if vertical {
		length = track.Height
	}
	if length <= 0 {
		return Rect{X: track.X, Y: track.Y}
	}
	maximum := sb.Maximum()
	if maximum <= 0 {
		return track
	}
	vp := GetValue(&sb.Element, ViewportSizeProperty)
	thumb := math.Min(length, math.Max(ScrollBarThickness, length*vp/(maximum+vp)))
	pos := (length - thumb) * sb.Value() / maximum
	if vertical {
		return Rect{track.X, track.Y + pos, track.Width, thumb}
	}
	return Rect{track.X + pos, track.Y, thumb, track.Height}
}

// Render fills the track and the thumb.
func (sb *ScrollBar) Render(dc *DrawContext) {
	if bg := GetValue(&sb.Element, BackgroundProperty); bg.A > 0 {
		dc.FillRect(dc.Bounds(), bg)
	}
	if sb.Maximum() > 0 {
		dc.FillRect(sb.ThumbRect(), GetValue(&sb.Element, ThumbBrushProperty))
	}
}

// click pages toward the point when the track is clicked outside the thumb.
func (sb *ScrollBar) click(local Vec2) {
	thumb := sb.ThumbRect()
	if !sb.trackRect().Contains(local.X, local.Y) || thumb.Contains(local.X, local.Y) {
		return
	}
	before := local.Y < thumb.Y
	if sb.Orientation() == Horizontal {
		before = local.X < thumb.X
	}
	if before {
		sb.fire(ScrollPageBack)
	} else {
		sb.fire(ScrollPageForward)
	}
}

// ScrollViewer is the viewport owner: it hosts a ScrollContentPresenter and
// two ScrollBars, keeps the bars in sync with the presenter's scroll state
// and forwards scrolling requests. Its content is its logical child and the
// presenter's visual child.
type ScrollViewer struct {
	Element
	presenter *ScrollContentPresenter
	vbar      *ScrollBar
	hbar      *ScrollBar
	content   *Element

	showV, showH bool

	listeners []func(ScrollChangedEvent)
	anim      *TweenGroup
}

// NewScrollViewer creates an empty scroll viewer.
func NewScrollViewer(name string) *ScrollViewer {
	sv := &ScrollViewer{}
	sv.Init(KindScrollViewer, sv, name)

	sv.presenter = NewScrollContentPresenter(name + ".presenter")
	sv.presenter.SetScrollOwner(sv)
	sv.vbar = NewScrollBar(name+".vbar", Vertical)
	sv.hbar = NewScrollBar(name+".hbar", Horizontal)
	sv.vbar.OnScroll = func(a ScrollAction) { sv.step(a, true) }
	sv.hbar.OnScroll = func(a ScrollAction) { sv.step(a, false) }
	for _, part := range []Visual{sv.presenter, sv.vbar, sv.hbar} {
		if err := sv.AddVisualChild(part); err != nil {
			panic(err)
		}
	}
	return sv
}

func (sv *ScrollViewer) step(a ScrollAction, vertical bool) {
	switch {
	case a == ScrollLineBack && vertical:
		sv.LineUp()
	case a == ScrollLineForward && vertical:
		sv.LineDown()
	case a == ScrollPageBack && vertical:
		sv.PageUp()
	case a == ScrollPageForward && vertical:
		sv.PageDown()
	case a == ScrollLineBack:
		sv.LineLeft()
	case a == ScrollLineForward:
		sv.LineRight()
	case a == ScrollPageBack:
		sv.PageLeft()
	case a == ScrollPageForward:
		sv.PageRight()
	}
}

// Content returns the scrolled content, or nil.
func (sv *ScrollViewer) Content() *Element { return sv.content }

// SetContent replaces the scrolled content. nil removes it.
func (sv *ScrollViewer) SetContent(content Visual) error {
	var c *Element
	if content != nil {
		c = childBase(content)
		if c == sv.content {
			return nil
		}
		if err := sv.checkLogicalChild(c); err != nil {
			return err
		}
		if err := sv.presenter.checkVisualChild(c); err != nil {
			return err
		}
	}
	if old := sv.content; old != nil {
		if err := sv.presenter.SetContent(nil); err != nil {
			return err
		}
		sv.RemoveLogicalChild(old)
		sv.content = nil
	}
	if c == nil {
		return nil
	}
	if err := sv.AddLogicalChild(c); err != nil {
		return err
	}
	if err := sv.presenter.SetContent(c); err != nil {
		sv.RemoveLogicalChild(c)
		return err
	}
	sv.content = c
	return nil
}

// ScrollInfo returns the scrollable the viewer drives.
func (sv *ScrollViewer) ScrollInfo() ScrollInfo { return sv.presenter }

// Presenter returns the hosted ScrollContentPresenter.
func (sv *ScrollViewer) Presenter() *ScrollContentPresenter { return sv.presenter }

// VerticalScrollBar returns the vertical bar.
func (sv *ScrollViewer) VerticalScrollBar() *ScrollBar { return sv.vbar }

// HorizontalScrollBar returns the horizontal bar.
func (sv *ScrollViewer) HorizontalScrollBar() *ScrollBar { return sv.hbar }

// SetScrollBarVisibility sets both bar visibilities.
func (sv *ScrollViewer) SetScrollBarVisibility(h, v ScrollBarVisibility) {
	SetValue(&sv.Element, HorizontalScrollBarVisibilityProperty, h)
	SetValue(&sv.Element, VerticalScrollBarVisibilityProperty, v)
}

// AddScrollChangedListener registers fn to receive every scroll change.
func (sv *ScrollViewer) AddScrollChangedListener(fn func(ScrollChangedEvent)) {
	sv.listeners = append(sv.listeners, fn)
}

// OnScrollChanged syncs the bars and forwards ev to listeners.
func (sv *ScrollViewer) OnScrollChanged(ev ScrollChangedEvent) {
	maxOff := sv.presenter.MaxOffset()
	sv.vbar.SetRange(maxOff.Y, ev.Offset.Y, ev.Viewport.Height)
	sv.hbar.SetRange(maxOff.X, ev.Offset.X, ev.Viewport.Width)
	for _, fn := range sv.listeners {
		fn(ev)
	}
}

func (sv *ScrollViewer) Extent() Size   { return sv.presenter.Extent() }
func (sv *ScrollViewer) Viewport() Size { return sv.presenter.Viewport() }
func (sv *ScrollViewer) Offset() Vec2   { return sv.presenter.Offset() }

// The stepping and offset methods cancel any running scroll animation.

func (sv *ScrollViewer) LineUp()    { sv.StopScrollAnimation(); sv.presenter.LineUp() }
func (sv *ScrollViewer) LineDown()  { sv.StopScrollAnimation(); sv.presenter.LineDown() }
func (sv *ScrollViewer) LineLeft()  { sv.StopScrollAnimation(); sv.presenter.LineLeft() }
func (sv *ScrollViewer) LineRight() { sv.StopScrollAnimation(); sv.presenter.LineRight() }
func (sv *ScrollViewer) PageUp()    { sv.StopScrollAnimation(); sv.presenter.PageUp() }
func (sv *ScrollViewer) PageDown()  { sv.StopScrollAnimation(); sv.presenter.PageDown() }
func (sv *ScrollViewer) PageLeft()  { sv.StopScrollAnimation(); sv.presenter.PageLeft() }
func (sv *ScrollViewer) PageRight() { sv.StopScrollAnimation(); sv.presenter.PageRight() }

// ScrollToVerticalOffset scrolls to y, clamped to the valid range.
func (sv *ScrollViewer) ScrollToVerticalOffset(y float64) {
	sv.StopScrollAnimation()
	sv.presenter.SetVerticalOffset(y)
}

// ScrollToHorizontalOffset scrolls to x, clamped to the valid range.
func (sv *ScrollViewer) ScrollToHorizontalOffset(x float64) {
	sv.StopScrollAnimation()
	sv.presenter.SetHorizontalOffset(x)
}

// ScrollToTop scrolls to the first line.
func (sv *ScrollViewer) ScrollToTop() { sv.ScrollToVerticalOffset(0) }

// ScrollToBottom scrolls to the last line.
func (sv *ScrollViewer) ScrollToBottom() { sv.ScrollToVerticalOffset(math.Inf(1)) }

// ScrollIntoView scrolls minimally so v's whole box is visible.
func (sv *ScrollViewer) ScrollIntoView(v Visual) Rect {
	sv.StopScrollAnimation()
	return sv.presenter.MakeVisible(v, v.Base().localRect())
}

// ScrollToVerticalOffsetAnimated eases the vertical offset toward y over
// duration seconds. fn defaults to ease.OutQuad. The animation advances in
// Update and is cancelled by any direct scroll call.
func (sv *ScrollViewer) ScrollToVerticalOffsetAnimated(y float64, duration float32, fn ease.TweenFunc) {
	sv.scrollAnimated(Vec2{sv.Offset().X, y}, duration, fn)
}

// ScrollToHorizontalOffsetAnimated eases the horizontal offset toward x.
func (sv *ScrollViewer) ScrollToHorizontalOffsetAnimated(x float64, duration float32, fn ease.TweenFunc) {
	sv.scrollAnimated(Vec2{x, sv.Offset().Y}, duration, fn)
}

func (sv *ScrollViewer) scrollAnimated(to Vec2, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutQuad
	}
	to = sv.presenter.state.clampOffset(to)
	if duration <= 0 {
		sv.StopScrollAnimation()
		sv.presenter.setOffset(to)
		return
	}
	sv.anim = TweenScrollOffset(sv.presenter, to, duration, fn)
}

// IsScrollAnimating reports whether an animated scroll is running.
func (sv *ScrollViewer) IsScrollAnimating() bool { return sv.anim != nil }

// StopScrollAnimation cancels a running animated scroll, leaving the offset
// where it is.
func (sv *ScrollViewer) StopScrollAnimation() { sv.anim = nil }

// Update advances the scroll animation by dt seconds.
func (sv *ScrollViewer) Update(dt float64) {
	if sv.anim == nil {
		return
	}
	sv.anim.Update(float32(dt))
	if sv.anim.Done {
		sv.anim = nil
	}
}

// MeasureOverride measures the presenter in the space left by the bars. An
// Auto bar appears when the content overflows the viewport without it.
func (sv *ScrollViewer) MeasureOverride(available Size) Size {
	hVis := GetValue(&sv.Element, HorizontalScrollBarVisibilityProperty)
	vVis := GetValue(&sv.Element, VerticalScrollBarVisibilityProperty)
	if canH := hVis != ScrollBarDisabled; canH != sv.presenter.canH {
		sv.presenter.canH = canH
		sv.presenter.measureDirty = true
	}
	if canV := vVis != ScrollBarDisabled; canV != sv.presenter.canV {
		sv.presenter.canV = canV
		sv.presenter.measureDirty = true
	}
	sv.showH = hVis == ScrollBarVisible
	sv.showV = vVis == ScrollBarVisible

	t := ScrollBarThickness
	viewport := func() Size {
		s := available
		if sv.showV {
			s.Width -= t
		}
		if sv.showH {
			s.Height -= t
		}
		return s.clamped()
	}
	d := sv.presenter.Measure(viewport())
	if vVis == ScrollBarAuto && sv.presenter.Extent().Height > viewport().Height {
		sv.showV = true
		d = sv.presenter.Measure(viewport())
	}
	if hVis == ScrollBarAuto && sv.presenter.Extent().Width > viewport().Width {
		sv.showH = true
		d = sv.presenter.Measure(viewport())
	}

	if sv.showV {
		sv.vbar.Measure(Size{t, available.Height})
		d.Width += t
	}
	if sv.showH {
		sv.hbar.Measure(Size{available.Width, t})
		d.Height += t
	}
	return d
}

// ArrangeOverride gives the presenter the box minus the visible bars.
func (sv *ScrollViewer) ArrangeOverride(final Size) {
	t := ScrollBarThickness
	vw, vh := final.Width, final.Height
	if sv.showV {
		vw = nonNegative(vw - t)
	}
	if sv.showH {
		vh = nonNegative(vh - t)
	}
	sv.presenter.Arrange(Rect{0, 0, vw, vh})
	if sv.showV {
		sv.vbar.Arrange(Rect{vw, 0, final.Width - vw, vh})
	} else {
		sv.vbar.Arrange(Rect{})
	}
	if sv.showH {
		sv.hbar.Arrange(Rect{0, vh, vw, final.Height - vh})
	} else {
		sv.hbar.Arrange(Rect{})
	}
}

// IsVerticalScrollBarShown reports whether the vertical bar took space in
// the last layout.
func (sv *ScrollViewer) IsVerticalScrollBarShown() bool { return sv.showV }

// IsHorizontalScrollBarShown reports whether the horizontal bar took space in
// the last layout.
func (sv *ScrollViewer) IsHorizontalScrollBarShown() bool { return sv.showH }
