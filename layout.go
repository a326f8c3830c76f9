package willowui

import (
	"math"
)

// --- Framework properties ---

var (
	// WidthProperty is an explicit width; NaN means size to content.
	WidthProperty = MustRegister(KindElement, "Width", math.NaN(), AffectsMeasure, WithCoerce(coerceLength))
	// HeightProperty is an explicit height; NaN means size to content.
	HeightProperty = MustRegister(KindElement, "Height", math.NaN(), AffectsMeasure, WithCoerce(coerceLength))

	MinWidthProperty  = MustRegister(KindElement, "MinWidth", 0.0, AffectsMeasure, WithCoerce(coerceMin))
	MinHeightProperty = MustRegister(KindElement, "MinHeight", 0.0, AffectsMeasure, WithCoerce(coerceMin))
	MaxWidthProperty  = MustRegister(KindElement, "MaxWidth", math.Inf(1), AffectsMeasure, WithCoerce(coerceMax))
	MaxHeightProperty = MustRegister(KindElement, "MaxHeight", math.Inf(1), AffectsMeasure, WithCoerce(coerceMax))

	// MarginProperty is space reserved outside the element's box.
	MarginProperty = MustRegister(KindElement, "Margin", Thickness{}, AffectsMeasure, WithCoerce(coerceThickness))

	HorizontalAlignmentProperty = MustRegister(KindElement, "HorizontalAlignment", AlignStretch, AffectsArrange)
	VerticalAlignmentProperty   = MustRegister(KindElement, "VerticalAlignment", AlignFill, AffectsArrange)

	// VisibilityProperty affects measure because Collapsed gives up layout space.
	VisibilityProperty = MustRegister(KindElement, "Visibility", Visible, AffectsMeasure|AffectsRender)

	// OpacityProperty multiplies into every descendant's drawn alpha.
	OpacityProperty = MustRegister(KindElement, "Opacity", 1.0, AffectsRender, WithCoerce(func(_ *Element, v float64) float64 {
		if math.IsNaN(v) {
			return 1
		}
		return clamp01(v)
	}))

	// IsEnabledProperty is inherited: disabling a container disables its content.
	IsEnabledProperty = MustRegister(KindElement, "IsEnabled", true, Inherits|AffectsRender)

	// IsHitTestVisibleProperty excludes an element and its subtree from pointer hit testing.
	IsHitTestVisibleProperty = MustRegister(KindElement, "IsHitTestVisible", true, 0)

	// OrientationProperty is the stacking axis of panels, scroll bars and separators.
	OrientationProperty = MustRegister(KindElement, "Orientation", Vertical, AffectsMeasure)

	// BackgroundProperty fills the element's box for kinds that paint one.
	BackgroundProperty = MustRegister(KindElement, "Background", ColorTransparent, AffectsRender)
)

func coerceLength(_ *Element, v float64) float64 {
	if v < 0 || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func coerceMin(_ *Element, v float64) float64 {
	if math.IsInf(v, 0) {
		return 0
	}
	return nonNegative(v)
}

func coerceMax(_ *Element, v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return nonNegative(v)
}

func coerceThickness(_ *Element, t Thickness) Thickness {
	return Thickness{finite(t.Left), finite(t.Top), finite(t.Right), finite(t.Bottom)}
}

// finite maps negative, NaN and infinite values to zero.
func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return 0
	}
	return nonNegative(v)
}

// --- Property accessors ---

// SetSize sets explicit Width and Height. Pass NaN to size an axis to content.
func (e *Element) SetSize(w, h float64) {
	SetValue(e, WidthProperty, w)
	SetValue(e, HeightProperty, h)
}

// SetMinSize sets MinWidth and MinHeight.
func (e *Element) SetMinSize(w, h float64) {
	SetValue(e, MinWidthProperty, w)
	SetValue(e, MinHeightProperty, h)
}

// SetMaxSize sets MaxWidth and MaxHeight.
func (e *Element) SetMaxSize(w, h float64) {
	SetValue(e, MaxWidthProperty, w)
	SetValue(e, MaxHeightProperty, h)
}

// Margin returns the element's margin.
func (e *Element) Margin() Thickness { return GetValue(e, MarginProperty) }

// SetMargin sets the element's margin.
func (e *Element) SetMargin(t Thickness) { SetValue(e, MarginProperty, t) }

// SetAlignment sets both alignment properties.
func (e *Element) SetAlignment(h HorizontalAlignment, v VerticalAlignment) {
	SetValue(e, HorizontalAlignmentProperty, h)
	SetValue(e, VerticalAlignmentProperty, v)
}

// Visibility returns the element's visibility.
func (e *Element) Visibility() Visibility { return GetValue(e, VisibilityProperty) }

// SetVisibility sets the element's visibility.
func (e *Element) SetVisibility(v Visibility) { SetValue(e, VisibilityProperty, v) }

// Opacity returns the element's own opacity.
func (e *Element) Opacity() float64 { return GetValue(e, OpacityProperty) }

// SetOpacity sets the element's opacity, clamped to [0, 1].
func (e *Element) SetOpacity(v float64) { SetValue(e, OpacityProperty, v) }

// IsEnabled returns the effective, possibly inherited, enabled state.
func (e *Element) IsEnabled() bool { return GetValue(e, IsEnabledProperty) }

// SetEnabled sets the enabled state for e and every descendant that does not override it.
func (e *Element) SetEnabled(v bool) { SetValue(e, IsEnabledProperty, v) }

// SetBackground sets the background fill color.
func (e *Element) SetBackground(c Color) { SetValue(e, BackgroundProperty, c) }

// --- Layout results ---

// DesiredSize returns the size computed by the last Measure, margins included.
func (e *Element) DesiredSize() Size { return e.desired }

// LayoutSlot returns the rectangle most recently passed to Arrange, in the
// visual parent's coordinate space.
func (e *Element) LayoutSlot() Rect { return e.slot }

// Bounds returns the element's box after margin and alignment were applied,
// in the visual parent's coordinate space.
func (e *Element) Bounds() Rect { return e.bounds }

// ActualSize returns the arranged size of the element's box.
func (e *Element) ActualSize() Size { return e.bounds.Size() }

// IsMeasureDirty reports whether the next Measure will recompute.
func (e *Element) IsMeasureDirty() bool { return e.measureDirty }

// IsArrangeDirty reports whether the next Arrange will recompute.
func (e *Element) IsArrangeDirty() bool { return e.arrangeDirty }

// IsRenderDirty reports whether the element changed visually since it was last drawn.
func (e *Element) IsRenderDirty() bool { return e.renderDirty }

// --- Invalidation ---

// InvalidateMeasure marks e and every visual ancestor up to the layout root
// measure-dirty.
func (e *Element) InvalidateMeasure() {
	var root *Element
	for p := e; p != nil; p = p.visualParent {
		p.measureDirty = true
		root = p
	}
	if root.manager != nil {
		root.manager.needsLayout = true
	}
}

// InvalidateArrange marks e arrange-dirty and queues it with the layout
// manager. Ancestors are untouched: the slot they assigned is still valid.
func (e *Element) InvalidateArrange() {
	e.arrangeDirty = true
	if m := e.layoutManager(); m != nil {
		m.queueArrange(e)
	}
}

// InvalidateVisual marks e as needing a redraw.
func (e *Element) InvalidateVisual() {
	e.renderDirty = true
	if m := e.layoutManager(); m != nil {
		m.needsRender = true
	}
}

func (e *Element) layoutManager() *LayoutManager {
	root := e
	for root.visualParent != nil {
		root = root.visualParent
	}
	return root.manager
}

// --- Measure ---

// Measure computes e's desired size for the given available size. The result
// includes margins, is non-negative on both axes and never exceeds available.
// Either axis of available may be +Inf. The result is memoized until e is
// invalidated or asked with a different available size.
func (e *Element) Measure(available Size) Size {
	if globalDebug {
		debugCheckDisposed(e, "Measure")
	}
	if math.IsNaN(available.Width) || math.IsNaN(available.Height) || available.Width < 0 || available.Height < 0 {
		debugNegativeClamp(e, "available size", available)
		available = available.clamped()
	}
	if e.measured && !e.measureDirty && available == e.available {
		return e.desired
	}
	layoutCounters.measures++
	e.available = available
	e.measured = true
	// Cleared before the override so invalidations raised by it survive to
	// the next pass.
	e.measureDirty = false
	e.arrangeDirty = true

	desired := e.measureCore(available)
	e.desired = desired
	return desired
}

// selfHider is implemented by elements that can take no space while still
// Visible, such as a CollapsiblePresenter with its content hidden.
type selfHider interface {
	hidesSelf() bool
}

// takesNoSpace reports whether e measures and arranges as if Collapsed.
// Margin and size limits are ignored in that state.
func (e *Element) takesNoSpace() bool {
	if e.Visibility() == Collapsed {
		return true
	}
	h, ok := e.visual().(selfHider)
	return ok && h.hidesSelf()
}

func (e *Element) measureCore(available Size) Size {
	if e.takesNoSpace() {
		return Size{}
	}
	margin := e.Margin()
	lim := e.limits()

	inner := available.deflate(margin)
	inner.Width = lim.clampWidth(inner.Width)
	inner.Height = lim.clampHeight(inner.Height)

	size := e.visual().MeasureOverride(inner)
	if size.Width < 0 || size.Height < 0 || math.IsNaN(size.Width) || math.IsNaN(size.Height) {
		debugNegativeClamp(e, "desired size", size)
	}
	size = size.clamped()
	if math.IsInf(size.Width, 1) {
		size.Width = 0
	}
	if math.IsInf(size.Height, 1) {
		size.Height = 0
	}
	size.Width = lim.clampWidth(size.Width)
	size.Height = lim.clampHeight(size.Height)

	return size.inflate(margin).min(available).clamped()
}

// sizeLimits is the effective [min, max] range on each axis after folding in
// explicit Width and Height.
type sizeLimits struct {
	minW, maxW, minH, maxH float64
}

func (e *Element) limits() sizeLimits {
	minW, maxW := resolveLimits(GetValue(e, WidthProperty), GetValue(e, MinWidthProperty), GetValue(e, MaxWidthProperty))
	minH, maxH := resolveLimits(GetValue(e, HeightProperty), GetValue(e, MinHeightProperty), GetValue(e, MaxHeightProperty))
	return sizeLimits{minW, maxW, minH, maxH}
}

// resolveLimits folds an explicit length into the min/max pair. An explicit
// length pins both bounds; min wins when min exceeds max.
func resolveLimits(length, lo, hi float64) (float64, float64) {
	l := length
	if math.IsNaN(l) {
		l = math.Inf(1)
	}
	hi = math.Max(math.Min(l, hi), lo)
	if math.IsNaN(length) {
		l = 0
	}
	lo = math.Max(math.Min(hi, l), lo)
	return lo, hi
}

func (l sizeLimits) clampWidth(v float64) float64  { return math.Max(l.minW, math.Min(v, l.maxW)) }
func (l sizeLimits) clampHeight(v float64) float64 { return math.Max(l.minH, math.Min(v, l.maxH)) }

// --- Arrange ---

// Arrange places e inside final, given in the visual parent's coordinate
// space. final becomes the layout slot; margin and alignment then decide the
// element's bounds within it. e is measured first if its measurement is stale.
func (e *Element) Arrange(final Rect) {
	if globalDebug {
		debugCheckDisposed(e, "Arrange")
	}
	if math.IsNaN(final.X) {
		final.X = 0
	}
	if math.IsNaN(final.Y) {
		final.Y = 0
	}
	if final.Width < 0 || final.Height < 0 || math.IsNaN(final.Width) || math.IsNaN(final.Height) {
		debugNegativeClamp(e, "final rect", final.Size())
		final = final.clamped()
	}
	if !e.measured || e.measureDirty {
		avail := e.available
		if !e.measured {
			avail = final.Size()
		}
		e.Measure(avail)
	}
	if math.IsInf(final.Width, 1) {
		final.Width = e.desired.Width
	}
	if math.IsInf(final.Height, 1) {
		final.Height = e.desired.Height
	}
	if e.arranged && !e.arrangeDirty && final == e.slot {
		return
	}
	layoutCounters.arranges++
	e.slot = final
	e.arranged = true
	e.arrangeDirty = false

	prev := e.bounds
	if e.hostCollapsed || e.takesNoSpace() {
		e.bounds = Rect{X: final.X, Y: final.Y}
		e.visual().ArrangeOverride(Size{})
	} else {
		e.bounds = e.arrangeCore(final)
		e.visual().ArrangeOverride(e.bounds.Size())
	}
	if e.bounds != prev {
		e.InvalidateVisual()
	}
}

// setHostCollapsed marks e as hidden by its visual host. The next Arrange
// gives it zero-size bounds whatever its own size limits say.
func (e *Element) setHostCollapsed(v bool) {
	if e.hostCollapsed != v {
		e.hostCollapsed = v
		e.arrangeDirty = true
	}
}

func (e *Element) arrangeCore(final Rect) Rect {
	margin := e.Margin()
	inner := final.deflate(margin)
	lim := e.limits()
	content := e.desired.deflate(margin)

	w := inner.Width
	if GetValue(e, HorizontalAlignmentProperty) != AlignStretch {
		w = math.Min(content.Width, w)
	}
	h := inner.Height
	if GetValue(e, VerticalAlignmentProperty) != AlignFill {
		h = math.Min(content.Height, h)
	}
	w = lim.clampWidth(w)
	h = lim.clampHeight(h)

	x := inner.X
	switch GetValue(e, HorizontalAlignmentProperty) {
	case AlignCenter:
		x += nonNegative((inner.Width - w) / 2)
	case AlignRight:
		x += nonNegative(inner.Width - w)
	}
	y := inner.Y
	switch GetValue(e, VerticalAlignmentProperty) {
	case AlignMiddle:
		y += nonNegative((inner.Height - h) / 2)
	case AlignBottom:
		y += nonNegative(inner.Height - h)
	}
	return Rect{x, y, w, h}
}
