package willowui

import (
	"math"
)

var (
	KindButtonBase   = NewKind("ButtonBase", KindBorder)
	KindButton       = NewKind("Button", KindButtonBase)
	KindRepeatButton = NewKind("RepeatButton", KindButtonBase)
)

var (
	// IsPressedProperty is set by the pointer bridge while a button is held
	// with the pointer over it.
	IsPressedProperty = MustRegister(KindButtonBase, "IsPressed", false, AffectsRender)
	// IsMouseOverProperty is set by the pointer bridge while the pointer is
	// over a button.
	IsMouseOverProperty = MustRegister(KindButtonBase, "IsMouseOver", false, AffectsRender)

	HoverBackgroundProperty   = MustRegister(KindButtonBase, "HoverBackground", Color{1, 1, 1, 0.12}, AffectsRender)
	PressedBackgroundProperty = MustRegister(KindButtonBase, "PressedBackground", Color{0, 0, 0, 0.25}, AffectsRender)

	// DelayProperty is the hold time in seconds before a RepeatButton starts
	// repeating. Invalid values keep the previous delay.
	DelayProperty = MustRegister(KindRepeatButton, "Delay", DefaultRepeatDelay, 0,
		WithCoerce(func(e *Element, v float64) float64 {
			if v >= 0 && !math.IsInf(v, 1) {
				return v
			}
			if o, ok := e.visual().(repeatTimerOwner); ok {
				return o.repeatTimer().Delay()
			}
			return DefaultRepeatDelay
		}),
		WithChanged(func(e *Element, _, v float64) {
			if o, ok := e.visual().(repeatTimerOwner); ok {
				o.repeatTimer().SetDelay(v)
			}
		}))

	// IntervalProperty is the time in seconds between repeats. Invalid
	// values keep the previous interval.
	IntervalProperty = MustRegister(KindRepeatButton, "Interval", DefaultRepeatInterval, 0,
		WithCoerce(func(e *Element, v float64) float64 {
			if v > 0 && !math.IsInf(v, 1) {
				return v
			}
			if o, ok := e.visual().(repeatTimerOwner); ok {
				return o.repeatTimer().Interval()
			}
			return DefaultRepeatInterval
		}),
		WithChanged(func(e *Element, _, v float64) {
			if o, ok := e.visual().(repeatTimerOwner); ok {
				o.repeatTimer().SetInterval(v)
			}
		}))
)

// defaultButtonBackground is the resting fill of buttons.
var defaultButtonBackground = Color{0.25, 0.27, 0.32, 1}

// ButtonBase is the shared behavior of clickable controls: pressed and hover
// state plus click listeners. It is a Border so it can decorate content.
type ButtonBase struct {
	Border
	clickOnPress bool
	onClick      []func()
}

// OnClick registers fn to run on every click.
func (b *ButtonBase) OnClick(fn func()) {
	b.onClick = append(b.onClick, fn)
}

// Click fires the click listeners. Disabled buttons do not click.
func (b *ButtonBase) Click() {
	if !b.IsEnabled() {
		return
	}
	for _, fn := range b.onClick {
		fn()
	}
}

// IsPressed reports whether the button is held down.
func (b *ButtonBase) IsPressed() bool {
	return GetValue(&b.Element, IsPressedProperty)
}

// IsMouseOver reports whether the pointer is over the button.
func (b *ButtonBase) IsMouseOver() bool {
	return GetValue(&b.Element, IsMouseOverProperty)
}

// SetContent replaces the decorated content.
func (b *ButtonBase) SetContent(content Visual) error {
	return b.SetChild(content)
}

func (b *ButtonBase) buttonBase() *ButtonBase { return b }

func (b *ButtonBase) press() {
	if !b.IsEnabled() {
		return
	}
	SetValue(&b.Element, IsPressedProperty, true)
	if b.clickOnPress {
		b.Click()
	}
}

// setPressed updates the pressed state while the pointer is captured, so
// moving off a held button releases it visually without clicking.
func (b *ButtonBase) setPressed(v bool) {
	SetValue(&b.Element, IsPressedProperty, v && b.IsEnabled())
}

func (b *ButtonBase) release(inside bool) {
	was := b.IsPressed()
	SetValue(&b.Element, IsPressedProperty, false)
	if was && inside && !b.clickOnPress {
		b.Click()
	}
}

func (b *ButtonBase) setPointerOver(v bool) {
	SetValue(&b.Element, IsMouseOverProperty, v)
}

func (b *ButtonBase) initButton(kind *Kind, self Visual, name string) {
	b.Init(kind, self, name)
	SetValue(&b.Element, BackgroundProperty, defaultButtonBackground)
	SetValue(&b.Element, PaddingProperty, Thickness{6, 2, 6, 2})
}

// Render draws the border chrome and a state overlay.
func (b *ButtonBase) Render(dc *DrawContext) {
	b.Border.Render(dc)
	switch {
	case !b.IsEnabled():
		dc.FillRect(dc.Bounds(), Color{0, 0, 0, 0.4})
	case b.IsPressed():
		dc.FillRect(dc.Bounds(), GetValue(&b.Element, PressedBackgroundProperty))
	case b.IsMouseOver():
		dc.FillRect(dc.Bounds(), GetValue(&b.Element, HoverBackgroundProperty))
	}
}

// Button clicks when released with the pointer still over it.
type Button struct {
	ButtonBase
}

// NewButton creates a button decorating content. content may be nil.
func NewButton(name string, content Visual) *Button {
	b := &Button{}
	b.initButton(KindButton, b, name)
	if content != nil {
		if err := b.SetChild(content); err != nil {
			panic(err)
		}
	}
	return b
}

// NewTextButton creates a button labelled with text.
func NewTextButton(name, label string) *Button {
	return NewButton(name, NewTextBlock(name+".label", label))
}

// RepeatButton clicks as soon as it is pressed, again once it has been held
// for Delay seconds, then every Interval seconds until released. It is driven
// by Update, which the Scene calls once per frame.
type RepeatButton struct {
	ButtonBase
	timer RepeatTimer
}

// repeatTimerOwner lets the Delay and Interval coercions reach the timer of
// any kind embedding RepeatButton.
type repeatTimerOwner interface {
	repeatTimer() *RepeatTimer
}

// NewRepeatButton creates a repeat button decorating content. content may be nil.
func NewRepeatButton(name string, content Visual) *RepeatButton {
	b := &RepeatButton{}
	b.timer = RepeatTimer{delay: DefaultRepeatDelay, interval: DefaultRepeatInterval}
	b.initButton(KindRepeatButton, b, name)
	b.clickOnPress = true
	if content != nil {
		if err := b.SetChild(content); err != nil {
			panic(err)
		}
	}
	return b
}

func (b *RepeatButton) repeatTimer() *RepeatTimer { return &b.timer }

// Delay returns the hold time before repeating starts.
func (b *RepeatButton) Delay() float64 { return b.timer.Delay() }

// SetDelay sets the hold time before repeating starts. Negative and NaN
// values keep the previous delay.
func (b *RepeatButton) SetDelay(v float64) { SetValue(&b.Element, DelayProperty, v) }

// Interval returns the time between repeats.
func (b *RepeatButton) Interval() float64 { return b.timer.Interval() }

// SetInterval sets the time between repeats. Values <= 0 and NaN keep the
// previous interval.
func (b *RepeatButton) SetInterval(v float64) { SetValue(&b.Element, IntervalProperty, v) }

// RepeatState returns the phase of the repeat timer.
func (b *RepeatButton) RepeatState() RepeatState { return b.timer.State() }

// Update advances the repeat timer by dt seconds, clicking once per fire.
// The button counts as held while it is enabled and pressed.
func (b *RepeatButton) Update(dt float64) {
	n := b.timer.Update(dt, b.IsEnabled() && b.IsPressed())
	for i := 0; i < n; i++ {
		b.Click()
	}
}
