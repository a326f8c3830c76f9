package willowui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 values simultaneously, writing each new
// value through a setter. Create one via the convenience constructors and call
// Update(dt) each frame, or let a ScrollViewer drive its own. If the target
// element is disposed, the group stops immediately.
//
// There is no global animation manager: users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  [4]func(float64)
	target *Element
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target element has been disposed, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func (g *TweenGroup) add(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.apply[g.count] = apply
	g.count++
}

// TweenProperty animates a float64 property on e from its current effective
// value to to.
func TweenProperty(e *Element, p *Property[float64], to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: e}
	g.add(GetValue(e, p), to, duration, fn, func(v float64) { SetValue(e, p, v) })
	return g
}

// TweenOpacity animates e's Opacity.
func TweenOpacity(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenProperty(e, OpacityProperty, to, duration, fn)
}

// TweenScrollOffset animates both offsets of a scrollable toward to. Each
// step goes through SetHorizontalOffset/SetVerticalOffset, so values are
// clamped to the scrollable's current range.
func TweenScrollOffset(info ScrollInfo, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	if v, ok := info.(Visual); ok {
		g.target = v.Base()
	}
	from := info.Offset()
	g.add(from.X, to.X, duration, fn, info.SetHorizontalOffset)
	g.add(from.Y, to.Y, duration, fn, info.SetVerticalOffset)
	return g
}
