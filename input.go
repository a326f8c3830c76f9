package willowui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pressable is implemented by controls that track a pointer press.
type pressable interface {
	buttonBase() *ButtonBase
}

// clickable is implemented by elements that react to a completed click at a
// point in their own coordinate space.
type clickable interface {
	click(local Vec2)
}

// pointerBridge turns raw pointer state into control state: hover, press
// capture, click and wheel scrolling. One bridge serves one Scene.
type pointerBridge struct {
	// hover is the button under the pointer, or nil.
	hover *ButtonBase
	// pressed is the button that captured the pointer on press, or nil.
	pressed *ButtonBase
	// downTarget is the topmost element hit when the pointer went down.
	downTarget *Element
	down       bool
	last       Vec2
}

// processInput feeds the bridge one frame of pointer state: the next
// injected event if any, otherwise the mouse as ebiten reports it.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s.processPointer(Vec2{float64(mx), float64(my)}, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), wy)
}

// processPointer applies one frame of pointer state. pt is in root space and
// wheel is the vertical wheel delta (positive scrolls up).
func (s *Scene) processPointer(pt Vec2, down bool, wheel float64) {
	in := &s.input
	if in.pressed != nil && in.pressed.IsDisposed() {
		in.pressed = nil
	}
	if in.hover != nil && in.hover.IsDisposed() {
		in.hover = nil
	}

	target := hitTest(&s.root.Element, pt)
	over := buttonFor(target)

	if over != in.hover {
		if in.hover != nil {
			in.hover.setPointerOver(false)
		}
		if over != nil {
			over.setPointerOver(true)
		}
		in.hover = over
	}

	switch {
	case down && !in.down:
		in.downTarget = target
		if over != nil {
			in.pressed = over
			over.press()
		}
	case down && in.down:
		if in.pressed != nil {
			in.pressed.setPressed(over == in.pressed)
		}
	case !down && in.down:
		if in.pressed != nil {
			in.pressed.release(over == in.pressed)
			in.pressed = nil
		} else if target != nil && target == in.downTarget {
			if c, ok := target.visual().(clickable); ok {
				c.click(target.ScreenToLocal(pt))
			}
		}
		in.downTarget = nil
	}
	in.down = down
	in.last = pt

	if wheel != 0 {
		if sv := scrollViewerFor(target); sv != nil {
			if wheel > 0 {
				sv.LineUp()
			} else {
				sv.LineDown()
			}
		}
	}
}

// PointerPosition returns the last pointer position seen by the scene.
func (s *Scene) PointerPosition() Vec2 {
	return s.input.last
}

// hitTest returns the topmost element under pt (root space), or nil. Later
// children are on top of earlier ones.
func hitTest(root *Element, pt Vec2) *Element {
	return hitTestAt(root, Vec2{}, pt)
}

func hitTestAt(e *Element, parentOrigin Vec2, pt Vec2) *Element {
	if e.Visibility() != Visible || !GetValue(e, IsHitTestVisibleProperty) {
		return nil
	}
	b := e.bounds
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}
	origin := parentOrigin.Add(b.Location())
	inside := NewRect(origin, b.Size()).Contains(pt.X, pt.Y)
	self := e.visual()
	if c, ok := self.(boundsClipper); ok && c.clipsToBounds() && !inside {
		return nil
	}
	if g, ok := self.(childGate); !ok || g.rendersChildren() {
		for i := len(e.visualChildren) - 1; i >= 0; i-- {
			if hit := hitTestAt(e.visualChildren[i], origin, pt); hit != nil {
				return hit
			}
		}
	}
	if inside {
		return e
	}
	return nil
}

// buttonFor returns the nearest button at or above e.
func buttonFor(e *Element) *ButtonBase {
	for p := e; p != nil; p = p.visualParent {
		if b, ok := p.visual().(pressable); ok {
			return b.buttonBase()
		}
	}
	return nil
}

// scrollViewerFor returns the nearest ScrollViewer at or above e.
func scrollViewerFor(e *Element) *ScrollViewer {
	for p := e; p != nil; p = p.visualParent {
		if sv, ok := p.visual().(*ScrollViewer); ok {
			return sv
		}
	}
	return nil
}
