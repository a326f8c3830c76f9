package willowui

// syntheticPointerEvent is one injected frame of pointer state. Positions are
// in root space, the same space real cursor input uses.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
	wheel   float64
}

func (s *Scene) inject(evt syntheticPointerEvent) {
	s.injectQueue = append(s.injectQueue, evt)
}

// InjectPress queues a left-button press at (x, y). Each injected event is
// consumed by one Update.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(syntheticPointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the button held down.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(syntheticPointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectHover queues a pointer move to (x, y) with the button up.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(syntheticPointerEvent{pos: Vec2{x, y}})
}

// InjectRelease queues a button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(syntheticPointerEvent{pos: Vec2{x, y}})
}

// InjectClick queues a press followed by a release at (x, y). Consumes two
// frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectHold queues a press at (x, y) kept down for frames frames, then a
// release. Repeat buttons under the pointer fire as they would for a real
// hold. Minimum frames is 1.
func (s *Scene) InjectHold(x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	s.InjectPress(x, y)
	for i := 1; i < frames; i++ {
		s.InjectMove(x, y)
	}
	s.InjectRelease(x, y)
}

// InjectWheel queues a wheel step at (x, y). Positive dy scrolls up.
func (s *Scene) InjectWheel(x, y, dy float64) {
	s.inject(syntheticPointerEvent{pos: Vec2{x, y}, wheel: dy})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.pos, evt.pressed, evt.wheel)
	return true
}
