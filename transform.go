package willowui

// Element geometry is translation-only: each element's box sits at
// Bounds().Location() inside its visual parent. A scroll offset is expressed
// by the presenter arranging its content at a negative origin, so these
// conversions need no special case for scrolling.

// TransformToAncestor returns the offset that maps e's local coordinates into
// ancestor's local coordinates. ok is false when ancestor is not e or one of
// its visual ancestors. A nil ancestor means the root's parent space.
func (e *Element) TransformToAncestor(ancestor *Element) (offset Vec2, ok bool) {
	for p := e; p != nil; p = p.visualParent {
		if p == ancestor {
			return offset, true
		}
		offset = offset.Add(p.bounds.Location())
	}
	return offset, ancestor == nil
}

// LocalToScreen converts a point in e's local space to root space.
func (e *Element) LocalToScreen(p Vec2) Vec2 {
	o, _ := e.TransformToAncestor(nil)
	return p.Add(o)
}

// ScreenToLocal converts a point in root space to e's local space.
func (e *Element) ScreenToLocal(p Vec2) Vec2 {
	o, _ := e.TransformToAncestor(nil)
	return p.Sub(o)
}

// ScreenBounds returns e's box in root space.
func (e *Element) ScreenBounds() Rect {
	return NewRect(e.LocalToScreen(Vec2{}), e.bounds.Size())
}

// localRect returns e's box in its own coordinate space.
func (e *Element) localRect() Rect {
	return Rect{Width: e.bounds.Width, Height: e.bounds.Height}
}
