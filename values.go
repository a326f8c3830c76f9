package willowui

// --- Value store ---
//
// Each element keeps a sparse map of locally set values keyed by declaration
// identity. Reads of unset properties walk the inheritance chain (for
// Inherits declarations) and fall back to the default without allocating.

// GetValue returns the effective value of p on e: the local value if set,
// otherwise the nearest inheritance ancestor's local value when p inherits,
// otherwise the declared default.
func GetValue[T comparable](e *Element, p *Property[T]) T {
	m := &p.propertyMeta
	if v, ok := e.localValue(m); ok {
		return v.(T)
	}
	if m.flags&Inherits != 0 {
		for a := e.inheritanceParent(); a != nil; a = a.inheritanceParent() {
			if v, ok := a.localValue(m); ok {
				return v.(T)
			}
		}
	}
	return p.def
}

// SetValue coerces v, stores it as e's local value for p and, when the
// effective value changed, applies p's invalidation flags, fires the changed
// callback and pushes the change to inheriting descendants.
func SetValue[T comparable](e *Element, p *Property[T], v T) {
	if globalDebug {
		debugCheckDisposed(e, "SetValue")
	}
	if p.coerce != nil {
		v = p.coerce(e, v)
	}
	old := GetValue(e, p)
	if e.values == nil {
		e.values = make(map[*propertyMeta]any)
	}
	e.values[&p.propertyMeta] = v
	if old == v {
		return
	}
	valueChanged(e, p, old, v)
}

// ClearValue removes e's local value for p so it resolves through
// inheritance or the default again.
func ClearValue[T comparable](e *Element, p *Property[T]) {
	if _, ok := e.localValue(&p.propertyMeta); !ok {
		return
	}
	old := GetValue(e, p)
	delete(e.values, &p.propertyMeta)
	v := GetValue(e, p)
	if old == v {
		return
	}
	valueChanged(e, p, old, v)
}

// HasLocalValue reports whether d has been set directly on e.
func HasLocalValue(e *Element, d Declaration) bool {
	_, ok := e.localValue(d.meta())
	return ok
}

func (e *Element) localValue(m *propertyMeta) (any, bool) {
	if e.values == nil {
		return nil, false
	}
	v, ok := e.values[m]
	return v, ok
}

// valueChanged runs the side effects of an effective value change on e and
// propagates inherited changes to descendants that do not override p.
func valueChanged[T comparable](e *Element, p *Property[T], old, v T) {
	e.invalidateFor(p.flags)
	if p.changed != nil {
		p.changed(e, old, v)
	}
	if p.flags&Inherits == 0 {
		return
	}
	e.forEachInheritanceChild(func(c *Element) {
		if _, ok := c.localValue(&p.propertyMeta); ok {
			return
		}
		valueChanged(c, p, old, v)
	})
}

func (e *Element) invalidateFor(flags PropertyFlags) {
	if flags&AffectsMeasure != 0 {
		e.InvalidateMeasure()
	}
	if flags&AffectsArrange != 0 {
		e.InvalidateArrange()
	}
	if flags&AffectsRender != 0 {
		e.InvalidateVisual()
	}
}

// inheritanceParent is the logical parent, or the visual parent for elements
// nothing owns logically (template parts).
func (e *Element) inheritanceParent() *Element {
	if e.logicalParent != nil {
		return e.logicalParent
	}
	return e.visualParent
}

// forEachInheritanceChild visits every element whose inheritanceParent is e.
func (e *Element) forEachInheritanceChild(fn func(c *Element)) {
	for _, c := range e.logicalChildren {
		fn(c)
	}
	for _, c := range e.visualChildren {
		if c.logicalParent == nil {
			fn(c)
		}
	}
}
