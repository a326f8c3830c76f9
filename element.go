package willowui

import (
	"fmt"
	"math"
)

// KindElement is the root of every element kind. Framework properties such as
// Margin and Visibility are declared on it.
var KindElement = NewKind("Element", nil)

// Visual is the capability set the layout engine drives. Every element kind
// embeds Element, which supplies Base and default implementations of the
// other three methods; kinds override the ones they need.
type Visual interface {
	// Base returns the embedded Element.
	Base() *Element
	// MeasureOverride measures visual children against available (margins
	// already removed) and returns the element's content size.
	MeasureOverride(available Size) Size
	// ArrangeOverride positions visual children inside a box of the given size,
	// in element-local coordinates.
	ArrangeOverride(final Size)
	// Render records draw commands for the element itself. Children are
	// rendered by the traversal.
	Render(dc *DrawContext)
}

// elementIDCounter is a plain counter (no atomic; elements are single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the base of every node in the widget tree. It sits in two
// parallel forests: the visual tree drives layout and rendering, the logical
// tree drives property inheritance. Most containers keep them identical;
// presenters host content visually without owning it logically.
type Element struct {
	// ID is a unique identifier assigned at creation.
	ID uint32
	// Name is a human-readable label used in errors and debug output.
	Name string
	// UserData is arbitrary application data.
	UserData any

	kind *Kind
	self Visual

	visualParent    *Element
	logicalParent   *Element
	visualChildren  []*Element
	logicalChildren []*Element

	values map[*propertyMeta]any

	// Layout state.
	desired      Size
	available    Size
	slot         Rect
	bounds       Rect
	measured     bool
	arranged     bool
	measureDirty bool
	arrangeDirty bool
	renderDirty  bool
	// hostCollapsed is set by a presenter hiding this element; it arranges
	// as if Collapsed.
	hostCollapsed bool

	// manager is set on the layout root only.
	manager *LayoutManager

	disposed bool
}

// NewElement creates a plain element. A plain element overlays its visual
// children, each filling the element's box.
func NewElement(name string) *Element {
	e := &Element{}
	e.Init(KindElement, e, name)
	return e
}

// Init prepares an embedded Element. Kinds defined outside this package call
// it from their constructors with self set to the outer value so the layout
// engine dispatches to their overrides.
func (e *Element) Init(kind *Kind, self Visual, name string) {
	if kind == nil {
		kind = KindElement
	}
	if self == nil {
		self = e
	}
	e.ID = nextElementID()
	e.Name = name
	e.kind = kind
	e.self = self
	e.measureDirty = true
	e.arrangeDirty = true
	e.renderDirty = true
}

// Base returns e.
func (e *Element) Base() *Element {
	return e
}

// Kind returns the element's kind.
func (e *Element) Kind() *Kind {
	if e.kind == nil {
		return KindElement
	}
	return e.kind
}

// Self returns the outermost value embedding e.
func (e *Element) Self() Visual {
	return e.visual()
}

func (e *Element) visual() Visual {
	if e.self == nil {
		e.self = e
	}
	return e.self
}

func (e *Element) String() string {
	return fmt.Sprintf("%s %q", e.Kind().Name(), e.Name)
}

// MeasureOverride is the default sizing policy: the per-axis maximum of every
// visual child's desired size.
func (e *Element) MeasureOverride(available Size) Size {
	var s Size
	for _, c := range e.visualChildren {
		d := c.Measure(available)
		s.Width = math.Max(s.Width, d.Width)
		s.Height = math.Max(s.Height, d.Height)
	}
	return s
}

// ArrangeOverride is the default placement policy: every visual child fills
// the element's box.
func (e *Element) ArrangeOverride(final Size) {
	for _, c := range e.visualChildren {
		c.Arrange(Rect{Width: final.Width, Height: final.Height})
	}
}

// Render draws nothing.
func (e *Element) Render(*DrawContext) {}

// --- Tree accessors ---

// VisualParent returns the visual parent, or nil.
func (e *Element) VisualParent() *Element { return e.visualParent }

// LogicalParent returns the logical parent, or nil.
func (e *Element) LogicalParent() *Element { return e.logicalParent }

// VisualChildren returns the visual child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) VisualChildren() []*Element { return e.visualChildren }

// LogicalChildren returns the logical child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) LogicalChildren() []*Element { return e.logicalChildren }

// NumVisualChildren returns the number of visual children.
func (e *Element) NumVisualChildren() int { return len(e.visualChildren) }

// VisualChildAt returns the visual child at the given index.
func (e *Element) VisualChildAt(index int) *Element { return e.visualChildren[index] }

// IsVisualAncestorOf reports whether e is a strict visual ancestor of d.
func (e *Element) IsVisualAncestorOf(d *Element) bool {
	for p := d.visualParent; p != nil; p = p.visualParent {
		if p == e {
			return true
		}
	}
	return false
}

// IsLogicalAncestorOf reports whether e is a strict logical ancestor of d.
func (e *Element) IsLogicalAncestorOf(d *Element) bool {
	for p := d.logicalParent; p != nil; p = p.logicalParent {
		if p == e {
			return true
		}
	}
	return false
}

// --- Tree manipulation ---

// AddVisualChild appends child to e's visual children.
// Fails with *InvalidChildError if child already has a visual parent or is e
// or one of its visual ancestors. Panics if child is nil.
func (e *Element) AddVisualChild(child Visual) error {
	return e.InsertVisualChild(child, len(e.visualChildren))
}

// InsertVisualChild inserts child into e's visual children at index.
// Same failure behavior as AddVisualChild; panics if index is out of range.
func (e *Element) InsertVisualChild(child Visual, index int) error {
	c := childBase(child)
	if globalDebug {
		debugCheckDisposed(e, "InsertVisualChild (parent)")
	}
	if index < 0 || index > len(e.visualChildren) {
		panic("willowui: child index out of range")
	}
	if err := e.checkVisualChild(c); err != nil {
		return err
	}
	c.visualParent = e
	e.visualChildren = append(e.visualChildren, nil)
	copy(e.visualChildren[index+1:], e.visualChildren[index:])
	e.visualChildren[index] = c
	e.attached(c)
	return nil
}

// RemoveVisualChild detaches child from e's visual children.
// Panics if child's visual parent is not e.
func (e *Element) RemoveVisualChild(child Visual) {
	c := childBase(child)
	if c.visualParent != e {
		panic("willowui: child's visual parent is not this element")
	}
	e.visualChildren = removeElement(e.visualChildren, c)
	c.visualParent = nil
	e.detached(c)
}

// AddLogicalChild appends child to e's logical children.
// Fails with *InvalidChildError if child already has a logical parent or is e
// or one of its logical ancestors. Panics if child is nil.
func (e *Element) AddLogicalChild(child Visual) error {
	c := childBase(child)
	if globalDebug {
		debugCheckDisposed(e, "AddLogicalChild (parent)")
	}
	if err := e.checkLogicalChild(c); err != nil {
		return err
	}
	c.logicalParent = e
	e.logicalChildren = append(e.logicalChildren, c)
	e.attached(c)
	return nil
}

// RemoveLogicalChild detaches child from e's logical children.
// Panics if child's logical parent is not e.
func (e *Element) RemoveLogicalChild(child Visual) {
	c := childBase(child)
	if c.logicalParent != e {
		panic("willowui: child's logical parent is not this element")
	}
	e.logicalChildren = removeElement(e.logicalChildren, c)
	c.logicalParent = nil
	e.detached(c)
}

func (e *Element) checkVisualChild(c *Element) error {
	switch {
	case c.disposed:
		return e.childError(c, ReasonDisposed)
	case c.visualParent != nil:
		return e.childError(c, ReasonHasVisualParent)
	case c == e || c.IsVisualAncestorOf(e):
		return e.childError(c, ReasonCycle)
	}
	return nil
}

func (e *Element) checkLogicalChild(c *Element) error {
	switch {
	case c.disposed:
		return e.childError(c, ReasonDisposed)
	case c.logicalParent != nil:
		return e.childError(c, ReasonHasLogicalParent)
	case c == e || c.IsLogicalAncestorOf(e):
		return e.childError(c, ReasonCycle)
	}
	return nil
}

func (e *Element) childError(c *Element, reason ChildReason) error {
	return &InvalidChildError{Parent: e.Name, Child: c.Name, Reason: reason}
}

// attached invalidates layout after c joined one of e's trees. Inherited
// values may resolve differently below c, so the whole subtree re-measures.
func (e *Element) attached(c *Element) {
	markSubtreeMeasureDirty(c)
	e.InvalidateMeasure()
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(e)
	}
}

func (e *Element) detached(c *Element) {
	markSubtreeMeasureDirty(c)
	c.manager = nil
	e.InvalidateMeasure()
}

// Dispose detaches e from both trees, marks it as disposed and recursively
// disposes its descendants. A visual child whose logical parent lies outside
// the disposed subtree is only detached; its logical owner keeps it.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	if e.visualParent != nil {
		e.visualParent.RemoveVisualChild(e)
	}
	if e.logicalParent != nil {
		e.logicalParent.RemoveLogicalChild(e)
	}
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, c := range e.visualChildren {
		c.visualParent = nil
		if c.logicalParent != nil && c.logicalParent != e {
			// Owned elsewhere; the owner disposes it.
			c.hostCollapsed = false
			markSubtreeMeasureDirty(c)
			c.manager = nil
			continue
		}
		c.logicalParent = nil
		c.dispose()
	}
	for _, c := range e.logicalChildren {
		c.logicalParent = nil
		if !c.disposed {
			if c.visualParent != nil {
				c.visualParent.RemoveVisualChild(c)
			}
			c.dispose()
		}
	}
	e.visualChildren = nil
	e.logicalChildren = nil
	e.visualParent = nil
	e.logicalParent = nil
	e.values = nil
	e.manager = nil
	e.UserData = nil
}

// IsDisposed returns true if e has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

func childBase(child Visual) *Element {
	if child == nil {
		panic("willowui: cannot add nil child")
	}
	c := child.Base()
	if c == nil {
		panic("willowui: cannot add nil child")
	}
	if c.self == nil {
		c.self = child
	}
	return c
}

// removeElement removes c from list using copy+nil so the backing array does
// not retain a dangling pointer.
func removeElement(list []*Element, c *Element) []*Element {
	for i, x := range list {
		if x == c {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

// markSubtreeMeasureDirty marks node and its visual descendants measure- and
// arrange-dirty.
func markSubtreeMeasureDirty(node *Element) {
	node.measureDirty = true
	node.arrangeDirty = true
	node.renderDirty = true
	for _, c := range node.visualChildren {
		markSubtreeMeasureDirty(c)
	}
}
