package willowui

import (
	"errors"
	"testing"
)

func TestAddVisualChildSetsParent(t *testing.T) {
	p := NewElement("p")
	c := NewElement("c")
	if err := p.AddVisualChild(c); err != nil {
		t.Fatal(err)
	}
	if c.VisualParent() != p {
		t.Error("VisualParent not set")
	}
	if c.LogicalParent() != nil {
		t.Error("AddVisualChild should not set the logical parent")
	}
	if p.NumVisualChildren() != 1 || p.VisualChildAt(0) != c {
		t.Error("child not listed")
	}
}

func TestAttachRefusesOwnedChild(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	if err := a.AddVisualChild(c); err != nil {
		t.Fatal(err)
	}

	err := b.AddVisualChild(c)
	var ice *InvalidChildError
	if !errors.As(err, &ice) {
		t.Fatalf("err = %v, want *InvalidChildError", err)
	}
	if ice.Reason != ReasonHasVisualParent || ice.Parent != "b" || ice.Child != "c" {
		t.Errorf("error = %+v", ice)
	}
	if c.VisualParent() != a || b.NumVisualChildren() != 0 {
		t.Error("child must not be stolen")
	}

	if err := a.AddLogicalChild(c); err != nil {
		t.Fatal(err)
	}
	err = b.AddLogicalChild(c)
	if !errors.As(err, &ice) || ice.Reason != ReasonHasLogicalParent {
		t.Errorf("logical err = %v, want ReasonHasLogicalParent", err)
	}
}

func TestAttachRefusesCycle(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	if err := a.AddVisualChild(b); err != nil {
		t.Fatal(err)
	}
	if err := b.AddVisualChild(c); err != nil {
		t.Fatal(err)
	}

	var ice *InvalidChildError
	if err := c.AddVisualChild(a); !errors.As(err, &ice) || ice.Reason != ReasonCycle {
		t.Errorf("err = %v, want ReasonCycle", err)
	}
	if err := c.AddVisualChild(b); !errors.As(err, &ice) || ice.Reason != ReasonHasVisualParent {
		t.Errorf("err = %v, want ReasonHasVisualParent", err)
	}
	if err := a.AddVisualChild(a); !errors.As(err, &ice) || ice.Reason != ReasonCycle {
		t.Errorf("self err = %v, want ReasonCycle", err)
	}
}

func TestLogicalCycle(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	if err := a.AddLogicalChild(b); err != nil {
		t.Fatal(err)
	}
	var ice *InvalidChildError
	if err := b.AddLogicalChild(a); !errors.As(err, &ice) || ice.Reason != ReasonCycle {
		t.Errorf("err = %v, want ReasonCycle", err)
	}
}

func TestInsertVisualChildOrder(t *testing.T) {
	p := NewElement("p")
	a, b, c := NewElement("a"), NewElement("b"), NewElement("c")
	for _, x := range []*Element{a, c} {
		if err := p.AddVisualChild(x); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.InsertVisualChild(b, 1); err != nil {
		t.Fatal(err)
	}
	got := p.VisualChildren()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("order = %v", got)
	}
}

func TestInsertVisualChildOutOfRangePanics(t *testing.T) {
	p := NewElement("p")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for index out of range")
		}
	}()
	_ = p.InsertVisualChild(NewElement("c"), 2)
}

func TestAddNilChildPanics(t *testing.T) {
	p := NewElement("p")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil child")
		}
	}()
	_ = p.AddVisualChild(nil)
}

func TestRemoveVisualChild(t *testing.T) {
	p := NewElement("p")
	c := NewElement("c")
	if err := p.AddVisualChild(c); err != nil {
		t.Fatal(err)
	}
	p.RemoveVisualChild(c)
	if c.VisualParent() != nil || p.NumVisualChildren() != 0 {
		t.Error("child not removed")
	}
	// Re-attaching elsewhere is allowed after detaching.
	q := NewElement("q")
	if err := q.AddVisualChild(c); err != nil {
		t.Errorf("re-attach: %v", err)
	}
}

func TestRemoveVisualChildWrongParentPanics(t *testing.T) {
	p := NewElement("p")
	c := NewElement("c")
	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a child of another parent")
		}
	}()
	p.RemoveVisualChild(c)
}

func TestDisposeDetachesSubtree(t *testing.T) {
	root := NewPanel("root")
	a := NewPanel("a")
	b := NewElement("b")
	if err := root.AddChild(a); err != nil {
		t.Fatal(err)
	}
	if err := a.AddChild(b); err != nil {
		t.Fatal(err)
	}

	a.Dispose()
	if !a.IsDisposed() || !b.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 0 || len(root.LogicalChildren()) != 0 {
		t.Error("disposed element still attached to root")
	}

	var ice *InvalidChildError
	if err := root.AddChild(b); !errors.As(err, &ice) || ice.Reason != ReasonDisposed {
		t.Errorf("err = %v, want ReasonDisposed", err)
	}
	a.Dispose() // second call is a no-op
}

func TestDisposeHostKeepsForeignContent(t *testing.T) {
	sv := NewScrollViewer("sv")
	content := fixed("content", 10, 10)
	if err := sv.SetContent(content); err != nil {
		t.Fatal(err)
	}

	sv.Presenter().Dispose()
	if content.IsDisposed() {
		t.Fatal("content owned by the viewer was disposed with its host")
	}
	if content.VisualParent() != nil {
		t.Error("content still has a visual parent")
	}
	if content.LogicalParent() != &sv.Element {
		t.Error("content lost its logical owner")
	}

	if err := sv.SetContent(nil); err != nil {
		t.Fatal(err)
	}
	if content.LogicalParent() != nil || sv.Content() != nil {
		t.Error("SetContent(nil) did not release the content")
	}
	other := NewPanel("other")
	if err := other.AddChild(content); err != nil {
		t.Errorf("content not reusable: %v", err)
	}
}

func TestDisposeOwnerDisposesHostedContent(t *testing.T) {
	sv := NewScrollViewer("sv")
	content := fixed("content", 10, 10)
	if err := sv.SetContent(content); err != nil {
		t.Fatal(err)
	}
	sv.Dispose()
	if !content.IsDisposed() || !sv.Presenter().IsDisposed() {
		t.Error("disposing the owner should dispose its content and parts")
	}
}

func TestDisposeHiddenPresenterReleasesContent(t *testing.T) {
	owner := NewPanel("owner")
	p := NewCollapsiblePresenter("p")
	addAll(t, owner, p)
	content := fixed("content", 40, 30)
	if err := owner.AddLogicalChild(content); err != nil {
		t.Fatal(err)
	}
	if err := p.SetContent(content); err != nil {
		t.Fatal(err)
	}
	p.SetContentVisible(false)
	layoutRoot(t, owner, 100, 100)
	assertRect(t, "hidden", content.Bounds(), Rect{})

	p.Dispose()
	if content.IsDisposed() {
		t.Fatal("content disposed with its visual host")
	}
	host := NewCollapsiblePresenter("host")
	addAll(t, owner, host)
	if err := host.SetContent(content); err != nil {
		t.Fatal(err)
	}
	layoutRoot(t, owner, 100, 100)
	assertSize(t, "rehosted", content.Bounds().Size(), Size{40, 30})
}

func TestAttachInvalidatesAncestors(t *testing.T) {
	root := NewStackPanel("root", Vertical)
	mid := NewStackPanel("mid", Vertical)
	if err := root.AddChild(mid); err != nil {
		t.Fatal(err)
	}
	m := layoutRoot(t, root, 50, 50)
	if root.IsMeasureDirty() {
		t.Fatal("root dirty after layout")
	}

	if err := mid.AddChild(fixed("x", 5, 5)); err != nil {
		t.Fatal(err)
	}
	if !root.IsMeasureDirty() || !mid.IsMeasureDirty() {
		t.Error("attach should invalidate measure up to the root")
	}
	if !m.NeedsLayout() {
		t.Error("manager should need layout")
	}
}

type customWidget struct {
	Element
	measured int
}

func (w *customWidget) MeasureOverride(Size) Size {
	w.measured++
	return Size{11, 13}
}

func TestInitDispatchesToOuterKind(t *testing.T) {
	kind := NewKind("Custom", KindElement)
	w := &customWidget{}
	w.Init(kind, w, "w")
	if w.Kind() != kind || w.Self() != Visual(w) {
		t.Error("Init did not record kind and self")
	}
	d := w.Measure(Size{100, 100})
	assertSize(t, "desired", d, Size{11, 13})
	if w.measured != 1 {
		t.Errorf("override called %d times, want 1", w.measured)
	}
}
