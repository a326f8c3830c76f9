package willowui

import "testing"

func TestBorderChrome(t *testing.T) {
	b := NewBorder("b")
	b.SetPadding(Uniform(2))
	b.SetBorderThickness(Uniform(1))
	child := fixed("child", 20, 10)
	if err := b.SetChild(child); err != nil {
		t.Fatal(err)
	}
	layoutRoot(t, b, 100, 100)

	assertSize(t, "desired", b.DesiredSize(), Size{26, 16})
	assertRect(t, "child slot", child.LayoutSlot(), Rect{3, 3, 94, 94})
	assertRect(t, "child bounds", child.Bounds(), Rect{3, 3, 20, 10})
}

func TestBorderWithoutChild(t *testing.T) {
	b := NewBorder("b")
	b.SetPadding(Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4})
	assertSize(t, "desired", b.Measure(Size{100, 100}), Size{4, 6})
}

func TestDecoratorReplaceChild(t *testing.T) {
	d := NewDecorator("d")
	first, second := fixed("first", 5, 5), fixed("second", 7, 9)
	if err := d.SetChild(first); err != nil {
		t.Fatal(err)
	}
	if first.LogicalParent() != &d.Element || first.VisualParent() != &d.Element {
		t.Fatal("child not attached in both trees")
	}
	if err := d.SetChild(second); err != nil {
		t.Fatal(err)
	}
	if first.LogicalParent() != nil || first.VisualParent() != nil {
		t.Error("replaced child still attached")
	}
	if d.Child() != second {
		t.Error("Child() did not return the new child")
	}
	assertSize(t, "desired", d.Measure(Size{100, 100}), Size{7, 9})

	if err := d.SetChild(nil); err != nil {
		t.Fatal(err)
	}
	assertSize(t, "empty", d.Measure(Size{50, 50}), Size{})
}

func TestDecoratorRejectsOwnedChild(t *testing.T) {
	owner := NewPanel("owner")
	child := fixed("child", 1, 1)
	addAll(t, owner, child)
	d := NewDecorator("d")
	if err := d.SetChild(child); err == nil {
		t.Fatal("expected error for a child owned elsewhere")
	}
	if d.Child() != nil {
		t.Error("failed SetChild installed the child")
	}
}
