package willowui

import "testing"

func TestExpanderToggle(t *testing.T) {
	header := fixed("header", 50, 10)
	x := NewExpander("x", header)
	content := fixed("content", 50, 40)
	if err := x.SetContent(content); err != nil {
		t.Fatal(err)
	}
	m := layoutRoot(t, x, 100, 100)
	if x.IsExpanded() {
		t.Fatal("expander should start collapsed")
	}
	assertSize(t, "collapsed", x.DesiredSize(), Size{62, 14})
	assertRect(t, "hidden content", content.Bounds(), Rect{})

	x.Header().Click()
	if !x.IsExpanded() {
		t.Fatal("header click did not expand")
	}
	m.UpdateLayout(Size{100, 100})
	assertSize(t, "expanded", x.DesiredSize(), Size{62, 54})
	assertRect(t, "content", content.Bounds(), Rect{0, 0, 50, 40})

	x.Toggle()
	m.UpdateLayout(Size{100, 100})
	assertSize(t, "collapsed again", x.DesiredSize(), Size{62, 14})
}

func TestExpanderLogicalChildren(t *testing.T) {
	header := fixed("header", 50, 10)
	x := NewExpander("x", header)
	content := fixed("content", 50, 40)
	if err := x.SetContent(content); err != nil {
		t.Fatal(err)
	}
	for _, c := range []*Element{header, content} {
		if c.LogicalParent() != &x.Element {
			t.Errorf("%s logical parent = %v", c.Name, c.LogicalParent())
		}
	}
	if header.VisualParent() != &x.Header().Element {
		t.Error("header is not hosted by the header button")
	}

	SetValue(&x.Element, ForegroundProperty, Color{1, 0, 0, 1})
	for _, c := range []*Element{header, content} {
		if GetValue(c, ForegroundProperty) != (Color{1, 0, 0, 1}) {
			t.Errorf("%s did not inherit from the expander", c.Name)
		}
	}

	if err := x.SetContent(nil); err != nil {
		t.Fatal(err)
	}
	if content.LogicalParent() != nil || content.VisualParent() != nil || x.Content() != nil {
		t.Error("content still attached after SetContent(nil)")
	}
}

func TestSeparatorMeasure(t *testing.T) {
	tests := []struct {
		o    Orientation
		want Size
	}{
		{Horizontal, Size{0, SeparatorThickness + 4}},
		{Vertical, Size{SeparatorThickness + 4, 0}},
	}
	for _, tt := range tests {
		s := NewSeparator("s", tt.o)
		assertSize(t, "desired", s.Measure(Infinite), tt.want)
	}
}

func TestToolBarLayout(t *testing.T) {
	tb := NewToolBar("tb", 4)
	a, b := fixed("a", 20, 10), fixed("b", 20, 10)
	if err := tb.AddItem(a); err != nil {
		t.Fatal(err)
	}
	sep := tb.AddSeparator()
	if err := tb.AddItem(b); err != nil {
		t.Fatal(err)
	}
	if GetValue(&sep.Element, OrientationProperty) != Vertical {
		t.Error("separator in a horizontal toolbar should be vertical")
	}
	layoutRoot(t, tb, 200, 100)

	assertSize(t, "desired", tb.DesiredSize(), Size{57, 14})
	assertNear(t, "b X", b.Bounds().X, 33)
	if a.LogicalParent() != &tb.Items().Element {
		t.Error("items should belong to the item panel")
	}
}
