package willowui

import "testing"

// recordingOwner keeps every scroll change it is told about.
type recordingOwner struct {
	events []ScrollChangedEvent
}

func (r *recordingOwner) OnScrollChanged(ev ScrollChangedEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingOwner) last(t *testing.T) ScrollChangedEvent {
	t.Helper()
	if len(r.events) == 0 {
		t.Fatal("no scroll events")
	}
	return r.events[len(r.events)-1]
}

// scrollFixture lays out a 200x200 presenter over content 100x500.
func scrollFixture(t *testing.T) (*ScrollContentPresenter, *Element, *recordingOwner, *LayoutManager) {
	t.Helper()
	p := NewScrollContentPresenter("p")
	owner := &recordingOwner{}
	p.SetScrollOwner(owner)
	content := fixed("content", 100, 500)
	if err := p.SetContent(content); err != nil {
		t.Fatal(err)
	}
	m := layoutRoot(t, p, 200, 200)
	return p, content, owner, m
}

func TestScrollPresenterState(t *testing.T) {
	p, content, owner, _ := scrollFixture(t)
	assertSize(t, "extent", p.Extent(), Size{100, 500})
	assertSize(t, "viewport", p.Viewport(), Size{200, 200})
	assertNear(t, "max Y", p.MaxOffset().Y, 300)
	assertNear(t, "max X", p.MaxOffset().X, 0)
	if p.Offset() != (Vec2{}) {
		t.Errorf("offset = %v, want zero", p.Offset())
	}
	assertRect(t, "content", content.Bounds(), Rect{0, 0, 100, 500})

	ev := owner.last(t)
	assertSize(t, "event extent", ev.Extent, Size{100, 500})
	assertSize(t, "event viewport", ev.Viewport, Size{200, 200})
}

func TestScrollOffsetClamping(t *testing.T) {
	p, content, owner, m := scrollFixture(t)

	tests := []struct {
		name      string
		set       float64
		want      float64
		wantDelta float64
	}{
		{"past end", 1000, 300, 300},
		{"before start", -50, 0, -300},
		{"inside", 120, 120, 120},
		{"exact end", 300, 300, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetVerticalOffset(tt.set)
			assertNear(t, "offset", p.Offset().Y, tt.want)
			ev := owner.last(t)
			assertNear(t, "offset delta", ev.OffsetDelta.Y, tt.wantDelta)
			assertNear(t, "extent delta", ev.ExtentDelta.Height, 0)
			assertNear(t, "viewport delta", ev.ViewportDelta.Height, 0)
		})
	}

	m.UpdateLayout(Size{200, 200})
	assertRect(t, "content arranged", content.Bounds(), Rect{0, -300, 100, 500})
}

func TestScrollNoEventWhenUnchanged(t *testing.T) {
	p, _, owner, m := scrollFixture(t)
	n := len(owner.events)
	p.SetVerticalOffset(0)
	p.SetVerticalOffset(-10)
	p.SetHorizontalOffset(50)
	m.UpdateLayout(Size{200, 200})
	if len(owner.events) != n {
		t.Errorf("got %d extra events for no-op scrolls", len(owner.events)-n)
	}
	if m.NeedsLayout() {
		t.Error("no-op scrolls should not need layout")
	}
}

func TestScrollLineAndPage(t *testing.T) {
	p, _, _, _ := scrollFixture(t)
	steps := []struct {
		name string
		do   func()
		want float64
	}{
		{"line down", p.LineDown, 16},
		{"page down", p.PageDown, 216},
		{"page down clamps", p.PageDown, 300},
		{"line up", p.LineUp, 284},
		{"page up clamps", p.PageUp, 84},
		{"page up to start", p.PageUp, 0},
		{"line up at start", p.LineUp, 0},
	}
	for _, s := range steps {
		s.do()
		assertNear(t, s.name, p.Offset().Y, s.want)
	}
}

func TestScrollLineSizeInherited(t *testing.T) {
	host := NewPanel("host")
	SetValue(&host.Element, ScrollLineSizeProperty, 40)
	p := NewScrollContentPresenter("p")
	if err := p.SetContent(fixed("content", 100, 500)); err != nil {
		t.Fatal(err)
	}
	addAll(t, host, p)
	layoutRoot(t, host, 200, 200)

	p.LineDown()
	assertNear(t, "offset", p.Offset().Y, 40)

	SetValue(&host.Element, ScrollLineSizeProperty, -1)
	p.LineDown()
	assertNear(t, "offset after invalid size", p.Offset().Y, 40+DefaultScrollLineSize)
}

func TestScrollExtentShrinkReclamps(t *testing.T) {
	p, content, owner, m := scrollFixture(t)
	p.SetVerticalOffset(300)

	content.SetSize(100, 250)
	m.UpdateLayout(Size{200, 200})
	assertNear(t, "offset", p.Offset().Y, 50)
	ev := owner.last(t)
	assertNear(t, "extent delta", ev.ExtentDelta.Height, -250)
	assertNear(t, "offset delta", ev.OffsetDelta.Y, -250)
}

func TestScrollMakeVisible(t *testing.T) {
	p := NewScrollContentPresenter("p")
	list := NewStackPanel("list", Vertical)
	var items []*Element
	for i := 0; i < 10; i++ {
		it := fixed("item", 100, 50)
		items = append(items, it)
		addAll(t, list, it)
	}
	if err := p.SetContent(list); err != nil {
		t.Fatal(err)
	}
	m := layoutRoot(t, p, 200, 200)

	r := p.MakeVisible(items[5], Rect{Width: 100, Height: 50})
	assertNear(t, "offset after item 5", p.Offset().Y, 100)
	assertRect(t, "item 5 in viewport", r, Rect{0, 150, 100, 50})

	m.UpdateLayout(Size{200, 200})
	r = p.MakeVisible(items[3], Rect{Width: 100, Height: 50})
	assertNear(t, "already visible", p.Offset().Y, 100)
	assertRect(t, "item 3 in viewport", r, Rect{0, 50, 100, 50})

	r = p.MakeVisible(items[0], Rect{Width: 100, Height: 50})
	assertNear(t, "offset after item 0", p.Offset().Y, 0)
	assertRect(t, "item 0 in viewport", r, Rect{0, 0, 100, 50})

	if got := p.MakeVisible(fixed("stranger", 1, 1), Rect{Width: 1, Height: 1}); got != (Rect{}) {
		t.Errorf("non-descendant = %+v, want zero", got)
	}
	if p.Offset().Y != 0 {
		t.Error("non-descendant scrolled the presenter")
	}
}

func TestScrollDisabledAxis(t *testing.T) {
	p, _, _, m := scrollFixture(t)
	p.SetCanVerticallyScroll(false)
	if !m.NeedsLayout() {
		t.Fatal("disabling an axis should need layout")
	}
	m.UpdateLayout(Size{200, 200})
	assertNear(t, "max Y", p.MaxOffset().Y, 0)
	p.SetVerticalOffset(100)
	assertNear(t, "offset", p.Offset().Y, 0)
}

func TestScrollExtentAndViewportShrinkTogether(t *testing.T) {
	p := NewScrollContentPresenter("p")
	owner := &recordingOwner{}
	p.SetScrollOwner(owner)
	content := fixed("content", 100, 1000)
	if err := p.SetContent(content); err != nil {
		t.Fatal(err)
	}
	m := layoutRoot(t, p, 200, 500)
	p.SetVerticalOffset(500)
	assertNear(t, "start offset", p.Offset().Y, 500)
	n := len(owner.events)

	content.SetSize(100, 800)
	m.UpdateLayout(Size{200, 300})

	assertNear(t, "offset", p.Offset().Y, 500)
	assertNear(t, "max offset", p.MaxOffset().Y, 500)
	if got := len(owner.events) - n; got != 1 {
		t.Fatalf("got %d events for one layout pass, want 1", got)
	}
	ev := owner.last(t)
	assertSize(t, "event extent", ev.Extent, Size{100, 800})
	assertSize(t, "event viewport", ev.Viewport, Size{200, 300})
	assertNear(t, "offset delta", ev.OffsetDelta.Y, 0)
	assertNear(t, "extent delta", ev.ExtentDelta.Height, -200)
	assertNear(t, "viewport delta", ev.ViewportDelta.Height, -200)
	assertRect(t, "content", content.Bounds(), Rect{0, -500, 100, 800})
}
