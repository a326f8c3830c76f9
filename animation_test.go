package willowui

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOpacityReachesTarget(t *testing.T) {
	e := NewElement("fade")
	g := TweenOpacity(e, 0, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(e.Opacity()-0.5) > 0.01 {
		t.Errorf("halfway opacity = %f, want ~0.5", e.Opacity())
	}
	if g.Done {
		t.Error("done before the duration elapsed")
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if e.Opacity() != 0 {
		t.Errorf("opacity = %f, want 0", e.Opacity())
	}
}

func TestTweenPropertyInvalidates(t *testing.T) {
	root := NewPanel("root")
	child := fixed("child", 10, 10)
	addAll(t, root, child)
	m := layoutRoot(t, root, 100, 100)

	g := TweenProperty(child, WidthProperty, 30, 0.5, ease.Linear)
	g.Update(0.25)
	if !m.NeedsLayout() {
		t.Fatal("tweening a measure property should need layout")
	}
	g.Update(0.25)
	m.UpdateLayout(Size{100, 100})
	if math.Abs(child.ActualSize().Width-30) > 0.01 {
		t.Errorf("width = %f, want ~30", child.ActualSize().Width)
	}
}

func TestTweenStopsOnDisposedTarget(t *testing.T) {
	e := NewElement("gone")
	g := TweenOpacity(e, 0, 1.0, ease.Linear)
	e.Dispose()
	g.Update(0.5)
	if !g.Done {
		t.Error("expected Done for a disposed target")
	}
	if e.Opacity() != 1 {
		t.Errorf("disposed target was written: opacity %f", e.Opacity())
	}
}

func TestTweenDoneIsSticky(t *testing.T) {
	e := NewElement("e")
	g := TweenOpacity(e, 0.5, 0.5, ease.Linear)
	g.Update(1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	e.SetOpacity(1)
	g.Update(1)
	if e.Opacity() != 1 {
		t.Error("finished tween kept writing")
	}
}

func TestTweenScrollOffsetClamps(t *testing.T) {
	p, _, _, _ := scrollFixture(t)
	g := TweenScrollOffset(p, Vec2{0, 1000}, 1, ease.Linear)
	g.Update(1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	assertNear(t, "offset", p.Offset().Y, 300)
}
