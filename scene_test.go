package willowui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
)

// ticker counts the time it has been advanced.
type ticker struct {
	Element
	total float64
	calls int
}

func (k *ticker) Update(dt float64) {
	k.total += dt
	k.calls++
}

func newTicker(name string) *ticker {
	k := &ticker{}
	k.Init(NewKind("Ticker", KindElement), k, name)
	return k
}

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("scene should have a root panel named root")
	}
	if !s.Root().Kind().Is(KindPanel) {
		t.Errorf("root kind = %s, want a Panel", s.Root().Kind().Name())
	}
	if s.LayoutManager().Root() != &s.Root().Element {
		t.Error("layout manager does not own the root")
	}
	if s.Config().MaxLayoutPasses != DefaultMaxLayoutPasses {
		t.Error("scene should start with the default config")
	}
}

func TestSceneLayoutSize(t *testing.T) {
	s := NewScene()
	w, h := s.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %d, %d", w, h)
	}
	assertSize(t, "size", s.Size(), Size{640, 480})
	s.UpdateLayout()
	assertRect(t, "root bounds", s.Root().Bounds(), Rect{0, 0, 640, 480})
}

func TestSceneTickReachesNestedUpdaters(t *testing.T) {
	s := NewScene()
	outer := NewStackPanel("outer", Vertical)
	a, b := newTicker("a"), newTicker("b")
	addAll(t, s.Root(), outer, a)
	addAll(t, outer, b)

	s.tick(0.25)
	s.tick(0.25)
	for _, k := range []*ticker{a, b} {
		if k.calls != 2 {
			t.Errorf("%s: %d calls, want 2", k.Name, k.calls)
		}
		assertNear(t, k.Name+" total", k.total, 0.5)
	}
	if len(s.updateBuf) == 0 || s.updateBuf[0] != nil {
		t.Error("update buffer should be cleared after a tick")
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene()
	errStop := errors.New("stop")
	s.SetUpdateFunc(func() error { return errStop })
	s.InjectHover(1, 1)
	if err := s.UpdateWithDelta(0.1); !errors.Is(err, errStop) {
		t.Errorf("err = %v, want %v", err, errStop)
	}
	if len(s.injectQueue) != 1 {
		t.Error("input processed after the update func failed")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	captureLog(t, log.WarnLevel)
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be on")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be off")
	}
}
