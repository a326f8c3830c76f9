package willowui

import (
	"image"
	"testing"
)

var testRed = Color{1, 0, 0, 1}

// renderScene lays out and renders s at 200x100.
func renderScene(s *Scene) []RenderCommand {
	s.SetSize(200, 100)
	return s.Render()
}

func commandsOf(cmds []RenderCommand, typ CommandType) []RenderCommand {
	var out []RenderCommand
	for _, c := range cmds {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// labelledBorder adds a 50x20 red border at (10, 5) holding the text "hi".
func labelledBorder(t *testing.T, s *Scene) (*Border, *TextBlock) {
	t.Helper()
	b := NewBorder("b")
	b.SetSize(50, 20)
	b.SetAlignment(AlignLeft, AlignTop)
	b.SetMargin(Thickness{Left: 10, Top: 5})
	b.SetBackground(testRed)
	b.SetPadding(Uniform(2))
	label := NewTextBlock("label", "hi")
	if err := b.SetChild(label); err != nil {
		t.Fatal(err)
	}
	addAll(t, s.Root(), b)
	return b, label
}

func TestRenderCommandsInRootSpace(t *testing.T) {
	s := NewScene()
	b, label := labelledBorder(t, s)
	cmds := renderScene(s)

	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2: %+v", len(cmds), cmds)
	}
	fill, txt := cmds[0], cmds[1]
	if fill.Type != CommandFill || fill.Element != &b.Element {
		t.Errorf("first command = %+v, want the border fill", fill)
	}
	assertRect(t, "fill", fill.Bounds, Rect{10, 5, 50, 20})
	if fill.Color != testRed {
		t.Errorf("fill color = %+v", fill.Color)
	}
	if txt.Type != CommandText || txt.Text != "hi" || txt.Element != &label.Element {
		t.Errorf("second command = %+v, want the label text", txt)
	}
	assertRect(t, "text", txt.Bounds, Rect{12, 7, 12, 16})
	if txt.Color != ColorWhite {
		t.Errorf("text color = %+v, want inherited white", txt.Color)
	}
}

func TestRenderOpacityAccumulates(t *testing.T) {
	s := NewScene()
	b, label := labelledBorder(t, s)
	b.SetOpacity(0.5)
	label.SetOpacity(0.5)
	cmds := renderScene(s)
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	assertNear(t, "fill alpha", cmds[0].Color.A, 0.5)
	assertNear(t, "text alpha", cmds[1].Color.A, 0.25)

	b.SetOpacity(0)
	if cmds := renderScene(s); len(cmds) != 0 {
		t.Errorf("transparent subtree emitted %d commands", len(cmds))
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	tests := []struct {
		name string
		v    Visibility
	}{
		{"hidden", Hidden},
		{"collapsed", Collapsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			b, _ := labelledBorder(t, s)
			b.SetVisibility(tt.v)
			if cmds := renderScene(s); len(cmds) != 0 {
				t.Errorf("got %d commands, want none", len(cmds))
			}
		})
	}
}

func TestRenderHiddenPresenterContent(t *testing.T) {
	s := NewScene()
	p := NewCollapsiblePresenter("p")
	content := NewBorder("content")
	content.SetBackground(testRed)
	if err := p.SetContent(content); err != nil {
		t.Fatal(err)
	}
	addAll(t, s.Root(), p)

	if cmds := renderScene(s); len(commandsOf(cmds, CommandFill)) != 1 {
		t.Fatalf("visible content: %d fills, want 1", len(commandsOf(cmds, CommandFill)))
	}
	p.SetContentVisible(false)
	if cmds := renderScene(s); len(cmds) != 0 {
		t.Errorf("hidden content emitted %d commands", len(cmds))
	}
}

func TestRenderClipsScrolledContent(t *testing.T) {
	s := NewScene()
	p := NewScrollContentPresenter("p")
	p.SetSize(100, 50)
	p.SetAlignment(AlignLeft, AlignTop)
	content := NewBorder("content")
	content.SetSize(100, 200)
	content.SetBackground(testRed)
	if err := p.SetContent(content); err != nil {
		t.Fatal(err)
	}
	addAll(t, s.Root(), p)

	cmds := renderScene(s)
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want push, fill, pop", len(cmds))
	}
	if cmds[0].Type != CommandPushClip || cmds[2].Type != CommandPopClip {
		t.Errorf("clip commands = %v / %v", cmds[0].Type, cmds[2].Type)
	}
	assertRect(t, "clip", cmds[0].Bounds, Rect{0, 0, 100, 50})
	assertRect(t, "fill", cmds[1].Bounds, Rect{0, 0, 100, 200})

	p.SetVerticalOffset(30)
	cmds = renderScene(s)
	assertRect(t, "scrolled fill", cmds[1].Bounds, Rect{0, -30, 100, 200})
}

func TestRenderClearsDirtyFlags(t *testing.T) {
	s := NewScene()
	b, _ := labelledBorder(t, s)
	renderScene(s)
	if s.LayoutManager().NeedsRender() || b.IsRenderDirty() {
		t.Error("render flags not cleared")
	}
	b.SetBackground(Color{0, 1, 0, 1})
	if !b.IsRenderDirty() || !s.LayoutManager().NeedsRender() {
		t.Error("background change did not mark render dirty")
	}
}

func TestDrawContextSkipsEmpty(t *testing.T) {
	dc := &DrawContext{opacity: 1}
	dc.FillRect(Rect{Width: 0, Height: 10}, testRed)
	dc.FillRect(Rect{Width: 10, Height: 10}, ColorTransparent)
	dc.StrokeRect(Rect{Width: 10, Height: 10}, 0, testRed)
	dc.DrawText("", Vec2{}, DebugFont, testRed)
	dc.DrawText("x", Vec2{}, nil, testRed)
	if len(dc.Commands()) != 0 {
		t.Errorf("got %d commands for empty draws", len(dc.Commands()))
	}
}

func TestClipRect(t *testing.T) {
	got := clipRect(image.Rect(0, 0, 100, 100), Rect{10.5, -5, 20.2, 30})
	if got != image.Rect(10, 0, 31, 25) {
		t.Errorf("clipRect = %v", got)
	}
}
