package willowui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandFill     CommandType = iota // filled rectangle
	CommandStroke                      // rectangle outline
	CommandText                        // one line of text
	CommandPushClip                    // intersect the clip with Bounds
	CommandPopClip                     // restore the previous clip
)

// RenderCommand is a single draw instruction emitted during traversal.
// Bounds are in root space; Color alpha already includes the accumulated
// opacity of the element and its ancestors.
type RenderCommand struct {
	Type        CommandType
	Bounds      Rect
	Color       Color
	StrokeWidth float64
	Text        string
	Font        Font
	// Element is the element whose Render emitted the command.
	Element *Element
}

// DrawContext records the commands an element emits from Render. Coordinates
// passed to its methods are local to the element being rendered.
type DrawContext struct {
	commands []RenderCommand
	origin   Vec2
	size     Size
	opacity  float64
	current  *Element
}

// Bounds returns the current element's box in its own coordinate space.
func (dc *DrawContext) Bounds() Rect {
	return Rect{Width: dc.size.Width, Height: dc.size.Height}
}

// Opacity returns the accumulated opacity applied to emitted colors.
func (dc *DrawContext) Opacity() float64 {
	return dc.opacity
}

// Element returns the element currently rendering.
func (dc *DrawContext) Element() *Element {
	return dc.current
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated by the caller.
func (dc *DrawContext) Commands() []RenderCommand {
	return dc.commands
}

func (dc *DrawContext) reset() {
	for i := range dc.commands {
		dc.commands[i].Element = nil
		dc.commands[i].Font = nil
	}
	dc.commands = dc.commands[:0]
}

func (dc *DrawContext) fade(c Color) Color {
	c.A *= dc.opacity
	return c
}

// FillRect fills r with c.
func (dc *DrawContext) FillRect(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	dc.commands = append(dc.commands, RenderCommand{
		Type:    CommandFill,
		Bounds:  r.Offset(dc.origin),
		Color:   dc.fade(c),
		Element: dc.current,
	})
}

// StrokeRect outlines r with a line of the given width.
func (dc *DrawContext) StrokeRect(r Rect, width float64, c Color) {
	if width <= 0 || c.A <= 0 {
		return
	}
	dc.commands = append(dc.commands, RenderCommand{
		Type:        CommandStroke,
		Bounds:      r.Offset(dc.origin),
		Color:       dc.fade(c),
		StrokeWidth: width,
		Element:     dc.current,
	})
}

// DrawText draws one line of text with its top-left corner at at.
func (dc *DrawContext) DrawText(s string, at Vec2, font Font, c Color) {
	if s == "" || font == nil || c.A <= 0 {
		return
	}
	w, h := font.MeasureString(s)
	dc.commands = append(dc.commands, RenderCommand{
		Type:    CommandText,
		Bounds:  Rect{at.X + dc.origin.X, at.Y + dc.origin.Y, w, h},
		Color:   dc.fade(c),
		Text:    s,
		Font:    font,
		Element: dc.current,
	})
}

func (dc *DrawContext) pushClip(r Rect) {
	dc.commands = append(dc.commands, RenderCommand{Type: CommandPushClip, Bounds: r, Element: dc.current})
}

func (dc *DrawContext) popClip() {
	dc.commands = append(dc.commands, RenderCommand{Type: CommandPopClip, Element: dc.current})
}

// childGate is implemented by elements that can suppress their subtree.
type childGate interface {
	rendersChildren() bool
}

// boundsClipper is implemented by elements that clip their subtree to their box.
type boundsClipper interface {
	clipsToBounds() bool
}

// traverse walks the visual tree depth-first in child order, emitting
// commands for visible elements with a non-empty box. Children draw after
// (on top of) their parent.
func (dc *DrawContext) traverse(e *Element, parentOrigin Vec2, parentOpacity float64) {
	e.renderDirty = false
	if e.Visibility() != Visible {
		return
	}
	b := e.bounds
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	opacity := parentOpacity * e.Opacity()
	if opacity <= 0 {
		return
	}
	origin := parentOrigin.Add(b.Location())

	dc.origin, dc.size, dc.opacity, dc.current = origin, b.Size(), opacity, e
	self := e.visual()
	self.Render(dc)

	if g, ok := self.(childGate); ok && !g.rendersChildren() {
		return
	}
	clip := false
	if c, ok := self.(boundsClipper); ok && c.clipsToBounds() {
		clip = true
		dc.current = e
		dc.pushClip(NewRect(origin, b.Size()))
	}
	for _, c := range e.visualChildren {
		dc.traverse(c, origin, opacity)
	}
	if clip {
		dc.current = e
		dc.popClip()
	}
}

// submitCommands draws recorded commands onto target. Clip commands narrow
// drawing to a sub-image of target; coordinates are unchanged because
// ebiten sub-images share their parent's coordinate space.
func submitCommands(target *ebiten.Image, commands []RenderCommand) {
	stack := []*ebiten.Image{target}
	for i := range commands {
		cmd := &commands[i]
		dst := stack[len(stack)-1]
		switch cmd.Type {
		case CommandFill:
			b := cmd.Bounds
			vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), cmd.Color.RGBA(), false)
		case CommandStroke:
			b := cmd.Bounds
			vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), float32(cmd.StrokeWidth), cmd.Color.RGBA(), false)
		case CommandText:
			if d, ok := cmd.Font.(glyphDrawer); ok {
				d.drawText(dst, cmd.Text, cmd.Bounds.X, cmd.Bounds.Y, cmd.Color)
			}
		case CommandPushClip:
			stack = append(stack, dst.SubImage(clipRect(dst.Bounds(), cmd.Bounds)).(*ebiten.Image))
		case CommandPopClip:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// clipRect converts r to integer pixels and intersects it with within.
func clipRect(within image.Rectangle, r Rect) image.Rectangle {
	ir := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
	return ir.Intersect(within)
}
