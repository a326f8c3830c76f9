// Package willowui is a retained-mode widget layer for [Ebitengine].
//
// Willowui provides a typed property system with inheritance and invalidation,
// a two-pass Measure/Arrange layout engine, stacking and toolbar panels,
// decorators, collapsible presenters, scrolling viewports and repeat buttons
// that every non-trivial game UI needs.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := willowui.NewScene()
//	scene.Root().AddChild(willowui.NewTextButton("ok", "OK"))
//	willowui.Run(scene, willowui.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// A [Scene] is itself an [ebiten.Game], so it can be passed to
// [ebiten.RunGame] or driven from a game's own Update and Draw.
//
// # Elements and properties
//
// Every widget embeds [Element] and calls [Element.Init] with its [Kind] and
// itself. Elements form two trees: the visual tree, which is laid out and
// drawn, and the logical tree of content ownership. Inherited properties
// flow down the logical tree, falling back to the visual parent for parts
// that have no logical owner.
//
// Properties are declared once, usually as package-level variables:
//
//	var GlowProperty = willowui.MustRegister(KindGlowLabel, "Glow", 0.0,
//		willowui.AffectsRender)
//
// and read and written through [GetValue] and [SetValue]. Changing a value
// invalidates measure, arrange or render according to the declaration's
// flags.
//
// # Layout
//
// Layout runs in two passes. Measure computes each element's desired size
// from the space offered; Arrange assigns each element its final rectangle.
// Both are memoized and re-run only for invalidated elements. A
// [LayoutManager] owns the root and brings the tree up to date in
// [LayoutManager.UpdateLayout].
//
// # Scrolling
//
// A [ScrollContentPresenter] implements [ScrollInfo]: it measures content
// unbounded, records extent and viewport, clamps the offset and reports every
// change to its [ScrollOwner]. [ScrollViewer] is the standard owner and adds
// scroll bars, wheel scrolling and animated scrolling via [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package willowui
