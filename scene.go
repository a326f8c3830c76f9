package willowui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Updater is implemented by elements that advance with time, such as
// RepeatButton and ScrollViewer. The Scene calls Update once per tick on every
// Updater in its visual tree.
type Updater interface {
	Update(dt float64)
}

// Scene is the top-level object that owns the element tree, its layout
// manager, input state and render buffer.
type Scene struct {
	root   *Panel
	layout *LayoutManager
	dc     DrawContext
	input  pointerBridge

	width, height float64

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir receives PNGs queued with Screenshot. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	config     Config
	updateFunc func() error
	updateBuf  []Updater
	debug      bool
}

// NewScene creates a scene with an empty root panel.
func NewScene() *Scene {
	root := NewPanel("root")
	s := &Scene{
		root:   root,
		layout: NewLayoutManager(root),
		config: DefaultConfig(),
	}
	s.dc.commands = make([]RenderCommand, 0, defaultCommandCap)
	return s
}

// Root returns the scene's root panel.
func (s *Scene) Root() *Panel {
	return s.root
}

// LayoutManager returns the scene's layout manager.
func (s *Scene) LayoutManager() *LayoutManager {
	return s.layout
}

// SetUpdateFunc sets a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update processes input and advances timers by one tick.
func (s *Scene) Update() error {
	return s.UpdateWithDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateWithDelta runs the user callback and any attached TestRunner,
// processes input, and advances every Updater in the tree by dt seconds.
func (s *Scene) UpdateWithDelta(dt float64) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.tick(dt)
	return nil
}

// tick advances every Updater by dt. The set is collected first so updaters
// may restructure the tree.
func (s *Scene) tick(dt float64) {
	s.updateBuf = collectUpdaters(&s.root.Element, s.updateBuf[:0])
	for i, u := range s.updateBuf {
		u.Update(dt)
		s.updateBuf[i] = nil
	}
}

func collectUpdaters(e *Element, buf []Updater) []Updater {
	if u, ok := e.visual().(Updater); ok {
		buf = append(buf, u)
	}
	for _, c := range e.visualChildren {
		buf = collectUpdaters(c, buf)
	}
	return buf
}

// Layout implements ebiten.Game: the root is laid out in the outside size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SetSize sets the size the root is laid out in.
func (s *Scene) SetSize(w, h float64) {
	s.width, s.height = w, h
}

// Size returns the size the root is laid out in.
func (s *Scene) Size() Size {
	return Size{s.width, s.height}
}

// UpdateLayout brings the tree's layout up to date for the scene size.
func (s *Scene) UpdateLayout() {
	s.layout.UpdateLayout(Size{s.width, s.height})
}

// Render lays out the tree if needed and records its render commands. The
// returned slice is reused by the next call.
func (s *Scene) Render() []RenderCommand {
	s.UpdateLayout()
	s.dc.reset()
	s.dc.traverse(&s.root.Element, Vec2{}, 1)
	s.layout.MarkRendered()
	return s.dc.commands
}

// Draw lays out the tree, records its commands and submits them to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if w, h := float64(b.Dx()), float64(b.Dy()); s.width == 0 && s.height == 0 {
		s.SetSize(w, h)
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.UpdateLayout()
	if s.debug {
		stats.layoutTime = time.Since(t0)
		stats.layout = s.layout.Stats()
		t0 = time.Now()
	}

	s.dc.reset()
	s.dc.traverse(&s.root.Element, Vec2{}, 1)
	s.layout.MarkRendered()
	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.dc.commands)
		t0 = time.Now()
	}

	submitCommands(screen, s.dc.commands)
	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}
	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// use panics, tree depth and child count warnings are logged, and per-frame
// stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		enableDebugLogger()
	}
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the root is laid out in the
	// new size.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	showFPS bool
	fps     fpsCounter
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.fps.update(dt)
	return g.scene.UpdateWithDelta(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and runs scene until the window closes or an update
// returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetSize(float64(cfg.Width), float64(cfg.Height))
	return ebiten.RunGame(&game{scene: scene, showFPS: cfg.ShowFPS})
}
