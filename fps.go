package willowui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter is the FPS/TPS overlay drawn by Run when RunConfig.ShowFPS is
// set. Its text refreshes every ~0.5 seconds.
type fpsCounter struct {
	img     *ebiten.Image
	elapsed float64
	label   string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.label != "" && f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if f.img == nil {
		// 100x32 is enough for two lines of debug text.
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, f.label)
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	if f.img == nil {
		return
	}
	screen.DrawImage(f.img, nil)
}
