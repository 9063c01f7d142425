package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Ankeraout/emuwalker/core"
)

// keyBindings maps host keys to the three Pokéwalker buttons.
var keyBindings = []struct {
	key    ebiten.Key
	button core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeySpace, core.KeyMiddle},
	{ebiten.KeyArrowRight, core.KeyRight},
}

// Game is the ebiten front end: one emulated frame per Update, the
// framebuffer blitted in Draw.
type Game struct {
	core   *core.Core
	screen *ebiten.Image
	frame  []byte
}

func newGame(c *core.Core) *Game {
	g := &Game{core: c}
	c.OnVBlank = g.onVBlank
	return g
}

// Update pumps input edges into the core and advances the emulation to
// the next VBlank.
func (g *Game) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.core.SetInput(b.button, core.KeyPressed)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.core.SetInput(b.button, core.KeyReleased)
		}
	}

	g.core.FrameAdvance()
	return nil
}

// onVBlank snapshots the framebuffer while the core is between frames.
func (g *Game) onVBlank() {
	g.frame = g.core.VideoRGBA()
}

// Draw blits the most recent frame; ebiten scales the logical screen
// to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(core.ScreenWidth, core.ScreenHeight)
	}
	if g.frame != nil {
		g.screen.WritePixels(g.frame)
	}
	screen.DrawImage(g.screen, nil)
}

// Layout fixes the logical screen to the LCD resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
