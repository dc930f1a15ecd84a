package bramble

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Debug enables the navigation overlay and stderr diagnostics.
	Debug bool
}

// Run creates a window and drives the scene's update/draw loop until the
// window closes. For full control, implement ebiten.Game yourself and call
// Scene.Update and Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(scene.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.Height)
	}
	scene.Camera.Viewport = Rect{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}
	scene.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, w: cfg.Width, h: cfg.Height})
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
