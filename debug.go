package bramble

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// logOnce prints a [bramble]-prefixed warning to stderr the first time the
// formatted message occurs for this scene. Load-time problems (bad walkable
// data, failed grid builds) surface once, not per frame or per query.
func (s *Scene) logOnce(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.warned == nil {
		s.warned = make(map[string]struct{})
	}
	if _, seen := s.warned[msg]; seen {
		return
	}
	s.warned[msg] = struct{}{}
	_, _ = fmt.Fprintf(os.Stderr, "[bramble] %s\n", msg)
}

// Debug overlay tints.
var (
	debugBlockedColor  = Color{R: 1, G: 0.2, B: 0.2, A: 0.35}
	debugPathColor     = Color{R: 0.2, G: 1, B: 0.4, A: 0.9}
	debugWaypointColor = Color{R: 1, G: 1, B: 0.2, A: 0.9}
)

// drawDebugOverlay tints blocked navigation cells and draws the player's
// remaining path.
func (s *Scene) drawDebugOverlay(screen *ebiten.Image) {
	grid := s.nav.Grid()
	if grid == nil {
		return
	}
	zoom := s.Camera.Zoom
	cell := grid.CellSize() * zoom

	for gy := 0; gy < grid.Rows(); gy++ {
		for gx := 0; gx < grid.Cols(); gx++ {
			if grid.IsWalkable(gx, gy) {
				continue
			}
			wx, wy := grid.GridToWorld(gx, gy)
			sx, sy := s.Camera.WorldToScreen(wx, wy)
			fillRect(screen, sx-cell/2, sy-cell/2, cell, cell, debugBlockedColor)
		}
	}

	if s.player == nil || s.player.Movement == nil {
		return
	}
	path := s.player.Movement.Path()
	if len(path) == 0 {
		return
	}
	prev := Vec2{X: s.player.X, Y: s.player.Y}
	for _, wp := range path {
		x1, y1 := s.Camera.WorldToScreen(prev.X, prev.Y)
		x2, y2 := s.Camera.WorldToScreen(wp.X, wp.Y)
		strokeLine(screen, x1, y1, x2, y2, debugPathColor)
		fillRect(screen, x2-2, y2-2, 4, 4, debugWaypointColor)
		prev = wp
	}
}

// fillRect draws a solid screen-space rectangle using WhitePixel.
func fillRect(screen *ebiten.Image, x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A))
	screen.DrawImage(WhitePixel, &op)
}

// strokeLine draws a 1px screen-space line by stretching and rotating
// WhitePixel.
func strokeLine(screen *ebiten.Image, x1, y1, x2, y2 float64, c Color) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(length, 1)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A))
	screen.DrawImage(WhitePixel, &op)
}
