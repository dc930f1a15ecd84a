package bramble

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaultsCenterViewport(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	assertNear(t, "X", c.X, 400)
	assertNear(t, "Y", c.Y, 300)
	assertNear(t, "Zoom", c.Zoom, 1.0)
}

func TestCameraWorldScreenRoundTrip(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.X, c.Y = 512, 384
	c.Zoom = 2.0

	sx, sy := c.WorldToScreen(512, 384)
	assertNear(t, "center sx", sx, 400)
	assertNear(t, "center sy", sy, 300)

	wx, wy := c.ScreenToWorld(c.WorldToScreen(123, 456))
	assertNear(t, "round-trip wx", wx, 123)
	assertNear(t, "round-trip wy", wy, 456)
}

func TestCameraFollowSnapsWithFullLerp(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	a := NewActor("hero", 1000, 900)
	c.Follow(a, 0, -50, 1.0)

	c.Update(tick)
	assertNear(t, "X", c.X, 1000)
	assertNear(t, "Y", c.Y, 850)

	a.X = 1100
	c.Update(tick)
	assertNear(t, "X after move", c.X, 1100)
}

func TestCameraFollowLerpApproaches(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.X, c.Y = 0, 0
	a := NewActor("hero", 100, 0)
	c.Follow(a, 0, 0, 0.5)

	c.Update(tick)
	assertNear(t, "X after one update", c.X, 50)
	c.Update(tick)
	assertNear(t, "X after two updates", c.X, 75)

	c.Unfollow()
	c.Update(tick)
	assertNear(t, "X after unfollow", c.X, 75)
}

func TestCameraClampToBounds(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.SetBounds(Rect{Width: 1024, Height: 768})

	// Pushed past the left edge: clamped so the view stays inside.
	c.X, c.Y = 0, 0
	c.Update(tick)
	assertNear(t, "clamped X", c.X, 400)
	assertNear(t, "clamped Y", c.Y, 300)

	// Past the right edge.
	c.X, c.Y = 2000, 2000
	c.Update(tick)
	assertNear(t, "clamped max X", c.X, 1024-400)
	assertNear(t, "clamped max Y", c.Y, 768-300)

	c.ClearBounds()
	c.X = 2000
	c.Update(tick)
	assertNear(t, "unclamped X", c.X, 2000)
}

func TestCameraCentersWhenBoundsSmallerThanView(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.SetBounds(Rect{Width: 400, Height: 300})
	c.X, c.Y = 999, 999
	c.Update(tick)
	assertNear(t, "centered X", c.X, 200)
	assertNear(t, "centered Y", c.Y, 150)
}

func TestCameraScrollTo(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.X, c.Y = 0, 0
	c.ScrollTo(100, 200, 1.0, ease.Linear)

	for i := 0; i < 30; i++ { // half way
		c.Update(tick)
	}
	assertNearWithin(t, "mid-scroll X", c.X, 50, 2)
	assertNearWithin(t, "mid-scroll Y", c.Y, 100, 4)

	for i := 0; i < 90; i++ { // past the end
		c.Update(tick)
	}
	assertNearWithin(t, "final X", c.X, 100, 0.01)
	assertNearWithin(t, "final Y", c.Y, 200, 0.01)
}

func TestCameraVisibleBounds(t *testing.T) {
	c := NewCamera(Rect{Width: 800, Height: 600})
	c.X, c.Y = 500, 400
	c.Zoom = 2.0
	b := c.VisibleBounds()
	assertNear(t, "X", b.X, 300)
	assertNear(t, "Y", b.Y, 250)
	assertNear(t, "Width", b.Width, 400)
	assertNear(t, "Height", b.Height, 300)
}
