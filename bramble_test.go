package bramble

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearWithin(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// mustPolygon builds a polygon or fails the test.
func mustPolygon(t *testing.T, vertices ...Vec2) *PolygonShape {
	t.Helper()
	p, err := NewPolygon(vertices)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

// squareVerts returns the four corners of an axis-aligned square.
func squareVerts(x, y, size float64) []Vec2 {
	return []Vec2{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(25, 40) {
		t.Error("interior point not contained")
	}
	if !r.Contains(10, 20) || !r.Contains(40, 60) {
		t.Error("edge points should be contained")
	}
	if r.Contains(9, 40) || r.Contains(25, 61) {
		t.Error("exterior point contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{X: 11, Y: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

// --- Direction ---

func TestDirectionFromVector(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{0, 1, DirSouth},
		{-1, 1, DirSouthWest},
		{-1, 0, DirWest},
		{-1, -1, DirNorthWest},
		{0, -1, DirNorth},
		{1, -1, DirNorthEast},
		{1, 0, DirEast},
		{1, 1, DirSouthEast},
		{0, 0, DirSouth}, // zero vector defaults to facing the camera
	}
	for _, tt := range tests {
		if got := DirectionFromVector(tt.dx, tt.dy); got != tt.want {
			t.Errorf("DirectionFromVector(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestDirectionFromVectorNearestOctant(t *testing.T) {
	// 10° off due south still snaps to south.
	a := math.Pi/2 + 10*math.Pi/180
	if got := DirectionFromVector(math.Cos(a), math.Sin(a)); got != DirSouth {
		t.Errorf("near-south vector = %v, want %v", got, DirSouth)
	}
}

func TestDirectionDelta(t *testing.T) {
	if d := directionDelta(DirSouth, DirSouth); d != 0 {
		t.Errorf("delta(S,S) = %d, want 0", d)
	}
	if d := directionDelta(DirEast, DirSouth); d != 2 {
		t.Errorf("delta(E,S) = %d, want 2", d)
	}
	if d := directionDelta(DirNorth, DirSouth); d != 4 {
		t.Errorf("delta(N,S) = %d, want 4", d)
	}
	if d := directionDelta(DirSouthEast, DirSouth); d != 1 {
		t.Errorf("delta(SE,S) = %d, want 1", d)
	}
}

func TestStateString(t *testing.T) {
	if StateWalking.String() != "walking" || StateIdle.String() != "idle" {
		t.Error("state names wrong")
	}
	if StateBlocked.String() != "blocked" || StateTurning.String() != "turning" {
		t.Error("state names wrong")
	}
}
