package bramble

import (
	"fmt"
	"math"
)

// edgeEpsilon is the distance within which a point counts as lying on a
// polygon edge. Edge points are treated as inside so walkability doesn't
// flicker at region boundaries.
const edgeEpsilon = 1e-9

// RegionShape is a 2D area that supports point containment testing.
// Shapes are resolved once at load time; the pathfinding hot loop never
// dispatches on a shape's concrete kind.
type RegionShape interface {
	Contains(x, y float64) bool
	Bounds() Rect
}

// RectShape is an axis-aligned rectangular region shape.
type RectShape struct {
	Rect Rect
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (s RectShape) Contains(x, y float64) bool {
	return s.Rect.Contains(x, y)
}

// Bounds returns the rectangle itself.
func (s RectShape) Bounds() Rect {
	return s.Rect
}

// PolygonShape is a simple (non-self-intersecting) closed polygon region
// shape. The first vertex is not repeated at the end. Construct with
// NewPolygon, which validates the vertex list.
type PolygonShape struct {
	Vertices []Vec2
	bounds   Rect
}

// NewPolygon validates vertices and returns a PolygonShape. It returns an
// error wrapping ErrInvalidPolygon when the polygon has fewer than 3
// vertices, zero area (all vertices collinear), or self-intersecting edges.
func NewPolygon(vertices []Vec2) (*PolygonShape, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidPolygon, len(vertices))
	}
	if math.Abs(signedArea(vertices)) < edgeEpsilon {
		return nil, fmt.Errorf("%w: vertices are collinear", ErrInvalidPolygon)
	}
	if i, j, found := findSelfIntersection(vertices); found {
		return nil, fmt.Errorf("%w: edges %d and %d intersect", ErrInvalidPolygon, i, j)
	}
	p := &PolygonShape{Vertices: vertices}
	p.bounds = vertexBounds(vertices)
	return p, nil
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd
// ray-casting rule. Points on an edge count as inside.
func (p *PolygonShape) Contains(x, y float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := p.Vertices[j]
		b := p.Vertices[i]
		if pointOnSegment(x, y, a, b) {
			return true
		}
		if (b.Y > y) != (a.Y > y) {
			crossX := (a.X-b.X)*(y-b.Y)/(a.Y-b.Y) + b.X
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (p *PolygonShape) Bounds() Rect {
	return p.bounds
}

// Region is a single named walkable or non-walkable area of a scene.
// Regions are immutable after scene load.
type Region struct {
	Name     string
	Walkable bool
	Shape    RegionShape
}

// signedArea returns twice the signed area of the polygon (shoelace formula).
func signedArea(vertices []Vec2) float64 {
	var area float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

// vertexBounds returns the AABB of a vertex list.
func vertexBounds(vertices []Vec2) Rect {
	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// pointOnSegment reports whether (x, y) lies on the segment a-b within
// edgeEpsilon.
func pointOnSegment(x, y float64, a, b Vec2) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(x-a.X, y-a.Y) <= edgeEpsilon
	}
	t := ((x-a.X)*dx + (y-a.Y)*dy) / lenSq
	if t < 0 || t > 1 {
		return false
	}
	px := a.X + t*dx
	py := a.Y + t*dy
	return math.Hypot(x-px, y-py) <= edgeEpsilon
}

// findSelfIntersection checks every non-adjacent edge pair for a proper
// crossing. O(n²), run once at load time.
func findSelfIntersection(vertices []Vec2) (int, int, bool) {
	n := len(vertices)
	for i := 0; i < n; i++ {
		a1 := vertices[i]
		a2 := vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Skip adjacent edges (shared endpoint), including the
			// last-first edge pair.
			if i == 0 && j == n-1 {
				continue
			}
			b1 := vertices[j]
			b2 := vertices[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// segmentsCross reports whether segments a1-a2 and b1-b2 properly intersect
// (cross strictly, not merely touching at an endpoint).
func segmentsCross(a1, a2, b1, b2 Vec2) bool {
	d1 := cross(b2.X-b1.X, b2.Y-b1.Y, a1.X-b1.X, a1.Y-b1.Y)
	d2 := cross(b2.X-b1.X, b2.Y-b1.Y, a2.X-b1.X, a2.Y-b1.Y)
	d3 := cross(a2.X-a1.X, a2.Y-a1.Y, b1.X-a1.X, b1.Y-a1.Y)
	d4 := cross(a2.X-a1.X, a2.Y-a1.Y, b2.X-a1.X, b2.Y-a1.Y)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}
