package bramble

import "math"

// DefaultCellSize is the navigation grid resolution in world units per cell
// when the scene doesn't specify one.
const DefaultCellSize = 16.0

// discSamples is the number of boundary points sampled around the character
// radius disc when testing whether a cell is fully walkable.
const discSamples = 8

// gridNeighbor is one of the 8 grid steps with its movement cost.
type gridNeighbor struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

var gridNeighborOffsets = [...]gridNeighbor{
	{dx: 0, dy: -1, cost: 1, diagonal: false},
	{dx: 1, dy: 0, cost: 1, diagonal: false},
	{dx: 0, dy: 1, cost: 1, diagonal: false},
	{dx: -1, dy: 0, cost: 1, diagonal: false},
	{dx: 1, dy: -1, cost: math.Sqrt2, diagonal: true},
	{dx: 1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: 1, cost: math.Sqrt2, diagonal: true},
	{dx: -1, dy: -1, cost: math.Sqrt2, diagonal: true},
}

// NavigationGrid is a uniform walkability grid overlaying a scene. A cell is
// walkable only when the full disc of the character radius centered on the
// cell fits inside the walkable area, so paths keep clearance from obstacle
// edges. Grids are built wholesale and never mutated afterwards; a rebuild
// replaces the grid.
type NavigationGrid struct {
	cols, rows int
	cellSize   float64
	radius     float64
	width      float64
	height     float64
	walkable   []bool
}

// buildNavigationGrid samples the walkable area at every cell center,
// eroded by the character radius (center plus discSamples boundary points
// must all be walkable).
func buildNavigationGrid(area *WalkableArea, width, height, cellSize, radius float64) *NavigationGrid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &NavigationGrid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		radius:   radius,
		width:    width,
		height:   height,
		walkable: make([]bool, cols*rows),
	}
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			cx, cy := g.GridToWorld(gx, gy)
			if discInside(area, cx, cy, radius) {
				g.walkable[gy*cols+gx] = true
			}
		}
	}
	return g
}

// discInside reports whether the disc of the given radius at (x, y) lies
// fully inside the walkable area, approximated by the center point plus
// sampled boundary points.
func discInside(area *WalkableArea, x, y, radius float64) bool {
	if !area.IsWalkable(x, y) {
		return false
	}
	if radius <= 0 {
		return true
	}
	for i := 0; i < discSamples; i++ {
		a := 2 * math.Pi * float64(i) / discSamples
		if !area.IsWalkable(x+radius*math.Cos(a), y+radius*math.Sin(a)) {
			return false
		}
	}
	return true
}

// Cols returns the grid width in cells.
func (g *NavigationGrid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *NavigationGrid) Rows() int { return g.rows }

// CellSize returns the world units per cell.
func (g *NavigationGrid) CellSize() float64 { return g.cellSize }

func (g *NavigationGrid) index(gx, gy int) int {
	return gy*g.cols + gx
}

func (g *NavigationGrid) inBounds(gx, gy int) bool {
	return gx >= 0 && gy >= 0 && gx < g.cols && gy < g.rows
}

// IsWalkable reports whether the cell (gx, gy) is walkable. Out-of-bounds
// cells are never walkable.
func (g *NavigationGrid) IsWalkable(gx, gy int) bool {
	if !g.inBounds(gx, gy) {
		return false
	}
	return g.walkable[g.index(gx, gy)]
}

// ContainsWorld reports whether a world point lies within the gridded scene
// extent.
func (g *NavigationGrid) ContainsWorld(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(g.cols)*g.cellSize && y < float64(g.rows)*g.cellSize
}

// WorldToGrid converts a world point to the cell containing it, clamped to
// the grid bounds.
func (g *NavigationGrid) WorldToGrid(x, y float64) (int, int) {
	gx := int(math.Floor(x / g.cellSize))
	gy := int(math.Floor(y / g.cellSize))
	gx = min(max(gx, 0), g.cols-1)
	gy = min(max(gy, 0), g.rows-1)
	return gx, gy
}

// GridToWorld returns the world-space center of cell (gx, gy).
func (g *NavigationGrid) GridToWorld(gx, gy int) (float64, float64) {
	return (float64(gx) + 0.5) * g.cellSize, (float64(gy) + 0.5) * g.cellSize
}

// canTraverseDiagonal reports whether a diagonal step from (gx, gy) is
// allowed: both orthogonal neighbors sharing the diagonal must be walkable,
// so paths never cut through the corner of an obstacle.
func (g *NavigationGrid) canTraverseDiagonal(gx, gy, dx, dy int) bool {
	return g.IsWalkable(gx+dx, gy) && g.IsWalkable(gx, gy+dy)
}

// LineOfSight reports whether every cell on the Bresenham line from
// (ax, ay) to (bx, by) is walkable.
func (g *NavigationGrid) LineOfSight(ax, ay, bx, by int) bool {
	dx := abs(bx - ax)
	dy := abs(by - ay)
	sx := 1
	if ax > bx {
		sx = -1
	}
	sy := 1
	if ay > by {
		sy = -1
	}
	err := dx - dy
	x, y := ax, ay
	for {
		if !g.IsWalkable(x, y) {
			return false
		}
		if x == bx && y == by {
			return true
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
