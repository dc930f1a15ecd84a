package bramble

import (
	"fmt"
	"os"
	"time"
)

// NavigationManager owns the navigation grid and pathfinder for one scene.
// It rebuilds the grid wholesale on background or radius changes and is safe
// to query before setup: FindPath simply reports ErrGridNotBuilt, so scenes
// without pathfinding never crash a walk request.
type NavigationManager struct {
	area       *WalkableArea
	width      float64
	height     float64
	cellSize   float64
	radius     float64
	grid       *NavigationGrid
	pathfinder *Pathfinder
	debug      bool
}

// NewNavigationManager creates a manager for the given walkable area and
// scene background dimensions. Pass cellSize <= 0 to use DefaultCellSize.
// Call SetupNavigation before the first FindPath.
func NewNavigationManager(area *WalkableArea, width, height, cellSize float64) *NavigationManager {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &NavigationManager{
		area:     area,
		width:    width,
		height:   height,
		cellSize: cellSize,
	}
}

// SetupNavigation validates the walkable area, recomputes its bounds, and
// builds the navigation grid with the given character radius. Returns an
// error wrapping ErrSceneData when the area has no regions; the manager
// stays unbuilt (FindPath returns ErrGridNotBuilt) in that case.
func (m *NavigationManager) SetupNavigation(characterRadius float64) error {
	if m.area == nil || len(m.area.Regions()) == 0 {
		return fmt.Errorf("%w: walkable area has no regions", ErrSceneData)
	}
	m.area.updateBounds()
	m.radius = characterRadius

	start := time.Now()
	grid := buildNavigationGrid(m.area, m.width, m.height, m.cellSize, m.radius)
	if m.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[bramble] nav grid %dx%d (cell %.0f, radius %.0f) built in %v\n",
			grid.Cols(), grid.Rows(), grid.CellSize(), m.radius, time.Since(start))
	}

	// Replace wholesale; queries never observe a half-built grid.
	m.grid = grid
	m.pathfinder = NewPathfinder(grid)
	return nil
}

// FindPath returns a waypoint path from (x1, y1) to (x2, y2), or
// ErrGridNotBuilt before setup and ErrPathNotFound when no route exists.
func (m *NavigationManager) FindPath(x1, y1, x2, y2 float64) ([]Vec2, error) {
	if m == nil || m.pathfinder == nil {
		return nil, ErrGridNotBuilt
	}
	return m.pathfinder.FindPath(x1, y1, x2, y2)
}

// Ready reports whether the navigation grid has been built.
func (m *NavigationManager) Ready() bool {
	return m != nil && m.grid != nil
}

// Grid returns the current navigation grid, or nil before setup. Used by
// the debug overlay.
func (m *NavigationManager) Grid() *NavigationGrid {
	if m == nil {
		return nil
	}
	return m.grid
}

// Area returns the walkable area the manager navigates over.
func (m *NavigationManager) Area() *WalkableArea {
	if m == nil {
		return nil
	}
	return m.area
}

// Resize updates the scene extent and rebuilds the grid if it was built.
// Call when the scene background changes.
func (m *NavigationManager) Resize(width, height float64) error {
	m.width = width
	m.height = height
	if m.grid == nil {
		return nil
	}
	return m.SetupNavigation(m.radius)
}

// SetCharacterRadius rebuilds the grid with a new erosion margin if the grid
// was built.
func (m *NavigationManager) SetCharacterRadius(radius float64) error {
	if m.grid == nil {
		m.radius = radius
		return nil
	}
	return m.SetupNavigation(radius)
}

// SetDebug enables stderr timing logs for grid rebuilds.
func (m *NavigationManager) SetDebug(enabled bool) {
	m.debug = enabled
}
