package bramble

import (
	"container/heap"
	"math"
)

// snapMaxRadius bounds the breadth-first search for the nearest walkable
// cell when a path endpoint lands on a blocked cell, in Chebyshev cell
// distance from the original cell.
const snapMaxRadius = 8

// Pathfinder computes paths over a NavigationGrid using A*. It holds no
// per-query state; a single Pathfinder serves any number of sequential
// queries against its grid.
type Pathfinder struct {
	grid *NavigationGrid
}

// NewPathfinder creates a Pathfinder over the given grid.
func NewPathfinder(grid *NavigationGrid) *Pathfinder {
	return &Pathfinder{grid: grid}
}

// FindPath computes a world-space waypoint path from (x1, y1) to (x2, y2).
//
// Endpoints on blocked cells are snapped to the nearest walkable cell within
// snapMaxRadius before the search. The raw cell path is reduced by a greedy
// line-of-sight pass, so waypoints mark direction changes rather than every
// grid step. The first waypoint is the (possibly snapped) start, the last is
// the exact destination when its cell was walkable, else the snapped cell
// center.
//
// Returns ErrPathNotFound when no route exists or an endpoint cannot be
// snapped, and ErrGridNotBuilt when the pathfinder has no grid. Both are
// recoverable: callers treat them as "cannot get there".
func (p *Pathfinder) FindPath(x1, y1, x2, y2 float64) ([]Vec2, error) {
	if p == nil || p.grid == nil {
		return nil, ErrGridNotBuilt
	}
	g := p.grid

	sx, sy := g.WorldToGrid(x1, y1)
	ex, ey := g.WorldToGrid(x2, y2)

	// Off-map endpoints clamp to an edge cell; treat them as snapped so the
	// path never carries an exact point outside the grid.
	startSnapped := !g.ContainsWorld(x1, y1)
	if !g.IsWalkable(sx, sy) {
		var ok bool
		sx, sy, ok = g.nearestWalkable(sx, sy)
		if !ok {
			return nil, ErrPathNotFound
		}
		startSnapped = true
	}
	endSnapped := !g.ContainsWorld(x2, y2)
	if !g.IsWalkable(ex, ey) {
		var ok bool
		ex, ey, ok = g.nearestWalkable(ex, ey)
		if !ok {
			return nil, ErrPathNotFound
		}
		endSnapped = true
	}

	cells, ok := g.astar(sx, sy, ex, ey)
	if !ok {
		return nil, ErrPathNotFound
	}
	cells = g.reduceWaypoints(cells)

	path := make([]Vec2, len(cells))
	for i, c := range cells {
		wx, wy := g.GridToWorld(c.x, c.y)
		path[i] = Vec2{X: wx, Y: wy}
	}
	if !startSnapped {
		path[0] = Vec2{X: x1, Y: y1}
	}
	if !endSnapped {
		path[len(path)-1] = Vec2{X: x2, Y: y2}
	}
	return path, nil
}

// cell is a grid coordinate pair.
type cell struct {
	x, y int
}

// nearestWalkable finds the walkable cell closest to (gx, gy) by
// breadth-first search over the 8-neighborhood, bounded by snapMaxRadius.
func (g *NavigationGrid) nearestWalkable(gx, gy int) (int, int, bool) {
	if !g.inBounds(gx, gy) {
		return 0, 0, false
	}
	visited := make(map[int]struct{})
	queue := []cell{{gx, gy}}
	visited[g.index(gx, gy)] = struct{}{}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if g.walkable[g.index(c.x, c.y)] {
			return c.x, c.y, true
		}
		for _, n := range gridNeighborOffsets {
			nx, ny := c.x+n.dx, c.y+n.dy
			if !g.inBounds(nx, ny) {
				continue
			}
			if abs(nx-gx) > snapMaxRadius || abs(ny-gy) > snapMaxRadius {
				continue
			}
			idx := g.index(nx, ny)
			if _, seen := visited[idx]; seen {
				continue
			}
			visited[idx] = struct{}{}
			queue = append(queue, cell{nx, ny})
		}
	}
	return 0, 0, false
}

// octileHeuristic is the exact distance between two cells assuming cost 1
// orthogonal and √2 diagonal steps. Admissible for the grid cost model.
func octileHeuristic(ax, ay, bx, by int) float64 {
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

// searchNode is one A* open-list entry.
type searchNode struct {
	cell   cell
	g      float64
	f      float64
	order  int // insertion order, breaks f ties for deterministic paths
	parent *searchNode
	index  int // heap index
}

type openList []*searchNode

func (ol openList) Len() int { return len(ol) }

func (ol openList) Less(i, j int) bool {
	if ol[i].f != ol[j].f {
		return ol[i].f < ol[j].f
	}
	return ol[i].order < ol[j].order
}

func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}

func (ol *openList) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}

func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*ol = old[:len(old)-1]
	return n
}

// astar runs A* between two walkable cells and returns the raw cell path
// (start first).
func (g *NavigationGrid) astar(sx, sy, ex, ey int) ([]cell, bool) {
	open := &openList{}
	heap.Init(open)

	order := 0
	start := &searchNode{cell: cell{sx, sy}, f: octileHeuristic(sx, sy, ex, ey)}
	heap.Push(open, start)

	gScore := map[int]float64{g.index(sx, sy): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		idx := g.index(current.cell.x, current.cell.y)
		if _, seen := closed[idx]; seen {
			continue
		}
		closed[idx] = struct{}{}
		if current.cell.x == ex && current.cell.y == ey {
			return reconstructCells(current), true
		}

		for _, n := range gridNeighborOffsets {
			nx, ny := current.cell.x+n.dx, current.cell.y+n.dy
			if !g.IsWalkable(nx, ny) {
				continue
			}
			if n.diagonal && !g.canTraverseDiagonal(current.cell.x, current.cell.y, n.dx, n.dy) {
				continue
			}
			nIdx := g.index(nx, ny)
			if _, seen := closed[nIdx]; seen {
				continue
			}
			tentative := current.g + n.cost
			if prev, seen := gScore[nIdx]; seen && tentative >= prev {
				continue
			}
			gScore[nIdx] = tentative
			order++
			heap.Push(open, &searchNode{
				cell:   cell{nx, ny},
				g:      tentative,
				f:      tentative + octileHeuristic(nx, ny, ex, ey),
				order:  order,
				parent: current,
			})
		}
	}
	return nil, false
}

// reconstructCells walks parent links back to the start and reverses.
func reconstructCells(end *searchNode) []cell {
	var cells []cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// reduceWaypoints greedily drops intermediate cells that a straight walkable
// line can skip, turning the jagged grid path into a short polyline of
// direction changes.
func (g *NavigationGrid) reduceWaypoints(cells []cell) []cell {
	if len(cells) <= 2 {
		return cells
	}
	reduced := []cell{cells[0]}
	anchor := 0
	for anchor < len(cells)-1 {
		next := anchor + 1
		for probe := len(cells) - 1; probe > next; probe-- {
			if g.LineOfSight(cells[anchor].x, cells[anchor].y, cells[probe].x, cells[probe].y) {
				next = probe
				break
			}
		}
		reduced = append(reduced, cells[next])
		anchor = next
	}
	return reduced
}
