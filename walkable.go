package bramble

import "math"

// ScaleZone maps a horizontal band of the scene (a Y range) to a character
// scale factor, linearly interpolated across the band. Scale zones simulate
// depth: characters further "back" (smaller Y) draw smaller and walk slower.
type ScaleZone struct {
	MinY     float64
	MaxY     float64
	MinScale float64
	MaxScale float64
}

// WalkableArea is the set of scene polygons a character may occupy: an
// ordered list of regions plus optional scale zones. Region order is
// author-controlled — a region listed later overrides earlier ones at any
// point it contains, so obstacles are listed after the floor they carve
// from, and walkable islands after the obstacles they sit inside.
type WalkableArea struct {
	regions    []Region
	ScaleZones []ScaleZone
	bounds     Rect
}

// NewWalkableArea creates a WalkableArea from an ordered region list.
func NewWalkableArea(regions ...Region) *WalkableArea {
	w := &WalkableArea{regions: regions}
	w.updateBounds()
	return w
}

// AddRegion appends a region and recomputes the bounds.
func (w *WalkableArea) AddRegion(r Region) {
	w.regions = append(w.regions, r)
	w.updateBounds()
}

// Regions returns the ordered region list. The returned slice MUST NOT be
// mutated.
func (w *WalkableArea) Regions() []Region {
	return w.regions
}

// IsWalkable reports whether the point (x, y) is inside the walkable area:
// the last region containing the point decides, so non-walkable regions
// listed after a floor carve holes out of it.
func (w *WalkableArea) IsWalkable(x, y float64) bool {
	walkable := false
	for _, r := range w.regions {
		if r.Shape.Contains(x, y) {
			walkable = r.Walkable
		}
	}
	return walkable
}

// ScaleAt returns the character scale factor at depth y. Zones are scanned
// in order and the first zone containing y wins; gaps between zones fall
// back to 1.0. The result is always positive and finite.
func (w *WalkableArea) ScaleAt(y float64) float64 {
	for _, z := range w.ScaleZones {
		if y < z.MinY || y > z.MaxY {
			continue
		}
		span := z.MaxY - z.MinY
		if span <= 0 {
			return sanitizeScale(z.MinScale)
		}
		t := (y - z.MinY) / span
		return sanitizeScale(z.MinScale + t*(z.MaxScale-z.MinScale))
	}
	return 1.0
}

// Bounds returns the union bounding box of all region vertices.
func (w *WalkableArea) Bounds() Rect {
	return w.bounds
}

// updateBounds recomputes the union AABB of all regions. Called after any
// region list mutation.
func (w *WalkableArea) updateBounds() {
	if len(w.regions) == 0 {
		w.bounds = Rect{}
		return
	}
	b := w.regions[0].Shape.Bounds()
	minX, minY := b.X, b.Y
	maxX, maxY := b.X+b.Width, b.Y+b.Height
	for _, r := range w.regions[1:] {
		rb := r.Shape.Bounds()
		minX = math.Min(minX, rb.X)
		minY = math.Min(minY, rb.Y)
		maxX = math.Max(maxX, rb.X+rb.Width)
		maxY = math.Max(maxY, rb.Y+rb.Height)
	}
	w.bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// sanitizeScale guards the ScaleAt invariant against bad zone data.
func sanitizeScale(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return 1.0
	}
	return s
}
