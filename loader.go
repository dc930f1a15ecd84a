package bramble

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scene file schema. Field names are the data contract with scene authors
// and must stay stable. Shapes accept either a vertex list or a rect;
// exactly one must be present.

// PointData is one {x, y} vertex.
type PointData struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectData is an axis-aligned rectangle.
type RectData struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RegionData describes one walkable-area region.
type RegionData struct {
	Name     string      `yaml:"name"`
	Walkable bool        `yaml:"walkable"`
	Vertices []PointData `yaml:"vertices,omitempty"`
	Rect     *RectData   `yaml:"rect,omitempty"`
}

// ScaleZoneData describes one depth-scale band.
type ScaleZoneData struct {
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
}

// HotspotData describes one interactive region. Action is an opaque string
// for the host; the engine does not interpret it.
type HotspotData struct {
	Name     string      `yaml:"name"`
	Cursor   string      `yaml:"cursor,omitempty"`
	Action   string      `yaml:"action,omitempty"`
	Vertices []PointData `yaml:"vertices,omitempty"`
	Rect     *RectData   `yaml:"rect,omitempty"`
}

// BehaviorData describes an NPC behavior. Type selects the variant:
// "patrol", "follow", or "random_walk". Follow targets are referenced by
// actor name and resolved after all actors are constructed.
type BehaviorData struct {
	Type         string      `yaml:"type"`
	Waypoints    []PointData `yaml:"waypoints,omitempty"`
	Pause        float64     `yaml:"pause,omitempty"`
	Target       string      `yaml:"target,omitempty"`
	StopDistance float64     `yaml:"stop_distance,omitempty"`
	Radius       float64     `yaml:"radius,omitempty"`
	Seed         int64       `yaml:"seed,omitempty"`
}

// ActorData describes one actor.
type ActorData struct {
	Name     string        `yaml:"name"`
	Player   bool          `yaml:"player,omitempty"`
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	Speed    float64       `yaml:"speed,omitempty"`
	Behavior *BehaviorData `yaml:"behavior,omitempty"`
}

// SceneData is the typed form of a scene YAML file.
type SceneData struct {
	Name               string          `yaml:"name"`
	Width              float64         `yaml:"width"`
	Height             float64         `yaml:"height"`
	EnablePathfinding  bool            `yaml:"enable_pathfinding"`
	NavigationCellSize float64         `yaml:"navigation_cell_size,omitempty"`
	CharacterRadius    float64         `yaml:"character_radius,omitempty"`
	Regions            []RegionData    `yaml:"regions,omitempty"`
	ScaleZones         []ScaleZoneData `yaml:"scale_zones,omitempty"`
	Hotspots           []HotspotData   `yaml:"hotspots,omitempty"`
	Actors             []ActorData     `yaml:"actors,omitempty"`
}

// LoadSceneData parses and structurally validates a scene YAML file.
func LoadSceneData(data []byte) (*SceneData, error) {
	var sd SceneData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("parse scene data: %w", err)
	}
	if sd.Width <= 0 || sd.Height <= 0 {
		return nil, fmt.Errorf("%w: scene %q has no positive width/height", ErrSceneData, sd.Name)
	}
	for _, r := range sd.Regions {
		if err := validateShapeData(r.Vertices, r.Rect); err != nil {
			return nil, fmt.Errorf("region %q: %w", r.Name, err)
		}
	}
	for _, h := range sd.Hotspots {
		if err := validateShapeData(h.Vertices, h.Rect); err != nil {
			return nil, fmt.Errorf("hotspot %q: %w", h.Name, err)
		}
	}
	return &sd, nil
}

// validateShapeData checks the vertices-or-rect exclusivity rule.
func validateShapeData(vertices []PointData, rect *RectData) error {
	if len(vertices) > 0 && rect != nil {
		return fmt.Errorf("%w: both vertices and rect given", ErrSceneData)
	}
	if len(vertices) == 0 && rect == nil {
		return fmt.Errorf("%w: neither vertices nor rect given", ErrSceneData)
	}
	return nil
}

// BuildScene constructs a runnable Scene from parsed scene data.
//
// Loading is two-phase: all actors are constructed first, then follow
// references are resolved by name — a dangling target name is an error.
// Degenerate region polygons disable pathfinding for the scene (logged
// once) but do not fail the build; the scene keeps running and walk
// requests block.
//
// characterRadius is the erosion margin for the navigation grid; a
// character_radius field in the data takes precedence when positive.
func BuildScene(sd *SceneData, characterRadius float64) (*Scene, error) {
	scene := NewScene(sd.Name, sd.Width, sd.Height)

	// Walkable area. Invalid polygons are fatal to pathfinding only.
	var regions []Region
	var regionErr error
	for _, rd := range sd.Regions {
		shape, err := buildShape(rd.Vertices, rd.Rect)
		if err != nil {
			regionErr = fmt.Errorf("region %q: %w", rd.Name, err)
			scene.logOnce("scene %q: %v", sd.Name, regionErr)
			continue
		}
		regions = append(regions, Region{Name: rd.Name, Walkable: rd.Walkable, Shape: shape})
	}
	area := NewWalkableArea(regions...)
	for _, z := range sd.ScaleZones {
		area.ScaleZones = append(area.ScaleZones, ScaleZone(z))
	}
	scene.SetWalkableArea(area)

	for _, hd := range sd.Hotspots {
		shape, err := buildShape(hd.Vertices, hd.Rect)
		if err != nil {
			return nil, fmt.Errorf("hotspot %q: %w", hd.Name, err)
		}
		h := NewHotspot(hd.Name, shape)
		h.Cursor = hd.Cursor
		h.Action = hd.Action
		scene.AddHotspot(h)
	}

	// Phase 1: construct all actors.
	for _, ad := range sd.Actors {
		a := NewActor(ad.Name, ad.X, ad.Y)
		if ad.Speed > 0 {
			a.Speed = ad.Speed
		}
		scene.AddActor(a)
		if ad.Player {
			scene.SetPlayer(a)
		}
	}

	// Phase 2: behaviors, with follow targets resolved by name.
	for _, ad := range sd.Actors {
		if ad.Behavior == nil {
			continue
		}
		a := scene.ActorByName(ad.Name)
		b, err := buildBehavior(ad.Behavior, scene, a)
		if err != nil {
			return nil, fmt.Errorf("actor %q: %w", ad.Name, err)
		}
		scene.SetBehavior(a, b)
	}

	if sd.EnablePathfinding && regionErr == nil {
		radius := characterRadius
		if sd.CharacterRadius > 0 {
			radius = sd.CharacterRadius
		}
		// Failure is already logged once; the scene runs without
		// pathfinding.
		_ = scene.EnablePathfinding(sd.NavigationCellSize, radius)
	}
	return scene, nil
}

// LoadScene parses scene YAML and builds the scene in one step.
func LoadScene(data []byte, characterRadius float64) (*Scene, error) {
	sd, err := LoadSceneData(data)
	if err != nil {
		return nil, err
	}
	return BuildScene(sd, characterRadius)
}

// buildShape resolves the vertices-or-rect variant into a RegionShape.
func buildShape(vertices []PointData, rect *RectData) (RegionShape, error) {
	if rect != nil {
		return RectShape{Rect: Rect(*rect)}, nil
	}
	vs := make([]Vec2, len(vertices))
	for i, p := range vertices {
		vs[i] = Vec2(p)
	}
	return NewPolygon(vs)
}

// buildBehavior resolves a behavior variant, including the follow target
// name. Random walks are centered on the actor's starting position.
func buildBehavior(bd *BehaviorData, scene *Scene, a *Actor) (*Behavior, error) {
	switch bd.Type {
	case "patrol":
		wps := make([]Vec2, len(bd.Waypoints))
		for i, p := range bd.Waypoints {
			wps[i] = Vec2(p)
		}
		return NewPatrolBehavior(wps, bd.Pause), nil
	case "follow":
		target := scene.ActorByName(bd.Target)
		if target == nil {
			return nil, fmt.Errorf("%w: follow target %q not found", ErrSceneData, bd.Target)
		}
		return NewFollowBehavior(target, bd.StopDistance), nil
	case "random_walk":
		return NewRandomWalkBehavior(Vec2{X: a.X, Y: a.Y}, bd.Radius, bd.Pause, bd.Seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown behavior type %q", ErrSceneData, bd.Type)
	}
}
