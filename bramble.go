package bramble

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D point or direction in scene (world) coordinates.
// The coordinate system has its origin at the top-left, with Y increasing
// downward; larger Y means closer to the camera in the depth illusion.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default transition and clear color.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts to a premultiplied 8-bit color for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * c.A * 255)),
		G: uint8(math.Round(c.G * c.A * 255)),
		B: uint8(math.Round(c.B * c.A * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// WhitePixel is a 1x1 white image used for solid-color fills (debug overlay,
// transitions, placeholder sprites).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
}

// Errors returned by scene loading and navigation. Per-query errors
// (ErrGridNotBuilt, ErrPathNotFound) are recoverable by contract: callers
// treat them as "no path" and never abort the frame loop over them.
var (
	// ErrInvalidPolygon reports a degenerate region polygon (fewer than 3
	// vertices, zero area, or self-intersecting). Detected at scene
	// validation time, never during queries.
	ErrInvalidPolygon = errors.New("bramble: invalid polygon")

	// ErrGridNotBuilt is returned by FindPath before SetupNavigation has
	// run (or after it failed). Scenes without pathfinding stay queryable.
	ErrGridNotBuilt = errors.New("bramble: navigation grid not built")

	// ErrPathNotFound means no walkable route exists between the points,
	// including when an endpoint cannot be snapped to a walkable cell.
	ErrPathNotFound = errors.New("bramble: path not found")

	// ErrSceneData reports a structurally invalid scene description.
	ErrSceneData = errors.New("bramble: invalid scene data")
)

// State is the movement state of a character.
type State uint8

const (
	StateIdle    State = iota // standing still, no active path
	StateWalking              // advancing along the current path
	StateTurning              // pausing to face a new heading mid-path
	StateBlocked              // last walk request found no path
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateTurning:
		return "turning"
	case StateBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Direction is one of the 8 compass facings used for sprite selection.
// South faces the camera.
type Direction uint8

const (
	DirSouth     Direction = iota // facing the camera (+Y)
	DirSouthWest
	DirWest
	DirNorthWest
	DirNorth // facing away from the camera (-Y)
	DirNorthEast
	DirEast
	DirSouthEast
)

// String returns the lowercase compass name, e.g. "southwest".
func (d Direction) String() string {
	switch d {
	case DirSouth:
		return "south"
	case DirSouthWest:
		return "southwest"
	case DirWest:
		return "west"
	case DirNorthWest:
		return "northwest"
	case DirNorth:
		return "north"
	case DirNorthEast:
		return "northeast"
	case DirEast:
		return "east"
	case DirSouthEast:
		return "southeast"
	default:
		return "unknown"
	}
}

// DirectionFromVector maps a velocity vector to the nearest of the 8 compass
// directions. A zero vector maps to DirSouth.
func DirectionFromVector(dx, dy float64) Direction {
	if dx == 0 && dy == 0 {
		return DirSouth
	}
	// atan2 with +Y down: 0 = east, π/2 = south. Shift so south is octant 0,
	// then octants advance south → southwest → west → ... → southeast.
	angle := math.Atan2(dy, dx)
	octant := int(math.Round((angle - math.Pi/2) / (math.Pi / 4)))
	return Direction(((octant % 8) + 8) % 8)
}

// EventType identifies an engine event delivered to an EventSink.
type EventType uint8

const (
	EventArrived        EventType = iota // a character finished its path
	EventBlocked                         // a walk request found no path
	EventHotspotClicked                  // a hotspot was clicked
)

// Event carries engine event data for the optional ECS bridge.
type Event struct {
	Type    EventType
	Actor   string // actor name, empty for hotspot-only events
	Hotspot string // hotspot name, empty for movement events
	X, Y    float64
}

// EventSink is the interface for optional ECS integration. When set on a
// Scene, arrival, blocked, and hotspot events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}
