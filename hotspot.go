package bramble

// Hotspot is a named interactive region of a scene: a door, an item, an
// exit. Hotspots carry callbacks for the host game plus an opaque Action
// string for data-driven scenes — the engine never interprets Action, it
// hands it to OnClick consumers verbatim (conventions like
// "transition:scene:fade:0.5" belong to the host).
type Hotspot struct {
	Name string

	// Shape is the clickable area in scene coordinates.
	Shape RegionShape

	// Cursor is a hint name for the host's cursor rendering ("look",
	// "use", "exit", ...). The engine never draws cursors.
	Cursor string

	// Action is an opaque script string the host interprets on click.
	Action string

	// Enabled hotspots receive clicks and hover events.
	Enabled bool

	// OnClick fires when the hotspot is clicked. Click coordinates are in
	// scene space.
	OnClick func(x, y float64)
	// OnEnter fires when the pointer moves onto the hotspot.
	OnEnter func()
	// OnLeave fires when the pointer moves off the hotspot.
	OnLeave func()
}

// NewHotspot creates an enabled hotspot with the given shape.
func NewHotspot(name string, shape RegionShape) *Hotspot {
	return &Hotspot{Name: name, Shape: shape, Enabled: true}
}

// Contains reports whether the scene-space point hits the hotspot.
func (h *Hotspot) Contains(x, y float64) bool {
	return h.Enabled && h.Shape != nil && h.Shape.Contains(x, y)
}
