package bramble

import "math"

// DefaultArrivalEpsilon is the distance within which a waypoint counts as
// reached, in world units.
const DefaultArrivalEpsilon = 2.0

// MovementController drives one actor along computed paths. It advances the
// actor toward the current waypoint each update tick, scales speed by the
// walkable area's depth scale at the actor's Y, selects the 8-way facing
// from the velocity, and fires arrival/blocked callbacks. It never draws.
//
// Controllers are independent per actor; they share only read access to the
// scene's navigation grid.
type MovementController struct {
	actor *Actor
	nav   *NavigationManager
	area  *WalkableArea

	path      []Vec2
	waypoint  int
	state     State
	target    Vec2
	hasTarget bool

	// ArrivalEpsilon is the waypoint-reached distance. Defaults to
	// DefaultArrivalEpsilon.
	ArrivalEpsilon float64

	// TurnDuration is how long the actor pauses in StateTurning when its
	// heading changes by 90° or more mid-path. Zero disables turning pauses.
	TurnDuration float64
	turnTimer    float64

	// OnArrive fires once when the actor reaches the end of its path.
	OnArrive func()
	// OnBlocked fires once when a WalkTo request finds no path.
	OnBlocked func()

	events EventSink
}

// NewMovementController creates a controller for the given actor. nav may be
// nil for scenes without pathfinding (WalkTo then always blocks, but
// WalkToWithPath still works); area may be nil to disable depth scaling.
func NewMovementController(actor *Actor, nav *NavigationManager, area *WalkableArea) *MovementController {
	return &MovementController{
		actor:          actor,
		nav:            nav,
		area:           area,
		state:          StateIdle,
		ArrivalEpsilon: DefaultArrivalEpsilon,
	}
}

// State returns the current movement state.
func (c *MovementController) State() State {
	return c.state
}

// Path returns the remaining path. The returned slice MUST NOT be mutated.
func (c *MovementController) Path() []Vec2 {
	return c.path
}

// WaypointIndex returns the index of the waypoint currently being walked
// toward. Only meaningful while the state is StateWalking or StateTurning.
func (c *MovementController) WaypointIndex() int {
	return c.waypoint
}

// TargetPosition returns the final destination of the current or last walk
// request, and whether one is set.
func (c *MovementController) TargetPosition() (Vec2, bool) {
	return c.target, c.hasTarget
}

// WalkTo requests a path to (x, y) and starts walking it. When no path
// exists the controller transitions to StateBlocked and fires OnBlocked —
// it does not fall back to a straight-line walk, since walking through
// obstacles reads worse than refusing; use WalkToWithPath for scripted
// direct movement. The returned error (ErrPathNotFound or ErrGridNotBuilt)
// is informational; the state machine has already handled it.
func (c *MovementController) WalkTo(x, y float64) error {
	c.target = Vec2{X: x, Y: y}
	c.hasTarget = true

	path, err := c.nav.FindPath(c.actor.X, c.actor.Y, x, y)
	if err != nil {
		c.path = nil
		c.waypoint = 0
		c.state = StateBlocked
		if c.OnBlocked != nil {
			c.OnBlocked()
		}
		c.emit(EventBlocked)
		return err
	}
	c.installPath(path)
	return nil
}

// WalkToWithPath starts walking a precomputed path, as used by scripted and
// cutscene movement. An empty path is ignored.
func (c *MovementController) WalkToWithPath(path []Vec2) {
	if len(path) == 0 {
		return
	}
	c.target = path[len(path)-1]
	c.hasTarget = true
	c.installPath(path)
}

func (c *MovementController) installPath(path []Vec2) {
	c.path = path
	c.waypoint = 0
	c.state = StateWalking
	c.turnTimer = 0
	c.faceWaypoint()
}

// Stop clears the path and returns to StateIdle immediately, from any
// state. The actor holds its current position.
func (c *MovementController) Stop() {
	c.path = nil
	c.waypoint = 0
	c.hasTarget = false
	c.state = StateIdle
}

// Update advances the actor by one tick of dt seconds.
func (c *MovementController) Update(dt float64) {
	switch c.state {
	case StateTurning:
		c.turnTimer -= dt
		if c.turnTimer <= 0 {
			c.turnTimer = 0
			c.state = StateWalking
		}
	case StateWalking:
		c.step(dt)
	}
}

// step moves toward the current waypoint and handles waypoint advancement,
// turning, and arrival.
func (c *MovementController) step(dt float64) {
	if c.waypoint >= len(c.path) {
		c.finish()
		return
	}
	wp := c.path[c.waypoint]
	dx := wp.X - c.actor.X
	dy := wp.Y - c.actor.Y
	dist := math.Hypot(dx, dy)

	speed := c.actor.Speed * c.scaleAt(c.actor.Y)
	stepLen := speed * dt

	if dist <= math.Max(stepLen, c.ArrivalEpsilon) {
		c.actor.X = wp.X
		c.actor.Y = wp.Y
		c.waypoint++
		if c.waypoint >= len(c.path) {
			c.finish()
			return
		}
		c.turnToward(c.path[c.waypoint])
		return
	}

	c.actor.X += dx / dist * stepLen
	c.actor.Y += dy / dist * stepLen
	c.actor.Facing = DirectionFromVector(dx, dy)
}

// finish ends the walk: idle state, cleared path, arrival callback.
func (c *MovementController) finish() {
	c.path = nil
	c.waypoint = 0
	c.state = StateIdle
	if c.OnArrive != nil {
		c.OnArrive()
	}
	c.emit(EventArrived)
}

// faceWaypoint points the actor at its current waypoint without a turning
// pause (used when a fresh path is installed).
func (c *MovementController) faceWaypoint() {
	if c.waypoint >= len(c.path) {
		return
	}
	wp := c.path[c.waypoint]
	c.actor.Facing = DirectionFromVector(wp.X-c.actor.X, wp.Y-c.actor.Y)
}

// turnToward updates the facing for the next waypoint and enters
// StateTurning when the heading swings by 90° or more and TurnDuration is
// set.
func (c *MovementController) turnToward(wp Vec2) {
	next := DirectionFromVector(wp.X-c.actor.X, wp.Y-c.actor.Y)
	if c.TurnDuration > 0 && directionDelta(c.actor.Facing, next) >= 2 {
		c.turnTimer = c.TurnDuration
		c.state = StateTurning
	}
	c.actor.Facing = next
}

// scaleAt returns the depth scale at y, or 1.0 with no walkable area.
func (c *MovementController) scaleAt(y float64) float64 {
	if c.area == nil {
		return 1.0
	}
	return c.area.ScaleAt(y)
}

// emit forwards a movement event to the optional event sink.
func (c *MovementController) emit(t EventType) {
	if c.events == nil {
		return
	}
	c.events.EmitEvent(Event{
		Type:  t,
		Actor: c.actor.Name,
		X:     c.actor.X,
		Y:     c.actor.Y,
	})
}

// directionDelta returns the circular distance between two compass
// directions, 0..4.
func directionDelta(a, b Direction) int {
	d := abs(int(a) - int(b))
	if d > 4 {
		d = 8 - d
	}
	return d
}
