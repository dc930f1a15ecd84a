package bramble

import (
	"math"
	"math/rand"
)

// behaviorKind tags the closed set of NPC behavior variants.
type behaviorKind uint8

const (
	behaviorPatrol behaviorKind = iota
	behaviorFollow
	behaviorRandomWalk
)

// Behavior is a simple NPC movement policy driven once per tick. The set of
// behaviors is closed — patrol, follow, random walk — dispatched by tag
// rather than through subtype hierarchies, so adding one is an explicit
// change here rather than an open extension point.
type Behavior struct {
	kind behaviorKind

	// patrol
	waypoints []Vec2
	next      int
	pause     float64

	// follow
	target   *Actor
	stopDist float64
	repath   float64

	// random walk
	origin Vec2
	radius float64
	rng    *rand.Rand

	wait float64 // shared countdown between legs
}

// followRepathInterval is how often a follow behavior re-requests a path to
// its (moving) target, in seconds.
const followRepathInterval = 0.5

// NewPatrolBehavior loops an actor through the waypoints in order, pausing
// for pause seconds at each.
func NewPatrolBehavior(waypoints []Vec2, pause float64) *Behavior {
	return &Behavior{kind: behaviorPatrol, waypoints: waypoints, pause: pause}
}

// NewFollowBehavior keeps an actor within stopDist of the target actor,
// re-pathing at a fixed interval while the target moves.
func NewFollowBehavior(target *Actor, stopDist float64) *Behavior {
	return &Behavior{kind: behaviorFollow, target: target, stopDist: stopDist}
}

// NewRandomWalkBehavior wanders an actor between random reachable points
// within radius of origin, idling pause seconds between legs. The seed makes
// wander sequences reproducible.
func NewRandomWalkBehavior(origin Vec2, radius, pause float64, seed int64) *Behavior {
	return &Behavior{
		kind:   behaviorRandomWalk,
		origin: origin,
		radius: radius,
		pause:  pause,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Target returns the followed actor, or nil for non-follow behaviors.
func (b *Behavior) Target() *Actor {
	return b.target
}

// Update drives the behavior for one tick. The actor must have its movement
// controller wired.
func (b *Behavior) Update(a *Actor, dt float64) {
	if a.Movement == nil {
		return
	}
	switch b.kind {
	case behaviorPatrol:
		b.updatePatrol(a, dt)
	case behaviorFollow:
		b.updateFollow(a, dt)
	case behaviorRandomWalk:
		b.updateRandomWalk(a, dt)
	}
}

func (b *Behavior) updatePatrol(a *Actor, dt float64) {
	if len(b.waypoints) == 0 {
		return
	}
	switch a.Movement.State() {
	case StateWalking, StateTurning:
		return
	case StateBlocked:
		// next already points past the waypoint that failed, so clearing
		// the blocked state is enough to skip it rather than retry forever.
		a.Movement.Stop()
		return
	}
	b.wait -= dt
	if b.wait > 0 {
		return
	}
	wp := b.waypoints[b.next]
	b.next = (b.next + 1) % len(b.waypoints)
	b.wait = b.pause
	_ = a.Movement.WalkTo(wp.X, wp.Y)
}

func (b *Behavior) updateFollow(a *Actor, dt float64) {
	if b.target == nil {
		return
	}
	dist := math.Hypot(b.target.X-a.X, b.target.Y-a.Y)
	if dist <= b.stopDist {
		if a.Movement.State() == StateWalking || a.Movement.State() == StateTurning {
			a.Movement.Stop()
		}
		b.repath = 0
		return
	}
	b.repath -= dt
	if b.repath > 0 {
		return
	}
	b.repath = followRepathInterval
	_ = a.Movement.WalkTo(b.target.X, b.target.Y)
}

func (b *Behavior) updateRandomWalk(a *Actor, dt float64) {
	switch a.Movement.State() {
	case StateWalking, StateTurning:
		return
	case StateBlocked:
		a.Movement.Stop()
	}
	b.wait -= dt
	if b.wait > 0 {
		return
	}
	b.wait = b.pause
	angle := b.rng.Float64() * 2 * math.Pi
	r := b.radius * math.Sqrt(b.rng.Float64())
	x := b.origin.X + r*math.Cos(angle)
	y := b.origin.Y + r*math.Sin(angle)
	// Unreachable picks land in StateBlocked and the next leg tries a
	// different point.
	_ = a.Movement.WalkTo(x, y)
}
