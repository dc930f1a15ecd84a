package bramble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultWalkSpeed is the actor walk speed in world units per second.
const DefaultWalkSpeed = 120.0

// AnimationClip is a looping frame sequence for one movement-state/facing
// combination.
type AnimationClip struct {
	Frames []*ebiten.Image
	FPS    float64
}

// Actor is one character in a scene: the player or an NPC. A single flat
// struct serves both — behaviors, not subtypes, distinguish NPCs.
//
// Position is the actor's feet in scene coordinates; sprites draw anchored
// bottom-center and scaled by the walkable area's depth scale at Y.
type Actor struct {
	Name string

	// X, Y is the feet position in scene coordinates.
	X, Y float64

	// Speed is the walk speed in world units per second before depth
	// scaling.
	Speed float64

	// Facing is the current 8-way compass facing.
	Facing Direction

	// Visible toggles drawing without removing the actor from the scene.
	Visible bool

	// Movement drives this actor along paths. Wired by Scene.AddActor;
	// nil until then.
	Movement *MovementController

	clips    map[string]*AnimationClip
	animKey  string
	animTime float64
}

// NewActor creates an actor at the given feet position with default speed.
func NewActor(name string, x, y float64) *Actor {
	return &Actor{
		Name:    name,
		X:       x,
		Y:       y,
		Speed:   DefaultWalkSpeed,
		Facing:  DirSouth,
		Visible: true,
		clips:   make(map[string]*AnimationClip),
	}
}

// RegisterAnimation stores the clip for a movement state ("idle" or "walk")
// and facing. Missing clips fall back to the same state facing south, then
// to idle south.
func (a *Actor) RegisterAnimation(state string, dir Direction, clip *AnimationClip) {
	a.clips[animKey(state, dir)] = clip
}

// Update advances the movement controller (when wired) and the current
// animation clock. Called once per tick by the scene.
func (a *Actor) Update(dt float64) {
	if a.Movement != nil {
		a.Movement.Update(dt)
	}
	key := a.currentAnimKey()
	if key != a.animKey {
		a.animKey = key
		a.animTime = 0
	} else {
		a.animTime += dt
	}
}

// Frame returns the sprite image for the actor's current state, facing, and
// animation time, or nil when no clip is registered.
func (a *Actor) Frame() *ebiten.Image {
	clip := a.clips[a.animKey]
	if clip == nil {
		// Fall back: same state facing south, then idle south.
		state := "idle"
		if a.Movement != nil {
			switch a.Movement.State() {
			case StateWalking, StateTurning:
				state = "walk"
			}
		}
		clip = a.clips[animKey(state, DirSouth)]
		if clip == nil {
			clip = a.clips[animKey("idle", DirSouth)]
		}
	}
	if clip == nil || len(clip.Frames) == 0 {
		return nil
	}
	fps := clip.FPS
	if fps <= 0 {
		fps = 8
	}
	idx := int(a.animTime*fps) % len(clip.Frames)
	return clip.Frames[idx]
}

// Animation returns the current animation key ("state_direction") and the
// frame it resolves to.
func (a *Actor) Animation() (string, *ebiten.Image) {
	return a.animKey, a.Frame()
}

// currentAnimKey derives the animation key from the movement state and
// facing.
func (a *Actor) currentAnimKey() string {
	state := "idle"
	if a.Movement != nil {
		switch a.Movement.State() {
		case StateWalking, StateTurning:
			state = "walk"
		}
	}
	return animKey(state, a.Facing)
}

func animKey(state string, dir Direction) string {
	return fmt.Sprintf("%s_%s", state, dir)
}
