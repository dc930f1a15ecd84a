package bramble

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// clipOf builds a clip of n distinct frame pointers. The images are never
// drawn; tests only compare identities.
func clipOf(n int, fps float64) *AnimationClip {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = new(ebiten.Image)
	}
	return &AnimationClip{Frames: frames, FPS: fps}
}

func TestActorDefaults(t *testing.T) {
	a := NewActor("hero", 10, 20)
	assertNear(t, "Speed", a.Speed, DefaultWalkSpeed)
	if a.Facing != DirSouth {
		t.Errorf("Facing = %v, want south", a.Facing)
	}
	if !a.Visible {
		t.Error("actor not visible by default")
	}
	if a.Frame() != nil {
		t.Error("Frame with no clips should be nil")
	}
}

func TestActorFrameAdvancesWithClock(t *testing.T) {
	a := NewActor("hero", 0, 0)
	clip := clipOf(4, 4) // 4 fps: one frame per quarter second
	a.RegisterAnimation("idle", DirSouth, clip)

	a.Update(0)
	if got := a.Frame(); got != clip.Frames[0] {
		t.Error("first frame wrong")
	}
	for i := 0; i < 16; i++ { // ~0.26s
		a.Update(1.0 / 60.0)
	}
	if got := a.Frame(); got != clip.Frames[1] {
		t.Error("frame did not advance after a quarter second")
	}
	for i := 0; i < 45; i++ { // past one loop
		a.Update(1.0 / 60.0)
	}
	if got := a.Frame(); got == nil {
		t.Error("looping clip returned nil")
	}
}

func TestActorAnimationSwitchesWithState(t *testing.T) {
	a := NewActor("hero", 0, 0)
	a.Movement = NewMovementController(a, nil, nil)
	idle := clipOf(1, 1)
	walk := clipOf(1, 1)
	a.RegisterAnimation("idle", DirEast, idle)
	a.RegisterAnimation("walk", DirEast, walk)
	a.Facing = DirEast

	a.Update(tick)
	if a.Frame() != idle.Frames[0] {
		t.Error("idle clip not selected")
	}

	a.Movement.WalkToWithPath([]Vec2{{X: 1000, Y: 0}})
	a.Update(tick)
	if a.Frame() != walk.Frames[0] {
		t.Error("walk clip not selected while walking")
	}

	a.Movement.Stop()
	a.Update(tick)
	if a.Frame() != idle.Frames[0] {
		t.Error("idle clip not restored after stop")
	}
}

func TestActorFrameFallsBackToSouth(t *testing.T) {
	a := NewActor("hero", 0, 0)
	idleSouth := clipOf(1, 1)
	a.RegisterAnimation("idle", DirSouth, idleSouth)
	a.Facing = DirNorthWest

	a.Update(tick)
	if a.Frame() != idleSouth.Frames[0] {
		t.Error("missing facing did not fall back to idle south")
	}
	key, frame := a.Animation()
	if key != "idle_northwest" {
		t.Errorf("animation key = %q, want idle_northwest", key)
	}
	if frame != idleSouth.Frames[0] {
		t.Error("Animation frame differs from Frame")
	}
}

func TestActorAnimationClockResetsOnKeyChange(t *testing.T) {
	a := NewActor("hero", 0, 0)
	east := clipOf(2, 2)
	south := clipOf(2, 2)
	a.RegisterAnimation("idle", DirEast, east)
	a.RegisterAnimation("idle", DirSouth, south)

	a.Facing = DirEast
	for i := 0; i < 40; i++ { // deep into frame 1
		a.Update(1.0 / 60.0)
	}
	if a.Frame() != east.Frames[1] {
		t.Fatal("east clip not on its second frame")
	}

	a.Facing = DirSouth
	a.Update(tick)
	if a.Frame() != south.Frames[0] {
		t.Error("facing change did not restart the clip")
	}
}
