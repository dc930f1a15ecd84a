package bramble

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one room of an adventure game: a background, a walkable area
// with its navigation manager, the actors standing in it, and the hotspots
// the player can interact with. The scene drives the per-tick update of
// cameras, transitions, behaviors, and movement controllers, and draws
// actors in painter's order with depth scaling. Everything runs on the game
// loop goroutine; nothing here is safe for concurrent use.
type Scene struct {
	Name string

	// Width and Height are the scene extent in world units, normally the
	// background dimensions.
	Width, Height float64

	// Background is drawn behind the actors. May be nil (headless scenes,
	// tests); Width/Height then define the extent.
	Background *ebiten.Image

	// ClearColor fills the screen before the background.
	ClearColor Color

	// Camera views the scene. Never nil.
	Camera *Camera

	// ClickToWalk routes ground clicks to the player's movement
	// controller. Enabled by default when a player is set.
	ClickToWalk bool

	area      *WalkableArea
	nav       *NavigationManager
	player    *Actor
	actors    []*Actor
	behaviors map[*Actor]*Behavior
	hotspots  []*Hotspot
	hovered   *Hotspot

	transition *Transition
	events     EventSink
	debug      bool
	warned     map[string]struct{}

	mouseWasDown bool
}

// NewScene creates a scene of the given extent with a camera viewport
// matching it.
func NewScene(name string, width, height float64) *Scene {
	return &Scene{
		Name:        name,
		Width:       width,
		Height:      height,
		ClearColor:  ColorBlack,
		Camera:      NewCamera(Rect{Width: width, Height: height}),
		ClickToWalk: true,
		behaviors:   make(map[*Actor]*Behavior),
	}
}

// SetBackground sets the background image and adopts its dimensions as the
// scene extent, rebuilding navigation if it was set up.
func (s *Scene) SetBackground(img *ebiten.Image) {
	s.Background = img
	if img != nil {
		b := img.Bounds()
		s.Width = float64(b.Dx())
		s.Height = float64(b.Dy())
	}
	if s.nav != nil {
		if err := s.nav.Resize(s.Width, s.Height); err != nil {
			s.logOnce("navigation rebuild failed: %v", err)
		}
	}
}

// SetWalkableArea installs the walkable area. Call before
// EnablePathfinding.
func (s *Scene) SetWalkableArea(area *WalkableArea) {
	s.area = area
	for _, a := range s.actors {
		if a.Movement != nil {
			a.Movement.area = area
		}
	}
}

// WalkableArea returns the scene's walkable area, or nil.
func (s *Scene) WalkableArea() *WalkableArea {
	return s.area
}

// EnablePathfinding builds the navigation grid for the scene. A failure
// (e.g. a walkable area with no regions) is logged once and leaves the
// scene running with pathfinding disabled — walk requests then block
// instead of crashing.
func (s *Scene) EnablePathfinding(cellSize, characterRadius float64) error {
	nav := NewNavigationManager(s.area, s.Width, s.Height, cellSize)
	nav.SetDebug(s.debug)
	if err := nav.SetupNavigation(characterRadius); err != nil {
		s.logOnce("pathfinding disabled for scene %q: %v", s.Name, err)
		return err
	}
	s.nav = nav
	for _, a := range s.actors {
		if a.Movement != nil {
			a.Movement.nav = nav
		}
	}
	return nil
}

// Navigation returns the scene's navigation manager, or nil when
// pathfinding is disabled.
func (s *Scene) Navigation() *NavigationManager {
	return s.nav
}

// AddActor adds an actor and wires its movement controller to the scene's
// navigation and walkable area.
func (s *Scene) AddActor(a *Actor) {
	a.Movement = NewMovementController(a, s.nav, s.area)
	a.Movement.events = s.events
	s.actors = append(s.actors, a)
}

// SetPlayer adds the actor (if not already added) and makes it the
// click-to-walk target.
func (s *Scene) SetPlayer(a *Actor) {
	if a.Movement == nil {
		s.AddActor(a)
	}
	s.player = a
}

// Player returns the player actor, or nil.
func (s *Scene) Player() *Actor {
	return s.player
}

// Actors returns all actors in insertion order. The returned slice MUST NOT
// be mutated.
func (s *Scene) Actors() []*Actor {
	return s.actors
}

// ActorByName returns the named actor, or nil.
func (s *Scene) ActorByName(name string) *Actor {
	for _, a := range s.actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// SetBehavior attaches an NPC behavior to an actor, replacing any previous
// one. Pass nil to detach.
func (s *Scene) SetBehavior(a *Actor, b *Behavior) {
	if b == nil {
		delete(s.behaviors, a)
		return
	}
	s.behaviors[a] = b
}

// AddHotspot adds an interactive region. Later hotspots sit on top for hit
// testing.
func (s *Scene) AddHotspot(h *Hotspot) {
	s.hotspots = append(s.hotspots, h)
}

// Hotspots returns all hotspots in insertion order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Hotspots() []*Hotspot {
	return s.hotspots
}

// HotspotAt returns the topmost enabled hotspot containing the scene-space
// point, or nil.
func (s *Scene) HotspotAt(x, y float64) *Hotspot {
	for i := len(s.hotspots) - 1; i >= 0; i-- {
		if s.hotspots[i].Contains(x, y) {
			return s.hotspots[i]
		}
	}
	return nil
}

// StartTransition begins a scene transition effect. Any running transition
// is replaced.
func (s *Scene) StartTransition(t *Transition) {
	s.transition = t
}

// SetEventSink sets the optional ECS bridge. Movement and hotspot events
// are forwarded to it.
func (s *Scene) SetEventSink(sink EventSink) {
	s.events = sink
	for _, a := range s.actors {
		if a.Movement != nil {
			a.Movement.events = sink
		}
	}
}

// SetDebugMode toggles the navigation overlay and stderr diagnostics.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if s.nav != nil {
		s.nav.SetDebug(enabled)
	}
}

// Update advances the scene by one tick: transition, camera, input,
// behaviors, then every actor's movement and animation.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	if s.transition != nil {
		s.transition.Update(dt)
		if s.transition.Done() {
			s.transition = nil
		}
	}

	s.Camera.Update(dt)

	// Input is suppressed while a transition covers the scene.
	if s.transition == nil {
		s.processInput()
	}

	for a, b := range s.behaviors {
		b.Update(a, dt)
	}
	for _, a := range s.actors {
		a.Update(dt)
	}
}

// processInput handles hotspot hover and the click-to-walk/hotspot-click
// dispatch.
func (s *Scene) processInput() {
	mx, my := ebiten.CursorPosition()
	wx, wy := s.Camera.ScreenToWorld(float64(mx), float64(my))

	hs := s.HotspotAt(wx, wy)
	if hs != s.hovered {
		if s.hovered != nil && s.hovered.OnLeave != nil {
			s.hovered.OnLeave()
		}
		if hs != nil && hs.OnEnter != nil {
			hs.OnEnter()
		}
		s.hovered = hs
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := down && !s.mouseWasDown
	s.mouseWasDown = down
	if !justPressed {
		return
	}

	if hs != nil {
		if hs.OnClick != nil {
			hs.OnClick(wx, wy)
		}
		if s.events != nil {
			s.events.EmitEvent(Event{Type: EventHotspotClicked, Hotspot: hs.Name, X: wx, Y: wy})
		}
		return
	}
	if s.ClickToWalk && s.player != nil && s.player.Movement != nil {
		// A failed path is a normal "can't get there" — nothing to do here.
		_ = s.player.Movement.WalkTo(wx, wy)
	}
}

// Draw renders the scene: background, actors in painter's order with depth
// scaling, debug overlay, then any transition cover.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	ox, oy := s.Camera.WorldToScreen(0, 0)
	zoom := s.Camera.Zoom

	if s.Background != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(ox, oy)
		screen.DrawImage(s.Background, &op)
	}

	// Painter's order: smaller Y (further back) draws first.
	drawOrder := make([]*Actor, len(s.actors))
	copy(drawOrder, s.actors)
	sort.SliceStable(drawOrder, func(i, j int) bool {
		return drawOrder[i].Y < drawOrder[j].Y
	})

	for _, a := range drawOrder {
		if !a.Visible {
			continue
		}
		frame := a.Frame()
		if frame == nil {
			continue
		}
		scale := 1.0
		if s.area != nil {
			scale = s.area.ScaleAt(a.Y)
		}
		b := frame.Bounds()
		sx, sy := s.Camera.WorldToScreen(a.X, a.Y)

		var op ebiten.DrawImageOptions
		// Anchor bottom-center at the actor's feet.
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))
		op.GeoM.Scale(scale*zoom, scale*zoom)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(frame, &op)
	}

	if s.debug {
		s.drawDebugOverlay(screen)
	}

	if s.transition != nil {
		s.transition.Draw(screen)
	}
}
