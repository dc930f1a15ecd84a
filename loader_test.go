package bramble

import (
	"errors"
	"strings"
	"testing"
)

const librarySceneYAML = `
name: library
width: 1024
height: 768
enable_pathfinding: true
navigation_cell_size: 16
character_radius: 20
regions:
  - name: floor
    walkable: true
    vertices:
      - {x: 0, y: 0}
      - {x: 1024, y: 0}
      - {x: 1024, y: 768}
      - {x: 0, y: 768}
  - name: desk
    walkable: false
    rect: {x: 380, y: 380, width: 240, height: 170}
scale_zones:
  - {min_y: 100, max_y: 700, min_scale: 0.5, max_scale: 1.0}
hotspots:
  - name: door
    cursor: exit
    action: go_hallway
    rect: {x: 950, y: 300, width: 74, height: 200}
actors:
  - name: hero
    player: true
    x: 100
    y: 600
    speed: 140
  - name: librarian
    x: 700
    y: 650
    behavior:
      type: patrol
      pause: 1.5
      waypoints:
        - {x: 700, y: 650}
        - {x: 200, y: 650}
  - name: cat
    x: 300
    y: 700
    behavior:
      type: follow
      target: hero
      stop_distance: 50
`

func TestLoadSceneCanonical(t *testing.T) {
	scene, err := LoadScene([]byte(librarySceneYAML), 10)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	if scene.Name != "library" {
		t.Errorf("name = %q, want library", scene.Name)
	}
	assertNear(t, "width", scene.Width, 1024)
	assertNear(t, "height", scene.Height, 768)

	area := scene.WalkableArea()
	if area == nil {
		t.Fatal("no walkable area")
	}
	if n := len(area.Regions()); n != 2 {
		t.Errorf("region count = %d, want 2", n)
	}
	if area.IsWalkable(500, 450) {
		t.Error("desk region not carved out")
	}
	assertNear(t, "depth scale", area.ScaleAt(400), 0.75)

	if scene.Navigation() == nil {
		t.Fatal("pathfinding not enabled")
	}
	// character_radius from the file (20) wins over the argument (10): the
	// cell centered 20 units from the desk edge is eroded only at the
	// larger radius.
	g := scene.Navigation().Grid()
	gx, gy := g.WorldToGrid(360, 460)
	if g.IsWalkable(gx, gy) {
		t.Error("erosion radius from scene data not applied")
	}

	hero := scene.Player()
	if hero == nil || hero.Name != "hero" {
		t.Fatalf("player = %+v, want hero", hero)
	}
	assertNear(t, "hero speed", hero.Speed, 140)
	if hero.Movement == nil {
		t.Fatal("player has no movement controller")
	}

	if got := len(scene.Actors()); got != 3 {
		t.Errorf("actor count = %d, want 3", got)
	}
	librarian := scene.ActorByName("librarian")
	if librarian == nil {
		t.Fatal("librarian not found")
	}
	if scene.behaviors[librarian] == nil {
		t.Error("librarian has no behavior")
	}
	cat := scene.ActorByName("cat")
	if b := scene.behaviors[cat]; b == nil || b.Target() != hero {
		t.Error("cat's follow target not resolved to the hero")
	}

	if hs := scene.HotspotAt(960, 400); hs == nil || hs.Name != "door" {
		t.Errorf("hotspot at door = %+v, want door", hs)
	}
	if scene.HotspotAt(10, 10) != nil {
		t.Error("hotspot hit where none exists")
	}
}

func TestLoadSceneDataRejectsBadShapes(t *testing.T) {
	both := `
name: s
width: 100
height: 100
regions:
  - name: bad
    walkable: true
    rect: {x: 0, y: 0, width: 10, height: 10}
    vertices:
      - {x: 0, y: 0}
      - {x: 10, y: 0}
      - {x: 10, y: 10}
`
	if _, err := LoadSceneData([]byte(both)); !errors.Is(err, ErrSceneData) {
		t.Errorf("vertices and rect together: err = %v, want ErrSceneData", err)
	}

	neither := `
name: s
width: 100
height: 100
hotspots:
  - name: bad
`
	if _, err := LoadSceneData([]byte(neither)); !errors.Is(err, ErrSceneData) {
		t.Errorf("no shape at all: err = %v, want ErrSceneData", err)
	}
}

func TestLoadSceneDataRejectsBadDimensions(t *testing.T) {
	_, err := LoadSceneData([]byte("name: s\nwidth: 0\nheight: 100\n"))
	if !errors.Is(err, ErrSceneData) {
		t.Errorf("zero width: err = %v, want ErrSceneData", err)
	}
}

func TestLoadSceneDataMalformedYAML(t *testing.T) {
	_, err := LoadSceneData([]byte("{{not yaml"))
	if err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestBuildSceneDanglingFollowTarget(t *testing.T) {
	data := `
name: s
width: 100
height: 100
actors:
  - name: cat
    x: 10
    y: 10
    behavior:
      type: follow
      target: ghost
`
	_, err := LoadScene([]byte(data), 0)
	if !errors.Is(err, ErrSceneData) {
		t.Errorf("dangling follow target: err = %v, want ErrSceneData", err)
	}
	if err != nil && !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error does not name the missing target: %v", err)
	}
}

func TestBuildSceneUnknownBehaviorType(t *testing.T) {
	data := `
name: s
width: 100
height: 100
actors:
  - name: cat
    x: 10
    y: 10
    behavior:
      type: lurk
`
	_, err := LoadScene([]byte(data), 0)
	if !errors.Is(err, ErrSceneData) {
		t.Errorf("unknown behavior type: err = %v, want ErrSceneData", err)
	}
}

func TestBuildSceneDegeneratePolygonDisablesPathfinding(t *testing.T) {
	data := `
name: s
width: 100
height: 100
enable_pathfinding: true
regions:
  - name: broken
    walkable: true
    vertices:
      - {x: 0, y: 0}
      - {x: 50, y: 50}
      - {x: 100, y: 100}
`
	scene, err := LoadScene([]byte(data), 0)
	if err != nil {
		t.Fatalf("degenerate region failed the whole build: %v", err)
	}
	if scene.Navigation() != nil {
		t.Error("pathfinding enabled despite degenerate region")
	}

	// Walk requests block instead of crashing.
	a := NewActor("hero", 10, 10)
	scene.AddActor(a)
	if err := a.Movement.WalkTo(50, 50); !errors.Is(err, ErrGridNotBuilt) {
		t.Errorf("WalkTo without grid: err = %v, want ErrGridNotBuilt", err)
	}
	if a.Movement.State() != StateBlocked {
		t.Errorf("state = %v, want blocked", a.Movement.State())
	}
}

func TestBuildSceneRandomWalkOrigin(t *testing.T) {
	data := `
name: s
width: 400
height: 400
enable_pathfinding: true
regions:
  - name: floor
    walkable: true
    rect: {x: 0, y: 0, width: 400, height: 400}
actors:
  - name: cat
    x: 200
    y: 200
    behavior:
      type: random_walk
      radius: 50
      pause: 0.5
      seed: 3
`
	scene, err := LoadScene([]byte(data), 0)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	cat := scene.ActorByName("cat")
	b := scene.behaviors[cat]
	if b == nil {
		t.Fatal("cat has no behavior")
	}
	assertNear(t, "origin X", b.origin.X, 200)
	assertNear(t, "origin Y", b.origin.Y, 200)
}

func TestLoadSceneWithoutPathfinding(t *testing.T) {
	data := `
name: s
width: 100
height: 100
regions:
  - name: floor
    walkable: true
    rect: {x: 0, y: 0, width: 100, height: 100}
`
	scene, err := LoadScene([]byte(data), 0)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Navigation() != nil {
		t.Error("pathfinding enabled without enable_pathfinding")
	}
}
