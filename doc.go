// Package bramble is a point-and-click adventure engine core for
// [Ebitengine].
//
// Bramble provides the scene navigation and character movement layer that
// every adventure game needs: polygonal walkable areas with depth scaling,
// grid-based A* pathfinding with a character-radius clearance margin,
// waypoint movement with 8-way facing, hotspots, NPC behaviors, cameras,
// and scene transitions. Rendering of sprites and backgrounds stays with
// the host game; bramble computes, the host draws.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := bramble.NewScene("library", 1024, 768)
//	scene.SetWalkableArea(area)
//	scene.EnablePathfinding(16, 20)
//	scene.SetPlayer(bramble.NewActor("player", 300, 500))
//	bramble.Run(scene, bramble.RunConfig{
//		Title: "My Game", Width: 1024, Height: 768,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Walkable areas and pathfinding
//
// A [WalkableArea] is an ordered list of named polygon or rectangle
// regions; later regions override earlier ones, so obstacles are listed
// after the floor they carve from. [Scene.EnablePathfinding] builds a
// [NavigationGrid] over the scene, eroded by the character radius so paths
// keep clearance from obstacle edges, and left clicks route the player
// through [MovementController.WalkTo].
//
// Scale zones map Y bands to a size/speed multiplier, simulating depth:
// characters further back draw smaller and walk slower.
//
// # Scene files
//
// Scenes can be described in YAML — regions, scale zones, hotspots, actors,
// behaviors — and loaded with [LoadScene]. See [SceneData] for the schema.
//
// # Key features
//
// Cameras with follow/scroll-to (via [gween] easing), scene transitions,
// NPC behaviors (patrol, follow, random walk), a navigation debug overlay,
// and ECS integration (via [Donburi] adapter in bramble/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bramble
