package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for bramble engine events:
// path arrivals, blocked walk requests, and hotspot clicks. Subscribe to
// this in your ECS systems to react to movement and interaction.
var EngineEventType = events.NewEventType[bramble.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Engine
// events are published to EngineEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) bramble.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event bramble.Event) {
	EngineEventType.Publish(s.world, event)
}
