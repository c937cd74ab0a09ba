package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType is the Donburi event type for glide scroll frames.
// Subscribe to this in your ECS systems to receive every frame's state.
var ScrollEventType = events.NewEventType[glide.ScrollState]()

// Bridge publishes each frame's ScrollState from c into world. Events are
// queued; systems drain them with ScrollEventType.ProcessEvents. Remove the
// returned handle to stop publishing.
func Bridge(world donburi.World, c *glide.Controller) glide.CallbackHandle {
	return c.Subscribe(func(s glide.ScrollState) {
		ScrollEventType.Publish(world, s)
	})
}
