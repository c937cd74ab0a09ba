// Package ecs provides ECS adapters for glide's scroll controller.
//
// The primary adapter is [Bridge], which publishes every frame's
// [glide.ScrollState] into a [Donburi] world as a typed event.
// Subscribe to [ScrollEventType] in your ECS systems to receive them.
//
// Usage:
//
//	h := ecs.Bridge(world, controller)
//	defer h.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
