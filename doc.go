// Package glide provides inertial smooth scrolling and viewport-triggered
// reveal animations for single-page, vertically scrolling layouts on
// [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [NewHost], which wires a page
// document, a frame clock and media signals to a [Controller]:
//
//	host := glide.NewHost(glide.HostConfig{
//		ViewportHeight: 720, ContentHeight: 4200, TrackPointer: true,
//	})
//	defer host.Close()
//
//	func (g *Game) Update() error { return g.host.Update() }
//
// Draw the page offset by host.ScrollTop().
//
// # Scroll physics
//
// A [Controller] owns at most one [Engine]. Each frame the engine consumes
// wheel and touch deltas, moves its position a fixed fraction of the way to
// the target (the lerp factor), and the controller publishes the resulting
// [ScrollState] to subscribers:
//
//	h := controller.Subscribe(func(s glide.ScrollState) {
//		header.Shadow = s.Progress() > 0
//	})
//	defer h.Remove()
//
// The controller watches two media queries. [QueryReducedMotion] tears the
// engine down and leaves scrolling instant; [QueryCoarsePointer] rebuilds
// the engine with [TouchEngineConfig].
//
// # Motion presets
//
// [Describe] and [Resolve] turn a preset name into a [MotionDescription]
// with hidden, show and exit states. [Reveal] plays a description, and
// [Sequence] staggers a group:
//
//	desc := controller.Describe(glide.PresetFadeUp, glide.PresetOptions{Distance: 40})
//	group := glide.NewRevealGroup(desc, 3, glide.Sequence(glide.StaggerSpec{
//		Delay: 0.1, Stagger: 0.12,
//	}))
//
// Tweens use [gween]; scroll-linked values are smoothed with [harmonica]
// springs. ECS integration lives in glide/ecs ([Donburi]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [Donburi]: https://github.com/yohamta/donburi
package glide
