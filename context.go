package glide

import "context"

// SmoothScroll is the value descendants query to learn whether smoothing is
// in effect.
type SmoothScroll struct {
	// Engine is the active engine, or nil.
	Engine *Engine
	// IsReady reports that an engine is built and controlling scroll.
	IsReady bool
	// PrefersReducedMotion reports the accessibility override.
	PrefersReducedMotion bool
}

// Value returns the controller's current SmoothScroll value.
func (c *Controller) Value() SmoothScroll {
	return SmoothScroll{
		Engine:               c.engine,
		IsReady:              c.engine != nil,
		PrefersReducedMotion: c.reduced,
	}
}

type controllerKey struct{}

// NewContext returns a copy of ctx carrying c.
func NewContext(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, controllerKey{}, c)
}

// Lookup returns the controller carried by ctx, if any.
func Lookup(ctx context.Context) (*Controller, bool) {
	c, ok := ctx.Value(controllerKey{}).(*Controller)
	return c, ok && c != nil
}

// FromContext returns the controller carried by ctx. It panics when ctx was
// not derived from NewContext: there is no meaningful default scroll state.
func FromContext(ctx context.Context) *Controller {
	c, ok := Lookup(ctx)
	if !ok {
		panic("glide: FromContext called without a Controller; derive the context with NewContext")
	}
	return c
}
