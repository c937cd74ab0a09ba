package glide

import (
	"math"
	"time"

	"github.com/tanema/gween"
)

const (
	// defaultFrameDelta is assumed for the first frame, which has no
	// previous timestamp.
	defaultFrameDelta = 1.0 / 60
	// maxFrameDelta caps dt after a stall so a single frame cannot jump.
	maxFrameDelta = 0.1
	// settleEpsilon snaps the position to the target once this close.
	settleEpsilon = 0.5
	// touchInertiaThreshold is the minimum last touch delta for a flick.
	touchInertiaThreshold = 5
)

// ScrollToOptions controls a programmatic scroll.
type ScrollToOptions struct {
	// Offset is added to the target position.
	Offset float64
	// Immediate jumps without animating.
	Immediate bool
	// Duration in seconds; zero uses the engine config.
	Duration float64
	// Easing; nil uses the engine config.
	Easing Easing
	// Lock ignores user input until the scroll completes.
	Lock bool
	// Force scrolls even while the engine is stopped.
	Force bool
	// OnComplete runs when the target is reached.
	OnComplete func(*Engine)
}

// scrollAnim holds an active programmatic scroll.
type scrollAnim struct {
	tween      *gween.Tween
	lock       bool
	onComplete func(*Engine)
}

// Engine is a smooth-scroll integrator bound to one EngineConfig. Engines
// are created and driven by a Controller; the exported methods are safe to
// call from subscribers and host code on the frame goroutine.
type Engine struct {
	cfg EngineConfig
	doc Document

	position  float64
	target    float64
	limit     float64
	velocity  float64
	direction int

	// lerp is the damping factor of the input currently being settled.
	lerp float64

	stopped   bool
	destroyed bool
	anim      *scrollAnim

	input          []InputEvent
	lastTouchDelta float64

	lastTS time.Duration
	hasTS  bool
}

// newEngine creates an engine starting at the document's native offset.
func newEngine(cfg EngineConfig, doc Document) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{cfg: cfg, doc: doc, lerp: cfg.Lerp}
	e.limit = limitOf(doc)
	if doc != nil {
		e.position = clamp(doc.ScrollTop(), 0, e.limit)
	}
	e.target = e.position
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// State returns the state computed by the most recent frame.
func (e *Engine) State() ScrollState {
	return ScrollState{
		Position:  e.position,
		Limit:     e.limit,
		Velocity:  e.velocity,
		Direction: e.direction,
	}
}

// Target returns the position the engine is settling toward.
func (e *Engine) Target() float64 {
	return e.target
}

// IsScrolling reports whether the engine has not yet settled.
func (e *Engine) IsScrolling() bool {
	return e.anim != nil || e.position != e.target
}

// IsStopped reports whether Stop is in effect.
func (e *Engine) IsStopped() bool {
	return e.stopped
}

// Stop freezes the engine at its current position and ignores input until
// Start is called. Used while an overlay such as a navigation drawer is open.
func (e *Engine) Stop() {
	e.stopped = true
	e.anim = nil
	e.target = e.position
}

// Start resumes input handling after Stop.
func (e *Engine) Start() {
	e.stopped = false
}

// ScrollTo moves to y. By default it animates with the configured duration
// and easing; user input cancels the animation unless opts.Lock is set.
func (e *Engine) ScrollTo(y float64, opts ScrollToOptions) {
	if e.destroyed || (e.stopped && !opts.Force) {
		return
	}
	e.limit = limitOf(e.doc)
	to := clamp(y+opts.Offset, 0, e.limit)

	if opts.Immediate {
		e.anim = nil
		e.position = to
		e.target = to
		if e.doc != nil {
			e.doc.SetScrollTop(to)
		}
		if opts.OnComplete != nil {
			opts.OnComplete(e)
		}
		return
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = e.cfg.Duration
	}
	easing := opts.Easing
	if easing == nil {
		easing = e.cfg.Easing
	}
	e.target = to
	e.anim = &scrollAnim{
		tween:      gween.New(float32(e.position), float32(to), float32(duration), easing.TweenFunc()),
		lock:       opts.Lock,
		onComplete: opts.OnComplete,
	}
}

// ScrollToAnchor scrolls to a named document anchor. It reports false when
// the document has no such anchor.
func (e *Engine) ScrollToAnchor(name string, opts ScrollToOptions) bool {
	r, ok := e.doc.(AnchorResolver)
	if !ok {
		return false
	}
	y, ok := r.Anchor(name)
	if !ok {
		return false
	}
	e.ScrollTo(y, opts)
	return true
}

// feed queues raw input for the next frame.
func (e *Engine) feed(ev InputEvent) {
	if e.destroyed {
		return
	}
	e.input = append(e.input, ev)
}

// raf advances the engine by one frame.
func (e *Engine) raf(ts time.Duration) {
	if e.destroyed {
		return
	}
	dt := defaultFrameDelta
	if e.hasTS {
		dt = math.Min(math.Max((ts-e.lastTS).Seconds(), 0), maxFrameDelta)
	}
	e.lastTS = ts
	e.hasTS = true

	prev := e.position
	e.limit = limitOf(e.doc)
	e.consumeInput()
	e.target = clamp(e.target, 0, e.limit)
	e.integrate(dt)
	e.position = clamp(e.position, 0, e.limit)

	e.velocity = e.position - prev
	e.direction = directionOf(e.velocity)
	if e.doc != nil {
		e.doc.SetScrollTop(e.position)
	}
}

func (e *Engine) consumeInput() {
	for _, ev := range e.input {
		if ev.Prevented || e.stopped {
			continue
		}
		if e.anim != nil && e.anim.lock {
			continue
		}
		d := ev.delta(e.cfg.GestureOrientation)

		switch ev.Kind {
		case InputWheel:
			e.anim = nil
			e.target += d * e.cfg.WheelMultiplier
			if e.cfg.SmoothWheel {
				e.lerp = e.cfg.Lerp
			} else {
				e.lerp = 1
			}
		case InputTouchStart:
			// A finger landing catches any inertia in flight.
			e.anim = nil
			e.target = e.position
			e.lastTouchDelta = 0
			e.lerp = 1
		case InputTouchMove:
			e.anim = nil
			d *= e.cfg.TouchMultiplier
			e.target += d
			e.lastTouchDelta = d
			e.lerp = 1
		case InputTouchEnd:
			if e.cfg.SyncTouch && math.Abs(e.lastTouchDelta) > touchInertiaThreshold {
				v := e.velocity
				if v == 0 {
					v = e.lastTouchDelta
				}
				e.target += v * e.cfg.TouchInertiaMultiplier
				e.lerp = e.cfg.SyncTouchLerp
			}
			e.lastTouchDelta = 0
		}
	}
	e.input = e.input[:0]
}

func (e *Engine) integrate(dt float64) {
	if e.anim != nil {
		v, done := e.anim.tween.Update(float32(dt))
		e.position = float64(v)
		if done {
			e.position = e.target
			cb := e.anim.onComplete
			e.anim = nil
			if cb != nil {
				cb(e)
			}
		}
		return
	}

	diff := e.target - e.position
	if diff == 0 {
		return
	}
	e.position += diff * dampFactor(e.lerp, dt)
	if math.Abs(e.target-e.position) < settleEpsilon {
		e.position = e.target
	}
}

// dampFactor returns the fraction of the remaining distance covered in dt
// seconds: exactly lerp for a 60 Hz frame.
func dampFactor(lerp, dt float64) float64 {
	if lerp >= 1 {
		return 1
	}
	return 1 - math.Pow(1-lerp, dt*60)
}

// destroy releases the engine. Further frames and input are ignored.
func (e *Engine) destroy() {
	e.destroyed = true
	e.anim = nil
	e.input = nil
}
