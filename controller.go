package glide

import (
	"time"
)

// ControllerConfig wires a Controller to its platform collaborators.
type ControllerConfig struct {
	// Scheduler delivers per-frame callbacks. Required.
	Scheduler FrameScheduler
	// Document is the scrollable content. A nil Document scrolls nothing
	// but still produces frames.
	Document Document
	// Media provides the reduced-motion and coarse-pointer signals. When
	// nil, both signals are treated as unmatched.
	Media Media
}

// Controller owns the page's single smooth-scroll engine, drives it once
// per frame and publishes ScrollState to subscribers. It reacts to the
// reduced-motion signal by tearing the engine down and to the
// coarse-pointer signal by rebuilding it with the touch profile.
//
// A Controller is not safe for concurrent use; all calls belong on the
// frame goroutine.
type Controller struct {
	sched FrameScheduler
	doc   Document
	media Media

	engine  *Engine
	profile Profile
	state   ScrollState

	// Frame loop. loopGen is the cancellation token: bumping it orphans
	// any callback already handed to the scheduler. haltGen only moves when
	// smoothing stops (teardown or reduced motion) and cuts delivery short;
	// replacing the engine lets the current frame reach every subscriber.
	frameID FrameID
	armed   bool
	loopGen uint64
	haltGen uint64
	frames  uint64

	reduced   bool
	coarse    bool
	mounted   bool
	mounting  bool
	stopMedia []func()

	handlers handlerRegistry
	debug    bool
}

// NewController creates an unmounted controller. Call Mount to start
// observing media signals and build the engine.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Scheduler == nil {
		panic("glide: ControllerConfig.Scheduler is required")
	}
	return &Controller{
		sched: cfg.Scheduler,
		doc:   cfg.Document,
		media: cfg.Media,
	}
}

// Mount observes the media signals and applies the engine policy once with
// both initial values. Mounting an already mounted controller is a no-op.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounting = true
	if c.media != nil {
		c.stopMedia = append(c.stopMedia,
			observeMedia(c.media.MatchMedia(QueryReducedMotion), c.setReduced),
			observeMedia(c.media.MatchMedia(QueryCoarsePointer), c.setCoarse),
		)
	}
	c.mounting = false
	c.mounted = true
	c.debugLog("mount: reduced=%t coarse=%t", c.reduced, c.coarse)
	c.applyPolicy()
}

// Teardown cancels the pending frame, destroys the engine and stops
// observing media signals. It is safe to call repeatedly or before Mount.
func (c *Controller) Teardown() {
	c.haltGen++
	if c.engine != nil {
		c.destroyEngine("teardown")
	}
	c.disarm()
	for _, stop := range c.stopMedia {
		stop()
	}
	c.stopMedia = nil
	c.mounted = false
}

// Initialize builds an engine from cfg and starts the frame loop. It
// returns nil while reduced motion is requested. An existing engine is
// replaced, never run alongside the new one.
func (c *Controller) Initialize(cfg EngineConfig) *Engine {
	if c.reduced {
		c.debugLog("initialize skipped: reduced motion")
		return nil
	}
	return c.construct(cfg, profileFor(c.coarse))
}

func (c *Controller) setReduced(v bool) {
	c.reduced = v
	if !c.mounting {
		c.applyPolicy()
	}
}

func (c *Controller) setCoarse(v bool) {
	c.coarse = v
	if !c.mounting {
		c.applyPolicy()
	}
}

func (c *Controller) applyPolicy() {
	// A change delivered after Teardown must not revive the loop.
	if !c.mounted {
		return
	}
	t := resolveTransition(engineStatus{Active: c.engine != nil, Profile: c.profile}, c.reduced, c.coarse)
	if t.Teardown {
		reason := "reduced motion"
		if t.Construct {
			reason = "profile change"
		} else {
			c.haltGen++
		}
		c.destroyEngine(reason)
	}
	if t.Construct {
		c.construct(ConfigForProfile(t.Profile), t.Profile)
	}
}

func (c *Controller) construct(cfg EngineConfig, p Profile) *Engine {
	if c.engine != nil {
		c.destroyEngine("replaced")
	}
	e := newEngine(cfg, c.doc)
	c.engine = e
	c.profile = p
	c.arm()
	c.debugLog("engine built: profile=%s lerp=%.3f", p, e.cfg.Lerp)
	c.handlers.notifyReady(e)
	return e
}

// destroyEngine cancels the loop before releasing the engine. State keeps
// the last frame's value.
func (c *Controller) destroyEngine(reason string) {
	c.disarm()
	c.engine.destroy()
	c.engine = nil
	c.debugLog("engine destroyed: %s", reason)
}

func (c *Controller) arm() {
	gen := c.loopGen
	c.frameID = c.sched.RequestFrame(func(ts time.Duration) {
		c.onFrame(gen, ts)
	})
	c.armed = true
}

func (c *Controller) disarm() {
	c.loopGen++
	if c.armed {
		c.sched.CancelFrame(c.frameID)
		c.armed = false
	}
}

// onFrame computes the frame's state in full, notifies subscribers in
// registration order and re-arms unless the loop was cancelled meanwhile.
func (c *Controller) onFrame(gen uint64, ts time.Duration) {
	if gen != c.loopGen || c.engine == nil {
		return
	}
	c.armed = false
	e := c.engine

	var stats frameStats
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	e.raf(ts)
	c.state = e.State()
	c.frames++

	if c.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	halt := c.haltGen
	c.handlers.notifyScroll(c.state, func() bool { return halt == c.haltGen })

	if c.debug {
		stats.notifyTime = time.Since(t0)
		stats.frame = c.frames
		stats.state = c.state
		stats.target = e.target
		stats.subscribers = len(c.handlers.scroll)
		c.debugFrame(stats)
	}

	// A replacement engine armed its own loop.
	if gen == c.loopGen && c.engine == e {
		c.arm()
	}
}

// HandleInput routes raw input to the engine. Without an engine, input
// scrolls the document instantly, as the platform would natively.
func (c *Controller) HandleInput(ev InputEvent) {
	if c.engine != nil {
		c.engine.feed(ev)
		return
	}
	if ev.Prevented || c.doc == nil {
		return
	}
	if ev.Kind == InputWheel || ev.Kind == InputTouchMove {
		c.doc.SetScrollTop(c.doc.ScrollTop() + ev.DeltaY)
	}
}

// State returns the most recent frame's state. Before the first frame it
// is the zero state; after reduced motion tears the engine down it stays
// frozen at the last computed frame.
func (c *Controller) State() ScrollState {
	return c.state
}

// Engine returns the active engine, or nil when none is running.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Subscribe registers fn to receive every frame's state.
func (c *Controller) Subscribe(fn func(ScrollState)) CallbackHandle {
	return c.handlers.addScroll(fn)
}

// OnReady registers fn to run with each newly built engine. If an engine
// is already running, fn runs immediately with it.
func (c *Controller) OnReady(fn func(*Engine)) CallbackHandle {
	h := c.handlers.addReady(fn)
	if c.engine != nil {
		fn(c.engine)
	}
	return h
}

// PrefersReducedMotion reports the reduced-motion signal.
func (c *Controller) PrefersReducedMotion() bool {
	return c.reduced
}

// CoarsePointer reports the coarse-pointer signal.
func (c *Controller) CoarsePointer() bool {
	return c.coarse
}

// Profile returns the profile of the active engine, or of the last engine
// built.
func (c *Controller) Profile() Profile {
	return c.profile
}

// Frames returns the number of frames integrated since creation.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Describe resolves a motion preset, collapsing to the identity
// description while reduced motion is requested.
func (c *Controller) Describe(name PresetName, opts PresetOptions) MotionDescription {
	return Resolve(name, opts, c.reduced)
}
