package glide

import "time"

const defaultTPS = 60

// HostConfig holds the options for NewHost.
type HostConfig struct {
	// ViewportHeight is the visible height in logical pixels.
	ViewportHeight float64
	// ContentHeight is the full page height.
	ContentHeight float64
	// TPS is the number of Update calls per second; zero means 60.
	TPS int
	// ReducedMotion and CoarsePointer seed the media signals.
	ReducedMotion bool
	CoarsePointer bool
	// TrackPointer flips the coarse-pointer signal to follow the input
	// modality seen last: touch sets it, mouse or wheel clears it.
	TrackPointer bool
	// Debug enables controller debug logging.
	Debug bool
}

// Host runs a Controller inside an Ebitengine game: it owns the page
// document, the frame clock and the media signals. Call Update from
// ebiten.Game.Update.
type Host struct {
	Page       *Page
	Clock      *FrameClock
	Media      *MediaSet
	Controller *Controller

	input        ebitenInput
	trackPointer bool
	frameDelta   time.Duration
	ts           time.Duration

	injectQueue []InputEvent
	testRunner  *TestRunner
}

// NewHost creates a host and mounts its controller.
func NewHost(cfg HostConfig) *Host {
	tps := cfg.TPS
	if tps <= 0 {
		tps = defaultTPS
	}
	page := NewPage(cfg.ContentHeight, cfg.ViewportHeight)
	clock := NewFrameClock()
	media := NewMediaSet()
	media.Set(QueryReducedMotion, cfg.ReducedMotion)
	media.Set(QueryCoarsePointer, cfg.CoarsePointer)

	c := NewController(ControllerConfig{Scheduler: clock, Document: page, Media: media})
	c.SetDebugMode(cfg.Debug)

	h := &Host{
		Page:         page,
		Clock:        clock,
		Media:        media,
		Controller:   c,
		trackPointer: cfg.TrackPointer,
		frameDelta:   time.Second / time.Duration(tps),
	}
	c.Mount()
	return h
}

// Update polls Ebitengine input and advances one frame.
func (h *Host) Update() error {
	events := h.input.poll()
	if h.trackPointer {
		if h.input.sawTouch {
			h.SetCoarsePointer(true)
		} else if h.input.sawPointer {
			h.SetCoarsePointer(false)
		}
	}
	h.step(events)
	return nil
}

// step runs one frame: the test runner, then input, then the clock.
// Injected input replaces real input for the frame it is consumed in.
func (h *Host) step(events []InputEvent) {
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	if !h.processInjectedInput() {
		for _, ev := range events {
			h.Controller.HandleInput(ev)
		}
	}
	h.ts += h.frameDelta
	h.Clock.Advance(h.ts)
}

// SetReducedMotion changes the reduced-motion signal.
func (h *Host) SetReducedMotion(v bool) {
	h.Media.Set(QueryReducedMotion, v)
}

// SetCoarsePointer changes the coarse-pointer signal.
func (h *Host) SetCoarsePointer(v bool) {
	h.Media.Set(QueryCoarsePointer, v)
}

// ScrollTop returns the page offset to draw with.
func (h *Host) ScrollTop() float64 {
	return h.Page.ScrollTop()
}

// Close tears the controller down.
func (h *Host) Close() {
	h.Controller.Teardown()
}
