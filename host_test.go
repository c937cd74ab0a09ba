package glide

import "testing"

func newTestHost(cfg HostConfig) *Host {
	if cfg.ViewportHeight == 0 {
		cfg.ViewportHeight = 500
	}
	if cfg.ContentHeight == 0 {
		cfg.ContentHeight = 2000
	}
	return NewHost(cfg)
}

// stepN runs n host frames without polling Ebitengine.
func stepN(h *Host, n int) {
	for i := 0; i < n; i++ {
		h.step(nil)
	}
}

func TestHostInjectWheel(t *testing.T) {
	h := newTestHost(HostConfig{})
	defer h.Close()

	h.InjectWheel(100)
	h.step(nil)
	if !approxEqual(h.ScrollTop(), 8, 1e-3) {
		t.Errorf("ScrollTop() after one frame = %f, want 8", h.ScrollTop())
	}
	stepN(h, 200)
	if h.ScrollTop() != 100 {
		t.Errorf("ScrollTop() = %f, want 100", h.ScrollTop())
	}
	if h.Clock.Frames() != 201 {
		t.Errorf("Frames() = %d, want 201", h.Clock.Frames())
	}
}

func TestHostInjectedInputReplacesRealInput(t *testing.T) {
	h := newTestHost(HostConfig{ReducedMotion: true})
	h.InjectWheel(50)
	h.step([]InputEvent{{Kind: InputWheel, DeltaY: 400}})
	if h.ScrollTop() != 50 {
		t.Errorf("ScrollTop() = %f, want only the injected 50", h.ScrollTop())
	}
	h.step([]InputEvent{{Kind: InputWheel, DeltaY: 400}})
	if h.ScrollTop() != 450 {
		t.Errorf("ScrollTop() = %f, want 450", h.ScrollTop())
	}
}

func TestHostReducedMotionScrollsNatively(t *testing.T) {
	h := newTestHost(HostConfig{ReducedMotion: true})
	if h.Controller.Engine() != nil {
		t.Fatal("engine built with reduced motion")
	}
	h.InjectWheel(100)
	h.step(nil)
	if h.ScrollTop() != 100 {
		t.Errorf("ScrollTop() = %f, want 100", h.ScrollTop())
	}

	h.SetReducedMotion(false)
	if h.Controller.Engine() == nil {
		t.Fatal("engine not rebuilt")
	}
}

func TestHostInjectSwipe(t *testing.T) {
	h := newTestHost(HostConfig{})
	h.InjectSwipe(400, 300, 5)
	if len(h.injectQueue) != 5 {
		t.Fatalf("queued %d events, want 5", len(h.injectQueue))
	}
	if h.injectQueue[0].Kind != InputTouchStart || h.injectQueue[4].Kind != InputTouchEnd {
		t.Errorf("swipe bounds = %s, %s", h.injectQueue[0].Kind, h.injectQueue[4].Kind)
	}

	stepN(h, 4)
	if !approxEqual(h.ScrollTop(), 100, 1e-6) {
		t.Fatalf("ScrollTop() after moves = %f, want 100", h.ScrollTop())
	}

	// Release velocity 100/3 per frame times inertia 25.
	stepN(h, 300)
	want := 100 + 100.0/3*25
	if !approxEqual(h.ScrollTop(), want, 1e-3) {
		t.Errorf("ScrollTop() after flick = %f, want %f", h.ScrollTop(), want)
	}
}

func TestHostInjectSwipeMinimumFrames(t *testing.T) {
	h := newTestHost(HostConfig{})
	h.InjectSwipe(0, 100, 0)
	if len(h.injectQueue) != 2 {
		t.Errorf("queued %d events, want start and end only", len(h.injectQueue))
	}
}

func TestHostCoarsePointer(t *testing.T) {
	h := newTestHost(HostConfig{CoarsePointer: true})
	if h.Controller.Profile() != ProfileTouch {
		t.Errorf("Profile() = %s, want touch", h.Controller.Profile())
	}
	h.SetCoarsePointer(false)
	if h.Controller.Profile() != ProfileDefault {
		t.Errorf("Profile() = %s, want default", h.Controller.Profile())
	}
}

func TestHostClose(t *testing.T) {
	h := newTestHost(HostConfig{})
	h.Close()
	h.Close()
	if h.Controller.Engine() != nil || h.Clock.Pending() != 0 {
		t.Error("Close left the loop running")
	}
}

func TestHostCustomTPS(t *testing.T) {
	h := newTestHost(HostConfig{TPS: 120})
	h.step(nil)
	if h.Clock.Now() != frameTS(1)/2 {
		t.Errorf("Now() = %v, want %v", h.Clock.Now(), frameTS(1)/2)
	}
}
