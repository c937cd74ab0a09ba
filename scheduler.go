package glide

import "time"

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameFunc is a one-shot per-frame callback receiving the frame timestamp.
type FrameFunc func(ts time.Duration)

// FrameScheduler registers and cancels one-shot frame callbacks.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a pending request. Unknown or already-run IDs are
	// ignored.
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameClock is a manually advanced FrameScheduler. Hosts call Advance once
// per display frame; tests call it directly.
type FrameClock struct {
	nextID  FrameID
	pending []pendingFrame
	running []pendingFrame
	now     time.Duration
	frames  uint64
}

// NewFrameClock returns an idle clock at timestamp zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// RequestFrame schedules fn for the next Advance.
func (c *FrameClock) RequestFrame(fn FrameFunc) FrameID {
	c.nextID++
	c.pending = append(c.pending, pendingFrame{id: c.nextID, fn: fn})
	return c.nextID
}

// CancelFrame removes a pending request.
func (c *FrameClock) CancelFrame(id FrameID) {
	for i := range c.pending {
		if c.pending[i].id == id {
			copy(c.pending[i:], c.pending[i+1:])
			c.pending[len(c.pending)-1] = pendingFrame{}
			c.pending = c.pending[:len(c.pending)-1]
			return
		}
	}
	// A request may be cancelled by an earlier callback of the same frame.
	for i := range c.running {
		if c.running[i].id == id {
			c.running[i].fn = nil
			return
		}
	}
}

// Advance moves the clock to ts and runs every callback requested before
// the call, in request order. Callbacks requested while running are held for
// the next Advance. It returns the number of callbacks run.
func (c *FrameClock) Advance(ts time.Duration) int {
	c.now = ts
	c.frames++
	c.running, c.pending = c.pending, c.running[:0]
	n := 0
	for i := range c.running {
		fn := c.running[i].fn
		if fn == nil {
			continue
		}
		c.running[i].fn = nil
		fn(ts)
		n++
	}
	c.running = c.running[:0]
	return n
}

// Now returns the timestamp of the most recent Advance.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Frames returns how many times Advance has been called.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// Pending returns the number of callbacks waiting for the next Advance.
func (c *FrameClock) Pending() int {
	return len(c.pending)
}
