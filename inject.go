package glide

// InjectWheel queues a synthetic wheel event. Positive dy scrolls down. The
// event is consumed on the next frame.
func (h *Host) InjectWheel(dy float64) {
	h.injectQueue = append(h.injectQueue, InputEvent{Kind: InputWheel, DeltaY: dy})
}

// InjectTouchStart queues a finger landing.
func (h *Host) InjectTouchStart() {
	h.injectQueue = append(h.injectQueue, InputEvent{Kind: InputTouchStart})
}

// InjectTouchMove queues a finger move by dy screen pixels. Moving the
// finger up (negative dy) scrolls the page down.
func (h *Host) InjectTouchMove(dy float64) {
	h.injectQueue = append(h.injectQueue, InputEvent{Kind: InputTouchMove, DeltaY: -dy})
}

// InjectTouchEnd queues the finger lifting.
func (h *Host) InjectTouchEnd() {
	h.injectQueue = append(h.injectQueue, InputEvent{Kind: InputTouchEnd})
}

// InjectSwipe queues a full swipe: touch start at fromY, moves linearly
// interpolated over frames-2 intermediate frames, and release at toY. The
// sequence consumes `frames` frames; the minimum is 2 (start + end).
func (h *Host) InjectSwipe(fromY, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectTouchStart()
	steps := frames - 2
	prev := fromY
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		y := fromY + (toY-fromY)*t
		h.InjectTouchMove(y - prev)
		prev = y
	}
	h.InjectTouchEnd()
}

// processInjectedInput pops one queued event and routes it through the
// controller. It reports whether an event was consumed, in which case real
// input is skipped for the frame.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	ev := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.Controller.HandleInput(ev)
	return true
}
