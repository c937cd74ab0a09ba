package glide

// --- Subscriber registry ---

type scrollHandler struct {
	id      uint32
	fn      func(ScrollState)
	removed bool
}

type readyHandler struct {
	id      uint32
	fn      func(*Engine)
	removed bool
}

type handlerRegistry struct {
	scroll []*scrollHandler
	ready  []*readyHandler
	nextID uint32
}

// handlerKind selects the registry list a CallbackHandle belongs to.
type handlerKind uint8

const (
	handlerScroll handlerKind = iota
	handlerReady
)

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters the callback. Removing twice, or removing the zero
// handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerScroll:
		h.reg.scroll = removeScrollHandler(h.reg.scroll, h.id)
	case handlerReady:
		h.reg.ready = removeReadyHandler(h.reg.ready, h.id)
	}
}

func removeScrollHandler(s []*scrollHandler, id uint32) []*scrollHandler {
	for i := range s {
		if s[i].id == id {
			s[i].removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removeReadyHandler(s []*readyHandler, id uint32) []*readyHandler {
	for i := range s {
		if s[i].id == id {
			s[i].removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addScroll(fn func(ScrollState)) CallbackHandle {
	r.nextID++
	r.scroll = append(r.scroll, &scrollHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerScroll}
}

func (r *handlerRegistry) addReady(fn func(*Engine)) CallbackHandle {
	r.nextID++
	r.ready = append(r.ready, &readyHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerReady}
}

// notifyScroll delivers state to every handler registered when the call
// began. Handlers removed mid-delivery are skipped, and delivery stops as
// soon as cont reports false.
func (r *handlerRegistry) notifyScroll(state ScrollState, cont func() bool) {
	if len(r.scroll) == 0 {
		return
	}
	snapshot := append([]*scrollHandler(nil), r.scroll...)
	for _, h := range snapshot {
		if !cont() {
			return
		}
		if !h.removed {
			h.fn(state)
		}
	}
}

func (r *handlerRegistry) notifyReady(e *Engine) {
	snapshot := append([]*readyHandler(nil), r.ready...)
	for _, h := range snapshot {
		if !h.removed {
			h.fn(e)
		}
	}
}
