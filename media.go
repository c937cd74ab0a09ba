package glide

import "fmt"

// Media queries observed by the Controller.
const (
	QueryReducedMotion = "(prefers-reduced-motion: reduce)"
	QueryCoarsePointer = "(pointer: coarse)"
)

// Media is the platform's media-query capability.
type Media interface {
	MatchMedia(query string) MediaQueryList
}

// MediaQueryList reports the current value of one boolean media query.
// Implementations must also satisfy ChangeNotifier or LegacyNotifier.
type MediaQueryList interface {
	Matches() bool
}

// ChangeNotifier is the modern subscription method. The returned function
// stops delivery and may be called more than once.
type ChangeNotifier interface {
	OnChange(fn func(matches bool)) (cancel func())
}

// MediaListener receives change notifications from a LegacyNotifier.
type MediaListener interface {
	MediaChanged(matches bool)
}

// LegacyNotifier is the older add/remove listener pair. Listeners are
// identified by equality.
type LegacyNotifier interface {
	AddListener(l MediaListener)
	RemoveListener(l MediaListener)
}

// mediaFunc adapts a callback to MediaListener. It is used by pointer so
// that each observation registers a distinct listener.
type mediaFunc struct {
	fn func(bool)
}

func (m *mediaFunc) MediaChanged(matches bool) { m.fn(matches) }

// observeMedia reports the current value of q to fn, then subscribes fn to
// changes using the modern method when available and the legacy pair
// otherwise. A list supporting neither is an integration bug and panics.
func observeMedia(q MediaQueryList, fn func(bool)) (stop func()) {
	fn(q.Matches())

	if n, ok := q.(ChangeNotifier); ok {
		return n.OnChange(fn)
	}
	if n, ok := q.(LegacyNotifier); ok {
		l := &mediaFunc{fn: fn}
		n.AddListener(l)
		removed := false
		return func() {
			if removed {
				return
			}
			removed = true
			n.RemoveListener(l)
		}
	}
	panic(fmt.Sprintf("glide: media query list %T supports neither OnChange nor AddListener", q))
}

// MediaSignal is a settable media query supporting the modern subscription
// method.
type MediaSignal struct {
	matches   bool
	listeners []*signalListener
}

type signalListener struct {
	fn      func(bool)
	removed bool
}

// Matches reports the current value.
func (s *MediaSignal) Matches() bool {
	return s.matches
}

// Set changes the value and notifies listeners when it differs.
func (s *MediaSignal) Set(matches bool) {
	if s.matches == matches {
		return
	}
	s.matches = matches
	snapshot := append([]*signalListener(nil), s.listeners...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn(matches)
		}
	}
}

// OnChange registers fn for value changes.
func (s *MediaSignal) OnChange(fn func(bool)) func() {
	l := &signalListener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, other := range s.listeners {
			if other == l {
				copy(s.listeners[i:], s.listeners[i+1:])
				s.listeners[len(s.listeners)-1] = nil
				s.listeners = s.listeners[:len(s.listeners)-1]
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *MediaSignal) ListenerCount() int {
	return len(s.listeners)
}

// LegacyMediaSignal is a settable media query that only supports the
// AddListener/RemoveListener pair, as older platforms do.
type LegacyMediaSignal struct {
	matches   bool
	listeners []MediaListener
}

// Matches reports the current value.
func (s *LegacyMediaSignal) Matches() bool {
	return s.matches
}

// Set changes the value and notifies listeners when it differs.
func (s *LegacyMediaSignal) Set(matches bool) {
	if s.matches == matches {
		return
	}
	s.matches = matches
	for _, l := range append([]MediaListener(nil), s.listeners...) {
		// Skip listeners removed by an earlier listener of this dispatch.
		if s.has(l) {
			l.MediaChanged(matches)
		}
	}
}

func (s *LegacyMediaSignal) has(l MediaListener) bool {
	for _, other := range s.listeners {
		if other == l {
			return true
		}
	}
	return false
}

// AddListener registers l. Adding the same listener twice is a no-op.
func (s *LegacyMediaSignal) AddListener(l MediaListener) {
	if s.has(l) {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l if present.
func (s *LegacyMediaSignal) RemoveListener(l MediaListener) {
	for i, other := range s.listeners {
		if other == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *LegacyMediaSignal) ListenerCount() int {
	return len(s.listeners)
}

// MediaSet is a Media implementation backed by MediaSignals, created on
// first use of each query.
type MediaSet struct {
	signals map[string]*MediaSignal
}

// NewMediaSet returns an empty MediaSet; every query starts unmatched.
func NewMediaSet() *MediaSet {
	return &MediaSet{signals: make(map[string]*MediaSignal)}
}

// MatchMedia returns the signal for query.
func (m *MediaSet) MatchMedia(query string) MediaQueryList {
	return m.Signal(query)
}

// Signal returns the settable signal for query.
func (m *MediaSet) Signal(query string) *MediaSignal {
	s, ok := m.signals[query]
	if !ok {
		s = &MediaSignal{}
		m.signals[query] = s
	}
	return s
}

// Set is shorthand for m.Signal(query).Set(matches).
func (m *MediaSet) Set(query string, matches bool) {
	m.Signal(query).Set(matches)
}
