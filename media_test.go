package glide

import (
	"strings"
	"testing"
)

// legacyMedia hands out LegacyMediaSignals, like a platform without
// the modern subscription method.
type legacyMedia map[string]*LegacyMediaSignal

func (m legacyMedia) MatchMedia(q string) MediaQueryList {
	s, ok := m[q]
	if !ok {
		s = &LegacyMediaSignal{}
		m[q] = s
	}
	return s
}

// staticList supports neither subscription method.
type staticList struct{ matches bool }

func (l staticList) Matches() bool { return l.matches }

type staticMedia struct{}

func (staticMedia) MatchMedia(string) MediaQueryList { return staticList{} }

func TestObserveMediaModern(t *testing.T) {
	s := &MediaSignal{}
	s.Set(true)

	var got []bool
	stop := observeMedia(s, func(v bool) { got = append(got, v) })
	if len(got) != 1 || !got[0] {
		t.Fatalf("initial delivery = %v, want [true]", got)
	}

	s.Set(false)
	s.Set(false) // unchanged value is not delivered
	if len(got) != 2 || got[1] {
		t.Fatalf("after change = %v, want [true false]", got)
	}

	stop()
	stop()
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d after stop, want 0", s.ListenerCount())
	}
	s.Set(true)
	if len(got) != 2 {
		t.Errorf("delivered after stop: %v", got)
	}
}

func TestObserveMediaLegacyFallback(t *testing.T) {
	s := &LegacyMediaSignal{}

	var got []bool
	stop := observeMedia(s, func(v bool) { got = append(got, v) })
	if s.ListenerCount() != 1 {
		t.Fatalf("ListenerCount() = %d, want 1", s.ListenerCount())
	}
	s.Set(true)
	if len(got) != 2 || !got[1] {
		t.Fatalf("got = %v, want [false true]", got)
	}

	stop()
	stop()
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d after stop, want 0", s.ListenerCount())
	}
}

func TestObserveMediaUnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for a list without subscription support")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "supports neither") {
			t.Errorf("panic = %v", r)
		}
	}()
	observeMedia(staticList{}, func(bool) {})
}

func TestObserveMediaDistinctLegacyListeners(t *testing.T) {
	s := &LegacyMediaSignal{}
	stopA := observeMedia(s, func(bool) {})
	stopB := observeMedia(s, func(bool) {})
	if s.ListenerCount() != 2 {
		t.Fatalf("ListenerCount() = %d, want 2", s.ListenerCount())
	}
	stopA()
	if s.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d after one stop, want 1", s.ListenerCount())
	}
	stopB()
}

func TestLegacySignalSkipsListenersRemovedMidDispatch(t *testing.T) {
	s := &LegacyMediaSignal{}
	second := 0
	var stopSecond func()
	observeMedia(s, func(v bool) {
		if v {
			stopSecond()
		}
	})
	stopSecond = observeMedia(s, func(v bool) {
		if v {
			second++
		}
	})
	s.Set(true)
	if second != 0 {
		t.Errorf("removed listener ran %d times", second)
	}
}

func TestMediaSetSignalsStartUnmatched(t *testing.T) {
	m := NewMediaSet()
	if m.MatchMedia(QueryReducedMotion).Matches() {
		t.Error("new query should start unmatched")
	}
	m.Set(QueryReducedMotion, true)
	if !m.Signal(QueryReducedMotion).Matches() {
		t.Error("Set did not change the signal")
	}
	if m.Signal(QueryCoarsePointer).Matches() {
		t.Error("queries should be independent")
	}
}
