package glide

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// frameTS returns the timestamp of the i-th 60 Hz frame.
func frameTS(i int) time.Duration {
	return time.Duration(i) * time.Second / 60
}

func TestScrollStateProgress(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		limit    float64
		want     float64
	}{
		{"top", 0, 1000, 0},
		{"bottom", 1000, 1000, 1},
		{"middle", 250, 1000, 0.25},
		{"zero limit", 0, 0, 0},
		{"zero limit with offset", 40, 0, 0},
		{"past bottom", 1200, 1000, 1},
		{"negative position", -10, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{Position: tt.position, Limit: tt.limit}
			if got := s.Progress(); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Progress() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDirectionOf(t *testing.T) {
	if d := directionOf(3); d != DirectionDown {
		t.Errorf("directionOf(3) = %d, want %d", d, DirectionDown)
	}
	if d := directionOf(-3); d != DirectionUp {
		t.Errorf("directionOf(-3) = %d, want %d", d, DirectionUp)
	}
	if d := directionOf(directionEpsilon / 2); d != DirectionNone {
		t.Errorf("directionOf(tiny) = %d, want %d", d, DirectionNone)
	}
	if d := directionOf(0); d != DirectionNone {
		t.Errorf("directionOf(0) = %d, want %d", d, DirectionNone)
	}
}

func TestSpanOverlap(t *testing.T) {
	a := Span{Start: 0, Size: 100}
	if got := a.Overlap(Span{Start: 50, Size: 100}); got != 50 {
		t.Errorf("partial overlap = %f, want 50", got)
	}
	if got := a.Overlap(Span{Start: 100, Size: 10}); got != 0 {
		t.Errorf("touching spans overlap = %f, want 0", got)
	}
	if got := a.Overlap(Span{Start: 20, Size: 10}); got != 10 {
		t.Errorf("contained overlap = %f, want 10", got)
	}
	if a.End() != 100 {
		t.Errorf("End() = %f, want 100", a.End())
	}
}
