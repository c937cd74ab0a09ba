package glide

import "math"

// Orientation is the axis the engine scrolls along. Only vertical scrolling
// is supported.
type Orientation uint8

const (
	OrientationVertical Orientation = iota // scroll along Y
)

// GestureOrientation selects which input axes contribute to scrolling.
type GestureOrientation uint8

const (
	GestureVertical GestureOrientation = iota // only the Y delta of wheel and touch input
	GestureBoth                               // X and Y deltas are summed
)

// Axis identifies the positional property a motion state offsets.
type Axis uint8

const (
	AxisNone Axis = iota // no positional offset
	AxisX                // horizontal offset
	AxisY                // vertical offset
)

// Direction values reported in ScrollState.Direction.
const (
	DirectionUp   = -1
	DirectionNone = 0
	DirectionDown = 1
)

// directionEpsilon is the smallest |velocity| that still reports a direction.
const directionEpsilon = 1e-3

// Span is a one-dimensional extent along the scroll axis, in document
// coordinates. Start is the top edge; Y increases downward.
type Span struct {
	Start, Size float64
}

// End returns the bottom edge of the span.
func (s Span) End() float64 {
	return s.Start + s.Size
}

// Overlap returns the length shared by s and other, or 0 when they are
// disjoint.
func (s Span) Overlap(other Span) float64 {
	lo := math.Max(s.Start, other.Start)
	hi := math.Min(s.End(), other.End())
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// ScrollState is the per-frame snapshot published by the Controller.
// Progress is derived from Position and Limit on every call.
type ScrollState struct {
	// Position is the current scroll offset.
	Position float64
	// Limit is the maximum scrollable offset for the current document.
	Limit float64
	// Velocity is the change in Position since the previous frame.
	Velocity float64
	// Direction is the sign of Velocity: -1, 0 or 1.
	Direction int
}

// Progress returns Position / Limit clamped to [0, 1]. A zero Limit yields 0.
func (s ScrollState) Progress() float64 {
	return progressOf(s.Position, s.Limit)
}

func progressOf(position, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return clamp(position/limit, 0, 1)
}

func directionOf(velocity float64) int {
	switch {
	case velocity > directionEpsilon:
		return DirectionDown
	case velocity < -directionEpsilon:
		return DirectionUp
	default:
		return DirectionNone
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
