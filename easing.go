package glide

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing maps normalized time in [0, 1] to normalized progress. Curves with
// overshoot may leave [0, 1] in between but must return 0 at 0 and 1 at 1.
type Easing func(t float64) float64

// PowerOut returns the ease-out curve 1 - (1-t)^exp.
func PowerOut(exp float64) Easing {
	return func(t float64) float64 {
		return 1 - math.Pow(1-clamp(t, 0, 1), exp)
	}
}

// TweenFunc adapts e to gween's easing signature.
func (e Easing) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(e(float64(t/d)))
	}
}

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2)
// and (1,1). X1 and X2 must lie in [0, 1]; Y values may overshoot.
type CubicBezier [4]float64

// Named curves shared by the motion presets.
var (
	EaseLinear    = CubicBezier{0, 0, 1, 1}
	EaseStandard  = CubicBezier{0.22, 1, 0.36, 1}
	EaseEmphasize = CubicBezier{0.16, 1, 0.3, 1}
	EaseEntrance  = CubicBezier{0.34, 1.56, 0.64, 1}
)

// Motion durations in seconds.
const (
	DurationXS = 0.28
	DurationSM = 0.55
	DurationMD = 0.85
	DurationLG = 1.0
	DurationXL = 1.1
)

const (
	bezierNewtonIterations = 8
	bezierNewtonMinSlope   = 1e-3
	bezierPrecision        = 1e-7
	bezierBisectIterations = 40
)

// IsZero reports whether the curve is the zero value, which preset
// overrides treat as unset.
func (b CubicBezier) IsZero() bool {
	return b == CubicBezier{}
}

// At evaluates the curve's progress for normalized time t.
func (b CubicBezier) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if b[0] == b[1] && b[2] == b[3] {
		return t
	}
	return bezierCoord(b.solveX(t), b[1], b[3])
}

// Easing returns the curve as an Easing function.
func (b CubicBezier) Easing() Easing {
	return b.At
}

// TweenFunc adapts the curve to gween's easing signature.
func (b CubicBezier) TweenFunc() ease.TweenFunc {
	return b.Easing().TweenFunc()
}

// solveX finds the curve parameter whose x coordinate equals x.
func (b CubicBezier) solveX(x float64) float64 {
	u := x
	for i := 0; i < bezierNewtonIterations; i++ {
		dx := bezierCoord(u, b[0], b[2]) - x
		if math.Abs(dx) < bezierPrecision {
			return u
		}
		slope := bezierSlope(u, b[0], b[2])
		if math.Abs(slope) < bezierNewtonMinSlope {
			break
		}
		u -= dx / slope
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < bezierBisectIterations; i++ {
		v := bezierCoord(u, b[0], b[2])
		if math.Abs(v-x) < bezierPrecision {
			return u
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// bezierCoord evaluates one coordinate of the curve with endpoints 0 and 1.
func bezierCoord(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}
