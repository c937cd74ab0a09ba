package glide

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// ElementProgress returns how far elem has travelled through view, in
// [0, 1]. Progress is 0 while the element's top is at or below the
// viewport line start (a fraction of the viewport height, 0 = top) and 1
// once the element's bottom has reached the line end.
//
// With start 0.85 and end 0.35, a card starts animating as its top clears
// the bottom 15% of the screen and finishes when its bottom passes 35%.
func ElementProgress(elem, view Span, start, end float64) float64 {
	startScroll := elem.Start - start*view.Size
	endScroll := elem.End() - end*view.Size
	span := endScroll - startScroll
	if span <= 0 {
		if view.Start >= endScroll {
			return 1
		}
		return 0
	}
	return clamp((view.Start-startScroll)/span, 0, 1)
}

// MapRange linearly maps v from [in0, in1] to [out0, out1], clamping to the
// output range.
func MapRange(v, in0, in1, out0, out1 float64) float64 {
	if in1 == in0 {
		if v >= in1 {
			return out1
		}
		return out0
	}
	t := clamp((v-in0)/(in1-in0), 0, 1)
	return out0 + (out1-out0)*t
}

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Spring smooths a value toward a moving target, as used for
// scroll-linked transforms that should trail the scroll position.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	init   bool
}

// NewSpring creates a spring stepped at fps frames per second.
func NewSpring(cfg SpringConfig, fps int) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if fps <= 0 {
		fps = 60
	}
	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := 0.0
	if cfg.Stiffness > 0 {
		zeta = cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))
	}
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta)}
}

// Update advances one step toward target and returns the new value. The
// first call jumps straight to target.
func (s *Spring) Update(target float64) float64 {
	if !s.init {
		s.pos = target
		s.init = true
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Value returns the current value.
func (s *Spring) Value() float64 {
	return s.pos
}

// Jump sets the value and clears velocity.
func (s *Spring) Jump(v float64) {
	s.pos = v
	s.vel = 0
	s.init = true
}
