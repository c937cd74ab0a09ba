package glide

// Profile names one of the canonical engine tunings.
type Profile uint8

const (
	ProfileDefault Profile = iota // fine pointer (mouse, trackpad)
	ProfileTouch                  // coarse pointer, touch-primary devices
)

// String returns the profile name used in debug output.
func (p Profile) String() string {
	switch p {
	case ProfileTouch:
		return "touch"
	default:
		return "default"
	}
}

// profileFor returns the profile selected by the coarse-pointer signal.
func profileFor(coarse bool) Profile {
	if coarse {
		return ProfileTouch
	}
	return ProfileDefault
}

// EngineConfig tunes a smooth-scroll engine. A config is fixed for the
// lifetime of the engine built from it; switching profiles builds a new
// engine.
type EngineConfig struct {
	// SmoothWheel damps wheel input. When false, wheel deltas jump instantly.
	SmoothWheel bool
	// SyncTouch adds inertia when a flick is released. Touch moves follow
	// the finger either way; when false, the page stops where it is lifted.
	SyncTouch bool

	// WheelMultiplier scales raw wheel deltas.
	WheelMultiplier float64
	// TouchMultiplier scales raw touch deltas.
	TouchMultiplier float64
	// TouchInertiaMultiplier scales the release velocity of a flick into
	// extra travel.
	TouchInertiaMultiplier float64

	// Duration in seconds of programmatic ScrollTo animations.
	Duration float64
	// Easing of programmatic ScrollTo animations.
	Easing Easing

	// Lerp is the fraction of the remaining distance covered per 60 Hz frame.
	Lerp float64
	// SyncTouchLerp replaces Lerp while a flick settles.
	SyncTouchLerp float64

	Orientation        Orientation
	GestureOrientation GestureOrientation
}

// DefaultEngineConfig returns the tuning used for fine pointers.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SmoothWheel:            true,
		SyncTouch:              true,
		WheelMultiplier:        1,
		TouchMultiplier:        1,
		TouchInertiaMultiplier: 25,
		Duration:               0.75,
		Easing:                 PowerOut(2.4),
		Lerp:                   0.08,
		SyncTouchLerp:          0.075,
		Orientation:            OrientationVertical,
		GestureOrientation:     GestureVertical,
	}
}

// TouchEngineConfig returns the tuning used for coarse pointers: lower
// multipliers and a faster settle.
func TouchEngineConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.TouchMultiplier = 0.9
	cfg.TouchInertiaMultiplier = 12
	cfg.Duration = 0.55
	cfg.Easing = PowerOut(1.9)
	cfg.Lerp = 0.14
	cfg.SyncTouchLerp = 0.12
	return cfg
}

// ConfigForProfile returns the canonical config for p.
func ConfigForProfile(p Profile) EngineConfig {
	if p == ProfileTouch {
		return TouchEngineConfig()
	}
	return DefaultEngineConfig()
}

// withDefaults fills fields a caller left at zero.
func (c EngineConfig) withDefaults() EngineConfig {
	def := DefaultEngineConfig()
	if c.WheelMultiplier == 0 {
		c.WheelMultiplier = def.WheelMultiplier
	}
	if c.TouchMultiplier == 0 {
		c.TouchMultiplier = def.TouchMultiplier
	}
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	if c.Easing == nil {
		c.Easing = def.Easing
	}
	if c.Lerp <= 0 || c.Lerp > 1 {
		c.Lerp = def.Lerp
	}
	if c.SyncTouchLerp <= 0 || c.SyncTouchLerp > 1 {
		c.SyncTouchLerp = def.SyncTouchLerp
	}
	return c
}
