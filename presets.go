package glide

import "fmt"

// PresetName names a motion preset.
type PresetName string

const (
	PresetFade      PresetName = "fade"
	PresetFadeUp    PresetName = "fadeUp"
	PresetFadeDown  PresetName = "fadeDown"
	PresetFadeLeft  PresetName = "fadeLeft"
	PresetFadeRight PresetName = "fadeRight"
	PresetScale     PresetName = "scale"
	PresetBlur      PresetName = "blur"
)

// Prop is a bitmask of the visual properties a motion state drives.
type Prop uint8

const (
	PropOpacity Prop = 1 << iota
	PropX
	PropY
	PropScale
	PropBlur
)

// Has reports whether p includes q.
func (p Prop) Has(q Prop) bool {
	return p&q != 0
}

// TransitionKind selects how a state is animated into.
type TransitionKind uint8

const (
	TransitionNone  TransitionKind = iota // no transition; the zero value
	TransitionTween                       // fixed-duration eased interpolation
)

// Transition describes how a state is entered. As an override, zero fields
// are unset and keep the preset's value.
type Transition struct {
	Kind     TransitionKind
	Duration float64 // seconds
	Ease     CubicBezier
	Delay    float64 // seconds
}

// merge returns t with every set field of o applied on top.
func (t Transition) merge(o Transition) Transition {
	if o.Kind != TransitionNone {
		t.Kind = o.Kind
	}
	if o.Duration > 0 {
		t.Duration = o.Duration
	}
	if !o.Ease.IsZero() {
		t.Ease = o.Ease
	}
	if o.Delay != 0 {
		t.Delay = o.Delay
	}
	return t
}

// MotionState is one keyframe of a MotionDescription. Properties outside
// Props hold their identity values: opacity 1, offsets 0, scale 1, blur 0.
// A state offsets along at most one axis.
type MotionState struct {
	Opacity float64
	X, Y    float64
	Scale   float64
	Blur    float64 // radius in logical pixels
	Props   Prop

	Transition Transition
}

// StateName identifies one of the three keyframes.
type StateName uint8

const (
	StateHidden StateName = iota // before entering
	StateShow                    // fully visible
	StateExit                    // after leaving
)

// String returns the state's name.
func (n StateName) String() string {
	switch n {
	case StateShow:
		return "show"
	case StateExit:
		return "exit"
	default:
		return "hidden"
	}
}

// MotionDescription is a three-state machine: elements start Hidden,
// transition to Show when revealed and to Exit when leaving.
type MotionDescription struct {
	Hidden MotionState
	Show   MotionState
	Exit   MotionState
}

// State returns the keyframe named n.
func (d MotionDescription) State(n StateName) MotionState {
	switch n {
	case StateShow:
		return d.Show
	case StateExit:
		return d.Exit
	default:
		return d.Hidden
	}
}

// PresetOptions parameterize a preset. Zero fields take the preset default.
type PresetOptions struct {
	// Distance is the hidden offset of directional presets.
	Distance float64
	// ExitDistance is the exit offset; it defaults to 60% of Distance.
	ExitDistance float64
	// Opacity of the hidden and exit states.
	Opacity float64
	// Scale of the hidden and exit states of the scale preset.
	Scale float64
	// Blur radius of the hidden and exit states of the blur preset.
	Blur float64
	// Transition is merged over both the show and exit transitions.
	Transition Transition
}

// PresetFunc builds a description from options.
type PresetFunc func(PresetOptions) MotionDescription

const (
	defaultDistance    = 32
	exitDistanceRatio  = 0.6
	defaultHiddenScale = 0.92
	defaultHiddenBlur  = 12
	entryDuration      = DurationMD
	exitDuration       = DurationSM
)

var presets = map[PresetName]PresetFunc{
	PresetFade:      fade,
	PresetFadeUp:    directional(AxisY, defaultDistance),
	PresetFadeDown:  directional(AxisY, -defaultDistance),
	PresetFadeLeft:  directional(AxisX, defaultDistance),
	PresetFadeRight: directional(AxisX, -defaultDistance),
	PresetScale:     scale,
	PresetBlur:      blur,
}

// PresetNames lists every recognized preset.
func PresetNames() []PresetName {
	return []PresetName{
		PresetFade, PresetFadeUp, PresetFadeDown, PresetFadeLeft,
		PresetFadeRight, PresetScale, PresetBlur,
	}
}

// LookupPreset returns the preset named name.
func LookupPreset(name PresetName) (PresetFunc, bool) {
	fn, ok := presets[name]
	return fn, ok
}

// Describe builds the named preset. An unknown name is a programming error
// and panics.
func Describe(name PresetName, opts PresetOptions) MotionDescription {
	return mustPreset(name)(opts)
}

func mustPreset(name PresetName) PresetFunc {
	fn, ok := presets[name]
	if !ok {
		panic(fmt.Sprintf("glide: unknown motion preset %q", name))
	}
	return fn
}

// identityState is fully visible and untransformed.
func identityState() MotionState {
	return MotionState{Opacity: 1, Scale: 1, Props: PropOpacity}
}

var reducedMotion = MotionDescription{
	Hidden: identityState(),
	Show:   identityState(),
	Exit:   identityState(),
}

// DescribeReducedMotion returns the identity description used when reduced
// motion is requested: every state is fully visible and untransformed, so
// entering and leaving change nothing.
func DescribeReducedMotion() MotionDescription {
	return reducedMotion
}

// Resolve is the single entry point sections use: it builds the named
// preset, or the identity description when reduced is set. Unknown names
// panic in both cases.
func Resolve(name PresetName, opts PresetOptions, reduced bool) MotionDescription {
	fn := mustPreset(name)
	if reduced {
		return DescribeReducedMotion()
	}
	return fn(opts)
}

func entryTransition(ease CubicBezier, o Transition) Transition {
	return Transition{Kind: TransitionTween, Duration: entryDuration, Ease: ease}.merge(o)
}

func exitTransition(o Transition) Transition {
	return Transition{Kind: TransitionTween, Duration: exitDuration, Ease: EaseStandard}.merge(o)
}

func directional(axis Axis, defDistance float64) PresetFunc {
	return func(opts PresetOptions) MotionDescription {
		distance := opts.Distance
		if distance == 0 {
			distance = defDistance
		}
		exitDistance := opts.ExitDistance
		if exitDistance == 0 {
			exitDistance = distance * exitDistanceRatio
		}

		prop := PropY
		if axis == AxisX {
			prop = PropX
		}
		offset := func(st MotionState, v float64) MotionState {
			if axis == AxisX {
				st.X = v
			} else {
				st.Y = v
			}
			return st
		}

		hidden := offset(MotionState{Opacity: opts.Opacity, Scale: 1, Props: PropOpacity | prop}, distance)
		show := MotionState{Opacity: 1, Scale: 1, Props: PropOpacity | prop,
			Transition: entryTransition(EaseEmphasize, opts.Transition)}
		exit := offset(MotionState{Opacity: opts.Opacity, Scale: 1, Props: PropOpacity | prop,
			Transition: exitTransition(opts.Transition)}, exitDistance)

		return MotionDescription{Hidden: hidden, Show: show, Exit: exit}
	}
}

func fade(opts PresetOptions) MotionDescription {
	return MotionDescription{
		Hidden: MotionState{Opacity: opts.Opacity, Scale: 1, Props: PropOpacity},
		Show: MotionState{Opacity: 1, Scale: 1, Props: PropOpacity,
			Transition: entryTransition(EaseStandard, opts.Transition)},
		Exit: MotionState{Opacity: opts.Opacity, Scale: 1, Props: PropOpacity,
			Transition: exitTransition(opts.Transition)},
	}
}

func scale(opts PresetOptions) MotionDescription {
	s := opts.Scale
	if s == 0 {
		s = defaultHiddenScale
	}
	return MotionDescription{
		Hidden: MotionState{Opacity: opts.Opacity, Scale: s, Props: PropOpacity | PropScale},
		Show: MotionState{Opacity: 1, Scale: 1, Props: PropOpacity | PropScale,
			Transition: entryTransition(EaseEntrance, opts.Transition)},
		Exit: MotionState{Opacity: opts.Opacity, Scale: s, Props: PropOpacity | PropScale,
			Transition: exitTransition(opts.Transition)},
	}
}

func blur(opts PresetOptions) MotionDescription {
	b := opts.Blur
	if b == 0 {
		b = defaultHiddenBlur
	}
	return MotionDescription{
		Hidden: MotionState{Opacity: opts.Opacity, Scale: 1, Blur: b, Props: PropOpacity | PropBlur},
		Show: MotionState{Opacity: 1, Scale: 1, Props: PropOpacity | PropBlur,
			Transition: entryTransition(EaseEmphasize, opts.Transition)},
		Exit: MotionState{Opacity: opts.Opacity, Scale: 1, Blur: b, Props: PropOpacity | PropBlur,
			Transition: exitTransition(opts.Transition)},
	}
}
