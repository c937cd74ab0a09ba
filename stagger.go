package glide

// StaggerDirection orders a group's entrances.
type StaggerDirection int

const (
	StaggerForward StaggerDirection = 1  // first child starts first
	StaggerReverse StaggerDirection = -1 // last child starts first
)

// defaultStagger is the per-child delay of DefaultStagger.
const defaultStagger = 0.08

// StaggerSpec sequences the entrances of a group of children. It modifies
// the children's transitions and has no state of its own.
type StaggerSpec struct {
	// Delay before the first child starts, in seconds.
	Delay float64
	// Stagger is the added delay per child, in seconds.
	Stagger float64
	// Direction; the zero value is treated as StaggerForward.
	Direction StaggerDirection
}

// DefaultStagger returns a spec with no initial delay and 0.08 s between
// children.
func DefaultStagger() StaggerSpec {
	return StaggerSpec{Stagger: defaultStagger, Direction: StaggerForward}
}

// Schedule is the delay plan produced by Sequence.
type Schedule struct {
	spec StaggerSpec
}

// Sequence returns the schedule for spec.
func Sequence(spec StaggerSpec) Schedule {
	if spec.Direction == 0 {
		spec.Direction = StaggerForward
	}
	return Schedule{spec: spec}
}

// Spec returns the schedule's spec.
func (s Schedule) Spec() StaggerSpec {
	return s.spec
}

// Offset returns the start delay of child i out of n.
func (s Schedule) Offset(i, n int) float64 {
	if n <= 0 || i < 0 || i >= n {
		return s.spec.Delay
	}
	rank := i
	if s.spec.Direction == StaggerReverse {
		rank = n - 1 - i
	}
	return s.spec.Delay + float64(rank)*s.spec.Stagger
}

// Offsets returns the start delays of n children in child order. A
// negative n yields none.
func (s Schedule) Offsets(n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = s.Offset(i, n)
	}
	return out
}

// Apply returns desc with child i's scheduled delay added to its show
// transition. Exits are not staggered, nor are descriptions without a show
// transition such as the reduced-motion identity.
func (s Schedule) Apply(desc MotionDescription, i, n int) MotionDescription {
	if desc.Show.Transition.Kind == TransitionNone {
		return desc
	}
	desc.Show.Transition.Delay += s.Offset(i, n)
	return desc
}
