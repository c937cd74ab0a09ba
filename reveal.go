package glide

import (
	"github.com/tanema/gween"
)

// Style is the current value of every animated property.
type Style struct {
	Opacity float64
	X, Y    float64
	Scale   float64
	Blur    float64
}

// styleOf returns the values st renders with.
func styleOf(st MotionState) Style {
	return Style{Opacity: st.Opacity, X: st.X, Y: st.Y, Scale: st.Scale, Blur: st.Blur}
}

const revealFields = 5

// Reveal plays a MotionDescription. It starts in the hidden state; Show,
// Hide and Exit start tweens toward a state and Update advances them.
//
// There is no global animation manager; callers call Update each frame.
type Reveal struct {
	desc  MotionDescription
	style Style
	state StateName
	seen  bool

	tweens [revealFields]*gween.Tween
	fields [revealFields]*float64
	count  int
	delay  float64

	// Done is true once the current transition has finished.
	Done bool
}

// NewReveal creates a reveal resting in desc's hidden state.
func NewReveal(desc MotionDescription) *Reveal {
	return &Reveal{desc: desc, style: styleOf(desc.Hidden), state: StateHidden, Done: true}
}

// Description returns the description being played.
func (r *Reveal) Description() MotionDescription {
	return r.desc
}

// Style returns the current property values.
func (r *Reveal) Style() Style {
	return r.style
}

// State returns the state the reveal rests in or is moving toward.
func (r *Reveal) State() StateName {
	return r.state
}

// Show animates to the show state with its entry transition.
func (r *Reveal) Show() {
	r.animateTo(StateShow, r.desc.Show.Transition)
	r.seen = true
}

// Hide animates back to the hidden state, using the exit transition so the
// element can be revealed again.
func (r *Reveal) Hide() {
	r.animateTo(StateHidden, r.desc.Exit.Transition)
}

// Exit animates to the exit state with its transition.
func (r *Reveal) Exit() {
	r.animateTo(StateExit, r.desc.Exit.Transition)
}

// Reset jumps to the hidden state without animating.
func (r *Reveal) Reset() {
	r.state = StateHidden
	r.style = styleOf(r.desc.Hidden)
	r.count = 0
	r.delay = 0
	r.seen = false
	r.Done = true
}

// Track shows the reveal while elem intersects view under trigger and hides
// it otherwise. Once-triggers stay shown after the first reveal.
func (r *Reveal) Track(trigger ViewportTrigger, elem, view Span) {
	if trigger.InView(elem, view) {
		if r.state != StateShow {
			r.Show()
		}
		return
	}
	if trigger.Once && r.seen {
		return
	}
	if r.state == StateShow {
		r.Hide()
	}
}

func (r *Reveal) animateTo(n StateName, tr Transition) {
	if r.state == n {
		return
	}
	r.state = n
	target := r.desc.State(n)

	if tr.Kind == TransitionNone || tr.Duration <= 0 {
		r.style = styleOf(target)
		r.count = 0
		r.delay = 0
		r.Done = true
		return
	}

	easing := tr.Ease
	if easing.IsZero() {
		easing = EaseLinear
	}
	fn := easing.TweenFunc()
	to := styleOf(target)

	r.count = 0
	add := func(field *float64, v float64) {
		r.tweens[r.count] = gween.New(float32(*field), float32(v), float32(tr.Duration), fn)
		r.fields[r.count] = field
		r.count++
	}
	add(&r.style.Opacity, to.Opacity)
	add(&r.style.X, to.X)
	add(&r.style.Y, to.Y)
	add(&r.style.Scale, to.Scale)
	add(&r.style.Blur, to.Blur)

	r.delay = tr.Delay
	r.Done = false
}

// Update advances the active transition by dt seconds, waiting out any
// delay first.
func (r *Reveal) Update(dt float32) {
	if r.Done {
		return
	}
	if r.delay > 0 {
		r.delay -= float64(dt)
		if r.delay > 0 {
			return
		}
		dt = float32(-r.delay)
		r.delay = 0
	}

	allDone := true
	for i := 0; i < r.count; i++ {
		val, finished := r.tweens[i].Update(dt)
		*r.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	r.Done = allDone
	if r.Done {
		r.style = styleOf(r.desc.State(r.state))
	}
}

// RevealGroup plays one description across children whose entrances are
// sequenced by a stagger schedule.
type RevealGroup struct {
	children []*Reveal
}

// NewRevealGroup creates n reveals of desc with sched applied. A negative n
// creates an empty group.
func NewRevealGroup(desc MotionDescription, n int, sched Schedule) *RevealGroup {
	g := &RevealGroup{children: make([]*Reveal, max(n, 0))}
	for i := range g.children {
		g.children[i] = NewReveal(sched.Apply(desc, i, n))
	}
	return g
}

// Child returns the i-th reveal.
func (g *RevealGroup) Child(i int) *Reveal {
	return g.children[i]
}

// Len returns the number of children.
func (g *RevealGroup) Len() int {
	return len(g.children)
}

// Track applies Reveal.Track to every child with the group's bounds.
func (g *RevealGroup) Track(trigger ViewportTrigger, elem, view Span) {
	for _, c := range g.children {
		c.Track(trigger, elem, view)
	}
}

// Update advances every child.
func (g *RevealGroup) Update(dt float32) {
	for _, c := range g.children {
		c.Update(dt)
	}
}
