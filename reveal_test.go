package glide

import "testing"

func TestRevealStartsHidden(t *testing.T) {
	r := NewReveal(Describe(PresetFadeUp, PresetOptions{}))
	if s := r.Style(); s.Opacity != 0 || s.Y != 32 || s.Scale != 1 {
		t.Errorf("initial style = %+v", s)
	}
	if r.State() != StateHidden || !r.Done {
		t.Errorf("state = %s done = %t", r.State(), r.Done)
	}
	r.Update(1) // nothing to advance
	if r.Style().Y != 32 {
		t.Errorf("idle Update moved the style: %+v", r.Style())
	}
}

func TestRevealShow(t *testing.T) {
	desc := Describe(PresetFadeUp, PresetOptions{})
	r := NewReveal(desc)
	r.Show()
	if r.State() != StateShow || r.Done {
		t.Fatalf("state = %s done = %t", r.State(), r.Done)
	}

	r.Update(0.4)
	if s := r.Style(); s.Opacity <= 0 || s.Opacity >= 1 || s.Y <= 0 || s.Y >= 32 {
		t.Errorf("mid-transition style = %+v", s)
	}
	r.Update(0.5)
	if !r.Done {
		t.Fatal("transition not done after its duration")
	}
	if r.Style() != styleOf(desc.Show) {
		t.Errorf("final style = %+v, want %+v", r.Style(), styleOf(desc.Show))
	}

	r.Show() // already showing
	if !r.Done {
		t.Error("Show while shown restarted the transition")
	}
}

func TestRevealHideAndExit(t *testing.T) {
	desc := Describe(PresetFadeUp, PresetOptions{})
	r := NewReveal(desc)
	r.Show()
	r.Update(1)

	r.Hide()
	r.Update(0.6)
	if !r.Done || r.Style() != styleOf(desc.Hidden) {
		t.Errorf("after Hide: done = %t style = %+v", r.Done, r.Style())
	}

	r.Show()
	r.Update(1)
	r.Exit()
	r.Update(0.6)
	if r.State() != StateExit || !approxEqual(r.Style().Y, 32*0.6, epsilon) {
		t.Errorf("after Exit: state = %s style = %+v", r.State(), r.Style())
	}

	r.Reset()
	if r.State() != StateHidden || r.Style() != styleOf(desc.Hidden) {
		t.Errorf("after Reset: state = %s style = %+v", r.State(), r.Style())
	}
}

func TestRevealDelay(t *testing.T) {
	desc := Describe(PresetFade, PresetOptions{Transition: Transition{Delay: 0.3}})
	r := NewReveal(desc)
	r.Show()
	r.Update(0.2)
	if r.Style().Opacity != 0 {
		t.Errorf("opacity = %f during delay, want 0", r.Style().Opacity)
	}
	r.Update(0.2)
	if r.Style().Opacity <= 0 {
		t.Error("transition did not start after the delay")
	}
}

func TestRevealReducedMotionIsInstant(t *testing.T) {
	r := NewReveal(DescribeReducedMotion())
	if r.Style().Opacity != 1 {
		t.Fatalf("reduced hidden opacity = %f, want 1", r.Style().Opacity)
	}
	r.Show()
	if !r.Done || r.Style() != styleOf(identityState()) {
		t.Errorf("reduced Show: done = %t style = %+v", r.Done, r.Style())
	}
}

func TestRevealTrack(t *testing.T) {
	view := Span{Start: 0, Size: 500}
	in := Span{Start: 100, Size: 100}
	out := Span{Start: 900, Size: 100}

	r := NewReveal(Describe(PresetFade, PresetOptions{}))
	r.Track(ViewportTrigger{}, in, view)
	if r.State() != StateShow {
		t.Fatalf("state = %s, want show", r.State())
	}
	r.Track(ViewportTrigger{}, out, view)
	if r.State() != StateHidden {
		t.Errorf("state = %s after leaving, want hidden", r.State())
	}

	once := NewReveal(Describe(PresetFade, PresetOptions{}))
	once.Track(ViewportTrigger{Once: true}, in, view)
	once.Track(ViewportTrigger{Once: true}, out, view)
	if once.State() != StateShow {
		t.Errorf("once reveal state = %s after leaving, want show", once.State())
	}
}

func TestRevealGroupStagger(t *testing.T) {
	desc := Describe(PresetFadeUp, PresetOptions{})
	g := NewRevealGroup(desc, 3, Sequence(StaggerSpec{Delay: 0.1, Stagger: 0.12}))
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	g.Track(ViewportTrigger{}, Span{Start: 0, Size: 100}, Span{Start: 0, Size: 500})

	g.Update(0.2)
	if g.Child(0).Style().Opacity <= 0 {
		t.Error("first child has not started")
	}
	if g.Child(2).Style().Opacity != 0 {
		t.Error("last child started before its delay")
	}

	g.Update(1.5)
	for i := 0; i < g.Len(); i++ {
		if c := g.Child(i); !c.Done || c.Style() != styleOf(desc.Show) {
			t.Errorf("child %d: done = %t style = %+v", i, c.Done, c.Style())
		}
	}
}
