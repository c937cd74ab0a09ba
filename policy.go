package glide

// engineStatus describes the engine a Controller currently owns.
type engineStatus struct {
	Active  bool
	Profile Profile
}

// transition is the action the Controller takes after a signal change.
type transition struct {
	Teardown  bool
	Construct bool
	Profile   Profile
}

// resolveTransition is the single policy for reacting to the reduced-motion
// and coarse-pointer signals:
//
//	reduced            -> tear down any engine, build nothing
//	no engine          -> build one for the pointer's profile
//	profile unchanged  -> nothing
//	profile changed    -> tear down, then build the new profile
func resolveTransition(cur engineStatus, reduced, coarse bool) transition {
	if reduced {
		return transition{Teardown: cur.Active}
	}
	want := profileFor(coarse)
	if !cur.Active {
		return transition{Construct: true, Profile: want}
	}
	if cur.Profile == want {
		return transition{}
	}
	return transition{Teardown: true, Construct: true, Profile: want}
}
