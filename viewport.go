package glide

// ViewportTrigger decides when an element counts as in view.
type ViewportTrigger struct {
	// Amount is the fraction of the element that must be visible. Zero
	// means any overlap.
	Amount float64
	// Margin grows (positive) or shrinks (negative) the viewport on both
	// edges, as a fraction of its height.
	Margin float64
	// Once keeps an element revealed after it first enters.
	Once bool
}

// InView reports whether elem is visible in view under t.
func (t ViewportTrigger) InView(elem, view Span) bool {
	m := view.Size * t.Margin
	root := Span{Start: view.Start - m, Size: view.Size + 2*m}
	if root.Size <= 0 {
		return false
	}
	if elem.Size <= 0 {
		return elem.Start >= root.Start && elem.Start <= root.End()
	}
	overlap := elem.Overlap(root)
	if t.Amount <= 0 {
		return overlap > 0
	}
	return overlap/elem.Size >= t.Amount
}
