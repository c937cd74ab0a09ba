package glide

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputKind identifies a raw scroll input.
type InputKind uint8

const (
	InputWheel      InputKind = iota // mouse wheel or trackpad delta
	InputTouchStart                  // a finger touched down
	InputTouchMove                   // a finger moved; delta is in scroll direction
	InputTouchEnd                    // the last finger lifted
)

// String returns the input kind name used in debug output and test scripts.
func (k InputKind) String() string {
	switch k {
	case InputWheel:
		return "wheel"
	case InputTouchStart:
		return "touchstart"
	case InputTouchMove:
		return "touchmove"
	case InputTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// InputEvent is a raw scroll delta. Positive DeltaY scrolls toward the end
// of the document.
type InputEvent struct {
	Kind   InputKind
	DeltaX float64
	DeltaY float64
	// Prevented marks input consumed by an inner scroller, such as a
	// horizontal product track. The engine ignores it.
	Prevented bool
}

// delta returns the scroll delta of e for the given gesture orientation.
func (e InputEvent) delta(g GestureOrientation) float64 {
	if g == GestureBoth {
		return e.DeltaX + e.DeltaY
	}
	return e.DeltaY
}

// wheelLineHeight converts ebiten wheel ticks to document units.
const wheelLineHeight = 40

// ebitenInput polls Ebitengine for wheel and touch input and converts it to
// InputEvents. Touch deltas follow the primary (first) finger only.
type ebitenInput struct {
	touchIDs   []ebiten.TouchID
	primary    ebiten.TouchID
	touching   bool
	lastX      float64
	lastY      float64
	events     []InputEvent
	sawTouch   bool
	sawPointer bool
	cursorX    int
	cursorY    int
}

// poll reads this tick's input and returns the produced events. The slice
// is reused by the next call.
func (in *ebitenInput) poll() []InputEvent {
	in.events = in.events[:0]
	in.sawTouch = false
	in.sawPointer = false

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		// Ebitengine reports wheel-up as positive Y; scrolling moves the
		// other way.
		in.events = append(in.events, InputEvent{
			Kind:   InputWheel,
			DeltaX: -wx * wheelLineHeight,
			DeltaY: -wy * wheelLineHeight,
		})
		in.sawPointer = true
	}
	if cx, cy := ebiten.CursorPosition(); cx != in.cursorX || cy != in.cursorY {
		in.cursorX, in.cursorY = cx, cy
		in.sawPointer = true
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.pollTouch()
	return in.events
}

func (in *ebitenInput) pollTouch() {
	if len(in.touchIDs) > 0 {
		in.sawTouch = true
	}

	if in.touching && !in.hasTouch(in.primary) {
		in.touching = false
		in.events = append(in.events, InputEvent{Kind: InputTouchEnd})
	}

	if !in.touching {
		if len(in.touchIDs) == 0 {
			return
		}
		in.primary = in.touchIDs[0]
		in.touching = true
		tx, ty := ebiten.TouchPosition(in.primary)
		in.lastX, in.lastY = float64(tx), float64(ty)
		in.events = append(in.events, InputEvent{Kind: InputTouchStart})
		return
	}

	tx, ty := ebiten.TouchPosition(in.primary)
	x, y := float64(tx), float64(ty)
	if x == in.lastX && y == in.lastY {
		return
	}
	// Dragging the finger up scrolls the document down.
	in.events = append(in.events, InputEvent{
		Kind:   InputTouchMove,
		DeltaX: in.lastX - x,
		DeltaY: in.lastY - y,
	})
	in.lastX, in.lastY = x, y
}

func (in *ebitenInput) hasTouch(id ebiten.TouchID) bool {
	for _, t := range in.touchIDs {
		if t == id {
			return true
		}
	}
	return false
}
