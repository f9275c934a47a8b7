package control

import "github.com/ayusman/mudra/internal/gesture"

// ScrollStep is the wheel amount sent per frame while a scroll gesture is held.
const ScrollStep = 300

// ScrollAmount returns the wheel amount for one frame in scroll mode:
// +ScrollStep for Point, -ScrollStep for Peace and 0 otherwise.
func ScrollAmount(g gesture.Gesture) int {
	switch g {
	case gesture.Point:
		return ScrollStep
	case gesture.Peace:
		return -ScrollStep
	default:
		return 0
	}
}
