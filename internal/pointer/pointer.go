// Package pointer injects mouse input through robotgo.
package pointer

import (
	"github.com/go-vgo/robotgo"
)

// WheelDelta is the wheel amount of one notch.
const WheelDelta = 120

// Robot drives the system pointer.
type Robot struct {
	width  int
	height int
}

// New creates a Robot for the primary display.
func New() *Robot {
	w, h := robotgo.GetScreenSize()
	return &Robot{width: w, height: h}
}

// ScreenSize returns the primary display size in pixels.
func (r *Robot) ScreenSize() (int, int) {
	return r.width, r.height
}

// MoveTo places the cursor at absolute screen coordinates.
func (r *Robot) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click issues a left click at the current position.
func (r *Robot) Click() error {
	robotgo.Click("left")
	return nil
}

// Scroll turns the wheel by amount wheel units, positive is up.
func (r *Robot) Scroll(amount int) error {
	n, dir := notches(amount)
	if n == 0 {
		return nil
	}
	robotgo.ScrollDir(n, dir)
	return nil
}

// notches converts a wheel amount into whole notches and a direction.
// Any non-zero amount turns at least one notch.
func notches(amount int) (int, string) {
	dir := "up"
	if amount < 0 {
		dir = "down"
		amount = -amount
	}
	if amount == 0 {
		return 0, dir
	}
	return max(amount/WheelDelta, 1), dir
}
