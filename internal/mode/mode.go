// Package mode implements the latched control-mode state machine.
package mode

import (
	"fmt"

	"github.com/ayusman/mudra/internal/gesture"
)

// Mode is the control behavior currently in effect.
type Mode int

const (
	Neutral Mode = iota
	Scroll
	Volume
	Cursor
)

func (m Mode) String() string {
	switch m {
	case Neutral:
		return "Neutral"
	case Scroll:
		return "Scroll"
	case Volume:
		return "Volume"
	case Cursor:
		return "Cursor"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is the session's mode plus the active latch. While Active is set no
// entry gesture is considered; only the current mode's exit rule applies.
type State struct {
	Mode   Mode
	Active bool
}

// Initial returns the start-of-session state.
func Initial() State {
	return State{Mode: Neutral}
}

func (s State) String() string {
	return fmt.Sprintf("%s(active=%t)", s.Mode, s.Active)
}

// Transition returns the state following s for one frame's finger state.
// Entry rules run first and only while unlatched; the exit rule of the
// resulting mode runs second.
func Transition(s State, f gesture.FingerState) State {
	return exit(enter(s, f), f)
}

func enter(s State, f gesture.FingerState) State {
	if s.Active {
		return s
	}

	switch gesture.Recognize(f) {
	case gesture.Fist:
		return State{Mode: Neutral}
	case gesture.Point, gesture.Peace:
		return State{Mode: Scroll, Active: true}
	case gesture.Pinch:
		return State{Mode: Volume, Active: true}
	case gesture.OpenPalm:
		return State{Mode: Cursor, Active: true}
	default:
		return s
	}
}

func exit(s State, f gesture.FingerState) State {
	var leave bool

	switch s.Mode {
	case Scroll:
		leave = gesture.Recognize(f) == gesture.Fist
	case Volume:
		leave = f.PinkyUp()
	case Cursor:
		leave = f.FingersDown()
	}

	if leave {
		return Initial()
	}
	return s
}

// Entered reports whether s latched a mode that prev did not hold.
func (s State) Entered(prev State) bool {
	return s.Active && s.Mode != prev.Mode
}

// Exited reports whether s released the mode latched in prev.
func (s State) Exited(prev State) bool {
	return prev.Active && !s.Active
}
