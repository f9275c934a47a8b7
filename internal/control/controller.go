package control

import (
	"fmt"
	"image"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/mode"
)

// Report describes what one frame did. It feeds the overlay, the journal
// and the logs.
type Report struct {
	HandPresent bool
	Fingers     gesture.FingerState
	Gesture     gesture.Gesture
	Prev        mode.State
	State       mode.State

	// Hand is the classified hand in frame pixels, nil when none was usable.
	Hand detector.Hand
	// Scroll is the wheel amount sent this frame, 0 if none.
	Scroll int
	// Volume is set when a level was applied this frame.
	Volume *VolumeReading
	// Cursor is set when the pointer was moved this frame.
	Cursor  *image.Point
	Clicked bool
}

// Changed reports whether the mode changed this frame.
func (r Report) Changed() bool {
	return r.Prev != r.State
}

// Controller owns the session's mode state and applies the active mode's
// mapping to the output devices once per frame. It is not safe for
// concurrent use.
type Controller struct {
	state   mode.State
	volume  VolumeControl
	pointer Pointer
	levels  *VolumeMapper
	cursor  *CursorMapper
}

// NewController queries the volume range once and prepares the mappers.
func NewController(volume VolumeControl, pointer Pointer, cursor *CursorMapper) (*Controller, error) {
	lo, hi, err := volume.VolumeRange()
	if err != nil {
		return nil, fmt.Errorf("query volume range: %w", err)
	}

	return &Controller{
		state:   mode.Initial(),
		volume:  volume,
		pointer: pointer,
		levels:  NewVolumeMapper(lo, hi),
		cursor:  cursor,
	}, nil
}

// State returns the current mode state.
func (c *Controller) State() mode.State {
	return c.state
}

// VolumeLevels returns the volume level range applied by the controller.
func (c *Controller) VolumeLevels() Range {
	return c.levels.Levels()
}

// CursorArea returns the frame rectangle mapped onto the screen.
func (c *Controller) CursorArea() image.Rectangle {
	return c.cursor.Area()
}

// Process runs one frame. An incomplete or missing hand leaves the state
// untouched and produces no output. Device errors are returned as-is after
// the state has been advanced.
func (c *Controller) Process(hand detector.Hand) (Report, error) {
	r := Report{Prev: c.state, State: c.state}

	fingers, ok := gesture.Classify(hand)
	if !ok {
		return r, nil
	}

	r.HandPresent = true
	r.Hand = hand
	r.Fingers = fingers
	r.Gesture = gesture.Recognize(fingers)

	c.state = mode.Transition(c.state, fingers)
	r.State = c.state

	switch c.state.Mode {
	case mode.Scroll:
		r.Scroll = ScrollAmount(r.Gesture)
		if r.Scroll != 0 {
			if err := c.pointer.Scroll(r.Scroll); err != nil {
				return r, fmt.Errorf("scroll %d: %w", r.Scroll, err)
			}
		}

	case mode.Volume:
		reading := c.levels.Map(hand)
		r.Volume = &reading
		if err := c.volume.SetVolume(reading.Level); err != nil {
			return r, fmt.Errorf("set volume %.2f: %w", reading.Level, err)
		}

	case mode.Cursor:
		target := c.cursor.Map(hand)
		r.Cursor = &target
		if err := c.pointer.MoveTo(target.X, target.Y); err != nil {
			return r, fmt.Errorf("move pointer to %v: %w", target, err)
		}
		if !fingers.Extended(gesture.Thumb) {
			r.Clicked = true
			if err := c.pointer.Click(); err != nil {
				return r, fmt.Errorf("click: %w", err)
			}
		}
	}

	return r, nil
}
