// Package gesture turns hand keypoints into finger states and named gestures.
package gesture

import (
	"strings"

	"github.com/ayusman/mudra/internal/detector"
)

// Digit indexes a FingerState.
type Digit int

const (
	Thumb Digit = iota
	Index
	Middle
	Ring
	Pinky
	NumDigits
)

// tipIDs holds the landmark id of each digit's tip, in Digit order.
var tipIDs = [NumDigits]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// FingerState records which digits are extended, in thumb..pinky order.
type FingerState [NumDigits]bool

// Classify computes the finger state of a hand.
//
// The thumb counts as extended when its tip lies right of the IP joint in
// image space. This only holds for a right hand facing an unmirrored camera
// (or a left hand in a mirrored feed); rotation and handedness are not
// compensated for. The other digits are extended when the tip lies above
// the PIP joint, two landmarks down the finger.
//
// ok is false unless the hand carries exactly NumLandmarks keypoints.
func Classify(hand detector.Hand) (fs FingerState, ok bool) {
	if !hand.Complete() {
		return FingerState{}, false
	}

	thumbTip := hand[tipIDs[Thumb]]
	thumbIP := hand[tipIDs[Thumb]-1]
	fs[Thumb] = thumbTip.X > thumbIP.X

	for d := Index; d < NumDigits; d++ {
		tip := hand[tipIDs[d]]
		pip := hand[tipIDs[d]-2]
		fs[d] = tip.Y < pip.Y
	}

	return fs, true
}

// Of builds a FingerState from 0/1 flags, e.g. Of(0, 1, 1, 0, 0).
func Of(thumb, index, middle, ring, pinky int) FingerState {
	return FingerState{thumb != 0, index != 0, middle != 0, ring != 0, pinky != 0}
}

// Extended reports whether the given digit is extended.
func (f FingerState) Extended(d Digit) bool {
	return f[d]
}

// PinkyUp reports whether the pinky is extended.
func (f FingerState) PinkyUp() bool {
	return f[Pinky]
}

// FingersDown reports whether index through pinky are all retracted.
// The thumb is not considered.
func (f FingerState) FingersDown() bool {
	return !f[Index] && !f[Middle] && !f[Ring] && !f[Pinky]
}

// String renders the state as a bit vector, e.g. "[0 1 1 0 0]".
func (f FingerState) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, up := range f {
		if i > 0 {
			b.WriteByte(' ')
		}
		if up {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}
