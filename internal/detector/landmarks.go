// Package detector provides hand detection interfaces and types for gesture control.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Connections lists the landmark pairs joined by the hand skeleton.
var Connections = [][2]int{
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	{IndexMCP, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	{MiddleMCP, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	{RingMCP, PinkyMCP}, {Wrist, PinkyMCP}, {PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
}

// Point3D is a normalized landmark position as reported by the detector.
// X and Y are in the 0-1 range relative to the frame size.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand in normalized coordinates.
// Points normally holds NumLandmarks entries; a detector may report fewer.
type HandLandmarks struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"` // "Left" or "Right"
	Score      float64   `json:"score"`
}

// Keypoint is a landmark projected into frame pixels.
type Keypoint struct {
	ID int
	X  int
	Y  int
}

// DistanceTo returns the Euclidean pixel distance between two keypoints.
func (k Keypoint) DistanceTo(o Keypoint) float64 {
	return math.Hypot(float64(o.X-k.X), float64(o.Y-k.Y))
}

// Hand is an ordered list of keypoints indexed by landmark id.
type Hand []Keypoint

// Complete reports whether all NumLandmarks keypoints are present.
func (h Hand) Complete() bool {
	return len(h) == NumLandmarks
}

// ToHand projects the normalized landmarks into a width x height frame.
// Coordinates are truncated toward zero.
func (h *HandLandmarks) ToHand(width, height int) Hand {
	if h == nil {
		return nil
	}

	hand := make(Hand, len(h.Points))
	for i, p := range h.Points {
		hand[i] = Keypoint{
			ID: i,
			X:  int(p.X * float64(width)),
			Y:  int(p.Y * float64(height)),
		}
	}
	return hand
}
