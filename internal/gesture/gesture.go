package gesture

// Gesture is a named finger-state pattern.
type Gesture int

const (
	// Unknown is any finger state outside the vocabulary.
	Unknown Gesture = iota
	// Fist has every digit retracted.
	Fist
	// Point has only the index finger extended.
	Point
	// Peace has the index and middle fingers extended.
	Peace
	// Pinch has the thumb and index finger extended.
	Pinch
	// OpenPalm has every digit extended.
	OpenPalm
)

var patterns = map[FingerState]Gesture{
	Of(0, 0, 0, 0, 0): Fist,
	Of(0, 1, 0, 0, 0): Point,
	Of(0, 1, 1, 0, 0): Peace,
	Of(1, 1, 0, 0, 0): Pinch,
	Of(1, 1, 1, 1, 1): OpenPalm,
}

// Recognize returns the gesture whose pattern matches f exactly.
func Recognize(f FingerState) Gesture {
	if g, ok := patterns[f]; ok {
		return g
	}
	return Unknown
}

func (g Gesture) String() string {
	switch g {
	case Fist:
		return "fist"
	case Point:
		return "point"
	case Peace:
		return "peace"
	case Pinch:
		return "pinch"
	case OpenPalm:
		return "open-palm"
	default:
		return "unknown"
	}
}
