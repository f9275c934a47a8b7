package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func pose(fs FingerState) detector.Hand {
	hl := detector.PoseLandmarks(fs[Thumb], fs[Index], fs[Middle], fs[Ring], fs[Pinky])
	return hl.ToHand(640, 480)
}

func TestClassify_RequiresCompleteHand(t *testing.T) {
	full := pose(Of(1, 1, 1, 1, 1))

	for n := 0; n <= detector.NumLandmarks+1; n++ {
		var hand detector.Hand
		if n <= len(full) {
			hand = full[:n]
		} else {
			hand = append(append(detector.Hand{}, full...), detector.Keypoint{ID: n - 1})
		}

		fs, ok := Classify(hand)
		if ok != (n == detector.NumLandmarks) {
			t.Errorf("len %d: ok = %v", n, ok)
		}
		if !ok && fs != (FingerState{}) {
			t.Errorf("len %d: expected zero state on rejection, got %v", n, fs)
		}
	}

	if _, ok := Classify(nil); ok {
		t.Error("nil hand must be rejected")
	}
}

func TestClassify_AllPatterns(t *testing.T) {
	// Every combination of the five digits round-trips through the fixture.
	for bits := 0; bits < 32; bits++ {
		want := Of(bits&1, bits>>1&1, bits>>2&1, bits>>3&1, bits>>4&1)

		got, ok := Classify(pose(want))
		if !ok {
			t.Fatalf("%v: hand rejected", want)
		}
		if got != want {
			t.Errorf("Classify() = %v, want %v", got, want)
		}
	}
}

func TestClassify_Thresholds(t *testing.T) {
	hand := pose(Of(0, 0, 0, 0, 0))

	t.Run("thumb uses x only", func(t *testing.T) {
		h := append(detector.Hand{}, hand...)
		h[detector.ThumbTip].X = h[detector.ThumbIP].X
		h[detector.ThumbTip].Y = 0
		if fs, _ := Classify(h); fs[Thumb] {
			t.Error("equal x must not count as extended")
		}

		h[detector.ThumbTip].X = h[detector.ThumbIP].X + 1
		h[detector.ThumbTip].Y = 479
		if fs, _ := Classify(h); !fs[Thumb] {
			t.Error("tip right of IP must count as extended regardless of y")
		}
	})

	t.Run("fingers compare tip with PIP", func(t *testing.T) {
		h := append(detector.Hand{}, hand...)
		h[detector.MiddleTip].Y = h[detector.MiddlePIP].Y
		if fs, _ := Classify(h); fs[Middle] {
			t.Error("equal y must not count as extended")
		}

		h[detector.MiddleTip].Y = h[detector.MiddlePIP].Y - 1
		if fs, _ := Classify(h); !fs[Middle] {
			t.Error("tip above PIP must count as extended")
		}
	})
}

func TestRecognize(t *testing.T) {
	tests := []struct {
		fs   FingerState
		want Gesture
	}{
		{Of(0, 0, 0, 0, 0), Fist},
		{Of(0, 1, 0, 0, 0), Point},
		{Of(0, 1, 1, 0, 0), Peace},
		{Of(1, 1, 0, 0, 0), Pinch},
		{Of(1, 1, 1, 1, 1), OpenPalm},
		{Of(1, 0, 0, 0, 0), Unknown},
		{Of(1, 1, 1, 0, 0), Unknown},
		{Of(0, 1, 1, 1, 1), Unknown},
		{Of(0, 0, 0, 0, 1), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.fs.String(), func(t *testing.T) {
			if got := Recognize(tt.fs); got != tt.want {
				t.Errorf("Recognize(%v) = %v, want %v", tt.fs, got, tt.want)
			}
		})
	}
}

func TestFingerState_Predicates(t *testing.T) {
	tests := []struct {
		fs          FingerState
		pinkyUp     bool
		fingersDown bool
	}{
		{Of(0, 0, 0, 0, 0), false, true},
		{Of(1, 0, 0, 0, 0), false, true},
		{Of(1, 1, 0, 0, 0), false, false},
		{Of(0, 0, 0, 0, 1), true, false},
		{Of(1, 1, 1, 1, 1), true, false},
	}

	for _, tt := range tests {
		if got := tt.fs.PinkyUp(); got != tt.pinkyUp {
			t.Errorf("%v.PinkyUp() = %v, want %v", tt.fs, got, tt.pinkyUp)
		}
		if got := tt.fs.FingersDown(); got != tt.fingersDown {
			t.Errorf("%v.FingersDown() = %v, want %v", tt.fs, got, tt.fingersDown)
		}
	}
}

func TestFingerState_String(t *testing.T) {
	if got := Of(0, 1, 1, 0, 1).String(); got != "[0 1 1 0 1]" {
		t.Errorf("String() = %q", got)
	}
}
