package overlay

import (
	"image"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/mode"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		mode mode.Mode
		want string
	}{
		{mode.Neutral, ""},
		{mode.Scroll, "Scroll"},
		{mode.Volume, "Volume"},
		{mode.Cursor, "Cursor"},
	}

	for _, tt := range tests {
		if got := Label(tt.mode); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestBadge(t *testing.T) {
	if text, c := Badge(control.ScrollStep); text != "U" || c != upColor {
		t.Errorf("Badge(up) = %q %v", text, c)
	}
	if text, c := Badge(-control.ScrollStep); text != "D" || c != downColor {
		t.Errorf("Badge(down) = %q %v", text, c)
	}
	if text, _ := Badge(0); text != "" {
		t.Errorf("Badge(0) = %q, want empty", text)
	}
}

func TestQuitKey(t *testing.T) {
	tests := []struct {
		key  int
		want bool
	}{
		{-1, false},
		{'q', true},
		{'Q', true},
		{'q' | 0x100000, true},
		{'a', false},
		{27, false},
	}

	for _, tt := range tests {
		if got := quitKey(tt.key); got != tt.want {
			t.Errorf("quitKey(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestFPSMeter(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &FPSMeter{now: func() time.Time { return clock }}

	if got := m.Tick(); got != 0 {
		t.Errorf("first Tick() = %v, want 0", got)
	}

	clock = clock.Add(40 * time.Millisecond)
	if got := m.Tick(); got < 19.99 || got > 20.01 {
		t.Errorf("Tick() after 40ms = %v, want 20", got)
	}

	if got := m.Tick(); got < 99.99 || got > 100.01 {
		t.Errorf("Tick() without delay = %v, want 100", got)
	}
}

func TestDraw(t *testing.T) {
	views := []struct {
		name string
		view View
	}{
		{"neutral", View{Mode: mode.Neutral, FPS: 30}},
		{"scroll up", View{Mode: mode.Scroll, Scroll: control.ScrollStep}},
		{"scroll idle", View{Mode: mode.Scroll}},
		{"volume without reading", View{Mode: mode.Volume}},
		{"volume", View{Mode: mode.Volume, Volume: &control.VolumeReading{
			Thumb: image.Pt(300, 200), Index: image.Pt(310, 220), Center: image.Pt(305, 210),
			Distance: 22, Level: -63, Percent: 0, Bar: control.BarEmpty, DeadBand: true,
		}}},
		{"cursor", View{Mode: mode.Cursor, CursorArea: control.CursorArea}},
		{"paused", View{Mode: mode.Neutral, Paused: true}},
	}

	for _, tt := range views {
		t.Run(tt.name, func(t *testing.T) {
			frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
			defer frame.Close()

			Draw(&frame, tt.view)

			if frame.Cols() != 640 || frame.Rows() != 480 {
				t.Errorf("frame resized to %dx%d", frame.Cols(), frame.Rows())
			}
			// The FPS text is always drawn, so the blank frame gains pixels.
			gray := gocv.NewMat()
			defer gray.Close()
			gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
			if gocv.CountNonZero(gray) == 0 {
				t.Error("nothing drawn")
			}
		})
	}
}

func TestDraw_HandSkeleton(t *testing.T) {
	palm := detector.OpenPalmLandmarks()
	hand := palm.ToHand(640, 480)
	tip := hand[detector.IndexTip]
	pip, dip := hand[detector.IndexPIP], hand[detector.IndexDIP]
	bone := image.Pt(pip.X, (pip.Y+dip.Y)/2)

	tests := []struct {
		name      string
		hand      detector.Hand
		wantJoint []uint8
		wantBone  []uint8
	}{
		{"complete hand", hand, []uint8{0, 0, 255}, []uint8{224, 224, 224}},
		{"partial hand", hand[:20], []uint8{0, 0, 0}, []uint8{0, 0, 0}},
		{"no hand", nil, []uint8{0, 0, 0}, []uint8{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
			defer frame.Close()

			Draw(&frame, View{Mode: mode.Neutral, Hand: tt.hand})

			if got := []uint8(frame.GetVecbAt(tip.Y, tip.X)); !equalBytes(got, tt.wantJoint) {
				t.Errorf("index tip pixel = %v, want %v", got, tt.wantJoint)
			}
			if got := []uint8(frame.GetVecbAt(bone.Y, bone.X)); !equalBytes(got, tt.wantBone) {
				t.Errorf("index bone pixel = %v, want %v", got, tt.wantBone)
			}
		})
	}
}

func TestConnections(t *testing.T) {
	if len(detector.Connections) != 21 {
		t.Errorf("got %d connections, want 21", len(detector.Connections))
	}

	seen := make(map[int]bool)
	for _, c := range detector.Connections {
		seen[c[0]] = true
		seen[c[1]] = true
	}
	if len(seen) != detector.NumLandmarks {
		t.Errorf("connections touch %d landmarks, want %d", len(seen), detector.NumLandmarks)
	}
}

func equalBytes(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
