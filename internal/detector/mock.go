package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	mu       sync.Mutex
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	err      error
	calls    int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
	m.sequence = nil
}

// SetSequence makes Detect return one entry per call, in order.
// Once the sequence is exhausted Detect reports no hands.
func (m *MockDetector) SetSequence(frames [][]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = frames
	m.hands = nil
	m.calls = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := m.calls
	m.calls++

	if m.err != nil {
		return nil, m.err
	}
	if m.sequence != nil {
		if call >= len(m.sequence) {
			return nil, nil
		}
		return m.sequence[call], nil
	}
	return m.hands, nil
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PoseLandmarks builds a right hand, palm towards the camera, with each digit
// either extended or curled. The geometry is chosen so that the x test for
// the thumb and the tip-above-PIP test for the other digits are unambiguous.
func PoseLandmarks(thumb, index, middle, ring, pinky bool) HandLandmarks {
	landmarks := HandLandmarks{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.8}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.70, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.64, Y: 0.66, Z: 0.03}
	if thumb {
		landmarks.Points[ThumbTip] = Point3D{X: 0.70, Y: 0.62, Z: 0.03}
	} else {
		// Folded across the palm, left of the IP joint.
		landmarks.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.68, Z: -0.02}
	}

	fingers := []struct {
		mcp      int
		x        float64
		extended bool
	}{
		{IndexMCP, 0.55, index},
		{MiddleMCP, 0.50, middle},
		{RingMCP, 0.45, ring},
		{PinkyMCP, 0.40, pinky},
	}

	for _, f := range fingers {
		landmarks.Points[f.mcp] = Point3D{X: f.x, Y: 0.68}
		if f.extended {
			landmarks.Points[f.mcp+1] = Point3D{X: f.x, Y: 0.55}
			landmarks.Points[f.mcp+2] = Point3D{X: f.x, Y: 0.45}
			landmarks.Points[f.mcp+3] = Point3D{X: f.x, Y: 0.35}
		} else {
			landmarks.Points[f.mcp+1] = Point3D{X: f.x, Y: 0.62, Z: -0.05}
			landmarks.Points[f.mcp+2] = Point3D{X: f.x - 0.02, Y: 0.66, Z: -0.04}
			landmarks.Points[f.mcp+3] = Point3D{X: f.x - 0.03, Y: 0.70, Z: -0.02}
		}
	}

	return landmarks
}

// FistLandmarks returns a closed fist.
func FistLandmarks() HandLandmarks { return PoseLandmarks(false, false, false, false, false) }

// PointLandmarks returns a hand with only the index finger extended.
func PointLandmarks() HandLandmarks { return PoseLandmarks(false, true, false, false, false) }

// PeaceLandmarks returns a hand with index and middle fingers extended.
func PeaceLandmarks() HandLandmarks { return PoseLandmarks(false, true, true, false, false) }

// PinchLandmarks returns a hand with thumb and index finger extended.
func PinchLandmarks() HandLandmarks { return PoseLandmarks(true, true, false, false, false) }

// OpenPalmLandmarks returns a hand with all five digits extended.
func OpenPalmLandmarks() HandLandmarks { return PoseLandmarks(true, true, true, true, true) }
