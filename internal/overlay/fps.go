package overlay

import "time"

// FPSMeter estimates the frame rate from the time between ticks.
type FPSMeter struct {
	now  func() time.Time
	prev time.Time
}

// NewFPSMeter creates a meter on the wall clock.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{now: time.Now}
}

// Tick records a frame and returns 1/(dt+0.01) for the elapsed seconds dt.
// The 10ms bias keeps the value finite for back-to-back ticks. The first
// tick returns 0.
func (m *FPSMeter) Tick() float64 {
	now := m.now()
	prev := m.prev
	m.prev = now

	if prev.IsZero() {
		return 0
	}
	return 1 / (now.Sub(prev).Seconds() + 0.01)
}
