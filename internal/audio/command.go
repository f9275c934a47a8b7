package audio

import (
	"context"
	"math"
	"sync"
	"time"
)

const commandTimeout = 2 * time.Second

// commandEndpoint sets the volume through an external tool on a 0..100 scale.
type commandEndpoint struct {
	mu      sync.Mutex
	runner  *Runner
	name    string
	args    func(percent int) []string
	last    int
	applied bool
}

func newCommandEndpoint(name string, args func(percent int) []string) *commandEndpoint {
	return &commandEndpoint{
		runner: NewRunner(commandTimeout),
		name:   name,
		args:   args,
	}
}

func (e *commandEndpoint) VolumeRange() (float64, float64, error) {
	return 0, 100, nil
}

// SetVolume rounds level to a whole percent. Repeating the last applied
// percent does not start the tool again.
func (e *commandEndpoint) SetVolume(level float64) error {
	percent := int(math.Round(min(max(level, 0), 100)))

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.applied && percent == e.last {
		return nil
	}

	if _, err := e.runner.Run(context.Background(), e.name, e.args(percent)...); err != nil {
		return err
	}

	e.last = percent
	e.applied = true
	return nil
}

func (e *commandEndpoint) Close() error {
	return nil
}
