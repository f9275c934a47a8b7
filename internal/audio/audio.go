// Package audio controls the system output volume.
package audio

import "errors"

// ErrUnsupported is returned by Open when the platform has no volume backend.
var ErrUnsupported = errors.New("volume control is not supported on this platform")

// Endpoint is the default output device.
type Endpoint interface {
	// VolumeRange reports the levels accepted by SetVolume.
	VolumeRange() (min, max float64, err error)
	// SetVolume applies a level within VolumeRange.
	SetVolume(level float64) error
	// Close releases the device.
	Close() error
}
