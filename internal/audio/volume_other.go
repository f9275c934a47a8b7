//go:build !windows && !darwin && !linux

package audio

// Open always fails on this platform.
func Open() (Endpoint, error) {
	return nil, ErrUnsupported
}
