package control

// VolumeControl is the system output volume endpoint.
type VolumeControl interface {
	// VolumeRange reports the device's supported level range.
	VolumeRange() (min, max float64, err error)
	// SetVolume applies a level within VolumeRange.
	SetVolume(level float64) error
}

// Pointer injects mouse movement, clicks and scroll wheel events.
type Pointer interface {
	// MoveTo places the cursor at absolute screen coordinates.
	MoveTo(x, y int) error
	// Click issues a single left click at the current position.
	Click() error
	// Scroll turns the wheel by amount wheel units, positive is up.
	Scroll(amount int) error
}
