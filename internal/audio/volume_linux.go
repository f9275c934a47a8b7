package audio

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Open returns the default PulseAudio/PipeWire sink, driven through pactl.
func Open() (Endpoint, error) {
	if _, err := exec.LookPath("pactl"); err != nil {
		return nil, fmt.Errorf("%w: pactl not found", ErrUnsupported)
	}

	return newCommandEndpoint("pactl", func(percent int) []string {
		return []string{"set-sink-volume", "@DEFAULT_SINK@", strconv.Itoa(percent) + "%"}
	}), nil
}
