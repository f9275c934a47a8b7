package audio

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Open returns the default output device, driven through AppleScript.
func Open() (Endpoint, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, fmt.Errorf("%w: osascript not found", ErrUnsupported)
	}

	return newCommandEndpoint("osascript", func(percent int) []string {
		return []string{"-e", "set volume output volume " + strconv.Itoa(percent)}
	}), nil
}
