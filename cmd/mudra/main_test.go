package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayusman/mudra/internal/app"
)

func TestStopped(t *testing.T) {
	deviceErr := errors.New("device gone")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"quit", nil, nil},
		{"camera timeout", fmt.Errorf("%w: no frame for 10s", app.ErrCameraTimeout), nil},
		{"device failure", fmt.Errorf("set volume: %w", deviceErr), deviceErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stopped(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
