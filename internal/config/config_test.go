package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
)

func parse(t *testing.T, args ...string) *Loader {
	t.Helper()

	var l Loader
	app := kingpin.New("mudra", "")
	l.SetupConfiguration(app)
	_, err := app.Parse(args)
	require.NoError(t, err)

	return &l
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "mudra.yml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o600))
	return fn
}

func TestLoad_Defaults(t *testing.T) {
	c, err := parse(t).Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
	assert.Equal(t, capture.Config{DeviceID: 0, Width: 640, Height: 480}, c.Camera)
	assert.Equal(t, detector.DefaultConfig(), c.Detector)
	assert.Equal(t, 10*time.Second, c.FrameTimeout)
	assert.False(t, c.Tray)
	assert.False(t, c.HideWindow)
	assert.Empty(t, c.Journal)
}

func TestLoad_Flags(t *testing.T) {
	c, err := parse(t,
		"--camera.device=2",
		"--frameTimeout=3s",
		"--detector.minConfidence=0.6",
		"--tray",
		"--journal=/tmp/mudra.db",
	).Load()
	require.NoError(t, err)

	assert.Equal(t, 2, c.Camera.DeviceID)
	assert.Equal(t, 640, c.Camera.Width)
	assert.Equal(t, 3*time.Second, c.FrameTimeout)
	assert.Equal(t, 0.6, c.Detector.MinConfidence)
	assert.Equal(t, 0.8, c.Detector.MinTrackingConf)
	assert.True(t, c.Tray)
	assert.Equal(t, "/tmp/mudra.db", c.Journal)
}

func TestLoad_FileThenFlags(t *testing.T) {
	fn := writeFile(t, `
camera:
  device: 1
  width: 1280
  height: 720
frameTimeout: 5s
hideWindow: true
detector:
  maxHands: 2
`)

	c, err := parse(t, "-c", fn, "--camera.width=800").Load()
	require.NoError(t, err)

	assert.Equal(t, 1, c.Camera.DeviceID)
	assert.Equal(t, 800, c.Camera.Width)
	assert.Equal(t, 720, c.Camera.Height)
	assert.Equal(t, 5*time.Second, c.FrameTimeout)
	assert.True(t, c.HideWindow)
	assert.Equal(t, 2, c.Detector.MaxHands)
	assert.Equal(t, 0.85, c.Detector.MinConfidence)
}

func TestLoad_EmptyFile(t *testing.T) {
	c, err := parse(t, "--config", writeFile(t, "")).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := parse(t, "--config", writeFile(t, "camera:\n  fps: 30\n")).Load()
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "absent.yml")).Load()
	require.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MUDRA_CAMERA_DEVICE", "3")
	t.Setenv("MUDRA_TRAY", "true")

	c, err := parse(t).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Camera.DeviceID)
	assert.True(t, c.Tray)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Configuration)
	}{
		{"negative device", func(c *Configuration) { c.Camera.DeviceID = -1 }},
		{"zero width", func(c *Configuration) { c.Camera.Width = 0 }},
		{"zero timeout", func(c *Configuration) { c.FrameTimeout = 0 }},
		{"no hands", func(c *Configuration) { c.Detector.MaxHands = 0 }},
		{"confidence above one", func(c *Configuration) { c.Detector.MinConfidence = 1.5 }},
		{"negative tracking", func(c *Configuration) { c.Detector.MinTrackingConf = -0.1 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_InvalidFlag(t *testing.T) {
	_, err := parse(t, "--detector.minConfidence=2").Load()
	require.Error(t, err)
}
