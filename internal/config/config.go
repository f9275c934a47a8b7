// Package config assembles the runtime configuration from defaults, an
// optional YAML file and command line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
)

// DefaultFrameTimeout is how long the camera may fail before giving up.
const DefaultFrameTimeout = 10 * time.Second

// FlagHolder is satisfied by *kingpin.Application and *kingpin.CmdClause.
type FlagHolder interface {
	Flag(name, help string) *kingpin.FlagClause
}

// Configuration holds every runtime option.
type Configuration struct {
	Camera       capture.Config  `yaml:"camera,omitempty"`
	Detector     detector.Config `yaml:"detector,omitempty"`
	FrameTimeout time.Duration   `yaml:"frameTimeout,omitempty"`
	HideWindow   bool            `yaml:"hideWindow,omitempty"`
	Tray         bool            `yaml:"tray,omitempty"`
	Journal      string          `yaml:"journal,omitempty"`
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{
		Camera:       capture.DefaultConfig(),
		Detector:     detector.DefaultConfig(),
		FrameTimeout: DefaultFrameTimeout,
	}
}

func (c *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (c *Configuration) loadFromFile(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := c.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

// Validate rejects values the pipeline cannot run with.
func (c Configuration) Validate() error {
	if c.Camera.DeviceID < 0 {
		return fmt.Errorf("camera device must not be negative, got %d", c.Camera.DeviceID)
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Camera.Width, c.Camera.Height)
	}
	if c.FrameTimeout <= 0 {
		return fmt.Errorf("frame timeout must be positive, got %v", c.FrameTimeout)
	}
	if c.Detector.MaxHands < 1 {
		return fmt.Errorf("detector max hands must be at least 1, got %d", c.Detector.MaxHands)
	}
	for name, v := range map[string]float64{
		"detection": c.Detector.MinConfidence,
		"tracking":  c.Detector.MinTrackingConf,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s confidence must be within [0, 1], got %v", name, v)
		}
	}
	return nil
}

// Loader collects flag values and merges them over the file and defaults.
type Loader struct {
	File string

	fromFlags Configuration
}

// SetupConfiguration registers all configuration flags.
func (l *Loader) SetupConfiguration(using FlagHolder) {
	c := &l.fromFlags

	using.Flag("config", "YAML file to read the configuration from. Flags take precedence over its values.").
		Short('c').
		Envar("MUDRA_CONFIG").
		StringVar(&l.File)
	using.Flag("camera.device", "Index of the camera device.").
		Envar("MUDRA_CAMERA_DEVICE").
		IntVar(&c.Camera.DeviceID)
	using.Flag("camera.width", "Requested frame width in pixels.").
		Envar("MUDRA_CAMERA_WIDTH").
		IntVar(&c.Camera.Width)
	using.Flag("camera.height", "Requested frame height in pixels.").
		Envar("MUDRA_CAMERA_HEIGHT").
		IntVar(&c.Camera.Height)
	using.Flag("frameTimeout", "Stop when no frame could be read for this long.").
		Envar("MUDRA_FRAME_TIMEOUT").
		DurationVar(&c.FrameTimeout)
	using.Flag("detector.maxHands", "Maximum number of hands the detector reports.").
		Envar("MUDRA_DETECTOR_MAX_HANDS").
		IntVar(&c.Detector.MaxHands)
	using.Flag("detector.minConfidence", "Minimum hand detection confidence.").
		Envar("MUDRA_DETECTOR_MIN_CONFIDENCE").
		Float64Var(&c.Detector.MinConfidence)
	using.Flag("detector.minTrackingConfidence", "Minimum hand tracking confidence.").
		Envar("MUDRA_DETECTOR_MIN_TRACKING_CONFIDENCE").
		Float64Var(&c.Detector.MinTrackingConf)
	using.Flag("hideWindow", "Do not show the camera preview window.").
		Envar("MUDRA_HIDE_WINDOW").
		BoolVar(&c.HideWindow)
	using.Flag("tray", "Show a system tray menu to pause or quit.").
		Envar("MUDRA_TRAY").
		BoolVar(&c.Tray)
	using.Flag("journal", "SQLite file to record sessions and mode changes to.").
		Envar("MUDRA_JOURNAL").
		StringVar(&c.Journal)
}

// Load returns the defaults, overridden by the file (if any), overridden
// by every flag that was set to a non-zero value.
func (l *Loader) Load() (Configuration, error) {
	result := Default()

	if l.File != "" {
		var fromFile Configuration
		if err := fromFile.loadFromFile(l.File); err != nil {
			return Configuration{}, err
		}
		if err := mergo.Merge(&result, fromFile, mergo.WithOverride); err != nil {
			return Configuration{}, fmt.Errorf("cannot merge configuration file: %w", err)
		}
	}

	if err := mergo.Merge(&result, l.fromFlags, mergo.WithOverride); err != nil {
		return Configuration{}, fmt.Errorf("cannot merge flags: %w", err)
	}

	if err := result.Validate(); err != nil {
		return Configuration{}, err
	}

	return result, nil
}
