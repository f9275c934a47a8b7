// Package app runs the frame loop: capture, detection, mode control and
// the preview window.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/echocat/slf4g"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/mode"
	"github.com/ayusman/mudra/internal/overlay"
)

// ErrCameraTimeout is returned by Run when no frame could be read for the
// configured frame timeout.
var ErrCameraTimeout = errors.New("camera not responding")

// readRetryDelay is the pause after a failed frame read.
const readRetryDelay = 10 * time.Millisecond

// Display shows annotated frames.
type Display interface {
	// Show draws v onto frame and presents it. It returns true when the
	// user asked to quit.
	Show(frame *gocv.Mat, v overlay.View) bool
	Close() error
}

// Observer receives the report of every processed frame.
type Observer interface {
	Observe(report control.Report) error
}

// Config wires the loop's collaborators.
type Config struct {
	Camera     capture.Camera
	Detector   detector.Detector
	Controller *control.Controller
	// Display is optional; without it the loop runs headless.
	Display Display
	// Journal is optional.
	Journal      Observer
	FrameTimeout time.Duration
	// OnModeChange is called from the loop after every mode change.
	OnModeChange func(mode.State)
}

// App owns the frame loop.
type App struct {
	config  Config
	enabled atomic.Bool
	fps     *overlay.FPSMeter
	now     func() time.Time
}

// New creates an enabled App.
func New(config Config) *App {
	a := &App{
		config: config,
		fps:    overlay.NewFPSMeter(),
		now:    time.Now,
	}
	a.enabled.Store(true)
	return a
}

// SetEnabled pauses or resumes gesture control. While paused frames are
// still read and shown but nothing is detected or sent to the devices.
func (a *App) SetEnabled(enabled bool) {
	a.enabled.Store(enabled)
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	return a.enabled.Load()
}

// Run opens the camera and processes frames until ctx is cancelled, the
// user quits from the window, the camera times out or a device fails.
// The camera, detector and display are closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.dispose()

	if err := a.config.Camera.Open(); err != nil {
		return err
	}
	log.Info("Camera opened.")

	lastFrame := a.now()
	for {
		select {
		case <-ctx.Done():
			log.Debug("Frame loop interrupted.")
			return nil
		default:
		}

		frame, err := a.config.Camera.ReadFrame()
		if err != nil {
			if since := a.now().Sub(lastFrame); since > a.config.FrameTimeout {
				return fmt.Errorf("%w: no frame for %v: %v", ErrCameraTimeout, since.Round(time.Millisecond), err)
			}
			log.WithError(err).Warn("Cannot read frame.")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}
		lastFrame = a.now()

		quit, err := a.processFrame(frame)
		frame.Close()
		if err != nil {
			return err
		}
		if quit {
			log.Info("Quit requested.")
			return nil
		}
	}
}

func (a *App) processFrame(frame *gocv.Mat) (quit bool, rErr error) {
	controller := a.config.Controller
	view := overlay.View{
		Mode:       controller.State().Mode,
		CursorArea: controller.CursorArea(),
		Paused:     !a.IsEnabled(),
	}

	if !view.Paused {
		report, err := controller.Process(a.detect(frame))
		a.observe(report)

		view.Mode = report.State.Mode
		view.Hand = report.Hand
		view.Scroll = report.Scroll
		view.Volume = report.Volume

		if err != nil {
			rErr = err
		}
	}

	view.FPS = a.fps.Tick()

	if a.config.Display != nil {
		quit = a.config.Display.Show(frame, view)
	}
	return quit, rErr
}

// detect returns the first detected hand in frame pixels. Detector
// failures are logged and treated as a frame without a hand.
func (a *App) detect(frame *gocv.Mat) detector.Hand {
	hands, err := a.config.Detector.Detect(frame)
	if err != nil {
		log.WithError(err).Warn("Cannot detect hands.")
		return nil
	}
	if len(hands) == 0 {
		return nil
	}
	return hands[0].ToHand(frame.Cols(), frame.Rows())
}

func (a *App) observe(report control.Report) {
	if report.Changed() {
		l := log.With("from", report.Prev).
			With("to", report.State).
			With("fingers", report.Fingers)
		switch {
		case report.State.Entered(report.Prev):
			l.Info("Mode entered.")
		case report.State.Exited(report.Prev):
			l.Info("Mode released.")
		default:
			l.Info("Mode changed.")
		}
		if fn := a.config.OnModeChange; fn != nil {
			fn(report.State)
		}
	}

	if a.config.Journal != nil {
		if err := a.config.Journal.Observe(report); err != nil {
			log.WithError(err).Warn("Cannot journal frame.")
		}
	}
}

func (a *App) dispose() {
	if err := a.config.Camera.Close(); err != nil {
		log.WithError(err).Warn("Cannot close camera.")
	}
	if err := a.config.Detector.Close(); err != nil {
		log.WithError(err).Warn("Cannot close detector.")
	}
	if a.config.Display != nil {
		if err := a.config.Display.Close(); err != nil {
			log.WithError(err).Warn("Cannot close window.")
		}
	}
}
