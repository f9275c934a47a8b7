package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/journal"
	"github.com/ayusman/mudra/internal/logging"
	"github.com/ayusman/mudra/internal/mode"
	"github.com/ayusman/mudra/internal/overlay"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/tray"
)

const windowTitle = "Hand Gesture Control"

// The preview window and the tray both need the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	logs := logging.New()
	var loader config.Loader

	cmd := kingpin.New("mudra", "Scroll, change the volume and move the pointer with hand gestures in front of a webcam.")
	loader.SetupConfiguration(cmd)
	logs.SetupConfiguration(cmd)

	kingpin.MustParse(cmd.Parse(os.Args[1:]))

	cmd.FatalIfError(run(logs, &loader), "")
}

func run(logs *logging.Logging, loader *config.Loader) (rErr error) {
	if err := logs.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := logs.Close(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	volume, err := audio.Open()
	if err != nil {
		return fmt.Errorf("cannot open audio output: %w", err)
	}
	defer func() { _ = volume.Close() }()

	robot := pointer.New()
	width, height := robot.ScreenSize()
	log.With("width", width).
		With("height", height).
		Debug("Screen size detected.")

	controller, err := control.NewController(volume, robot, control.NewCursorMapper(control.CursorArea, width, height))
	if err != nil {
		return err
	}
	levels := controller.VolumeLevels()
	log.With("min", levels.Min).
		With("max", levels.Max).
		Debug("Volume range detected.")

	det, err := detector.NewMediaPipeDetector(cfg.Detector)
	if err != nil {
		return fmt.Errorf("cannot start hand detector: %w", err)
	}

	conf := app.Config{
		Camera:       capture.NewCamera(cfg.Camera),
		Detector:     det,
		Controller:   controller,
		FrameTimeout: cfg.FrameTimeout,
	}
	if !cfg.HideWindow {
		conf.Display = overlay.NewWindow(windowTitle)
	}

	if cfg.Journal != "" {
		rec, closeJournal, err := openJournal(cfg.Journal)
		if err != nil {
			_ = det.Close()
			return err
		}
		defer closeJournal()
		conf.Journal = rec
	}

	if !cfg.Tray {
		return stopped(app.New(conf).Run(ctx))
	}
	return stopped(runWithTray(ctx, cancel, conf))
}

// stopped turns a camera that stopped delivering frames into a regular
// shutdown. Every other error is returned unchanged.
func stopped(err error) error {
	if errors.Is(err, app.ErrCameraTimeout) {
		log.WithError(err).Warn("Camera stopped delivering frames, shutting down.")
		return nil
	}
	return err
}

// runWithTray keeps the main thread for the tray and runs the frame loop
// on its own locked thread.
func runWithTray(ctx context.Context, cancel context.CancelFunc, conf app.Config) error {
	t := tray.New()
	conf.OnModeChange = func(s mode.State) {
		t.SetMode(s.Mode.String())
	}

	a := app.New(conf)
	t.OnToggle(func(active bool) {
		a.SetEnabled(active)
		log.With("active", active).Info("Gesture control toggled.")
	})
	t.OnQuit(cancel)

	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		done <- a.Run(ctx)
		t.Stop()
	}()

	t.Run()
	cancel()
	return <-done
}

func openJournal(path string) (*journal.Recorder, func(), error) {
	store, err := journal.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open journal: %w", err)
	}

	rec, err := journal.Start(store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	log.With("file", store.Path()).
		With("session", rec.SessionID()).
		Info("Journal session started.")

	return rec, func() {
		if err := rec.Finish(); err != nil {
			log.WithError(err).Warn("Cannot finish journal session.")
		}
		_ = store.Close()
	}, nil
}
