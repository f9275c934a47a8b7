package overlay

import (
	"gocv.io/x/gocv"
)

// Window shows annotated frames in a desktop window. The native window is
// created on the first Show, so every Show and Close must happen on that
// same OS thread.
type Window struct {
	title  string
	window *gocv.Window
}

// NewWindow prepares a window with the given title.
func NewWindow(title string) *Window {
	return &Window{title: title}
}

// Show draws v onto frame, displays it and polls the keyboard once. It
// returns true when the quit key was pressed.
func (w *Window) Show(frame *gocv.Mat, v View) bool {
	if w.window == nil {
		w.window = gocv.NewWindow(w.title)
	}

	Draw(frame, v)
	w.window.IMShow(*frame)
	return quitKey(w.window.WaitKey(1))
}

// Close destroys the window.
func (w *Window) Close() error {
	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}
