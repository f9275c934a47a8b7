// Package overlay draws the control state onto camera frames and shows
// them in a window.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/mode"
)

var (
	labelColor     = color.RGBA{R: 255, G: 255, B: 0}
	highlightColor = color.RGBA{R: 255, G: 215, B: 0}
	deadBandColor  = color.RGBA{R: 255}
	barColor       = color.RGBA{R: 0, G: 206, B: 209}
	barFillColor   = color.RGBA{R: 127, G: 255, B: 215}
	white          = color.RGBA{R: 255, G: 255, B: 255}
	upColor        = color.RGBA{G: 255}
	downColor      = color.RGBA{R: 255}
	fpsColor       = color.RGBA{B: 255}
	pausedColor    = color.RGBA{R: 160, G: 160, B: 160}
	boneColor      = color.RGBA{R: 224, G: 224, B: 224}
	jointColor     = color.RGBA{R: 255}
)

// Fixed positions in a 640x480 frame.
var (
	labelOrigin = image.Pt(250, 450)
	badgeBox    = image.Rect(200, 410, 245, 460)
	badgeOrigin = image.Pt(200, 455)
	barOutline  = image.Rect(30, int(control.BarFull), 55, int(control.BarEmpty))
	percentAt   = image.Pt(25, 430)
	fpsAt       = image.Pt(480, 50)
	pausedAt    = image.Pt(10, 30)
)

// View is what gets drawn for one frame.
type View struct {
	Mode mode.Mode
	// Hand is drawn as a skeleton when complete.
	Hand       detector.Hand
	Scroll     int
	Volume     *control.VolumeReading
	CursorArea image.Rectangle
	FPS        float64
	Paused     bool
}

// Label returns the on-screen name of m. Neutral has no label.
func Label(m mode.Mode) string {
	if m == mode.Neutral {
		return ""
	}
	return m.String()
}

// Badge returns the scroll direction letter for a wheel amount.
func Badge(scroll int) (string, color.RGBA) {
	switch {
	case scroll > 0:
		return "U", upColor
	case scroll < 0:
		return "D", downColor
	default:
		return "", color.RGBA{}
	}
}

// Draw renders v onto frame in place.
func Draw(frame *gocv.Mat, v View) {
	if v.Hand.Complete() {
		drawHand(frame, v.Hand)
	}

	if label := Label(v.Mode); label != "" {
		gocv.PutText(frame, label, labelOrigin, gocv.FontHersheyComplexSmall, 3, labelColor, 3)
	}

	switch v.Mode {
	case mode.Scroll:
		gocv.Rectangle(frame, badgeBox, white, -1)
		if text, c := Badge(v.Scroll); text != "" {
			gocv.PutText(frame, text, badgeOrigin, gocv.FontHersheyComplexSmall, 3, c, 3)
		}

	case mode.Volume:
		if v.Volume != nil {
			drawVolume(frame, *v.Volume)
		}

	case mode.Cursor:
		if !v.CursorArea.Empty() {
			gocv.Rectangle(frame, v.CursorArea, white, 3)
		}
	}

	if v.Paused {
		gocv.PutText(frame, "PAUSED", pausedAt, gocv.FontHersheySimplex, 0.8, pausedColor, 2)
	}

	gocv.PutText(frame, fmt.Sprintf("FPS: %d", int(v.FPS)), fpsAt, gocv.FontItalic, 1, fpsColor, 2)
}

func drawHand(frame *gocv.Mat, hand detector.Hand) {
	for _, c := range detector.Connections {
		a, b := hand[c[0]], hand[c[1]]
		gocv.Line(frame, image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), boneColor, 2)
	}
	for _, k := range hand {
		gocv.Circle(frame, image.Pt(k.X, k.Y), 3, jointColor, -1)
	}
}

func drawVolume(frame *gocv.Mat, r control.VolumeReading) {
	gocv.Circle(frame, r.Thumb, 10, highlightColor, -1)
	gocv.Circle(frame, r.Index, 10, highlightColor, -1)
	gocv.Line(frame, r.Thumb, r.Index, highlightColor, 3)
	gocv.Circle(frame, r.Center, 8, highlightColor, -1)
	if r.DeadBand {
		gocv.Circle(frame, r.Center, 11, deadBandColor, -1)
	}

	fill := barOutline
	fill.Min.Y = int(r.Bar)
	gocv.Rectangle(frame, barOutline, barColor, 3)
	gocv.Rectangle(frame, fill, barFillColor, -1)
	gocv.PutText(frame, fmt.Sprintf("%d%%", int(r.Percent)), percentAt, gocv.FontHersheyComplex, 0.9, barColor, 3)
}

// quitKey reports whether a WaitKey result is the quit key.
func quitKey(key int) bool {
	k := key & 0xff
	return key >= 0 && (k == 'q' || k == 'Q')
}
