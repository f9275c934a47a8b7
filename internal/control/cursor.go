package control

import (
	"image"

	"github.com/ayusman/mudra/internal/detector"
)

// CursorArea is the region of a 640x480 frame that spans the whole screen.
var CursorArea = image.Rect(110, 20, 620, 350)

// CursorMapper maps the index fingertip onto absolute screen coordinates.
type CursorMapper struct {
	area   image.Rectangle
	width  int
	height int
}

// NewCursorMapper creates a mapper from area (frame pixels) onto a
// width x height screen. area.Max is treated as inclusive.
func NewCursorMapper(area image.Rectangle, width, height int) *CursorMapper {
	return &CursorMapper{
		area:   area.Canon(),
		width:  width,
		height: height,
	}
}

// Area returns the reference rectangle in frame pixels.
func (m *CursorMapper) Area() image.Rectangle {
	return m.area
}

// MapPoint maps a frame position to the screen. Positions outside the
// reference rectangle are clamped onto its border first.
func (m *CursorMapper) MapPoint(p image.Point) image.Point {
	x := min(max(p.X, m.area.Min.X), m.area.Max.X)
	y := min(max(p.Y, m.area.Min.Y), m.area.Max.Y)

	sx := Interp(float64(x),
		Range{Min: float64(m.area.Min.X), Max: float64(m.area.Max.X)},
		Range{Min: 0, Max: float64(m.width - 1)})
	sy := Interp(float64(y),
		Range{Min: float64(m.area.Min.Y), Max: float64(m.area.Max.Y)},
		Range{Min: 0, Max: float64(m.height - 1)})

	return image.Pt(int(sx), int(sy))
}

// Map returns the screen target for a complete hand's index fingertip.
func (m *CursorMapper) Map(hand detector.Hand) image.Point {
	tip := hand[detector.IndexTip]
	return m.MapPoint(image.Pt(tip.X, tip.Y))
}
