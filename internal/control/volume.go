package control

import (
	"image"

	"github.com/ayusman/mudra/internal/detector"
)

// Volume mapping constants.
const (
	// HandMinDist and HandMaxDist bound the thumb-index pinch distance in pixels.
	HandMinDist = 50.0
	HandMaxDist = 200.0
	// VolumeFloor is the lowest level ever applied, in device units.
	VolumeFloor = -63.0
	// DeadBand is the pinch distance below which the reading is flagged.
	DeadBand = 50.0
	// BarEmpty and BarFull are the y coordinates of the volume bar's fill edge.
	BarEmpty = 400.0
	BarFull  = 150.0
)

// VolumeReading is the outcome of mapping one pinch.
type VolumeReading struct {
	Thumb    image.Point
	Index    image.Point
	Center   image.Point
	Distance float64
	Level    float64
	Percent  float64
	Bar      float64
	DeadBand bool
}

// VolumeMapper converts the thumb-index distance into an output level.
type VolumeMapper struct {
	hand   Range
	levels Range
}

// NewVolumeMapper builds a mapper for a device reporting [deviceMin, deviceMax].
// The lower bound is raised to VolumeFloor when the device goes below it.
func NewVolumeMapper(deviceMin, deviceMax float64) *VolumeMapper {
	return &VolumeMapper{
		hand:   Range{Min: HandMinDist, Max: HandMaxDist},
		levels: Range{Min: max(deviceMin, VolumeFloor), Max: deviceMax},
	}
}

// Levels returns the output level range in use.
func (m *VolumeMapper) Levels() Range {
	return m.levels
}

// Map computes the reading for a complete hand.
func (m *VolumeMapper) Map(hand detector.Hand) VolumeReading {
	thumb := hand[detector.ThumbTip]
	index := hand[detector.IndexTip]

	distance := thumb.DistanceTo(index)
	level := Interp(distance, m.hand, m.levels)

	return VolumeReading{
		Thumb:    image.Pt(thumb.X, thumb.Y),
		Index:    image.Pt(index.X, index.Y),
		Center:   image.Pt((thumb.X+index.X)/2, (thumb.Y+index.Y)/2),
		Distance: distance,
		Level:    level,
		Percent:  Interp(level, m.levels, Range{Min: 0, Max: 100}),
		Bar:      Interp(level, m.levels, Range{Min: BarEmpty, Max: BarFull}),
		DeadBand: distance < DeadBand,
	}
}
