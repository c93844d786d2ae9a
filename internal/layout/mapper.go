package layout

import (
	"github.com/pkg/errors"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Position maps a note time to a vertical offset on a track of the given
// height. A note at current sits on the hit line (offset == height), a note
// scroll ms ahead sits at the top (offset == 0). Values outside the track are
// extrapolated, never clamped.
func Position(time, current, scroll, height float64) (float64, error) {
	m, err := NewMapper(current, scroll, height)
	if nil != err {
		return 0, err
	}
	return m.Position(time), nil
}

// Mapper is a validated Position with current, scroll and height fixed for
// one frame.
type Mapper struct {
	Current float64
	Scroll  float64
	Height  float64
}

func NewMapper(current, scroll, height float64) (Mapper, error) {
	if !(scroll > 0) {
		return Mapper{}, errors.Wrapf(ErrInvalidConfiguration, "scroll duration %v must be positive", scroll)
	}
	return Mapper{Current: current, Scroll: scroll, Height: height}, nil
}

func (m Mapper) Position(time float64) float64 {
	return m.Height * (1 - (time-m.Current)/m.Scroll)
}

// Time is the inverse of Position: the note time that would be drawn at
// offset this frame.
func (m Mapper) Time(offset float64) float64 {
	if m.Height == 0 {
		return m.Current
	}
	return m.Current + (1-offset/m.Height)*m.Scroll
}

// HitLine is the offset of a note due exactly now.
func (m Mapper) HitLine() float64 {
	return m.Height
}

// Span is the number of ms it takes a note to travel px pixels.
func (m Mapper) Span(px float64) float64 {
	if m.Height == 0 {
		return 0
	}
	return px / m.Height * m.Scroll
}
