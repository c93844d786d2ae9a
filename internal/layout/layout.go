package layout

import (
	"github.com/pkg/errors"
)

// Layout holds the pixel geometry of the playfield.
type Layout struct {
	ColumnWidth float64
	NoteSize    float64
	TrackHeight float64
}

func (l Layout) Validate() error {
	switch {
	case !(l.ColumnWidth > 0):
		return errors.Wrapf(ErrInvalidConfiguration, "column width %v must be positive", l.ColumnWidth)
	case !(l.NoteSize > 0):
		return errors.Wrapf(ErrInvalidConfiguration, "note size %v must be positive", l.NoteSize)
	case !(l.TrackHeight > 0):
		return errors.Wrapf(ErrInvalidConfiguration, "track height %v must be positive", l.TrackHeight)
	}
	return nil
}

// RequiredSize is the [width, height] needed to draw keys columns.
func (l Layout) RequiredSize(keys int) [2]float64 {
	return [2]float64{l.ColumnWidth * float64(keys), l.TrackHeight}
}

// ColumnX is the left edge of a column.
func (l Layout) ColumnX(column int) float64 {
	return float64(column) * l.ColumnWidth
}

// CenterX is the horizontal center of a column.
func (l Layout) CenterX(column int) float64 {
	return l.ColumnX(column) + l.ColumnWidth/2
}
