package theme

import (
	"image"
	"image/color"

	"git.lost.host/meutraa/maniaview/internal/layout"
	"github.com/pkg/errors"
)

// NoteShape is one of Circle, Rectangle, Arrow or Image.
type NoteShape interface {
	isNoteShape()
}

type Circle struct{}

// Rectangle and Arrow sizes are in pixels and do not follow the note size.
type Rectangle struct {
	Width, Height float64
}

type Arrow struct {
	Width, Height float64
}

// Image draws a caller owned image in a note size square. The handle is
// never copied or decoded here.
type Image struct {
	Handle image.Image
}

func (Circle) isNoteShape()    {}
func (Rectangle) isNoteShape() {}
func (Arrow) isNoteShape()     {}
func (Image) isNoteShape()     {}

type NoteStyle struct {
	Shape         NoteShape
	Color         color.RGBA
	HoldBodyColor color.RGBA
	HoldCapColor  color.RGBA
}

func (s NoteStyle) Validate() error {
	switch shape := s.Shape.(type) {
	case nil:
		return errors.Wrap(layout.ErrInvalidConfiguration, "note style has no shape")
	case Rectangle:
		if !(shape.Width > 0 && shape.Height > 0) {
			return errors.Wrapf(layout.ErrInvalidConfiguration, "rectangle %vx%v", shape.Width, shape.Height)
		}
	case Arrow:
		if !(shape.Width > 0 && shape.Height > 0) {
			return errors.Wrapf(layout.ErrInvalidConfiguration, "arrow %vx%v", shape.Width, shape.Height)
		}
	case Image:
		if nil == shape.Handle {
			return errors.Wrap(layout.ErrInvalidConfiguration, "image style without an image")
		}
	}
	return nil
}

// Size is the width and height a single note occupies for a note size.
func (s NoteStyle) Size(noteSize float64) (float64, float64) {
	switch shape := s.Shape.(type) {
	case Rectangle:
		return shape.Width, shape.Height
	case Arrow:
		return shape.Width, shape.Height
	}
	return noteSize, noteSize
}

// Theme supplies note styles and track colors.
type Theme interface {
	Style(name string, noteSize float64) (NoteStyle, error)
	Lane(column int) color.RGBA
	HitLine() color.RGBA
}
