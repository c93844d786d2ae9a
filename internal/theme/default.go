package theme

import (
	"fmt"
	"image/color"
	"strings"

	"git.lost.host/meutraa/maniaview/internal/layout"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var (
	noteColor     = color.RGBA{0, 174, 255, 255}
	holdBodyColor = color.RGBA{200, 200, 200, 255}
	holdCapColor  = color.RGBA{0, 174, 255, 255}
	laneColor     = color.RGBA{20, 20, 20, 255}
	laneAltColor  = color.RGBA{26, 26, 26, 255}
)

// Styles lists the preset names accepted by DefaultTheme.Style, in cycle order.
var Styles = []string{"circle", "rectangle", "arrow"}

type DefaultTheme struct {
	// Alternate shades every other lane.
	Alternate bool
}

// DefaultStyle is the rectangle style used until another one is set.
func DefaultStyle(noteSize float64) NoteStyle {
	return NoteStyle{
		Shape:         Rectangle{Width: noteSize * 0.8, Height: noteSize * 0.25},
		Color:         noteColor,
		HoldBodyColor: holdBodyColor,
		HoldCapColor:  holdCapColor,
	}
}

func (t *DefaultTheme) Style(name string, noteSize float64) (NoteStyle, error) {
	style := DefaultStyle(noteSize)
	switch strings.ToLower(name) {
	case "circle":
		style.Shape = Circle{}
	case "rectangle", "":
	case "arrow":
		style.Shape = Arrow{Width: noteSize * 0.6, Height: noteSize * 0.4}
	default:
		return style, errors.Wrapf(layout.ErrInvalidConfiguration, "unknown note style %q", name)
	}
	return style, nil
}

func (t *DefaultTheme) Lane(column int) color.RGBA {
	if t.Alternate && column%2 == 1 {
		return laneAltColor
	}
	return laneColor
}

func (t *DefaultTheme) HitLine() color.RGBA {
	return colornames.White
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa or an SVG color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	c := color.RGBA{A: 255}
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("unexpected length")
	}
	if nil != err {
		return color.RGBA{}, errors.Wrapf(layout.ErrInvalidConfiguration, "color %q: %v", s, err)
	}
	return c, nil
}
