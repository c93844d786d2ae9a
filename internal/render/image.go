package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	hudFont     *truetype.Font
	hudFontErr  error
	hudFontOnce sync.Once
)

func loadHUDFont() (*truetype.Font, error) {
	hudFontOnce.Do(func() {
		hudFont, hudFontErr = truetype.Parse(goregular.TTF)
	})
	return hudFont, hudFontErr
}

// ImageSurface paints primitives on an in-memory RGBA image. Each surface
// owns its context, use one per goroutine.
type ImageSurface struct {
	dc    *gg.Context
	faces map[float64]font.Face
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(width, height), faces: map[float64]font.Face{}}
}

func (s *ImageSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *ImageSurface) FillRect(r Rect, c color.RGBA) {
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.W(), r.H())
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ImageSurface) FillCircle(center Point, radius float64, c color.RGBA) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ImageSurface) FillPolygon(points []Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	s.dc.NewSubPath()
	for _, p := range points {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ImageSurface) DrawImage(img image.Image, r Rect) {
	if nil == img {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	s.dc.Push()
	s.dc.Translate(r.Min.X, r.Min.Y)
	s.dc.Scale(r.W()/float64(b.Dx()), r.H()/float64(b.Dy()))
	s.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	s.dc.Pop()
}

func (s *ImageSurface) StrokeLine(from, to Point, width float64, c color.RGBA) {
	s.dc.SetLineWidth(width)
	s.dc.SetColor(c)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.dc.Stroke()
}

// Text draws s with its baseline at x, y in the built in HUD font.
func (s *ImageSurface) Text(x, y, size float64, c color.Color, text string) error {
	face, ok := s.faces[size]
	if !ok {
		f, err := loadHUDFont()
		if nil != err {
			return errors.Wrap(err, "unable to parse hud font")
		}
		face = truetype.NewFace(f, &truetype.Options{Size: size})
		s.faces[size] = face
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawString(text, x, y)
	return nil
}

func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ImageSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
