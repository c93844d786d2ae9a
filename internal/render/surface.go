package render

import (
	"image"
	"image/color"
)

// Surface is an immediate mode drawing target owned by the caller.
type Surface interface {
	FillRect(r Rect, c color.RGBA)
	FillCircle(center Point, radius float64, c color.RGBA)
	FillPolygon(points []Point, c color.RGBA)
	DrawImage(img image.Image, r Rect)
	StrokeLine(from, to Point, width float64, c color.RGBA)
}

// Paint draws prims onto s in order.
func Paint(s Surface, prims []Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case FilledRect:
			s.FillRect(p.Rect, p.Color)
		case FilledCircle:
			s.FillCircle(p.Center, p.Radius, p.Color)
		case FilledPolygon:
			s.FillPolygon(p.Points, p.Color)
		case ImageRect:
			s.DrawImage(p.Image, p.Rect)
		case Line:
			s.StrokeLine(p.From, p.To, p.Width, p.Color)
		}
	}
}

// Offset shifts everything drawn on a surface by X, Y.
type Offset struct {
	Surface
	X, Y float64
}

func (o Offset) move(p Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

func (o Offset) moveRect(r Rect) Rect { return Rect{o.move(r.Min), o.move(r.Max)} }

func (o Offset) FillRect(r Rect, c color.RGBA) { o.Surface.FillRect(o.moveRect(r), c) }

func (o Offset) FillCircle(center Point, radius float64, c color.RGBA) {
	o.Surface.FillCircle(o.move(center), radius, c)
}

func (o Offset) FillPolygon(points []Point, c color.RGBA) {
	moved := make([]Point, len(points))
	for i, p := range points {
		moved[i] = o.move(p)
	}
	o.Surface.FillPolygon(moved, c)
}

func (o Offset) DrawImage(img image.Image, r Rect) { o.Surface.DrawImage(img, o.moveRect(r)) }

func (o Offset) StrokeLine(from, to Point, width float64, c color.RGBA) {
	o.Surface.StrokeLine(o.move(from), o.move(to), width, c)
}
