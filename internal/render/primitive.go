package render

import (
	"image"
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

type Rect struct {
	Min, Max Point
}

// RectCenter builds a rect of size w x h centered on c.
func RectCenter(c Point, w, h float64) Rect {
	return Rect{
		Min: Point{c.X - w/2, c.Y - h/2},
		Max: Point{c.X + w/2, c.Y + h/2},
	}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Role says what part of the playfield a primitive draws.
type Role uint8

const (
	RoleLane Role = iota
	RoleHitLine
	RoleNote
	RoleHoldHead
	RoleHoldBody
	RoleHoldCap
)

type Tag struct {
	Role   Role
	Column int
}

// Primitive is one of FilledRect, FilledCircle, FilledPolygon, ImageRect or
// Line.
type Primitive interface {
	Bounds() Rect
	Info() Tag
}

type FilledRect struct {
	Tag
	Rect  Rect
	Color color.RGBA
}

type FilledCircle struct {
	Tag
	Center Point
	Radius float64
	Color  color.RGBA
}

type FilledPolygon struct {
	Tag
	Points []Point
	Color  color.RGBA
}

// ImageRect draws a borrowed image stretched over Rect.
type ImageRect struct {
	Tag
	Rect  Rect
	Image image.Image
}

type Line struct {
	Tag
	From, To Point
	Width    float64
	Color    color.RGBA
}

func (p FilledRect) Bounds() Rect { return p.Rect }

func (p FilledCircle) Bounds() Rect { return RectCenter(p.Center, 2*p.Radius, 2*p.Radius) }

func (p FilledPolygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		r = r.Union(Rect{Min: pt, Max: pt})
	}
	return r
}

func (p ImageRect) Bounds() Rect { return p.Rect }

func (p Line) Bounds() Rect {
	return Rect{Min: p.From, Max: p.From}.Union(Rect{Min: p.To, Max: p.To})
}

func (t Tag) Info() Tag { return t }
