package render

import (
	"image/color"
	"math"

	"git.lost.host/meutraa/maniaview/internal/game"
	"git.lost.host/meutraa/maniaview/internal/layout"
	"git.lost.host/meutraa/maniaview/internal/theme"
)

const (
	holdBodyScale = 0.8 // of the note size
	holdCapScale  = 0.3 // of the body width
	hitLineWidth  = 2
)

// Builder turns visible notes into primitives. It never draws.
type Builder struct {
	Layout layout.Layout
	Style  theme.NoteStyle
	Theme  theme.Theme
}

func (b *Builder) theme() theme.Theme {
	if nil == b.Theme {
		return &theme.DefaultTheme{}
	}
	return b.Theme
}

// Extent is the tallest vertical size a single note primitive can have.
func (b *Builder) Extent() float64 {
	_, h := b.Style.Size(b.Layout.NoteSize)
	return math.Max(h, b.Layout.NoteSize)
}

// Track returns the lane backgrounds and the hit line.
func (b *Builder) Track(keys int) []Primitive {
	th := b.theme()
	height := b.Layout.TrackHeight
	prims := make([]Primitive, 0, keys+1)
	for i := 0; i < keys; i++ {
		x := b.Layout.ColumnX(i)
		prims = append(prims, FilledRect{
			Tag:   Tag{Role: RoleLane, Column: i},
			Rect:  Rect{Min: Point{x, 0}, Max: Point{x + b.Layout.ColumnWidth, height}},
			Color: th.Lane(i),
		})
	}
	y := height - hitLineWidth/2
	prims = append(prims, Line{
		Tag:   Tag{Role: RoleHitLine, Column: -1},
		From:  Point{0, y},
		To:    Point{b.Layout.ColumnWidth * float64(keys), y},
		Width: hitLineWidth,
		Color: th.HitLine(),
	})
	return prims
}

// Note returns the unclipped primitives of one note. Taps produce a single
// shape. Holds produce body, tail cap and head, in that order.
func (b *Builder) Note(n game.Note, m layout.Mapper) []Primitive {
	y := m.Position(n.Time)
	if !n.Hold {
		return []Primitive{b.shape(Tag{RoleNote, n.Column}, y, b.Style.Color)}
	}

	ye := m.Position(n.TimeEnd)
	bw := math.Min(b.Layout.NoteSize*holdBodyScale, b.Layout.ColumnWidth)
	x := b.Layout.CenterX(n.Column) - bw/2
	body := FilledRect{
		Tag:   Tag{RoleHoldBody, n.Column},
		Rect:  Rect{Min: Point{x, math.Min(y, ye)}, Max: Point{x + bw, math.Max(y, ye)}},
		Color: b.Style.HoldBodyColor,
	}
	tail := FilledRect{
		Tag:   Tag{RoleHoldCap, n.Column},
		Rect:  Rect{Min: Point{x, ye}, Max: Point{x + bw, ye + bw*holdCapScale}},
		Color: b.Style.HoldCapColor,
	}
	head := b.shape(Tag{RoleHoldHead, n.Column}, y, b.Style.Color)
	return []Primitive{body, tail, head}
}

func (b *Builder) shape(tag Tag, y float64, c color.RGBA) Primitive {
	center := Point{b.Layout.CenterX(tag.Column), y}
	size := b.Layout.NoteSize

	switch shape := b.Style.Shape.(type) {
	case theme.Rectangle:
		return FilledRect{Tag: tag, Rect: RectCenter(center, shape.Width, shape.Height), Color: c}
	case theme.Arrow:
		w, h := shape.Width/2, shape.Height/2
		return FilledPolygon{
			Tag: tag,
			Points: []Point{
				{center.X, center.Y + h}, // tip, toward the hit line
				{center.X - w, center.Y - h},
				{center.X + w, center.Y - h},
			},
			Color: c,
		}
	case theme.Image:
		return ImageRect{Tag: tag, Rect: RectCenter(center, size, size), Image: shape.Handle}
	}
	return FilledCircle{Tag: tag, Center: center, Radius: size / 2, Color: c}
}

// Build returns the full frame: track, then hold bodies and caps, then heads
// and taps. Notes whose primitives all fall outside the track are skipped.
func (b *Builder) Build(keys int, visible [][]game.Note, m layout.Mapper) []Primitive {
	prims := b.Track(keys)
	var front []Primitive
	for _, notes := range visible {
		for _, n := range notes {
			group := b.Note(n, m)
			if !b.onTrack(group) {
				continue
			}
			last := len(group) - 1
			prims = append(prims, group[:last]...)
			front = append(front, group[last])
		}
	}
	return append(prims, front...)
}

func (b *Builder) onTrack(group []Primitive) bool {
	r := group[0].Bounds()
	for _, p := range group[1:] {
		r = r.Union(p.Bounds())
	}
	return r.Max.Y >= 0 && r.Min.Y <= b.Layout.TrackHeight
}
