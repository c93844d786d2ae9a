package render

import (
	"image"
	"math"
	"testing"

	"git.lost.host/meutraa/maniaview/internal/game"
	"git.lost.host/meutraa/maniaview/internal/layout"
	"git.lost.host/meutraa/maniaview/internal/theme"
)

func testBuilder(shape theme.NoteShape) *Builder {
	style := theme.DefaultStyle(100)
	style.Shape = shape
	return &Builder{
		Layout: layout.Layout{ColumnWidth: 100, NoteSize: 100, TrackHeight: 600},
		Style:  style,
	}
}

func mapper(t *testing.T, current float64) layout.Mapper {
	m, err := layout.NewMapper(current, 1000, 600)
	if nil != err {
		t.Fatal(err)
	}
	return m
}

func TestTapScenario(t *testing.T) {
	b := testBuilder(theme.Circle{})
	note := game.Note{Column: 0, Time: 1000}

	for current, expected := range map[float64]float64{0: 0, 1000: 600, 2000: 1200} {
		prims := b.Note(note, mapper(t, current))
		if len(prims) != 1 {
			t.Fatalf("expected a single primitive, got %v", prims)
		}
		circle, ok := prims[0].(FilledCircle)
		if !ok || circle.Center.Y != expected || circle.Center.X != 50 || circle.Radius != 50 {
			t.Log("current ", current)
			t.Log("out     ", prims[0])
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func notePrims(prims []Primitive) []Primitive {
	out := []Primitive{}
	for _, p := range prims {
		if r := p.Info().Role; r != RoleLane && r != RoleHitLine {
			out = append(out, p)
		}
	}
	return out
}

func TestBuildClipsOffTrack(t *testing.T) {
	b := testBuilder(theme.Circle{})
	visible := [][]game.Note{{{Column: 0, Time: 1000}}, {}, {}, {}}

	if n := len(notePrims(b.Build(4, visible, mapper(t, 0)))); n != 1 {
		t.Fatal("top of track: expected 1 note primitive, got", n)
	}
	if n := len(notePrims(b.Build(4, visible, mapper(t, 1000)))); n != 1 {
		t.Fatal("hit line: expected 1 note primitive, got", n)
	}
	if n := len(notePrims(b.Build(4, visible, mapper(t, 2000)))); n != 0 {
		t.Fatal("below the track: expected no note primitive, got", n)
	}
	if n := len(notePrims(b.Build(4, visible, mapper(t, -1000)))); n != 0 {
		t.Fatal("above the track: expected no note primitive, got", n)
	}
}

func TestHoldScenario(t *testing.T) {
	b := testBuilder(theme.Circle{})
	note := game.Note{Column: 1, Time: 500, TimeEnd: 1500, Hold: true}
	prims := notePrims(b.Build(4, [][]game.Note{{}, {note}, {}, {}}, mapper(t, 1000)))
	if len(prims) != 3 {
		t.Fatalf("expected body, cap and head, got %v", prims)
	}

	body, ok := prims[0].(FilledRect)
	if !ok || body.Role != RoleHoldBody || body.Rect.Min.Y != 300 || body.Rect.Max.Y != 900 {
		t.Log("body", prims[0])
		t.Fail()
	}
	if body.Color != b.Style.HoldBodyColor || body.Rect.W() != 80 || body.Rect.Min.X != 110 {
		t.Log("body style", body)
		t.Fail()
	}
	tail, ok := prims[1].(FilledRect)
	if !ok || tail.Role != RoleHoldCap || tail.Rect.Min.Y != 300 || tail.Color != b.Style.HoldCapColor {
		t.Log("cap", prims[1])
		t.Fail()
	}
	head, ok := prims[2].(FilledCircle)
	if !ok || head.Role != RoleHoldHead || head.Center.Y != 900 || head.Color != b.Style.Color {
		t.Log("head", prims[2])
		t.Fail()
	}
	if !(head.Center.Y > tail.Rect.Min.Y) {
		t.Log("head should be further along the track than the tail")
		t.Fail()
	}
}

func TestBuildOrder(t *testing.T) {
	b := testBuilder(theme.Circle{})
	visible := [][]game.Note{
		{{Column: 0, Time: 1200}},
		{{Column: 1, Time: 1100, TimeEnd: 1600, Hold: true}},
	}
	prims := b.Build(2, visible, mapper(t, 1000))
	roles := []Role{}
	for _, p := range prims {
		roles = append(roles, p.Info().Role)
	}
	expected := []Role{RoleLane, RoleLane, RoleHitLine, RoleHoldBody, RoleHoldCap, RoleNote, RoleHoldHead}
	if len(roles) != len(expected) {
		t.Fatalf("roles %v, expected %v", roles, expected)
	}
	for i := range expected {
		if roles[i] != expected[i] {
			t.Fatalf("roles %v, expected %v", roles, expected)
		}
	}
}

func TestShapes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	m := mapper(t, 0)
	note := game.Note{Column: 2, Time: 500}

	rect := testBuilder(theme.Rectangle{Width: 60, Height: 20}).Note(note, m)[0].(FilledRect)
	if rect.Rect != RectCenter(Point{250, 300}, 60, 20) {
		t.Log("rectangle", rect)
		t.Fail()
	}

	arrow := testBuilder(theme.Arrow{Width: 40, Height: 30}).Note(note, m)[0].(FilledPolygon)
	tip := arrow.Points[0]
	if len(arrow.Points) != 3 || tip != (Point{250, 315}) {
		t.Log("arrow", arrow)
		t.Fail()
	}
	for _, p := range arrow.Points[1:] {
		if !(p.Y < tip.Y) {
			t.Log("arrow tip must point toward the hit line", arrow.Points)
			t.Fail()
		}
	}

	pic := testBuilder(theme.Image{Handle: img}).Note(note, m)[0].(ImageRect)
	if pic.Image != image.Image(img) || pic.Rect != RectCenter(Point{250, 300}, 100, 100) {
		t.Log("image", pic)
		t.Fail()
	}
}

func TestExtent(t *testing.T) {
	if e := testBuilder(theme.Circle{}).Extent(); e != 100 {
		t.Log("circle extent", e)
		t.Fail()
	}
	if e := testBuilder(theme.Rectangle{Width: 10, Height: 250}).Extent(); math.Abs(e-250) > 0 {
		t.Log("rectangle extent", e)
		t.Fail()
	}
}
