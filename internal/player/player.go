// Package player drives the layout engine for one mania beatmap: it owns the
// note model, the playback clock and the note style, and turns them into
// primitives on every frame.
package player

import (
	"time"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"git.lost.host/meutraa/maniaview/internal/clock"
	"git.lost.host/meutraa/maniaview/internal/game"
	"git.lost.host/meutraa/maniaview/internal/layout"
	"git.lost.host/meutraa/maniaview/internal/render"
	"git.lost.host/meutraa/maniaview/internal/theme"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultScrollTime = 1000.0

type Option func(*Player)

func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if nil != l {
			p.log = l
		}
	}
}

// WithNow sets the wall clock read by Render.
func WithNow(now func() time.Time) Option {
	return func(p *Player) {
		p.clockOpts = append(p.clockOpts, clock.WithNow(now))
	}
}

func WithTheme(t theme.Theme) Option {
	return func(p *Player) {
		p.builder.Theme = t
	}
}

// Player is not safe for concurrent use. It belongs to the frame loop.
type Player struct {
	chart   *game.Chart
	clock   *clock.Clock
	builder render.Builder
	scroll  float64 // ms visible on the track
	grace   float64 // ms, < 0 means derived from the note extent
	log     *zap.Logger

	clockOpts []clock.Option
}

// New builds a player for a mania beatmap. Other modes fail with
// game.ErrUnsupportedMode, malformed notes with game.ErrInvalidBeatmap and
// non positive sizes with layout.ErrInvalidConfiguration.
func New(b *beatmap.Beatmap, columnWidth, noteSize, height float64, opts ...Option) (*Player, error) {
	l := layout.Layout{ColumnWidth: columnWidth, NoteSize: noteSize, TrackHeight: height}
	if err := l.Validate(); nil != err {
		return nil, err
	}
	chart, err := game.NewChart(b)
	if nil != err {
		return nil, err
	}

	p := &Player{
		chart: chart,
		builder: render.Builder{
			Layout: l,
			Style:  theme.DefaultStyle(noteSize),
		},
		scroll: DefaultScrollTime,
		grace:  -1,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.clock = clock.New(p.clockOpts...)

	p.log.Debug("player created",
		zap.Stringer("mode", b.Mode),
		zap.Int("keys", chart.Keys),
		zap.Int("notes", chart.NoteCount),
		zap.Int("holds", chart.HoldCount),
	)
	return p, nil
}

func (p *Player) reject(err error) error {
	p.log.Warn("configuration rejected", zap.Error(err))
	return err
}

// SetNoteStyle swaps the style used for every note. An invalid style is
// rejected and the previous one kept.
func (p *Player) SetNoteStyle(style theme.NoteStyle) error {
	if err := style.Validate(); nil != err {
		return p.reject(err)
	}
	p.builder.Style = style
	return nil
}

func (p *Player) NoteStyle() theme.NoteStyle {
	return p.builder.Style
}

// RequiredSize is the [width, height] in pixels of the playfield.
func (p *Player) RequiredSize() [2]float64 {
	return p.builder.Layout.RequiredSize(p.chart.Keys)
}

func (p *Player) SetSpeed(speed float64) {
	p.clock.SetSpeed(speed)
}

func (p *Player) Speed() float64 {
	return p.clock.Speed()
}

// SetScrollTime sets how many ms of notes are on the track at once. Values
// <= 0 are rejected and the previous duration stays in effect.
func (p *Player) SetScrollTime(ms float64) error {
	if !(ms > 0) {
		return p.reject(errors.Wrapf(layout.ErrInvalidConfiguration, "scroll time %v must be positive", ms))
	}
	p.scroll = ms
	return nil
}

func (p *Player) ScrollTime() float64 {
	return p.scroll
}

// SetGrace fixes how long taps stay selected after passing the hit line. A
// negative value derives it from the note size on every frame.
func (p *Player) SetGrace(ms float64) {
	p.grace = ms
}

func (p *Player) setLayout(l layout.Layout) error {
	if err := l.Validate(); nil != err {
		return p.reject(err)
	}
	p.builder.Layout = l
	return nil
}

func (p *Player) SetColumnWidth(px float64) error {
	l := p.builder.Layout
	l.ColumnWidth = px
	return p.setLayout(l)
}

func (p *Player) SetNoteSize(px float64) error {
	l := p.builder.Layout
	l.NoteSize = px
	return p.setLayout(l)
}

func (p *Player) SetTrackHeight(px float64) error {
	l := p.builder.Layout
	l.TrackHeight = px
	return p.setLayout(l)
}

func (p *Player) Layout() layout.Layout {
	return p.builder.Layout
}

func (p *Player) KeyCount() int {
	return p.chart.Keys
}

// Duration is the time the last note leaves the hit line, in ms.
func (p *Player) Duration() float64 {
	return p.chart.Duration()
}

func (p *Player) Chart() *game.Chart {
	return p.chart
}

func (p *Player) ResetTime() {
	p.clock.Reset()
}

func (p *Player) SetCurrentTime(ms float64) {
	p.clock.Seek(ms)
}

func (p *Player) CurrentTime() float64 {
	return p.clock.Current()
}

// Advance moves playback by delta of wall time, scaled by the speed.
func (p *Player) Advance(delta time.Duration) {
	p.clock.Advance(delta)
}

func (p *Player) currentGrace(m layout.Mapper) float64 {
	if p.grace >= 0 {
		return p.grace
	}
	return m.Span(p.builder.Extent())
}

// Frame returns the primitives for the current time without moving the
// clock.
func (p *Player) Frame() []render.Primitive {
	// scroll is only ever set to a positive value
	m, _ := layout.NewMapper(p.clock.Current(), p.scroll, p.builder.Layout.TrackHeight)
	visible := p.chart.Visible(m.Current, m.Scroll, p.currentGrace(m))
	return p.builder.Build(p.chart.Keys, visible, m)
}

// Render advances the clock by the wall time since the last frame and paints
// the frame on s.
func (p *Player) Render(s render.Surface) {
	p.clock.Tick()
	render.Paint(s, p.Frame())
}

// RenderAt is Render with the playfield's top left corner at x, y.
func (p *Player) RenderAt(s render.Surface, x, y float64) {
	p.Render(render.Offset{Surface: s, X: x, Y: y})
}
