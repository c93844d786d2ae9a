package main

import (
	"image"
	"time"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"git.lost.host/meutraa/maniaview/internal/config"
	"git.lost.host/meutraa/maniaview/internal/parser"
	"git.lost.host/meutraa/maniaview/internal/player"
	"git.lost.host/meutraa/maniaview/internal/session"
	"git.lost.host/meutraa/maniaview/internal/theme"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Program struct {
	Config *config.Config
	Log    *zap.Logger

	Parser parser.Parser
	Theme  *theme.DefaultTheme
	Store  session.Store

	beatmap   *beatmap.Beatmap
	player    *player.Player
	style     string
	noteImage image.Image
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{Alternate: true}

	b, err := p.Parser.Parse(p.Config.Beatmap)
	if nil != err {
		return err
	}
	p.Log.Info("beatmap loaded",
		zap.String("file", p.Config.Beatmap),
		zap.String("title", b.Metadata.Title),
		zap.String("version", b.Metadata.Version),
		zap.Int("objects", len(b.HitObjects)),
	)

	if p.Config.NoteImage != "" {
		p.noteImage, err = gg.LoadImage(p.Config.NoteImage)
		if nil != err {
			return errors.Wrapf(err, "unable to load note image %v", p.Config.NoteImage)
		}
	}

	p.style = p.Config.Style
	pl, err := p.newPlayer(b)
	if nil != err {
		return err
	}
	p.beatmap, p.player = b, pl
	p.player.SetCurrentTime(float64(p.Config.Start) / float64(time.Millisecond))

	if p.Config.SessionDB != "" && p.Config.Output == "terminal" {
		store, err := session.Open(p.Config.SessionDB)
		if nil != err {
			return err
		}
		p.Store = store
		p.resume()
	}
	return nil
}

func (p *Program) Deinit() {
	if nil == p.Store {
		return
	}
	err := p.Store.Save(p.beatmap, session.Session{
		Time:       p.player.CurrentTime(),
		Speed:      p.player.Speed(),
		ScrollTime: p.player.ScrollTime(),
		Style:      p.style,
	})
	if nil != err {
		p.Log.Warn("unable to save session", zap.Error(err))
	}
	if err := p.Store.Close(); nil != err {
		p.Log.Warn("unable to close session store", zap.Error(err))
	}
}

// resume restores the last session unless a start time was given.
func (p *Program) resume() {
	if p.Config.Start != 0 {
		return
	}
	s, ok, err := p.Store.Load(p.beatmap)
	if nil != err {
		p.Log.Warn("unable to load session", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	p.player.SetCurrentTime(s.Time)
	p.player.SetSpeed(s.Speed)
	if err := p.player.SetScrollTime(s.ScrollTime); nil != err {
		p.Log.Warn("ignoring saved scroll time", zap.Error(err))
	}
	if err := p.setStyle(p.player, s.Style); nil != err {
		p.Log.Warn("ignoring saved style", zap.Error(err))
	}
	p.Log.Info("session resumed", zap.Float64("time", s.Time))
}

// newPlayer builds a player for b with the configured layout and settings.
func (p *Program) newPlayer(b *beatmap.Beatmap) (*player.Player, error) {
	c := p.Config
	pl, err := player.New(b, c.ColumnWidth, c.NoteSize, c.Height,
		player.WithLogger(p.Log),
		player.WithTheme(p.Theme),
	)
	if nil != err {
		return nil, err
	}
	if err := p.setStyle(pl, p.style); nil != err {
		return nil, err
	}
	pl.SetSpeed(c.Rate)
	pl.SetGrace(c.Grace)
	if err := pl.SetScrollTime(c.ScrollTime); nil != err {
		return nil, err
	}
	return pl, nil
}

func (p *Program) setStyle(pl *player.Player, name string) error {
	var style theme.NoteStyle
	if name == "image" {
		if nil == p.noteImage {
			return errors.New("no note image loaded")
		}
		style = theme.DefaultStyle(p.Config.NoteSize)
		style.Shape = theme.Image{Handle: p.noteImage}
	} else {
		var err error
		if style, err = p.Theme.Style(name, p.Config.NoteSize); nil != err {
			return err
		}
	}

	var err error
	if style.Color, err = theme.ParseColor(p.Config.NoteColor); nil != err {
		return err
	}
	if style.HoldBodyColor, err = theme.ParseColor(p.Config.HoldBodyColor); nil != err {
		return err
	}
	if style.HoldCapColor, err = theme.ParseColor(p.Config.HoldCapColor); nil != err {
		return err
	}
	if err := pl.SetNoteStyle(style); nil != err {
		return err
	}
	p.style = name
	return nil
}

// nextStyle cycles through the preset styles, and the image one when loaded.
func (p *Program) nextStyle() string {
	styles := theme.Styles
	if nil != p.noteImage {
		styles = append(styles[:len(styles):len(styles)], "image")
	}
	for i, s := range styles {
		if s == p.style {
			return styles[(i+1)%len(styles)]
		}
	}
	return styles[0]
}

// reload swaps in a player for b keeping the current playback state.
func (p *Program) reload(b *beatmap.Beatmap) error {
	pl, err := p.newPlayer(b)
	if nil != err {
		return err
	}
	pl.SetCurrentTime(p.player.CurrentTime())
	pl.SetSpeed(p.player.Speed())
	if err := pl.SetScrollTime(p.player.ScrollTime()); nil != err {
		return err
	}
	p.beatmap, p.player = b, pl
	return nil
}
