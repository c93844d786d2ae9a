package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"git.lost.host/meutraa/maniaview/internal/render"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	hudWidth   = 34
	seekStep   = 1000.0
	scrollStep = 100.0
	speedStep  = 0.1
)

// Preview plays the beatmap in the terminal until esc or q is pressed.
func (p *Program) Preview() error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			p.Log.Warn("unable to close keyboard", zap.Error(err))
		}
	}()

	var reloads <-chan *beatmap.Beatmap
	if p.Config.Watch {
		w, err := p.watch()
		if nil != err {
			return err
		}
		defer w.Close()
		reloads = w.Beatmaps
	}

	r := &render.TerminalRenderer{}
	if err := r.Init(); nil != err {
		return errors.Wrap(err, "unable to enter raw mode")
	}
	defer r.Deinit()

	fit := func() error {
		size := p.player.RequiredSize()
		return r.Fit(size[0], size[1], hudWidth)
	}
	if err := fit(); nil != err {
		return errors.Wrap(err, "unable to get terminal size")
	}

	paused, resume := false, p.player.Speed()
	var loopErr error
	r.RenderLoop(p.Config.FramePeriod, func(now time.Time) bool {
		select {
		case b := <-reloads:
			if err := p.reload(b); nil != err {
				p.Log.Warn("reload rejected", zap.Error(err))
				p.message(r, "reload failed")
			} else {
				p.Log.Info("beatmap reloaded", zap.Int("objects", len(b.HitObjects)))
				p.message(r, "reloaded")
				if err := fit(); nil != err {
					loopErr = err
					return false
				}
			}
		default:
		}

		for i := len(keys); i > 0; i-- {
			key := <-keys
			if nil != key.Err {
				loopErr = key.Err
				return false
			}
			switch {
			case key.Key == keyboard.KeyEsc, key.Rune == 'q':
				return false
			case key.Key == keyboard.KeySpace:
				if paused {
					p.player.SetSpeed(resume)
				} else {
					resume = p.player.Speed()
					p.player.SetSpeed(0)
				}
				paused = !paused
			case key.Key == keyboard.KeyArrowLeft:
				p.player.SetCurrentTime(p.player.CurrentTime() - seekStep)
			case key.Key == keyboard.KeyArrowRight:
				p.player.SetCurrentTime(p.player.CurrentTime() + seekStep)
			case key.Key == keyboard.KeyArrowUp:
				p.setScroll(r, p.player.ScrollTime()+scrollStep)
			case key.Key == keyboard.KeyArrowDown:
				p.setScroll(r, p.player.ScrollTime()-scrollStep)
			case key.Rune == '[', key.Rune == ']':
				step := speedStep
				if key.Rune == '[' {
					step = -step
				}
				if paused {
					resume += step
				} else {
					p.player.SetSpeed(p.player.Speed() + step)
				}
			case key.Rune == 'r':
				p.player.ResetTime()
			case key.Rune == 's':
				if err := p.setStyle(p.player, p.nextStyle()); nil != err {
					p.Log.Warn("style rejected", zap.Error(err))
				}
			}
		}

		p.player.Render(r)
		speed := p.player.Speed()
		if paused {
			speed = resume
		}
		p.hud(r, paused, speed)
		return true
	})
	if paused {
		p.player.SetSpeed(resume)
	}
	return loopErr
}

func (p *Program) setScroll(r *render.TerminalRenderer, ms float64) {
	if err := p.player.SetScrollTime(ms); nil != err {
		p.message(r, "scroll time must be positive")
	}
}

func (p *Program) message(r *render.TerminalRenderer, s string) {
	cols, rows := r.Size()
	r.AddDecoration(cols+2, rows-2, s, 90)
}

func (p *Program) hud(r *render.TerminalRenderer, paused bool, speed float64) {
	cols, _ := r.Size()
	col := cols + 2
	chart := p.player.Chart()

	state := "playing"
	if paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%.30s", p.beatmap.Metadata.Title),
		fmt.Sprintf("%.30s", p.beatmap.Metadata.Version),
		"",
		fmt.Sprintf("time   %9.0f ms", p.player.CurrentTime()),
		fmt.Sprintf("length %9.0f ms", p.player.Duration()),
		fmt.Sprintf("speed  %9.2f x", speed),
		fmt.Sprintf("scroll %9.0f ms", p.player.ScrollTime()),
		fmt.Sprintf("style  %9v", p.style),
		fmt.Sprintf("state  %9v", state),
		"",
		fmt.Sprintf("notes  %9v", chart.NoteCount),
		fmt.Sprintf("holds  %9v", chart.HoldCount),
	}
	for i := 0; i < chart.Keys; i++ {
		lo, hi := chart.Active(i)
		lines = append(lines, fmt.Sprintf("col %2v %4v-%-4v", i, lo, hi))
	}
	for i, l := range lines {
		r.Text(i+1, col, l)
	}
}
