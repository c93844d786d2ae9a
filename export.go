package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"git.lost.host/meutraa/maniaview/internal/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var background = color.RGBA{R: 16, G: 16, B: 16, A: 255}

// Export writes one png per frame to the frames directory. Frames are
// planned in order on the player and painted in parallel.
func (p *Program) Export() error {
	c := p.Config
	if p.player.Speed() <= 0 {
		return errors.Errorf("rate %v must be positive to export", p.player.Speed())
	}
	if err := os.MkdirAll(c.FramesDir, 0o755); nil != err {
		return errors.Wrapf(err, "unable to create %v", c.FramesDir)
	}

	end := float64(c.End) / float64(time.Millisecond)
	if end <= 0 {
		end = p.player.Duration() + 1000
	}
	step := time.Second / time.Duration(c.FPS)
	size := p.player.RequiredSize()
	w, h := int(math.Ceil(size[0])), int(math.Ceil(size[1]))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	surfaces := make(chan *render.ImageSurface, maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		surfaces <- render.NewImageSurface(w, h)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed error
	fail := func(err error) {
		mu.Lock()
		if nil == failed {
			failed = err
		}
		mu.Unlock()
	}
	stopped := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return nil != failed
	}
	var finished atomic.Uint64
	startTime := time.Now()

	frame := 0
	for ; p.player.CurrentTime() <= end; frame++ {
		if stopped() {
			break
		}
		prims := p.player.Frame()
		current := p.player.CurrentTime()
		name := filepath.Join(c.FramesDir, fmt.Sprintf("fr%05d.png", frame))

		wg.Add(1)
		sem <- struct{}{}
		s := <-surfaces
		go func(s *render.ImageSurface) {
			defer wg.Done()
			defer func() {
				<-sem
				surfaces <- s
			}()
			s.Clear(background)
			render.Paint(s, prims)
			if err := s.Text(8, 16, 12, color.White, fmt.Sprintf("%.0f ms", current)); nil != err {
				fail(err)
				return
			}
			if err := s.SavePNG(name); nil != err {
				fail(errors.Wrapf(err, "unable to write %v", name))
				return
			}
			if f := finished.Add(1); f%uint64(c.FPS*10) == 0 {
				p.Log.Info("frames written",
					zap.Uint64("frames", f),
					zap.Duration("average", time.Since(startTime)/time.Duration(f)),
				)
			}
		}(s)

		p.player.Advance(step)
	}
	wg.Wait()

	if nil != failed {
		return failed
	}
	p.Log.Info("export finished",
		zap.Int("frames", frame),
		zap.String("dir", c.FramesDir),
		zap.Duration("took", time.Since(startTime)),
	)
	return nil
}
