package main

import (
	"path/filepath"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type watcher struct {
	Beatmaps chan *beatmap.Beatmap

	fs   *fsnotify.Watcher
	done chan struct{}
}

// watch re-parses the beatmap whenever it is written. The directory is
// watched so editors that replace the file are seen too.
func (p *Program) watch() (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, errors.Wrap(err, "unable to create watcher")
	}
	file, err := filepath.Abs(p.Config.Beatmap)
	if nil != err {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(file)); nil != err {
		fw.Close()
		return nil, errors.Wrapf(err, "unable to watch %v", filepath.Dir(file))
	}

	w := &watcher{
		Beatmaps: make(chan *beatmap.Beatmap, 1),
		fs:       fw,
		done:     make(chan struct{}),
	}
	go func() {
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != file || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				b, err := p.Parser.Parse(file)
				if nil != err {
					p.Log.Warn("unable to parse changed beatmap", zap.Error(err))
					continue
				}
				// keep only the newest
				select {
				case <-w.Beatmaps:
				default:
				}
				w.Beatmaps <- b
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				p.Log.Warn("watcher error", zap.Error(err))
			case <-w.done:
				return
			}
		}
	}()
	return w, nil
}

func (w *watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
