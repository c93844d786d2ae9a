package game

import (
	"math"
	"sort"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"github.com/pkg/errors"
)

// MaxKeys is the largest supported column count.
const MaxKeys = 18

type span struct {
	start, end int
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Chart is the read-only note model of a mania beatmap. All notes live in a
// single slice ordered by column, then time. Each column owns a contiguous
// range of it.
type Chart struct {
	Notes     []Note
	NoteCount int
	HoldCount int
	Keys      int

	columns  []span
	duration float64

	// holds lists the Notes index of every hold, grouped by column in time
	// order. holdSpans[col] is the range of holds owned by a column.
	holds     []int
	holdSpans []span
	// holdMaxEnd[i] is the latest TimeEnd of the holds in
	// holds[holdSpans[col].start:i+1], non decreasing within a column.
	holdMaxEnd []float64

	// last start time window per column, absolute indices
	active []span
}

// NewChart builds the note model. Columns are sorted by time with a stable
// sort so notes sharing a time keep their input order.
func NewChart(b *beatmap.Beatmap) (*Chart, error) {
	if nil == b {
		return nil, errors.Wrap(ErrInvalidBeatmap, "nil beatmap")
	}
	if b.Mode != beatmap.ModeMania {
		return nil, errors.Wrapf(ErrUnsupportedMode, "mode %v", b.Mode)
	}
	keys := b.Keys()
	if keys < 1 || keys > MaxKeys {
		return nil, errors.Wrapf(ErrInvalidBeatmap, "key count %v outside [1, %v]", b.KeyCount, MaxKeys)
	}

	buckets := make([][]Note, keys)
	holds := 0
	for i, h := range b.HitObjects {
		if h.Column < 0 || h.Column >= keys {
			return nil, errors.Wrapf(ErrInvalidBeatmap, "hit object %v: column %v outside [0, %v)", i, h.Column, keys)
		}
		if !finite(h.Time) {
			return nil, errors.Wrapf(ErrInvalidBeatmap, "hit object %v: time %v", i, h.Time)
		}
		note := Note{Column: h.Column, Time: h.Time}
		if h.Kind == beatmap.KindHold {
			if !(h.Duration >= 0) || !finite(h.Duration) {
				return nil, errors.Wrapf(ErrInvalidBeatmap, "hit object %v: hold duration %vms", i, h.Duration)
			}
			note.Hold = true
			note.TimeEnd = h.End()
			holds++
		}
		buckets[h.Column] = append(buckets[h.Column], note)
	}

	c := &Chart{
		Notes:      make([]Note, 0, len(b.HitObjects)),
		NoteCount:  len(b.HitObjects),
		HoldCount:  holds,
		Keys:       keys,
		columns:    make([]span, keys),
		holds:      make([]int, 0, holds),
		holdSpans:  make([]span, keys),
		holdMaxEnd: make([]float64, 0, holds),
		active:     make([]span, keys),
	}
	for col, notes := range buckets {
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Time < notes[j].Time
		})
		start, holdStart := len(c.Notes), len(c.holds)
		for i, n := range notes {
			if n.End() > c.duration {
				c.duration = n.End()
			}
			if !n.Hold {
				continue
			}
			end := n.TimeEnd
			if len(c.holds) > holdStart && c.holdMaxEnd[len(c.holdMaxEnd)-1] > end {
				end = c.holdMaxEnd[len(c.holdMaxEnd)-1]
			}
			c.holds = append(c.holds, start+i)
			c.holdMaxEnd = append(c.holdMaxEnd, end)
		}
		c.Notes = append(c.Notes, notes...)
		c.columns[col] = span{start, len(c.Notes)}
		c.holdSpans[col] = span{holdStart, len(c.holds)}
		c.active[col] = span{start, start}
	}
	return c, nil
}

// Column returns the time ordered notes of one column.
func (c *Chart) Column(column int) []Note {
	s := c.columns[column]
	return c.Notes[s.start:s.end:s.end]
}

// Duration is the time the last note leaves the hit line.
func (c *Chart) Duration() float64 {
	return c.duration
}

// Active returns the notes of a column that started inside the last Visible
// window, as indices into Column(column). Holds begun before the window are
// not counted.
func (c *Chart) Active(column int) (int, int) {
	s, a := c.columns[column], c.active[column]
	return a.start - s.start, a.end - s.start
}
