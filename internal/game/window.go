package game

import "sort"

// Visible returns, for every column, the notes on the track somewhere in
// [current-grace, current+scroll], in time order. Taps match on their time,
// holds on any part of [Time, TimeEnd].
//
// Notes starting inside the window are found by bisecting start times. Holds
// begun earlier come from the per column hold index, so a long hold never
// drags the taps under it into the scan.
func (c *Chart) Visible(current, scroll, grace float64) [][]Note {
	from, to := current-grace, current+scroll
	out := make([][]Note, len(c.columns))
	for col, s := range c.columns {
		n := s.end - s.start
		lo := s.start + sort.Search(n, func(i int) bool {
			return c.Notes[s.start+i].Time >= from
		})
		hi := s.start + sort.Search(n, func(i int) bool {
			return c.Notes[s.start+i].Time > to
		})
		if hi < lo {
			hi = lo
		}
		c.active[col] = span{lo, hi}

		spanning := c.spanning(col, from, to)
		if len(spanning) == 0 {
			out[col] = c.Notes[lo:hi:hi]
			continue
		}
		out[col] = append(spanning, c.Notes[lo:hi]...)
	}
	return out
}

// spanning returns the holds of a column that start before from and are
// still on the track at from.
func (c *Chart) spanning(col int, from, to float64) []Note {
	hs := c.holdSpans[col]
	holds := c.holds[hs.start:hs.end]
	// first hold whose running end reaches the window
	first := sort.Search(len(holds), func(i int) bool {
		return c.holdMaxEnd[hs.start+i] >= from
	})
	var out []Note
	for _, idx := range holds[first:] {
		n := c.Notes[idx]
		if n.Time >= from {
			break
		}
		if n.Overlaps(from, to) {
			out = append(out, n)
		}
	}
	return out
}
