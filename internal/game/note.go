package game

type Note struct {
	Column  int     // The chart column
	Time    float64 // The time the note should be hit, in ms
	TimeEnd float64 // The time a hold should be released, in ms
	Hold    bool
}

// End is the last moment the note occupies the track.
func (n Note) End() float64 {
	if n.Hold {
		return n.TimeEnd
	}
	return n.Time
}

// Overlaps reports whether the note is on the track at any point in [from, to].
func (n Note) Overlaps(from, to float64) bool {
	return n.Time <= to && n.End() >= from
}
