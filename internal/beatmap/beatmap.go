// Package beatmap is the parsed, format independent form of a beatmap as
// handed to the layout engine. Decoding lives in the parser package.
package beatmap

import "math"

type Mode uint8

const (
	ModeStandard Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	}
	return "unknown"
}

type Kind uint8

const (
	KindTap Kind = iota
	KindHold
)

type HitObject struct {
	Column   int
	Time     float64 // ms
	Duration float64 // ms, holds only
	Kind     Kind
}

// End is the time the object stops, equal to Time for taps.
func (h HitObject) End() float64 {
	if h.Kind == KindHold {
		return h.Time + h.Duration
	}
	return h.Time
}

type Metadata struct {
	Title   string
	Artist  string
	Creator string
	Version string
	Audio   string
}

type Beatmap struct {
	Mode       Mode
	KeyCount   float64 // CircleSize in mania
	HitObjects []HitObject
	Metadata   Metadata
}

// Keys is the column count as an integer.
func (b *Beatmap) Keys() int {
	return int(math.Round(b.KeyCount))
}

// ColumnFromX converts an osu!mania x coordinate (0-512) to a column index.
// The right edge belongs to the last column; anything else outside the
// playfield is left out of range for the note model to reject.
func ColumnFromX(x float64, keys int) int {
	if x == 512 {
		return keys - 1
	}
	return int(math.Floor(x * float64(keys) / 512))
}
