package testdata

import (
	"io"
	"strings"
)

// Mania returns a small 4 key beatmap with taps and holds.
func Mania() io.Reader {
	return strings.NewReader(mania)
}

// Standard returns a beatmap in osu!standard mode.
func Standard() io.Reader {
	return strings.NewReader(standard)
}

const mania = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
Mode: 3

[Metadata]
Title:Test Song
Artist:Test Artist
Creator:meutraa
Version:4K Normal

[Difficulty]
HPDrainRate:8
CircleSize:4
OverallDifficulty:8
ApproachRate:5

[TimingPoints]
0,500,4,2,0,60,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
192,192,1000,1,0,0:0:0:0:
448,192,500,128,0,1500:0:0:0:0:
320,192,2000,5,0,0:0:0:0:
64,192,750,1,0,0:0:0:0:
192,192,3000,128,0,3250:0:0:0:0:
`

const standard = `osu file format v14

[General]
Mode: 0

[Difficulty]
CircleSize:4

[HitObjects]
256,192,1000,1,0,0:0:0:0:
`
