package parser

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"git.lost.host/meutraa/maniaview/internal/testdata"
)

func TestDecodeMania(t *testing.T) {
	p := &DefaultParser{}
	b, err := p.Decode(testdata.Mania())
	if nil != err {
		t.Fatal(err)
	}
	if b.Mode != beatmap.ModeMania || b.Keys() != 4 {
		t.Fatal("mode", b.Mode, "keys", b.KeyCount)
	}
	if b.Metadata.Title != "Test Song" || b.Metadata.Version != "4K Normal" || b.Metadata.Audio != "audio.mp3" {
		t.Fatal("metadata", b.Metadata)
	}

	expected := []beatmap.HitObject{
		{Column: 0, Time: 1000},
		{Column: 1, Time: 1000},
		{Column: 3, Time: 500, Duration: 1000, Kind: beatmap.KindHold},
		{Column: 2, Time: 2000},
		{Column: 0, Time: 750},
		{Column: 1, Time: 3000, Duration: 250, Kind: beatmap.KindHold},
	}
	if len(b.HitObjects) != len(expected) {
		t.Fatal("hit objects", b.HitObjects)
	}
	for i := range expected {
		if b.HitObjects[i] != expected[i] {
			t.Log("index   ", i)
			t.Log("out     ", b.HitObjects[i])
			t.Log("expected", expected[i])
			t.Fail()
		}
	}
}

func TestDecodeStandard(t *testing.T) {
	b, err := (&DefaultParser{}).Decode(testdata.Standard())
	if nil != err {
		t.Fatal(err)
	}
	if b.Mode != beatmap.ModeStandard || len(b.HitObjects) != 1 {
		t.Fatal("mode", b.Mode, "objects", b.HitObjects)
	}
}

var decodeErrorTests = []string{
	"",
	"not a beatmap",
	"osu file format vX",
	"osu file format v14\n[General]\nMode: x\n",
	"osu file format v14\n[Difficulty]\nCircleSize:four\n",
	"osu file format v14\n[HitObjects]\n64,192\n",
	"osu file format v14\n[HitObjects]\n64,192,abc,1,0\n",
	"osu file format v14\n[HitObjects]\n64,192,100,128,0,xyz:0:0:0:0:\n",
	"osu file format v14\n[HitObjects]\n64,192,NaN,1,0\n",
	"osu file format v14\n[HitObjects]\n64,192,100,128,0,Inf:0:0:0:0:\n",
	"osu file format v14\n[HitObjects]\n+Inf,192,100,1,0\n",
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range decodeErrorTests {
		if _, err := (&DefaultParser{}).Decode(strings.NewReader(in)); nil == err {
			t.Log("expected an error for", in)
			t.Fail()
		}
	}
}

func TestDecodeEarlyVersionOffset(t *testing.T) {
	in := "osu file format v4\n[General]\nMode: 3\n[Difficulty]\nCircleSize:7\n[HitObjects]\n36,192,100,128,0,400:0:0:0:0:\n"
	b, err := (&DefaultParser{}).Decode(strings.NewReader(in))
	if nil != err {
		t.Fatal(err)
	}
	h := b.HitObjects[0]
	if h.Time != 124 || h.Duration != 300 || h.Column != 0 {
		t.Fatal("hit object", h)
	}
}
