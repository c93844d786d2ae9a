package game

import (
	"errors"
	"math"
	"testing"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
)

func tap(column int, time float64) beatmap.HitObject {
	return beatmap.HitObject{Column: column, Time: time}
}

func hold(column int, time, end float64) beatmap.HitObject {
	return beatmap.HitObject{Column: column, Time: time, Duration: end - time, Kind: beatmap.KindHold}
}

func mania(keys float64, objects ...beatmap.HitObject) *beatmap.Beatmap {
	return &beatmap.Beatmap{Mode: beatmap.ModeMania, KeyCount: keys, HitObjects: objects}
}

func TestNewChartBuckets(t *testing.T) {
	chart, err := NewChart(mania(4,
		tap(2, 900),
		hold(0, 500, 1500),
		tap(0, 100),
		tap(3, 300),
		tap(0, 1200),
	))
	if nil != err {
		t.Fatal(err)
	}

	expected := [][]Note{
		{{Column: 0, Time: 100}, {Column: 0, Time: 500, TimeEnd: 1500, Hold: true}, {Column: 0, Time: 1200}},
		{},
		{{Column: 2, Time: 900}},
		{{Column: 3, Time: 300}},
	}
	for col, notes := range expected {
		out := chart.Column(col)
		if len(out) != len(notes) {
			t.Fatalf("column %v: got %v notes, expected %v", col, len(out), len(notes))
		}
		for i := range notes {
			if out[i] != notes[i] {
				t.Log("column  ", col, i)
				t.Log("out     ", out[i])
				t.Log("expected", notes[i])
				t.Fail()
			}
		}
	}
	if chart.NoteCount != 5 || chart.HoldCount != 1 || chart.Keys != 4 {
		t.Log("counts", chart.NoteCount, chart.HoldCount, chart.Keys)
		t.Fail()
	}
	if chart.Duration() != 1500 {
		t.Log("duration", chart.Duration())
		t.Fail()
	}
}

func TestNewChartStableTies(t *testing.T) {
	chart, err := NewChart(mania(2,
		hold(1, 400, 800),
		tap(1, 400),
		hold(1, 400, 600),
	))
	if nil != err {
		t.Fatal(err)
	}
	out := chart.Column(1)
	if len(out) != 3 || out[0].TimeEnd != 800 || out[1].Hold || out[2].TimeEnd != 600 {
		t.Log("out", out)
		t.Fail()
	}
}

var chartErrorTests = []struct {
	Beatmap  *beatmap.Beatmap
	Expected error
}{
	{nil, ErrInvalidBeatmap},
	{&beatmap.Beatmap{Mode: beatmap.ModeStandard, KeyCount: 4}, ErrUnsupportedMode},
	{&beatmap.Beatmap{Mode: beatmap.ModeTaiko, KeyCount: 4}, ErrUnsupportedMode},
	{mania(0), ErrInvalidBeatmap},
	{mania(19), ErrInvalidBeatmap},
	{mania(4, tap(4, 100)), ErrInvalidBeatmap},
	{mania(4, tap(-1, 100)), ErrInvalidBeatmap},
	{mania(4, hold(1, 1000, 900)), ErrInvalidBeatmap},
	{mania(4, tap(1, math.NaN())), ErrInvalidBeatmap},
	{mania(4, tap(1, math.Inf(-1))), ErrInvalidBeatmap},
	{mania(4, hold(1, math.NaN(), 900)), ErrInvalidBeatmap},
	{mania(4, beatmap.HitObject{Column: 1, Time: 100, Duration: math.NaN(), Kind: beatmap.KindHold}), ErrInvalidBeatmap},
	{mania(4, beatmap.HitObject{Column: 1, Time: 100, Duration: math.Inf(1), Kind: beatmap.KindHold}), ErrInvalidBeatmap},
	{mania(1,
		hold(0, 0, 10000),
		beatmap.HitObject{Column: 0, Time: 100, Duration: math.NaN(), Kind: beatmap.KindHold},
		tap(0, 200),
	), ErrInvalidBeatmap},
}

func TestNewChartErrors(t *testing.T) {
	for i, test := range chartErrorTests {
		chart, err := NewChart(test.Beatmap)
		if nil != chart || !errors.Is(err, test.Expected) {
			t.Log("case    ", i)
			t.Log("err     ", err)
			t.Log("expected", test.Expected)
			t.Fail()
		}
	}
}

func TestNewChartZeroLengthHold(t *testing.T) {
	chart, err := NewChart(mania(4, hold(1, 1000, 1000)))
	if nil != err {
		t.Fatal(err)
	}
	if n := chart.Column(1)[0]; !n.Hold || n.End() != 1000 {
		t.Log("note", n)
		t.Fail()
	}
}
