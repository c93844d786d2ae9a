package parser

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/maniaview/internal/beatmap"
	"github.com/pkg/errors"
)

const (
	// Hit object type bit of a mania hold
	typeHold = 1 << 7

	// Files older than v5 have their times shifted
	earlyVersionOffset = 24
)

type section int

const (
	secNone section = iota
	secGeneral
	secMetadata
	secDifficulty
	secHitObjects
)

// DefaultParser reads the .osu text format. Only what the layout engine
// needs is kept: mode, key count, metadata and hit objects.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*beatmap.Beatmap, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	b, err := p.Decode(f)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}
	return b, nil
}

func (p *DefaultParser) Decode(r io.Reader) (*beatmap.Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	version := -1
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		v, ok := strings.CutPrefix(strings.ToLower(line), "osu file format v")
		if !ok {
			return nil, errors.Errorf("invalid header %q", line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if nil != err {
			return nil, errors.Wrapf(err, "invalid version in header %q", line)
		}
		version = n
		break
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	if version < 0 {
		return nil, errors.New("empty beatmap")
	}

	offset := 0.0
	if version < 5 {
		offset = earlyVersionOffset
	}

	b := &beatmap.Beatmap{}
	sec := secNone
	var objects [][]string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(line) {
			case "[general]":
				sec = secGeneral
			case "[metadata]":
				sec = secMetadata
			case "[difficulty]":
				sec = secDifficulty
			case "[hitobjects]":
				sec = secHitObjects
			default:
				sec = secNone
			}
			continue
		}

		switch sec {
		case secGeneral:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "mode":
				m, err := strconv.Atoi(v)
				if nil != err {
					return nil, errors.Wrapf(err, "invalid mode %q", v)
				}
				b.Mode = beatmap.Mode(m)
			case "audiofilename":
				b.Metadata.Audio = v
			}
		case secMetadata:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "title":
				b.Metadata.Title = v
			case "artist":
				b.Metadata.Artist = v
			case "creator":
				b.Metadata.Creator = v
			case "version":
				b.Metadata.Version = v
			}
		case secDifficulty:
			k, v := splitKeyVal(line)
			if strings.EqualFold(k, "circlesize") {
				cs, err := strconv.ParseFloat(v, 64)
				if nil != err {
					return nil, errors.Wrapf(err, "invalid circle size %q", v)
				}
				b.KeyCount = cs
			}
		case secHitObjects:
			// columns depend on the key count, which may come later
			objects = append(objects, strings.Split(line, ","))
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}

	keys := b.Keys()
	for i, parts := range objects {
		h, err := hitObject(parts, keys, offset)
		if nil != err {
			return nil, errors.Wrapf(err, "hit object %v", i)
		}
		b.HitObjects = append(b.HitObjects, h)
	}
	return b, nil
}

// number parses a finite float.
func number(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("%v is not a finite number", f)
	}
	return f, nil
}

// hitObject parses x,y,time,type,hitSound[,endTime:hitSample].
func hitObject(parts []string, keys int, offset float64) (beatmap.HitObject, error) {
	if len(parts) < 5 {
		return beatmap.HitObject{}, errors.Errorf("expected at least 5 fields, got %v", len(parts))
	}
	x, err := number(parts[0])
	if nil != err {
		return beatmap.HitObject{}, errors.Wrap(err, "x")
	}
	t, err := number(parts[2])
	if nil != err {
		return beatmap.HitObject{}, errors.Wrap(err, "time")
	}
	flags, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if nil != err {
		return beatmap.HitObject{}, errors.Wrap(err, "type")
	}

	h := beatmap.HitObject{
		Column: beatmap.ColumnFromX(x, keys),
		Time:   t + offset,
	}
	if flags&typeHold != 0 && len(parts) >= 6 {
		end := parts[5]
		if i := strings.Index(end, ":"); i >= 0 {
			end = end[:i]
		}
		e, err := number(end)
		if nil != err {
			return beatmap.HitObject{}, errors.Wrap(err, "end time")
		}
		h.Kind = beatmap.KindHold
		h.Duration = e + offset - h.Time
	}
	return h, nil
}

func splitKeyVal(line string) (string, string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}
