package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func beatmapFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "map.osu")
	if err := os.WriteFile(path, []byte("osu file format v14\n"), 0644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	path := beatmapFile(t)
	c, err := Parse([]string{path})
	if nil != err {
		t.Fatal(err)
	}
	if c.Beatmap != path || c.ColumnWidth != 100 || c.ScrollTime != 1000 || c.Rate != 1 ||
		c.Output != "terminal" || c.Style != "rectangle" || c.FramePeriod != 16*time.Millisecond {
		t.Fatal("config", c)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{"-s", "450", "--rate=1.5", "--style=arrow", "--output=png", "--fps", "30", "--start=2s", beatmapFile(t)})
	if nil != err {
		t.Fatal(err)
	}
	if c.ScrollTime != 450 || c.Rate != 1.5 || c.Style != "arrow" || c.Output != "png" || c.FPS != 30 || c.Start != 2*time.Second {
		t.Fatal("config", c)
	}
}

func TestParseEnvFile(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(env, []byte("MANIAVIEW_SCROLL_TIME=700\n"), 0644); nil != err {
		t.Fatal(err)
	}
	defer os.Unsetenv("MANIAVIEW_SCROLL_TIME")

	c, err := Parse([]string{beatmapFile(t)}, env)
	if nil != err {
		t.Fatal(err)
	}
	if c.ScrollTime != 700 {
		t.Fatal("scroll time", c.ScrollTime)
	}
}

func TestParseMissingEnvFile(t *testing.T) {
	if _, err := Parse([]string{beatmapFile(t)}, filepath.Join(t.TempDir(), ".env")); nil != err {
		t.Fatal(err)
	}
}

func TestParseMalformedEnvFile(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(env, []byte("MANIAVIEW_RATE=\"1.5\n"), 0644); nil != err {
		t.Fatal(err)
	}
	defer os.Unsetenv("MANIAVIEW_RATE")

	if _, err := Parse([]string{beatmapFile(t)}, env); nil == err {
		t.Fatal("expected an error for an unterminated quote")
	}
}

func TestParseErrors(t *testing.T) {
	path := beatmapFile(t)
	for _, args := range [][]string{
		{},
		{"missing.osu"},
		{"--style=hexagon", path},
		{"--style=image", path},
		{"--fps=0", path},
	} {
		if _, err := Parse(args); nil == err {
			t.Log("expected an error for", args)
			t.Fail()
		}
	}
}
