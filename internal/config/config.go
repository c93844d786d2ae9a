package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Config struct {
	Beatmap string

	ColumnWidth float64
	NoteSize    float64
	Height      float64
	Rate        float64
	ScrollTime  float64
	Grace       float64

	Style         string
	NoteImage     string
	NoteColor     string
	HoldBodyColor string
	HoldCapColor  string

	Output      string
	FramesDir   string
	FPS         int
	Start       time.Duration
	End         time.Duration
	FramePeriod time.Duration

	Watch     bool
	SessionDB string

	LogLevel string
	LogFile  string
}

// New returns the kingpin application with every flag bound to c. Each flag
// can also be set with a MANIAVIEW_ environment variable.
func New(c *Config) *kingpin.Application {
	app := kingpin.New("maniaview", "Preview an osu!mania beatmap in the terminal or as PNG frames.")
	app.Version("0.3.0")
	app.DefaultEnvars()

	app.Arg("beatmap", ".osu beatmap file").Required().ExistingFileVar(&c.Beatmap)

	app.Flag("column-width", "Column width in pixels").Default("100").Short('w').Float64Var(&c.ColumnWidth)
	app.Flag("note-size", "Note size in pixels").Default("100").Short('n').Float64Var(&c.NoteSize)
	app.Flag("height", "Track height in pixels").Default("800").Short('H').Float64Var(&c.Height)
	app.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64Var(&c.Rate)
	app.Flag("scroll-time", "Milliseconds of notes visible at once, lower is faster").Default("1000").Short('s').Float64Var(&c.ScrollTime)
	app.Flag("grace", "Milliseconds notes stay selected past the hit line, negative derives it from the note size").Default("-1").Float64Var(&c.Grace)

	app.Flag("style", "Note style: circle, rectangle, arrow or image").Default("rectangle").Short('S').EnumVar(&c.Style, "circle", "rectangle", "arrow", "image")
	app.Flag("note-image", "PNG or JPEG used by the image style").ExistingFileVar(&c.NoteImage)
	app.Flag("note-color", "Note color, #rrggbb or a color name").Default("#00aeff").StringVar(&c.NoteColor)
	app.Flag("hold-body-color", "Hold body color").Default("#c8c8c8").StringVar(&c.HoldBodyColor)
	app.Flag("hold-cap-color", "Hold cap color").Default("#00aeff").StringVar(&c.HoldCapColor)

	app.Flag("output", "Where to draw: terminal or png").Default("terminal").Short('o').EnumVar(&c.Output, "terminal", "png")
	app.Flag("frames-dir", "Directory for png frames").Default("_frames").StringVar(&c.FramesDir)
	app.Flag("fps", "Frames per second of png output").Default("60").IntVar(&c.FPS)
	app.Flag("start", "Time to start at").Default("0s").DurationVar(&c.Start)
	app.Flag("end", "Time to stop png output at, 0 for the end of the beatmap").Default("0s").DurationVar(&c.End)
	app.Flag("frame-period", "Terminal render frame period").Default("16ms").Short('p').DurationVar(&c.FramePeriod)

	app.Flag("watch", "Reload the beatmap when the file changes").Default("false").BoolVar(&c.Watch)
	app.Flag("session-db", "sqlite file remembering the last position per beatmap, empty to disable").Default("sessions.db").StringVar(&c.SessionDB)

	app.Flag("log-level", "debug, info, warn or error").Default("info").StringVar(&c.LogLevel)
	app.Flag("log-file", "Rotated log file").Default("").StringVar(&c.LogFile)
	return app
}

// Parse loads envFiles into the environment, without overriding variables
// already set, then parses args. Missing env files are skipped.
func Parse(args []string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); nil != err && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "unable to load %v", f)
		}
	}

	c := &Config{}
	if _, err := New(c).Parse(args); nil != err {
		return nil, err
	}
	if c.Style == "image" && c.NoteImage == "" {
		return nil, errors.New("--style=image needs --note-image")
	}
	if c.FPS <= 0 {
		return nil, errors.Errorf("fps %v must be positive", c.FPS)
	}
	return c, nil
}
