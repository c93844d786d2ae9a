package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	blockSym = "█"
	noteSym  = "⬤"
	arrowSym = "▼"
	imageSym = "▣"
	lineSym  = "─"
)

type cell struct {
	sym   string
	color color.RGBA
}

// TerminalRenderer is a Surface that rasterises primitives onto terminal
// cells using 24 bit ANSI colors.
type TerminalRenderer struct {
	Out io.Writer

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration

	cols, rows     int
	scaleX, scaleY float64
	cells          []cell
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *TerminalRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *TerminalRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *TerminalRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

// Fit sizes the cell grid to the terminal, leaving reserve columns free on
// the right, and scales a width x height pixel playfield onto it.
func (r *TerminalRenderer) Fit(width, height float64, reserve int) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	if cols-reserve < 1 {
		reserve = 0
	}
	r.Resize(cols-reserve, rows, width, height)
	return nil
}

// Resize sets the grid to cols x rows cells showing a width x height playfield.
func (r *TerminalRenderer) Resize(cols, rows int, width, height float64) {
	r.cols, r.rows = cols, rows
	r.scaleX = float64(cols) / width
	r.scaleY = float64(rows) / height
	r.cells = make([]cell, cols*rows)
}

func (r *TerminalRenderer) Size() (int, int) {
	return r.cols, r.rows
}

func (r *TerminalRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *TerminalRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per period until it returns false.
func (r *TerminalRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		r.Clear()
		cont = render(now)
		r.Flush()

		time.Sleep(time.Until(deadline))
	}
}

// Clear empties the cell grid.
func (r *TerminalRenderer) Clear() {
	for i := range r.cells {
		r.cells[i] = cell{}
	}
}

func (r *TerminalRenderer) toCell(p Point) (int, int) {
	return int(math.Floor(p.X * r.scaleX)), int(math.Floor(p.Y * r.scaleY))
}

func (r *TerminalRenderer) set(col, row int, sym string, c color.RGBA) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.cells[row*r.cols+col] = cell{sym: sym, color: c}
}

// fillCells sets every cell whose center satisfies inside, or the cell under
// fallback when the shape is smaller than a cell.
func (r *TerminalRenderer) fillCells(bounds Rect, fallback Point, sym string, c color.RGBA, inside func(Point) bool) {
	c0, r0 := r.toCell(bounds.Min)
	c1, r1 := r.toCell(bounds.Max)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			center := Point{(float64(col) + 0.5) / r.scaleX, (float64(row) + 0.5) / r.scaleY}
			if inside(center) {
				r.set(col, row, sym, c)
				filled = true
			}
		}
	}
	if !filled {
		col, row := r.toCell(fallback)
		r.set(col, row, sym, c)
	}
}

func (r *TerminalRenderer) FillRect(rect Rect, c color.RGBA) {
	r.fillCells(rect, rect.Center(), blockSym, c, func(p Point) bool {
		return p.X >= rect.Min.X && p.X < rect.Max.X && p.Y >= rect.Min.Y && p.Y < rect.Max.Y
	})
}

func (r *TerminalRenderer) FillCircle(center Point, radius float64, c color.RGBA) {
	bounds := RectCenter(center, 2*radius, 2*radius)
	r.fillCells(bounds, center, noteSym, c, func(p Point) bool {
		dx, dy := p.X-center.X, p.Y-center.Y
		return dx*dx+dy*dy <= radius*radius
	})
}

func (r *TerminalRenderer) FillPolygon(points []Point, c color.RGBA) {
	poly := FilledPolygon{Points: points}
	bounds := poly.Bounds()
	r.fillCells(bounds, bounds.Center(), arrowSym, c, func(p Point) bool {
		return insidePolygon(points, p)
	})
}

func (r *TerminalRenderer) DrawImage(img image.Image, rect Rect) {
	c := color.RGBA{255, 255, 255, 255}
	if nil != img {
		b := img.Bounds()
		c = color.RGBAModel.Convert(img.At((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)).(color.RGBA)
	}
	r.fillCells(rect, rect.Center(), imageSym, c, func(p Point) bool {
		return p.X >= rect.Min.X && p.X < rect.Max.X && p.Y >= rect.Min.Y && p.Y < rect.Max.Y
	})
}

func (r *TerminalRenderer) StrokeLine(from, to Point, width float64, c color.RGBA) {
	c0, r0 := r.toCell(from)
	c1, r1 := r.toCell(to)
	steps := int(math.Max(math.Abs(float64(c1-c0)), math.Abs(float64(r1-r0))))
	if steps == 0 {
		r.set(c0, r0, lineSym, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		if row >= r.rows {
			row = r.rows - 1
		}
		r.set(col, row, lineSym, c)
	}
}

// Text writes s at a 0 based cell position, above the playfield.
func (r *TerminalRenderer) Text(row, col int, s string) {
	r.Fill(row, col, s)
}

// Flush writes the grid and any text to the terminal.
func (r *TerminalRenderer) Flush() {
	var grid strings.Builder
	for row := 0; row < r.rows; row++ {
		grid.WriteString("\033[")
		grid.WriteString(strconv.Itoa(row + 1))
		grid.WriteString(";1H")
		for col := 0; col < r.cols; col++ {
			c := r.cells[row*r.cols+col]
			if c.sym == "" {
				grid.WriteString(" ")
				continue
			}
			writeColor(&grid, c.color, c.sym)
		}
	}
	r.tickDecorations()
	grid.WriteString(r.buffer.String())
	r.buffer.Reset()
	io.WriteString(r.out(), grid.String())
}

func (r *TerminalRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row + 1))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column + 1))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *TerminalRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row + 1))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column + 1))
	r.buffer.WriteString("H")
	writeColor(&r.buffer, c, message)
}

func writeColor(b *strings.Builder, c color.RGBA, message string) {
	b.WriteString("\033[38;2;")
	b.WriteString(strconv.FormatInt(int64(c.R), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.G), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.B), 10))
	b.WriteString("m")
	b.WriteString(message)
	b.WriteString("\033[0m")
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(points []Point, p Point) bool {
	in := false
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
