// Package clock keeps the playback position of a beatmap preview.
package clock

import "time"

type Option func(*Clock)

// WithNow replaces the wall clock used by Tick.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// Clock converts elapsed wall time into song time. It is not safe for
// concurrent use.
type Clock struct {
	current float64 // ms
	speed   float64
	now     func() time.Time
	last    time.Time
}

func New(opts ...Option) *Clock {
	c := &Clock{speed: 1, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.last = c.now()
	return c
}

// Advance moves song time by delta of wall time scaled by the speed.
func (c *Clock) Advance(delta time.Duration) {
	c.current += float64(delta) / float64(time.Millisecond) * c.speed
}

// Tick advances by the wall time elapsed since the previous Tick, Seek or
// Reset and returns the new song time.
func (c *Clock) Tick() float64 {
	now := c.now()
	c.Advance(now.Sub(c.last))
	c.last = now
	return c.current
}

func (c *Clock) Reset() {
	c.Seek(0)
}

// Seek jumps to ms. Going backwards is allowed.
func (c *Clock) Seek(ms float64) {
	c.current = ms
	c.last = c.now()
}

// SetSpeed accepts any multiplier. Zero freezes playback, negative values
// play in reverse.
func (c *Clock) SetSpeed(speed float64) {
	c.speed = speed
}

func (c *Clock) Speed() float64 {
	return c.speed
}

func (c *Clock) Current() float64 {
	return c.current
}
