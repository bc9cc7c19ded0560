package animations

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip is a named track on a part's model. Time runs from 0 to Length
// seconds, and the sign of Speed decides which end playback heads for.
type Clip struct {
	Name   string
	length float64
	time   float64
	speed  float64
	layer  int

	tween   *gween.Tween
	playing bool
}

func NewClip(name string, length float64) *Clip {
	if length < 0 {
		length = 0
	}
	return &Clip{
		Name:   name,
		length: length,
		speed:  1,
	}
}

func (c *Clip) Length() float64 { return c.length }
func (c *Clip) Time() float64   { return c.time }
func (c *Clip) Speed() float64  { return c.speed }
func (c *Clip) Layer() int      { return c.layer }
func (c *Clip) IsPlaying() bool { return c.playing }

// SetTime moves the playhead. A running clip restarts its tween from here.
func (c *Clip) SetTime(t float64) {
	c.time = clamp(t, 0, c.length)
	if c.playing {
		c.restart()
	}
}

func (c *Clip) SetNormalizedTime(t float64) {
	c.SetTime(t * c.length)
}

func (c *Clip) NormalizedTime() float64 {
	if c.length == 0 {
		return 0
	}
	return c.time / c.length
}

func (c *Clip) SetSpeed(s float64) {
	c.speed = s
	if c.playing {
		c.restart()
	}
}

func (c *Clip) SetLayer(layer int) {
	c.layer = layer
}

// Play starts the tween toward the end implied by the current speed.
func (c *Clip) Play() {
	c.playing = true
	c.restart()
}

func (c *Clip) Stop() {
	c.playing = false
	c.tween = nil
}

// Update advances a playing clip by dt seconds.
func (c *Clip) Update(dt float64) {
	if !c.playing {
		return
	}
	if c.tween == nil {
		// already at the end, or holding at zero speed
		c.Stop()
		return
	}

	current, finished := c.tween.Update(float32(dt))
	c.time = clamp(float64(current), 0, c.length)
	if finished {
		c.finish()
	}
}

func (c *Clip) target() float64 {
	if c.speed < 0 {
		return 0
	}
	return c.length
}

func (c *Clip) restart() {
	end := c.target()
	distance := math.Abs(end - c.time)
	if c.speed == 0 || distance == 0 {
		c.tween = nil
		return
	}
	duration := distance / math.Abs(c.speed)
	c.tween = gween.New(float32(c.time), float32(end), float32(duration), ease.Linear)
}

func (c *Clip) finish() {
	c.time = c.target()
	c.playing = false
	c.tween = nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
