package object

import (
	"image/color"
	"math"
)

// Effect is a non-colliding explosion that expands and fades linearly.
type Effect struct {
	Center    Vec
	Age       int // Ticks since spawn
	Duration  int // Ticks until expiry
	MaxRadius float64
	Color     color.RGBA // Base color, alpha comes from Alpha()
}

// NewEffect creates an effect at age zero.
func NewEffect(center Vec, duration int, maxRadius float64, c color.RGBA) *Effect {
	return &Effect{
		Center:    center,
		Duration:  duration,
		MaxRadius: maxRadius,
		Color:     c,
	}
}

// Tick ages the effect by one tick.
func (e *Effect) Tick() {
	e.Age++
}

// Expired reports whether the effect has outlived its duration.
func (e *Effect) Expired() bool {
	return e.Age > e.Duration
}

// Radius returns the current visible radius, growing from 0 to MaxRadius.
func (e *Effect) Radius() int {
	return int(math.Round(e.MaxRadius * e.progress()))
}

// Alpha returns the current opacity, fading from 255 to 0.
func (e *Effect) Alpha() uint8 {
	a := 255 - int(math.Round(255*e.progress()))
	if a < 0 {
		a = 0
	}
	return uint8(a)
}

func (e *Effect) progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return float64(e.Age) / float64(e.Duration)
}
