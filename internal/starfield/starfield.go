// Package starfield provides the scrolling decorative background.
package starfield

import (
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/random"
)

// Starfield is a fixed set of falling stars that wrap from bottom to top.
type Starfield struct {
	width  int
	height int
	rng    random.Source
	stars  []object.Star
}

// New creates the configured number of stars at random positions.
func New(s config.Settings, rng random.Source) *Starfield {
	f := &Starfield{
		width:  s.Screen.Width,
		height: s.Screen.Height,
		rng:    rng,
		stars:  make([]object.Star, s.Stars.Count),
	}
	for i := range f.stars {
		f.stars[i] = object.Star{
			X:          float64(rng.IntRange(0, f.width)),
			Y:          float64(rng.IntRange(0, f.height)),
			Speed:      rng.IntRange(s.Stars.Speed.Min, s.Stars.Speed.Max),
			Brightness: uint8(rng.IntRange(s.Stars.Brightness.Min, s.Stars.Brightness.Max)),
		}
	}
	return f
}

// Advance moves every star down by its speed. Stars past the bottom edge wrap to
// the top with a new random column.
func (f *Starfield) Advance() {
	for i := range f.stars {
		st := &f.stars[i]
		st.Y += float64(st.Speed)
		if st.Y > float64(f.height) {
			st.Y = 0
			st.X = float64(f.rng.IntRange(0, f.width))
		}
	}
}

// Stars returns the star slice. Callers must not retain it across ticks.
func (f *Starfield) Stars() []object.Star {
	return f.stars
}
