// Package postfx holds the full-screen post-processing stage: the Kage shader
// program for GPU presenters and a CPU rendition for presenters without a GPU.
package postfx

import (
	_ "embed"
	"image"
	"math"
	"time"
)

// ShaderSource is the Kage program applied to the presented frame. It reads
// the float uniform "Time" in seconds.
//
//go:embed vignette.kage
var ShaderSource []byte

// TimeUniform is the uniform name the shader reads elapsed time from.
const TimeUniform = "Time"

// Vignette parameters shared with the shader.
const (
	vignetteOuter = 0.8 // Distance from center where the image is fully dark
	vignetteInner = 0.5 // Distance from center where darkening starts
	waveFreq      = 10.0
	waveAmp       = 0.05
)

// Filter transforms a rendered frame in place before presentation.
type Filter interface {
	Apply(frame *image.RGBA, elapsed time.Duration)
}

// Passthrough leaves frames unchanged.
type Passthrough struct{}

// Apply implements Filter.
func (Passthrough) Apply(*image.RGBA, time.Duration) {}

// Vignette darkens the frame toward its corners and adds a time-varying red
// wave across x. The per-pixel falloff is cached for the last frame size.
type Vignette struct {
	size    image.Point
	falloff []float64
}

// NewVignette creates a CPU vignette filter.
func NewVignette() *Vignette {
	return &Vignette{}
}

// Apply implements Filter.
func (v *Vignette) Apply(frame *image.RGBA, elapsed time.Duration) {
	b := frame.Rect
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	v.prepare(w, h)

	t := elapsed.Seconds()
	wave := make([]float64, w)
	for x := range wave {
		u := (float64(x) + 0.5) / float64(w)
		wave[x] = math.Sin(t+u*waveFreq) * waveAmp * 255
	}

	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride:]
		for x := 0; x < w; x++ {
			f := v.falloff[y*w+x]
			i := x * 4
			row[i] = clampByte(float64(row[i])*f + wave[x])
			row[i+1] = clampByte(float64(row[i+1]) * f)
			row[i+2] = clampByte(float64(row[i+2]) * f)
		}
	}
}

func (v *Vignette) prepare(w, h int) {
	if v.size.X == w && v.size.Y == h {
		return
	}
	v.size = image.Pt(w, h)
	v.falloff = make([]float64, w*h)
	for y := 0; y < h; y++ {
		vy := (float64(y)+0.5)/float64(h) - 0.5
		for x := 0; x < w; x++ {
			vx := (float64(x)+0.5)/float64(w) - 0.5
			v.falloff[y*w+x] = smoothstep(vignetteOuter, vignetteInner, math.Hypot(vx, vy))
		}
	}
}

// smoothstep matches the GLSL/Kage builtin, including reversed edges.
func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	t = max(0, min(1, t))
	return t * t * (3 - 2*t)
}

func clampByte(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}
