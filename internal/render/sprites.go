package render

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/draw"
)

// shape is one filled polygon in unit coordinates (0..1 across the sprite).
type shape struct {
	points []draw.Point
	color  color.RGBA
}

var (
	playerShapes = []shape{
		{points: []draw.Point{{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, color: colornames.Lime},
	}
	enemyShapes = []shape{
		// Inset hull with a cap pointing up.
		{points: []draw.Point{{X: 1.0 / 6, Y: 1.0 / 6}, {X: 5.0 / 6, Y: 1.0 / 6}, {X: 5.0 / 6, Y: 5.0 / 6}, {X: 1.0 / 6, Y: 5.0 / 6}}, color: colornames.Red},
		{points: []draw.Point{{X: 0.5, Y: 0}, {X: 1.0 / 6, Y: 1.0 / 6}, {X: 5.0 / 6, Y: 1.0 / 6}}, color: colornames.Yellow},
	}
	projectileShapes = []shape{
		{points: []draw.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, color: colornames.Yellow},
	}
)

// buildSprite rasterizes shapes into a transparent image of the given size.
func buildSprite(size config.Size, shapes []shape) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	w, h := float64(size.Width), float64(size.Height)
	for _, s := range shapes {
		pts := make([]draw.Point, len(s.points))
		for i, p := range s.points {
			pts[i] = draw.Point{X: p.X * w, Y: p.Y * h}
		}
		draw.FillPolygon(img, pts, s.color)
	}
	return img
}
