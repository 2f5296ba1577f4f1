package draw

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// FillRect fills r (clipped to dst) with c.
func FillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(dst, x, y, c)
		}
	}
}

// FillCircle fills a disc of radius r centered at (cx, cy). A pixel is covered when
// its center lies inside the disc.
func FillCircle(dst *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	r2 := r * r
	yStart := int(math.Floor(cy - r))
	yEnd := int(math.Ceil(cy + r))
	xStart := int(math.Floor(cx - r))
	xEnd := int(math.Ceil(cx + r))

	for y := yStart; y <= yEnd; y++ {
		dy := float64(y) + 0.5 - cy
		for x := xStart; x <= xEnd; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				blendPixel(dst, x, y, c)
			}
		}
	}
}

// FillPolygon fills a polygon using the scanline algorithm, sampling pixel centers.
func FillPolygon(dst *image.RGBA, points []Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	// Find bounding box
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	var intersections []float64
	n := len(points)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections = intersections[:0]

		// Find intersections with all edges
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(intersections)

		// Fill between pairs of intersections
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				blendPixel(dst, x, y, c)
			}
		}
	}
}
