// Package raster composites the GP-Tag finder/timing grid, the circular
// orientation pattern, the corner spikes, and the reserved-area mirrored
// cells onto a square raster, per spec §4.5. All fills are hard-edged —
// deterministic anti-aliasing is disabled throughout, per spec §9.
package raster

import (
	"image"
	"image/color"
)

// White and Black are the only two colors the GP-Tag raster ever paints.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// colorFor maps a module/quadrant bit to its paint color. Callers decide
// which polarity convention applies at the call site (spec §4.4 module
// bits are 1=white/0=black; spec §4.5 quadrant and reserved-area bits are
// 1=black/0=white).
func colorFor(bit int, oneColor, zeroColor color.Color) color.Color {
	if bit != 0 {
		return oneColor
	}
	return zeroColor
}

// fillRect fills the half-open rectangle [x0,x1) x [y0,y1), clipped to
// img's bounds.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	b := img.Bounds()
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

// fillDisk fills every pixel within radius r (inclusive) of (cx,cy).
func fillDisk(img *image.RGBA, cx, cy, r int, c color.Color) {
	fillAnnularPieslice(img, cx, cy, r, 0, 360, c)
}

// fillPieslice fills every pixel within radius r of (cx,cy) whose angle,
// measured clockwise from the +x axis (matching image coordinates with
// +y downward), falls in [startDeg, endDeg).
func fillPieslice(img *image.RGBA, cx, cy, r int, startDeg, endDeg float64, c color.Color) {
	fillAnnularPieslice(img, cx, cy, r, startDeg, endDeg, c)
}

func fillAnnularPieslice(img *image.RGBA, cx, cy, r int, startDeg, endDeg float64, c color.Color) {
	b := img.Bounds()
	r2 := r * r
	y0, y1 := cy-r, cy+r
	x0, x1 := cx-r, cx+r
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 >= b.Max.Y {
		y1 = b.Max.Y - 1
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 >= b.Max.X {
		x1 = b.Max.X - 1
	}

	fullCircle := startDeg <= 0 && endDeg >= 360
	for y := y0; y <= y1; y++ {
		dy := y - cy
		for x := x0; x <= x1; x++ {
			dx := x - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			if !fullCircle && !angleInRange(dx, dy, startDeg, endDeg) {
				continue
			}
			img.Set(x, y, c)
		}
	}
}

func angleInRange(dx, dy int, startDeg, endDeg float64) bool {
	deg := clockwiseDegrees(dx, dy)
	return deg >= startDeg && deg < endDeg
}

// fillTriangle fills the closed triangle p0-p1-p2 using edge functions
// (no anti-aliasing: a pixel is filled iff its center lies on the
// non-negative side of all three edges, or the non-positive side of all
// three — i.e. strictly inside or on the boundary).
func fillTriangle(img *image.RGBA, p0, p1, p2 image.Point, c color.Color) {
	b := img.Bounds()
	minX, maxX := minInt(p0.X, p1.X, p2.X), maxInt(p0.X, p1.X, p2.X)
	minY, maxY := minInt(p0.Y, p1.Y, p2.Y), maxInt(p0.Y, p1.Y, p2.Y)
	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX >= b.Max.X {
		maxX = b.Max.X - 1
	}
	if maxY >= b.Max.Y {
		maxY = b.Max.Y - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if pointInTriangle(image.Pt(x, y), p0, p1, p2) {
				img.Set(x, y, c)
			}
		}
	}
}

func edgeSign(p, a, b image.Point) int {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func pointInTriangle(p, a, b, c image.Point) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// strokeEllipse draws a 1-pixel-wide outline of the circle of radius r
// centered at (cx,cy), used to clean up overlap artifacts at the outer
// boundary (spec §4.5 step 9).
func strokeEllipse(img *image.RGBA, cx, cy, r int, c color.Color) {
	b := img.Bounds()
	r2 := r * r
	rInner := r - 1
	r2Inner := rInner * rInner
	for y := cy - r; y <= cy+r; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dy := y - cy
		for x := cx - r; x <= cx+r; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := x - cx
			d2 := dx*dx + dy*dy
			if d2 <= r2 && d2 > r2Inner {
				img.Set(x, y, c)
			}
		}
	}
}

func minInt(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
