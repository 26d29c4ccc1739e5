package raster

import (
	"image"
	"image/color"

	"github.com/gp-tag/gptag-encoder/grid"
)

// quadrant is one entry of the annulus quadrant table (spec §4.5 step 7):
// the angular span [StartDeg, EndDeg) and the two bits it encodes.
type quadrant struct {
	StartDeg, EndDeg     float64
	MiddleBit, InnerBit int
}

// quadrants is the fixed annulus quadrant table, angles measured
// clockwise from the +x axis in image coordinates.
var quadrants = [4]quadrant{
	{StartDeg: 0, EndDeg: 90, MiddleBit: 1, InnerBit: 1},
	{StartDeg: 90, EndDeg: 180, MiddleBit: 1, InnerBit: 0},
	{StartDeg: 180, EndDeg: 270, MiddleBit: 0, InnerBit: 1},
	{StartDeg: 270, EndDeg: 360, MiddleBit: 0, InnerBit: 0},
}

// Render composites the full GP-Tag raster for module size U: the outer
// disk and corner spikes, the two-ring annulus quadrant pattern, the
// 21x21 data grid, and the reserved-area mirrored cells.
//
// The erase disks run before the corner spikes are painted, not after,
// matching original_source/src/encoder/tag_encoder.py: a spike tip
// intrudes into the RInner disk, and that intrusion is what the
// snapshot at RInner (below) captures and later restores over the
// annulus quadrant fill. Painting the spikes first would leave RInner
// entirely white by the time the snapshot is taken, making the
// restore step a no-op.
//
// The annulus uses three radii, not the two spec §4.5 names in the
// abbreviated description: RInner (15U) bounds the snapshot/restore disk
// that the data grid is painted over, RMid (16U, spec's "R_mid") is the
// outer edge of the inner-bit pieslice, and an additional RMidOuter
// (RMid+U = 17U) is the outer edge of the middle-bit pieslice. Without
// this third radius the inner-bit ring would have zero width and could
// never be sampled — see DESIGN.md.
func Render(g grid.Grid, reservedBits []byte, reservedBitCount int, u int) *image.RGBA {
	rOuter := 18 * u
	rMidOuter := 17 * u
	rMid := 16 * u
	rInner := 15 * u

	side := 2 * rOuter
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	origin := rOuter

	fillRect(img, 0, 0, side, side, White)
	fillDisk(img, origin, origin, rOuter, Black)

	fillDisk(img, origin, origin, rMidOuter, White)
	fillDisk(img, origin, origin, rMid, White)
	paintSpikes(img, origin, rOuter, u)

	snapshot, snapX0, snapY0 := captureDisk(img, origin, origin, rInner)

	for _, q := range quadrants {
		fillPieslice(img, origin, origin, rMidOuter, q.StartDeg, q.EndDeg, colorFor(q.MiddleBit, Black, White))
		fillPieslice(img, origin, origin, rMid, q.StartDeg, q.EndDeg, colorFor(q.InnerBit, Black, White))
	}

	restoreDisk(img, snapshot, snapX0, snapY0, origin, origin, rInner)
	strokeEllipse(img, origin, origin, rOuter, Black)

	paintDataGrid(img, g, origin, u)
	paintReservedArea(img, reservedBits, reservedBitCount, origin, u)

	return img
}

// paintSpikes paints the 4 triangular corner spikes: a tip at each of
// the image's four corners, joined to the two nearest border-midpoints
// of the 21x21 grid's bounding square (spec §4.5 step 3).
func paintSpikes(img *image.RGBA, origin, rOuter, u int) {
	half := (21 * u) / 2
	tips := [4]image.Point{
		{X: origin + rOuter, Y: origin - rOuter},
		{X: origin - rOuter, Y: origin - rOuter},
		{X: origin - rOuter, Y: origin + rOuter},
		{X: origin + rOuter, Y: origin + rOuter},
	}
	borderMid := [4]image.Point{
		{X: origin + half, Y: origin},
		{X: origin, Y: origin - half},
		{X: origin - half, Y: origin},
		{X: origin, Y: origin + half},
	}
	for i := 0; i < 4; i++ {
		fillTriangle(img, tips[i], borderMid[i], borderMid[(i+1)%4], Black)
	}
}

// captureDisk copies the square bounding box of the disk of radius r
// centered at (cx,cy) into a fresh image, for later circular restore.
func captureDisk(img *image.RGBA, cx, cy, r int) (snapshot *image.RGBA, x0, y0 int) {
	x0, y0 = cx-r, cy-r
	rect := image.Rect(0, 0, 2*r+1, 2*r+1)
	snap := image.NewRGBA(rect)
	for y := 0; y <= 2*r; y++ {
		for x := 0; x <= 2*r; x++ {
			snap.Set(x, y, img.At(x0+x, y0+y))
		}
	}
	return snap, x0, y0
}

// restoreDisk pastes back the pixels within radius r of (cx,cy) from a
// snapshot captured by captureDisk. Pixels in the bounding square but
// outside the circle are left untouched, matching a circular-masked
// paste.
func restoreDisk(img *image.RGBA, snapshot *image.RGBA, snapX0, snapY0, cx, cy, r int) {
	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		dy := y - cy
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			img.Set(x, y, snapshot.At(x-snapX0, y-snapY0))
		}
	}
}

// paintDataGrid paints the 21x21 module grid, each module as a U x U
// pixel block, 1=white 0=black (spec §4.4/§4.5 step 10).
func paintDataGrid(img *image.RGBA, g grid.Grid, origin, u int) {
	start := origin - floorDiv(grid.Size*u, 2)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c := colorFor(g.At(x, y), White, Black)
			px, py := start+x*u, start+y*u
			fillRect(img, px, py, px+u, py+u, c)
		}
	}
}

// paintReservedArea paints the first ReservedAreaBits cell pairs from
// the reserved-payload bit string, one bit per mirrored pair; both cells
// of a pair get the same color. Remaining pairs are left as background
// (spec §4.5 step 11).
func paintReservedArea(img *image.RGBA, bits []byte, bitCount int, origin, u int) {
	start := fullGridStart(origin, u)

	n := bitCount
	if n > len(grid.ReservedAreaPairs) {
		n = len(grid.ReservedAreaPairs)
	}
	for i := 0; i < n; i++ {
		pair := grid.ReservedAreaPairs[i]
		bit := bitAt(bits, i)
		c := colorFor(bit, Black, White)
		paintCell(img, start, u, pair.A[0], pair.A[1], c)
		paintCell(img, start, u, pair.B[0], pair.B[1], c)
	}
}

// fullGridStart is the pixel coordinate of cell (0,0) of the 36-cell
// reserved-area coordinate system: floor(origin - 18U - U/2), computed
// as one integer floor-division so the U/2 half-cell offset rounds down
// even when U is odd.
func fullGridStart(origin, u int) int {
	return floorDiv(2*origin-grid.ReservedAreaCells*u-u, 2)
}

// paintCell fills cell (cx,cy) of a U-pixel-per-cell coordinate system
// whose origin (cell (0,0)'s top-left pixel) is at (start,start).
func paintCell(img *image.RGBA, start, u, cx, cy int, c color.Color) {
	px, py := start+cx*u, start+cy*u
	fillRect(img, px, py, px+u, py+u, c)
}

// bitAt returns bit i (MSB-first) of a big-endian packed bit string.
func bitAt(bits []byte, i int) int {
	byteIdx := i / 8
	bitIdx := uint(i % 8)
	if byteIdx >= len(bits) {
		return 0
	}
	return int((bits[byteIdx] >> (7 - bitIdx)) & 1)
}
