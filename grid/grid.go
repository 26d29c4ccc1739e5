// Package grid builds the 21x21 GP-Tag module grid: finder patterns,
// timing patterns, the reserved-module predicate, and the payload
// traversal order that places main ECC-coded bits into non-reserved
// modules (spec §4.4).
package grid

import "fmt"

// Size is the module grid's side length.
const Size = 21

// finderPattern is the fixed 5x5 bit pattern placed at each grid corner
// (spec §4.4). Row-major, 1=white 0=black.
var finderPattern = [5][5]int{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// finderOrigins are the top-left module coordinates of the four 5x5
// finder patterns.
var finderOrigins = [4][2]int{
	{0, 0}, {16, 0}, {0, 16}, {16, 16},
}

// Grid is the 21x21 module array. Modules are addressed Grid[y][x];
// value 1 means "render white", 0 means "render black" (spec §4.4).
type Grid [Size][Size]int

// New builds a grid with finder and timing patterns placed and every
// other module initialized to white (1), matching spec §4.4's
// construction order.
func New() Grid {
	var g Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g[y][x] = 1
		}
	}

	for _, origin := range finderOrigins {
		ox, oy := origin[0], origin[1]
		for dy := 0; dy < 5; dy++ {
			for dx := 0; dx < 5; dx++ {
				g[oy+dy][ox+dx] = finderPattern[dy][dx]
			}
		}
	}

	for i := 5; i <= 15; i++ {
		bit := timingBit(i)
		g[5][i] = bit
		g[i][5] = bit
	}

	return g
}

// timingBit is 1 for even indices, 0 for odd, starting at index 5 → 1.
func timingBit(i int) int {
	if i%2 == 0 {
		return 1
	}
	return 0
}

// Reserved reports whether module (x,y) is reserved and must never carry
// payload bits: inside any corner 5x5 finder block, or on the timing
// row/column at index 5 (spec §4.4).
func Reserved(x, y int) bool {
	inCorner := (x < 5 && y < 5) ||
		(x < 5 && y > Size-6) ||
		(x > Size-6 && y < 5) ||
		(x > Size-6 && y > Size-6)
	return inCorner || x == 5 || y == 5
}

// ErrPayloadOverflow is returned by Place when there are more payload
// bits than non-reserved modules to hold them (spec §7: PayloadOverflow).
// It does not occur for the standard GP-Tag format but is checked
// defensively.
var ErrPayloadOverflow = fmt.Errorf("grid: payload overflow")

// Place writes bits (a big-endian MSB-first bit string of bitCount bits,
// packed into bytes) into the grid's non-reserved modules, following the
// traversal order of spec §4.4: columns from x=20 down to 0, skipping
// column 6 entirely, and within each column rows from y=20 down to 0,
// skipping reserved modules. The traversal stops once bitCount bits have
// been placed.
func (g *Grid) Place(bits []byte, bitCount int) error {
	placed := 0
	for x := Size - 1; x >= 0; x-- {
		if x == 6 {
			continue
		}
		for y := Size - 1; y >= 0; y-- {
			if Reserved(x, y) {
				continue
			}
			if placed >= bitCount {
				return nil
			}
			g[y][x] = bitAt(bits, placed)
			placed++
		}
	}
	if placed < bitCount {
		return ErrPayloadOverflow
	}
	return nil
}

// bitAt returns bit i (0 = most significant bit of byte 0) of a
// big-endian packed bit string.
func bitAt(bits []byte, i int) int {
	byteIdx := i / 8
	bitIdx := uint(i % 8)
	if byteIdx >= len(bits) {
		return 0
	}
	return int((bits[byteIdx] >> (7 - bitIdx)) & 1)
}

// At returns the module value at (x,y).
func (g Grid) At(x, y int) int {
	return g[y][x]
}
