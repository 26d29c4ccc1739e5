package grid

// CellPair is one mirrored pair of cells in the 36-cell reserved-area
// coordinate system (spec §4.5 step 11). Both cells of a pair always
// receive the same bit value; a decoder relies on this symmetry, so the
// pair order below must never be changed or reordered within a pair.
type CellPair struct {
	A, B [2]int
}

// ReservedAreaPairs is the literal, fixed reserved-area mirrored cell
// list from spec §4.5. 38 pairs are listed; only the first
// ReservedAreaBits (24) carry reserved-payload bits. The remaining 14
// pairs are part of the format but carry no data.
var ReservedAreaPairs = []CellPair{
	{A: [2]int{15, 32}, B: [2]int{21, 4}},
	{A: [2]int{16, 32}, B: [2]int{20, 4}},
	{A: [2]int{17, 32}, B: [2]int{19, 4}},
	{A: [2]int{18, 32}, B: [2]int{18, 4}},
	{A: [2]int{19, 32}, B: [2]int{17, 4}},
	{A: [2]int{20, 32}, B: [2]int{16, 4}},
	{A: [2]int{21, 32}, B: [2]int{15, 4}},
	{A: [2]int{14, 31}, B: [2]int{22, 5}},
	{A: [2]int{15, 31}, B: [2]int{21, 5}},
	{A: [2]int{16, 31}, B: [2]int{20, 5}},
	{A: [2]int{17, 31}, B: [2]int{19, 5}},
	{A: [2]int{18, 31}, B: [2]int{18, 5}},
	{A: [2]int{19, 31}, B: [2]int{17, 5}},
	{A: [2]int{20, 31}, B: [2]int{16, 5}},
	{A: [2]int{21, 31}, B: [2]int{15, 5}},
	{A: [2]int{22, 31}, B: [2]int{14, 5}},
	{A: [2]int{17, 30}, B: [2]int{19, 6}},
	{A: [2]int{18, 30}, B: [2]int{18, 6}},
	{A: [2]int{19, 30}, B: [2]int{17, 6}},
	{A: [2]int{4, 15}, B: [2]int{32, 21}},
	{A: [2]int{4, 16}, B: [2]int{32, 20}},
	{A: [2]int{4, 17}, B: [2]int{32, 19}},
	{A: [2]int{4, 18}, B: [2]int{32, 18}},
	{A: [2]int{4, 19}, B: [2]int{32, 17}},
	{A: [2]int{4, 20}, B: [2]int{32, 16}},
	{A: [2]int{4, 21}, B: [2]int{32, 15}},
	{A: [2]int{5, 14}, B: [2]int{31, 22}},
	{A: [2]int{5, 15}, B: [2]int{31, 21}},
	{A: [2]int{5, 16}, B: [2]int{31, 20}},
	{A: [2]int{5, 17}, B: [2]int{31, 19}},
	{A: [2]int{5, 18}, B: [2]int{31, 18}},
	{A: [2]int{5, 19}, B: [2]int{31, 17}},
	{A: [2]int{5, 20}, B: [2]int{31, 16}},
	{A: [2]int{5, 21}, B: [2]int{31, 15}},
	{A: [2]int{5, 22}, B: [2]int{31, 14}},
	{A: [2]int{6, 17}, B: [2]int{30, 19}},
	{A: [2]int{6, 18}, B: [2]int{30, 18}},
	{A: [2]int{6, 19}, B: [2]int{30, 17}},
}

// ReservedAreaBits is the number of cell pairs that actually carry
// reserved-payload bits; the remaining entries of ReservedAreaPairs are
// present in the format but never painted from the codeword.
const ReservedAreaBits = 24

// ReservedAreaCells is the side length of the coordinate system the
// reserved-area pairs are expressed in.
const ReservedAreaCells = 36
