package gptag_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gp-tag/gptag-encoder/gptag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

// Because every raster element is specified in multiples of U, a render
// at 2U downscaled with nearest-neighbor sampling should closely match a
// direct render at U: the hard-edged compositor has no antialiasing for
// draw.NearestNeighbor to disagree with except at a handful of pixels
// along curved and slanted edges (disks, annulus pieslices, spike
// triangles), where scan conversion rounds differently at the two
// resolutions.
func TestEncodeMatchesNearestNeighborRescale(t *testing.T) {
	p := allZeroParams(16)
	p.TagID = 0b101011001100

	big, err := gptag.Encode(p)
	require.NoError(t, err)

	p.U = 8
	small, err := gptag.Encode(p)
	require.NoError(t, err)

	side := small.Bounds().Dx()
	rescaled := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.NearestNeighbor.Scale(rescaled, rescaled.Bounds(), big, big.Bounds(), draw.Over, nil)

	matches, total := 0, side*side
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if sameColor(rescaled.At(x, y), small.At(x, y)) {
				matches++
			}
		}
	}
	assert.Greaterf(t, float64(matches)/float64(total), 0.97,
		"nearest-neighbor rescale of a 2U render should agree with a direct U render on >97%% of pixels")
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
