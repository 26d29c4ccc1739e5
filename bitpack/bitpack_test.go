package bitpack_test

import (
	"testing"

	"github.com/gp-tag/gptag-encoder/bitpack"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestWriteBitsMSBFirst(t *testing.T) {
	w := bitpack.NewWriter()
	w.WriteBits(0b101, 3)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []byte{0b10100000}, w.Bytes())
}

func TestWriteBitsSpansBytes(t *testing.T) {
	w := bitpack.NewWriter()
	w.WriteBits(0x1FF, 9) // 9 ones
	assert.Equal(t, 9, w.Len())
	assert.Equal(t, []byte{0xFF, 0b10000000}, w.Bytes())
}

func TestMainPayloadWidth(t *testing.T) {
	w := bitpack.NewWriter()
	w.WriteBits(0, 35) // lat
	w.WriteBits(0, 36) // lon
	w.WriteBits(0, 25) // alt
	w.WriteBits(0, 16) // qx
	w.WriteBits(0, 16) // qy
	w.WriteBits(0, 16) // qz
	w.WriteBits(0, 16) // qw
	w.WriteBits(0, 2)  // accuracy
	w.WriteBits(0, 16) // scale

	assert.Equal(t, 178, w.Len())
	assert.Len(t, w.Bytes(), 23, "178 bits must pad to 23 bytes")
}

func TestReservedPayloadWidth(t *testing.T) {
	w := bitpack.NewWriter()
	w.WriteBits(4095, 12) // tag_id
	w.WriteBits(15, 4)    // version_id

	assert.Equal(t, 16, w.Len())
	assert.Equal(t, []byte{0xFF, 0xFF}, w.Bytes())
}

func TestReaderWriterRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := uint(rapid.IntRange(1, 64).Draw(t, "n"))
		var mask uint64 = ^uint64(0)
		if n < 64 {
			mask = (uint64(1) << n) - 1
		}
		v := rapid.Uint64().Draw(t, "v") & mask

		w := bitpack.NewWriter()
		w.WriteBits(v, n)

		r := bitpack.NewReader(w.Bytes())
		got := r.ReadBits(n)

		assert.Equal(t, v, got)
	})
}
