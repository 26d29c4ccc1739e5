package ecc_test

import (
	"errors"
	"testing"

	"github.com/gp-tag/gptag-encoder/ecc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainSplitSizes(t *testing.T) {
	assert.Equal(t, 23, ecc.Main.DataBytes)
	assert.Equal(t, 12, ecc.Main.ParityBytes)
	assert.Equal(t, 35, ecc.Main.CodewordBytes())
}

func TestReservedSplitSizes(t *testing.T) {
	assert.Equal(t, 2, ecc.Reserved.DataBytes)
	assert.Equal(t, 1, ecc.Reserved.ParityBytes)
	assert.Equal(t, 3, ecc.Reserved.CodewordBytes())
}

func TestEncodeMainProducesSystematicPrefix(t *testing.T) {
	data := make([]byte, ecc.Main.DataBytes)
	for i := range data {
		data[i] = byte(i * 3)
	}

	codeword, err := ecc.Encode(ecc.Main, data)
	require.NoError(t, err)
	require.Len(t, codeword, 35)

	assert.Equal(t, data, codeword[:23], "systematic code must carry data bytes unchanged as a prefix")
	assert.Equal(t, 280, ecc.Bits(codeword))
}

func TestEncodeReservedAllZero(t *testing.T) {
	codeword, err := ecc.Encode(ecc.Reserved, []byte{0x00, 0x00})
	require.NoError(t, err)
	require.Len(t, codeword, 3)
	assert.Equal(t, byte(0x00), codeword[0])
	assert.Equal(t, byte(0x00), codeword[1])
	assert.Equal(t, 24, ecc.Bits(codeword))
}

func TestEncodeWrongSizeFails(t *testing.T) {
	_, err := ecc.Encode(ecc.Main, make([]byte, 5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrEncodingFailed))
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte{0x01, 0x02}
	a, err := ecc.Encode(ecc.Reserved, data)
	require.NoError(t, err)
	b, err := ecc.Encode(ecc.Reserved, data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
