// Package ecc applies Reed-Solomon forward error correction over GF(256)
// to the GP-Tag main and reserved payloads, per spec §4.3.
package ecc

import (
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// Split describes a data/parity shard split: DataBytes data bytes expand
// to DataBytes+ParityBytes codeword bytes.
type Split struct {
	DataBytes   int
	ParityBytes int
}

// Main is the 23-data/12-parity split for the 178-bit payload (spec §4.3:
// ceil(23 * 0.5) = 12 ECC bytes, 35-byte codeword).
var Main = Split{DataBytes: 23, ParityBytes: 12}

// Reserved is the 2-data/1-parity split for the 16-bit tag-id/version
// payload (spec §4.3: 1 ECC byte, 3-byte codeword).
var Reserved = Split{DataBytes: 2, ParityBytes: 1}

// CodewordBytes returns DataBytes + ParityBytes.
func (s Split) CodewordBytes() int {
	return s.DataBytes + s.ParityBytes
}

// Encode requires data to be exactly s.DataBytes long and returns
// ErrEncodingFailed otherwise (the orchestrating package always supplies
// payloads of exactly the right width). It returns the full codeword: the
// data bytes followed by the parity bytes computed over GF(256).
//
// Each data byte is modeled as an independent one-byte shard, so the
// resulting code is a systematic (DataBytes+ParityBytes, DataBytes)
// Reed-Solomon code over GF(256), matching the byte-level codeword
// contract of spec §4.3. Any library failure is reported as
// ErrEncodingFailed.
func Encode(s Split, data []byte) ([]byte, error) {
	if len(data) != s.DataBytes {
		return nil, fmt.Errorf("%w: expected %d data bytes, got %d", ErrEncodingFailed, s.DataBytes, len(data))
	}

	enc, err := reedsolomon.New(s.DataBytes, s.ParityBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing RS(%d,%d): %v", ErrEncodingFailed, s.DataBytes, s.ParityBytes, err)
	}

	shards := make([][]byte, s.CodewordBytes())
	for i := 0; i < s.DataBytes; i++ {
		shards[i] = []byte{data[i]}
	}
	for i := s.DataBytes; i < s.CodewordBytes(); i++ {
		shards[i] = make([]byte, 1)
	}

	if err := enc.Encode(shards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	codeword := make([]byte, s.CodewordBytes())
	for i, shard := range shards {
		codeword[i] = shard[0]
	}
	return codeword, nil
}

// Bits renders a codeword as a big-endian MSB-first bit count, i.e.
// len(codeword)*8 bits.
func Bits(codeword []byte) int {
	return len(codeword) * 8
}
