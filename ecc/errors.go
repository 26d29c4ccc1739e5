package ecc

import "errors"

// ErrEncodingFailed is returned when the underlying Reed-Solomon library
// rejects the input or fails to encode it; RS encoding is infallible for
// valid, correctly-sized inputs, so this should only surface on a
// programming error (spec §7: EncodingFailed).
var ErrEncodingFailed = errors.New("ecc: encoding failed")
