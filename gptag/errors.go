package gptag

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from spec §7. Wrap with fmt.Errorf("%w: ...", ...)
// to attach the offending field or detail; callers compare with
// errors.Is.
var (
	// ErrInvalidField is returned when a numeric input falls outside its
	// declared range: latitude, longitude, altitude, a quaternion
	// component, scale, accuracy, tag_id, version_id, or U <= 0.
	ErrInvalidField = errors.New("gptag: invalid field")

	// ErrPayloadOverflow is returned when there are more payload bits to
	// place than non-reserved grid modules available. Does not occur for
	// the standard GP-Tag format.
	ErrPayloadOverflow = errors.New("gptag: payload overflow")

	// ErrEncodingFailed is returned when the Reed-Solomon encoder fails
	// on otherwise-valid input.
	ErrEncodingFailed = errors.New("gptag: encoding failed")
)

// invalidField wraps ErrInvalidField with the offending field's name.
func invalidField(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidField, name)
}
