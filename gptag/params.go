// Package gptag assembles the quantizer, bit packer, ECC coder, grid
// layout, and raster compositor into the single pure encode operation of
// spec §2: Encode(Params) -> image.Image.
package gptag

import (
	"github.com/golang/geo/s1"
)

// Params is the full GP-Tag input record (spec §3). Latitude and
// Longitude use golang/geo's typed angle so callers can't accidentally
// swap degrees and radians; Encode validates them against the format's
// declared domain rather than relying on s2's own wraparound semantics,
// since an out-of-range pose is a caller error, not a point to
// normalize.
type Params struct {
	Latitude  s1.Angle
	Longitude s1.Angle
	Altitude  float64 // meters

	// Quaternion components, packed in the order qx, qy, qz, qw. Spec
	// §4.1: no normalization is performed here; the caller is
	// responsible for supplying a meaningful orientation.
	Quaternion [4]float64

	Accuracy  int // 0..3
	Scale     float64 // cells/mm, 0..3.6
	TagID     int     // 0..4095
	VersionID int     // 0..15

	// U is the rendering resolution in pixels per module; U >= 1.
	U int
}

// LatitudeDegrees returns Latitude in degrees.
func (p Params) LatitudeDegrees() float64 { return p.Latitude.Degrees() }

// LongitudeDegrees returns Longitude in degrees.
func (p Params) LongitudeDegrees() float64 { return p.Longitude.Degrees() }
