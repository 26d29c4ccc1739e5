// Package export provides lossless serialization backends for rendered
// GP-Tag images, selectable by name or media type.
package export

import (
	"image"
	"io"
)

// Exporter is the universal interface for an image serialization backend.
type Exporter interface {
	// Encode writes img to w in the exporter's format. The encoding must
	// be lossless; callers rely on byte-identical output for identical
	// input images.
	Encode(w io.Writer, img image.Image) error

	// Name returns a short identifier, e.g. "png".
	Name() string

	// MediaType returns the IANA media type, e.g. "image/png".
	MediaType() string
}
