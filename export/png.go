package export

import (
	"image"
	"image/png"
	"io"
)

// PNGExporter serializes images as lossless PNG, the default GP-Tag output
// format (spec §6).
type PNGExporter struct{}

var _ Exporter = PNGExporter{}

// NewPNGExporter returns a PNGExporter.
func NewPNGExporter() PNGExporter {
	return PNGExporter{}
}

// Encode writes img to w as PNG.
func (PNGExporter) Encode(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	return png.Encode(w, img)
}

// Name returns "png".
func (PNGExporter) Name() string { return "png" }

// MediaType returns "image/png".
func (PNGExporter) MediaType() string { return "image/png" }

func init() {
	Register(NewPNGExporter())
}
