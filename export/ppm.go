package export

import (
	"fmt"
	"image"
	"io"
)

// PPMExporter serializes images as a binary PPM (P6), a trivial lossless
// raster format useful for decoder test fixtures that want to avoid a PNG
// dependency.
type PPMExporter struct{}

var _ Exporter = PPMExporter{}

// NewPPMExporter returns a PPMExporter.
func NewPPMExporter() PPMExporter {
	return PPMExporter{}
}

// Encode writes img to w as binary PPM (P6), 8 bits per channel.
func (PPMExporter) Encode(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	row := make([]byte, width*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			i := (x - b.Min.X) * 3
			row[i] = byte(r >> 8)
			row[i+1] = byte(g >> 8)
			row[i+2] = byte(bl >> 8)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Name returns "ppm".
func (PPMExporter) Name() string { return "ppm" }

// MediaType returns "image/x-portable-pixmap".
func (PPMExporter) MediaType() string { return "image/x-portable-pixmap" }

func init() {
	Register(NewPPMExporter())
}
