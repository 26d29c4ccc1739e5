package gptag

import (
	"fmt"
	"image"

	"github.com/gp-tag/gptag-encoder/bitpack"
	"github.com/gp-tag/gptag-encoder/ecc"
	"github.com/gp-tag/gptag-encoder/grid"
	"github.com/gp-tag/gptag-encoder/quantize"
	"github.com/gp-tag/gptag-encoder/raster"
)

// Encode validates p against the ranges in spec §3, quantizes and
// ECC-codes its two payloads, lays them into the 21x21 module grid, and
// renders the complete GP-Tag raster. Encode is a pure function: the
// same Params always produces a bit-identical image.
func Encode(p Params) (image.Image, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	mainBits := packMain(p)
	reservedBits := packReserved(p)

	mainCodeword, err := ecc.Encode(ecc.Main, mainBits)
	if err != nil {
		return nil, errEncoding(err)
	}
	reservedCodeword, err := ecc.Encode(ecc.Reserved, reservedBits)
	if err != nil {
		return nil, errEncoding(err)
	}

	g := grid.New()
	if err := g.Place(mainCodeword, ecc.Bits(mainCodeword)); err != nil {
		return nil, errOverflow(err)
	}

	img := raster.Render(g, reservedCodeword, grid.ReservedAreaBits, p.U)
	return img, nil
}

func validate(p Params) error {
	if !quantize.Latitude.InRange(p.LatitudeDegrees()) {
		return invalidField("latitude")
	}
	if !quantize.Longitude.InRange(p.LongitudeDegrees()) {
		return invalidField("longitude")
	}
	if !quantize.Altitude.InRange(p.Altitude) {
		return invalidField("altitude")
	}
	for i, q := range p.Quaternion {
		if !quantize.Quaternion.InRange(q) {
			return invalidField(quaternionFieldName(i))
		}
	}
	if p.Accuracy < 0 || p.Accuracy > 3 {
		return invalidField("accuracy")
	}
	if !quantize.Scale.InRange(p.Scale) {
		return invalidField("scale")
	}
	if p.TagID < 0 || p.TagID > 4095 {
		return invalidField("tag_id")
	}
	if p.VersionID < 0 || p.VersionID > 15 {
		return invalidField("version_id")
	}
	if p.U < 1 {
		return invalidField("U")
	}
	return nil
}

func quaternionFieldName(i int) string {
	names := [4]string{"qx", "qy", "qz", "qw"}
	return names[i]
}

// packMain quantizes every main-payload field and concatenates them into
// a 23-byte, zero-right-padded bit string (spec §4.2): 178 bits before
// padding (35+36+25+4*16+2+16). The field widths are fixed by the
// format, so bitpack's own width tests cover this; it is not re-checked
// at runtime here.
func packMain(p Params) []byte {
	w := bitpack.NewWriter()
	w.WriteBits(quantize.Latitude.Quantize(p.LatitudeDegrees()), quantize.Latitude.Bits)
	w.WriteBits(quantize.Longitude.Quantize(p.LongitudeDegrees()), quantize.Longitude.Bits)
	w.WriteBits(quantize.Altitude.Quantize(p.Altitude), quantize.Altitude.Bits)
	for _, q := range p.Quaternion {
		w.WriteBits(quantize.Quaternion.Quantize(q), quantize.Quaternion.Bits)
	}
	w.WriteBits(uint64(p.Accuracy), 2)
	w.WriteBits(quantize.Scale.Quantize(p.Scale), quantize.Scale.Bits)
	return w.Bytes()
}

// packReserved quantizes tag_id/version_id into a 2-byte bit string
// (spec §4.2).
func packReserved(p Params) []byte {
	w := bitpack.NewWriter()
	w.WriteBits(uint64(p.TagID), 12)
	w.WriteBits(uint64(p.VersionID), 4)
	return w.Bytes()
}

func errEncoding(cause error) error {
	return fmt.Errorf("%w: %v", ErrEncodingFailed, cause)
}

func errOverflow(cause error) error {
	return fmt.Errorf("%w: %v", ErrPayloadOverflow, cause)
}
