package quantize_test

import (
	"testing"

	"github.com/gp-tag/gptag-encoder/quantize"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFieldMaxValue(t *testing.T) {
	assert.Equal(t, uint64(1<<35-1), quantize.Latitude.MaxValue())
	assert.Equal(t, uint64(1<<36-1), quantize.Longitude.MaxValue())
	assert.Equal(t, uint64(1<<25-1), quantize.Altitude.MaxValue())
	assert.Equal(t, uint64(1<<16-1), quantize.Quaternion.MaxValue())
	assert.Equal(t, uint64(1<<16-1), quantize.Scale.MaxValue())
}

func TestQuantizeBoundaries(t *testing.T) {
	assert.Equal(t, uint64(0), quantize.Latitude.Quantize(-90))
	assert.Equal(t, quantize.Latitude.MaxValue(), quantize.Latitude.Quantize(90))

	assert.Equal(t, uint64(0), quantize.Longitude.Quantize(-180))
	assert.Equal(t, quantize.Longitude.MaxValue(), quantize.Longitude.Quantize(180))

	assert.Equal(t, uint64(0), quantize.Altitude.Quantize(-10000))
	assert.Equal(t, quantize.Altitude.MaxValue(), quantize.Altitude.Quantize(10000))

	assert.Equal(t, uint64(0), quantize.Quaternion.Quantize(-1))
	assert.Equal(t, quantize.Quaternion.MaxValue(), quantize.Quaternion.Quantize(1))

	assert.Equal(t, uint64(0), quantize.Scale.Quantize(0))
	assert.Equal(t, quantize.Scale.MaxValue(), quantize.Scale.Quantize(3.6))
}

func TestQuantizeRoundTrip(t *testing.T) {
	fields := []quantize.Field{
		quantize.Latitude, quantize.Longitude, quantize.Altitude,
		quantize.Quaternion, quantize.Scale,
	}

	for _, f := range fields {
		f := f
		rapid.Check(t, func(t *rapid.T) {
			value := rapid.Float64Range(f.Min, f.Max).Draw(t, "value")

			q := f.Quantize(value)
			recovered := f.Dequantize(q)

			lsb := (f.Max - f.Min) / float64(f.MaxValue())
			assert.InDeltaf(t, value, recovered, lsb,
				"dequantize(quantize(%v)) = %v, want within one LSB (%v)", value, recovered, lsb)
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, quantize.ClampInt(-5, 4095))
	assert.Equal(t, 4095, quantize.ClampInt(5000, 4095))
	assert.Equal(t, 123, quantize.ClampInt(123, 4095))
}
