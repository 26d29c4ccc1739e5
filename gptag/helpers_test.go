package gptag_test

import (
	"math"
	"testing"

	"github.com/gp-tag/gptag-encoder/gptag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleFromDPIAndU(t *testing.T) {
	scale, err := gptag.ScaleFromDPIAndU(300, 20)
	require.NoError(t, err)
	assert.InDelta(t, 300.0/(25.4*20), scale, 1e-12)
}

func TestScaleFromDPIAndURejectsNonPositive(t *testing.T) {
	_, err := gptag.ScaleFromDPIAndU(0, 20)
	assert.Error(t, err)
	_, err = gptag.ScaleFromDPIAndU(300, 0)
	assert.Error(t, err)
}

func TestUAndScaleFromDPIAndSize(t *testing.T) {
	u, scale, err := gptag.UAndScaleFromDPIAndSize(300, 50)
	require.NoError(t, err)
	assert.Equal(t, int(math.Round(50*300/(25.4*36))), u)
	assert.InDelta(t, 36.0/50, scale, 1e-12)
}

func TestQuaternionFromEulerIdentityAtZero(t *testing.T) {
	qx, qy, qz, qw := gptag.QuaternionFromEuler(0, 0, 0)
	assert.InDelta(t, 0, qx, 1e-12)
	assert.InDelta(t, 0, qy, 1e-12)
	assert.InDelta(t, 0, qz, 1e-12)
	assert.InDelta(t, 1, qw, 1e-12)
}

func TestQuaternionFromEulerIsUnit(t *testing.T) {
	qx, qy, qz, qw := gptag.QuaternionFromEuler(30, -15, 90)
	norm := qx*qx + qy*qy + qz*qz + qw*qw
	assert.InDelta(t, 1, norm, 1e-9)
}
