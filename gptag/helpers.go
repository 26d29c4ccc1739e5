package gptag

import "math"

// ScaleFromDPIAndU converts a printer/display resolution and module size
// into the scale field (cells/mm), per spec §6: scale = dpi / (25.4 * U).
// Returns ErrInvalidField if dpi or U is non-positive.
func ScaleFromDPIAndU(dpi float64, u int) (float64, error) {
	if dpi <= 0 {
		return 0, invalidField("dpi")
	}
	if u < 1 {
		return 0, invalidField("U")
	}
	return dpi / (25.4 * float64(u)), nil
}

// UAndScaleFromDPIAndSize derives a module size and scale from a target
// physical tag size, per spec §6: U = round(size_mm * dpi / (25.4*36)),
// raised to 1 if that rounds below 1, and scale = 36 / size_mm.
func UAndScaleFromDPIAndSize(dpi, sizeMM float64) (u int, scale float64, err error) {
	if dpi <= 0 {
		return 0, 0, invalidField("dpi")
	}
	if sizeMM <= 0 {
		return 0, 0, invalidField("size_mm")
	}
	u = int(math.Round(sizeMM * dpi / (25.4 * 36)))
	if u < 1 {
		u = 1
	}
	scale = 36 / sizeMM
	return u, scale, nil
}

// QuaternionFromEuler converts roll/pitch/yaw (degrees) to a quaternion
// in the NED (North-East-Down) convention: at (0,0,0) the tag lies flat
// with its right edge pointing North and its bottom edge pointing East.
// Returned components are ordered qx, qy, qz, qw to match Params.Quaternion.
func QuaternionFromEuler(rollDeg, pitchDeg, yawDeg float64) (qx, qy, qz, qw float64) {
	roll := rollDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	yaw := yawDeg * math.Pi / 180

	cy, sy := math.Cos(yaw*0.5), math.Sin(yaw*0.5)
	cp, sp := math.Cos(pitch*0.5), math.Sin(pitch*0.5)
	cr, sr := math.Cos(roll*0.5), math.Sin(roll*0.5)

	qw = cr*cp*cy + sr*sp*sy
	qx = sr*cp*cy - cr*sp*sy
	qy = cr*sp*cy + sr*cp*sy
	qz = cr*cp*sy - sr*sp*cy
	return qx, qy, qz, qw
}
