package game

import "math"

// WrapAngle normalizes an angle in degrees into [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngularDistance returns the shortest distance between two angles on a
// 360° circle: min(|a-b|, 360-|a-b|).
func AngularDistance(a, b float64) float64 {
	d := math.Abs(WrapAngle(a) - WrapAngle(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// AngleFromPoint maps a pointer offset from the dial center to an angle in
// degrees, with a 90° offset so that "up" is 0°. dy grows downward, as in
// screen coordinates.
func AngleFromPoint(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx)*180/math.Pi + 90
	return WrapAngle(deg)
}
