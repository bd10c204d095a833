package mathutil

import "math"

// RotateY rotates v around the Y axis by a radians (right-handed, +Z toward +X).
func RotateY(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{
		c*v[0] + s*v[2],
		v[1],
		-s*v[0] + c*v[2],
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// WrapAngle maps a to [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
