package core

import (
	"math"
	"math/rand"
)

// Angle is a position on the board rim in degrees, in [0, 360),
// measured clockwise from straight up.
type Angle = float64

// WrapAngle normalizes an angle into [0, 360). Negative inputs are handled.
func WrapAngle(a float64) Angle {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngularDistance returns the shortest angular separation between two
// angles, in [0, 180]. Symmetric in its arguments.
func AngularDistance(a, b Angle) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// DistributedAngles returns count angles evenly spaced 360/count apart,
// starting from a random offset in [0, 360/count). The random offset
// avoids a fixed visual pattern across rounds; the spacing is exact.
func DistributedAngles(rng *rand.Rand, count int) []Angle {
	if count <= 0 {
		return nil
	}

	step := 360.0 / float64(count)
	offset := rng.Float64() * step

	angles := make([]Angle, count)
	for i := range angles {
		angles[i] = WrapAngle(offset + float64(i)*step)
	}
	return angles
}
