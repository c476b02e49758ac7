package common

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Gravity is the downward acceleration applied to dynamic bodies (y-up).
const Gravity = -25.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveTowards steps from toward to by at most maxStep without overshooting.
func MoveTowards(from, to cp.Vector, maxStep float64) cp.Vector {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist <= maxStep || dist == 0 {
		return to
	}
	return from.Add(delta.Mult(maxStep / dist))
}

// AngleBetween returns the unsigned angle between a and b in degrees.
func AngleBetween(a, b cp.Vector) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := cp.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// RotateDegrees rotates v counter-clockwise by deg degrees.
func RotateDegrees(v cp.Vector, deg float64) cp.Vector {
	return v.Rotate(cp.ForAngle(deg * math.Pi / 180))
}

// RandomInUnitCircle returns a point uniformly distributed in the unit disc.
func RandomInUnitCircle(rng *rand.Rand) cp.Vector {
	angle := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64())
	return cp.ForAngle(angle).Mult(r)
}

// RandomRange returns a uniform value in [lo, hi]. Swapped bounds are tolerated.
func RandomRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}
