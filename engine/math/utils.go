package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Mod returns the floating point remainder of x/y with the sign of x.
func Mod[T constraints.Float](x, y T) T {
	return T(m.Mod(float64(x), float64(y)))
}

// StepsAndRemainder splits elapsed into whole steps of size step and the
// time left over. A remainder within tolerance of a full step is float
// error on an exact multiple and counts as one more whole step. The
// tolerance must stay at rounding scale (see ULPs), otherwise an elapsed
// time short of a step would be counted as one.
func StepsAndRemainder[T constraints.Float](elapsed, step, tolerance T) (int, T) {
	if elapsed <= 0 || step <= 0 {
		return 0, 0
	}
	e, s := float64(elapsed), float64(step)
	n := m.Floor(e / s)
	r := m.Mod(e, s)
	if s-r <= float64(tolerance) {
		n = m.Round(e / s)
		r = 0
	}
	return int(n), T(r)
}

// Wrap folds v into [0, size) the way a toroidal world does.
func Wrap[T constraints.Float](v, size T) T {
	if size <= 0 {
		return v
	}
	if v < 0 || v >= size {
		v = Mod(Mod(v, size)+size, size)
	}
	return v
}

// ULPs returns n units in the last place at the magnitude of x, the rounding
// error of arithmetic on values that large.
func ULPs[T constraints.Float](x T, n int) T {
	a := m.Abs(float64(x))
	return T(float64(n) * (m.Nextafter(a, m.Inf(1)) - a))
}
