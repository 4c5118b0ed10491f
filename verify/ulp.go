package verify

import "math"

// ULPDistance returns the number of representable float32 values strictly
// between a and b. Adjacent values are 0 apart, as are +0 and -0. It reports
// false when either value is NaN or infinite, where no finite distance exists.
func ULPDistance(a, b float32) (uint64, bool) {
	if !finite(a) || !finite(b) {
		return 0, false
	}
	steps := ordinal(a) - ordinal(b)
	if steps < 0 {
		steps = -steps
	}
	if steps == 0 {
		return 0, true
	}
	return uint64(steps - 1), true
}

// Float32Equal reports whether a and b are equal within tol ULPs.
// Bit-identical values are always equal and two NaNs are equal whatever their
// payload. Otherwise NaN and infinities never compare equal, and a tolerance
// of zero demands bit-identical values even though adjacent floats have a
// distance of zero.
func Float32Equal(a, b float32, tol uint32) bool {
	if math.Float32bits(a) == math.Float32bits(b) {
		return true
	}
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if tol == 0 {
		return false
	}
	d, ok := ULPDistance(a, b)
	return ok && d <= uint64(tol)
}

// WordsEqual compares two kernel words decoded according to mode
func WordsEqual(a, b uint32, tol uint32, mode Mode) bool {
	if mode == Float {
		return Float32Equal(math.Float32frombits(a), math.Float32frombits(b), tol)
	}
	return a == b
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// ordinal maps a finite float onto a line of consecutive integers that
// preserves ordering, with both zeros at 0
func ordinal(f float32) int64 {
	bits := math.Float32bits(f)
	mag := int64(bits & 0x7fffffff)
	if bits&0x80000000 != 0 {
		return -mag
	}
	return mag
}
