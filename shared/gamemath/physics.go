package gamemath

// Facing returns +1 when target is strictly to the right of origin, -1 otherwise.
func Facing(origin, target float64) float64 {
	if target-origin > 0 {
		return 1
	}
	return -1
}

// ClampFloat constrains value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt constrains value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// AbsFloat returns |x|.
func AbsFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
