// Package core provides fundamental types and utilities for the raycaster.
// It contains no platform dependencies (no Bubble Tea, no Ebiten) to keep
// rendering and movement pure and testable.
package core

// Dims is a screen size in pixels.
type Dims struct {
	W, H int
}

// HalfH returns the horizon row (integer half of the height).
func (d Dims) HalfH() int {
	return d.H / 2
}

// HalfW returns the center column the cursor is recentered to.
func (d Dims) HalfW() int {
	return d.W / 2
}

// Valid reports whether both dimensions are positive.
func (d Dims) Valid() bool {
	return d.W > 0 && d.H > 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
