// Package dice models the distribution of the sum of two fair six-sided
// dice (2d6), the resolution mechanic used by every detection check in the
// game. The distribution is fixed, so everything here is closed-form.
package dice

import "math"

// Bounds of a 2d6 sum.
const (
	Min = 2
	Max = 12
)

// Mean is the expected value of a 2d6 sum.
const Mean = 7.0

// Stddev is the standard deviation of a 2d6 sum: sqrt(2) times the
// standard deviation of a single die, i.e. sqrt(35/6).
var Stddev = math.Sqrt(35.0 / 6.0)

// PMF returns P(2d6 == k). Zero outside [Min, Max].
func PMF(k int) float64 {
	if k < Min || k > Max {
		return 0
	}
	return float64(6-abs(k-7)) / 36.0
}

// CDF returns P(2d6 <= k). Handles k outside [Min, Max] correctly.
func CDF(k int) float64 {
	if k < Min {
		return 0
	}
	if k >= Max {
		return 1
	}
	var p float64
	for i := Min; i <= k; i++ {
		p += PMF(i)
	}
	return p
}

// ProbBelow returns P(2d6 < k). For k <= Min this is 0; for k > Max it is 1.
func ProbBelow(k int) float64 {
	return CDF(k - 1)
}

// ProbAtLeast returns P(2d6 >= k). For k <= Min this is 1; for k > Max it
// is 0.
func ProbAtLeast(k int) float64 {
	return 1 - CDF(k-1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
