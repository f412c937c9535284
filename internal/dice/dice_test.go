package dice

import (
	"math"
	"testing"
)

func TestPMFSumsToOne(t *testing.T) {
	var sum float64
	for k := Min; k <= Max; k++ {
		sum += PMF(k)
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("PMF sums to %v, want 1", sum)
	}
}

func TestPMFOutOfRange(t *testing.T) {
	for _, k := range []int{-5, 0, 1, 13, 100} {
		if p := PMF(k); p != 0 {
			t.Errorf("PMF(%d) = %v, want 0", k, p)
		}
	}
}

func TestCDFKnownValues(t *testing.T) {
	testCases := []struct {
		k        int
		expected float64
	}{
		{1, 0},
		{2, 1.0 / 36},
		{6, 15.0 / 36},
		{7, 21.0 / 36},
		{11, 35.0 / 36},
		{12, 1},
		{20, 1},
		{-3, 0},
	}
	for _, tc := range testCases {
		if got := CDF(tc.k); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("CDF(%d) = %v, want %v", tc.k, got, tc.expected)
		}
	}
}

func TestProbBelowSevenIsFifteenThirtySixths(t *testing.T) {
	if got := ProbBelow(7); math.Abs(got-15.0/36) > 1e-12 {
		t.Errorf("ProbBelow(7) = %v, want %v", got, 15.0/36)
	}
}

func TestProbAtLeastComplementsProbBelow(t *testing.T) {
	for k := -2; k <= 16; k++ {
		sum := ProbBelow(k) + ProbAtLeast(k)
		if math.Abs(sum-1.0) > 1e-12 {
			t.Errorf("ProbBelow(%d)+ProbAtLeast(%d) = %v, want 1", k, k, sum)
		}
	}
}

func TestProbBelowClampsOutsideRange(t *testing.T) {
	if got := ProbBelow(2); got != 0 {
		t.Errorf("ProbBelow(2) = %v, want 0", got)
	}
	if got := ProbBelow(13); got != 1 {
		t.Errorf("ProbBelow(13) = %v, want 1", got)
	}
	if got := ProbBelow(-100); got != 0 {
		t.Errorf("ProbBelow(-100) = %v, want 0", got)
	}
	if got := ProbBelow(100); got != 1 {
		t.Errorf("ProbBelow(100) = %v, want 1", got)
	}
}

func TestStddevMatchesTwoDiceFormula(t *testing.T) {
	single := math.Sqrt(35.0 / 12.0)
	want := math.Sqrt2 * single
	if math.Abs(Stddev-want) > 1e-12 {
		t.Errorf("Stddev = %v, want %v", Stddev, want)
	}
	// Sanity: roughly 2.415
	if math.Abs(Stddev-2.4152) > 1e-3 {
		t.Errorf("Stddev = %v, expected near 2.4152", Stddev)
	}
}
