package sonar

import (
	"math"

	"github.com/ntguardian/TacSubGame/internal/dice"
	"gonum.org/v1/gonum/stat"
)

// SignalExcessPassive computes one-way signal excess:
// SE = SL - TL - (NL - DI) - DT.
func SignalExcessPassive(sourceLevel, transmissionLoss, noiseMean, di, detectionThreshold float64) float64 {
	return sourceLevel - transmissionLoss - noiseMean + di - detectionThreshold
}

// SignalExcessActive computes round-trip signal excess with a target
// strength term: SE = SL - 2*TL + TS - (NL - DI) - DT.
func SignalExcessActive(sourceLevel, transmissionLoss, targetStrength, noiseMean, di, detectionThreshold float64) float64 {
	return sourceLevel - 2*transmissionLoss + targetStrength - noiseMean + di - detectionThreshold
}

// SonarThreshold maps real-valued signal excess onto the integer threshold
// scale. math.Round rounds halves away from zero, which is the rounding
// the tables were built with.
func SonarThreshold(se float64) int {
	return int(math.Round(se))
}

// RawModifier rescales an integer threshold from noise units into
// dice-sum units.
func RawModifier(seThreshold int, noiseMean, noiseSD float64) float64 {
	return dice.Stddev / noiseSD * (float64(seThreshold) - noiseMean)
}

// DetectionProb converts a dice-unit modifier into the probability that a
// 2d6 roll meets the shifted threshold. Monotone non-decreasing in the
// modifier, hence in signal excess.
func DetectionProb(rawModifier float64) float64 {
	return dice.ProbAtLeast(int(math.Round(dice.Mean - rawModifier)))
}

// ClassThreshold rescales a class detection threshold into dice-sum
// units: (sd2d6/noiseSD)*DT + mean2d6.
func ClassThreshold(detectionThreshold, noiseSD float64) float64 {
	return dice.Stddev/noiseSD*detectionThreshold + dice.Mean
}

// ThresholdAdjust centers the passive and active modifier scales on a
// shared zero point. Each class's adjustment is its dice-unit threshold
// minus the mean of the two, so subtracting it from the raw modifiers
// makes the scales directly comparable.
func ThresholdAdjust(passiveDT, activeDT, noiseSD float64) (adjustPassive, adjustActive float64) {
	tp := ClassThreshold(passiveDT, noiseSD)
	ta := ClassThreshold(activeDT, noiseSD)
	m := stat.Mean([]float64{tp, ta}, nil)
	return tp - m, ta - m
}
