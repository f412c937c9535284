// Package units provides shared constants and conversions for the mixed
// unit systems in play: sound velocity profiles arrive in metric, the
// sonar equations and game tables work in feet, yards and kiloyards.
package units

// Conversion factors
const (
	FeetPerMeter   = 3.28084
	YardsPerKiloyd = 1000.0
	FeetPerYard    = 3.0
	InchesPerFoot  = 12.0
)

// MetersToFeet converts a depth or length in meters to feet.
func MetersToFeet(m float64) float64 {
	return m * FeetPerMeter
}

// FeetToMeters converts a depth or length in feet to meters.
func FeetToMeters(ft float64) float64 {
	return ft / FeetPerMeter
}

// KiloyardsToYards converts a range in kiloyards to yards.
func KiloyardsToYards(kyd float64) float64 {
	return kyd * YardsPerKiloyd
}

// InchesToFeet converts a transducer dimension in inches to feet.
func InchesToFeet(in float64) float64 {
	return in / InchesPerFoot
}
