package acoustics

import "math"

// Wavelength returns the acoustic wavelength in feet for the given sound
// speed (ft/s) and frequency (Hz).
func Wavelength(speedFtPerSec, frequencyHz float64) float64 {
	return speedFtPerSec / frequencyHz
}

// LineArrayDI returns the directivity index in dB of a line array of n
// elements at the given spacing: 10 log10(2 L / lambda) with L = n*d.
func LineArrayDI(elements int, spacingFt, wavelengthFt float64) float64 {
	return 10 * math.Log10(2*float64(elements)*spacingFt/wavelengthFt)
}

// PistonDI returns the directivity index in dB of a circular piston
// transducer: 20 log10(pi d / lambda).
func PistonDI(diameterFt, wavelengthFt float64) float64 {
	return 20 * math.Log10(math.Pi*diameterFt/wavelengthFt)
}
