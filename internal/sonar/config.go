// Package sonar converts raw sonar-equation terms into the game-facing
// detection tables: signal excess per scenario row, dice-scale thresholds
// and probabilities, and the centered modifier shared between the passive
// and active tables.
package sonar

import (
	"fmt"
	"math"

	"github.com/ntguardian/TacSubGame/internal/acoustics"
	"github.com/ntguardian/TacSubGame/internal/units"
)

// Default receiver geometry used when the operator supplies nothing.
const (
	defaultLineElements  = 100
	defaultLineSpacingIn = 0.5
	defaultLineBonusDB   = 40.0
	defaultPistonDiamIn  = 18.0
)

// DirectivitySpec resolves a receiver's directivity index for a given
// wavelength. The concrete variants cover the valid flag combinations;
// invalid combinations are rejected when the spec is built, so resolution
// itself cannot fail.
type DirectivitySpec interface {
	DI(wavelengthFt float64) float64
}

// ExplicitDI is an operator-supplied directivity index in dB.
type ExplicitDI float64

func (d ExplicitDI) DI(float64) float64 { return float64(d) }

// LineArrayGeometry derives DI from an element count and spacing.
type LineArrayGeometry struct {
	Elements  int
	SpacingIn float64
}

func (g LineArrayGeometry) DI(wavelengthFt float64) float64 {
	return acoustics.LineArrayDI(g.Elements, units.InchesToFeet(g.SpacingIn), wavelengthFt)
}

// DefaultLineArray is the fallback passive receiver: a 100-element line at
// half-inch spacing with a fixed processing bonus.
type DefaultLineArray struct{}

func (DefaultLineArray) DI(wavelengthFt float64) float64 {
	return acoustics.LineArrayDI(defaultLineElements, units.InchesToFeet(defaultLineSpacingIn), wavelengthFt) + defaultLineBonusDB
}

// PistonGeometry derives DI from a circular transducer diameter.
type PistonGeometry struct {
	DiameterIn float64
}

func (g PistonGeometry) DI(wavelengthFt float64) float64 {
	return acoustics.PistonDI(units.InchesToFeet(g.DiameterIn), wavelengthFt)
}

// PassiveDirectivity validates the passive receiver flags and returns the
// resolved spec. An explicit DI wins; otherwise elements and spacing must
// be given together or not at all. NaN and zero mark unset flags.
func PassiveDirectivity(di float64, elements int, spacingIn float64) (DirectivitySpec, error) {
	haveDI := !math.IsNaN(di)
	haveElements := elements > 0
	haveSpacing := spacingIn > 0
	switch {
	case haveDI:
		return ExplicitDI(di), nil
	case haveElements && haveSpacing:
		return LineArrayGeometry{Elements: elements, SpacingIn: spacingIn}, nil
	case !haveElements && !haveSpacing:
		return DefaultLineArray{}, nil
	default:
		return nil, fmt.Errorf("invalid configuration: must supply both elements and spacing, or neither")
	}
}

// ActiveDirectivity resolves the active transducer spec: explicit DI wins,
// otherwise the piston formula with the given (or default) diameter.
func ActiveDirectivity(di, diameterIn float64) DirectivitySpec {
	if !math.IsNaN(di) {
		return ExplicitDI(di)
	}
	if diameterIn > 0 {
		return PistonGeometry{DiameterIn: diameterIn}
	}
	return PistonGeometry{DiameterIn: defaultPistonDiamIn}
}

// Category names one source-level or target-strength class with its value
// in dB: a speed class for the passive table, a target class for the
// active table.
type Category struct {
	Name  string
	Level float64
}

// CommonConfig holds the scenario parameters shared by both tables. The
// noise distribution is not here: it travels with the acoustics provider.
type CommonConfig struct {
	RangesKyd []float64

	DetectorShallowFt float64
	DetectorDeepFt    float64
	EmitterShallowFt  float64
	EmitterDeepFt     float64

	FrequencyHz float64
}

// PassiveConfig holds the passive-table parameters.
type PassiveConfig struct {
	DetectionThreshold float64
	Directivity        DirectivitySpec
	SourceLevels       []Category
}

// ActiveConfig holds the active-table parameters.
type ActiveConfig struct {
	SourceLevel        float64
	DetectionThreshold float64
	Directivity        DirectivitySpec
	TargetStrengths    []Category
}

// RangeValues expands min/max/step into the range column values.
func RangeValues(min, max, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("range step must be positive, got %v", step)
	}
	if max < min {
		return nil, fmt.Errorf("range max %v below min %v", max, min)
	}
	var out []float64
	for v := min; v <= max+1e-9; v += step {
		out = append(out, v)
	}
	return out, nil
}
