package acoustics

import (
	"math"

	"github.com/ntguardian/TacSubGame/internal/units"
	"gonum.org/v1/gonum/stat/distuv"
)

// crossLayerLossDB is the extra one-way loss applied when the detector and
// emitter sit on opposite sides of the sonic layer.
const crossLayerLossDB = 6.0

// SpreadingModel is the built-in Provider: spherical spreading plus Thorp
// absorption, with a layer penalty derived from the sound velocity
// profile. It is deliberately simple; measured environments should plug a
// ray-tracing Provider in instead.
type SpreadingModel struct {
	profile      Profile
	frequencyHz  float64
	noise        distuv.Normal
	layerDepthFt float64
}

// NewSpreadingModel builds the provider from a profile and noise
// parameters. The profile is resampled per the trace config before the
// layer depth is located.
func NewSpreadingModel(p Profile, frequencyHz, noiseMean, noiseSD float64, tc TraceConfig) *SpreadingModel {
	sampled := p.Resample(tc.SVPStepFt, tc.MaxDepthFt)
	return &SpreadingModel{
		profile:      sampled,
		frequencyHz:  frequencyHz,
		noise:        distuv.Normal{Mu: noiseMean, Sigma: noiseSD},
		layerDepthFt: sampled.LayerDepth(),
	}
}

// TransmissionLoss implements Provider.
func (m *SpreadingModel) TransmissionLoss(detectorDepthFt, emitterDepthFt, rangeKyd float64) float64 {
	yards := units.KiloyardsToYards(rangeKyd)
	if yards < 1 {
		yards = 1
	}
	tl := 20*math.Log10(yards) + thorpAbsorption(m.frequencyHz/1000)*rangeKyd
	if m.crossesLayer(detectorDepthFt, emitterDepthFt) {
		tl += crossLayerLossDB
	}
	return tl
}

// Noise implements Provider.
func (m *SpreadingModel) Noise() distuv.Normal {
	return m.noise
}

// Profile returns the resampled profile the model runs on.
func (m *SpreadingModel) Profile() Profile {
	return m.profile
}

// LayerDepth returns the sonic layer depth the model located.
func (m *SpreadingModel) LayerDepth() float64 {
	return m.layerDepthFt
}

func (m *SpreadingModel) crossesLayer(detFt, emitFt float64) bool {
	return (detFt-m.layerDepthFt)*(emitFt-m.layerDepthFt) < 0
}

// thorpAbsorption returns the Thorp attenuation coefficient in dB per
// kiloyard for a frequency in kHz.
func thorpAbsorption(fKHz float64) float64 {
	f2 := fKHz * fKHz
	return 0.1*f2/(1+f2) + 40*f2/(4100+f2) + 2.75e-4*f2 + 0.003
}
