package acoustics

import "gonum.org/v1/gonum/stat/distuv"

// Provider supplies per-path transmission loss and the ambient noise
// distribution to the detection table builder. The builder treats both as
// opaque: swapping in a full ray-tracing model only requires another
// implementation of this interface.
type Provider interface {
	// TransmissionLoss returns one-way propagation loss in dB for a path
	// between a detector and an emitter at the given depths (feet) and
	// horizontal range (kiloyards).
	TransmissionLoss(detectorDepthFt, emitterDepthFt, rangeKyd float64) float64

	// Noise returns the ambient noise model the signal excess is
	// standardized against.
	Noise() distuv.Normal
}

// TraceConfig carries the propagation controls shared by all providers.
// The built-in spreading model only consumes the profile sampling fields;
// the angle fan bounds are honoured by ray-tracing providers.
type TraceConfig struct {
	AngleMinDeg  float64
	AngleMaxDeg  float64
	AngleStepDeg float64
	MaxDepthFt   float64
	SVPStepFt    float64
}
