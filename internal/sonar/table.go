package sonar

import (
	"github.com/ntguardian/TacSubGame/internal/acoustics"
	"gonum.org/v1/gonum/stat"
)

// Depth class labels for the detector/emitter cross join.
const (
	DepthShallow = "shallow"
	DepthDeep    = "deep"
)

// Sonar class labels.
const (
	ClassPassive = "passive"
	ClassActive  = "active"
)

// Category field column names.
const (
	FieldSpeed  = "speed"
	FieldSource = "source"
)

// Row is one detection-table entry: a (category, detector depth, emitter
// depth, range) combination with its derived columns.
type Row struct {
	Category      string
	Detector      string
	Emitter       string
	RangeKyd      float64
	TL            float64
	SE            float64
	SEThreshold   int
	DetectionProb float64
	RawModifier   float64
	Modifier      float64
}

// Table is one complete detection table for a sonar class.
type Table struct {
	Class         string
	CategoryField string
	Rows          []Row
}

type depthClass struct {
	name    string
	depthFt float64
}

// BuildPassive builds the passive detection table: one row per
// speed × detector depth × emitter depth × range combination.
func BuildPassive(common CommonConfig, cfg PassiveConfig, prov acoustics.Provider, adjust float64) Table {
	wavelength := common.wavelength(prov)
	di := cfg.Directivity.DI(wavelength)
	rows := buildRows(common, cfg.SourceLevels, prov, adjust, func(level, tl, noiseMean float64) float64 {
		return SignalExcessPassive(level, tl, noiseMean, di, cfg.DetectionThreshold)
	})
	return Table{Class: ClassPassive, CategoryField: FieldSpeed, Rows: rows}
}

// BuildActive builds the active detection table: one row per
// source × detector depth × emitter depth × range combination. The
// category level is the target strength; transmission loss is applied
// twice for the round trip.
func BuildActive(common CommonConfig, cfg ActiveConfig, prov acoustics.Provider, adjust float64) Table {
	wavelength := common.wavelength(prov)
	di := cfg.Directivity.DI(wavelength)
	rows := buildRows(common, cfg.TargetStrengths, prov, adjust, func(level, tl, noiseMean float64) float64 {
		return SignalExcessActive(cfg.SourceLevel, tl, level, noiseMean, di, cfg.DetectionThreshold)
	})
	return Table{Class: ClassActive, CategoryField: FieldSource, Rows: rows}
}

func (c CommonConfig) wavelength(prov acoustics.Provider) float64 {
	speed := referenceSoundSpeed(prov, c.DetectorShallowFt)
	return acoustics.Wavelength(speed, c.FrequencyHz)
}

// referenceSoundSpeed asks the provider's profile for the sound speed at
// the reference depth when it exposes one, falling back to the built-in
// profile otherwise.
func referenceSoundSpeed(prov acoustics.Provider, depthFt float64) float64 {
	type profiled interface{ Profile() acoustics.Profile }
	if p, ok := prov.(profiled); ok {
		return p.Profile().SpeedAt(depthFt)
	}
	return acoustics.DefaultProfile().SpeedAt(depthFt)
}

func buildRows(common CommonConfig, categories []Category, prov acoustics.Provider, adjust float64, se func(level, tl, noiseMean float64) float64) []Row {
	detectors := []depthClass{
		{DepthShallow, common.DetectorShallowFt},
		{DepthDeep, common.DetectorDeepFt},
	}
	emitters := []depthClass{
		{DepthShallow, common.EmitterShallowFt},
		{DepthDeep, common.EmitterDeepFt},
	}
	noise := prov.Noise()

	rows := make([]Row, 0, len(categories)*len(detectors)*len(emitters)*len(common.RangesKyd))
	for _, cat := range categories {
		for _, det := range detectors {
			for _, emit := range emitters {
				for _, r := range common.RangesKyd {
					tl := prov.TransmissionLoss(det.depthFt, emit.depthFt, r)
					excess := se(cat.Level, tl, noise.Mu)
					seThreshold := SonarThreshold(excess)
					rawMod := RawModifier(seThreshold, noise.Mu, noise.Sigma)
					rows = append(rows, Row{
						Category:      cat.Name,
						Detector:      det.name,
						Emitter:       emit.name,
						RangeKyd:      r,
						TL:            tl,
						SE:            excess,
						SEThreshold:   seThreshold,
						DetectionProb: DetectionProb(rawMod),
						RawModifier:   rawMod,
						Modifier:      rawMod - adjust,
					})
				}
			}
		}
	}
	return rows
}

// Summary returns the mean and sample standard deviation of the detection
// probabilities across the table, for operator feedback.
func (t Table) Summary() (mean, stddev float64) {
	if len(t.Rows) == 0 {
		return 0, 0
	}
	probs := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		probs[i] = r.DetectionProb
	}
	return stat.Mean(probs, nil), stat.StdDev(probs, nil)
}
