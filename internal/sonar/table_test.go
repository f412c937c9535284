package sonar

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// stubProvider returns a transmission loss that depends on range and the
// detector depth, so depth classes produce distinct rows.
type stubProvider struct {
	noise distuv.Normal
}

func (s stubProvider) TransmissionLoss(detFt, emitFt, rangeKyd float64) float64 {
	return 60 + 2*rangeKyd + detFt/1000 + emitFt/2000
}

func (s stubProvider) Noise() distuv.Normal { return s.noise }

func testCommon(nRanges int) CommonConfig {
	ranges := make([]float64, nRanges)
	for i := range ranges {
		ranges[i] = float64(i + 1)
	}
	return CommonConfig{
		RangesKyd:         ranges,
		DetectorShallowFt: 60,
		DetectorDeepFt:    400,
		EmitterShallowFt:  60,
		EmitterDeepFt:     400,
		FrequencyHz:       1000,
	}
}

func fourSpeeds() []Category {
	return []Category{
		{Name: "5kt", Level: 110},
		{Name: "10kt", Level: 120},
		{Name: "15kt", Level: 128},
		{Name: "20kt", Level: 135},
	}
}

func twoSources() []Category {
	return []Category{
		{Name: "submarine", Level: 10},
		{Name: "surface", Level: 20},
	}
}

func TestBuildPassiveCrossJoinComplete(t *testing.T) {
	const nRanges = 7
	common := testCommon(nRanges)
	prov := stubProvider{noise: distuv.Normal{Mu: 0, Sigma: 6}}
	cfg := PassiveConfig{
		DetectionThreshold: 10,
		Directivity:        ExplicitDI(12),
		SourceLevels:       fourSpeeds(),
	}
	table := BuildPassive(common, cfg, prov, 0)

	want := 4 * 4 * nRanges
	if len(table.Rows) != want {
		t.Fatalf("passive table has %d rows, want %d", len(table.Rows), want)
	}
	if table.Class != ClassPassive || table.CategoryField != FieldSpeed {
		t.Errorf("table labelled %s/%s", table.Class, table.CategoryField)
	}

	// Exactly one row per key.
	seen := make(map[string]bool)
	for _, r := range table.Rows {
		key := fmt.Sprintf("%s|%s|%s|%v", r.Category, r.Detector, r.Emitter, r.RangeKyd)
		if seen[key] {
			t.Fatalf("duplicate key %s", key)
		}
		seen[key] = true
	}
}

func TestBuildActiveCrossJoinComplete(t *testing.T) {
	const nRanges = 5
	common := testCommon(nRanges)
	prov := stubProvider{noise: distuv.Normal{Mu: 0, Sigma: 6}}
	cfg := ActiveConfig{
		SourceLevel:        220,
		DetectionThreshold: 15,
		Directivity:        ExplicitDI(20),
		TargetStrengths:    twoSources(),
	}
	table := BuildActive(common, cfg, prov, 0)

	want := 2 * 4 * nRanges
	if len(table.Rows) != want {
		t.Fatalf("active table has %d rows, want %d", len(table.Rows), want)
	}
	if table.Class != ClassActive || table.CategoryField != FieldSource {
		t.Errorf("table labelled %s/%s", table.Class, table.CategoryField)
	}
}

func TestBuildActiveRoundTrip(t *testing.T) {
	common := testCommon(1)
	prov := stubProvider{noise: distuv.Normal{Mu: 0, Sigma: 6}}
	active := BuildActive(common, ActiveConfig{
		SourceLevel:        220,
		DetectionThreshold: 10,
		Directivity:        ExplicitDI(12),
		TargetStrengths:    []Category{{Name: "submarine", Level: 0}},
	}, prov, 0)
	passive := BuildPassive(common, PassiveConfig{
		DetectionThreshold: 10,
		Directivity:        ExplicitDI(12),
		SourceLevels:       []Category{{Name: "5kt", Level: 220}},
	}, prov, 0)

	// Same SL and zero TS: active pays transmission loss a second time.
	for i := range active.Rows {
		a, p := active.Rows[i], passive.Rows[i]
		if math.Abs((p.SE-a.SE)-a.TL) > 1e-9 {
			t.Errorf("row %d: active SE should trail passive SE by TL: passive %v, active %v, tl %v",
				i, p.SE, a.SE, a.TL)
		}
	}
}

func TestBuildAppliesAdjustment(t *testing.T) {
	common := testCommon(3)
	prov := stubProvider{noise: distuv.Normal{Mu: 0, Sigma: 6}}
	cfg := PassiveConfig{
		DetectionThreshold: 10,
		Directivity:        ExplicitDI(12),
		SourceLevels:       fourSpeeds(),
	}
	base := BuildPassive(common, cfg, prov, 0)
	shifted := BuildPassive(common, cfg, prov, 1.5)
	for i := range base.Rows {
		diff := base.Rows[i].Modifier - shifted.Rows[i].Modifier
		if math.Abs(diff-1.5) > 1e-12 {
			t.Fatalf("row %d: adjustment shifted modifier by %v, want 1.5", i, diff)
		}
		if base.Rows[i].RawModifier != shifted.Rows[i].RawModifier {
			t.Fatalf("row %d: raw modifier must not depend on adjustment", i)
		}
	}
}

func TestDetectionProbDecaysWithRange(t *testing.T) {
	common := testCommon(20)
	prov := stubProvider{noise: distuv.Normal{Mu: 0, Sigma: 6}}
	table := BuildPassive(common, PassiveConfig{
		DetectionThreshold: 10,
		Directivity:        ExplicitDI(12),
		SourceLevels:       []Category{{Name: "10kt", Level: 120}},
	}, prov, 0)

	// Within one detector/emitter pair, probability never rises with range.
	byPair := make(map[string][]Row)
	for _, r := range table.Rows {
		k := r.Detector + "|" + r.Emitter
		byPair[k] = append(byPair[k], r)
	}
	for k, rows := range byPair {
		for i := 1; i < len(rows); i++ {
			if rows[i].DetectionProb > rows[i-1].DetectionProb+1e-12 {
				t.Errorf("%s: probability rose between ranges %v and %v", k, rows[i-1].RangeKyd, rows[i].RangeKyd)
			}
		}
	}
}

func TestSummary(t *testing.T) {
	table := Table{Rows: []Row{
		{DetectionProb: 0.2},
		{DetectionProb: 0.4},
		{DetectionProb: 0.6},
	}}
	mean, stddev := table.Summary()
	if math.Abs(mean-0.4) > 1e-12 {
		t.Errorf("mean = %v, want 0.4", mean)
	}
	if math.Abs(stddev-0.2) > 1e-12 {
		t.Errorf("stddev = %v, want 0.2", stddev)
	}
}

func TestRangeValues(t *testing.T) {
	vals, err := RangeValues(1, 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 5 || vals[0] != 1 || vals[4] != 5 {
		t.Errorf("RangeValues(1,5,1) = %v", vals)
	}
	if _, err := RangeValues(1, 5, 0); err == nil {
		t.Error("expected error for zero step")
	}
	if _, err := RangeValues(5, 1, 1); err == nil {
		t.Error("expected error for max below min")
	}
}

func TestPassiveDirectivityValidation(t *testing.T) {
	nan := math.NaN()
	if _, err := PassiveDirectivity(nan, 64, 0); err == nil {
		t.Error("elements without spacing should be rejected")
	}
	if _, err := PassiveDirectivity(nan, 0, 0.5); err == nil {
		t.Error("spacing without elements should be rejected")
	}

	spec, err := PassiveDirectivity(nan, 0, 0)
	if err != nil {
		t.Fatalf("default spec: %v", err)
	}
	if _, ok := spec.(DefaultLineArray); !ok {
		t.Errorf("expected DefaultLineArray, got %T", spec)
	}

	spec, err = PassiveDirectivity(nan, 64, 0.5)
	if err != nil {
		t.Fatalf("geometry spec: %v", err)
	}
	if _, ok := spec.(LineArrayGeometry); !ok {
		t.Errorf("expected LineArrayGeometry, got %T", spec)
	}

	spec, err = PassiveDirectivity(25, 64, 0)
	if err != nil {
		t.Fatalf("explicit DI must win over partial geometry: %v", err)
	}
	if di := spec.DI(5); di != 25 {
		t.Errorf("explicit DI = %v, want 25", di)
	}
}

func TestActiveDirectivityDefaults(t *testing.T) {
	nan := math.NaN()
	spec := ActiveDirectivity(nan, 0)
	piston, ok := spec.(PistonGeometry)
	if !ok {
		t.Fatalf("expected PistonGeometry, got %T", spec)
	}
	if piston.DiameterIn != 18.0 {
		t.Errorf("default diameter = %v, want 18", piston.DiameterIn)
	}
	if di := ActiveDirectivity(30, 0).DI(5); di != 30 {
		t.Errorf("explicit DI = %v, want 30", di)
	}
}

func TestDefaultLineArrayIncludesBonus(t *testing.T) {
	withBonus := DefaultLineArray{}.DI(5)
	bare := LineArrayGeometry{Elements: 100, SpacingIn: 0.5}.DI(5)
	if math.Abs(withBonus-bare-40) > 1e-12 {
		t.Errorf("default line array bonus = %v, want 40", withBonus-bare)
	}
}
