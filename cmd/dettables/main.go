// dettables builds the active and passive sonar detection tables for the
// game from acoustic propagation parameters.
//
// Usage:
//
//	dettables [flags] ACTIVE_OUT.csv PASSIVE_OUT.csv
//
// Both tables are always produced: one row per category (speed class for
// passive, target class for active) x detector depth x emitter depth x
// range, with signal excess, dice-scale thresholds, detection probability
// and the centered game modifier. Optional flags add a PNG chart, an HTML
// report and a SQLite copy of the tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/ntguardian/TacSubGame/internal/acoustics"
	"github.com/ntguardian/TacSubGame/internal/sonar"
	"github.com/ntguardian/TacSubGame/internal/tables"
)

func main() {
	// Environment
	noiseMean := flag.Float64("noise-mean", 0.0, "Mean of the ambient noise distribution (dB)")
	noiseSD := flag.Float64("noise-sd", 6.0, "Standard deviation of the ambient noise distribution (dB)")
	rangeMin := flag.Float64("range-min", 1.0, "Minimum range (kyd)")
	rangeMax := flag.Float64("range-max", 20.0, "Maximum range (kyd)")
	rangeStep := flag.Float64("range-step", 1.0, "Range increment (kyd)")
	detShallow := flag.Float64("detector-shallow", 60, "Shallow detector depth (ft)")
	detDeep := flag.Float64("detector-deep", 400, "Deep detector depth (ft)")
	emitShallow := flag.Float64("emitter-shallow", 60, "Shallow emitter depth (ft)")
	emitDeep := flag.Float64("emitter-deep", 400, "Deep emitter depth (ft)")
	angleMin := flag.Float64("angle-min", -15, "Minimum ray angle (deg), for ray-tracing providers")
	angleMax := flag.Float64("angle-max", 15, "Maximum ray angle (deg), for ray-tracing providers")
	angleStep := flag.Float64("angle-step", 0.5, "Ray angle step (deg), for ray-tracing providers")
	maxDepth := flag.Float64("max-depth", 8200, "Maximum profile depth (ft)")
	svpStep := flag.Float64("svp-step", 50, "Profile resampling step (ft)")
	frequency := flag.Float64("freq", 1000, "Sonar frequency (Hz)")
	svpPath := flag.String("svp", "", "Measured SVP CSV [depth_m, velocity_mps] (built-in profile if empty)")

	// Passive sonar
	passiveDT := flag.Float64("passive-dt", 10, "Passive detection threshold (dB)")
	passiveDI := flag.Float64("passive-di", math.NaN(), "Explicit passive directivity index (dB)")
	elements := flag.Int("elements", 0, "Passive line array element count (requires -spacing)")
	spacing := flag.Float64("spacing", 0, "Passive line array element spacing (in, requires -elements)")
	sl5 := flag.Float64("sl-5kt", 110, "Source level at 5 knots (dB)")
	sl10 := flag.Float64("sl-10kt", 120, "Source level at 10 knots (dB)")
	sl15 := flag.Float64("sl-15kt", 128, "Source level at 15 knots (dB)")
	sl20 := flag.Float64("sl-20kt", 135, "Source level at 20 knots (dB)")

	// Active sonar
	activeSL := flag.Float64("active-sl", 220, "Active source level (dB)")
	activeDT := flag.Float64("active-dt", 15, "Active detection threshold (dB)")
	activeDiam := flag.Float64("active-diameter", 0, "Active piston transducer diameter (in, 0 = default 18)")
	activeDI := flag.Float64("active-di", math.NaN(), "Explicit active directivity index (dB)")
	tsSubmarine := flag.Float64("ts-submarine", 10, "Submarine target strength (dB)")
	tsSurface := flag.Float64("ts-surface", 20, "Surface ship target strength (dB)")

	// Extra outputs
	plotPrefix := flag.String("plot", "", "Write <prefix>-active.png and <prefix>-passive.png charts")
	htmlPath := flag.String("html", "", "Write an HTML report of both tables")
	dbPath := flag.String("db", "", "Persist both tables to a SQLite file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] ACTIVE_OUT.csv PASSIVE_OUT.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	activeOut, passiveOut := flag.Arg(0), flag.Arg(1)

	ranges, err := sonar.RangeValues(*rangeMin, *rangeMax, *rangeStep)
	if err != nil {
		log.Fatalf("Invalid range specification: %v", err)
	}

	profile := acoustics.DefaultProfile()
	if *svpPath != "" {
		profile, err = acoustics.LoadProfile(*svpPath)
		if err != nil {
			log.Fatalf("Could not load SVP: %v", err)
		}
		log.Printf("Loaded SVP from %s (%d points)", *svpPath, len(profile))
	} else {
		log.Printf("Using built-in SVP (%d points)", len(profile))
	}

	prov := acoustics.NewSpreadingModel(profile, *frequency, *noiseMean, *noiseSD, acoustics.TraceConfig{
		AngleMinDeg:  *angleMin,
		AngleMaxDeg:  *angleMax,
		AngleStepDeg: *angleStep,
		MaxDepthFt:   *maxDepth,
		SVPStepFt:    *svpStep,
	})
	log.Printf("Sonic layer depth: %.0f ft", prov.LayerDepth())

	passiveDir, err := sonar.PassiveDirectivity(*passiveDI, *elements, *spacing)
	if err != nil {
		log.Fatalf("Passive directivity: %v", err)
	}
	activeDir := sonar.ActiveDirectivity(*activeDI, *activeDiam)

	common := sonar.CommonConfig{
		RangesKyd:         ranges,
		DetectorShallowFt: *detShallow,
		DetectorDeepFt:    *detDeep,
		EmitterShallowFt:  *emitShallow,
		EmitterDeepFt:     *emitDeep,
		FrequencyHz:       *frequency,
	}
	passiveCfg := sonar.PassiveConfig{
		DetectionThreshold: *passiveDT,
		Directivity:        passiveDir,
		SourceLevels: []sonar.Category{
			{Name: "5kt", Level: *sl5},
			{Name: "10kt", Level: *sl10},
			{Name: "15kt", Level: *sl15},
			{Name: "20kt", Level: *sl20},
		},
	}
	activeCfg := sonar.ActiveConfig{
		SourceLevel:        *activeSL,
		DetectionThreshold: *activeDT,
		Directivity:        activeDir,
		TargetStrengths: []sonar.Category{
			{Name: "submarine", Level: *tsSubmarine},
			{Name: "surface", Level: *tsSurface},
		},
	}

	adjPassive, adjActive := sonar.ThresholdAdjust(*passiveDT, *activeDT, *noiseSD)

	passiveTable := sonar.BuildPassive(common, passiveCfg, prov, adjPassive)
	activeTable := sonar.BuildActive(common, activeCfg, prov, adjActive)

	for _, t := range []sonar.Table{activeTable, passiveTable} {
		mean, stddev := t.Summary()
		log.Printf("%s table: %d rows, P(detect) %.4f±%.4f", t.Class, len(t.Rows), mean, stddev)
	}

	if err := tables.WriteFile(activeOut, activeTable); err != nil {
		log.Fatalf("Could not write active table: %v", err)
	}
	if err := tables.WriteFile(passiveOut, passiveTable); err != nil {
		log.Fatalf("Could not write passive table: %v", err)
	}
	log.Printf("Active table: %s", activeOut)
	log.Printf("Passive table: %s", passiveOut)

	if *plotPrefix != "" {
		for _, out := range []struct {
			path  string
			table sonar.Table
		}{
			{*plotPrefix + "-active.png", activeTable},
			{*plotPrefix + "-passive.png", passiveTable},
		} {
			if err := tables.WritePlot(out.path, out.table); err != nil {
				log.Fatalf("Could not write plot: %v", err)
			}
			log.Printf("Plot: %s", out.path)
		}
	}

	if *htmlPath != "" {
		if err := tables.WriteHTMLReport(*htmlPath, activeTable, passiveTable); err != nil {
			log.Fatalf("Could not write HTML report: %v", err)
		}
		log.Printf("Report: %s", *htmlPath)
	}

	if *dbPath != "" {
		store, err := tables.OpenStore(*dbPath)
		if err != nil {
			log.Fatalf("Could not open database %s: %v", *dbPath, err)
		}
		defer store.Close()
		for _, t := range []sonar.Table{activeTable, passiveTable} {
			if err := store.SaveTable(t); err != nil {
				log.Fatalf("Could not persist %s table: %v", t.Class, err)
			}
		}
		log.Printf("Database: %s", *dbPath)
	}
}
