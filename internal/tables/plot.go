package tables

import (
	"fmt"
	"image/color"

	"github.com/ntguardian/TacSubGame/internal/sonar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette cycles across series lines.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
}

// WritePlot renders detection probability against range, one line per
// (category, detector, emitter) combination, and saves a PNG at path.
func WritePlot(path string, t sonar.Table) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s sonar detection probability", t.Class)
	p.X.Label.Text = "range (kyd)"
	p.Y.Label.Text = "P(detect)"
	p.Y.Min = 0
	p.Y.Max = 1.05
	p.Legend.Top = true

	keys, series := groupSeries(t)
	for i, key := range keys {
		pts := make(plotter.XYs, len(series[key]))
		for j, r := range series[key] {
			pts[j].X = r.RangeKyd
			pts[j].Y = r.DetectionProb
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", key, err)
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(key, line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// groupSeries splits rows into per-combination series, preserving builder
// order.
func groupSeries(t sonar.Table) ([]string, map[string][]sonar.Row) {
	series := make(map[string][]sonar.Row)
	var keys []string
	for _, r := range t.Rows {
		key := fmt.Sprintf("%s %s/%s", r.Category, r.Detector, r.Emitter)
		if _, ok := series[key]; !ok {
			keys = append(keys, key)
		}
		series[key] = append(series[key], r)
	}
	return keys, series
}
