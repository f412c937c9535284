package tables

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ntguardian/TacSubGame/internal/sonar"
)

// WriteHTMLReport renders all tables into a single interactive HTML page:
// one line chart per table, one series per (category, detector, emitter)
// combination.
func WriteHTMLReport(path string, ts ...sonar.Table) error {
	page := components.NewPage()
	page.PageTitle = "Detection tables"

	for _, t := range ts {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "520px"}),
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("%s sonar", t.Class),
				Subtitle: fmt.Sprintf("%d rows, detection probability vs range", len(t.Rows)),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)

		keys, series := groupSeries(t)
		line.SetXAxis(rangeLabels(t))
		for _, key := range keys {
			data := make([]opts.LineData, len(series[key]))
			for i, r := range series[key] {
				data[i] = opts.LineData{Value: r.DetectionProb}
			}
			line.AddSeries(key, data)
		}
		page.AddCharts(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report %s: %w", path, err)
	}
	return nil
}

// rangeLabels returns the x-axis labels: the distinct range values in
// builder order.
func rangeLabels(t sonar.Table) []string {
	var labels []string
	seen := make(map[float64]bool)
	for _, r := range t.Rows {
		if seen[r.RangeKyd] {
			continue
		}
		seen[r.RangeKyd] = true
		labels = append(labels, fmt.Sprintf("%g", r.RangeKyd))
	}
	return labels
}
