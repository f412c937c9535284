// Package tables handles the output side of the detection table builder:
// CSV serialization, chart rendering, and SQLite persistence.
package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ntguardian/TacSubGame/internal/sonar"
)

// Header returns the CSV column names for a table keyed by the given
// category field.
func Header(categoryField string) []string {
	return []string{
		categoryField, "detector", "emitter", "range", "tl", "se",
		"se_threshold", "detection_prob", "raw_modifier", "modifier",
	}
}

// formatFloat writes the shortest decimal that parses back to the same
// float64, so CSV round trips are exact.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV serializes a table. Rows keep builder order, so re-reading the
// file reproduces the cross-join ordering.
func WriteCSV(w io.Writer, t sonar.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(t.CategoryField)); err != nil {
		return err
	}
	for _, r := range t.Rows {
		row := []string{
			r.Category,
			r.Detector,
			r.Emitter,
			formatFloat(r.RangeKyd),
			formatFloat(r.TL),
			formatFloat(r.SE),
			strconv.Itoa(r.SEThreshold),
			formatFloat(r.DetectionProb),
			formatFloat(r.RawModifier),
			formatFloat(r.Modifier),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes a fully computed table to path. The file is only
// created once the table exists, so a failed run leaves no partial output.
func WriteFile(path string, t sonar.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses a table previously written by WriteCSV. The sonar class
// is recovered from the category field in the header.
func ReadCSV(r io.Reader) (sonar.Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return sonar.Table{}, err
	}
	if len(records) == 0 {
		return sonar.Table{}, fmt.Errorf("empty table")
	}
	header := records[0]
	if len(header) != 10 {
		return sonar.Table{}, fmt.Errorf("expected 10 columns, got %d", len(header))
	}
	t := sonar.Table{CategoryField: header[0]}
	switch header[0] {
	case sonar.FieldSpeed:
		t.Class = sonar.ClassPassive
	case sonar.FieldSource:
		t.Class = sonar.ClassActive
	default:
		return sonar.Table{}, fmt.Errorf("unknown category field %q", header[0])
	}
	for i, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return sonar.Table{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadFile reads a table CSV from disk.
func ReadFile(path string) (sonar.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return sonar.Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return sonar.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

func parseRow(rec []string) (sonar.Row, error) {
	if len(rec) != 10 {
		return sonar.Row{}, fmt.Errorf("expected 10 columns, got %d", len(rec))
	}
	floats := make([]float64, 0, 6)
	for _, idx := range []int{3, 4, 5, 7, 8, 9} {
		v, err := strconv.ParseFloat(rec[idx], 64)
		if err != nil {
			return sonar.Row{}, fmt.Errorf("column %d: %w", idx+1, err)
		}
		floats = append(floats, v)
	}
	seThreshold, err := strconv.Atoi(rec[6])
	if err != nil {
		return sonar.Row{}, fmt.Errorf("se_threshold: %w", err)
	}
	return sonar.Row{
		Category:      rec[0],
		Detector:      rec[1],
		Emitter:       rec[2],
		RangeKyd:      floats[0],
		TL:            floats[1],
		SE:            floats[2],
		SEThreshold:   seThreshold,
		DetectionProb: floats[3],
		RawModifier:   floats[4],
		Modifier:      floats[5],
	}, nil
}
