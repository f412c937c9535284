// Package acoustics is the propagation boundary for the detection table
// builder. It owns the sound velocity profile handling, the directivity
// index formulas, and the built-in transmission-loss provider. Anything
// heavier (full ray tracing, profile refinement) is expected to arrive as
// an alternative Provider implementation, not to be added here.
package acoustics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/ntguardian/TacSubGame/internal/units"
)

// ProfilePoint is one sample of a sound velocity profile, in feet and
// feet per second.
type ProfilePoint struct {
	DepthFt    float64
	VelocityFt float64
}

// Profile is a sound velocity profile sorted by increasing depth.
type Profile []ProfilePoint

// defaultProfileMeters is the built-in deep-water profile used when no
// measured profile is supplied: depth in meters, velocity in m/s. Surface
// duct over a channel axis near 1000 m, velocity recovering with pressure
// below it.
var defaultProfileMeters = [26][2]float64{
	{0, 1522.0}, {10, 1522.2}, {20, 1522.3}, {30, 1521.8}, {50, 1520.6},
	{75, 1518.4}, {100, 1515.9}, {125, 1513.0}, {150, 1510.1}, {200, 1505.3},
	{250, 1501.2}, {300, 1497.8}, {400, 1493.0}, {500, 1489.6}, {600, 1487.1},
	{700, 1485.3}, {800, 1484.0}, {900, 1483.2}, {1000, 1482.8}, {1100, 1482.9},
	{1200, 1483.4}, {1400, 1485.0}, {1600, 1487.1}, {1800, 1489.5},
	{2000, 1492.1}, {2500, 1499.2},
}

// DefaultProfile returns the built-in profile converted to feet units.
func DefaultProfile() Profile {
	p := make(Profile, 0, len(defaultProfileMeters))
	for _, row := range defaultProfileMeters {
		p = append(p, ProfilePoint{
			DepthFt:    units.MetersToFeet(row[0]),
			VelocityFt: units.MetersToFeet(row[1]),
		})
	}
	return p
}

// LoadProfile reads a two-column [depth, velocity] CSV in metric units and
// returns the profile in feet units. A non-numeric first row is treated as
// a header and skipped.
func LoadProfile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open SVP file: %w", err)
	}
	defer f.Close()
	p, err := ReadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("read SVP file %s: %w", path, err)
	}
	return p, nil
}

// ReadProfile parses profile CSV data in metric units.
func ReadProfile(r io.Reader) (Profile, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	var p Profile
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+1, len(rec))
		}
		depth, errD := strconv.ParseFloat(rec[0], 64)
		vel, errV := strconv.ParseFloat(rec[1], 64)
		if errD != nil || errV != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("row %d: non-numeric value in %v", i+1, rec)
		}
		p = append(p, ProfilePoint{
			DepthFt:    units.MetersToFeet(depth),
			VelocityFt: units.MetersToFeet(vel),
		})
	}
	if len(p) < 2 {
		return nil, fmt.Errorf("profile needs at least 2 rows, got %d", len(p))
	}
	sort.Slice(p, func(i, j int) bool { return p[i].DepthFt < p[j].DepthFt })
	return p, nil
}

// SpeedAt returns the sound speed at the given depth by linear
// interpolation, clamped to the profile's end points.
func (p Profile) SpeedAt(depthFt float64) float64 {
	if len(p) == 0 {
		return 0
	}
	if depthFt <= p[0].DepthFt {
		return p[0].VelocityFt
	}
	last := p[len(p)-1]
	if depthFt >= last.DepthFt {
		return last.VelocityFt
	}
	for i := 1; i < len(p); i++ {
		if depthFt <= p[i].DepthFt {
			lo, hi := p[i-1], p[i]
			frac := (depthFt - lo.DepthFt) / (hi.DepthFt - lo.DepthFt)
			return lo.VelocityFt + frac*(hi.VelocityFt-lo.VelocityFt)
		}
	}
	return last.VelocityFt
}

// Resample returns the profile sampled at fixed depth steps from the
// surface down to maxDepth. Steps or depths that are not positive leave
// the profile unchanged.
func (p Profile) Resample(stepFt, maxDepthFt float64) Profile {
	if stepFt <= 0 || maxDepthFt <= 0 || len(p) == 0 {
		return p
	}
	var out Profile
	for d := 0.0; d <= maxDepthFt+1e-9; d += stepFt {
		out = append(out, ProfilePoint{DepthFt: d, VelocityFt: p.SpeedAt(d)})
	}
	return out
}

// ChannelAxisDepth returns the depth of the minimum sound speed, the axis
// of the deep sound channel.
func (p Profile) ChannelAxisDepth() float64 {
	if len(p) == 0 {
		return 0
	}
	best := 0
	for i, pt := range p {
		if pt.VelocityFt < p[best].VelocityFt {
			best = i
		}
	}
	return p[best].DepthFt
}

// LayerDepth returns the sonic layer depth: the depth of maximum sound
// speed at or above the channel axis. Sources and receivers on opposite
// sides of this depth are poorly coupled.
func (p Profile) LayerDepth() float64 {
	if len(p) == 0 {
		return 0
	}
	axis := p.ChannelAxisDepth()
	best := 0
	for i, pt := range p {
		if pt.DepthFt > axis {
			break
		}
		if pt.VelocityFt > p[best].VelocityFt {
			best = i
		}
	}
	return p[best].DepthFt
}
