// Package alert computes the probability that a submarine is alerted by at
// least one detection point during a turn. Each detection point rolls 2d6
// plus its own modifier against the detection threshold; the submarine
// itself makes one additional check against the threshold reduced by its
// modifier. Rolls are independent.
package alert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ntguardian/TacSubGame/internal/dice"
)

// Probability returns the chance that at least one check meets or exceeds
// the threshold.
//
// With no detection points the submarine check alone decides the alert;
// the product over points is skipped entirely rather than contributing an
// empty product.
func Probability(threshold, subModifier int, pointModifiers []int) float64 {
	pNone := dice.ProbBelow(threshold - subModifier)
	for _, m := range pointModifiers {
		pNone *= dice.ProbBelow(threshold - m)
	}
	return 1 - pNone
}

// ParseModifiers parses a comma-separated list of integer modifiers, as
// passed on the command line. Empty input yields an empty list, meaning no
// detection points. Blank entries between commas are skipped.
func ParseModifiers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid modifier '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
