package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FeetInches formats a length in inches as feet and inches,
// e.g. 90 -> 7' 6", 96 -> 8', 6 -> 6". Lengths round to whole inches.
func FeetInches(inches float64) string {
	total := math.Round(inches)
	feet := math.Floor(total / 12)
	rem := total - feet*12
	switch {
	case rem == 0:
		return fmt.Sprintf("%.0f'", feet)
	case feet == 0:
		return fmt.Sprintf("%.0f\"", rem)
	default:
		return fmt.Sprintf("%.0f' %.0f\"", feet, rem)
	}
}

// SquareFeet converts square inches to square feet.
func SquareFeet(sqin float64) float64 {
	return sqin / 144
}

// ParseLength reads a length in inches. A trailing " or in is accepted,
// and feet-inch values such as 16' or 10'6" are converted.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, "in")
	s = strings.TrimSpace(strings.TrimSuffix(s, `"`))

	if feet, rest, ok := strings.Cut(s, "'"); ok {
		ft, err := strconv.ParseFloat(strings.TrimSpace(feet), 64)
		if err != nil {
			return 0, err
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return ft * 12, nil
		}
		in, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, err
		}
		return ft*12 + in, nil
	}
	return strconv.ParseFloat(s, 64)
}
