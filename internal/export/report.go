// Package export writes layout recommendations to text, PDF, label sheet,
// spreadsheet and CAD formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/piwi3910/garageplan/internal/model"
)

const (
	reportWidth = 60
	ruleWidth   = 40
)

// nextSteps closes every text report.
var nextSteps = []string{
	"Review the recommended layout",
	"Adjust zones based on your preferences",
	"Use the floor plan to visualize the design",
}

// WriteReport renders a plain-text recommendation report to w.
func WriteReport(w io.Writer, space model.GarageSpace, rec model.LayoutRecommendation) error {
	bw := bufio.NewWriter(w)

	banner := strings.Repeat("=", reportWidth)
	rule := strings.Repeat("-", ruleWidth)
	title := "GARAGE LAYOUT RECOMMENDATION"
	pad := (reportWidth - len(title)) / 2

	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(bw, banner)

	section := func(name string) {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, name)
		fmt.Fprintln(bw, rule)
	}

	section("SUMMARY")
	fmt.Fprintf(bw, "Garage size: %s x %s\n", model.FeetInches(space.Width), model.FeetInches(space.Depth))
	fmt.Fprintf(bw, "Ceiling height: %s\n", model.FeetInches(space.CeilingHeight))
	fmt.Fprintf(bw, "Layout score: %.0f/100\n", rec.Score)
	if area := space.FloorArea(); area > 0 {
		fmt.Fprintf(bw, "Floor in use: %.0f of %.0f sq ft (%.0f%%)\n",
			model.SquareFeet(rec.UsedFloorArea()), model.SquareFeet(area), rec.UsedFloorArea()/area*100)
	}

	section("ZONES PLACED")
	if len(rec.Zones) == 0 {
		fmt.Fprintln(bw, "(none)")
	}
	for _, z := range rec.Zones {
		fmt.Fprintf(bw, "\n%s\n", z.Name)
		fmt.Fprintf(bw, "  Position: %s from W, %s from N\n", model.FeetInches(z.X), model.FeetInches(z.Y))
		fmt.Fprintf(bw, "  Size: %s x %s\n", model.FeetInches(z.Width), model.FeetInches(z.Depth))
		fmt.Fprintf(bw, "  Wall: %s\n", wallLabel(z))
		if z.Notes != "" {
			fmt.Fprintf(bw, "  Note: %s\n", z.Notes)
		}
	}

	if len(rec.Reasoning) > 0 {
		section("REASONING")
		for _, r := range rec.Reasoning {
			fmt.Fprintf(bw, "  * %s\n", r)
		}
	}

	if len(rec.Warnings) > 0 {
		section("WARNINGS")
		for _, warn := range rec.Warnings {
			fmt.Fprintf(bw, "  ! %s\n", warn)
		}
	}

	if len(rec.Constraints) > 0 {
		section("CONSTRAINTS CONSIDERED")
		for _, c := range rec.Constraints {
			fmt.Fprintf(bw, "  - %s\n", c.Description)
		}
	}

	section("NEXT STEPS")
	for i, step := range nextSteps {
		fmt.Fprintf(bw, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, banner)

	return bw.Flush()
}

// wallLabel names the wall a zone hangs on, or where it sits otherwise.
func wallLabel(z model.Zone) string {
	if z.Wall != model.WallNone {
		return z.Wall.String()
	}
	if z.Type == model.ZoneOverheadStorage {
		return "Ceiling"
	}
	return "Floor"
}
