package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/garageplan/internal/engine"
	"github.com/piwi3910/garageplan/internal/model"
)

func TestWriteReportSections(t *testing.T) {
	space, rec := buildTestLayout()

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, space, rec))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 60)+"\n"))
	for _, want := range []string{
		"GARAGE LAYOUT RECOMMENDATION",
		"SUMMARY",
		"Garage size: 24' x 22'",
		"Ceiling height: 9'",
		"Layout score: 95/100",
		"ZONES PLACED",
		"2019 Honda Civic",
		"  Position: 2' 6\" from W, 6' 10\" from N",
		"  Size: 10' x 15' 2\"",
		"  Wall: South",
		"  Note: Pull in from garage door",
		"  Wall: Ceiling",
		"REASONING",
		"  * Placed 2019 Honda Civic",
		"WARNINGS",
		"  ! Could not place Wall Storage 3 - insufficient space",
		"CONSTRAINTS CONSIDERED",
		"  - Electrical Panel - keep 3' clear",
		"NEXT STEPS",
		"  1. Review the recommended layout",
		"  3. Use the floor plan to visualize the design",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteReportOmitsEmptySections(t *testing.T) {
	space, rec := buildTestLayout()
	rec.Warnings = nil
	rec.Constraints = nil

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, space, rec))

	assert.NotContains(t, buf.String(), "WARNINGS")
	assert.NotContains(t, buf.String(), "CONSTRAINTS CONSIDERED")
	assert.Contains(t, buf.String(), "REASONING")
}

func TestWriteReportNoZones(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, model.NewGarageSpace(240, 240, 96), model.LayoutRecommendation{}))
	assert.Contains(t, buf.String(), "(none)")
}

func TestWriteReportFromOptimizer(t *testing.T) {
	space := model.NewGarageSpace(240, 264, 96)
	space.South = []model.Feature{model.NewFeature("Garage Door", "", 120, 0)}
	profile := model.UsageProfile{
		Vehicles: []model.Vehicle{{Make: "Mazda", Model: "3", Length: 175, Width: 70, MustFitInside: true}},
	}

	rec, err := engine.New(model.DefaultSettings()).Optimize(space, profile)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, space, rec))
	assert.Contains(t, buf.String(), "Mazda 3")
	assert.Contains(t, buf.String(), "Garage Door - keep")
}

func TestWallLabel(t *testing.T) {
	assert.Equal(t, "East", wallLabel(model.Zone{Type: model.ZoneWorkbench, Wall: model.WallEast}))
	assert.Equal(t, "Ceiling", wallLabel(model.Zone{Type: model.ZoneOverheadStorage}))
	assert.Equal(t, "Floor", wallLabel(model.Zone{Type: model.ZoneFloorStorage}))
}
