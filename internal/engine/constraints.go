package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/garageplan/internal/model"
)

// ConstraintGenerator turns wall features into clearance rectangles.
type ConstraintGenerator struct {
	clearances       map[model.FeatureType]float64
	defaultClearance float64
	pullIn           float64
}

// NewConstraintGenerator captures a private copy of the clearance table.
func NewConstraintGenerator(settings model.LayoutSettings) *ConstraintGenerator {
	clearances := make(map[model.FeatureType]float64, len(settings.FeatureClearances))
	for k, v := range settings.FeatureClearances {
		clearances[model.FeatureType(strings.ToLower(string(k)))] = v
	}
	return &ConstraintGenerator{
		clearances:       clearances,
		defaultClearance: settings.DefaultClearance,
		pullIn:           settings.GarageDoorPullIn,
	}
}

// Clearance returns the distance kept free in front of a feature type.
func (g *ConstraintGenerator) Clearance(t model.FeatureType) float64 {
	if c, ok := g.clearances[model.FeatureType(strings.ToLower(string(t)))]; ok {
		return c
	}
	return g.defaultClearance
}

// Generate walks the walls in N, E, S, W order and emits one constraint per
// feature. Floor features produce nothing.
func (g *ConstraintGenerator) Generate(space model.GarageSpace) []model.Constraint {
	var out []model.Constraint
	for _, wall := range model.Walls {
		for _, f := range space.Features(wall) {
			out = append(out, g.constraintFor(space, wall, f))
		}
	}
	return out
}

func (g *ConstraintGenerator) constraintFor(space model.GarageSpace, wall model.Wall, f model.Feature) model.Constraint {
	ftype := model.FeatureType(strings.ToLower(string(f.Type)))
	clearance := g.Clearance(ftype)

	// The extent perpendicular to the wall. Garage doors get the full
	// pull-in depth instead of the table value.
	normal := clearance
	if ftype.IsGarageDoor() || strings.Contains(strings.ToLower(f.Name), "garage door") {
		ftype = model.FeatureGarageDoor
		normal = g.pullIn
	}

	along := f.Position - f.Width/2
	c := model.Constraint{
		Type:        ftype,
		Wall:        wall,
		Description: fmt.Sprintf("%s - keep %s clear", f.Name, model.FeetInches(clearance)),
	}

	switch wall {
	case model.WallNorth:
		c.X, c.Y, c.Width, c.Depth = along, 0, f.Width, normal
	case model.WallSouth:
		c.X, c.Y, c.Width, c.Depth = along, space.Depth-normal, f.Width, normal
	case model.WallEast:
		c.X, c.Y, c.Width, c.Depth = space.Width-normal, along, normal, f.Width
	case model.WallWest:
		c.X, c.Y, c.Width, c.Depth = 0, along, normal, f.Width
	}

	c.X = math.Max(0, c.X)
	c.Y = math.Max(0, c.Y)
	return c
}
