package engine

import (
	"sort"
	"strings"

	"github.com/piwi3910/garageplan/internal/model"
)

type workbenchStrategy struct {
	walkway float64
}

type wallCandidate struct {
	wall model.Wall
	rect model.Rect
}

func (s workbenchStrategy) Place(l *Layout, d model.ZoneDemand) (model.Zone, bool) {
	for _, c := range s.candidates(l.Space, d) {
		if l.IsClear(c.rect, nil) {
			return zoneAt(d, c.rect, c.wall, "Position for good lighting and electrical access"), true
		}
	}
	return model.Zone{}, false
}

// candidates returns one rectangle per wall, walkway-offset from the wall's
// corner, with walls that have an electrical panel moved to the front.
// Benches on the east and west walls are turned to run along the wall.
func (s workbenchStrategy) candidates(space model.GarageSpace, d model.ZoneDemand) []wallCandidate {
	cands := []wallCandidate{
		{model.WallNorth, model.Rect{X: s.walkway, Y: 0, W: d.Width, H: d.Depth}},
		{model.WallEast, model.Rect{X: space.Width - d.Depth, Y: s.walkway, W: d.Depth, H: d.Width}},
		{model.WallWest, model.Rect{X: 0, Y: s.walkway, W: d.Depth, H: d.Width}},
	}

	// Only the east wall is checked for a panel.
	electrical := map[model.Wall]bool{
		model.WallEast: hasElectrical(space.East),
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return electrical[cands[i].wall] && !electrical[cands[j].wall]
	})
	return cands
}

func hasElectrical(features []model.Feature) bool {
	for _, f := range features {
		name := strings.ToLower(f.Name)
		if strings.Contains(name, "electrical") || strings.Contains(name, "panel") || f.Type == model.FeatureElectricalPanel {
			return true
		}
	}
	return false
}
