package engine

import (
	"fmt"

	"github.com/piwi3910/garageplan/internal/model"
)

// Fixed platform heuristics (in).
const (
	overheadWorkbenchGap = 24  // Between the workbench and the north platform
	overheadNorthMinRun  = 96  // Free run along the north wall before a platform is offered
	overheadNorthMaxRun  = 144 // Longest north platform
	overheadWestStart    = 72  // Distance of the west platform from the north wall
	overheadWestMaxRun   = 120
	overheadVehicleGap   = 24 // West platform stops short of the first vehicle
	overheadEastStart    = 48
	overheadEastRun      = 96
)

// addOverhead proposes up to three ceiling platforms keyed off the zones
// already on the floor. Platforms are not checked against floor zones.
func (o *Optimizer) addOverhead(l *Layout, profile model.UsageProfile) {
	if !profile.Preference(model.PreferenceOverheadStorage) || l.Space.CeilingHeight < o.Settings.OverheadMinCeiling {
		return
	}

	depth := o.Settings.OverheadPlatformDepth
	var cands []model.Zone

	start := 0.0
	if wbs := l.Placed(model.ZoneWorkbench); len(wbs) > 0 {
		start = wbs[0].X + wbs[0].Width + overheadWorkbenchGap
	}
	if start < l.Space.Width-overheadNorthMinRun {
		cands = append(cands, model.Zone{
			Name:  "Overhead Storage - North",
			X:     start,
			Y:     0,
			Width: min(l.Space.Width-start-overheadWorkbenchGap, overheadNorthMaxRun),
			Depth: depth,
		})
	}

	if vs := l.Placed(model.ZoneVehicle); len(vs) > 0 {
		run := min(vs[0].Y-overheadVehicleGap, overheadWestMaxRun)
		if run > depth {
			cands = append(cands, model.Zone{
				Name:  "Overhead Storage - West",
				X:     0,
				Y:     overheadWestStart,
				Width: depth,
				Depth: run,
			})
		}
	}

	cands = append(cands, model.Zone{
		Name:  "Overhead Storage - East",
		X:     l.Space.Width - depth,
		Y:     overheadEastStart,
		Width: depth,
		Depth: overheadEastRun,
	})

	for _, z := range cands {
		if z.Width <= o.Settings.OverheadMinUseful || z.Depth <= o.Settings.OverheadMinUseful {
			o.logger.Debug("dropped overhead platform", "zone", z.Name, "reason", "too small")
			continue
		}
		if !InBounds(z.Rect(), l.Space) {
			o.logger.Debug("dropped overhead platform", "zone", z.Name, "reason", "out of bounds")
			continue
		}

		z.Type = model.ZoneOverheadStorage
		z.Wall = model.WallNone
		z.Priority = profile.Priority(model.PriorityGeneralStorage)
		z.Notes = fmt.Sprintf("Mount at %s minimum clearance", model.FeetInches(o.Settings.OverheadMountClearance))

		l.Zones = append(l.Zones, z)
		l.Reasoning = append(l.Reasoning, fmt.Sprintf("Placed %s (%s x %s) - ceiling height allows",
			z.Name, model.FeetInches(z.Width), model.FeetInches(z.Depth)))
		o.logger.Debug("placed overhead platform", "zone", z.Name, "x", z.X, "y", z.Y)
	}
}
