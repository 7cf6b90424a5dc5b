package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/garageplan/internal/model"
)

// PlacementStrategy finds a position for one demand. It must not modify
// the layout; the caller records the zone when ok is true.
type PlacementStrategy interface {
	Place(l *Layout, d model.ZoneDemand) (zone model.Zone, ok bool)
}

// PlacementFunc adapts a plain function to PlacementStrategy.
type PlacementFunc func(l *Layout, d model.ZoneDemand) (model.Zone, bool)

func (f PlacementFunc) Place(l *Layout, d model.ZoneDemand) (model.Zone, bool) {
	return f(l, d)
}

func defaultStrategies(settings model.LayoutSettings) map[model.ZoneType]PlacementStrategy {
	return map[model.ZoneType]PlacementStrategy{
		model.ZoneVehicle: vehicleStrategy{
			walkway: settings.Walkway,
			gap:     settings.VehicleGap,
		},
		model.ZoneWorkbench: workbenchStrategy{
			walkway: settings.Walkway,
		},
		model.ZoneWallStorage: wallStorageStrategy{
			step:     settings.WallStorageStep,
			fallback: settings.WallStorageFallbackStep,
		},
	}
}

// SortDemands orders demands by priority, highest first. Equal priorities
// keep their generation order.
func SortDemands(demands []model.ZoneDemand) []model.ZoneDemand {
	sorted := append([]model.ZoneDemand(nil), demands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// place runs every demand through its strategy exactly once, in priority
// order. Failures become warnings and never stop the run.
func (o *Optimizer) place(l *Layout, demands []model.ZoneDemand) {
	for _, d := range SortDemands(demands) {
		strategy, ok := o.strategies[d.Type]
		var zone model.Zone
		if ok {
			zone, ok = strategy.Place(l, d)
		}
		if !ok {
			o.logger.Warn("could not place zone", "zone", d.Name, "type", d.Type)
			l.Warnings = append(l.Warnings, fmt.Sprintf("Could not place %s - insufficient space", d.Name))
			continue
		}

		l.Zones = append(l.Zones, zone)
		l.Reasoning = append(l.Reasoning, fmt.Sprintf("Placed %s on %s wall at (%s, %s)",
			zone.Name, wallTag(zone.Wall), model.FeetInches(zone.X), model.FeetInches(zone.Y)))
		o.logger.Debug("placed zone", "zone", zone.Name, "wall", zone.Wall.String(), "x", zone.X, "y", zone.Y)
	}
}

func wallTag(w model.Wall) string {
	if w == model.WallNone {
		return "floor"
	}
	return string(w)
}

func zoneAt(d model.ZoneDemand, r model.Rect, wall model.Wall, notes string) model.Zone {
	return model.Zone{
		Type:     d.Type,
		Name:     d.Name,
		X:        r.X,
		Y:        r.Y,
		Width:    r.W,
		Depth:    r.H,
		Wall:     wall,
		Priority: d.Priority,
		Notes:    notes,
	}
}
