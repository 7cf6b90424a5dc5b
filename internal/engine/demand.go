package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/garageplan/internal/model"
)

// Section counts for the wall storage tiers.
const (
	maxWallSectionsHigh  = 15
	maxWallSectionsBase  = 8
	wallSectionsMaxedOut = 20
)

// DemandPlanner decides which zones a usage profile asks for and how big
// they are. It never places anything and never fails.
type DemandPlanner struct {
	sizes          map[string]model.Size
	vehicleSide    float64
	vehicleFront   float64
	vehicleRear    float64
	workbenchFront float64
}

func NewDemandPlanner(settings model.LayoutSettings) *DemandPlanner {
	sizes := make(map[string]model.Size, len(settings.ZoneSizes))
	for k, v := range settings.ZoneSizes {
		sizes[k] = v
	}
	return &DemandPlanner{
		sizes:          sizes,
		vehicleSide:    settings.VehicleSide,
		vehicleFront:   settings.VehicleFront,
		vehicleRear:    settings.VehicleRear,
		workbenchFront: settings.WorkbenchFront,
	}
}

// Plan returns vehicle demands, then the workbench, then wall storage
// sections. That order breaks priority ties during placement.
func (p *DemandPlanner) Plan(profile model.UsageProfile) []model.ZoneDemand {
	var demands []model.ZoneDemand
	demands = append(demands, p.vehicles(profile)...)
	if d, ok := p.workbench(profile); ok {
		demands = append(demands, d)
	}
	demands = append(demands, p.wallStorage(profile)...)
	return demands
}

func (p *DemandPlanner) vehicles(profile model.UsageProfile) []model.ZoneDemand {
	vehicles := profile.MustFitVehicles()
	n := len(vehicles)

	// A lone car gets door room on both sides; side by side cars share.
	side := p.vehicleSide
	if n == 1 {
		side = 2 * p.vehicleSide
	}

	demands := make([]model.ZoneDemand, 0, n)
	for i, v := range vehicles {
		name := v.DisplayName()
		if name == "" {
			name = fmt.Sprintf("Vehicle %d", i+1)
		}
		demands = append(demands, model.ZoneDemand{
			Type:         model.ZoneVehicle,
			Name:         name,
			Width:        v.EffectiveWidth() + side,
			Depth:        v.EffectiveLength() + p.vehicleFront + p.vehicleRear,
			Priority:     profile.Priority(model.PriorityVehicleStorage),
			VehicleIndex: i,
			VehicleCount: n,
		})
	}
	return demands
}

func (p *DemandPlanner) workbench(profile model.UsageProfile) (model.ZoneDemand, bool) {
	priority := profile.Priority(model.PriorityWorkspace)
	if len(profile.WorkActivities) == 0 && priority < 3 {
		return model.ZoneDemand{}, false
	}

	size := p.sizes[WorkbenchTier(priority, profile.NeedsLargeWorkspace())]
	return model.ZoneDemand{
		Type:     model.ZoneWorkbench,
		Name:     "Workbench",
		Width:    size.Width,
		Depth:    size.Depth + p.workbenchFront,
		Priority: priority,
	}, true
}

// WorkbenchTier picks the workbench size key for a workspace priority.
func WorkbenchTier(priority int, needsLarge bool) string {
	switch {
	case priority >= 5 || (priority >= 4 && needsLarge):
		return model.SizeWorkbenchLarge
	case needsLarge || priority >= 4:
		return model.SizeWorkbenchMedium
	default:
		return model.SizeWorkbenchSmall
	}
}

func (p *DemandPlanner) wallStorage(profile model.UsageProfile) []model.ZoneDemand {
	if !profile.Preference(model.PreferenceWallStorage) {
		return nil
	}

	priority := profile.Priority(model.PriorityGeneralStorage)
	count := WallSectionCount(
		priority,
		len(profile.StorageCategories),
		profile.CountAccess(model.AccessDaily),
		profile.CountAccess(model.AccessWeekly),
	)

	size := p.sizes[model.SizeWallStorageSection]
	demands := make([]model.ZoneDemand, 0, count)
	for i := 0; i < count; i++ {
		demands = append(demands, model.ZoneDemand{
			Type:     model.ZoneWallStorage,
			Name:     fmt.Sprintf("Wall Storage %d", i+1),
			Width:    size.Width,
			Depth:    size.Depth,
			Priority: priority,
		})
	}
	return demands
}

// WallSectionCount returns how many wall storage sections to request.
func WallSectionCount(priority, categories, daily, weekly int) int {
	base := 2 + categories + 2*daily + weekly
	switch {
	case priority >= 5:
		return wallSectionsMaxedOut
	case priority >= 4:
		return min(maxWallSectionsHigh, int(math.Round(float64(base)*1.5)))
	default:
		return min(maxWallSectionsBase, base)
	}
}
