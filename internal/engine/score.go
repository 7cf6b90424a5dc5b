package engine

import (
	"math"

	"github.com/piwi3910/garageplan/internal/model"
)

const (
	warningPenalty = 15
	priorityBonus  = 10
)

// Score rates a recommendation from 0 to 100. Every warning costs 15
// points; a placed vehicle or workbench earns 10 when the profile ranks
// that category at 4 or above.
func Score(rec model.LayoutRecommendation, profile model.UsageProfile) float64 {
	score := 100.0 - warningPenalty*float64(len(rec.Warnings))

	if rec.HasZone(model.ZoneVehicle) && profile.Priority(model.PriorityVehicleStorage) >= 4 {
		score += priorityBonus
	}
	if rec.HasZone(model.ZoneWorkbench) && profile.Priority(model.PriorityWorkspace) >= 4 {
		score += priorityBonus
	}

	return math.Max(0, math.Min(100, score))
}
