package engine

import (
	"fmt"

	"github.com/piwi3910/garageplan/internal/model"
)

// ComparisonScenario is a named profile and settings pair to run against
// the same garage.
type ComparisonScenario struct {
	Name     string
	Settings model.LayoutSettings
	Profile  model.UsageProfile
}

// ComparisonResult holds the recommendation and summary figures for a
// single scenario.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Result          model.LayoutRecommendation
	ZonesPlaced     int
	WarningCount    int
	Score           float64
	FloorUsePercent float64
}

// CompareScenarios runs the optimizer once per scenario and returns the
// results in scenario order. The only error is invalid garage geometry,
// which is checked before any scenario runs.
func CompareScenarios(scenarios []ComparisonScenario, space model.GarageSpace, opts ...Option) ([]ComparisonResult, error) {
	if err := ValidateSpace(space); err != nil {
		return nil, err
	}

	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		opt := New(scenario.Settings, opts...)
		rec, err := opt.Optimize(space, scenario.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Result:          rec,
			ZonesPlaced:     len(rec.Zones),
			WarningCount:    len(rec.Warnings),
			Score:           rec.Score,
			FloorUsePercent: rec.UsedFloorArea() / space.FloorArea() * 100,
		})
	}
	return results, nil
}

// BuildDefaultScenarios derives what-if variants from the current profile
// and settings: the storage preferences flipped, the workspace pushed to top
// priority and a narrower walkway.
func BuildDefaultScenarios(settings model.LayoutSettings, profile model.UsageProfile) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Profile", Settings: settings, Profile: profile},
	}

	overhead := profile.Preference(model.PreferenceOverheadStorage)
	name := "With Overhead Storage"
	if overhead {
		name = "Without Overhead Storage"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     name,
		Settings: settings,
		Profile:  profile.WithPreference(model.PreferenceOverheadStorage, !overhead),
	})

	wall := profile.Preference(model.PreferenceWallStorage)
	name = "With Wall Storage"
	if wall {
		name = "Without Wall Storage"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     name,
		Settings: settings,
		Profile:  profile.WithPreference(model.PreferenceWallStorage, !wall),
	})

	if profile.Priority(model.PriorityWorkspace) < model.MaxPriority {
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Workspace First",
			Settings: settings,
			Profile:  profile.WithPriority(model.PriorityWorkspace, model.MaxPriority),
		})
	}

	// Scenario: tighter walkway, down to the 24" minimum
	if settings.Walkway > 24 {
		narrow := settings.Merge(model.LayoutSettings{Walkway: 24})
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Walkway %s", model.FeetInches(narrow.Walkway)),
			Settings: narrow,
			Profile:  profile,
		})
	}

	return scenarios
}
