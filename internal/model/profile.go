package model

import "strings"

// Priority category names recognized in UsageProfile.Priorities.
const (
	PriorityVehicleStorage = "vehicle_storage"
	PriorityWorkspace      = "workspace"
	PriorityGeneralStorage = "general_storage"
)

// Preference flags recognized in UsageProfile.Preferences.
const (
	PreferenceWallStorage     = "wall_storage"
	PreferenceOverheadStorage = "overhead_storage"
)

// DefaultPriority applies to any category missing from the profile.
const DefaultPriority = 3

const (
	MinPriority = 1
	MaxPriority = 5
)

// Fallback vehicle dimensions when the profile omits them (in).
const (
	DefaultVehicleLength = 180
	DefaultVehicleWidth  = 72
)

// preferenceDefaults holds the value of each flag when absent.
var preferenceDefaults = map[string]bool{
	PreferenceWallStorage:     true,
	PreferenceOverheadStorage: false,
}

// AccessFrequency describes how often a storage category is reached for.
type AccessFrequency string

const (
	AccessDaily   AccessFrequency = "daily"
	AccessWeekly  AccessFrequency = "weekly"
	AccessMonthly AccessFrequency = "monthly"
	AccessRarely  AccessFrequency = "rarely"
)

// SpaceNeed is the floor area a work activity requires.
type SpaceNeed string

const (
	SpaceSmall  SpaceNeed = "small"
	SpaceMedium SpaceNeed = "medium"
	SpaceLarge  SpaceNeed = "large"
)

// Vehicle is a car, truck or similar that may need to be parked inside.
type Vehicle struct {
	Make          string  `json:"make" yaml:"make"`
	Model         string  `json:"model" yaml:"model"`
	Year          string  `json:"year" yaml:"year"`
	Length        float64 `json:"length" yaml:"length"` // in
	Width         float64 `json:"width" yaml:"width"`   // in
	MustFitInside bool    `json:"must_fit_inside" yaml:"must_fit_inside"`
}

// EffectiveLength returns Length, or DefaultVehicleLength when unset.
func (v Vehicle) EffectiveLength() float64 {
	if v.Length > 0 {
		return v.Length
	}
	return DefaultVehicleLength
}

// EffectiveWidth returns Width, or DefaultVehicleWidth when unset.
func (v Vehicle) EffectiveWidth() float64 {
	if v.Width > 0 {
		return v.Width
	}
	return DefaultVehicleWidth
}

// DisplayName joins year, make and model, skipping blanks.
func (v Vehicle) DisplayName() string {
	return strings.Join(strings.Fields(v.Year+" "+v.Make+" "+v.Model), " ")
}

type StorageCategory struct {
	Name               string          `json:"name" yaml:"name"`
	NeedsAccessibility AccessFrequency `json:"needs_accessibility" yaml:"needs_accessibility"`
}

type WorkActivity struct {
	Name        string    `json:"name" yaml:"name"`
	SpaceNeeded SpaceNeed `json:"space_needed" yaml:"space_needed"`
}

// NeedsRoom reports whether the activity asks for a medium or large space.
func (a WorkActivity) NeedsRoom() bool {
	switch SpaceNeed(strings.ToLower(string(a.SpaceNeeded))) {
	case SpaceMedium, SpaceLarge:
		return true
	default:
		return false
	}
}

// UsageProfile captures how the garage will be used.
type UsageProfile struct {
	Vehicles          []Vehicle         `json:"vehicles" yaml:"vehicles"`
	StorageCategories []StorageCategory `json:"storage_categories" yaml:"storage_categories"`
	WorkActivities    []WorkActivity    `json:"work_activities" yaml:"work_activities"`
	Priorities        map[string]int    `json:"priorities" yaml:"priorities"`
	Preferences       map[string]bool   `json:"preferences" yaml:"preferences"`
	Notes             string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Priority returns the 1-5 priority of a category, DefaultPriority when
// absent. Out-of-range values are clamped.
func (p UsageProfile) Priority(category string) int {
	v, ok := p.Priorities[category]
	if !ok {
		return DefaultPriority
	}
	return ClampPriority(v)
}

// Preference returns a named flag, falling back to its documented default.
func (p UsageProfile) Preference(name string) bool {
	if v, ok := p.Preferences[name]; ok {
		return v
	}
	return preferenceDefaults[name]
}

// MustFitVehicles returns the vehicles that have to be parked inside,
// in profile order.
func (p UsageProfile) MustFitVehicles() []Vehicle {
	var out []Vehicle
	for _, v := range p.Vehicles {
		if v.MustFitInside {
			out = append(out, v)
		}
	}
	return out
}

// CountAccess returns how many storage categories need the given access.
func (p UsageProfile) CountAccess(freq AccessFrequency) int {
	n := 0
	for _, s := range p.StorageCategories {
		if AccessFrequency(strings.ToLower(string(s.NeedsAccessibility))) == freq {
			n++
		}
	}
	return n
}

// NeedsLargeWorkspace reports whether any work activity needs a medium or
// large space.
func (p UsageProfile) NeedsLargeWorkspace() bool {
	for _, a := range p.WorkActivities {
		if a.NeedsRoom() {
			return true
		}
	}
	return false
}

// WithPriority returns a copy of p with one priority overridden.
func (p UsageProfile) WithPriority(category string, value int) UsageProfile {
	out := p
	out.Priorities = make(map[string]int, len(p.Priorities)+1)
	for k, v := range p.Priorities {
		out.Priorities[k] = v
	}
	out.Priorities[category] = value
	return out
}

// WithPreference returns a copy of p with one preference flag overridden.
func (p UsageProfile) WithPreference(name string, value bool) UsageProfile {
	out := p
	out.Preferences = make(map[string]bool, len(p.Preferences)+1)
	for k, v := range p.Preferences {
		out.Preferences[k] = v
	}
	out.Preferences[name] = value
	return out
}

// ClampPriority forces v into [MinPriority, MaxPriority].
func ClampPriority(v int) int {
	if v < MinPriority {
		return MinPriority
	}
	if v > MaxPriority {
		return MaxPriority
	}
	return v
}
