package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFeetInches(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0'"},
		{6, "6\""},
		{96, "8'"},
		{90, "7' 6\""},
		{300, "25'"},
		{204, "17'"},
		{95.6, "8'"},
		{89.4, "7' 5\""},
		{11.7, "1'"},
	}
	for _, tc := range tests {
		if got := FeetInches(tc.in); got != tc.want {
			t.Errorf("FeetInches(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewFeatureDefaults(t *testing.T) {
	f := NewFeature("Garage Door", "", 150, 0)
	if f.Type != FeatureGarageDoor {
		t.Errorf("expected type garage_door, got %q", f.Type)
	}
	if f.Width != 192 {
		t.Errorf("expected default garage door width 192, got %v", f.Width)
	}

	f = NewFeature("Electrical Panel", "", 40, 0)
	if f.Type != FeatureElectricalPanel {
		t.Errorf("expected type electrical_panel, got %q", f.Type)
	}
	if f.Width != 24 {
		t.Errorf("expected panel width 24, got %v", f.Width)
	}

	f = NewFeature("Shelf", "mystery", 10, 18)
	if f.Width != 18 || f.Type != "mystery" {
		t.Errorf("explicit type and width must be kept, got %+v", f)
	}
	if f.Type.IsKnown() {
		t.Error("mystery should not be a known feature type")
	}
}

func TestGarageSpaceWithFeatureDoesNotAlias(t *testing.T) {
	base := NewGarageSpace(240, 240, 108)
	a := base.WithFeature(WallEast, NewFeature("Window", FeatureWindow, 60, 36))
	b := a.WithFeature(WallEast, NewFeature("Panel", FeatureElectricalPanel, 120, 24))

	if len(base.East) != 0 {
		t.Errorf("base must stay empty, got %d", len(base.East))
	}
	if len(a.East) != 1 || len(b.East) != 2 {
		t.Errorf("unexpected feature counts a=%d b=%d", len(a.East), len(b.East))
	}
	if len(b.Features(WallEast)) != 2 {
		t.Error("Features(WallEast) should return the east list")
	}
}

func TestProfilePriorityDefaultsAndClamping(t *testing.T) {
	p := UsageProfile{Priorities: map[string]int{PriorityWorkspace: 9, PriorityGeneralStorage: 0}}

	if got := p.Priority(PriorityVehicleStorage); got != DefaultPriority {
		t.Errorf("missing priority should default to %d, got %d", DefaultPriority, got)
	}
	if got := p.Priority(PriorityWorkspace); got != MaxPriority {
		t.Errorf("expected clamp to %d, got %d", MaxPriority, got)
	}
	if got := p.Priority(PriorityGeneralStorage); got != MinPriority {
		t.Errorf("expected clamp to %d, got %d", MinPriority, got)
	}
}

func TestProfilePreferenceDefaults(t *testing.T) {
	var p UsageProfile
	if !p.Preference(PreferenceWallStorage) {
		t.Error("wall_storage should default to true")
	}
	if p.Preference(PreferenceOverheadStorage) {
		t.Error("overhead_storage should default to false")
	}
	p = p.WithPreference(PreferenceWallStorage, false)
	if p.Preference(PreferenceWallStorage) {
		t.Error("explicit false should win")
	}
}

func TestUsageProfileLenientJSON(t *testing.T) {
	data := []byte(`{
		"vehicles": [
			{"make": "Ford", "model": "F-150", "year": 2021, "length": "231", "width": 80, "must_fit_inside": "yes"},
			{"make": "Vespa", "length": "about six feet", "must_fit_inside": false},
			"not an object"
		],
		"storage_categories": [{"name": "Sports", "needs_accessibility": "Weekly"}],
		"work_activities": {"oops": true},
		"priorities": {"workspace": "4", "vehicle_storage": 5, "general_storage": "high"},
		"preferences": {"overhead_storage": "true", "wall_storage": 42}
	}`)

	var p UsageProfile
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}

	if len(p.Vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(p.Vehicles))
	}
	v := p.Vehicles[0]
	if v.Year != "2021" || v.Length != 231 || v.Width != 80 || !v.MustFitInside {
		t.Errorf("unexpected first vehicle %+v", v)
	}
	if p.Vehicles[1].Length != 0 || p.Vehicles[1].EffectiveLength() != DefaultVehicleLength {
		t.Errorf("malformed length should fall back, got %+v", p.Vehicles[1])
	}
	if p.CountAccess(AccessWeekly) != 1 {
		t.Error("access frequency should be case-insensitive")
	}
	if len(p.WorkActivities) != 0 {
		t.Error("malformed work_activities should decode as empty")
	}
	if p.Priority(PriorityWorkspace) != 4 || p.Priority(PriorityVehicleStorage) != 5 {
		t.Errorf("unexpected priorities %v", p.Priorities)
	}
	if p.Priority(PriorityGeneralStorage) != DefaultPriority {
		t.Error("malformed priority should fall back to the default")
	}
	if !p.Preference(PreferenceOverheadStorage) {
		t.Error("string true should decode as true")
	}
	if !p.Preference(PreferenceWallStorage) {
		t.Error("malformed wall_storage should keep its default")
	}
}

func TestUsageProfileNullFallsBack(t *testing.T) {
	data := []byte(`{
		"vehicles": [{"make": "Kia", "length": null, "width": null, "must_fit_inside": null}],
		"priorities": {"workspace": null, "vehicle_storage": 5},
		"preferences": {"wall_storage": null, "overhead_storage": null},
		"notes": null
	}`)

	var p UsageProfile
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := p.Priority(PriorityWorkspace); got != DefaultPriority {
		t.Errorf("null workspace priority = %d, want %d", got, DefaultPriority)
	}
	if p.Priority(PriorityVehicleStorage) != 5 {
		t.Error("explicit priority should survive next to a null one")
	}
	if !p.Preference(PreferenceWallStorage) {
		t.Error("null wall_storage should keep its default of true")
	}
	if p.Preference(PreferenceOverheadStorage) {
		t.Error("null overhead_storage should keep its default of false")
	}
	v := p.Vehicles[0]
	if v.EffectiveLength() != DefaultVehicleLength || v.MustFitInside {
		t.Errorf("null vehicle fields should fall back, got %+v", v)
	}
}

func TestUsageProfileEmptyYAMLValuesFallBack(t *testing.T) {
	doc := `
priorities:
  workspace:
  general_storage: 4
preferences:
  wall_storage:
`
	var p UsageProfile
	if err := yaml.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := p.Priority(PriorityWorkspace); got != DefaultPriority {
		t.Errorf("empty workspace priority = %d, want %d", got, DefaultPriority)
	}
	if p.Priority(PriorityGeneralStorage) != 4 {
		t.Error("explicit priority should decode")
	}
	if !p.Preference(PreferenceWallStorage) {
		t.Error("empty wall_storage should keep its default of true")
	}
}

func TestUsageProfileFeetInchVehicleSizes(t *testing.T) {
	var p UsageProfile
	if err := json.Unmarshal([]byte(`{"vehicles": [{"length": "19' 3\"", "width": "80\""}]}`), &p); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	v := p.Vehicles[0]
	if v.Length != 231 || v.Width != 80 {
		t.Errorf("expected 231 x 80, got %v x %v", v.Length, v.Width)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{"36.5", 36.5},
		{`36"`, 36},
		{"36 in", 36},
		{"16'", 192},
		{`10'6"`, 126},
		{"2' 3", 27},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if err != nil {
			t.Errorf("ParseLength(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"abc", "x'", "3'y"} {
		if _, err := ParseLength(bad); err == nil {
			t.Errorf("ParseLength(%q) should fail", bad)
		}
	}
}

func TestUsageProfileRejectsNonObject(t *testing.T) {
	var p UsageProfile
	if err := json.Unmarshal([]byte(`[1,2,3]`), &p); err == nil {
		t.Error("expected error for non-object profile")
	}
}

func TestVehicleDisplayName(t *testing.T) {
	v := Vehicle{Year: "2019", Model: "Model 3"}
	if got := v.DisplayName(); got != "2019 Model 3" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestRecommendationHelpers(t *testing.T) {
	rec := LayoutRecommendation{Zones: []Zone{
		{Type: ZoneVehicle, Width: 10, Depth: 10},
		{Type: ZoneWallStorage, Width: 2, Depth: 5},
		{Type: ZoneWallStorage, Width: 2, Depth: 5},
		{Type: ZoneOverheadStorage, Width: 100, Depth: 100},
	}}

	if !rec.HasZone(ZoneVehicle) || rec.HasZone(ZoneWorkbench) {
		t.Error("HasZone mismatch")
	}
	if n := len(rec.ZonesOfType(ZoneWallStorage)); n != 2 {
		t.Errorf("expected 2 wall storage zones, got %d", n)
	}
	if rec.CountByType()[ZoneOverheadStorage] != 1 {
		t.Error("CountByType mismatch")
	}
	if rec.UsedFloorArea() != 120 {
		t.Errorf("overhead zones must not count as floor area, got %v", rec.UsedFloorArea())
	}
}

func TestSettingsMerge(t *testing.T) {
	base := DefaultSettings()
	merged := base.Merge(LayoutSettings{
		Walkway:           36,
		FeatureClearances: map[FeatureType]float64{FeatureWindow: 12, "workbench_vise": 30},
		ZoneSizes:         map[string]Size{SizeWallStorageSection: {Width: 36, Depth: 16}},
	})

	if merged.Walkway != 36 {
		t.Errorf("expected walkway 36, got %v", merged.Walkway)
	}
	if merged.VehicleSide != base.VehicleSide {
		t.Error("zero override must keep the base value")
	}
	if merged.FeatureClearances[FeatureWindow] != 12 || merged.FeatureClearances["workbench_vise"] != 30 {
		t.Errorf("clearance overrides not applied: %v", merged.FeatureClearances)
	}
	if base.FeatureClearances[FeatureWindow] != 6 {
		t.Error("Merge must not modify the receiver's maps")
	}
	if merged.ZoneSizes[SizeWallStorageSection].Width != 36 {
		t.Error("zone size override not applied")
	}
}

func TestParseWall(t *testing.T) {
	tests := []struct {
		in   string
		want Wall
		ok   bool
	}{
		{"N", WallNorth, true},
		{"east", WallEast, true},
		{" South ", WallSouth, true},
		{"w", WallWest, true},
		{"Floor", WallNone, true},
		{"", WallNone, true},
		{"ceiling", WallNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseWall(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseWall(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
