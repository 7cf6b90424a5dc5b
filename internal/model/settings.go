package model

// Size is a width x depth pair in inches.
type Size struct {
	Width float64 `json:"width" toml:"width" yaml:"width"`
	Depth float64 `json:"depth" toml:"depth" yaml:"depth"`
}

// Zone size keys used in LayoutSettings.ZoneSizes.
const (
	SizeWorkbenchSmall     = "workbench_small"
	SizeWorkbenchMedium    = "workbench_medium"
	SizeWorkbenchLarge     = "workbench_large"
	SizeWallStorageSection = "wall_storage_section"
)

// LayoutSettings holds every tunable distance the optimizer uses.
// The engine copies the maps when it is constructed, so later changes to a
// LayoutSettings value never affect a running optimizer.
type LayoutSettings struct {
	// Clearance kept in front of each feature type (in)
	FeatureClearances map[FeatureType]float64 `json:"feature_clearances" toml:"feature_clearances" yaml:"feature_clearances"`
	DefaultClearance  float64                 `json:"default_clearance" toml:"default_clearance" yaml:"default_clearance"`   // Unknown feature types
	GarageDoorPullIn  float64                 `json:"garage_door_pull_in" toml:"garage_door_pull_in" yaml:"garage_door_pull_in"` // Pull-in zone depth in front of a garage door

	// Vehicle spacing (in)
	VehicleSide  float64 `json:"vehicle_side" toml:"vehicle_side" yaml:"vehicle_side"`    // Door-opening room on one side
	VehicleFront float64 `json:"vehicle_front" toml:"vehicle_front" yaml:"vehicle_front"` // Room in front of the bumper
	VehicleRear  float64 `json:"vehicle_rear" toml:"vehicle_rear" yaml:"vehicle_rear"`    // Room behind the bumper
	VehicleGap   float64 `json:"vehicle_gap" toml:"vehicle_gap" yaml:"vehicle_gap"`       // Between neighbouring parked vehicles

	WorkbenchFront float64 `json:"workbench_front" toml:"workbench_front" yaml:"workbench_front"` // Standing room in front of the bench
	Walkway        float64 `json:"walkway" toml:"walkway" yaml:"walkway"`                         // Minimum passage width

	// Standard zone footprints
	ZoneSizes map[string]Size `json:"zone_sizes" toml:"zone_sizes" yaml:"zone_sizes"`

	// Wall storage scan steps along a wall (in)
	WallStorageStep         float64 `json:"wall_storage_step" toml:"wall_storage_step" yaml:"wall_storage_step"`
	WallStorageFallbackStep float64 `json:"wall_storage_fallback_step" toml:"wall_storage_fallback_step" yaml:"wall_storage_fallback_step"`

	// Overhead platforms
	OverheadMinCeiling     float64 `json:"overhead_min_ceiling" toml:"overhead_min_ceiling" yaml:"overhead_min_ceiling"`
	OverheadMinUseful      float64 `json:"overhead_min_useful" toml:"overhead_min_useful" yaml:"overhead_min_useful"`
	OverheadPlatformDepth  float64 `json:"overhead_platform_depth" toml:"overhead_platform_depth" yaml:"overhead_platform_depth"`
	OverheadMountClearance float64 `json:"overhead_mount_clearance" toml:"overhead_mount_clearance" yaml:"overhead_mount_clearance"`
}

func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		FeatureClearances: map[FeatureType]float64{
			FeatureGarageDoor:      36,
			FeatureEntryDoor:       36,
			FeatureServiceDoor:     36,
			FeatureElectricalPanel: 36, // NEC working space
			FeatureWaterHeater:     24,
			FeatureFurnace:         24,
			FeatureWindow:          6,
		},
		DefaultClearance: 24,
		GarageDoorPullIn: 60,

		VehicleSide:  24,
		VehicleFront: 12,
		VehicleRear:  12,
		VehicleGap:   12,

		WorkbenchFront: 36,
		Walkway:        30,

		ZoneSizes: map[string]Size{
			SizeWorkbenchSmall:     {Width: 48, Depth: 24},
			SizeWorkbenchMedium:    {Width: 72, Depth: 30},
			SizeWorkbenchLarge:     {Width: 96, Depth: 30},
			SizeWallStorageSection: {Width: 48, Depth: 18},
		},

		WallStorageStep:         24,
		WallStorageFallbackStep: 12,

		OverheadMinCeiling:     96,
		OverheadMinUseful:      36,
		OverheadPlatformDepth:  48,
		OverheadMountClearance: 84,
	}
}

// Merge returns a copy of s where every positive value of o overrides the
// corresponding value of s. Map entries are merged key by key.
func (s LayoutSettings) Merge(o LayoutSettings) LayoutSettings {
	out := s
	out.FeatureClearances = make(map[FeatureType]float64, len(s.FeatureClearances))
	for k, v := range s.FeatureClearances {
		out.FeatureClearances[k] = v
	}
	for k, v := range o.FeatureClearances {
		if v > 0 {
			out.FeatureClearances[k] = v
		}
	}
	out.ZoneSizes = make(map[string]Size, len(s.ZoneSizes))
	for k, v := range s.ZoneSizes {
		out.ZoneSizes[k] = v
	}
	for k, v := range o.ZoneSizes {
		if v.Width > 0 && v.Depth > 0 {
			out.ZoneSizes[k] = v
		}
	}

	pick := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	pick(&out.DefaultClearance, o.DefaultClearance)
	pick(&out.GarageDoorPullIn, o.GarageDoorPullIn)
	pick(&out.VehicleSide, o.VehicleSide)
	pick(&out.VehicleFront, o.VehicleFront)
	pick(&out.VehicleRear, o.VehicleRear)
	pick(&out.VehicleGap, o.VehicleGap)
	pick(&out.WorkbenchFront, o.WorkbenchFront)
	pick(&out.Walkway, o.Walkway)
	pick(&out.WallStorageStep, o.WallStorageStep)
	pick(&out.WallStorageFallbackStep, o.WallStorageFallbackStep)
	pick(&out.OverheadMinCeiling, o.OverheadMinCeiling)
	pick(&out.OverheadMinUseful, o.OverheadMinUseful)
	pick(&out.OverheadPlatformDepth, o.OverheadPlatformDepth)
	pick(&out.OverheadMountClearance, o.OverheadMountClearance)
	return out
}
