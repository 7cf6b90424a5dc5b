package model

import "strings"

// Wall identifies which wall a feature or zone is attached to.
type Wall string

const (
	WallNone  Wall = "" // Floor or ceiling
	WallNorth Wall = "N"
	WallEast  Wall = "E"
	WallSouth Wall = "S"
	WallWest  Wall = "W"
)

// Walls lists the four walls in constraint generation order.
var Walls = []Wall{WallNorth, WallEast, WallSouth, WallWest}

func (w Wall) String() string {
	switch w {
	case WallNorth:
		return "North"
	case WallEast:
		return "East"
	case WallSouth:
		return "South"
	case WallWest:
		return "West"
	default:
		return "Floor"
	}
}

// ParseWall reads a wall name or letter, case-insensitively.
// "floor" and "" map to WallNone; anything else is rejected.
func ParseWall(s string) (Wall, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return WallNorth, true
	case "e", "east":
		return WallEast, true
	case "s", "south":
		return WallSouth, true
	case "w", "west":
		return WallWest, true
	case "", "f", "floor":
		return WallNone, true
	default:
		return WallNone, false
	}
}

// FeatureType tags a fixed wall or floor feature.
// Tags outside the known set are kept verbatim and treated as unknown.
type FeatureType string

const (
	FeatureGarageDoor      FeatureType = "garage_door"
	FeatureEntryDoor       FeatureType = "entry_door"
	FeatureServiceDoor     FeatureType = "service_door"
	FeatureElectricalPanel FeatureType = "electrical_panel"
	FeatureWaterHeater     FeatureType = "water_heater"
	FeatureFurnace         FeatureType = "furnace"
	FeatureWindow          FeatureType = "window"
)

// KnownFeatureTypes lists the feature tags with a dedicated clearance.
var KnownFeatureTypes = []FeatureType{
	FeatureGarageDoor,
	FeatureEntryDoor,
	FeatureServiceDoor,
	FeatureElectricalPanel,
	FeatureWaterHeater,
	FeatureFurnace,
	FeatureWindow,
}

// IsKnown reports whether t is one of KnownFeatureTypes.
func (t FeatureType) IsKnown() bool {
	for _, k := range KnownFeatureTypes {
		if t == k {
			return true
		}
	}
	return false
}

// IsGarageDoor reports whether the tag denotes a vehicle door.
func (t FeatureType) IsGarageDoor() bool {
	return strings.Contains(strings.ToLower(string(t)), string(FeatureGarageDoor))
}

// FeatureTypeFromName derives a type tag from a free-form feature name,
// e.g. "Electrical Panel" becomes "electrical_panel".
func FeatureTypeFromName(name string) FeatureType {
	return FeatureType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_"))
}

// Feature is an immovable element on a wall or the floor.
type Feature struct {
	Name     string      `json:"name" yaml:"name"`
	Type     FeatureType `json:"type" yaml:"type"`
	Position float64     `json:"position" yaml:"position"` // Center, measured from the wall's left corner when facing it (in)
	Width    float64     `json:"width" yaml:"width"`       // Along the wall (in)
}

// NewFeature builds a feature, deriving the type from the name when empty
// and a default width from the type when width is not positive.
func NewFeature(name string, ftype FeatureType, position, width float64) Feature {
	if ftype == "" {
		ftype = FeatureTypeFromName(name)
	}
	if width <= 0 {
		width = DefaultFeatureWidth(name, ftype)
	}
	return Feature{
		Name:     name,
		Type:     ftype,
		Position: position,
		Width:    width,
	}
}

// DefaultFeatureWidth estimates a feature width when none was measured.
func DefaultFeatureWidth(name string, ftype FeatureType) float64 {
	lower := strings.ToLower(name)
	switch {
	case ftype.IsGarageDoor() || strings.Contains(lower, "garage door"):
		return 192 // 16'
	case strings.Contains(lower, "door"), strings.Contains(string(ftype), "door"):
		return 36
	case strings.Contains(lower, "window"), ftype == FeatureWindow:
		return 36
	case strings.Contains(lower, "panel"), ftype == FeatureElectricalPanel:
		return 24
	default:
		return 36
	}
}

// GarageSpace describes the room and its fixed features.
// It is treated as read-only for the duration of an optimizer run.
type GarageSpace struct {
	Width         float64 `json:"width" yaml:"width"`                   // East-west (in)
	Depth         float64 `json:"depth" yaml:"depth"`                   // North-south (in)
	CeilingHeight float64 `json:"ceiling_height" yaml:"ceiling_height"` // in

	North []Feature `json:"north_features" yaml:"north_features"`
	East  []Feature `json:"east_features" yaml:"east_features"`
	South []Feature `json:"south_features" yaml:"south_features"`
	West  []Feature `json:"west_features" yaml:"west_features"`
	Floor []Feature `json:"floor_features" yaml:"floor_features"`
}

// NewGarageSpace creates a space with no features.
func NewGarageSpace(width, depth, ceiling float64) GarageSpace {
	return GarageSpace{
		Width:         width,
		Depth:         depth,
		CeilingHeight: ceiling,
	}
}

// Features returns the feature list of a wall; WallNone yields floor features.
func (g GarageSpace) Features(w Wall) []Feature {
	switch w {
	case WallNorth:
		return g.North
	case WallEast:
		return g.East
	case WallSouth:
		return g.South
	case WallWest:
		return g.West
	default:
		return g.Floor
	}
}

// WithFeature returns a copy of g with f appended to wall w.
// The receiver's slices are never shared with the result.
func (g GarageSpace) WithFeature(w Wall, f Feature) GarageSpace {
	out := g
	out.North = append([]Feature(nil), g.North...)
	out.East = append([]Feature(nil), g.East...)
	out.South = append([]Feature(nil), g.South...)
	out.West = append([]Feature(nil), g.West...)
	out.Floor = append([]Feature(nil), g.Floor...)
	switch w {
	case WallNorth:
		out.North = append(out.North, f)
	case WallEast:
		out.East = append(out.East, f)
	case WallSouth:
		out.South = append(out.South, f)
	case WallWest:
		out.West = append(out.West, f)
	default:
		out.Floor = append(out.Floor, f)
	}
	return out
}

// Bounds returns the full floor rectangle.
func (g GarageSpace) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: g.Width, H: g.Depth}
}

// FloorArea returns width x depth in square inches.
func (g GarageSpace) FloorArea() float64 {
	return g.Width * g.Depth
}
