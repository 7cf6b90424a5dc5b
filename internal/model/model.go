package model

// ZoneType identifies the function of a zone.
type ZoneType string

const (
	ZoneVehicle         ZoneType = "vehicle"
	ZoneWorkbench       ZoneType = "workbench"
	ZoneWallStorage     ZoneType = "wall_storage"
	ZoneOverheadStorage ZoneType = "overhead_storage"
	ZoneFloorStorage    ZoneType = "floor_storage"
)

// ZoneTypes lists every zone type in a fixed order.
var ZoneTypes = []ZoneType{
	ZoneVehicle,
	ZoneWorkbench,
	ZoneWallStorage,
	ZoneOverheadStorage,
	ZoneFloorStorage,
}

func (t ZoneType) String() string {
	return string(t)
}

// Label returns a human readable name for the zone type.
func (t ZoneType) Label() string {
	switch t {
	case ZoneVehicle:
		return "Vehicle parking"
	case ZoneWorkbench:
		return "Workbench"
	case ZoneWallStorage:
		return "Wall storage"
	case ZoneOverheadStorage:
		return "Overhead storage"
	case ZoneFloorStorage:
		return "Floor storage"
	default:
		return "Unknown"
	}
}

// Rect is an axis-aligned rectangle in garage coordinates (inches).
// X grows from the west wall, Y grows from the north wall.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the east edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the south edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Area() float64 {
	return r.W * r.H
}

// Constraint is a clearance rectangle derived from a fixed feature.
// Placement must keep it empty, with documented exceptions.
type Constraint struct {
	Type        FeatureType `json:"type" yaml:"type"`
	X           float64     `json:"x" yaml:"x"`
	Y           float64     `json:"y" yaml:"y"`
	Width       float64     `json:"width" yaml:"width"`
	Depth       float64     `json:"depth" yaml:"depth"`
	Wall        Wall        `json:"wall" yaml:"wall"`
	Description string      `json:"description" yaml:"description"`
}

func (c Constraint) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Depth}
}

// ZoneDemand is a request to place a zone that has not been placed yet.
type ZoneDemand struct {
	Type     ZoneType `json:"type"`
	Name     string   `json:"name"`
	Width    float64  `json:"width"`
	Depth    float64  `json:"depth"`
	Priority int      `json:"priority"` // 1-5, higher is placed first

	// Vehicle demands only: position within the must-fit set and its size.
	VehicleIndex int `json:"vehicle_index,omitempty"`
	VehicleCount int `json:"vehicle_count,omitempty"`
}

// Zone is a placed functional area.
type Zone struct {
	Type     ZoneType `json:"type" yaml:"type"`
	Name     string   `json:"name" yaml:"name"`
	X        float64  `json:"x" yaml:"x"`         // Distance from west wall (in)
	Y        float64  `json:"y" yaml:"y"`         // Distance from north wall (in)
	Width    float64  `json:"width" yaml:"width"` // East-west extent (in)
	Depth    float64  `json:"depth" yaml:"depth"` // North-south extent (in)
	Wall     Wall     `json:"wall" yaml:"wall"`   // "" for floor or ceiling
	Priority int      `json:"priority" yaml:"priority"`
	Notes    string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (z Zone) Rect() Rect {
	return Rect{X: z.X, Y: z.Y, W: z.Width, H: z.Depth}
}

// LayoutRecommendation is the complete output of one optimizer run.
type LayoutRecommendation struct {
	Zones       []Zone       `json:"zones" yaml:"zones"`
	Constraints []Constraint `json:"constraints" yaml:"constraints"`
	Reasoning   []string     `json:"reasoning" yaml:"reasoning"`
	Warnings    []string     `json:"warnings" yaml:"warnings"`
	Score       float64      `json:"score" yaml:"score"`
}

// HasZone reports whether at least one zone of the given type was placed.
func (r LayoutRecommendation) HasZone(t ZoneType) bool {
	for _, z := range r.Zones {
		if z.Type == t {
			return true
		}
	}
	return false
}

// ZonesOfType returns the placed zones of one type in placement order.
func (r LayoutRecommendation) ZonesOfType(t ZoneType) []Zone {
	var zones []Zone
	for _, z := range r.Zones {
		if z.Type == t {
			zones = append(zones, z)
		}
	}
	return zones
}

// CountByType returns the number of placed zones per type.
func (r LayoutRecommendation) CountByType() map[ZoneType]int {
	counts := make(map[ZoneType]int)
	for _, z := range r.Zones {
		counts[z.Type]++
	}
	return counts
}

// UsedFloorArea returns the floor area covered by non-overhead zones (sq in).
func (r LayoutRecommendation) UsedFloorArea() float64 {
	var total float64
	for _, z := range r.Zones {
		if z.Type == ZoneOverheadStorage {
			continue
		}
		total += z.Width * z.Depth
	}
	return total
}
