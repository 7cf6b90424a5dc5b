package engine

import (
	"github.com/piwi3910/garageplan/internal/model"
)

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b model.Rect) bool {
	return !(a.Right() <= b.X || b.Right() <= a.X || a.Bottom() <= b.Y || b.Bottom() <= a.Y)
}

// InBounds reports whether r lies entirely on the garage floor.
func InBounds(r model.Rect, space model.GarageSpace) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= space.Width && r.Bottom() <= space.Depth
}

// Layout is the accumulator for a single optimizer run. Strategies read the
// space, constraints and placed zones from it; the optimizer appends to it.
type Layout struct {
	Space       model.GarageSpace
	Constraints []model.Constraint
	Zones       []model.Zone
	Reasoning   []string
	Warnings    []string
}

func NewLayout(space model.GarageSpace, constraints []model.Constraint) *Layout {
	return &Layout{
		Space:       space,
		Constraints: constraints,
	}
}

// IsClear reports whether r is in bounds and free of constraints and placed
// zones. Constraints for which exempt returns true are ignored.
func (l *Layout) IsClear(r model.Rect, exempt func(model.Constraint) bool) bool {
	if !InBounds(r, l.Space) {
		return false
	}
	for _, c := range l.Constraints {
		if exempt != nil && exempt(c) {
			continue
		}
		if Overlaps(r, c.Rect()) {
			return false
		}
	}
	for _, z := range l.Zones {
		if Overlaps(r, z.Rect()) {
			return false
		}
	}
	return true
}

// Placed returns the zones of one type in placement order.
func (l *Layout) Placed(t model.ZoneType) []model.Zone {
	var out []model.Zone
	for _, z := range l.Zones {
		if z.Type == t {
			out = append(out, z)
		}
	}
	return out
}

// Recommendation snapshots the accumulator. Score is filled in later.
func (l *Layout) Recommendation() model.LayoutRecommendation {
	return model.LayoutRecommendation{
		Zones:       append([]model.Zone{}, l.Zones...),
		Constraints: append([]model.Constraint{}, l.Constraints...),
		Reasoning:   append([]string{}, l.Reasoning...),
		Warnings:    append([]string{}, l.Warnings...),
	}
}

func isGarageDoor(c model.Constraint) bool {
	return c.Type.IsGarageDoor()
}
