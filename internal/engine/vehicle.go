package engine

import (
	"github.com/piwi3910/garageplan/internal/model"
)

// vehicleStrategy parks cars against the south wall, where the garage door
// is assumed to be.
type vehicleStrategy struct {
	walkway float64
	gap     float64
}

func (s vehicleStrategy) Place(l *Layout, d model.ZoneDemand) (model.Zone, bool) {
	y := l.Space.Depth - d.Depth

	for _, x := range s.candidates(l, d) {
		r := model.Rect{X: x, Y: y, W: d.Width, H: d.Depth}
		// The car has to drive through the garage door clearance.
		if l.IsClear(r, isGarageDoor) {
			return zoneAt(d, r, model.WallSouth, "Pull in from garage door"), true
		}
	}
	return model.Zone{}, false
}

// candidates lists x positions in the order they are tried. A single car
// tries centered, left and right. Side by side cars get exactly one slot:
// the walkway for the first, next to the previous car otherwise.
func (s vehicleStrategy) candidates(l *Layout, d model.ZoneDemand) []float64 {
	if d.VehicleCount <= 1 {
		return []float64{
			(l.Space.Width - d.Width) / 2,
			s.walkway,
			l.Space.Width - d.Width - s.walkway,
		}
	}

	placed := l.Placed(model.ZoneVehicle)
	if len(placed) == 0 {
		return []float64{s.walkway}
	}
	last := placed[len(placed)-1]
	return []float64{last.X + last.Width + s.gap}
}
