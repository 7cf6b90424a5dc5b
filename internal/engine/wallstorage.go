package engine

import (
	"sort"

	"github.com/piwi3910/garageplan/internal/model"
)

var storageWalls = []model.Wall{model.WallNorth, model.WallEast, model.WallWest}

// wallStorageStrategy spreads identical shelving sections over the north,
// east and west walls, scanning each wall from its origin.
type wallStorageStrategy struct {
	step     float64
	fallback float64
}

func (s wallStorageStrategy) Place(l *Layout, d model.ZoneDemand) (model.Zone, bool) {
	counts := make(map[model.Wall]int, len(storageWalls))
	for _, z := range l.Placed(model.ZoneWallStorage) {
		counts[z.Wall]++
	}

	walls := append([]model.Wall(nil), storageWalls...)
	sort.SliceStable(walls, func(i, j int) bool {
		return counts[walls[i]] < counts[walls[j]]
	})

	for _, wall := range walls {
		if r, ok := scanWall(l, wall, d, s.step); ok {
			return zoneAt(d, r, wall, ""), true
		}
	}

	// Squeeze pass: finer step, fixed wall order.
	for _, wall := range storageWalls {
		if r, ok := scanWall(l, wall, d, s.fallback); ok {
			return zoneAt(d, r, wall, ""), true
		}
	}
	return model.Zone{}, false
}

// scanWall walks start offsets along a wall at the given step and returns the
// first clear rectangle. The last offset tried stays strictly below the
// truncated free length of the wall.
func scanWall(l *Layout, wall model.Wall, d model.ZoneDemand, step float64) (model.Rect, bool) {
	if step <= 0 {
		return model.Rect{}, false
	}

	var length float64
	var at func(off float64) model.Rect
	switch wall {
	case model.WallNorth:
		length = l.Space.Width
		at = func(off float64) model.Rect {
			return model.Rect{X: off, Y: 0, W: d.Width, H: d.Depth}
		}
	case model.WallEast:
		length = l.Space.Depth
		at = func(off float64) model.Rect {
			return model.Rect{X: l.Space.Width - d.Depth, Y: off, W: d.Depth, H: d.Width}
		}
	case model.WallWest:
		length = l.Space.Depth
		at = func(off float64) model.Rect {
			return model.Rect{X: 0, Y: off, W: d.Depth, H: d.Width}
		}
	default:
		return model.Rect{}, false
	}

	limit := float64(int(length - d.Width))
	for off := 0.0; off < limit; off += step {
		r := at(off)
		if l.IsClear(r, nil) {
			return r, true
		}
	}
	return model.Rect{}, false
}
