package importer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D drawing coordinate.
type point struct {
	x, y float64
}

// segment represents a line segment between two points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// OutlineResult holds the garage footprint read from a drawing, in inches.
type OutlineResult struct {
	Width    float64 // X extent
	Depth    float64 // Y extent
	Errors   []string
	Warnings []string
}

// unitScales converts drawing units to inches.
var unitScales = map[string]float64{
	"in": 1,
	"ft": 12,
	"mm": 1 / 25.4,
	"cm": 1 / 2.54,
	"m":  1000 / 25.4,
}

// UnitScale returns the factor converting the named drawing unit to inches.
func UnitScale(unit string) (float64, bool) {
	s, ok := unitScales[strings.ToLower(strings.TrimSpace(unit))]
	return s, ok
}

// rectangularity is the share of its bounding box a closed outline must
// fill before it is accepted as rectangular without a warning.
const rectangularity = 0.98

// ImportOutlineDXF reads the garage footprint from a DXF file. The largest
// closed shape (LWPOLYLINE or chain of LINEs) is taken as the room; its
// bounding box, multiplied by scale, gives width and depth.
func ImportOutlineDXF(path string, scale float64) OutlineResult {
	result := OutlineResult{}
	if scale <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid unit scale %g", scale))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				pts = append(pts, point{v[0], v[1]})
			}
			if len(pts) >= 3 {
				outlines = append(outlines, pts)
			} else {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})

		default:
			// Text, dimensions and the like carry no outline
		}
	}

	outlines = append(outlines, chainSegments(segments, 0.01)...)
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})
	room := outlines[0]

	minP, maxP := boundingBox(room)
	width := (maxP.x - minP.x) * scale
	depth := (maxP.y - minP.y) * scale
	if width < 1 || depth < 1 {
		result.Errors = append(result.Errors, fmt.Sprintf("Outline is degenerate (%.2f x %.2f in)", width, depth))
		return result
	}

	boxArea := (maxP.x - minP.x) * (maxP.y - minP.y)
	if outlineArea(room) < rectangularity*boxArea {
		result.Warnings = append(result.Warnings, "Outline is not rectangular; using its bounding box")
	}
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d closed shapes; using the largest", len(outlines)))
	}

	result.Width = width
	result.Depth = depth
	return result
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Open chains are walls drawn without a closing segment; skip them.
		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			continue
		}
		outlines = append(outlines, chain[:len(chain)-1])
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

func boundingBox(o []point) (point, point) {
	minP := point{math.Inf(1), math.Inf(1)}
	maxP := point{math.Inf(-1), math.Inf(-1)}
	for _, p := range o {
		minP.x = math.Min(minP.x, p.x)
		minP.y = math.Min(minP.y, p.y)
		maxP.x = math.Max(maxP.x, p.x)
		maxP.y = math.Max(maxP.y, p.y)
	}
	return minP, maxP
}
