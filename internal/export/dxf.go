package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/garageplan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// DXF layer names. Zone layers are named ZONE_<TYPE>.
const (
	LayerOutline     = "OUTLINE"
	LayerConstraints = "CONSTRAINTS"
	LayerLabels      = "LABELS"
)

var zoneLayerColors = map[model.ZoneType]color.ColorNumber{
	model.ZoneVehicle:         color.Blue,
	model.ZoneWorkbench:       color.Yellow,
	model.ZoneWallStorage:     color.Green,
	model.ZoneOverheadStorage: color.Magenta,
	model.ZoneFloorStorage:    color.Cyan,
}

// labelHeightIn is the DXF text height in drawing units (inches).
const labelHeightIn = 4.0

// ZoneLayer returns the DXF layer name for a zone type.
func ZoneLayer(t model.ZoneType) string {
	return "ZONE_" + strings.ToUpper(string(t))
}

// ExportDXF writes the garage outline, clearance rectangles and zone
// rectangles as closed polylines in inches. The DXF Y axis points north,
// so garage Y (measured from the north wall) is flipped.
func ExportDXF(path string, space model.GarageSpace, rec model.LayoutRecommendation) error {
	if space.Width <= 0 || space.Depth <= 0 {
		return fmt.Errorf("garage has no floor area")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerOutline, color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add outline layer: %w", err)
	}
	if err := addRect(d, space, space.Bounds()); err != nil {
		return fmt.Errorf("failed to draw garage outline: %w", err)
	}

	if len(rec.Constraints) > 0 {
		if _, err := d.AddLayer(LayerConstraints, color.Red, table.LT_HIDDEN, true); err != nil {
			return fmt.Errorf("failed to add constraints layer: %w", err)
		}
		for _, c := range rec.Constraints {
			if err := addRect(d, space, c.Rect()); err != nil {
				return fmt.Errorf("failed to draw clearance %q: %w", c.Description, err)
			}
		}
	}

	layers := make(map[string]bool)
	for _, z := range rec.Zones {
		name := ZoneLayer(z.Type)
		if !layers[name] {
			cl, ok := zoneLayerColors[z.Type]
			if !ok {
				cl = color.White
			}
			if _, err := d.AddLayer(name, cl, table.LT_CONTINUOUS, false); err != nil {
				return fmt.Errorf("failed to add layer %s: %w", name, err)
			}
			layers[name] = true
		}
		if err := d.ChangeLayer(name); err != nil {
			return err
		}
		if err := addRect(d, space, z.Rect()); err != nil {
			return fmt.Errorf("failed to draw zone %q: %w", z.Name, err)
		}
	}

	if len(rec.Zones) > 0 {
		if _, err := d.AddLayer(LayerLabels, color.White, table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("failed to add labels layer: %w", err)
		}
		for _, z := range rec.Zones {
			x := z.X + labelHeightIn/2
			y := space.Depth - z.Y - labelHeightIn*1.5
			if _, err := d.Text(z.Name, x, y, 0, labelHeightIn); err != nil {
				return fmt.Errorf("failed to label zone %q: %w", z.Name, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// addRect draws r as a closed polyline on the current layer.
func addRect(d *drawing.Drawing, space model.GarageSpace, r model.Rect) error {
	top := space.Depth - r.Y
	bottom := space.Depth - r.Bottom()
	_, err := d.LwPolyline(true,
		[]float64{r.X, top},
		[]float64{r.Right(), top},
		[]float64{r.Right(), bottom},
		[]float64{r.X, bottom},
	)
	return err
}
