package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/garageplan/internal/model"
)

// zoneColor represents an RGB fill for a zone type.
type zoneColor struct {
	R, G, B int
}

var zoneColors = map[model.ZoneType]zoneColor{
	model.ZoneVehicle:         {R: 33, G: 150, B: 243},  // blue
	model.ZoneWorkbench:       {R: 255, G: 152, B: 0},   // orange
	model.ZoneWallStorage:     {R: 76, G: 175, B: 80},   // green
	model.ZoneOverheadStorage: {R: 156, G: 39, B: 176},  // purple
	model.ZoneFloorStorage:    {R: 121, G: 85, B: 72},   // brown
}

var fallbackColor = zoneColor{R: 158, G: 158, B: 158}

func colorFor(t model.ZoneType) zoneColor {
	if c, ok := zoneColors[t]; ok {
		return c
	}
	return fallbackColor
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	rowHeight    = 6.0
)

// ExportPDF writes the recommendation as a PDF: a scaled floor plan page
// followed by summary pages with the zone table, reasoning and warnings.
func ExportPDF(path string, space model.GarageSpace, rec model.LayoutRecommendation) error {
	if len(rec.Zones) == 0 {
		return fmt.Errorf("no zones to export")
	}
	if space.Width <= 0 || space.Depth <= 0 {
		return fmt.Errorf("garage has no floor area")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFloorPlan(pdf, space, rec)

	pdf.AddPage()
	renderSummaryPage(pdf, space, rec)

	return pdf.OutputFileAndClose(path)
}

// renderFloorPlan draws the garage, clearances and zones on the current page.
// North is at the top of the page.
func renderFloorPlan(pdf *fpdf.Fpdf, space model.GarageSpace, rec model.LayoutRecommendation) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Garage Floor Plan (%s x %s)", model.FeetInches(space.Width), model.FeetInches(space.Depth))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Zones: %d | Warnings: %d | Ceiling: %s | Score: %.0f/100",
		len(rec.Zones), len(rec.Warnings), model.FeetInches(space.CeilingHeight), rec.Score)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/space.Width, drawHeight/space.Depth)
	canvasW := space.Width * scale
	canvasH := space.Depth * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Slab
	pdf.SetFillColor(225, 225, 220)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, c := range rec.Constraints {
		drawClearance(pdf, c, scale, offsetX, offsetY)
	}

	// Ceiling zones are drawn after floor zones and outlined only.
	for _, pass := range []bool{false, true} {
		for _, z := range rec.Zones {
			if (z.Type == model.ZoneOverheadStorage) != pass {
				continue
			}
			drawZone(pdf, z, scale, offsetX, offsetY)
		}
	}

	drawCompass(pdf, offsetX+canvasW+3, offsetY)
	drawDimensionAnnotations(pdf, space, offsetX, offsetY, canvasW, canvasH)
	drawZoneLegend(pdf, rec, offsetY+canvasH+6)
}

// drawClearance renders a feature clearance as a hatched exclusion rectangle.
func drawClearance(pdf *fpdf.Fpdf, c model.Constraint, scale, offsetX, offsetY float64) {
	zx := offsetX + c.X*scale
	zy := offsetY + c.Y*scale
	zw := c.Width * scale
	zh := c.Depth * scale

	pdf.SetFillColor(255, 220, 220)
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(zx, zy, zw, zh, "FD")
	drawHatchPattern(pdf, zx, zy, zw, zh)

	if zw > 20 && zh > 6 {
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(180, 0, 0)
		label := "KEEP CLEAR"
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(zx+(zw-labelW)/2, zy+zh/2-2)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle to indicate exclusion zones.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 3.0
	for d := spacing; d < w+h; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

func drawZone(pdf *fpdf.Fpdf, z model.Zone, scale, offsetX, offsetY float64) {
	col := colorFor(z.Type)
	zw := z.Width * scale
	zh := z.Depth * scale
	zx := offsetX + z.X*scale
	zy := offsetY + z.Y*scale

	pdf.SetDrawColor(col.R, col.G, col.B)
	if z.Type == model.ZoneOverheadStorage {
		pdf.SetLineWidth(0.6)
		pdf.SetDashPattern([]float64{2, 1.5}, 0)
		pdf.Rect(zx, zy, zw, zh, "D")
		pdf.SetDashPattern([]float64{}, 0)
	} else {
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "FD")
	}

	if zw <= 15 || zh <= 8 {
		return
	}
	pdf.SetFont("Helvetica", "", labelFontSize(zw, zh))
	pdf.SetTextColor(0, 0, 0)

	label := z.Name
	dims := fmt.Sprintf("%s x %s", model.FeetInches(z.Width), model.FeetInches(z.Depth))
	labelW := pdf.GetStringWidth(label)
	dimsW := pdf.GetStringWidth(dims)

	if labelW < zw-2 {
		pdf.SetXY(zx+(zw-labelW)/2, zy+zh/2-4)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}
	if zh > 14 && dimsW < zw-2 {
		pdf.SetXY(zx+(zw-dimsW)/2, zy+zh/2)
		pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
	}
}

// drawCompass marks north beside the plan.
func drawCompass(pdf *fpdf.Fpdf, x, y float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(x+2, y+10, x+2, y+2)
	pdf.Line(x+2, y+2, x+0.5, y+4.5)
	pdf.Line(x+2, y+2, x+3.5, y+4.5)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x, y+10.5)
	pdf.CellFormat(4, 4, "N", "", 0, "C", false, 0, "")
}

// drawDimensionAnnotations adds width and depth labels outside the plan.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, space model.GarageSpace, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := model.FeetInches(space.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	depthLabel := model.FeetInches(space.Depth)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	dLabelW := pdf.GetStringWidth(depthLabel)
	pdf.SetXY(offsetX-3-dLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(dLabelW, 4, depthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawZoneLegend renders one swatch per zone type present in the layout.
func drawZoneLegend(pdf *fpdf.Fpdf, rec model.LayoutRecommendation, startY float64) {
	counts := rec.CountByType()

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Legend:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	for _, t := range model.ZoneTypes {
		n := counts[t]
		if n == 0 {
			continue
		}
		col := colorFor(t)
		label := fmt.Sprintf("%s (%d)", t.Label(), n)
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}

	pdf.SetFillColor(255, 220, 220)
	pdf.Rect(xPos, startY+0.5, 3, 3, "F")
	pdf.SetXY(xPos+4, startY)
	pdf.CellFormat(30, 4, "Clearance", "", 0, "L", false, 0, "")
}

// renderSummaryPage draws the summary statistics and the zone table,
// continuing onto new pages as needed.
func renderSummaryPage(pdf *fpdf.Fpdf, space model.GarageSpace, rec model.LayoutRecommendation) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Garage Layout Recommendation", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Summary", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Garage Size", fmt.Sprintf("%s x %s", model.FeetInches(space.Width), model.FeetInches(space.Depth))},
		{"Ceiling Height", model.FeetInches(space.CeilingHeight)},
		{"Layout Score", fmt.Sprintf("%.0f/100", rec.Score)},
		{"Zones Placed", fmt.Sprintf("%d", len(rec.Zones))},
		{"Floor In Use", fmt.Sprintf("%.0f sq ft", model.SquareFeet(rec.UsedFloorArea()))},
		{"Warnings", fmt.Sprintf("%d", len(rec.Warnings))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Zones", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{65, 35, 30, 30, 35, 20, 52}
	headers := []string{"Zone", "Type", "From West", "From North", "Size", "Wall", "Notes"}
	y = drawTableHeader(pdf, y, colWidths, headers)

	pdf.SetFont("Helvetica", "", 9)
	for i, z := range rec.Zones {
		if y+rowHeight > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = drawTableHeader(pdf, marginTop, colWidths, headers)
			pdf.SetFont("Helvetica", "", 9)
		}
		rowData := []string{
			z.Name,
			z.Type.Label(),
			model.FeetInches(z.X),
			model.FeetInches(z.Y),
			fmt.Sprintf("%s x %s", model.FeetInches(z.Width), model.FeetInches(z.Depth)),
			wallLabel(z),
			z.Notes,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, fitText(pdf, cell, colWidths[j]-2), "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}

	if len(rec.Warnings) > 0 {
		y = renderBulletList(pdf, y+8, "Warnings", rec.Warnings, true)
	}
	y = renderBulletList(pdf, y+8, "Reasoning", rec.Reasoning, false)

	var clearances []string
	for _, c := range rec.Constraints {
		clearances = append(clearances, c.Description)
	}
	renderBulletList(pdf, y+8, "Constraints Considered", clearances, false)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by GaragePlan - Garage Layout Optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawTableHeader(pdf *fpdf.Fpdf, y float64, colWidths []float64, headers []string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	return y + rowHeight
}

// renderBulletList prints a titled list, starting a new page when the
// current one runs out. It returns the y position after the last line.
func renderBulletList(pdf *fpdf.Fpdf, y float64, title string, lines []string, alert bool) float64 {
	if len(lines) == 0 {
		return y
	}
	if y+16 > pageHeight-marginBottom-6 {
		pdf.AddPage()
		y = marginTop
	}

	pdf.SetFont("Helvetica", "B", 11)
	if alert {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(200, 7, title, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		if y+5 > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-5, 5, "- "+line, "", 0, "L", false, 0, "")
		y += 5
	}
	return y
}

// fitText truncates s with an ellipsis until it fits in width.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
