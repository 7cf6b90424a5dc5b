package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/garageplan/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each zone label's QR code.
type LabelInfo struct {
	Index    int            `json:"index"`
	Name     string         `json:"name"`
	Type     model.ZoneType `json:"type"`
	Wall     model.Wall     `json:"wall,omitempty"`
	X        float64        `json:"x_in"`
	Y        float64        `json:"y_in"`
	Width    float64        `json:"width_in"`
	Depth    float64        `json:"depth_in"`
	Priority int            `json:"priority"`
	Notes    string         `json:"notes,omitempty"`
}

// Avery 5160 sheet geometry in mm: 3 x 10 cells of 66.7 x 25.4 on US Letter.
const (
	sheetTop      = 12.7
	sheetLeft     = 4.8
	labelWidth    = 66.7
	labelHeight   = 25.4
	sheetCols     = 3
	sheetRows     = 10
	labelsPerPage = sheetCols * sheetRows
	qrSize        = 20.0
	labelPadding  = 2.0
)

// labelCell returns the top-left corner of the n-th label on its page.
func labelCell(n int) (float64, float64) {
	n %= labelsPerPage
	return sheetLeft + float64(n%sheetCols)*labelWidth, sheetTop + float64(n/sheetCols)*labelHeight
}

// ExportLabels writes a sheet of QR-coded labels, one per placed zone,
// for marking zone corners on the floor or wall. The QR code carries the
// zone as JSON.
func ExportLabels(path string, rec model.LayoutRecommendation) error {
	labels := CollectLabelInfos(rec)
	if len(labels) == 0 {
		return fmt.Errorf("no zones to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for n, info := range labels {
		if n%labelsPerPage == 0 {
			pdf.AddPage()
		}
		x, y := labelCell(n)
		if err := renderLabel(pdf, x, y, info); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", info.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_zone_%d", info.Index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Color tab matching the floor plan
	col := colorFor(info.Type)
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.Rect(x, y, 1.2, labelHeight, "F")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fitText(pdf, info.Name, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s x %s", model.FeetInches(info.Width), model.FeetInches(info.Depth))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pos := fmt.Sprintf("%s from W, %s from N", model.FeetInches(info.X), model.FeetInches(info.Y))
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%s | %s", info.Type.Label(), wallLabel(model.Zone{Type: info.Type, Wall: info.Wall})), "", 1, "L", false, 0, "")

	if info.Notes != "" {
		pdf.SetXY(textX, y+labelPadding+16)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fitText(pdf, info.Notes, textW), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a recommendation in
// placement order.
func CollectLabelInfos(rec model.LayoutRecommendation) []LabelInfo {
	var labels []LabelInfo
	for i, z := range rec.Zones {
		labels = append(labels, LabelInfo{
			Index:    i + 1,
			Name:     z.Name,
			Type:     z.Type,
			Wall:     z.Wall,
			X:        z.X,
			Y:        z.Y,
			Width:    z.Width,
			Depth:    z.Depth,
			Priority: z.Priority,
			Notes:    z.Notes,
		})
	}
	return labels
}
