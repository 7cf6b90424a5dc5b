package export

import (
	"fmt"

	"github.com/piwi3910/garageplan/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetZones       = "Zones"
	SheetConstraints = "Constraints"
	SheetNotes       = "Notes"
)

var (
	zoneHeaders       = []interface{}{"#", "Name", "Type", "Wall", "X (in)", "Y (in)", "Width (in)", "Depth (in)", "Area (sq ft)", "Priority", "Notes"}
	constraintHeaders = []interface{}{"Feature", "Wall", "X (in)", "Y (in)", "Width (in)", "Depth (in)", "Description"}
)

// ExportXLSX writes the recommendation to a workbook with one sheet of
// zones, one of clearance constraints and one of summary notes.
func ExportXLSX(path string, space model.GarageSpace, rec model.LayoutRecommendation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetZones); err != nil {
		return fmt.Errorf("failed to name zones sheet: %w", err)
	}
	for _, name := range []string{SheetConstraints, SheetNotes} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add %s sheet: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	zoneRows := make([][]interface{}, 0, len(rec.Zones))
	for i, z := range rec.Zones {
		zoneRows = append(zoneRows, []interface{}{
			i + 1, z.Name, z.Type.Label(), wallLabel(z),
			z.X, z.Y, z.Width, z.Depth,
			model.SquareFeet(z.Width * z.Depth), z.Priority, z.Notes,
		})
	}
	if err := writeTable(f, SheetZones, header, zoneHeaders, zoneRows); err != nil {
		return err
	}

	constraintRows := make([][]interface{}, 0, len(rec.Constraints))
	for _, c := range rec.Constraints {
		constraintRows = append(constraintRows, []interface{}{
			string(c.Type), c.Wall.String(), c.X, c.Y, c.Width, c.Depth, c.Description,
		})
	}
	if err := writeTable(f, SheetConstraints, header, constraintHeaders, constraintRows); err != nil {
		return err
	}

	if err := writeNotes(f, header, space, rec); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeTable fills a sheet with a styled header row followed by rows.
func writeTable(f *excelize.File, sheet string, style int, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", lastCol, 16)
}

// writeNotes lays out the summary block, then reasoning and warnings.
func writeNotes(f *excelize.File, style int, space model.GarageSpace, rec model.LayoutRecommendation) error {
	rows := [][]interface{}{
		{"Summary"},
		{"Garage width (in)", space.Width},
		{"Garage depth (in)", space.Depth},
		{"Ceiling height (in)", space.CeilingHeight},
		{"Layout score", rec.Score},
		{"Zones placed", len(rec.Zones)},
		{"Floor in use (sq ft)", model.SquareFeet(rec.UsedFloorArea())},
		{},
		{"Reasoning"},
	}
	for _, r := range rec.Reasoning {
		rows = append(rows, []interface{}{r})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Warnings"})
	for _, w := range rec.Warnings {
		rows = append(rows, []interface{}{w})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetNotes, cell, &row); err != nil {
			return fmt.Errorf("failed to write notes row %d: %w", i+1, err)
		}
		if len(row) == 1 && isNotesHeading(row[0]) {
			if err := f.SetCellStyle(SheetNotes, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style notes heading: %w", err)
			}
		}
	}
	return f.SetColWidth(SheetNotes, "A", "A", 60)
}

func isNotesHeading(v interface{}) bool {
	switch v {
	case "Summary", "Reasoning", "Warnings":
		return true
	}
	return false
}
