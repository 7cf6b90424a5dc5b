// Package importer reads measured garage data into a project: wall and
// floor features from CSV or Excel tables, and the room outline from a
// DXF drawing. Column headers are matched case-insensitively against a
// list of aliases and the CSV delimiter is detected automatically.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/garageplan/internal/model"
)

// PlacedFeature is an imported feature together with the wall it sits on.
type PlacedFeature struct {
	Wall    model.Wall
	Feature model.Feature
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Features []PlacedFeature
	Errors   []string
	Warnings []string
}

// Apply returns a copy of space with every imported feature added.
func (r ImportResult) Apply(space model.GarageSpace) model.GarageSpace {
	for _, pf := range r.Features {
		space = space.WithFeature(pf.Wall, pf.Feature)
	}
	return space
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Wall     int
	Name     int
	Type     int
	Position int
	Width    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"wall":     {"wall", "side", "location", "where"},
	"name":     {"name", "feature", "label", "description", "desc", "item"},
	"type":     {"type", "kind", "category"},
	"position": {"position", "pos", "center", "centre", "offset", "distance"},
	"width":    {"width", "size", "opening"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (wall, name, position, width, type) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Wall: -1, Name: -1, Type: -1, Position: -1, Width: -1}
	slots := map[string]*int{
		"wall":     &mapping.Wall,
		"name":     &mapping.Name,
		"type":     &mapping.Type,
		"position": &mapping.Position,
		"width":    &mapping.Width,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Wall: 0, Name: 1, Position: 2, Width: 3, Type: 4}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a feature from a row using the given column mapping.
// Returns the feature, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (PlacedFeature, string, string) {
	wallStr := getCell(row, mapping.Wall)
	if wallStr == "" {
		return PlacedFeature{}, fmt.Sprintf("%s: Missing wall value", rowLabel), ""
	}
	wall, ok := model.ParseWall(wallStr)
	if !ok {
		return PlacedFeature{}, fmt.Sprintf("%s: Unknown wall '%s'", rowLabel, wallStr), ""
	}

	name := getCell(row, mapping.Name)
	if name == "" {
		return PlacedFeature{}, fmt.Sprintf("%s: Missing feature name", rowLabel), ""
	}

	posStr := getCell(row, mapping.Position)
	if posStr == "" {
		return PlacedFeature{}, fmt.Sprintf("%s: Missing position value", rowLabel), ""
	}
	position, err := model.ParseLength(posStr)
	if err != nil {
		return PlacedFeature{}, fmt.Sprintf("%s: Invalid position '%s'", rowLabel, posStr), ""
	}
	if position < 0 {
		return PlacedFeature{}, fmt.Sprintf("%s: Position must not be negative", rowLabel), ""
	}

	var width float64
	var warning string
	if widthStr := getCell(row, mapping.Width); widthStr != "" {
		width, err = model.ParseLength(widthStr)
		if err != nil || width <= 0 {
			warning = fmt.Sprintf("%s: Invalid width '%s', using the default for %s", rowLabel, widthStr, name)
			width = 0
		}
	}

	var ftype model.FeatureType
	if typeStr := getCell(row, mapping.Type); typeStr != "" {
		ftype = model.FeatureTypeFromName(typeStr)
	}

	return PlacedFeature{
		Wall:    wall,
		Feature: model.NewFeature(name, ftype, position, width),
	}, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports features from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports features from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// FeatureSheet is the sheet read by ImportExcel when present.
const FeatureSheet = "Features"

// ImportExcel imports features from an Excel file. It reads the
// "Features" sheet when the workbook has one, otherwise the first sheet.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if strings.EqualFold(s, FeatureSheet) {
			sheet = s
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension: .xlsx and .xlsm go to
// ImportExcel, everything else is read as CSV.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Wall == -1 {
			missing = append(missing, "Wall")
		}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Position == -1 {
			missing = append(missing, "Position")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognized header still has a non-numeric position column.
		if _, err := model.ParseLength(getCell(rows[0], mapping.Position)); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		pf, errMsg, warning := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Features = append(result.Features, pf)
	}

	return result
}
