package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
	"github.com/xuri/excelize/v2"
)

// Load reads the fill colors of a saved workbook back into a sheet.
// An empty sheetName selects the active sheet. Cells without a solid fill
// are left unset.
func Load(path, sheetName string) (*models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}

	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return nil, err
	}
	cols, rows, err := parseDimension(dim)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	sheet, err := models.NewSheet(cols, rows)
	if err != nil {
		return nil, err
	}

	colors := make(map[int]models.CellColor)
	for col := 1; col <= cols; col++ {
		for row := 1; row <= rows; row++ {
			cellName, _ := excelize.CoordinatesToCellName(col, row)
			styleID, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if styleID == 0 {
				continue
			}

			color, ok := colors[styleID]
			if !ok {
				color, err = styleFillColor(f, styleID)
				if err != nil {
					return nil, err
				}
				colors[styleID] = color
			}
			if color == "" {
				continue
			}
			if err := sheet.Set(col, row, color); err != nil {
				return nil, err
			}
		}
	}

	return sheet, nil
}

// styleFillColor returns the solid fill color of a style, or "" when the
// style has no solid fill.
func styleFillColor(f *excelize.File, styleID int) (models.CellColor, error) {
	style, err := f.GetStyle(styleID)
	if err != nil {
		return "", err
	}
	if style == nil || style.Fill.Type != "pattern" || style.Fill.Pattern != 1 || len(style.Fill.Color) == 0 {
		return "", nil
	}
	return models.ParseCellColor(style.Fill.Color[0])
}

// parseDimension parses a used range like A1:D10 (or a single cell like A1)
// into the number of columns and rows it spans from A1.
func parseDimension(ref string) (cols, rows int, err error) {
	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return 0, 0, fmt.Errorf("invalid dimension %q", ref)
	}

	cols, rows, err = excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dimension %q: %w", ref, err)
	}
	return cols, rows, nil
}
