package output

import (
	"fmt"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the name of the sheet a new workbook starts with.
const DefaultSheetName = "Sheet1"

// Options configures how a sheet is written.
type Options struct {
	// SheetName names the painted sheet. Empty means DefaultSheetName.
	SheetName string
	// BaseColWidth is the base column width in characters, used when
	// CellSize is zero. Zero means DefaultBaseColWidth.
	BaseColWidth uint8
	// CellSize sets every cell to this many pixels square.
	CellSize int
}

// DefaultOptions returns default write options.
func DefaultOptions() Options {
	return Options{
		SheetName:    DefaultSheetName,
		BaseColWidth: DefaultBaseColWidth,
	}
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) baseColWidth() uint8 {
	if o.BaseColWidth == 0 {
		return DefaultBaseColWidth
	}
	return o.BaseColWidth
}

// Save writes the sheet to a new workbook at path, replacing any existing
// file. Each colored cell gets a solid pattern fill in its color.
func Save(sheet *models.Sheet, path string, opts Options) error {
	if sheet.Cols() > excelize.MaxColumns || sheet.Rows() > excelize.TotalRows {
		return fmt.Errorf("sheet %dx%d exceeds the workbook limit of %dx%d",
			sheet.Cols(), sheet.Rows(), excelize.MaxColumns, excelize.TotalRows)
	}

	f := excelize.NewFile()
	defer f.Close()

	name := opts.sheetName()
	if name != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	if err := applySheetFormat(f, name, sheet, opts); err != nil {
		return fmt.Errorf("sheet format: %w", err)
	}

	if err := writeFills(f, name, sheet); err != nil {
		return err
	}

	bottomRight, err := excelize.CoordinatesToCellName(sheet.Cols(), sheet.Rows())
	if err != nil {
		return err
	}
	if err := f.SetSheetDimension(name, "A1:"+bottomRight); err != nil {
		return fmt.Errorf("sheet dimension: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// applySheetFormat sizes the cells so the picture is not stretched.
func applySheetFormat(f *excelize.File, name string, sheet *models.Sheet, opts Options) error {
	if opts.CellSize <= 0 {
		base := opts.baseColWidth()
		return f.SetSheetProps(name, &excelize.SheetPropsOptions{BaseColWidth: &base})
	}

	lastCol, err := excelize.ColumnNumberToName(sheet.Cols())
	if err != nil {
		return err
	}
	if err := f.SetColWidth(name, "A", lastCol, PixelsToColumnWidth(opts.CellSize)); err != nil {
		return err
	}

	height := PixelsToRowHeight(opts.CellSize)
	custom := true
	return f.SetSheetProps(name, &excelize.SheetPropsOptions{
		DefaultRowHeight: &height,
		CustomHeight:     &custom,
	})
}

// writeFills styles the sheet column by column, one style per distinct color
// and one range per vertical run of equal colors.
func writeFills(f *excelize.File, name string, sheet *models.Sheet) error {
	styles := make(map[models.CellColor]int)

	for col := 1; col <= sheet.Cols(); col++ {
		column := sheet.Column(col)
		for start := 0; start < len(column); {
			color := column[start]
			end := start + 1
			for end < len(column) && column[end] == color {
				end++
			}

			if color != "" {
				styleID, err := fillStyle(f, styles, color)
				if err != nil {
					return err
				}
				top, _ := excelize.CoordinatesToCellName(col, start+1)
				bottom, _ := excelize.CoordinatesToCellName(col, end)
				if err := f.SetCellStyle(name, top, bottom, styleID); err != nil {
					return fmt.Errorf("style %s:%s: %w", top, bottom, err)
				}
			}
			start = end
		}
	}

	return nil
}

func fillStyle(f *excelize.File, styles map[models.CellColor]int, color models.CellColor) (int, error) {
	if id, ok := styles[color]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#" + string(color)}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("fill style %s: %w", color, err)
	}
	styles[color] = id
	return id, nil
}
