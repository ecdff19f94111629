package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
	"github.com/xuri/excelize/v2"
)

func testSheet(t *testing.T) *models.Sheet {
	t.Helper()
	sheet, err := models.NewSheet(3, 2)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	// column A is one run of red; C mixes blue and white
	sheet.Set(1, 1, "ff0000")
	sheet.Set(1, 2, "ff0000")
	sheet.Set(2, 1, "00ff00")
	sheet.Set(3, 1, "0000ff")
	sheet.Set(3, 2, "ffffff")
	return sheet
}

func TestSaveAndLoad(t *testing.T) {
	sheet := testSheet(t)
	path := filepath.Join(t.TempDir(), "test.xlsx")

	if err := Save(sheet, path, DefaultOptions()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(sheet) {
		col, row, _ := loaded.Diff(sheet)
		t.Errorf("loaded sheet differs at (%d, %d): %q vs %q",
			col, row, loaded.Color(col, row), sheet.Color(col, row))
	}
	// B2 was never colored
	if loaded.Color(2, 2) != "" {
		t.Errorf("B2 = %q, expected no fill", loaded.Color(2, 2))
	}
}

func TestSaveDeduplicatesStyles(t *testing.T) {
	sheet := testSheet(t)
	sheet.Set(2, 2, "ff0000")
	path := filepath.Join(t.TempDir(), "test.xlsx")

	if err := Save(sheet, path, DefaultOptions()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer f.Close()

	a1, _ := f.GetCellStyle(DefaultSheetName, "A1")
	a2, _ := f.GetCellStyle(DefaultSheetName, "A2")
	b2, _ := f.GetCellStyle(DefaultSheetName, "B2")
	c1, _ := f.GetCellStyle(DefaultSheetName, "C1")
	if a1 == 0 || a1 != a2 || a1 != b2 {
		t.Errorf("red cells use styles %d, %d, %d; expected one shared style", a1, a2, b2)
	}
	if c1 == a1 {
		t.Errorf("blue and red cells share style %d", c1)
	}

	style, err := f.GetStyle(a1)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Fill.Type != "pattern" || style.Fill.Pattern != 1 {
		t.Errorf("fill = %+v, expected solid pattern", style.Fill)
	}
}

func TestSaveSheetOptions(t *testing.T) {
	sheet := testSheet(t)
	path := filepath.Join(t.TempDir(), "test.xlsx")

	opts := Options{SheetName: "Picture", CellSize: 14}
	if err := Save(sheet, path, opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Picture"); idx < 0 {
		t.Fatalf("sheet Picture not found in %v", f.GetSheetList())
	}
	width, err := f.GetColWidth("Picture", "C")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if width != PixelsToColumnWidth(14) {
		t.Errorf("column width = %v, expected %v", width, PixelsToColumnWidth(14))
	}

	loaded, err := Load(path, "Picture")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(sheet) {
		t.Error("loaded sheet differs from saved sheet")
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("Failed to write stale file: %v", err)
	}

	sheet := testSheet(t)
	if err := Save(sheet, path, DefaultOptions()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path, ""); err != nil {
		t.Errorf("Load after overwrite failed: %v", err)
	}
}

func TestSaveErrors(t *testing.T) {
	sheet := testSheet(t)
	dir := t.TempDir()

	if err := Save(sheet, filepath.Join(dir, "missing", "test.xlsx"), DefaultOptions()); err == nil {
		t.Error("expected error for missing directory")
	}
	if err := Save(sheet, filepath.Join(dir, "test.txt"), DefaultOptions()); err == nil {
		t.Error("expected error for unsupported extension")
	}

	wide, _ := models.NewSheet(excelize.MaxColumns+1, 1)
	if err := Save(wide, filepath.Join(dir, "wide.xlsx"), DefaultOptions()); err == nil {
		t.Error("expected error for sheet wider than the workbook limit")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.xlsx"), ""); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(dir, "test.xlsx")
	if err := Save(testSheet(t), path, DefaultOptions()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path, "NoSuchSheet"); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input   string
		cols    int
		rows    int
		wantErr bool
	}{
		{"A1:C2", 3, 2, false},
		{"$A$1:$AA$10", 27, 10, false},
		{"B7", 2, 7, false},
		{"", 0, 0, true},
		{"A1:B2:C3", 0, 0, true},
		{"A1:nope", 0, 0, true},
	}

	for _, tt := range tests {
		cols, rows, err := parseDimension(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDimension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("parseDimension(%q) = (%d, %d), expected (%d, %d)",
				tt.input, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestUnits(t *testing.T) {
	if got := PixelsToRowHeight(20); got != 15 {
		t.Errorf("PixelsToRowHeight(20) = %v, expected 15", got)
	}
	if got := PixelsToColumnWidth(7); got != 1 {
		t.Errorf("PixelsToColumnWidth(7) = %v, expected 1", got)
	}
	// 64px is the default column: 8.43 characters plus padding
	if got := PixelsToColumnWidth(64); got < 9.14 || got > 9.15 {
		t.Errorf("PixelsToColumnWidth(64) = %v", got)
	}
}
