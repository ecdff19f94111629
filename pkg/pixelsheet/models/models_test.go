package models

import (
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		input    RGB
		expected CellColor
	}{
		{RGB{0, 0, 0}, "000000"},
		{RGB{255, 255, 255}, "ffffff"},
		{RGB{1, 2, 3}, "010203"},
		{RGB{0xAB, 0x0C, 0xEF}, "ab0cef"},
	}

	for _, tt := range tests {
		result := tt.input.Hex()
		if result != tt.expected {
			t.Errorf("%v.Hex() = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseCellColor(t *testing.T) {
	tests := []struct {
		input    string
		expected CellColor
		wantErr  bool
	}{
		{"ab0cef", "ab0cef", false},
		{"#AB0CEF", "ab0cef", false},
		{"FFAB0CEF", "ab0cef", false},
		{" #010203 ", "010203", false},
		{"abc", "", true},
		{"zzzzzz", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParseCellColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCellColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseCellColor(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestColumnBand(t *testing.T) {
	b := ColumnBand{From: 2, To: 5}
	if b.Len() != 3 || b.Empty() {
		t.Errorf("band %v: Len = %d, Empty = %v", b, b.Len(), b.Empty())
	}
	if !b.Contains(2) || !b.Contains(4) || b.Contains(5) || b.Contains(1) {
		t.Errorf("band %v: unexpected Contains result", b)
	}
	if b.String() != "[2,5)" {
		t.Errorf("String() = %q", b.String())
	}

	empty := ColumnBand{From: 7, To: 7}
	if !empty.Empty() {
		t.Errorf("band %v should be empty", empty)
	}
}

func TestSheet(t *testing.T) {
	if _, err := NewSheet(0, 3); err == nil {
		t.Error("expected error for zero columns")
	}

	s, err := NewSheet(3, 2)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if s.Cols() != 3 || s.Rows() != 2 {
		t.Fatalf("unexpected size %dx%d", s.Cols(), s.Rows())
	}

	if err := s.Set(3, 2, "ff0000"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(1, 1, "00ff00"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	for _, addr := range [][2]int{{0, 1}, {4, 1}, {1, 0}, {1, 3}} {
		if err := s.Set(addr[0], addr[1], "000000"); err == nil {
			t.Errorf("Set(%d, %d) should fail", addr[0], addr[1])
		}
	}

	if s.Color(3, 2) != "ff0000" {
		t.Errorf("Color(3, 2) = %q", s.Color(3, 2))
	}
	if s.Color(2, 2) != "" {
		t.Errorf("Color(2, 2) = %q, expected unset", s.Color(2, 2))
	}
	if s.Color(9, 9) != "" {
		t.Errorf("Color outside the sheet should be empty")
	}
	if s.Filled() != 2 {
		t.Errorf("Filled() = %d, expected 2", s.Filled())
	}

	col := s.Column(3)
	if len(col) != 2 || col[1] != "ff0000" {
		t.Errorf("Column(3) = %v", col)
	}

	palette := s.Palette()
	if len(palette) != 2 || palette[0] != "00ff00" || palette[1] != "ff0000" {
		t.Errorf("Palette() = %v", palette)
	}
}

func TestSheetEqualAndDiff(t *testing.T) {
	a, _ := NewSheet(2, 2)
	b, _ := NewSheet(2, 2)
	a.Set(1, 1, "010101")
	b.Set(1, 1, "010101")

	if !a.Equal(b) {
		t.Error("expected equal sheets")
	}
	if _, _, ok := a.Diff(b); ok {
		t.Error("expected no diff")
	}

	b.Set(2, 1, "020202")
	if a.Equal(b) {
		t.Error("expected sheets to differ")
	}
	col, row, ok := a.Diff(b)
	if !ok || col != 2 || row != 1 {
		t.Errorf("Diff = (%d, %d, %v), expected (2, 1, true)", col, row, ok)
	}

	c, _ := NewSheet(1, 2)
	if a.Equal(c) {
		t.Error("sheets of different size must not be equal")
	}
}
