package models

import "fmt"

// Sheet is an in-memory grid of cell fill colors addressed 1-based by
// (column, row), like the spreadsheet it is serialized to.
//
// Cells live in one preallocated slice and are never resized, so goroutines
// writing disjoint cells do not need to synchronize. Reading a cell that
// another goroutine is still writing is a data race.
type Sheet struct {
	cols  int
	rows  int
	cells []CellColor
}

// NewSheet returns an empty sheet of cols x rows cells.
func NewSheet(cols, rows int) (*Sheet, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid sheet size %dx%d", cols, rows)
	}
	return &Sheet{
		cols:  cols,
		rows:  rows,
		cells: make([]CellColor, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (s *Sheet) Cols() int { return s.cols }

// Rows returns the number of rows.
func (s *Sheet) Rows() int { return s.rows }

// index maps a 1-based address onto the column-major cell slice.
func (s *Sheet) index(col, row int) (int, error) {
	if col < 1 || col > s.cols || row < 1 || row > s.rows {
		return 0, fmt.Errorf("cell (%d, %d) outside sheet %dx%d", col, row, s.cols, s.rows)
	}
	return (col-1)*s.rows + (row - 1), nil
}

// Set stores the fill color of a cell.
func (s *Sheet) Set(col, row int, color CellColor) error {
	i, err := s.index(col, row)
	if err != nil {
		return err
	}
	s.cells[i] = color
	return nil
}

// Color returns the fill color of a cell, or "" if the cell is unset or
// outside the sheet.
func (s *Sheet) Color(col, row int) CellColor {
	i, err := s.index(col, row)
	if err != nil {
		return ""
	}
	return s.cells[i]
}

// Column returns the colors of one column, top to bottom. The slice aliases
// the sheet's storage and must not be modified.
func (s *Sheet) Column(col int) []CellColor {
	if col < 1 || col > s.cols {
		return nil
	}
	start := (col - 1) * s.rows
	return s.cells[start : start+s.rows : start+s.rows]
}

// Filled counts the cells that have a color.
func (s *Sheet) Filled() int {
	n := 0
	for _, c := range s.cells {
		if c != "" {
			n++
		}
	}
	return n
}

// Palette returns the distinct colors in the sheet in column-major order of
// first appearance.
func (s *Sheet) Palette() []CellColor {
	seen := make(map[CellColor]struct{})
	var result []CellColor
	for _, c := range s.cells {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}

// Equal reports whether both sheets have the same size and colors.
func (s *Sheet) Equal(other *Sheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.cols != other.cols || s.rows != other.rows {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Diff returns the first differing cell between two sheets of equal size.
func (s *Sheet) Diff(other *Sheet) (col, row int, ok bool) {
	if s.cols != other.cols || s.rows != other.rows {
		return 0, 0, false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return i/s.rows + 1, i%s.rows + 1, true
		}
	}
	return 0, 0, false
}
