package models

import "fmt"

// ColumnBand is a half-open range of 0-based image columns [From, To)
// assigned to a single worker.
type ColumnBand struct {
	// From is the first column of the band.
	From int `json:"from"`
	// To is one past the last column of the band.
	To int `json:"to"`
}

// Len returns the number of columns in the band.
func (b ColumnBand) Len() int {
	if b.To < b.From {
		return 0
	}
	return b.To - b.From
}

// Empty reports whether the band holds no columns.
func (b ColumnBand) Empty() bool {
	return b.Len() == 0
}

// Contains reports whether column x belongs to the band.
func (b ColumnBand) Contains(x int) bool {
	return x >= b.From && x < b.To
}

func (b ColumnBand) String() string {
	return fmt.Sprintf("[%d,%d)", b.From, b.To)
}
