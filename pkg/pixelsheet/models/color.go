// Package models defines data structures shared by the image-to-sheet pipeline.
package models

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGB is a pixel color with the alpha channel already dropped.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CellColor is a lowercase 6-hex-digit fill color (rrggbb).
type CellColor string

// Hex returns the cell color for the pixel.
func (c RGB) Hex() CellColor {
	return CellColor(hex.EncodeToString([]byte{c.R, c.G, c.B}))
}

// RGB decodes the color back into its channels.
func (c CellColor) RGB() (RGB, error) {
	b, err := hex.DecodeString(string(c))
	if err != nil || len(b) != 3 {
		return RGB{}, fmt.Errorf("invalid cell color %q", string(c))
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// ParseCellColor normalizes a color reported by a spreadsheet.
// Accepted forms: rrggbb, #rrggbb and aarrggbb (alpha is discarded).
func ParseCellColor(s string) (CellColor, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) == 8 {
		s = s[2:]
	}
	c := CellColor(s)
	if _, err := c.RGB(); err != nil {
		return "", err
	}
	return c, nil
}
