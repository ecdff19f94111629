// Package output serializes painted sheets to xlsx workbooks and reads them back.
package output

import "math"

// PointsPerPixel is the number of points per pixel at 96 DPI.
// 1 inch = 72 points, 1 inch = 96 pixels at 96 DPI
// Therefore: 72 / 96 = 0.75 points per pixel
const PointsPerPixel = 0.75

// MaxDigitWidth is the pixel width of the widest digit in the default
// workbook font (Calibri 11) at 96 DPI.
const MaxDigitWidth = 7

// DefaultBaseColWidth is the base column width, in characters, that makes
// default-sized cells roughly square.
const DefaultBaseColWidth uint8 = 2

// PixelsToRowHeight converts a pixel height to a row height in points.
func PixelsToRowHeight(px int) float64 {
	return float64(px) * PointsPerPixel
}

// PixelsToColumnWidth converts a pixel width to a column width in
// characters of the maximum digit width, truncated to 1/256 of a character
// as the OOXML column width formula requires.
func PixelsToColumnWidth(px int) float64 {
	return math.Trunc(float64(px)/MaxDigitWidth*256) / 256
}
