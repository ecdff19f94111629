// Package pixelsheet converts raster images into spreadsheets with one
// solid-filled cell per pixel.
package pixelsheet

import (
	"log/slog"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/output"
)

// Options configures a conversion.
type Options struct {
	// ThreadsCount is the number of concurrent coloring workers.
	// Zero means one.
	ThreadsCount int
	// SheetName names the painted sheet. Empty means "Sheet1".
	SheetName string
	// CellSize sets every cell to this many pixels square. Zero keeps the
	// default row height with a base column width of 2.
	CellSize int
	// Verify reloads the saved workbook and compares it to the painted sheet.
	Verify bool
	// ContinueOnError lets the remaining workers finish after a worker fails.
	// By default the first failure stops them.
	ContinueOnError bool
	// Logger receives progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		ThreadsCount: 1,
		SheetName:    output.DefaultSheetName,
	}
}

// Workers returns the number of coloring workers.
func (o Options) Workers() int {
	if o.ThreadsCount == 0 {
		return 1
	}
	return o.ThreadsCount
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) outputOptions() output.Options {
	return output.Options{
		SheetName: o.SheetName,
		CellSize:  o.CellSize,
	}
}
