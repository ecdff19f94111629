// Package paint colors sheet cells from image pixels using parallel workers.
package paint

import (
	"fmt"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
)

// Partition splits the columns [0, width) into exactly workers contiguous
// bands of ceil(width/workers) columns each. The last non-empty band is
// clamped to width; any band past it is empty and starts at width.
func Partition(width, workers int) ([]models.ColumnBand, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidArgument, width)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidArgument, workers)
	}

	span := (width + workers - 1) / workers
	bands := make([]models.ColumnBand, workers)
	for i := range bands {
		from := min(i*span, width)
		bands[i] = models.ColumnBand{
			From: from,
			To:   min(from+span, width),
		}
	}
	return bands, nil
}
