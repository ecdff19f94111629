package paint

import (
	"context"
	"fmt"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
)

// Pixels is a read-only image that may be shared by all workers.
type Pixels interface {
	Width() int
	Height() int
	// RGB returns the color of the 0-based pixel (x, y) without alpha.
	RGB(x, y int) (models.RGB, error)
}

// ColorBand fills the sheet cells of one column band. Pixel (x, y) goes to
// cell (x+1, y+1); no other cell is touched.
//
// The context is checked before each column. When progress is not nil the
// index of every finished column is sent on it.
func ColorBand(ctx context.Context, img Pixels, band models.ColumnBand, sheet *models.Sheet, progress chan<- int) error {
	height := img.Height()

	for x := band.From; x < band.To; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for y := 0; y < height; y++ {
			px, err := img.RGB(x, y)
			if err != nil {
				return fmt.Errorf("read pixel (%d, %d): %w", x, y, err)
			}
			if err := sheet.Set(x+1, y+1, px.Hex()); err != nil {
				return fmt.Errorf("color cell: %w", err)
			}
		}

		if progress != nil {
			progress <- x
		}
	}

	return nil
}
