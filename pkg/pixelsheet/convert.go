package pixelsheet

import (
	"context"
	"fmt"
	"time"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/output"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/paint"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/source"
)

// Result summarizes a finished conversion.
type Result struct {
	Width  int
	Height int
	// Workers is the number of workers that colored at least one column.
	Workers int
	Bands   []models.ColumnBand
	// Colors is the number of distinct fill colors written.
	Colors   int
	Duration time.Duration
}

// Convert paints the image at imagePath into a new workbook at outputPath.
// Nothing is written when the image cannot be read or a worker fails.
func Convert(ctx context.Context, imagePath, outputPath string, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.logger().With("image", imagePath)

	if n := opts.Workers(); n <= 0 {
		return nil, fmt.Errorf("%w: threads count must be positive, got %d", ErrInvalidArgument, n)
	}

	img, err := source.Open(imagePath)
	if err != nil {
		return nil, NewConversionError("open", imagePath, err)
	}
	logger.Info("image decoded", "format", img.Format(), "width", img.Width(), "height", img.Height())

	sheet, report, err := PaintImage(ctx, img, opts)
	if err != nil {
		return nil, NewConversionError("paint", imagePath, err)
	}

	logger.Info("saving workbook", "output", outputPath)
	if err := output.Save(sheet, outputPath, opts.outputOptions()); err != nil {
		return nil, NewConversionError("save", outputPath, fmt.Errorf("%w: %w", ErrSave, err))
	}

	if opts.Verify {
		if err := verify(sheet, outputPath, opts.SheetName); err != nil {
			return nil, NewConversionError("verify", outputPath, err)
		}
		logger.Info("workbook verified", "output", outputPath)
	}

	return &Result{
		Width:    img.Width(),
		Height:   img.Height(),
		Workers:  report.Workers,
		Bands:    report.Bands,
		Colors:   len(sheet.Palette()),
		Duration: time.Since(start),
	}, nil
}

// PaintImage colors a new sheet the size of img using opts.ThreadsCount
// workers.
func PaintImage(ctx context.Context, img paint.Pixels, opts Options) (*models.Sheet, *paint.Report, error) {
	sheet, err := models.NewSheet(img.Width(), img.Height())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	report, err := paint.Paint(ctx, img, sheet, paint.Options{
		Workers:  opts.Workers(),
		FailFast: !opts.ContinueOnError,
		Logger:   opts.logger(),
	})
	if err != nil {
		return nil, report, err
	}
	return sheet, report, nil
}

func verify(sheet *models.Sheet, path, sheetName string) error {
	loaded, err := output.Load(path, sheetName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	if loaded.Cols() != sheet.Cols() || loaded.Rows() != sheet.Rows() {
		return fmt.Errorf("%w: workbook is %dx%d, expected %dx%d",
			ErrVerify, loaded.Cols(), loaded.Rows(), sheet.Cols(), sheet.Rows())
	}
	if col, row, ok := loaded.Diff(sheet); ok {
		return fmt.Errorf("%w: cell (%d, %d) is %q, expected %q",
			ErrVerify, col, row, loaded.Color(col, row), sheet.Color(col, row))
	}
	return nil
}
