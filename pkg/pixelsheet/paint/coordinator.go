package paint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
)

// State is the lifecycle stage of a Paint run.
type State string

const (
	StateIdle         State = "idle"
	StatePartitioning State = "partitioning"
	StateRunning      State = "running"
	StateJoined       State = "joined"
	StateSucceeded    State = "succeeded"
	StateFailed       State = "failed"
)

// Options configures a Paint run.
type Options struct {
	// Workers is the number of column bands. Zero means one.
	Workers int
	// FailFast cancels the remaining workers after the first failure.
	FailFast bool
	// Logger receives progress and failures. Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) workers() int {
	if o.Workers == 0 {
		return 1
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Report describes a finished Paint run.
type Report struct {
	// State is the terminal state, StateSucceeded or StateFailed.
	State State
	// Bands is the full partition, empty bands included.
	Bands []models.ColumnBand
	// Workers is the number of workers launched.
	Workers int
	// Columns is the number of columns reported finished.
	Columns  int
	Duration time.Duration
}

// Paint colors every cell of sheet from img. One goroutine is started per
// non-empty band and Paint returns only after all of them have exited.
//
// Every worker failure is returned as a *WorkerError; several failures are
// joined with the first observed one first.
func Paint(ctx context.Context, img Pixels, sheet *models.Sheet, opts Options) (*Report, error) {
	logger := opts.logger()
	report := &Report{State: StateIdle}
	start := time.Now()

	if sheet == nil {
		report.State = StateFailed
		return report, fmt.Errorf("%w: nil sheet", ErrInvalidArgument)
	}

	report.State = StatePartitioning
	bands, err := Partition(img.Width(), opts.workers())
	if err != nil {
		report.State = StateFailed
		return report, err
	}
	report.Bands = bands

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	progress := make(chan int, len(bands))
	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		for x := range progress {
			report.Columns++
			logger.Debug("column colored", "column", x, "done", report.Columns, "width", img.Width())
		}
	}()

	failures := make(chan error, len(bands))
	var wg sync.WaitGroup
	for i, band := range bands {
		if band.Empty() {
			logger.Debug("skipping empty band", "worker", i+1)
			continue
		}

		i, band := i, band
		report.Workers++
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Debug("worker started", "worker", i+1, "band", band.String())
			if err := ColorBand(workCtx, img, band, sheet, progress); err != nil {
				if opts.FailFast {
					cancel()
				}
				failures <- &WorkerError{Index: i, Band: band, Err: err}
				return
			}
			logger.Debug("worker finished", "worker", i+1, "band", band.String())
		}()
	}
	report.State = StateRunning
	logger.Info("coloring", "workers", report.Workers, "width", img.Width(), "height", img.Height())

	wg.Wait()
	close(progress)
	<-progressDone
	close(failures)
	report.State = StateJoined
	report.Duration = time.Since(start)

	var errs []error
	for err := range failures {
		// Workers stopped by fail-fast are not failures of their own.
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			continue
		}
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		report.State = StateFailed
		logger.Error("coloring failed", "failures", len(errs), "error", errs[0])
		if len(errs) == 1 {
			return report, errs[0]
		}
		return report, errors.Join(errs...)
	}

	report.State = StateSucceeded
	logger.Info("coloring done", "columns", report.Columns, "duration", report.Duration)
	return report, nil
}
