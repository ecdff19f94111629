package paint

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/models"
)

// ErrInvalidArgument indicates a non-positive width or worker count.
var ErrInvalidArgument = errors.New("invalid argument")

// WorkerError represents a failure inside one coloring worker.
type WorkerError struct {
	// Index is the position of the band in the partition.
	Index int
	// Band is the column band the worker owned.
	Band models.ColumnBand
	Err  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d (columns %v): %v", e.Index+1, e.Band, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
