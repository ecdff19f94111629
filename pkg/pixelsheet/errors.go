package pixelsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/paint"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet/source"
)

// ErrInputNotFound indicates the input image does not exist.
var ErrInputNotFound = source.ErrNotFound

// ErrImageDecode indicates the input image exists but cannot be decoded.
var ErrImageDecode = source.ErrDecode

// ErrInvalidArgument indicates a non-positive worker count or image width.
var ErrInvalidArgument = paint.ErrInvalidArgument

// ErrSave indicates the workbook could not be written.
var ErrSave = errors.New("cannot save workbook")

// ErrVerify indicates the saved workbook does not match the painted sheet.
var ErrVerify = errors.New("workbook verification failed")

// WorkerError represents a failure inside one coloring worker.
type WorkerError = paint.WorkerError

// ConversionError represents an error during one stage of a conversion.
type ConversionError struct {
	Path  string
	Stage string // "open", "paint", "save", "verify"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, path string, err error) *ConversionError {
	return &ConversionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
