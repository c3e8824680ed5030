package rulegen

import (
	"errors"
	"fmt"

	"github.com/offlinesiem/rulegen/pkg/rulegen/parser"
)

// ErrSourceUnavailable indicates the catalogue file cannot be opened or read.
var ErrSourceUnavailable = errors.New("catalogue source unavailable")

// ErrUnsupportedFormat indicates the catalogue file extension is not .xlsx, .xlsm or .csv.
var ErrUnsupportedFormat = errors.New("unsupported catalogue format")

// ErrSheetNotFound indicates the configured sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// SourceError represents a failure to load the catalogue.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load catalogue %q: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}

// NewSourceError creates a new SourceError.
func NewSourceError(path string, err error) *SourceError {
	return &SourceError{
		Path: path,
		Err:  err,
	}
}
