package catalog

import (
	"errors"
	"fmt"
)

// ErrNoRecords indicates no row with a name survived normalization.
var ErrNoRecords = errors.New("no valid rows found in catalog sources; check the header names")

// ErrUnsupportedEncoding indicates an unknown text encoding name.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// SourceError wraps a failure to open, fetch, or parse one source.
type SourceError struct {
	Location string
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Location, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// IsLoadFailure reports whether err is a data load failure: either no
// usable records or a source that could not be read.
func IsLoadFailure(err error) bool {
	var srcErr *SourceError
	return errors.Is(err, ErrNoRecords) || errors.As(err, &srcErr)
}
