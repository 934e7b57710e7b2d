package drv

import "github.com/cockroachdb/errors"

// ErrUnsupportedCombination is returned when no registered combination supports the requested
// format and usage
var ErrUnsupportedCombination = errors.New("unsupported format and usage combination")

// ErrNotSupportedByBackend is returned when an operation relies on an optional Backend interface
// that the active backend does not implement
var ErrNotSupportedByBackend = errors.New("operation not supported by backend")
