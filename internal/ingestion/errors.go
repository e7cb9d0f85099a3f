package ingestion

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for file extensions the adapter cannot
// decode.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Error describes a failure reading or decoding a resume document.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
