package filehandler

import "errors"

// Sentinel errors callers are expected to match with errors.Is.
// Any other I/O failure (permission, disk full) propagates untranslated.
var (
	// ErrNotFound reports that Load's target path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedDataSource reports a data source with no registered handler.
	ErrUnsupportedDataSource = errors.New("unsupported data source")
)
