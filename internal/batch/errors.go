package batch

import "errors"

// Precondition errors. These abort the run before any file is processed;
// everything that happens per file is logged and skipped instead.
var (
	// ErrMissingInput means the input path does not exist.
	ErrMissingInput = errors.New("input path does not exist")

	// ErrNotDirectory means a directory was required but a file was given.
	ErrNotDirectory = errors.New("input path is not a directory")

	// ErrUnsupportedInput means a single-file input is not an HTML document.
	ErrUnsupportedInput = errors.New("input file is not an HTML document")
)
