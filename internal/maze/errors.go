package maze

import "errors"

// ErrMissingReference is returned when a loaded level lacks a node the
// rules depend on. The level load is aborted.
var ErrMissingReference = errors.New("maze: missing scene reference")

// ErrNotLoading is returned by Begin when the session already started.
var ErrNotLoading = errors.New("maze: session already started")
