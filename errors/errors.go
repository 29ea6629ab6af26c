// Package errors defines all exported error sentinels for the forksort library.
//
// This is the single source of truth for error values, so errors.Is checks
// work for every caller regardless of which entry point produced the error.
package errors

import "errors"

// Entry-point validation errors. All buffer and configuration problems are
// rejected before any task is spawned; once a sort is running it cannot fail.
var (
	ErrScratchLength  = errors.New("forksort: scratch buffer length does not match primary buffer length")
	ErrNegativeCutoff = errors.New("forksort: cutoff must be non-negative")
	ErrSpawnLimit     = errors.New("forksort: spawn limit must be non-negative")
	ErrSharedBuffers  = errors.New("forksort: primary and scratch buffers must not alias")
)
