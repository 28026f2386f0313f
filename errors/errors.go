// Package errors defines all exported error sentinels for the shufflecheck library.
//
// This is the single source of truth for error values. Both the top-level
// shufflecheck package and internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Configuration errors, detected before any work starts.
var (
	ErrInvalidWorkerCount      = errors.New("shufflecheck: worker count must be positive")
	ErrInvalidDomain           = errors.New("shufflecheck: domain max must be greater than domain min")
	ErrInvalidProgressInterval = errors.New("shufflecheck: progress interval must be positive")
	ErrUnknownDigest           = errors.New("shufflecheck: unknown digest ID")
)

// Arithmetic invariant errors. These signal that the generator itself is
// broken; partial results are meaningless and the whole run is aborted.
var (
	ErrValueOutOfRange = errors.New("shufflecheck: generated value outside [0, 1]")
)
