package model

import "errors"

// Error taxonomy. Configuration errors are fatal before any row is
// processed; a missing source input aborts that source's standardization
// only. Row-level failures are never errors — adapters drop and count them.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrSourceMissing = errors.New("source input missing")
)
