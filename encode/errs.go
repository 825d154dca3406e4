package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	// ErrAlloc reports output-buffer growth refused by the configured hooks.
	ErrAlloc = errors.New("allocation failed")
)
