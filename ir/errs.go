package ir

import "errors"

var (
	// ErrNilNode reports an absent container or item argument.
	ErrNilNode = errors.New("nil node")
	// ErrAlloc reports a node allocation refused by the configured hooks.
	ErrAlloc = errors.New("allocation failed")
)
