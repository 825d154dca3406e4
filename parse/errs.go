package parse

import "errors"

var (
	ErrParse = errors.New("parse error")

	// taxonomy wrapped by ErrParse errors
	ErrEndOfInput         = errors.New("unexpected end of input")
	ErrInvalidValue       = errors.New("invalid value")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrExpectedToken      = errors.New("expected token")
	ErrMalformedLiteral   = errors.New("malformed literal")
	ErrAlloc              = errors.New("allocation failed")
	ErrTooDeep            = errors.New("maximum nesting depth exceeded")
)
