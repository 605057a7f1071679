package parse

import (
	"errors"
)

var (
	// ErrParse wraps all malformed-input failures. Parsing is
	// all-or-nothing: a partial tree is never returned.
	ErrParse = errors.New("parse error")

	// ErrDepth is returned when input nests deeper than the
	// configured limit.
	ErrDepth = errors.New("nesting depth limit exceeded")
)
