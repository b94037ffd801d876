package canal

import "errors"

// ErrClosed is reserved for API symmetry with the source channel types this
// package is modeled on. The core Channel has no close operation and never
// returns ErrClosed; it exists so callers building a closable wrapper around
// a Channel have a conventional sentinel to use.
var ErrClosed = errors.New("canal: channel closed")
