package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid engine configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
)
