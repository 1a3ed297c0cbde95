package vellum

import "errors"

var (
	// ErrNotElement reports a transform that requires an element node.
	ErrNotElement = errors.New("node is not an element")

	// ErrNotParent reports a transform that requires a node able to hold
	// children, an element or a fragment.
	ErrNotParent = errors.New("node cannot hold children")
)
