package lem

import "errors"

// Sentinel errors returned by Configuration.Generate before any compute
// begins — validation failures are synchronous and never produce a
// partial result.
var (
	// ErrMissingModel indicates Generate was called without WithModel.
	ErrMissingModel = errors.New("lem: model not set")

	// ErrMissingAttributes indicates Generate was called without
	// WithAttributes.
	ErrMissingAttributes = errors.New("lem: attributes not set")

	// ErrAttributeCountMismatch indicates the attribute vector's length
	// does not equal the model's site count.
	ErrAttributeCountMismatch = errors.New("lem: attribute count does not match site count")
)
