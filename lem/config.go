// Package lem provides the outer fixed-point loop that couples elevation
// updates to stream-tree rebuilds: Configuration.Generate, configured
// through an immutable, chainable Configuration.
//
// Configuration is deliberately not a functional-options type: each setter
// returns a new Configuration value rather than mutating in place, so a
// partially-built Configuration can be reused as the base for several
// variants without aliasing. This mirrors the original generator's
// consuming builder (set_model(self, ...) -> Self) more closely than the
// usual Go functional-options idiom.
package lem

import "github.com/rivershed/lem/core"

// defaultMExp is the exponent m used in the stream-power celerity term
// when Configuration.WithExponentM is never called.
const defaultMExp = 0.5

// Configuration accumulates the parameters for one terrain-generation run.
// The zero value is a valid, empty Configuration; build one up via the
// With* methods and finish with Generate.
type Configuration[T any] struct {
	model        core.Model[T]
	hasModel     bool
	attributes   []core.Attributes
	hasAttrs     bool
	maxIteration core.Step
	hasMaxIter   bool
	mExp         float64
	hasMExp      bool
}

// WithModel returns a copy of c with model set.
func (c Configuration[T]) WithModel(model core.Model[T]) Configuration[T] {
	c.model = model
	c.hasModel = true
	return c
}

// WithAttributes returns a copy of c with attributes set. attributes must
// have one entry per site; the length is validated at Generate time.
func (c Configuration[T]) WithAttributes(attributes []core.Attributes) Configuration[T] {
	c.attributes = attributes
	c.hasAttrs = true
	return c
}

// WithMaxIteration returns a copy of c with an iteration cap. Without a
// cap, Generate runs until no site's elevation changes in a pass.
func (c Configuration[T]) WithMaxIteration(maxIteration core.Step) Configuration[T] {
	c.maxIteration = maxIteration
	c.hasMaxIter = true
	return c
}

// WithExponentM returns a copy of c with the stream-power exponent m set.
// Defaults to 0.5 if never called.
func (c Configuration[T]) WithExponentM(mExp float64) Configuration[T] {
	c.mExp = mExp
	c.hasMExp = true
	return c
}
