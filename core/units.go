// Package core defines the abstract surface the landscape-evolution engine
// consumes: the Model/Graph/Site capability set, per-site attributes, and
// the unit aliases shared across the lem, streamtree and drainagebasin
// packages.
//
// Nothing in this package is mutable after construction: a Model and its
// Attributes are read-only for the duration of a lem.Configuration.Generate
// call.
package core

// Site identifies a discrete point in the domain at which elevation is
// defined. A Site carries no data beyond its identity — every other
// per-site quantity (elevation, attributes, area) is looked up by indexing
// a parallel slice with it.
type Site = int

// Length is a geometric distance, in the same units as Areas' square root.
type Length = float64

// Elevation is a site altitude, in the same linear units as Length.
type Elevation = float64

// UpliftRate is a tectonic uplift rate (length/time, non-negative).
type UpliftRate = float64

// Erodibility is the stream-power law's positive erodibility coefficient.
type Erodibility = float64

// Angle is a slope angle in radians; only its tangent is ever used.
type Angle = float64

// Step counts generator iterations.
type Step = int
