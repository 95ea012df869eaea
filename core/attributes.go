package core

// Attributes holds the per-site physical parameters of the stream-power
// erosion model. One Attributes value corresponds to exactly one site
// index; a full run's attribute vector must have length equal to
// Model.Num().
type Attributes struct {
	// UpliftRate is the tectonic uplift rate at this site. Non-negative.
	UpliftRate UpliftRate

	// Erodibility is the stream-power law's erodibility coefficient.
	// Must be positive; a zero value divides by zero when computing
	// celerity and is a caller error, validated neither by this package
	// nor by lem.
	Erodibility Erodibility

	// BaseAltitude is the initial elevation, typically zero at outlets.
	BaseAltitude Elevation

	// MaxSlope, if non-nil, clamps the slope between this site and its
	// downstream neighbor to tan(*MaxSlope).
	MaxSlope *Angle
}

// WithMaxSlope returns a copy of a with MaxSlope set to angle.
func (a Attributes) WithMaxSlope(angle Angle) Attributes {
	a.MaxSlope = &angle
	return a
}
