package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rivershed/lem/core"
)

// ErrNoSites indicates a run file whose rows or cols is missing or not
// positive.
var ErrNoSites = errors.New("lemgen: run file describes zero sites")

// runConfig is the on-disk shape of a --file run description: a regular
// grid plus a single set of per-site attributes applied uniformly, with an
// optional max-slope clamp and iteration cap. When a run file is given, its
// rows, cols, cell_size, uplift_rate, erodibility, base_altitude and
// max_iteration replace the command-line flags (a missing key counts as
// zero); max_slope_deg, m_exponent and output replace the flags only when
// present and, for m_exponent and output, non-empty/non-zero.
type runConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CellSize float64 `yaml:"cell_size"`

	UpliftRate   core.UpliftRate  `yaml:"uplift_rate"`
	Erodibility  core.Erodibility `yaml:"erodibility"`
	BaseAltitude core.Elevation   `yaml:"base_altitude"`
	MaxSlopeDeg  *float64         `yaml:"max_slope_deg"`

	MExp         float64 `yaml:"m_exponent"`
	MaxIteration int     `yaml:"max_iteration"`

	Output string `yaml:"output"`
}

// loadRunConfig reads and parses a YAML run file from path.
func loadRunConfig(path string) (runConfig, error) {
	var rc runConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return rc, err
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, err
	}
	if rc.Rows <= 0 || rc.Cols <= 0 {
		return rc, ErrNoSites
	}
	return rc, nil
}
