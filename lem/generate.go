package lem

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/rivershed/lem/core"
	"github.com/rivershed/lem/drainagebasin"
	"github.com/rivershed/lem/streamtree"
)

// Generate validates the configuration and runs the fixed-point loop: build
// the stream tree from the current elevations, then for each outlet
// accumulate drainage area downstream and integrate response time and
// elevation upstream, repeating until no site's elevation changes in a pass
// or the optional iteration cap is reached.
//
// Validation order: model presence, attributes presence, then attribute
// count against the model's site count. All failures return before any
// compute begins; Generate never returns a partial result.
func (c Configuration[T]) Generate() (T, error) {
	var zero T

	if !c.hasModel {
		return zero, ErrMissingModel
	}
	if !c.hasAttrs {
		return zero, ErrMissingAttributes
	}

	model := c.model
	num := model.Num()
	if len(c.attributes) != num {
		return zero, ErrAttributeCountMismatch
	}

	mExp := defaultMExp
	if c.hasMExp {
		mExp = c.mExp
	}

	graph := model.Graph()
	areas := model.Areas()
	outlets := model.Outlets()
	attributes := c.attributes

	elevation := make([]core.Elevation, num)
	for _, i := range model.Sites() {
		elevation[i] = attributes[i].BaseAltitude
	}

	step := core.Step(0)
	for {
		tree, err := streamtree.Construct(num, elevation, graph, outlets)
		if err != nil {
			return zero, err
		}

		drainageArea := append([]core.Length(nil), areas...)
		responseTime := make([]core.Elevation, num)
		changed := false

		for _, outlet := range outlets {
			basin := drainagebasin.Construct(outlet, tree.Next, graph, num)

			for _, i := range basin.Downstream {
				j := tree.Next[i]
				if j != i {
					drainageArea[j] += drainageArea[i]
				}
			}

			for _, i := range basin.Upstream {
				j := tree.Next[i]
				d := core.Length(0)
				if ok, dist := graph.HasEdge(i, j); ok {
					d = dist
				}
				celerity := attributes[i].Erodibility * math.Pow(drainageArea[i], mExp)
				responseTime[i] = responseTime[j] + d/celerity
			}

			for _, i := range basin.Upstream {
				newElevation := elevation[outlet] + attributes[i].UpliftRate*math.Max(0, responseTime[i]-responseTime[outlet])

				if attributes[i].MaxSlope != nil {
					j := tree.Next[i]
					d := core.Length(1)
					if ok, dist := graph.HasEdge(i, j); ok {
						d = dist
					}
					maxSlope := math.Tan(*attributes[i].MaxSlope)
					slope := (newElevation - elevation[j]) / d
					if slope > maxSlope {
						newElevation = elevation[j] + maxSlope*d
					}
				}

				changed = changed || newElevation != elevation[i]
				elevation[i] = newElevation
			}
		}

		log.Debug().Int("step", step).Bool("changed", changed).Msg("lem: iteration complete")

		if !changed {
			break
		}
		step++
		if c.hasMaxIter && step >= c.maxIteration {
			break
		}
	}

	return model.CreateTerrainFromResult(elevation), nil
}
