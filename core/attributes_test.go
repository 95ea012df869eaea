package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivershed/lem/core"
)

func TestAttributes_WithMaxSlope_SetsPointerWithoutAliasing(t *testing.T) {
	base := core.Attributes{UpliftRate: 1, Erodibility: 2, BaseAltitude: 3}
	withSlope := base.WithMaxSlope(0.5)

	assert.Nil(t, base.MaxSlope)
	require.NotNil(t, withSlope.MaxSlope)
	assert.Equal(t, 0.5, *withSlope.MaxSlope)

	// Chaining a second value must not mutate the first's pointee.
	other := base.WithMaxSlope(1.5)
	assert.Equal(t, 0.5, *withSlope.MaxSlope)
	assert.Equal(t, 1.5, *other.MaxSlope)
}
