package occupancy

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/trzy/robart/imaging"
)

func TestUpdateCellCountsAccumulatesInRangeSample(t *testing.T) {
	m := NewMap(10, 10, 1, r3.Vector{})

	depth := imaging.NewDepthImage(1, 1)
	depth.Set(0, 0, 2.0) // single pixel, 2m away

	intrinsics := NewIntrinsics3x3(100, 100, 0, 0)
	pose := IdentityPose4x4()

	params := CellCountUpdateParams{
		MinDepth:             0.5,
		MaxDepth:             5,
		MinHeight:            -10,
		MaxHeight:            10,
		IncomingSampleWeight: 1,
		PreviousWeight:       1,
	}

	m.UpdateCellCounts(depth, intrinsics, [2]float64{1, 1}, pose, params)

	total := 0.0
	for _, v := range m.values {
		total += v
	}
	assert.Equal(t, 1.0, total, "exactly one sample should have been counted")
}

func TestUpdateCellCountsSkipsOutOfRangeDepth(t *testing.T) {
	m := NewMap(10, 10, 1, r3.Vector{})

	depth := imaging.NewDepthImage(1, 1)
	depth.Set(0, 0, 1000) // far outside [minDepth, maxDepth]

	intrinsics := NewIntrinsics3x3(100, 100, 0, 0)
	pose := IdentityPose4x4()

	params := CellCountUpdateParams{
		MinDepth:             0.5,
		MaxDepth:             5,
		MinHeight:            -10,
		MaxHeight:            10,
		IncomingSampleWeight: 1,
		PreviousWeight:       1,
	}
	m.UpdateCellCounts(depth, intrinsics, [2]float64{1, 1}, pose, params)

	for _, v := range m.values {
		assert.Equal(t, 0.0, v)
	}
}

func TestUpdateCellCountsDecaysExistingCounts(t *testing.T) {
	m := NewMap(10, 10, 1, r3.Vector{})
	m.values[0] = 10

	depth := imaging.NewDepthImage(1, 1)
	depth.Set(0, 0, 1000) // no new samples this frame

	intrinsics := NewIntrinsics3x3(100, 100, 0, 0)
	pose := IdentityPose4x4()

	params := CellCountUpdateParams{
		MinDepth:             0.5,
		MaxDepth:             5,
		MinHeight:            -10,
		MaxHeight:            10,
		IncomingSampleWeight: 1,
		PreviousWeight:       0.5,
	}
	m.UpdateCellCounts(depth, intrinsics, [2]float64{1, 1}, pose, params)

	assert.Equal(t, 5.0, m.values[0])
}
