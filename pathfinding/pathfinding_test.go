package pathfinding

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trzy/robart/occupancy"
)

// occupyCells marks the given (cellX, cellZ) pairs occupied in m via the
// normal counts-threshold update path.
func occupyCells(m occupancy.Map, cells ...occupancy.CellIndex) {
	counts := occupancy.NewMap(m.Width(), m.Depth(), m.CellSide(), m.CenterPoint())
	raw := make([]float64, counts.NumCells())
	for _, c := range cells {
		raw[c.Z*counts.CellsDeep()+c.X] = 10
	}
	counts.UpdateOccupancyFromArray(raw, nil)
	_ = m.UpdateOccupancyFromCounts(counts, 1)
}

// TestS1TinyFreeMap is scenario S1: on a fully free 2x2 grid, the path from
// one corner to the other starts at the source cell and ends at the
// destination cell, whatever those map to under the constructor's rounding.
func TestS1TinyFreeMap(t *testing.T) {
	m := occupancy.NewMap(2, 2, 1, r3.Vector{})
	from := r3.Vector{X: -0.5, Z: -0.5}
	to := r3.Vector{X: 0.5, Z: 0.5}

	src := m.WorldToCell(from)
	dest := m.WorldToCell(to)

	path := FindPath(m, from, to, 0, nil)
	require.True(t, path.Found())
	assert.Equal(t, src, path.Cells[0])
	assert.Equal(t, dest, path.Cells[len(path.Cells)-1])
}

// TestS2WallBlocksPath is scenario S2: an occupied column spanning the full
// depth of the grid leaves no route across it.
func TestS2WallBlocksPath(t *testing.T) {
	m := occupancy.NewMap(5, 5, 1, r3.Vector{})
	var wall []occupancy.CellIndex
	for z := 0; z < m.CellsDeep(); z++ {
		wall = append(wall, occupancy.CellIndex{X: 2, Z: z})
	}
	occupyCells(m, wall...)

	path := FindPath(m, r3.Vector{X: -2}, r3.Vector{X: 2}, 0, nil)
	assert.False(t, path.Found())
}

// TestS3FootprintRejectsCorridor is scenario S3: column cellX=2 is occupied
// everywhere except a single row, which the path must cross. That one-cell
// gap lets a point robot through but is too narrow for a robot whose
// footprint (L=3) needs a clear 3x3 block.
func TestS3FootprintRejectsCorridor(t *testing.T) {
	m := occupancy.NewMap(5, 5, 1, r3.Vector{})
	from := r3.Vector{X: -2}
	to := r3.Vector{X: 2}
	gapRow := m.WorldToCell(from).Z

	var wall []occupancy.CellIndex
	for z := 0; z < m.CellsDeep(); z++ {
		if z == gapRow {
			continue
		}
		wall = append(wall, occupancy.CellIndex{X: 2, Z: z})
	}
	occupyCells(m, wall...)

	pointRobotPath := FindPath(m, from, to, 0, nil)
	assert.True(t, pointRobotPath.Found())

	footprintPath := FindPath(m, from, to, 1, nil)
	assert.False(t, footprintPath.Found())
}

// TestInvariant5SameCellYieldsSingleWaypoint checks invariant 5.
func TestInvariant5SameCellYieldsSingleWaypoint(t *testing.T) {
	m := occupancy.NewMap(5, 5, 1, r3.Vector{})
	a := r3.Vector{X: 1, Z: 1}

	path := FindPath(m, a, a, 0, nil)
	require.Len(t, path.Cells, 1)
	assert.Equal(t, m.WorldToCell(a), path.Cells[0])
}

// TestFindPathIsDeterministic runs the same query twice against identical
// map state and requires the resulting Path values to match exactly, cell
// for cell — the destination-to-source search and predecessor
// reconstruction make no use of map iteration order or randomness.
func TestFindPathIsDeterministic(t *testing.T) {
	m := occupancy.NewMap(8, 8, 1, r3.Vector{})
	from := r3.Vector{X: -3, Z: -3}
	to := r3.Vector{X: 3, Z: 3}

	first := FindPath(m, from, to, 0, nil)
	second := FindPath(m, from, to, 0, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("FindPath is not deterministic (-first +second):\n%s", diff)
	}
}

// TestInvariant6PathEndpointsAndAxisAlignedSteps checks invariant 6 on an
// all-free map: the path starts at cell(a), ends at cell(b), and every
// consecutive pair of waypoints differs along exactly one axis (no diagonal
// jumps survive waypoint compression).
func TestInvariant6PathEndpointsAndAxisAlignedSteps(t *testing.T) {
	m := occupancy.NewMap(10, 10, 1, r3.Vector{})
	from := r3.Vector{X: -4, Z: -4}
	to := r3.Vector{X: 4, Z: 4}

	path := FindPath(m, from, to, 0, nil)
	require.NotEmpty(t, path.Cells)
	assert.Equal(t, m.WorldToCell(from), path.Cells[0])
	assert.Equal(t, m.WorldToCell(to), path.Cells[len(path.Cells)-1])

	for i := 1; i < len(path.Cells); i++ {
		prev, cur := path.Cells[i-1], path.Cells[i]
		xChanged := prev.X != cur.X
		zChanged := prev.Z != cur.Z
		assert.True(t, xChanged != zChanged, "waypoint %d should move along exactly one axis", i)
	}
}
