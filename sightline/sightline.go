// Package sightline implements unobstructed line-of-sight queries (spec
// component E) using Amanatides–Woo 2D voxel traversal over an occupancy
// grid.
package sightline

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/trzy/robart/occupancy"
)

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsUnobstructed returns true iff every cell the segment from-to passes
// through, in m, is unoccupied (value == 0). A zero-length segment returns
// true iff the single cell it lies in is free.
func IsUnobstructed(m occupancy.Map, from, to r3.Vector) bool {
	u := m.WorldToFractionalCell(from)
	target := m.WorldToFractionalCell(to)

	vx := target.X - u.X
	vz := target.Z - u.Z

	stepX := sign(vx)
	stepZ := sign(vz)

	x := int(math.Floor(u.X + 0.5))
	z := int(math.Floor(u.Z + 0.5))

	xEnd := int(math.Floor(target.X+0.5)) + int(stepX)
	zEnd := int(math.Floor(target.Z+0.5)) + int(stepZ)

	var tMaxX, tDeltaX float64
	if vx == 0 {
		tMaxX = math.Inf(1)
		tDeltaX = math.Inf(1)
	} else {
		tMaxX = ((float64(x) + 0.5*stepX) - u.X) / vx
		tDeltaX = stepX / vx
	}

	var tMaxZ, tDeltaZ float64
	if vz == 0 {
		tMaxZ = math.Inf(1)
		tDeltaZ = math.Inf(1)
	} else {
		tMaxZ = ((float64(z) + 0.5*stepZ) - u.Z) / vz
		tDeltaZ = stepZ / vz
	}

	for {
		if m.At(x, z) != 0 {
			return false
		}

		if x == xEnd && z == zEnd {
			return true
		}

		if tMaxX < tMaxZ {
			if x == xEnd {
				// Only the Z axis can still progress; advance it directly to
				// avoid looping forever when X has already reached its end
				// sentinel but Z has not.
				z += int(stepZ)
				tMaxZ += tDeltaZ
				continue
			}
			x += int(stepX)
			tMaxX += tDeltaX
		} else {
			if z == zEnd {
				x += int(stepX)
				tMaxX += tDeltaX
				continue
			}
			z += int(stepZ)
			tMaxZ += tDeltaZ
		}
	}
}
