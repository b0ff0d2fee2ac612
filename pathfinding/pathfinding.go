// Package pathfinding implements footprint-aware breadth-first pathfinding
// over an occupancy grid (spec component G).
package pathfinding

import (
	"github.com/golang/geo/r3"

	"github.com/trzy/robart/logging"
	"github.com/trzy/robart/occupancy"
)

// footprintSize computes L = 1 + 2*d, the side length of the square
// footprint block a candidate cell must keep clear, where d is the number of
// cells between the map's center point and a point radius further along X,
// both mapped through WorldToCell. d is therefore r/s rounded to the nearest
// cell (halves round up) and is limited by the grid's extent. L is always
// odd and at least 1 (a point robot).
func footprintSize(m occupancy.Map, radius float64) int {
	if radius <= 0 {
		return 1
	}
	center := m.WorldToCell(m.CenterPoint())
	edge := m.WorldToCell(r3.Vector{X: m.CenterPoint().X + radius, Y: 0, Z: m.CenterPoint().Z})
	delta := edge.X - center.X
	if delta < 0 {
		delta = -delta
	}
	return 1 + 2*delta
}

// isSafe reports whether the closed LxL block centred on cell, clipped to
// the grid, contains no occupied cell.
func isSafe(m occupancy.Map, cell occupancy.CellIndex, footprint int) bool {
	half := footprint / 2
	for dz := -half; dz <= half; dz++ {
		z := cell.Z + dz
		if z < 0 || z >= m.CellsDeep() {
			continue
		}
		for dx := -half; dx <= half; dx++ {
			x := cell.X + dx
			if x < 0 || x >= m.CellsWide() {
				continue
			}
			if m.At(x, z) != 0 {
				return false
			}
		}
	}
	return true
}

func unoccupiedSafeNeighbors(m occupancy.Map, cell occupancy.CellIndex, footprint int) []occupancy.CellIndex {
	var neighbors []occupancy.CellIndex
	candidates := []occupancy.CellIndex{
		{X: cell.X - 1, Z: cell.Z},
		{X: cell.X + 1, Z: cell.Z},
		{X: cell.X, Z: cell.Z - 1},
		{X: cell.X, Z: cell.Z + 1},
	}
	for _, c := range candidates {
		if c.X < 0 || c.X >= m.CellsWide() || c.Z < 0 || c.Z >= m.CellsDeep() {
			continue
		}
		if !isSafe(m, c, footprint) {
			continue
		}
		neighbors = append(neighbors, c)
	}
	return neighbors
}

// Path is the result of a FindPath query: the corner-only sequence of grid
// cells from source to destination, in travel order. The zero Path (nil
// Cells) means no route was found.
type Path struct {
	Cells []occupancy.CellIndex
}

// Found reports whether FindPath located a route.
func (p Path) Found() bool {
	return p.Cells != nil
}

// FindPath computes a minimal corner-only path of grid cells from `from` to
// `to`, such that the robot's circular footprint of the given radius never
// overlaps an occupied cell along the way. Returns a not-Found Path if the
// destination is occupied/unsafe or no route exists.
func FindPath(m occupancy.Map, from, to r3.Vector, robotRadius float64, logger logging.Logger) Path {
	footprint := footprintSize(m, robotRadius)

	dest := m.WorldToCell(to)
	src := m.WorldToCell(from)

	if !isSafe(m, dest, footprint) {
		return Path{}
	}

	if dest == src {
		return Path{Cells: []occupancy.CellIndex{src}}
	}

	parent := map[occupancy.CellIndex]occupancy.CellIndex{dest: dest}
	frontier := []occupancy.CellIndex{dest}

	found := false
	for len(frontier) > 0 && !found {
		cell := frontier[0]
		frontier = frontier[1:]

		for _, neighbor := range unoccupiedSafeNeighbors(m, cell, footprint) {
			if _, visited := parent[neighbor]; visited {
				continue
			}
			parent[neighbor] = cell
			if neighbor == src {
				found = true
				break
			}
			frontier = append(frontier, neighbor)
		}
	}

	if !found {
		return Path{}
	}

	cells := compressWaypoints(parent, src, dest, logger)
	if cells == nil {
		return Path{}
	}
	return Path{Cells: cells}
}

type direction int

const (
	directionNone direction = iota
	directionX
	directionZ
)

func stepDirection(a, b occupancy.CellIndex) direction {
	if a.X != b.X {
		return directionX
	}
	if a.Z != b.Z {
		return directionZ
	}
	return directionNone
}

// compressWaypoints walks the predecessor chain from src to dest, collapsing
// runs of collinear steps into their endpoints so only direction changes
// ("corners") survive.
func compressWaypoints(parent map[occupancy.CellIndex]occupancy.CellIndex, src, dest occupancy.CellIndex, logger logging.Logger) []occupancy.CellIndex {
	path := []occupancy.CellIndex{src}
	currentDir := directionNone

	current := src
	for current != dest {
		next, ok := parent[current]
		if !ok {
			if logger != nil {
				logger.Errorw("pathfinding: corrupted predecessor chain", "cell", current)
			}
			return nil
		}

		stepDir := stepDirection(current, next)
		if stepDir == currentDir {
			path[len(path)-1] = next
		} else {
			path = append(path, next)
			currentDir = stepDir
		}

		current = next
	}

	return path
}
