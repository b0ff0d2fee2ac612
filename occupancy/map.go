// Package occupancy implements the fixed-extent 2D occupancy grid (spec
// component C) and the depth-to-grid projector that accumulates depth-camera
// samples into it (spec component D).
package occupancy

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/trzy/robart/logging"
)

// CellIndex is an integral (cellX, cellZ) address into the grid.
type CellIndex struct {
	X int
	Z int
}

// FractionalCell is a sub-cell (cellX, cellZ) position in grid coordinates,
// used for ray traversal (component E) and visualization.
type FractionalCell struct {
	X float64
	Z float64
}

// mapData is the shared backing storage for a Map: the cell values and the
// parallel world-position array. Map wraps a pointer to mapData so that
// copying a Map by value aliases the same storage, matching the original's
// "copy that shares memory" semantics (spec §5).
type mapData struct {
	width       float64
	depth       float64
	cellSide    float64
	cellsWide   int
	cellsDeep   int
	centerPoint r3.Vector

	values        []float64
	worldPosition []r3.Vector
}

// Map is a fixed-extent 2D grid of real-valued occupancy or count data. Map
// values are copyable: a copy shares the same underlying storage as its
// source (mutations through either handle are visible through both). Use
// DeepCopy to obtain an isolated copy.
type Map struct {
	*mapData
}

// NewMap constructs a Map of world width x depth, with square cells of side
// cellSide, centered at centerPoint. Panics if cellSide exceeds either
// extent (a programmer error per spec §7).
func NewMap(width, depth, cellSide float64, centerPoint r3.Vector) Map {
	if cellSide > width || cellSide > depth {
		panic("occupancy: cellSide must not exceed width or depth")
	}

	cellsWide := int(math.Floor(width / cellSide))
	cellsDeep := int(math.Floor(depth / cellSide))
	if cellsWide < 1 {
		cellsWide = 1
	}
	if cellsDeep < 1 {
		cellsDeep = 1
	}

	m := Map{&mapData{
		width:         width,
		depth:         depth,
		cellSide:      cellSide,
		cellsWide:     cellsWide,
		cellsDeep:     cellsDeep,
		centerPoint:   centerPoint,
		values:        make([]float64, cellsWide*cellsDeep),
		worldPosition: make([]r3.Vector, cellsWide*cellsDeep),
	}}

	center := m.centerCell()
	z := centerPoint.Z - cellSide*float64(center.Z)
	for zi := 0; zi < cellsDeep; zi++ {
		x := centerPoint.X - cellSide*float64(center.X)
		for xi := 0; xi < cellsWide; xi++ {
			m.worldPosition[m.linearIndex(xi, zi)] = r3.Vector{X: x, Y: 0, Z: z}
			x += cellSide
		}
		z += cellSide
	}

	return m
}

// DeepCopy returns an isolated Map with its own backing storage, for callers
// that need to mutate independently of the source.
func (m Map) DeepCopy() Map {
	values := make([]float64, len(m.values))
	copy(values, m.values)
	worldPosition := make([]r3.Vector, len(m.worldPosition))
	copy(worldPosition, m.worldPosition)
	return Map{&mapData{
		width:         m.width,
		depth:         m.depth,
		cellSide:      m.cellSide,
		cellsWide:     m.cellsWide,
		cellsDeep:     m.cellsDeep,
		centerPoint:   m.centerPoint,
		values:        values,
		worldPosition: worldPosition,
	}}
}

// Clear zeroes every cell value in place.
func (m Map) Clear() {
	for i := range m.values {
		m.values[i] = 0
	}
}

// Width returns the world-space width of the grid, in metres.
func (m Map) Width() float64 { return m.width }

// Depth returns the world-space depth of the grid, in metres.
func (m Map) Depth() float64 { return m.depth }

// CellSide returns the side length of a single square cell, in metres.
func (m Map) CellSide() float64 { return m.cellSide }

// CellsWide returns the number of cells along X.
func (m Map) CellsWide() int { return m.cellsWide }

// CellsDeep returns the number of cells along Z.
func (m Map) CellsDeep() int { return m.cellsDeep }

// NumCells returns the total number of cells in the grid.
func (m Map) NumCells() int { return m.cellsWide * m.cellsDeep }

// CenterPoint returns the world-space center of the grid.
func (m Map) CenterPoint() r3.Vector { return m.centerPoint }

// centerCell returns the integral index of the grid's center cell.
func (m Map) centerCell() CellIndex {
	return CellIndex{
		X: int(math.Round(float64(m.cellsWide) * 0.5)),
		Z: int(math.Round(float64(m.cellsDeep) * 0.5)),
	}
}

// linearIndex implements the grid's linearisation. The stride is
// deliberately cellsDeep, not cellsWide — this reproduces an existing
// convention from the original implementation (spec §9) that external
// consumers depend on; it is not a bug to be fixed here.
func (m Map) linearIndex(cellX, cellZ int) int {
	if cellX < 0 {
		cellX = 0
	} else if cellX >= m.cellsWide {
		cellX = m.cellsWide - 1
	}
	if cellZ < 0 {
		cellZ = 0
	} else if cellZ >= m.cellsDeep {
		cellZ = m.cellsDeep - 1
	}
	return cellZ*m.cellsDeep + cellX
}

// At returns the cell value at (cellX, cellZ), clamping out-of-range indices
// to the last valid row/column.
func (m Map) At(cellX, cellZ int) float64 {
	return m.values[m.linearIndex(cellX, cellZ)]
}

// AtCell returns the cell value at cell, clamping out-of-range indices.
func (m Map) AtCell(cell CellIndex) float64 {
	return m.At(cell.X, cell.Z)
}

// CellToPosition returns the stored world-space center of cell.
func (m Map) CellToPosition(cell CellIndex) r3.Vector {
	return m.worldPosition[m.linearIndex(cell.X, cell.Z)]
}

// WorldToCell maps a world position to its integral (cellX, cellZ) address,
// clamped to the grid extents (invariant 1).
func (m Map) WorldToCell(position r3.Vector) CellIndex {
	center := m.centerCell()
	gridCenter := m.worldPosition[m.linearIndex(center.X, center.Z)]

	xi := int(math.Floor((position.X-gridCenter.X)/m.cellSide+0.5)) + center.X
	zi := int(math.Floor((position.Z-gridCenter.Z)/m.cellSide+0.5)) + center.Z

	return CellIndex{
		X: clampInt(xi, 0, m.cellsWide-1),
		Z: clampInt(zi, 0, m.cellsDeep-1),
	}
}

// WorldToFractionalCell maps a world position to its fractional (cellX,
// cellZ) grid coordinate, clamped to the half-cell-padded range
// [-0.5, N-1+0.5] so that invariant 2 holds: floor(fractional + 0.5),
// clamped, equals WorldToCell's result.
func (m Map) WorldToFractionalCell(position r3.Vector) FractionalCell {
	center := m.centerCell()
	gridCenter := m.worldPosition[m.linearIndex(center.X, center.Z)]

	xf := (position.X-gridCenter.X)/m.cellSide + float64(center.X)
	zf := (position.Z-gridCenter.Z)/m.cellSide + float64(center.Z)

	return FractionalCell{
		X: clampFloat(xf, -0.5, float64(m.cellsWide-1)+0.5),
		Z: clampFloat(zf, -0.5, float64(m.cellsDeep-1)+0.5),
	}
}

// UpdateOccupancyFromCounts sets self[i] = 1 wherever counts[i] >= threshold
// and leaves every other cell untouched — this is additive, never clearing
// an already-occupied cell. counts must have identical dimensions to m.
func (m Map) UpdateOccupancyFromCounts(counts Map, threshold float64) error {
	if counts.NumCells() != m.NumCells() {
		return errors.New("occupancy: counts map dimensions do not match")
	}
	for i, c := range counts.values {
		if c >= threshold {
			m.values[i] = 1
		}
	}
	return nil
}

// UpdateOccupancyFromHeightMap sets self[i] = 1 if heights[i] >= threshold,
// else 0. heights must have exactly NumCells() elements; a mismatch is
// logged and the call becomes a no-op.
func (m Map) UpdateOccupancyFromHeightMap(heights []float64, threshold float64, logger logging.Logger) {
	if len(heights) != m.NumCells() {
		logger.Errorw("occupancy: height map dimensions do not match occupancy map",
			"gotSize", len(heights), "wantSize", m.NumCells())
		return
	}
	for i, h := range heights {
		if h >= threshold {
			m.values[i] = 1
		} else {
			m.values[i] = 0
		}
	}
}

// UpdateOccupancyFromArray byte-copies occupied into the map's values.
// occupied must have exactly NumCells() elements; a mismatch is logged and
// the call becomes a no-op.
func (m Map) UpdateOccupancyFromArray(occupied []float64, logger logging.Logger) {
	if len(occupied) != m.NumCells() {
		logger.Errorw("occupancy: array dimensions do not match occupancy map",
			"gotSize", len(occupied), "wantSize", m.NumCells())
		return
	}
	copy(m.values, occupied)
}

// GetOccupancyArray copies the map's cell values into dst. dst must have
// exactly NumCells() elements; a mismatch is logged and the call becomes a
// no-op.
func (m Map) GetOccupancyArray(dst []float64, logger logging.Logger) {
	if len(dst) != m.NumCells() {
		logger.Errorw("occupancy: destination array dimensions do not match occupancy map",
			"gotSize", len(dst), "wantSize", m.NumCells())
		return
	}
	copy(dst, m.values)
}

// MarshalGrid returns the grid's dimensions and a snapshot of its cell
// values in the map's own linearisation (index cellZ*cellsDeep + cellX, see
// linearIndex), in the shape original_source/server/messages.py's
// OccupancyMapMessage expects on the wire (see navwire.NewOccupancyMapMessage).
func (m Map) MarshalGrid() (cellsWide, cellsDeep int, values []float64) {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return m.cellsWide, m.cellsDeep, out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
