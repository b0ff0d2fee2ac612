// Package navwire adapts navigation-core state into the JSON message shapes
// the original RoBart server (original_source/server/messages.py) exchanges
// with its iOS client: OccupancyMapMessage and DrivePathMessage. Unlike the
// packed-binary firmware frames in package transport, these are
// human-readable JSON documents meant for a higher-level client, not the
// motor controller.
package navwire

import (
	"github.com/trzy/robart/occupancy"
	"github.com/trzy/robart/pathfinding"
)

// OccupancyMapMessage mirrors messages.py's OccupancyMapMessage: grid
// dimensions, a flat occupancy array in occupancy.Map's linearisation (see
// Map.MarshalGrid), and the robot's current cell.
type OccupancyMapMessage struct {
	CellsWide int       `json:"cellsWide"`
	CellsDeep int       `json:"cellsDeep"`
	Occupancy []float64 `json:"occupancy"`
	RobotCell [2]int    `json:"robotCell"`
}

// NewOccupancyMapMessage snapshots m's grid and the robot's current cell into
// an OccupancyMapMessage ready for JSON encoding.
func NewOccupancyMapMessage(m occupancy.Map, robotCell occupancy.CellIndex) OccupancyMapMessage {
	cellsWide, cellsDeep, values := m.MarshalGrid()
	return OccupancyMapMessage{
		CellsWide: cellsWide,
		CellsDeep: cellsDeep,
		Occupancy: values,
		RobotCell: [2]int{robotCell.X, robotCell.Z},
	}
}

// DrivePathMessage mirrors messages.py's DrivePathMessage: an ordered list
// of [cellX, cellZ] waypoints.
type DrivePathMessage struct {
	PathCells [][2]int `json:"pathCells"`
}

// NewDrivePathMessage converts a pathfinding.Path into a DrivePathMessage. A
// not-Found path serializes to an empty waypoint list, not a null one, so
// clients can always range over PathCells without a nil check.
func NewDrivePathMessage(path pathfinding.Path) DrivePathMessage {
	cells := make([][2]int, len(path.Cells))
	for i, c := range path.Cells {
		cells[i] = [2]int{c.X, c.Z}
	}
	return DrivePathMessage{PathCells: cells}
}
