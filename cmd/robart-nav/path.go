package main

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"

	"github.com/trzy/robart/logging"
	"github.com/trzy/robart/occupancy"
	"github.com/trzy/robart/pathfinding"
)

func pathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "find a footprint-aware path between two points on an otherwise empty configured map",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a navconfig YAML file",
			},
			&cli.Float64Flag{Name: "from-x", Value: 0},
			&cli.Float64Flag{Name: "from-z", Value: 0},
			&cli.Float64Flag{Name: "to-x", Value: 1},
			&cli.Float64Flag{Name: "to-z", Value: 1},
		},
		Action: runPath,
	}
}

func runPath(c *cli.Context) error {
	logger := logging.NewLogger("robart-nav")
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	center := r3.Vector{X: cfg.Map.CenterX, Z: cfg.Map.CenterZ}
	m := occupancy.NewMap(cfg.Map.WidthMeters, cfg.Map.DepthMeters, cfg.Map.CellSideMeters, center)

	from := r3.Vector{X: c.Float64("from-x"), Z: c.Float64("from-z")}
	to := r3.Vector{X: c.Float64("to-x"), Z: c.Float64("to-z")}

	path := pathfinding.FindPath(m, from, to, cfg.Path.RobotRadiusMeters, logger)
	if !path.Found() {
		logger.Warnw("no path found", "from", from, "to", to)
		fmt.Println("no path found")
		return nil
	}

	logger.Infow("path found", "waypoints", len(path.Cells))
	for _, cell := range path.Cells {
		fmt.Printf("(%d, %d)\n", cell.X, cell.Z)
	}
	return nil
}
