package main

import (
	"encoding/json"
	"os"

	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"

	"github.com/trzy/robart/depthfilter"
	"github.com/trzy/robart/humans"
	"github.com/trzy/robart/logging"
	"github.com/trzy/robart/navconfig"
	"github.com/trzy/robart/navsession"
	"github.com/trzy/robart/navwire"
	"github.com/trzy/robart/occupancy"
	"github.com/trzy/robart/pathfinding"
	"github.com/trzy/robart/sightline"
)

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "replay a directory of recorded depth/confidence/segmentation frames through the full pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a navconfig YAML file",
			},
			&cli.StringFlag{
				Name:     "frames",
				Required: true,
				Usage:    "directory of recorded frame subdirectories (meta.json, depth.f32, confidence.u8, segmentation.u8)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "rotate logs to this path instead of stdout, for unattended runs",
			},
			&cli.Float64Flag{Name: "to-x", Value: 1},
			&cli.Float64Flag{Name: "to-z", Value: 1},
		},
		Action: runReplay,
	}
}

func runReplay(c *cli.Context) error {
	var logger logging.Logger
	if path := c.String("log-file"); path != "" {
		logger = logging.NewRotatingLogger("robart-nav", path, 10, 3, 28)
	} else {
		logger = logging.NewLogger("robart-nav")
	}
	defer logger.Sync() //nolint:errcheck

	session := navsession.New(logger)
	logger = session.Logger()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	frameDirs, err := listFrameDirs(c.String("frames"))
	if err != nil {
		return err
	}

	center := r3.Vector{X: cfg.Map.CenterX, Z: cfg.Map.CenterZ}
	counts := occupancy.NewMap(cfg.Map.WidthMeters, cfg.Map.DepthMeters, cfg.Map.CellSideMeters, center)
	grid := occupancy.NewMap(cfg.Map.WidthMeters, cfg.Map.DepthMeters, cfg.Map.CellSideMeters, center)

	intrinsics := occupancy.NewIntrinsics3x3(cfg.Camera.Fx, cfg.Camera.Fy, cfg.Camera.Cx, cfg.Camera.Cy)
	rgbResolution := [2]float64{cfg.Camera.RGBWidth, cfg.Camera.RGBHeight}
	params := occupancy.CellCountUpdateParams{
		MinDepth:             cfg.CellCountUpdate.MinDepthMeters,
		MaxDepth:             cfg.CellCountUpdate.MaxDepthMeters,
		MinHeight:            cfg.CellCountUpdate.MinHeightMeters,
		MaxHeight:            cfg.CellCountUpdate.MaxHeightMeters,
		IncomingSampleWeight: cfg.CellCountUpdate.IncomingSampleWeight,
		PreviousWeight:       cfg.CellCountUpdate.PreviousWeight,
	}

	for _, frameDir := range frameDirs {
		if err := processFrame(frameDir, counts, grid, intrinsics, rgbResolution, params, cfg, logger); err != nil {
			return err
		}
	}

	robotPosition := center
	to := r3.Vector{X: c.Float64("to-x"), Z: c.Float64("to-z")}

	clear := sightline.IsUnobstructed(grid, robotPosition, to)
	logger.Infow("line of sight to destination", "clear", clear)

	path := pathfinding.FindPath(grid, robotPosition, to, cfg.Path.RobotRadiusMeters, logger)
	logger.Infow("path found", "found", path.Found(), "waypoints", len(path.Cells))

	robotCell := grid.WorldToCell(robotPosition)
	out := struct {
		Map  navwire.OccupancyMapMessage `json:"map"`
		Path navwire.DrivePathMessage    `json:"path"`
	}{
		Map:  navwire.NewOccupancyMapMessage(grid, robotCell),
		Path: navwire.NewDrivePathMessage(path),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func processFrame(
	frameDir string,
	counts, grid occupancy.Map,
	intrinsics occupancy.Intrinsics3x3,
	rgbResolution [2]float64,
	params occupancy.CellCountUpdateParams,
	cfg navconfig.NavigationConfig,
	logger logging.Logger,
) error {
	f, err := loadFrame(frameDir)
	if err != nil {
		return err
	}

	depthfilter.Filter(f.depth, f.confidence, cfg.Path.MinConfidence)
	counts.UpdateCellCounts(f.depth, intrinsics, rgbResolution, f.pose, params)
	if err := grid.UpdateOccupancyFromCounts(counts, cfg.OccupancyThresh.Threshold); err != nil {
		return err
	}

	boxes := humans.FindHumans(f.segmentation, cfg.Path.MinConfidence)
	for _, box := range boxes {
		avgDepth := humans.ComputeAverageDepth(box, f.depth, cfg.Path.HumanDepthMaxMeters)
		logger.Infow("human detected", "frame", frameDir, "box", box, "avgDepthMeters", avgDepth)
	}
	logger.Infow("frame processed", "frame", frameDir, "humans", len(boxes))
	return nil
}
