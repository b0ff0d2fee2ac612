// Command robart-nav is a small harness for exercising the navigation core
// outside the robot: "path" finds a route across an otherwise empty
// configured map, and "replay" drives the full pipeline (depth filtering,
// occupancy accumulation, human instancing, line-of-sight, path finding)
// over a directory of recorded frames.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/trzy/robart/navconfig"
)

func main() {
	app := &cli.App{
		Name:  "robart-nav",
		Usage: "drive the navigation core from the command line",
		Commands: []*cli.Command{
			pathCommand(),
			replayCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "robart-nav:", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (navconfig.NavigationConfig, error) {
	cfg := navconfig.Default()
	path := c.String("config")
	if path == "" {
		return cfg, nil
	}
	loaded, err := navconfig.Load(path)
	if err != nil {
		return navconfig.NavigationConfig{}, err
	}
	return loaded, nil
}
