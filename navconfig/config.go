// Package navconfig defines the navigation core's construction-time
// parameters as YAML-loadable structs, in the style of the teacher's own
// file-backed configuration packages.
package navconfig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MapConfig parameterises the occupancy grid's extent and resolution.
type MapConfig struct {
	WidthMeters    float64 `yaml:"widthMeters"`
	DepthMeters    float64 `yaml:"depthMeters"`
	CellSideMeters float64 `yaml:"cellSideMeters"`
	CenterX        float64 `yaml:"centerX"`
	CenterZ        float64 `yaml:"centerZ"`
}

// CellCountUpdateConfig parameterises the depth-to-grid projector.
type CellCountUpdateConfig struct {
	MinDepthMeters       float64 `yaml:"minDepthMeters"`
	MaxDepthMeters       float64 `yaml:"maxDepthMeters"`
	MinHeightMeters      float64 `yaml:"minHeightMeters"`
	MaxHeightMeters      float64 `yaml:"maxHeightMeters"`
	IncomingSampleWeight float64 `yaml:"incomingSampleWeight"`
	PreviousWeight       float64 `yaml:"previousWeight"`
}

// OccupancyThresholdConfig parameterises the counts-to-occupancy threshold.
type OccupancyThresholdConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// PathConfig parameterises the footprint-aware path finder.
type PathConfig struct {
	RobotRadiusMeters   float64 `yaml:"robotRadiusMeters"`
	MinConfidence       byte    `yaml:"minConfidence"`
	HumanDepthMaxMeters float32 `yaml:"humanDepthMaxMeters"`
}

// CameraConfig parameterises the pinhole intrinsics and calibration
// resolution the depth-to-grid projector needs to unproject depth samples
// (spec §6's wire intrinsics, as construction-time defaults rather than
// per-frame wire fields).
type CameraConfig struct {
	Fx        float64 `yaml:"fx"`
	Fy        float64 `yaml:"fy"`
	Cx        float64 `yaml:"cx"`
	Cy        float64 `yaml:"cy"`
	RGBWidth  float64 `yaml:"rgbWidth"`
	RGBHeight float64 `yaml:"rgbHeight"`
}

// NavigationConfig is the complete set of navigation-core construction
// parameters, as loaded from a single YAML document.
type NavigationConfig struct {
	Map             MapConfig                `yaml:"map"`
	CellCountUpdate CellCountUpdateConfig    `yaml:"cellCountUpdate"`
	OccupancyThresh OccupancyThresholdConfig `yaml:"occupancyThreshold"`
	Path            PathConfig               `yaml:"path"`
	Camera          CameraConfig             `yaml:"camera"`
}

// Default returns the navigation core's out-of-the-box parameters, tuned for
// an indoor, human-scale environment.
func Default() NavigationConfig {
	return NavigationConfig{
		Map: MapConfig{
			WidthMeters:    10,
			DepthMeters:    10,
			CellSideMeters: 0.1,
		},
		CellCountUpdate: CellCountUpdateConfig{
			MinDepthMeters:       0.3,
			MaxDepthMeters:       4.0,
			MinHeightMeters:      -0.3,
			MaxHeightMeters:      2.0,
			IncomingSampleWeight: 1,
			PreviousWeight:       0.9,
		},
		OccupancyThresh: OccupancyThresholdConfig{
			Threshold: 5,
		},
		Path: PathConfig{
			RobotRadiusMeters:   0.25,
			MinConfidence:       128,
			HumanDepthMaxMeters: 4.0,
		},
		Camera: CameraConfig{
			Fx:        211.0,
			Fy:        211.0,
			Cx:        120.0,
			Cy:        160.0,
			RGBWidth:  1920,
			RGBHeight: 1440,
		},
	}
}

// Load reads and parses a NavigationConfig from a YAML file at path,
// starting from Default and overlaying whatever fields the file sets.
func Load(path string) (NavigationConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return NavigationConfig{}, errors.Wrapf(err, "navconfig: reading %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NavigationConfig{}, errors.Wrapf(err, "navconfig: parsing %s", path)
	}

	return cfg, nil
}
