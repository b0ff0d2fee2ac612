package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/trzy/robart/imaging"
	"github.com/trzy/robart/occupancy"
)

// frameMeta is the per-frame sidecar recorded alongside a frame's raw pixel
// buffers: their common dimensions and the camera-to-world pose (spec §6's
// column-major Pose4x4 layout) they were captured at.
type frameMeta struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Pose   [16]float64 `json:"pose"`
}

// frame bundles one recorded observation: depth, confidence, and
// segmentation buffers, plus the pose they were captured at.
type frame struct {
	depth        *imaging.DepthImage
	confidence   *imaging.ConfidenceImage
	segmentation *imaging.SegmentationMask
	pose         occupancy.Pose4x4
}

// listFrameDirs returns the recorded frame subdirectories of dir (each
// holding meta.json, depth.f32, confidence.u8, segmentation.u8), sorted by
// name so frames replay in capture order.
func listFrameDirs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*", "meta.json"))
	if err != nil {
		return nil, errors.Wrap(err, "replay: globbing frame directories")
	}
	dirs := make([]string, len(matches))
	for i, m := range matches {
		dirs[i] = filepath.Dir(m)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// loadFrame reads one recorded frame's raw pixel buffers off disk and
// bridges them through gocv into the navigation core's own buffer types, the
// way frames arriving from a live depth/confidence/segmentation pipeline
// would be bridged.
func loadFrame(frameDir string) (frame, error) {
	metaBytes, err := os.ReadFile(filepath.Join(frameDir, "meta.json"))
	if err != nil {
		return frame{}, errors.Wrapf(err, "replay: reading %s", frameDir)
	}
	var meta frameMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return frame{}, errors.Wrapf(err, "replay: parsing meta.json in %s", frameDir)
	}

	depthMat, err := readMat(filepath.Join(frameDir, "depth.f32"), meta.Height, meta.Width, gocv.MatTypeCV32F)
	if err != nil {
		return frame{}, err
	}
	defer depthMat.Close()

	confMat, err := readMat(filepath.Join(frameDir, "confidence.u8"), meta.Height, meta.Width, gocv.MatTypeCV8U)
	if err != nil {
		return frame{}, err
	}
	defer confMat.Close()

	segMat, err := readMat(filepath.Join(frameDir, "segmentation.u8"), meta.Height, meta.Width, gocv.MatTypeCV8U)
	if err != nil {
		return frame{}, err
	}
	defer segMat.Close()

	depthImg, err := imaging.DepthImageFromMat(depthMat)
	if err != nil {
		return frame{}, errors.Wrapf(err, "replay: %s", frameDir)
	}
	confImg, err := imaging.ConfidenceImageFromMat(confMat)
	if err != nil {
		return frame{}, errors.Wrapf(err, "replay: %s", frameDir)
	}
	segMask, err := imaging.SegmentationMaskFromMat(segMat)
	if err != nil {
		return frame{}, errors.Wrapf(err, "replay: %s", frameDir)
	}

	return frame{
		depth:        depthImg,
		confidence:   confImg,
		segmentation: segMask,
		pose:         occupancy.NewPose4x4FromColumnMajor(meta.Pose),
	}, nil
}

func readMat(path string, rows, cols int, matType gocv.MatType) (gocv.Mat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gocv.Mat{}, errors.Wrapf(err, "replay: reading %s", path)
	}
	m, err := gocv.NewMatFromBytes(rows, cols, matType, data)
	if err != nil {
		return gocv.Mat{}, errors.Wrapf(err, "replay: decoding %s", path)
	}
	return m, nil
}
