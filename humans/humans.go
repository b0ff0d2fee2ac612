// Package humans implements human-obstacle instancing from a per-pixel
// segmentation mask (spec component F): clustering confident "human" pixels
// into bounding boxes, and averaging the depth underneath a box.
package humans

import (
	"github.com/trzy/robart/geometry2d"
	"github.com/trzy/robart/imaging"
)

// neighborWindowSize is the odd-sized window (in pixels, both axes) searched
// around a newly-found human pixel for an existing box to merge into.
const neighborWindowSize = 17

// FindHumans scans mask for pixels at or above minConfidence and groups them
// into bounding boxes, one per connected-ish human instance. A nil or empty
// mask yields no boxes.
//
// The scan is a single raster pass: each qualifying pixel is tested against a
// neighborWindowSize x neighborWindowSize neighborhood box for overlap with
// an already-discovered box. A hit grows that box to cover the new pixel and
// moves it to the front of the list (it is the box most likely to be tested
// again on the very next pixel). A miss starts a new single-pixel box. A
// second pass then repeatedly merges any boxes left overlapping each other,
// since the windowed first pass does not guarantee a single box per human.
func FindHumans(mask *imaging.SegmentationMask, minConfidence byte) []geometry2d.Box2D {
	if mask.Empty() {
		return nil
	}

	offset := neighborWindowSize / 2
	var humans []geometry2d.Box2D

	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			if mask.At(x, y) < minConfidence {
				continue
			}

			neighborhood := geometry2d.NewBox2D(x-offset, y-offset, neighborWindowSize, neighborWindowSize)
			idx := findOverlappingBoxIndex(humans, neighborhood)
			if idx < 0 {
				humans = append(humans, geometry2d.NewBox2D(x, y, 1, 1))
				continue
			}

			existing := humans[idx]
			x1 := min(existing.X, x)
			y1 := min(existing.Y, y)
			x2 := max(existing.X+existing.Width-1, x)
			y2 := max(existing.Y+existing.Height-1, y)
			grown := geometry2d.NewBox2D(x1, y1, x2-x1+1, y2-y1+1)

			humans[idx] = humans[0]
			humans[0] = grown
		}
	}

	return mergeOverlapping(humans)
}

func findOverlappingBoxIndex(humans []geometry2d.Box2D, box geometry2d.Box2D) int {
	for i, h := range humans {
		if box.Overlaps(h) {
			return i
		}
	}
	return -1
}

// mergeOverlapping repeatedly merges any pair of overlapping boxes until no
// pair overlaps, collapsing the windowed scan's fragments into one box per
// human.
func mergeOverlapping(humans []geometry2d.Box2D) []geometry2d.Box2D {
	for {
		mergedSomething := false
		for i := 0; i < len(humans); i++ {
			for j := i + 1; j < len(humans); j++ {
				if !humans[i].Overlaps(humans[j]) {
					continue
				}
				humans[i] = humans[i].MergeWith(humans[j])
				humans = append(humans[:j], humans[j+1:]...)
				j--
				mergedSomething = true
			}
		}
		if !mergedSomething {
			return humans
		}
	}
}

// ComputeAverageDepth returns the mean depth, in metres, of every pixel
// within box (clipped to depth's extents) whose depth is at or below
// maxDepth. Returns -1 if box lies entirely outside depth, or if no pixel
// within the clipped box has depth <= maxDepth.
func ComputeAverageDepth(box geometry2d.Box2D, depth *imaging.DepthImage, maxDepth float32) float32 {
	clipped, ok := box.ClippedTo(depth.Width(), depth.Height())
	if !ok {
		return -1
	}

	depth.Lock()
	defer depth.Unlock()

	var cumulative float32
	var count int
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			v := depth.At(x, y)
			if v <= maxDepth {
				cumulative += v
				count++
			}
		}
	}

	if count == 0 {
		return -1
	}
	return cumulative / float32(count)
}
