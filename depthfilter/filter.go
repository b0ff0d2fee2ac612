// Package depthfilter implements the depth-confidence gate (spec component
// A): low-confidence depth samples are sentinel-poisoned in place so that
// every downstream consumer of the depth image sees only trustworthy
// samples.
package depthfilter

import "github.com/trzy/robart/imaging"

// Filter overwrites every depth sample in depth whose paired confidence byte
// in confidence is strictly less than minConfidence with
// imaging.NoDataSentinel. depth and confidence must have identical
// dimensions; this is a programmer-error precondition and is not checked at
// runtime. If either buffer has no backing storage, Filter is a silent
// no-op.
func Filter(depth *imaging.DepthImage, confidence *imaging.ConfidenceImage, minConfidence byte) {
	if depth.Empty() || confidence.Empty() {
		return
	}

	depth.Lock()
	defer depth.Unlock()

	width := depth.Width()
	height := depth.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if confidence.At(x, y) < minConfidence {
				depth.Set(x, y, imaging.NoDataSentinel)
			}
		}
	}
}
