package imaging

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// DepthImageFromMat copies a single-channel 32-bit float gocv.Mat (as
// produced by the depth-acquisition pipeline) into a DepthImage. The Mat's
// own row stride is opaque to gocv's row/col accessors, so the resulting
// DepthImage always has stride == width; callers that need to preserve a
// padded stride should use NewDepthImageWithStride directly against the raw
// frame bytes instead.
func DepthImageFromMat(m gocv.Mat) (*DepthImage, error) {
	if m.Empty() {
		return nil, errors.New("imaging: depth mat is empty")
	}
	rows, cols := m.Rows(), m.Cols()
	img := NewDepthImage(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Set(x, y, m.GetFloatAt(y, x))
		}
	}
	return img, nil
}

// ConfidenceImageFromMat copies a single-channel 8-bit gocv.Mat into a
// ConfidenceImage.
func ConfidenceImageFromMat(m gocv.Mat) (*ConfidenceImage, error) {
	if m.Empty() {
		return nil, errors.New("imaging: confidence mat is empty")
	}
	rows, cols := m.Rows(), m.Cols()
	img := NewConfidenceImage(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.data[y*img.stride+x] = m.GetUCharAt(y, x)
		}
	}
	return img, nil
}

// SegmentationMaskFromMat copies a single-channel 8-bit gocv.Mat (as produced
// by a segmentation model's inference output) into a SegmentationMask.
func SegmentationMaskFromMat(m gocv.Mat) (*SegmentationMask, error) {
	if m.Empty() {
		return nil, errors.New("imaging: segmentation mat is empty")
	}
	rows, cols := m.Rows(), m.Cols()
	mask := NewSegmentationMask(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mask.Set(x, y, m.GetUCharAt(y, x))
		}
	}
	return mask, nil
}

// ToMat renders the depth image back into a single-channel 32-bit float
// gocv.Mat, useful for feeding an annotated view back through a visualization
// or debugging pipeline stage. The caller owns the returned Mat and must
// Close it.
func (d *DepthImage) ToMat() gocv.Mat {
	m := gocv.NewMatWithSize(d.height, d.width, gocv.MatTypeCV32F)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			m.SetFloatAt(y, x, d.At(x, y))
		}
	}
	return m
}
