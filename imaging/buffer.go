// Package imaging provides the pixel-buffer types the navigation core reads
// from: depth images, confidence images, and segmentation masks. Buffers are
// row-major with an explicit element stride, mirroring the CoreVideo
// CVPixelBuffer contract the original implementation was built against
// (row stride may exceed width, and must be honored independently for each
// buffer).
package imaging

import "sync"

// DepthImage is a width x height grid of 32-bit float depth samples in
// metres, row-major, with an explicit stride (in elements, not bytes) that
// may exceed width.
type DepthImage struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	data   []float32
}

// NoDataSentinel is the depth value denoting "rejected / no data".
const NoDataSentinel = float32(1e6)

// NewDepthImage allocates a DepthImage with stride equal to width.
func NewDepthImage(width, height int) *DepthImage {
	return &DepthImage{width: width, height: height, stride: width, data: make([]float32, stride(width, height))}
}

// NewDepthImageWithStride allocates a DepthImage with an explicit element
// stride, for buffers whose row data is padded beyond width.
func NewDepthImageWithStride(width, height, strideElems int, data []float32) *DepthImage {
	return &DepthImage{width: width, height: height, stride: strideElems, data: data}
}

func stride(width, height int) int { return width * height }

// Width returns the buffer width in pixels.
func (d *DepthImage) Width() int { return d.width }

// Height returns the buffer height in pixels.
func (d *DepthImage) Height() int { return d.height }

// Stride returns the row stride in elements (float32 units).
func (d *DepthImage) Stride() int { return d.stride }

// Empty reports whether the buffer has no backing storage — the equivalent
// of a null CVPixelBufferRef in the original. Callers must treat this as a
// silent no-op, not an error.
func (d *DepthImage) Empty() bool { return d == nil || d.data == nil }

// Lock acquires exclusive access to the buffer for the duration of a single
// operation, mirroring CVPixelBufferLockBaseAddress. Always paired with
// Unlock via defer.
func (d *DepthImage) Lock() { d.mu.Lock() }

// Unlock releases the lock acquired by Lock.
func (d *DepthImage) Unlock() { d.mu.Unlock() }

// At returns the depth value at (x, y) without bounds checking; callers must
// stay within [0,width) x [0,height).
func (d *DepthImage) At(x, y int) float32 {
	return d.data[y*d.stride+x]
}

// Set writes the depth value at (x, y).
func (d *DepthImage) Set(x, y int, v float32) {
	d.data[y*d.stride+x] = v
}

// ConfidenceImage is a width x height grid of per-pixel confidence bytes,
// paired with a DepthImage of identical width/height (strides may differ).
type ConfidenceImage struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewConfidenceImage allocates a ConfidenceImage with stride equal to width.
func NewConfidenceImage(width, height int) *ConfidenceImage {
	return &ConfidenceImage{width: width, height: height, stride: width, data: make([]byte, width*height)}
}

// NewConfidenceImageWithStride allocates a ConfidenceImage with an explicit
// element stride.
func NewConfidenceImageWithStride(width, height, strideElems int, data []byte) *ConfidenceImage {
	return &ConfidenceImage{width: width, height: height, stride: strideElems, data: data}
}

// Width returns the buffer width in pixels.
func (c *ConfidenceImage) Width() int { return c.width }

// Height returns the buffer height in pixels.
func (c *ConfidenceImage) Height() int { return c.height }

// Stride returns the row stride in elements (bytes).
func (c *ConfidenceImage) Stride() int { return c.stride }

// Empty reports whether the buffer has no backing storage.
func (c *ConfidenceImage) Empty() bool { return c == nil || c.data == nil }

// At returns the confidence byte at (x, y).
func (c *ConfidenceImage) At(x, y int) byte {
	return c.data[y*c.stride+x]
}

// Set writes the confidence byte at (x, y).
func (c *ConfidenceImage) Set(x, y int, v byte) {
	c.data[y*c.stride+x] = v
}

// SegmentationMask is a width x height grid of per-pixel segmentation
// confidence bytes; pixels at or above a caller-supplied threshold are
// considered "human".
type SegmentationMask struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewSegmentationMask allocates a SegmentationMask with stride equal to width.
func NewSegmentationMask(width, height int) *SegmentationMask {
	return &SegmentationMask{width: width, height: height, stride: width, data: make([]byte, width*height)}
}

// NewSegmentationMaskWithStride allocates a SegmentationMask with an explicit
// element stride.
func NewSegmentationMaskWithStride(width, height, strideElems int, data []byte) *SegmentationMask {
	return &SegmentationMask{width: width, height: height, stride: strideElems, data: data}
}

// Width returns the mask width in pixels.
func (s *SegmentationMask) Width() int { return s.width }

// Height returns the mask height in pixels.
func (s *SegmentationMask) Height() int { return s.height }

// Empty reports whether the mask has no backing storage.
func (s *SegmentationMask) Empty() bool { return s == nil || s.data == nil }

// At returns the mask byte at (x, y).
func (s *SegmentationMask) At(x, y int) byte {
	return s.data[y*s.stride+x]
}

// Set writes the mask byte at (x, y).
func (s *SegmentationMask) Set(x, y int, v byte) {
	s.data[y*s.stride+x] = v
}
