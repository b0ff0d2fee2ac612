// Package geometry2d provides axis-aligned integer rectangle algebra used to
// describe regions of image-space pixel buffers (human instance boxes,
// neighborhood windows, clip rectangles).
package geometry2d

// Box2D is an axis-aligned rectangle in integer pixel space, anchored at the
// top-left corner (X, Y) with a given Width and Height. Width and Height must
// be at least 1.
type Box2D struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewBox2D constructs a Box2D from its top-left corner and dimensions.
func NewBox2D(x, y, width, height int) Box2D {
	return Box2D{X: x, Y: y, Width: width, Height: height}
}

// Overlaps reports whether b and other intersect in both axes. The source
// this is ported from compared other.Y against (y + width) on one branch,
// almost certainly a copy-paste typo for (y + height); this implementation
// uses height on both axes.
func (b Box2D) Overlaps(other Box2D) bool {
	return !(b.X >= (other.X+other.Width) ||
		b.Y >= (other.Y+other.Height) ||
		other.X >= (b.X+b.Width) ||
		other.Y >= (b.Y+b.Height))
}

// MergeWith returns the smallest axis-aligned rectangle enclosing both b and
// other, using inclusive pixel coordinates.
func (b Box2D) MergeWith(other Box2D) Box2D {
	x1 := min(b.X, other.X)
	y1 := min(b.Y, other.Y)
	x2 := max(b.X+b.Width-1, other.X+other.Width-1)
	y2 := max(b.Y+b.Height-1, other.Y+other.Height-1)
	return Box2D{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1 + 1,
		Height: y2 - y1 + 1,
	}
}

// ClippedTo clips b to the rectangle [0,0)-(width,height). ok is false if the
// clipped rectangle would be empty (b lies entirely outside the frame).
//
// Matches the original's clipping arithmetic exactly: width/height are
// re-derived from the (possibly unmoved) X/Y against the frame bound, not
// reduced by however far X/Y themselves moved to clamp to zero.
func (b Box2D) ClippedTo(width, height int) (clipped Box2D, ok bool) {
	if b.X >= width || b.Y >= height || (b.X+b.Width) <= 0 || (b.Y+b.Height) <= 0 {
		return Box2D{}, false
	}
	x := max(0, b.X)
	y := max(0, b.Y)
	w := min(width-x, b.Width)
	h := min(height-y, b.Height)
	return Box2D{X: x, Y: y, Width: w, Height: h}, true
}
