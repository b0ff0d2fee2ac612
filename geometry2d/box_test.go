package geometry2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := NewBox2D(0, 0, 10, 5)
	b := NewBox2D(9, 4, 10, 5)
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	c := NewBox2D(10, 0, 10, 5)
	assert.False(t, a.Overlaps(c))

	// Regression guard for the height-vs-width typo (spec S6 / §4.B):
	// a box starting just below the wide, short box a (10 wide, 5 high)
	// must not overlap it; comparing Y against (y + width) would wrongly
	// report an overlap.
	d := NewBox2D(0, 6, 2, 2)
	assert.False(t, a.Overlaps(d))
}

func TestMergeWith(t *testing.T) {
	a := NewBox2D(0, 0, 5, 5)
	b := NewBox2D(10, 10, 5, 5)
	m := a.MergeWith(b)
	assert.Equal(t, NewBox2D(0, 0, 15, 15), m)

	// merge(A, B) ⊇ A and ⊇ B (invariant 8)
	assert.True(t, m.X <= a.X && m.Y <= a.Y && m.X+m.Width >= a.X+a.Width && m.Y+m.Height >= a.Y+a.Height)
	assert.True(t, m.X <= b.X && m.Y <= b.Y && m.X+m.Width >= b.X+b.Width && m.Y+m.Height >= b.Y+b.Height)
	assert.LessOrEqual(t, a.X, m.X+m.Width)
}

func TestClippedTo(t *testing.T) {
	box, ok := NewBox2D(5, 5, 10, 10).ClippedTo(100, 100)
	assert.True(t, ok)
	assert.Equal(t, NewBox2D(5, 5, 10, 10), box)

	_, ok = NewBox2D(200, 200, 10, 10).ClippedTo(100, 100)
	assert.False(t, ok)

	box, ok = NewBox2D(-5, -5, 10, 10).ClippedTo(100, 100)
	assert.True(t, ok)
	assert.Equal(t, 0, box.X)
	assert.Equal(t, 0, box.Y)
}
