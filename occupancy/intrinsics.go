package occupancy

import "gonum.org/v1/gonum/mat"

// Intrinsics3x3 is a pinhole-camera intrinsics matrix in the wire layout spec
// §6 documents: column-major, fx at (0,0), fy at (1,1), cx at (2,0), cy at
// (2,1). Index i*3+j is column i, row j.
type Intrinsics3x3 [9]float64

// NewIntrinsics3x3 builds an Intrinsics3x3 from the standard scalar pinhole
// parameters.
func NewIntrinsics3x3(fx, fy, cx, cy float64) Intrinsics3x3 {
	var k Intrinsics3x3
	k[0] = fx // column 0, row 0
	k[4] = fy // column 1, row 1
	k[6] = cx // column 2, row 0
	k[7] = cy // column 2, row 1
	k[8] = 1
	return k
}

// Fx returns the X focal length.
func (k Intrinsics3x3) Fx() float64 { return k[0] }

// Fy returns the Y focal length.
func (k Intrinsics3x3) Fy() float64 { return k[4] }

// Cx returns the X principal point.
func (k Intrinsics3x3) Cx() float64 { return k[6] }

// Cy returns the Y principal point.
func (k Intrinsics3x3) Cy() float64 { return k[7] }

// Pose4x4 is a 4x4 camera-to-world pose matrix in column-major layout
// (spec §6). Index i*4+j is column i, row j.
type Pose4x4 [16]float64

// IdentityPose4x4 returns the identity pose.
func IdentityPose4x4() Pose4x4 {
	var p Pose4x4
	p[0], p[5], p[10], p[15] = 1, 1, 1, 1
	return p
}

// NewPose4x4FromColumnMajor builds a Pose4x4 from 16 column-major elements.
func NewPose4x4FromColumnMajor(cols [16]float64) Pose4x4 {
	return Pose4x4(cols)
}

// toRowMajorDense converts the column-major Pose4x4 into a gonum row-major
// *mat.Dense for matrix algebra.
func (p Pose4x4) toRowMajorDense() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			d.Set(row, col, p[col*4+row])
		}
	}
	return d
}

// rotate180AboutX is the rotation that flips Y and Z, used to convert from
// the depth-image camera frame (+Y down) into the tracked-camera frame
// (+Y up): everything is rotated 180 degrees about the X axis, which points
// down in portrait orientation (spec §4.C step 2).
func rotate180AboutX() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	d.Set(0, 0, 1)
	d.Set(1, 1, -1)
	d.Set(2, 2, -1)
	d.Set(3, 3, 1)
	return d
}
