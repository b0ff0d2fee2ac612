package occupancy

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/trzy/robart/imaging"
)

func vec3From(v *mat.VecDense) r3.Vector {
	return r3.Vector{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)}
}

// CellCountUpdateParams bundles the tunable inputs to UpdateCellCounts
// (spec §6's "updateCellCounts" construction parameters).
type CellCountUpdateParams struct {
	MinDepth             float64
	MaxDepth             float64
	MinHeight            float64
	MaxHeight            float64
	IncomingSampleWeight float64
	PreviousWeight       float64
}

// UpdateCellCounts is the depth-to-grid projector (spec component D). It
// decays every existing count by params.PreviousWeight, then unprojects each
// in-range depth pixel to a world position, height-slices it, and
// accumulates params.IncomingSampleWeight into the corresponding cell.
//
// Ignore floor and ceiling; constrain to some horizontal slice — MinHeight
// and MaxHeight exist so that the floor the robot is standing on and any
// ceiling/overhang above its head never themselves register as obstacles.
//
// The depth resolution is taken from depth's own width and height;
// rgbResolution is the RGB camera's resolution the intrinsics were
// calibrated against —
// the depth intrinsics are derived by scaling, since the depth sensor and
// RGB camera commonly run at different resolutions off the same optics.
func (m Map) UpdateCellCounts(
	depth *imaging.DepthImage,
	intrinsics Intrinsics3x3,
	rgbResolution [2]float64,
	pose Pose4x4,
	params CellCountUpdateParams,
) {
	if depth.Empty() {
		return
	}

	depth.Lock()
	defer depth.Unlock()

	depthWidth := float64(depth.Width())
	depthHeight := float64(depth.Height())

	scaleX := depthWidth / rgbResolution[0]
	scaleY := depthHeight / rgbResolution[1]

	invFx := (1.0 / scaleX) * (1.0 / intrinsics.Fx())
	invFy := (1.0 / scaleY) * (1.0 / intrinsics.Fy())
	cx := scaleX * intrinsics.Cx()
	cy := scaleY * intrinsics.Cy()

	cameraToWorld := mat.NewDense(4, 4, nil)
	cameraToWorld.Mul(pose.toRowMajorDense(), rotate180AboutX())

	// Decay existing counts before accumulating this frame's samples.
	for i := range m.values {
		m.values[i] *= params.PreviousWeight
	}

	camPoint := mat.NewVecDense(4, nil)
	worldPoint := mat.NewVecDense(4, nil)

	for y := 0; y < depth.Height(); y++ {
		for x := 0; x < depth.Width(); x++ {
			z := float64(depth.At(x, y))
			if z < params.MinDepth || z > params.MaxDepth {
				continue
			}

			camX := z * (float64(x) - cx) * invFx
			camY := z * (float64(y) - cy) * invFy

			camPoint.SetVec(0, camX)
			camPoint.SetVec(1, camY)
			camPoint.SetVec(2, z)
			camPoint.SetVec(3, 1)
			worldPoint.MulVec(cameraToWorld, camPoint)

			worldY := worldPoint.AtVec(1)
			if worldY < params.MinHeight || worldY > params.MaxHeight {
				continue
			}

			cell := m.WorldToCell(vec3From(worldPoint))
			m.values[m.linearIndex(cell.X, cell.Z)] += params.IncomingSampleWeight
		}
	}
}
