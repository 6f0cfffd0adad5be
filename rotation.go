package interlock

import (
	"math"

	"github.com/gekko3d/interlock/polygon"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotation is the fixed rotation matrix applied to beam orientation:
// built once about +Z and inverted once for the final un-rotation. Its
// matrix entries are floating point and are applied to integer
// coordinates with rounding.
type Rotation struct {
	forward polygon.Matrix2
	inverse polygon.Matrix2
}

// NewRotation builds a Rotation for the given angle in degrees about Z.
func NewRotation(degrees float64) Rotation {
	m := mgl32.HomogRotate3DZ(float32(degrees * math.Pi / 180))
	fwd := matrix2FromMgl(m)

	return Rotation{
		forward: fwd,
		inverse: matrix2FromMgl(m.Inverse()),
	}
}

func matrix2FromMgl(m mgl32.Mat4) polygon.Matrix2 {
	// mgl32.Mat4 is column-major: m[col*4+row].
	return polygon.Matrix2{
		A: float64(m[0]), B: float64(m[4]),
		C: float64(m[1]), D: float64(m[5]),
	}
}

// Apply rotates a polygon set forward.
func (r Rotation) Apply(ps Polygons) Polygons {
	return polygon.ApplyMatrix(ps, r.forward)
}

// Unapply applies the inverse rotation, undoing Apply. Because the
// polygon library rounds to integer coordinates, the composition of
// Apply then Unapply is only exact to within one integer unit per
// coordinate; the clipping and unioning steps downstream
// absorb that drift.
func (r Rotation) Unapply(ps Polygons) Polygons {
	return polygon.ApplyMatrix(ps, r.inverse)
}
