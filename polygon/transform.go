package polygon

// Matrix2 is a 2D linear transform applied to integer points with rounding,
// used by the core to apply (and invert) the fixed rotation used for beam
// orientation. It deliberately only carries the 2x2 linear part plus a
// translation: everything rotation.go needs from a 3D mgl32.Mat4 is its
// action on the XY plane.
type Matrix2 struct {
	A, B, C, D float64 // [[A B] [C D]]
	Tx, Ty     float64
}

// Apply maps p through the matrix, rounding to the nearest integer
// coordinate. Rounding here is the one place floating point enters
// otherwise-exact polygon arithmetic.
func (m Matrix2) Apply(p Point2) Point2 {
	x := float64(p.X)
	y := float64(p.Y)
	return Point2{
		X: roundCoord(m.A*x+m.B*y+m.Tx),
		Y: roundCoord(m.C*x+m.D*y+m.Ty),
	}
}

// ApplyMatrix transforms every point of every polygon in the set.
func ApplyMatrix(ps Polygons, m Matrix2) Polygons {
	out := make(Polygons, len(ps))
	for i, poly := range ps {
		np := make(Polygon, len(poly))
		for j, p := range poly {
			np[j] = m.Apply(p)
		}
		out[i] = np
	}
	return out
}

// Translate shifts every point of every polygon in the set by v.
func Translate(ps Polygons, v Point2) Polygons {
	out := make(Polygons, len(ps))
	for i, poly := range ps {
		np := make(Polygon, len(poly))
		for j, p := range poly {
			np[j] = Point2{X: p.X + v.X, Y: p.Y + v.Y}
		}
		out[i] = np
	}
	return out
}
