package interlock

// MicrostructureTemplate holds the two-by-two template table
// T[parity][mesh]: two rectangles partitioning a single cell's
// footprint, transposed between even and odd bands so adjacent bands
// alternate beam orientation 90 degrees.
type MicrostructureTemplate struct {
	// T[parity][mesh]
	T [2][2]Polygon
}

// NewMicrostructureTemplate builds the template table for a cell of size
// cs.X x cs.Y, splitting it proportionally to the two beam widths at
// middle = cx*w0/(w0+w1).
func NewMicrostructureTemplate(cs CellSize, w0, w1 Coord) MicrostructureTemplate {
	cx, cy := cs.X, cs.Y
	middle := cx * w0 / (w0 + w1)

	t00 := Polygon{{0, 0}, {middle, 0}, {middle, cy}, {0, cy}}
	t01 := Polygon{{middle, 0}, {cx, 0}, {cx, cy}, {middle, cy}}

	return MicrostructureTemplate{
		T: [2][2]Polygon{
			0: {0: t00, 1: t01},
			1: {0: transposePolygon(t00), 1: transposePolygon(t01)},
		},
	}
}

func transposePolygon(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point2{X: pt.Y, Y: pt.X}
	}
	return out
}

// At returns a copy of the template for the given parity (0 or 1) and
// mesh index (0 or 1).
func (m MicrostructureTemplate) At(parity, mesh int) Polygon {
	src := m.T[parity][mesh]
	out := make(Polygon, len(src))
	copy(out, src)
	return out
}
