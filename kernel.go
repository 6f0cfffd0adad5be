package interlock

// KernelType selects the shape of a DilationKernel's offset set.
type KernelType int

const (
	// CUBE includes every offset in the size box.
	CUBE KernelType = iota
	// DIAMOND is an L1 ball (octahedron in 3D) inscribed in the size box.
	DIAMOND
	// PRISM is a DIAMOND in XY, extruded uniformly across every Z layer.
	PRISM
)

// DilationKernel is a precomputed set of relative cell offsets, enumerated
// once at construction and reused across every layer and both meshes (the
// driver builds exactly two: an interface kernel and an air kernel).
type DilationKernel struct {
	Size    GridPoint3
	Type    KernelType
	Offsets []GridPoint3
}

// NewDilationKernel enumerates every offset matching the membership
// predicate for the given type and size. When a kernel dimension is
// even, the reference cell sits at the lower end of the interval, so
// offsets always range over 0..s-1 on every axis rather than being made
// symmetric about zero.
func NewDilationKernel(size GridPoint3, typ KernelType) DilationKernel {
	k := DilationKernel{Size: size, Type: typ}

	maxXY := size.X
	if size.Y > maxXY {
		maxXY = size.Y
	}
	maxXYZ := maxXY
	if size.Z > maxXYZ {
		maxXYZ = size.Z
	}
	rDiamond := maxXYZ / 2
	rPrism := maxXY / 2
	cx, cy, cz := size.X/2, size.Y/2, size.Z/2

	for i := int64(0); i < size.X; i++ {
		for j := int64(0); j < size.Y; j++ {
			for kk := int64(0); kk < size.Z; kk++ {
				switch typ {
				case CUBE:
					k.Offsets = append(k.Offsets, GridPoint3{i, j, kk})
				case DIAMOND:
					if absInt64(i-cx)+absInt64(j-cy)+absInt64(kk-cz) <= rDiamond {
						k.Offsets = append(k.Offsets, GridPoint3{i, j, kk})
					}
				case PRISM:
					if absInt64(i-cx)+absInt64(j-cy) <= rPrism {
						k.Offsets = append(k.Offsets, GridPoint3{i, j, kk})
					}
				}
			}
		}
	}
	return k
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Dilate calls visit(g + offset) for every offset in the kernel, stopping
// immediately if visit returns false.
func (k DilationKernel) Dilate(g GridPoint3, visit func(GridPoint3) bool) bool {
	for _, o := range k.Offsets {
		if !visit(g.Add(o)) {
			return false
		}
	}
	return true
}
