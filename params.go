package interlock

// InterlockParams holds the per-pair generation parameters: beam
// widths, rotation, and the kernel/band/gap tuning values a caller might
// later want to promote to user-facing settings. They are exposed as a
// plain constructor-built struct, not hidden package constants, so a
// caller can already override any of them before building a driver.
type InterlockParams struct {
	// BeamWidthA, BeamWidthB are the two meshes' beam widths (w0, w1).
	// CellSize.X = BeamWidthA + BeamWidthB.
	BeamWidthA, BeamWidthB Coord
	// RotationDegrees is the fixed angle applied for beam orientation.
	RotationDegrees float64
	// BeamLayerCount is the number of layers per band (cell_size.z = 2 *
	// BeamLayerCount).
	BeamLayerCount int64
	// InterfaceDepth is the radius (in cells) of the interface/shell
	// kernel; the kernel box is 2*InterfaceDepth+1 cells on each axis.
	InterfaceDepth int64
	// BoundaryAvoidance is the radius (in cells) of the air kernel used
	// when AirFiltering is enabled; the kernel box is
	// 2*BoundaryAvoidance+1 cells on each axis.
	BoundaryAvoidance int64
	// IgnoredGap is the morphological-close radius used both for pair
	// AABB-overlap selection and for closing layer regions.
	IgnoredGap Coord
	// AirFiltering, when true, subtracts a boundary-dilated envelope from
	// contact cells so the interlock pattern never reaches the models'
	// outer surface.
	AirFiltering bool
}

// CellSize derives the voxel grid's cell size from the beam widths and
// beam layer count. CellSize.Y equals CellSize.X: the template tiles a
// square cell footprint.
func (p InterlockParams) CellSize() CellSize {
	xy := p.BeamWidthA + p.BeamWidthB
	return CellSize{X: xy, Y: xy, Z: 2 * p.BeamLayerCount}
}

// DefaultInterlockParams builds the standard tuning values: beam widths
// = 2*wallLineWidth0 for both meshes, rotation = 22.5 degrees,
// beam_layer_count = 2, interface_depth = 2, boundary_avoidance = 0,
// ignored_gap = 100, air filtering off.
func DefaultInterlockParams(wallLineWidth0 Coord) InterlockParams {
	beamWidth := 2 * wallLineWidth0
	return InterlockParams{
		BeamWidthA:        beamWidth,
		BeamWidthB:        beamWidth,
		RotationDegrees:   22.5,
		BeamLayerCount:    2,
		InterfaceDepth:    2,
		BoundaryAvoidance: 0,
		IgnoredGap:        100,
		AirFiltering:      false,
	}
}
