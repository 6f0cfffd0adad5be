package interlock

// PairResult records what happened for one unordered mesh pair, purely
// for observability: never consulted by the algorithm, never
// a failure signal.
type PairResult struct {
	MeshA, MeshB int
	Processed    bool
	SkipReason   string
	ContactCells int
}

// Report summarizes a full Generate call across every mesh pair
// considered.
type Report struct {
	Pairs []PairResult
}

// Generate runs the pairwise interlocking driver over every unordered
// pair of meshes with differing extruders and overlapping (gap-inflated)
// AABBs. Pairs are processed in mesh-index order; each
// pair's parameters are derived from the first mesh's wall_line_width_0
// via DefaultInterlockParams. Mutates the Polygons of every mesh that
// participates in at least one processed pair.
func Generate(meshes []Slicer, logger Logger) Report {
	if logger == nil {
		logger = NewNopLogger()
	}

	var report Report
	for i := 0; i < len(meshes); i++ {
		for j := i + 1; j < len(meshes); j++ {
			a, b := meshes[i], meshes[j]
			result := PairResult{MeshA: i, MeshB: j}

			if a.ExtruderNr() == b.ExtruderNr() {
				result.SkipReason = "same extruder"
				logger.Debugf("pair (%d,%d) skipped: both assigned to extruder %d", i, j, a.ExtruderNr())
				report.Pairs = append(report.Pairs, result)
				continue
			}

			params := DefaultInterlockParams(a.WallLineWidth0())

			if !aabbOverlaps(a, b, params.IgnoredGap) {
				result.SkipReason = "AABBs do not overlap within ignored_gap"
				logger.Debugf("pair (%d,%d) skipped: AABBs do not overlap within ignored_gap %d", i, j, params.IgnoredGap)
				report.Pairs = append(report.Pairs, result)
				continue
			}

			assertBeamWidths(params, i, j)

			driver := NewInterlockingDriver(params)
			result.ContactCells = driver.Process(a, b)
			result.Processed = true
			logger.Infof("pair (%d,%d) processed: %d contact cells", i, j, result.ContactCells)
			report.Pairs = append(report.Pairs, result)
		}
	}
	return report
}

func aabbOverlaps(a, b Slicer, gap Coord) bool {
	aMin, aMax := a.AABB()
	bMin, bMax := b.AABB()
	return overlaps1D(aMin.X-gap, aMax.X+gap, bMin.X, bMax.X) &&
		overlaps1D(aMin.Y-gap, aMax.Y+gap, bMin.Y, bMax.Y) &&
		overlaps1D(aMin.Z-gap, aMax.Z+gap, bMin.Z, bMax.Z)
}

func overlaps1D(aMin, aMax, bMin, bMax Coord) bool {
	return aMin <= bMax && bMin <= aMax
}
