package interlock

import "fmt"

// assertBeamWidths panics when both beam widths sum to zero: an
// undefined configuration, not a recoverable one. Every other skip
// condition (same extruder, non-overlapping AABBs) is a routine, logged
// skip (see generate.go), not a panic.
func assertBeamWidths(p InterlockParams, meshIndexA, meshIndexB int) {
	if p.BeamWidthA+p.BeamWidthB <= 0 {
		panic(fmt.Sprintf("interlock: beam widths sum to zero for mesh pair (%d,%d)", meshIndexA, meshIndexB))
	}
}
