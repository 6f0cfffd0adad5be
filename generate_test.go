package interlock_test

import (
	"testing"

	"github.com/gekko3d/interlock"
	"github.com/gekko3d/interlock/mesh"
)

func TestGenerate_SameExtruder_IsSkipped(t *testing.T) {
	a := mesh.Cube(0, 10000, 0, 4, 1, 400, 0)
	b := mesh.Cube(5000, 15000, 0, 4, 1, 400, 0) // same extruder nr as a
	report := interlock.Generate([]interlock.Slicer{a, b}, nil)

	if len(report.Pairs) != 1 {
		t.Fatalf("expected exactly 1 pair, got %d", len(report.Pairs))
	}
	if report.Pairs[0].Processed {
		t.Errorf("expected the pair to be skipped for sharing an extruder")
	}
}

func TestGenerate_GapBeyondIgnoredGap_IsSkipped(t *testing.T) {
	a, b := mesh.GappedCubes(10000, 1000, 0, 4, 1, 400) // gap 1000 > default ignored_gap 100
	report := interlock.Generate([]interlock.Slicer{a, b}, nil)

	if report.Pairs[0].Processed {
		t.Errorf("expected the pair to be skipped: gap exceeds ignored_gap")
	}
}

func TestGenerate_AdjacentCubes_ProducesContactAndRewritesLayers(t *testing.T) {
	a, b := mesh.AdjacentCubes(10000, 10000, 0, 8, 1, 400)

	originalA := make([]interlock.SlicerLayer, len(a.Layers()))
	copy(originalA, a.Layers())
	for i := range originalA {
		originalA[i].Polygons = a.Layers()[i].Polygons.Clone()
	}

	report := interlock.Generate([]interlock.Slicer{a, b}, nil)

	if len(report.Pairs) != 1 {
		t.Fatalf("expected exactly 1 pair, got %d", len(report.Pairs))
	}
	pair := report.Pairs[0]
	if !pair.Processed {
		t.Fatalf("expected the adjacent-cube pair to be processed, skip reason: %q", pair.SkipReason)
	}
	if pair.ContactCells == 0 {
		t.Errorf("expected a non-zero contact cell count for two cubes sharing a face")
	}

	changed := false
	for i, layer := range a.Layers() {
		if len(layer.Polygons) != len(originalA[i].Polygons) {
			changed = true
			break
		}
		for j, poly := range layer.Polygons {
			if j >= len(originalA[i].Polygons) || !polygonsEqual(poly, originalA[i].Polygons[j]) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Errorf("expected Generate to rewrite at least one of mesh a's layers near the shared boundary")
	}
}

func polygonsEqual(a, b interlock.Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
