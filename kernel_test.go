package interlock

import "testing"

func TestNewDilationKernel_Cube_IncludesEveryOffset(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 3, Y: 3, Z: 1}, CUBE)
	if len(k.Offsets) != 9 {
		t.Errorf("expected a 3x3x1 cube kernel to have 9 offsets, got %d", len(k.Offsets))
	}
}

func TestNewDilationKernel_Diamond_L1Ball(t *testing.T) {
	// size 5x5x5, center (2,2,2), radius floor(5/2)=2: the L1 ball of
	// radius 2 in 3D has 1 + 6 + 12*... ; easiest checked by membership
	// rather than a closed count. Confirm the center and the axis-aligned
	// extremes are in, and the corners are not.
	k := NewDilationKernel(GridPoint3{X: 5, Y: 5, Z: 5}, DIAMOND)
	has := func(g GridPoint3) bool {
		for _, o := range k.Offsets {
			if o == g {
				return true
			}
		}
		return false
	}
	if !has(GridPoint3{2, 2, 2}) {
		t.Errorf("expected the kernel center to be included")
	}
	if !has(GridPoint3{0, 2, 2}) || !has(GridPoint3{4, 2, 2}) {
		t.Errorf("expected axis-aligned radius-2 offsets to be included")
	}
	if has(GridPoint3{0, 0, 0}) {
		t.Errorf("expected the box corner (L1 distance 6) to be excluded")
	}
}

func TestNewDilationKernel_Prism_IgnoresZInMembership(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 5, Y: 5, Z: 3}, PRISM)
	countAtZ := map[int64]int{}
	for _, o := range k.Offsets {
		countAtZ[o.Z]++
	}
	if len(countAtZ) != 3 {
		t.Fatalf("expected offsets at all 3 Z layers, got %d distinct Z values", len(countAtZ))
	}
	for z, n := range countAtZ {
		if n != countAtZ[0] {
			t.Errorf("expected the same XY footprint at every Z layer, layer %d has %d offsets vs layer 0's %d", z, n, countAtZ[0])
		}
	}
}

func TestDilationKernel_Dilate_VisitsEveryOffsetAddedToCenter(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 1, Y: 1, Z: 1}, CUBE)
	var visited []GridPoint3
	k.Dilate(GridPoint3{X: 10, Y: 20, Z: 30}, func(g GridPoint3) bool {
		visited = append(visited, g)
		return true
	})
	if len(visited) != 1 || visited[0] != (GridPoint3{10, 20, 30}) {
		t.Errorf("a 1x1x1 kernel should only visit the center cell itself, got %v", visited)
	}
}

func TestDilationKernel_Dilate_EarlyStop(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 3, Y: 3, Z: 3}, CUBE)
	visited := 0
	ok := k.Dilate(GridPoint3{}, func(g GridPoint3) bool {
		visited++
		return false
	})
	if ok {
		t.Errorf("expected Dilate to report false after an early stop")
	}
	if visited != 1 {
		t.Errorf("expected exactly 1 visit before stopping, got %d", visited)
	}
}
