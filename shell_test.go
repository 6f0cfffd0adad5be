package interlock_test

import (
	"testing"

	"github.com/gekko3d/interlock"
	"github.com/gekko3d/interlock/mesh"
)

func TestShellVoxelizer_BuildShell_AdjacentCubesShareCells(t *testing.T) {
	a, b := mesh.AdjacentCubes(10000, 10000, 0, 8, 1, 400)

	voxel := interlock.VoxelUtils{CellSize: interlock.CellSize{X: 800, Y: 800, Z: 4}}
	kernel := interlock.NewDilationKernel(interlock.GridPoint3{X: 5, Y: 5, Z: 5}, interlock.DIAMOND)
	rot := interlock.NewRotation(22.5)

	sv := interlock.ShellVoxelizer{Voxel: voxel, Kernel: kernel}
	shellA := sv.BuildShell(a, rot)
	shellB := sv.BuildShell(b, rot)

	if shellA.Len() == 0 {
		t.Fatalf("expected a non-empty shell for mesh a")
	}
	if shellB.Len() == 0 {
		t.Fatalf("expected a non-empty shell for mesh b")
	}

	contact := shellA.Intersect(shellB)
	if contact.Len() == 0 {
		t.Errorf("expected two cubes sharing a face to produce overlapping shell cells")
	}
}

func TestShellVoxelizer_BuildShell_GappedCubesDoNotShareCells(t *testing.T) {
	a, b := mesh.GappedCubes(10000, 5000, 0, 8, 1, 400)

	voxel := interlock.VoxelUtils{CellSize: interlock.CellSize{X: 800, Y: 800, Z: 4}}
	kernel := interlock.NewDilationKernel(interlock.GridPoint3{X: 5, Y: 5, Z: 5}, interlock.DIAMOND)
	rot := interlock.NewRotation(22.5)

	sv := interlock.ShellVoxelizer{Voxel: voxel, Kernel: kernel}
	shellA := sv.BuildShell(a, rot)
	shellB := sv.BuildShell(b, rot)

	contact := shellA.Intersect(shellB)
	if contact.Len() != 0 {
		t.Errorf("expected a 5000-unit gap to leave no shared shell cells, got %d", contact.Len())
	}
}
