package wetrace

import (
	"fmt"
	"runtime"
	"sync"
)

// ComputeWET fills wet with the water equivalent thickness of every voxel
// selected by roi, tracing one ray per voxel backward along beam until it
// exits the grid. Voxels with a false mask keep whatever value the caller
// stored there.
//
// spr, roi and wet must all have length grid.Len(). Each selected voxel's
// output slot is written by exactly one traversal and all other inputs are
// read-only, so the workers need no synchronization; the result is identical
// for any worker count.
func ComputeWET(spr []Real, roi []bool, wet []Real, grid Grid, beam Vec3) error {
	n := grid.Len()
	if len(spr) != n || len(roi) != n || len(wet) != n {
		return fmt.Errorf("volume length mismatch: spr=%d roi=%d wet=%d, want %d (Nx*Ny*Nz)",
			len(spr), len(roi), len(wet), n)
	}
	if beam.IsZero() {
		return fmt.Errorf("beam direction must be non-zero")
	}

	// Axis tables are fully built before any worker starts.
	xs, ys, zs := grid.AxisCoords()
	dir := beam.Neg() // march from the voxel back toward the source
	eps := BoundaryEps

	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rows := grid.Nx * grid.Ny
	if workers > rows {
		workers = rows
	}
	DebugLog("ComputeWET: %d voxels, %d workers, eps=%g", n, workers, eps)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			// Strided (i, j) rows; every worker owns a disjoint set of
			// output slots.
			for row := wid; row < rows; row += workers {
				i, j := row/grid.Ny, row%grid.Ny
				for k := 0; k < grid.Nz; k++ {
					id := grid.Index(i, j, k)
					if !roi[id] {
						continue
					}
					wet[id] = traceVoxel(grid, xs, ys, zs, spr, dir, i, j, k, eps)
				}
			}
		}()
	}
	wg.Wait()
	return nil
}
