package wetrace

// Synthetic phantoms for driver runs and tests: uniform water boxes, slab
// inserts with a different stopping power, and the ROI masks to go with them.

// Axis selects one of the three grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// UniformPhantom returns a volume with the same SPR everywhere.
func UniformPhantom(g Grid, spr Real) []Real {
	buf := make([]Real, g.Len())
	for i := range buf {
		buf[i] = spr
	}
	return buf
}

// SlabPhantom returns a base-SPR volume with a slab of slabSPR spanning the
// index range [lo, hi) on the given axis.
func SlabPhantom(g Grid, base, slabSPR Real, axis Axis, lo, hi int) []Real {
	buf := UniformPhantom(g, base)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				n := [3]int{i, j, k}[axis]
				if n >= lo && n < hi {
					buf[g.Index(i, j, k)] = slabSPR
				}
			}
		}
	}
	return buf
}

// FullROI selects every voxel.
func FullROI(g Grid) []bool {
	mask := make([]bool, g.Len())
	for i := range mask {
		mask[i] = true
	}
	return mask
}

// BoxROI selects the voxels inside the half-open index box [min, max),
// clamped to the grid.
func BoxROI(g Grid, min, max [3]int) []bool {
	mask := make([]bool, g.Len())
	lo := [3]int{clamp(min[0], 0, g.Nx), clamp(min[1], 0, g.Ny), clamp(min[2], 0, g.Nz)}
	hi := [3]int{clamp(max[0], 0, g.Nx), clamp(max[1], 0, g.Ny), clamp(max[2], 0, g.Nz)}
	for i := lo[0]; i < hi[0]; i++ {
		for j := lo[1]; j < hi[1]; j++ {
			for k := lo[2]; k < hi[2]; k++ {
				mask[g.Index(i, j, k)] = true
			}
		}
	}
	return mask
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
