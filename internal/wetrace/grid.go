package wetrace

import "fmt"

// Grid describes an axis-aligned voxel volume: the physical coordinate of the
// voxel-0 corner, the voxel size per axis and the voxel count per axis.
// Volumes over a Grid are flat slices in row-major (C) order with the Z index
// varying fastest.
type Grid struct {
	Offset     Vec3
	Spacing    Vec3
	Nx, Ny, Nz int
}

// NewGrid validates the geometry and returns the grid descriptor.
func NewGrid(offset, spacing Vec3, nx, ny, nz int) (Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return Grid{}, fmt.Errorf("grid size must be positive on all axes, got (%d, %d, %d)", nx, ny, nz)
	}
	if spacing.X == 0 || spacing.Y == 0 || spacing.Z == 0 ||
		!isFinite(spacing.X) || !isFinite(spacing.Y) || !isFinite(spacing.Z) {
		return Grid{}, fmt.Errorf("spacing must be nonzero and finite on all axes, got %+v", spacing)
	}
	return Grid{Offset: offset, Spacing: spacing, Nx: nx, Ny: ny, Nz: nz}, nil
}

// Len returns the number of voxels in the volume.
func (g Grid) Len() int { return g.Nx * g.Ny * g.Nz }

// Index maps voxel indices to the flat buffer position: k fastest, then i,
// then j. Both the dispatch loop and the traversal sampling go through this
// one function, so the two can never diverge.
func (g Grid) Index(i, j, k int) int {
	return k + g.Nz*(i+g.Nx*j)
}

// VoxelCenter returns the physical center of voxel (i, j, k).
func (g Grid) VoxelCenter(i, j, k int) Vec3 {
	return Vec3{
		g.Offset.X + (Real(i)+0.5)*g.Spacing.X,
		g.Offset.Y + (Real(j)+0.5)*g.Spacing.Y,
		g.Offset.Z + (Real(k)+0.5)*g.Spacing.Z,
	}
}

// AxisCoords precomputes the per-axis voxel corner coordinates,
// coord[n] = offset + n*spacing. Built once per computation, read by every
// traversal, discarded afterward.
func (g Grid) AxisCoords() (xs, ys, zs []Real) {
	xs = make([]Real, g.Nx)
	ys = make([]Real, g.Ny)
	zs = make([]Real, g.Nz)
	for i := range xs {
		xs[i] = g.Offset.X + Real(i)*g.Spacing.X
	}
	for j := range ys {
		ys[j] = g.Offset.Y + Real(j)*g.Spacing.Y
	}
	for k := range zs {
		zs[k] = g.Offset.Z + Real(k)*g.Spacing.Z
	}
	return xs, ys, zs
}
