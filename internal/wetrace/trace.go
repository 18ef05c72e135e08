package wetrace

import "math"

// traceVoxel marches one ray from the center of voxel (i, j, k) along dir
// until it leaves the volume, accumulating SPR × segment length.
//
// A zero direction component makes its boundary distance +Inf (IEEE float
// division) and it drops out of the min; its exit test never fires. eps
// pushes the position strictly past each boundary so a voxel is never
// re-sampled on a floating-point tie.
func traceVoxel(g Grid, xs, ys, zs, spr []Real, dir Vec3, i, j, k int, eps Real) Real {
	u, v, w := dir.X, dir.Y, dir.Z

	x := xs[i] + 0.5*g.Spacing.X
	y := ys[j] + 0.5*g.Spacing.Y
	z := zs[k] + 0.5*g.Spacing.Z

	var wet Real
	for {
		// Still inside the volume? Each axis is checked against the travel
		// direction on that axis only.
		if x < xs[0] && u < 0 {
			break
		}
		if x > xs[g.Nx-1] && u > 0 {
			break
		}
		if y < ys[0] && v < 0 {
			break
		}
		if y > ys[g.Ny-1] && v > 0 {
			break
		}
		if z < zs[0] && w < 0 {
			break
		}
		if z > zs[g.Nz-1] && w > 0 {
			break
		}

		// Distance along the ray to the next voxel boundary on each axis.
		dx := boundaryDist(x, g.Offset.X, g.Spacing.X, u)
		dy := boundaryDist(y, g.Offset.Y, g.Spacing.Y, v)
		dz := boundaryDist(z, g.Offset.Z, g.Spacing.Z, w)
		step := min3(dx, dy, dz) + eps

		// Sample at the pre-advance position.
		ix := int(math.Floor((x - g.Offset.X) / g.Spacing.X))
		iy := int(math.Floor((y - g.Offset.Y) / g.Spacing.Y))
		iz := int(math.Floor((z - g.Offset.Z) / g.Spacing.Z))
		wet += spr[g.Index(ix, iy, iz)] * step

		x += step * u
		y += step * v
		z += step * w
	}
	return wet
}

// boundaryDist is the DDA "distance to next grid line" term: the next lower
// or upper voxel boundary depending on travel direction, converted to
// ray-parameter distance. d == 0 yields +Inf.
func boundaryDist(pos, off, sp, d Real) Real {
	n := math.Floor((pos - off) / sp)
	if d > 0 {
		n++
	}
	return math.Abs((n*sp + off - pos) / d)
}

func min3(a, b, c Real) Real {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
