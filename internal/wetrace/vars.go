package wetrace

var (
	// BoundaryEps is added to every DDA step to push the ray strictly past
	// the voxel boundary it just crossed. Larger values overshoot more;
	// smaller values risk re-sampling a boundary voxel. It is a fixed
	// physical distance, not scaled to spacing, so tune it for fine grids.
	BoundaryEps Real = DefaultBoundaryEps

	// Workers caps the dispatch fan-out; 0 means runtime.NumCPU().
	Workers = 0
)
