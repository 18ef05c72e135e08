package wetrace

// Defaults shared by the traversal and the driver config.
const (
	DefaultBoundaryEps = 1e-3 // push past each voxel boundary, in physical units
	DefaultSPR         = 1.0  // water
	DefaultGridN       = 64
	DefaultSpacing     = 1.0
)
