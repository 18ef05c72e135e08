package wetrace

import (
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "wet")

	cfg := `
grid:
  size: [8, 8, 8]
phantom:
  spr: 1.0
beams:
  - name: pa
    direction: [0, 0, 1]
  - name: lateral
    direction: [1, 0, 0]
output: ` + out + "\n"

	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	defer func() { BoundaryEps = DefaultBoundaryEps }()
	require.NoError(t, Run(path))

	for _, name := range []string{"wet_pa.raw", "wet_lateral.raw"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		r := bufio.NewReader(f)

		var dims [3]int32
		require.NoError(t, binary.Read(r, binary.LittleEndian, &dims))
		assert.Equal(t, [3]int32{8, 8, 8}, dims)

		wet := make([]Real, 8*8*8)
		require.NoError(t, binary.Read(r, binary.LittleEndian, wet))
		require.NoError(t, f.Close())

		st := Stats(wet, make8x8x8ROI())
		assert.Equal(t, 512, st.Count)
		assert.Greater(t, st.Min, Real(0))
		// The deepest ray crosses at most the full 8-voxel extent plus the
		// per-step epsilon pushes.
		assert.Less(t, st.Max, Real(8.1))
	}

	require.Error(t, Run(filepath.Join(dir, "missing.yaml")))
}

func make8x8x8ROI() []bool {
	roi := make([]bool, 8*8*8)
	for i := range roi {
		roi[i] = true
	}
	return roi
}
