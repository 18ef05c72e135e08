package wetrace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{
		"grid": {"offset": [-10, -10, 0], "spacing": [0.5, 0.5, 1], "size": [16, 16, 8]},
		"phantom": {"spr": 1.0, "slabs": [{"spr": 1.8, "axis": "z", "from": 2, "to": 5}]},
		"beams": [{"name": "lateral", "direction": [1, 0, 0]}]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, [3]int{16, 16, 8}, cfg.Grid.Size)
	assert.Equal(t, Real(DefaultBoundaryEps), cfg.BoundaryEps)
	require.Len(t, cfg.Beams, 1)

	g, err := cfg.Grid.Build()
	require.NoError(t, err)
	assert.Equal(t, Vec3{0.5, 0.5, 1}, g.Spacing)

	spr, err := cfg.Phantom.Build(g)
	require.NoError(t, err)
	assert.Equal(t, Real(1.8), spr[g.Index(0, 0, 3)])
	assert.Equal(t, Real(1.0), spr[g.Index(0, 0, 6)])

	beam, err := cfg.Beams[0].Build()
	require.NoError(t, err)
	assert.Equal(t, Vec3{1, 0, 0}, beam)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", `
grid:
  size: [8, 8, 8]
phantom:
  spr: 1.2
roi:
  min: [2, 2, 2]
  max: [6, 6, 6]
beams:
  - name: ap
    direction: [0, 0, -1]
boundaryEps: 5.0e-4
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Real(5e-4), cfg.BoundaryEps)
	require.NotNil(t, cfg.ROI)

	g, err := cfg.Grid.Build()
	require.NoError(t, err)
	// Omitted spacing defaults per axis.
	assert.Equal(t, Vec3{DefaultSpacing, DefaultSpacing, DefaultSpacing}, g.Spacing)

	roi := cfg.ROI.Build(g)
	count := 0
	for _, in := range roi {
		if in {
			count++
		}
	}
	assert.Equal(t, 64, count)
}

func TestLoadConfigDefaultsAndErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := writeTemp(t, "nobeams.json", `{"grid": {"size": [4, 4, 4]}}`)
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "no beams")

	path = writeTemp(t, "defaults.json", `{"beams": [{"direction": [0, 1, 0]}]}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	g, err := cfg.Grid.Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultGridN, g.Nx)
	assert.Equal(t, DefaultGridN, g.Ny)
	assert.Equal(t, DefaultGridN, g.Nz)

	spr, err := cfg.Phantom.Build(g)
	require.NoError(t, err)
	assert.Equal(t, Real(DefaultSPR), spr[0])
}

func TestPhantomCfgBadAxis(t *testing.T) {
	g := mustGrid(t, Vec3{}, Vec3{1, 1, 1}, 4, 4, 4)
	pc := PhantomCfg{SPR: 1, Slabs: []SlabCfg{{SPR: 2, Axis: "w", From: 0, To: 2}}}
	_, err := pc.Build(g)
	require.ErrorContains(t, err, "unknown axis")
}

func TestBeamCfgZeroDirection(t *testing.T) {
	_, err := BeamCfg{Name: "bad"}.Build()
	require.ErrorContains(t, err, "non-zero")
}
