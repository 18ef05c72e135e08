package wetrace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type GridCfg struct {
	Offset  [3]Real `json:"offset" yaml:"offset"`
	Spacing [3]Real `json:"spacing" yaml:"spacing"`
	Size    [3]int  `json:"size" yaml:"size"`
}

type SlabCfg struct {
	SPR  Real   `json:"spr" yaml:"spr"`
	Axis string `json:"axis" yaml:"axis"` // "x", "y" or "z"
	From int    `json:"from" yaml:"from"`
	To   int    `json:"to" yaml:"to"`
}

type PhantomCfg struct {
	SPR   Real      `json:"spr" yaml:"spr"` // background; defaults to water
	Slabs []SlabCfg `json:"slabs,omitempty" yaml:"slabs,omitempty"`
}

type BeamCfg struct {
	Name      string  `json:"name" yaml:"name"`
	Direction [3]Real `json:"direction" yaml:"direction"`
}

type ROICfg struct {
	Min [3]int `json:"min" yaml:"min"`
	Max [3]int `json:"max" yaml:"max"`
}

type Config struct {
	Grid        GridCfg    `json:"grid" yaml:"grid"`
	Phantom     PhantomCfg `json:"phantom" yaml:"phantom"`
	ROI         *ROICfg    `json:"roi,omitempty" yaml:"roi,omitempty"` // nil means the full grid
	Beams       []BeamCfg  `json:"beams" yaml:"beams"`
	BoundaryEps Real       `json:"boundaryEps,omitempty" yaml:"boundaryEps,omitempty"`
	Output      string     `json:"output,omitempty" yaml:"output,omitempty"` // raw dump path prefix
}

// Build validates and constructs the runtime grid, applying defaults for
// omitted fields.
func (gc GridCfg) Build() (Grid, error) {
	size := gc.Size
	for a := range size {
		if size[a] == 0 {
			size[a] = DefaultGridN
		}
	}
	sp := gc.Spacing
	for a := range sp {
		if sp[a] == 0 {
			sp[a] = DefaultSpacing
		}
	}
	return NewGrid(
		Vec3{gc.Offset[0], gc.Offset[1], gc.Offset[2]},
		Vec3{sp[0], sp[1], sp[2]},
		size[0], size[1], size[2],
	)
}

// Build constructs the SPR volume on the given grid.
func (pc PhantomCfg) Build(g Grid) ([]Real, error) {
	base := pc.SPR
	if base <= 0 {
		base = DefaultSPR
	}
	spr := UniformPhantom(g, base)
	for _, sc := range pc.Slabs {
		axis, err := parseAxis(sc.Axis)
		if err != nil {
			return nil, err
		}
		slab := SlabPhantom(g, base, sc.SPR, axis, sc.From, sc.To)
		for i, v := range slab {
			if v != base {
				spr[i] = v
			}
		}
	}
	return spr, nil
}

// Build returns the beam direction, normalized so path lengths stay physical.
func (bc BeamCfg) Build() (Vec3, error) {
	d := Vec3{bc.Direction[0], bc.Direction[1], bc.Direction[2]}
	if d.IsZero() {
		return Vec3{}, fmt.Errorf("beam %q: direction must be non-zero", bc.Name)
	}
	return d.Norm(), nil
}

// Build returns the ROI mask for the grid.
func (rc *ROICfg) Build(g Grid) []bool {
	if rc == nil {
		return FullROI(g)
	}
	return BoxROI(g, rc.Min, rc.Max)
}

// LoadConfig reads a JSON or YAML config (by file extension) and applies
// defaults and validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.BoundaryEps < 0 {
		return nil, fmt.Errorf("boundaryEps must be positive, got %g", cfg.BoundaryEps)
	}
	if cfg.BoundaryEps == 0 {
		cfg.BoundaryEps = DefaultBoundaryEps
	}
	if len(cfg.Beams) == 0 {
		return nil, fmt.Errorf("config has no beams")
	}
	DebugLog("Loaded config from %s: size=(%d, %d, %d), beams=%d, eps=%g",
		path, cfg.Grid.Size[0], cfg.Grid.Size[1], cfg.Grid.Size[2], len(cfg.Beams), cfg.BoundaryEps)
	return &cfg, nil
}

func parseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q (want x, y or z)", s)
}
