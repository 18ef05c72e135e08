package wetrace

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run traces every beam in the config against the configured phantom and
// logs a per-beam summary. Beams are independent, so they run concurrently,
// each into its own output volume.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	grid, err := cfg.Grid.Build()
	if err != nil {
		return err
	}
	spr, err := cfg.Phantom.Build(grid)
	if err != nil {
		return err
	}
	roi := cfg.ROI.Build(grid)
	BoundaryEps = cfg.BoundaryEps

	beams := make([]Vec3, len(cfg.Beams))
	for bi, bc := range cfg.Beams {
		if beams[bi], err = bc.Build(); err != nil {
			return err
		}
	}

	results := make([][]Real, len(cfg.Beams))
	var g errgroup.Group
	for bi := range cfg.Beams {
		bi := bi
		g.Go(func() error {
			wet := make([]Real, grid.Len())
			start := time.Now()
			if err := ComputeWET(spr, roi, wet, grid, beams[bi]); err != nil {
				return fmt.Errorf("beam %q: %w", cfg.Beams[bi].Name, err)
			}
			st := Stats(wet, roi)
			slog.Info("beam traced",
				"beam", cfg.Beams[bi].Name,
				"voxels", st.Count,
				"min", st.Min,
				"max", st.Max,
				"mean", st.Mean,
				"elapsed", time.Since(start),
			)
			results[bi] = wet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Output != "" {
		for bi, bc := range cfg.Beams {
			name := bc.Name
			if name == "" {
				name = fmt.Sprintf("beam%d", bi)
			}
			path := fmt.Sprintf("%s_%s.raw", cfg.Output, name)
			if err := SaveRawWET(path, grid, results[bi]); err != nil {
				return err
			}
			DebugLog("Saved WET volume: %s", path)
		}
	}
	return nil
}
