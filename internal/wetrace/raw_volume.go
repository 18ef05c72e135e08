package wetrace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawWET writes a WET volume as little-endian binary: the three grid
// dimensions as int32 followed by the float64 voxel values in the grid's
// row-major order. Driver-side marshalling only; the engine itself never
// touches the filesystem.
func SaveRawWET(path string, g Grid, wet []Real) error {
	exp64 := int64(g.Nx) * int64(g.Ny) * int64(g.Nz)
	if int64(len(wet)) != exp64 {
		return fmt.Errorf("volume length mismatch: got %d, expected %d (Nx*Ny*Nz)", len(wet), exp64)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, n := range [3]int32{int32(g.Nx), int32(g.Ny), int32(g.Nz)} {
		if err := binary.Write(w, binary.LittleEndian, n); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, wet); err != nil {
		return err
	}
	return w.Flush()
}
