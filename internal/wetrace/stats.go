package wetrace

// WETStats summarizes the masked voxels of a computed WET volume.
type WETStats struct {
	Count          int
	Min, Max, Mean Real
}

// Stats scans wet over the true entries of roi. With an empty mask all
// fields are zero.
func Stats(wet []Real, roi []bool) WETStats {
	var st WETStats
	var sum Real
	for i, in := range roi {
		if !in {
			continue
		}
		v := wet[i]
		if st.Count == 0 || v < st.Min {
			st.Min = v
		}
		if st.Count == 0 || v > st.Max {
			st.Max = v
		}
		sum += v
		st.Count++
	}
	if st.Count > 0 {
		st.Mean = sum / Real(st.Count)
	}
	return st
}
