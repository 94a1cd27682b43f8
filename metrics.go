package region

// Free returns the number of bytes still available for pushing.
func (r *Region) Free() uint64 {
	if r == nil || r.mem == nil {
		return 0
	}
	return uint64(len(r.base)) - r.pos
}

// Utilization returns the ratio of allocated bytes to capacity (0.0 to 1.0).
// Returns 0.0 for a released region.
func (r *Region) Utilization() float64 {
	c := r.Cap()
	if c == 0 {
		return 0
	}
	return float64(r.Pos()) / float64(c)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		Pos:         r.Pos(),
		Cap:         r.Cap(),
		Free:        r.Free(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	Pos         uint64  // Bytes currently allocated
	Cap         uint64  // Usable capacity in bytes
	Free        uint64  // Bytes remaining
	Utilization float64 // Ratio of allocated to capacity (0.0-1.0)
}
