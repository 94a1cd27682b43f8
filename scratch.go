package region

// Scratch is a saved cursor position used to bracket a scope of temporary
// allocations. It does not own the region; it is purely a coordinate.
// The zero value is inert.
type Scratch struct {
	region *Region
	pos    uint64
}

// ScratchBegin captures the current position. Everything pushed afterwards
// is discarded in one step by End.
func (r *Region) ScratchBegin() Scratch {
	if r == nil {
		return Scratch{}
	}
	return Scratch{region: r, pos: r.pos}
}

// End rolls the region's cursor back to the captured position, discarding
// all allocations made since ScratchBegin. Calling End on the zero value is
// a no-op.
//
// Nested scratches must be ended in reverse order of creation. Ending them
// out of order is not detected and leaves the cursor where the earliest End
// put it, not where later scratches expect it.
func (s Scratch) End() {
	if s.region == nil || s.region.mem == nil {
		return
	}
	s.region.pos = s.pos
}
