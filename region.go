package region

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// HeaderSize is the number of bytes of the reservation occupied by the
// in-band header. The usable area starts immediately after it.
const HeaderSize = 16

// headerMagic marks a mapping as a region reservation ("REGION1\0", LE).
const headerMagic uint64 = 0x00314e4f49474552

var (
	// ErrNilRegion is returned when an operation is invoked on a nil region.
	ErrNilRegion = errors.New("region: nil region")
	// ErrReleased is returned when a region is used after Release.
	ErrReleased = errors.New("region: use after release")
	// ErrZeroSize is returned for zero-sized reservations and pushes.
	ErrZeroSize = errors.New("region: zero size")
	// ErrSizeOverflow is returned when size arithmetic would overflow.
	ErrSizeOverflow = errors.New("region: size overflow")
	// ErrOutOfMemory is returned when a push exceeds the remaining capacity.
	ErrOutOfMemory = errors.New("region: out of memory")
	// ErrUnderflow is returned when a pop retracts past the current position.
	ErrUnderflow = errors.New("region: pop underflow")
)

// Region is a fixed-capacity bump allocator. The capacity never changes
// after Reserve; the cursor only moves through the allocator operations.
// Not goroutine-safe: a region has exactly one logical owner at a time.
type Region struct {
	mem    []byte // whole mapping, header included
	base   []byte // usable area, mem[HeaderSize:]
	pos    uint64
	unmap  func([]byte) error
	logger log.Logger
}

// Option configures a Region at reservation time.
type Option func(*Region)

// WithLogger installs a diagnostic logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(r *Region) {
		r.logger = logger
	}
}

// Reserve maps a new region with at least size usable bytes. The reservation
// is a single anonymous read+write mapping sized to size plus HeaderSize,
// rounded up to the OS page granularity, so the usable capacity can exceed
// the request. Zero and overflowing sizes fail before any OS call.
func Reserve(size uint64, opts ...Option) (*Region, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if size > math.MaxUint64-HeaderSize {
		return nil, ErrSizeOverflow
	}

	page := uint64(os.Getpagesize())
	total := size + HeaderSize
	if total > math.MaxUint64-(page-1) {
		return nil, ErrSizeOverflow
	}
	total = (total + page - 1) &^ (page - 1)
	if total > math.MaxInt {
		return nil, ErrSizeOverflow
	}

	mem, unmap, err := osReserve(int(total))
	if err != nil {
		return nil, fmt.Errorf("region: reserve %d bytes: %w", total, err)
	}

	r := &Region{
		mem:    mem,
		base:   mem[HeaderSize:],
		unmap:  unmap,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	binary.LittleEndian.PutUint64(mem[0:8], headerMagic)
	binary.LittleEndian.PutUint64(mem[8:16], uint64(len(r.base)))

	level.Debug(r.logger).Log("msg", "region reserved", "requested", size, "usable", len(r.base))

	return r, nil
}

// Release returns the entire reservation to the OS in one call. The region
// and every reference carved from it are invalid afterwards.
func (r *Region) Release() error {
	if r == nil {
		return ErrNilRegion
	}
	if r.mem == nil {
		return ErrReleased
	}

	mem := r.mem
	r.mem = nil
	r.base = nil
	r.pos = 0

	level.Debug(r.logger).Log("msg", "region released", "bytes", len(mem))

	if err := r.unmap(mem); err != nil {
		return fmt.Errorf("region: release: %w", err)
	}
	return nil
}

// Push carves size bytes off the region and returns the block, which starts
// at the pre-push position. The block contents are whatever the region held
// there before; use PushZero for cleared memory. On failure the cursor is
// unchanged.
func (r *Region) Push(size uint64) ([]byte, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	if r.mem == nil {
		return nil, ErrReleased
	}
	if size == 0 {
		return nil, ErrZeroSize
	}
	if size > uint64(len(r.base))-r.pos {
		level.Debug(r.logger).Log("msg", "capacity exhausted", "requested", size, "free", uint64(len(r.base))-r.pos)
		return nil, ErrOutOfMemory
	}

	start := r.pos
	r.pos += size
	return r.base[start:r.pos:r.pos], nil
}

// PushZero is Push with the returned block zero-filled. Nothing is zeroed
// on failure.
func (r *Region) PushZero(size uint64) ([]byte, error) {
	b, err := r.Push(size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return b, nil
}

// Pop retracts the cursor by size bytes. The region keeps no per-allocation
// sizes: callers must pop exactly what they pushed, in reverse order.
func (r *Region) Pop(size uint64) error {
	if r == nil {
		return ErrNilRegion
	}
	if r.mem == nil {
		return ErrReleased
	}
	if size > r.pos {
		level.Debug(r.logger).Log("msg", "pop underflow", "requested", size, "pos", r.pos)
		return ErrUnderflow
	}

	r.pos -= size
	return nil
}

// SetPos rolls the cursor back to pos directly, releasing everything pushed
// after it in O(1). It only retracts; advancing the cursor is an underflow
// error.
func (r *Region) SetPos(pos uint64) error {
	if r == nil {
		return ErrNilRegion
	}
	if r.mem == nil {
		return ErrReleased
	}
	if pos > r.pos {
		return ErrUnderflow
	}

	r.pos = pos
	return nil
}

// Clear resets the cursor to zero. Memory is not zeroed: bytes from earlier
// allocations remain readable and will show up as stale data in fresh
// pushes unless re-zeroed.
func (r *Region) Clear() {
	if r == nil || r.mem == nil {
		return
	}
	r.pos = 0
}

// Pos returns the current cursor, i.e. the number of bytes allocated.
func (r *Region) Pos() uint64 {
	if r == nil {
		return 0
	}
	return r.pos
}

// Cap returns the usable capacity in bytes. Zero after Release.
func (r *Region) Cap() uint64 {
	if r == nil {
		return 0
	}
	return uint64(len(r.base))
}

// Base returns the usable area as one slice spanning the whole capacity.
// The slice is valid until Release.
func (r *Region) Base() []byte {
	if r == nil {
		return nil
	}
	return r.base
}
