// Package region implements a fixed-capacity bump allocator (memory region)
// backed by a single OS reservation.
//
// # Overview
//
// A region reserves one contiguous block of virtual memory up front and
// carves allocations from it by advancing a single cursor. Deallocation is
// strictly last-in-first-out: pop exactly what was pushed, in reverse order,
// or roll the cursor back wholesale. This is particularly useful for:
//
//   - Phase-scoped allocations with batch cleanup
//   - Many short-lived objects without per-object bookkeeping
//   - Predictable O(1) allocation and release
//
// # Basic Usage
//
//	r, err := region.Reserve(1 << 20) // at least 1 MiB usable
//	if err != nil {
//		return err
//	}
//	defer r.Release() // Return the reservation to the OS
//
//	// Allocate raw bytes
//	buf, err := r.Push(1024)
//
//	// Allocate typed values
//	ptr, err := region.PushStruct[MyStruct](r)
//	slice, err := region.PushSlice[int](r, 100)
//
//	// Release in reverse order, or all at once
//	err = r.Pop(1024)
//	r.Clear()
//
// # Scratch Scopes
//
// A Scratch brackets a scope of temporary allocations so they can be
// discarded in one step, however many pushes happened inside:
//
//	scratch := r.ScratchBegin()
//	defer scratch.End()
//
// # Memory Layout
//
// The reservation starts with a small in-band header (HeaderSize bytes)
// recording a magic marker and the usable capacity; the usable area follows
// immediately after. The total is rounded up to the OS page size, so the
// usable capacity can exceed the requested size. The capacity is fixed for
// the lifetime of the region: when more memory is needed, reserve another
// independent region rather than growing this one.
//
// # Thread Safety
//
// Regions perform no internal synchronization. A region's cursor has exactly
// one logical owner; share regions across goroutines only behind external
// mutual exclusion, or give each goroutine its own region.
//
// # Important Notes
//
//   - Allocated memory is only valid until it is popped or the region released
//   - Freeing an earlier allocation while later ones are live is unsupported
//   - Memory is not zeroed unless pushed with PushZero or the Zero variants
//   - The cursor advances by exactly the requested size; no alignment padding
//
// # Diagnostics
//
// Reserve accepts an optional go-kit logger for debug events (reservation,
// release, exhausted pushes, underflowing pops):
//
//	r, err := region.Reserve(size, region.WithLogger(logger))
package region
