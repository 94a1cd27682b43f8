package region

import (
	"math"
	"unsafe"
)

// PushStruct carves space for one T and returns a pointer into the region.
// The memory is not zeroed; use PushStructZero for a clean value. The
// pointer is valid until the allocation is popped or the region released.
func PushStruct[T any](r *Region) (*T, error) {
	var zero T
	b, err := r.Push(uint64(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// PushStructZero is PushStruct with the memory zero-filled.
func PushStructZero[T any](r *Region) (*T, error) {
	var zero T
	b, err := r.PushZero(uint64(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// PushSlice carves space for n elements of T and returns them as a slice.
// Element contents are not zeroed. The count is checked against multiply
// overflow before any cursor movement.
//
// The cursor advances by exactly sizeof(T)*n: the region inserts no
// alignment padding, so interleaving differently sized element types can
// misalign later typed pushes. The base itself is page-aligned.
func PushSlice[T any](r *Region, n uint64) ([]T, error) {
	size, err := sliceSize[T](n)
	if err != nil {
		return nil, err
	}
	b, err := r.Push(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// PushSliceZero is PushSlice with the memory zero-filled.
func PushSliceZero[T any](r *Region, n uint64) ([]T, error) {
	size, err := sliceSize[T](n)
	if err != nil {
		return nil, err
	}
	b, err := r.PushZero(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// PopStruct retracts one T from the region. LIFO discipline applies: the
// struct must be the most recent live allocation.
func PopStruct[T any](r *Region) error {
	var zero T
	return r.Pop(uint64(unsafe.Sizeof(zero)))
}

// PopSlice retracts n elements of T from the region.
func PopSlice[T any](r *Region, n uint64) error {
	size, err := sliceSize[T](n)
	if err != nil {
		return err
	}
	return r.Pop(size)
}

func sliceSize[T any](n uint64) (uint64, error) {
	var zero T
	esize := uint64(unsafe.Sizeof(zero))
	if esize > 0 && n > math.MaxUint64/esize {
		return 0, ErrSizeOverflow
	}
	return esize * n, nil
}
