//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osReserve(size int) ([]byte, func([]byte) error, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory when first touched, matching Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return mem, func([]byte) error {
		// MEM_RELEASE frees the entire reservation.
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}
