package dumb

import "github.com/vkngwrapper/gralloc/ledger"

// CreatedDumb is the kernel's answer to a dumb buffer allocation request
type CreatedDumb struct {
	Handle uint32
	Pitch  uint32
	Size   uint64
}

// Device is an open DRM node. Each method issues one ioctl or memory mapping call.
type Device interface {
	CreateDumb(width, height, bitsPerPixel uint32) (CreatedDumb, error)
	DestroyDumb(handle uint32) error
	// MapDumb returns the fake offset to pass to Mmap for the handle
	MapDumb(handle uint32) (uint64, error)
	Mmap(offset uint64, length int, flags ledger.MapFlags) ([]byte, error)
	Munmap(data []byte) error

	PrimeFDToHandle(fd int) (uint32, error)
	PrimeHandleToFD(handle uint32) (int, error)
	GEMClose(handle uint32) error

	Close() error
}
