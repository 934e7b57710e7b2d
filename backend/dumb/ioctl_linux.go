//go:build linux

package dumb

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/ledger"
	"golang.org/x/sys/unix"
)

// DRM ioctl numbers, using the generic Linux ioctl encoding:
// _IOWR(type, nr, size) = 0xC0000000 | (size << 16) | (type << 8) | nr
const (
	// DRM_IOCTL_GEM_CLOSE = _IOW('d', 0x09, struct drm_gem_close)
	ioctlGEMClose = 0x40086409
	// DRM_IOCTL_PRIME_HANDLE_TO_FD = _IOWR('d', 0x2d, struct drm_prime_handle)
	ioctlPrimeHandleToFD = 0xc00c642d
	// DRM_IOCTL_PRIME_FD_TO_HANDLE = _IOWR('d', 0x2e, struct drm_prime_handle)
	ioctlPrimeFDToHandle = 0xc00c642e
	// DRM_IOCTL_MODE_CREATE_DUMB = _IOWR('d', 0xb2, struct drm_mode_create_dumb)
	ioctlModeCreateDumb = 0xc02064b2
	// DRM_IOCTL_MODE_MAP_DUMB = _IOWR('d', 0xb3, struct drm_mode_map_dumb)
	ioctlModeMapDumb = 0xc01064b3
	// DRM_IOCTL_MODE_DESTROY_DUMB = _IOWR('d', 0xb4, struct drm_mode_destroy_dumb)
	ioctlModeDestroyDumb = 0xc00464b4
)

type sysCreateDumb struct {
	height, width uint32
	bpp           uint32
	flags         uint32

	// returned values
	handle uint32
	pitch  uint32
	size   uint64
}

type sysMapDumb struct {
	handle uint32
	pad    uint32
	offset uint64
}

type sysDestroyDumb struct {
	handle uint32
}

type sysPrimeHandle struct {
	handle uint32
	flags  uint32
	fd     int32
}

type sysGEMClose struct {
	handle uint32
	pad    uint32
}

type drmDevice struct {
	fd int
}

// OpenDevice opens a DRM card or render node, such as /dev/dri/card0
func OpenDevice(path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	return &drmDevice{fd: fd}, nil
}

func (d *drmDevice) ioctl(request uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), request, uintptr(arg))
		if errno == unix.EINTR || errno == unix.EAGAIN {
			continue
		}
		if errno != 0 {
			return errno
		}
		return nil
	}
}

func (d *drmDevice) CreateDumb(width, height, bitsPerPixel uint32) (CreatedDumb, error) {
	create := sysCreateDumb{
		width:  width,
		height: height,
		bpp:    bitsPerPixel,
	}

	err := d.ioctl(ioctlModeCreateDumb, unsafe.Pointer(&create))
	if err != nil {
		return CreatedDumb{}, errors.Wrap(err, "DRM_IOCTL_MODE_CREATE_DUMB")
	}

	return CreatedDumb{
		Handle: create.handle,
		Pitch:  create.pitch,
		Size:   create.size,
	}, nil
}

func (d *drmDevice) DestroyDumb(handle uint32) error {
	destroy := sysDestroyDumb{handle: handle}
	return errors.Wrap(d.ioctl(ioctlModeDestroyDumb, unsafe.Pointer(&destroy)), "DRM_IOCTL_MODE_DESTROY_DUMB")
}

func (d *drmDevice) MapDumb(handle uint32) (uint64, error) {
	mapDumb := sysMapDumb{handle: handle}
	err := d.ioctl(ioctlModeMapDumb, unsafe.Pointer(&mapDumb))
	if err != nil {
		return 0, errors.Wrap(err, "DRM_IOCTL_MODE_MAP_DUMB")
	}

	return mapDumb.offset, nil
}

func protection(flags ledger.MapFlags) int {
	if flags&ledger.MapWrite != 0 {
		return unix.PROT_READ | unix.PROT_WRITE
	}

	return unix.PROT_READ
}

func (d *drmDevice) Mmap(offset uint64, length int, flags ledger.MapFlags) ([]byte, error) {
	return unix.Mmap(d.fd, int64(offset), length, protection(flags), unix.MAP_SHARED)
}

func (d *drmDevice) Munmap(data []byte) error {
	return unix.Munmap(data)
}

func (d *drmDevice) PrimeFDToHandle(fd int) (uint32, error) {
	prime := sysPrimeHandle{fd: int32(fd)}
	err := d.ioctl(ioctlPrimeFDToHandle, unsafe.Pointer(&prime))
	if err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_PRIME_FD_TO_HANDLE (fd=%d)", fd)
	}

	return prime.handle, nil
}

func (d *drmDevice) PrimeHandleToFD(handle uint32) (int, error) {
	prime := sysPrimeHandle{
		handle: handle,
		flags:  unix.O_CLOEXEC | unix.O_RDWR,
	}
	err := d.ioctl(ioctlPrimeHandleToFD, unsafe.Pointer(&prime))
	if err != nil {
		return -1, errors.Wrapf(err, "DRM_IOCTL_PRIME_HANDLE_TO_FD (handle=%x)", handle)
	}

	return int(prime.fd), nil
}

func (d *drmDevice) GEMClose(handle uint32) error {
	gemClose := sysGEMClose{handle: handle}
	return errors.Wrapf(d.ioctl(ioctlGEMClose, unsafe.Pointer(&gemClose)), "DRM_IOCTL_GEM_CLOSE (handle=%x)", handle)
}

func (d *drmDevice) Close() error {
	return unix.Close(d.fd)
}
