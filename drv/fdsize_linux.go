//go:build linux

package drv

import (
	"io"

	"golang.org/x/sys/unix"
)

// fdSize returns the size of the object behind fd by seeking to its end. dma-buf file
// descriptors report a zero size to fstat but support seeking.
func fdSize(fd int) (uint64, error) {
	end, err := unix.Seek(fd, 0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	_, err = unix.Seek(fd, 0, io.SeekStart)
	if err != nil {
		return 0, err
	}

	return uint64(end), nil
}
