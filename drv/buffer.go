package drv

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/ledger"
	"github.com/vkngwrapper/gralloc/modifier"
)

// ImportData describes a buffer object allocated elsewhere and shared with this process as one
// file descriptor per plane. Planes may share a file descriptor.
type ImportData struct {
	FDs      [format.MaxPlanes]int
	Width    uint32
	Height   uint32
	Format   format.Format
	Modifier modifier.Modifier
	Tiling   uint32
	Usage    combination.UsageFlags

	Strides [format.MaxPlanes]uint32
	Offsets [format.MaxPlanes]uint32
}

// BufferObject is one created or imported buffer. Its geometry and plane handles are populated by
// the backend and must not be modified once Create or Import has returned.
type BufferObject struct {
	format.Geometry
	Usage   combination.UsageFlags
	Handles [format.MaxPlanes]ledger.Handle

	// Priv is backend-private state attached to the buffer object
	Priv any

	driver *Driver
	next   *BufferObject
	prev   *BufferObject
}

// Driver returns the driver that owns this buffer object
func (bo *BufferObject) Driver() *Driver {
	return bo.driver
}

// SetLayout copies the plane layout resolved for the buffer object into it, leaving its
// dimensions, format, tiling and modifier untouched
func (bo *BufferObject) SetLayout(layout format.Geometry) {
	bo.NumPlanes = layout.NumPlanes
	bo.Strides = layout.Strides
	bo.Offsets = layout.Offsets
	bo.Sizes = layout.Sizes
	bo.TotalSize = layout.TotalSize
}

// PlaneHandle returns the handle backing the requested plane. Requesting a plane index outside
// the buffer's plane count panics.
func (bo *BufferObject) PlaneHandle(plane int) ledger.Handle {
	bufutils.CheckPlane(plane, bo.NumPlanes)
	return bo.Handles[plane]
}

// NumBuffers returns the number of distinct handles backing the planes of this buffer object
func (bo *BufferObject) NumBuffers() int {
	count := 0
	for plane := 0; plane < bo.NumPlanes; plane++ {
		if bo.firstPlaneWithHandle(bo.Handles[plane]) == plane {
			count++
		}
	}
	return count
}

func (bo *BufferObject) firstPlaneWithHandle(handle ledger.Handle) int {
	for plane := 0; plane < bo.NumPlanes; plane++ {
		if bo.Handles[plane] == handle {
			return plane
		}
	}
	return -1
}

// Validate verifies that every plane lies within the buffer object's total size. Backends may
// report a total size larger than the planes require.
func (bo *BufferObject) Validate() error {
	if bo.NumPlanes < 1 || bo.NumPlanes > format.MaxPlanes {
		return errors.Newf("buffer object has %d planes, which is outside [1, %d]", bo.NumPlanes, format.MaxPlanes)
	}

	for plane := 0; plane < bo.NumPlanes; plane++ {
		end := uint64(bo.Offsets[plane]) + uint64(bo.Sizes[plane])
		if end > bo.TotalSize {
			return errors.Newf("plane %d ends at %d, past the total size %d", plane, end, bo.TotalSize)
		}
	}

	return nil
}

func (bo *BufferObject) planeHandles() []ledger.Handle {
	return bo.Handles[:bo.NumPlanes]
}

func (bo *BufferObject) printParameters(json *jwriter.ObjectState) {
	bo.Geometry.PrintParameters(json)
	json.Name("Usage").String(bo.Usage.String())
	json.Name("Buffers").Int(bo.NumBuffers())
}

func (bo *BufferObject) setNext(next *BufferObject) {
	bo.next = next
}

func (bo *BufferObject) setPrev(prev *BufferObject) {
	bo.prev = prev
}
