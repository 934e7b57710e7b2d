package drv

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/ledger"
	"golang.org/x/exp/slog"
)

func (d *Driver) unmapFunc(bo *BufferObject) ledger.UnmapFunc {
	return func(vma *ledger.VMA) error {
		return d.backend.Unmap(bo, vma)
	}
}

func planeData(bo *BufferObject, vma *ledger.VMA, plane int) ([]byte, error) {
	end := uint64(bo.Offsets[plane]) + uint64(bo.Sizes[plane])
	if end > uint64(len(vma.Data)) {
		return nil, errors.Newf("plane %d ends at byte %d but only %d bytes were mapped", plane, end, len(vma.Data))
	}

	return vma.Data[bo.Offsets[plane]:], nil
}

// Map returns a CPU mapping of the buffer object's plane, along with the plane's bytes. A request
// with the same handle, flags and rect as a live mapping returns that mapping with an extra lease.
// A request for a different rect shares the live CPU mapping of the handle if one exists with
// the same flags. Every successful call must be balanced by a call to Unmap.
func (d *Driver) Map(bo *BufferObject, rect ledger.Rect, flags ledger.MapFlags, plane int) (*ledger.Mapping, []byte, error) {
	d.logger.Debug("Driver::Map", slog.Int("Plane", plane), slog.String("Flags", flags.String()))

	bufutils.CheckPlane(plane, bo.NumPlanes)
	if flags&ledger.MapReadWrite == 0 {
		return nil, nil, errors.New("attempted to map a buffer object without read or write access")
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	handle := bo.Handles[plane]

	mapping := d.mappings.FindExact(handle, flags, rect)
	if mapping != nil {
		mapping.Acquire()
	} else {
		vma := d.mappings.FindVMA(handle, flags)
		if vma == nil {
			vma = ledger.NewVMA(handle, flags)
			err := d.backend.Map(bo, vma, plane, flags)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "backend %s failed to map plane %d", d.backend.Name(), plane)
			}
		}

		mapping = d.mappings.Append(vma, rect)
	}

	data, err := planeData(bo, mapping.VMA, plane)
	if err == nil {
		err = d.invalidate(bo, mapping)
	}
	if err != nil {
		releaseErr := d.mappings.Release(mapping, d.unmapFunc(bo))
		if releaseErr != nil {
			d.logger.Error("failed to release mapping after map failed", slog.Any("error", releaseErr))
		}
		return nil, nil, err
	}

	return mapping, data, nil
}

// Unmap drops one lease on a mapping returned by Map. Mappings with write access are flushed
// first. The CPU mapping is released once no mapping record refers to it.
func (d *Driver) Unmap(bo *BufferObject, mapping *ledger.Mapping) error {
	d.logger.Debug("Driver::Unmap", slog.String("Flags", mapping.VMA.Flags.String()))

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if mapping.VMA.Flags&ledger.MapWrite != 0 {
		err := d.flush(bo, mapping)
		if err != nil {
			return err
		}
	}

	return d.mappings.Release(mapping, d.unmapFunc(bo))
}

func (d *Driver) invalidate(bo *BufferObject, mapping *ledger.Mapping) error {
	controller, ok := d.backend.(CacheController)
	if !ok {
		return nil
	}

	err := controller.Invalidate(bo, mapping)
	if err != nil {
		return errors.Wrapf(err, "backend %s failed to invalidate mapping", d.backend.Name())
	}

	return nil
}

func (d *Driver) flush(bo *BufferObject, mapping *ledger.Mapping) error {
	controller, ok := d.backend.(CacheController)
	if !ok {
		return nil
	}

	err := controller.Flush(bo, mapping)
	if err != nil {
		return errors.Wrapf(err, "backend %s failed to flush mapping", d.backend.Name())
	}

	return nil
}

// Invalidate makes device writes to the mapped buffer visible to the CPU. It is a no-op for
// backends with coherent mappings.
func (d *Driver) Invalidate(bo *BufferObject, mapping *ledger.Mapping) error {
	d.logger.Debug("Driver::Invalidate")

	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.invalidate(bo, mapping)
}

// Flush makes CPU writes to the mapped buffer visible to the device. It is a no-op for backends
// with coherent mappings.
func (d *Driver) Flush(bo *BufferObject, mapping *ledger.Mapping) error {
	d.logger.Debug("Driver::Flush")

	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.flush(bo, mapping)
}

// PlaneFD exports the plane as a new file descriptor owned by the caller
func (d *Driver) PlaneFD(bo *BufferObject, plane int) (int, error) {
	d.logger.Debug("Driver::PlaneFD", slog.Int("Plane", plane))

	bufutils.CheckPlane(plane, bo.NumPlanes)

	exporter, ok := d.backend.(PlaneExporter)
	if !ok {
		return -1, errors.Wrapf(ErrNotSupportedByBackend, "backend %s cannot export planes", d.backend.Name())
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	fd, err := exporter.PlaneFD(bo, plane)
	if err != nil {
		return -1, errors.Wrapf(err, "backend %s failed to export plane %d", d.backend.Name(), plane)
	}

	return fd, nil
}
