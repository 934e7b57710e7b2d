package drv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/modifier"
	"golang.org/x/exp/slog"
)

func (d *Driver) newBufferObject(width, height uint32, f format.Format, usage combination.UsageFlags) *BufferObject {
	bo := &BufferObject{
		Usage:  usage,
		driver: d,
	}
	bo.Width = width
	bo.Height = height
	bo.Format = f
	bo.NumPlanes = format.NumPlanes(f)

	return bo
}

// acquire takes a reference on each plane handle and starts tracking the buffer object
func (d *Driver) acquire(bo *BufferObject) {
	for plane := 0; plane < bo.NumPlanes; plane++ {
		d.handles.Increment(bo.Handles[plane])
	}

	d.buffers.Register(bo)
	bufutils.DebugValidate(bo)
}

// Create allocates a new buffer object. Flexible formats are resolved and the usage is adjusted
// as described by ResolveFormatAndUsage; the buffer object reports the resolved values.
func (d *Driver) Create(width, height uint32, f format.Format, usage combination.UsageFlags) (*BufferObject, error) {
	d.logger.Debug("Driver::Create",
		slog.Int("Width", int(width)),
		slog.Int("Height", int(height)),
		slog.String("Format", f.String()),
		slog.String("Usage", usage.String()),
	)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, resolvedFormat, resolvedUsage, err := d.findCombination(f, usage)
	if err != nil {
		return nil, err
	}

	err = d.checkTextureSize(width, height)
	if err != nil {
		return nil, err
	}

	bo := d.newBufferObject(width, height, resolvedFormat, resolvedUsage)
	err = d.backend.Create(bo, width, height, resolvedFormat, resolvedUsage)
	if err != nil {
		return nil, errors.Wrapf(err, "backend %s failed to create a %dx%d %s buffer", d.backend.Name(), width, height, resolvedFormat)
	}

	d.acquire(bo)
	return bo, nil
}

// CreateWithModifiers allocates a new buffer object whose layout is one of the provided
// modifiers. The backend chooses among them; ErrNotSupportedByBackend is returned if it cannot
// allocate with explicit modifiers.
func (d *Driver) CreateWithModifiers(width, height uint32, f format.Format, modifiers []modifier.Modifier) (*BufferObject, error) {
	d.logger.Debug("Driver::CreateWithModifiers",
		slog.Int("Width", int(width)),
		slog.Int("Height", int(height)),
		slog.String("Format", f.String()),
		slog.Int("Modifiers", len(modifiers)),
	)

	creator, ok := d.backend.(ModifierCreator)
	if !ok {
		return nil, errors.Wrapf(ErrNotSupportedByBackend, "backend %s cannot create with modifiers", d.backend.Name())
	}

	if len(modifiers) == 0 {
		return nil, errors.New("attempted to create a buffer object from an empty modifier list")
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	err := d.checkTextureSize(width, height)
	if err != nil {
		return nil, err
	}

	bo := d.newBufferObject(width, height, f, combination.UseNone)
	err = creator.CreateWithModifiers(bo, width, height, f, modifiers)
	if err != nil {
		return nil, errors.Wrapf(err, "backend %s failed to create a %dx%d %s buffer with modifiers", d.backend.Name(), width, height, f)
	}

	d.acquire(bo)
	return bo, nil
}

// Import wraps file descriptors exported by another process or driver instance in a new buffer
// object. The geometry is rebuilt from data. A plane's size is the distance to the next plane's
// offset when that offset is non-zero, otherwise the rest of the plane's file descriptor.
func (d *Driver) Import(data *ImportData) (*BufferObject, error) {
	d.logger.Debug("Driver::Import",
		slog.Int("Width", int(data.Width)),
		slog.Int("Height", int(data.Height)),
		slog.String("Format", data.Format.String()),
		slog.String("Modifier", data.Modifier.String()),
	)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	bo := d.newBufferObject(data.Width, data.Height, data.Format, data.Usage)
	bo.Tiling = data.Tiling
	bo.Modifier = data.Modifier
	bo.NumPlanes = d.NumPlanesForModifier(data.Format, data.Modifier)
	if bo.NumPlanes == 0 {
		return nil, errors.Wrapf(format.ErrUnsupportedFormat, "format %s", data.Format)
	}

	err := d.sizeImportedPlanes(bo, data)
	if err != nil {
		return nil, err
	}

	err = d.backend.Import(bo, data)
	if err != nil {
		return nil, errors.Wrapf(err, "backend %s failed to import a %dx%d %s buffer", d.backend.Name(), data.Width, data.Height, data.Format)
	}

	d.acquire(bo)
	return bo, nil
}

func (d *Driver) sizeImportedPlanes(bo *BufferObject, data *ImportData) error {
	bo.TotalSize = 0

	for plane := 0; plane < bo.NumPlanes; plane++ {
		bo.Strides[plane] = data.Strides[plane]
		bo.Offsets[plane] = data.Offsets[plane]

		end, err := fdSize(data.FDs[plane])
		if err != nil {
			return errors.Wrapf(err, "failed to size the fd for plane %d", plane)
		}

		if uint64(data.Offsets[plane]) > end {
			return errors.Newf("plane %d at offset %d is past the end of its %d byte fd", plane, data.Offsets[plane], end)
		}

		// A plane followed by one at a non-zero offset ends where the next plane begins, whether or
		// not the two share an fd number
		if plane+1 < bo.NumPlanes && data.Offsets[plane+1] != 0 {
			if data.Offsets[plane+1] < data.Offsets[plane] {
				return errors.Newf("plane %d at offset %d begins before plane %d at offset %d", plane+1, data.Offsets[plane+1], plane, data.Offsets[plane])
			}

			bo.Sizes[plane] = data.Offsets[plane+1] - data.Offsets[plane]
			if uint64(data.Offsets[plane+1]) > end {
				return errors.Newf("plane %d ends at offset %d, past the end of its %d byte fd", plane, data.Offsets[plane+1], end)
			}
		} else {
			size := end - uint64(data.Offsets[plane])
			if size > math.MaxUint32 {
				return errors.Newf("plane %d spans %d bytes of its fd, which does not fit a plane size", plane, size)
			}

			bo.Sizes[plane] = uint32(size)
		}

		bo.TotalSize += uint64(bo.Sizes[plane])
	}

	return nil
}

// Destroy drops this buffer object's references to its plane handles. If that leaves every
// handle unreferenced, all mappings of the handles are torn down and the backend releases them;
// handles still shared with other buffer objects stay alive.
func (d *Driver) Destroy(bo *BufferObject) error {
	d.logger.Debug("Driver::Destroy", slog.String("Format", bo.Format.String()), slog.Int("Planes", bo.NumPlanes))

	if bo.driver != d {
		panic("attempted to destroy a buffer object with a driver that does not own it")
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	for plane := 0; plane < bo.NumPlanes; plane++ {
		d.handles.Decrement(bo.Handles[plane])
	}

	var remaining uint32
	for plane := 0; plane < bo.NumPlanes; plane++ {
		remaining += d.handles.Get(bo.Handles[plane])
	}

	d.buffers.Unregister(bo)
	bo.driver = nil

	// The backend releases every plane handle at once, so nothing is released while any of them is
	// still referenced elsewhere, including handles this buffer object held exclusively.
	if remaining > 0 {
		return nil
	}

	mappingErr := d.mappings.DestroyFor(bo.planeHandles(), d.unmapFunc(bo))
	if mappingErr != nil {
		d.logger.Error("failed to tear down mappings of destroyed buffer object", slog.Any("error", mappingErr))
	}

	err := d.backend.Destroy(bo)
	if err != nil {
		return errors.Wrapf(err, "backend %s failed to destroy buffer object", d.backend.Name())
	}

	return mappingErr
}
