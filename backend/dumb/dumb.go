package dumb

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/drv"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/ledger"
	"github.com/vkngwrapper/gralloc/modifier"
	"golang.org/x/exp/slog"
)

var renderTargetFormats = []format.Format{
	format.ARGB8888,
	format.XRGB8888,
	format.ABGR8888,
	format.XBGR8888,
	format.RGB565,
}

var textureOnlyFormats = []format.Format{
	format.NV12,
	format.YVU420,
	format.YVU420Android,
}

var modifierOrder = []modifier.Modifier{
	modifier.Linear,
}

// Options contains optional settings for the dumb buffer backend
type Options struct {
	// Quirks adjusts the dimensions requested from the kernel
	Quirks format.Quirks
}

type origin int

const (
	originCreated origin = iota
	originImported
)

// Backend allocates linear buffers with the generic DRM dumb buffer ioctls, which every KMS
// driver supports. Buffers from other processes are imported through PRIME.
type Backend struct {
	logger *slog.Logger
	device Device
	quirks format.Quirks
}

var _ drv.Backend = &Backend{}
var _ drv.ModifierCreator = &Backend{}
var _ drv.PlaneExporter = &Backend{}

// New creates a dumb buffer backend that issues ioctls against device. The backend takes
// ownership of device and closes it when the driver is closed.
func New(logger *slog.Logger, device Device, options Options) *Backend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	return &Backend{
		logger: logger,
		device: device,
		quirks: options.Quirks,
	}
}

func (b *Backend) Name() string {
	return "dumb"
}

func (b *Backend) Init(registry *combination.Registry) error {
	registry.AddMany(renderTargetFormats, combination.LinearMetadata, combination.UseRenderMask)
	registry.AddMany(textureOnlyFormats, combination.LinearMetadata, combination.UseTextureMask)

	// Video encoders read YV12 written through a CPU mapping
	registry.Widen(format.YVU420, combination.LinearMetadata, combination.UseHWVideoEncoder)
	registry.Widen(format.YVU420Android, combination.LinearMetadata, combination.UseHWVideoEncoder)
	registry.Widen(format.NV12, combination.LinearMetadata, combination.UseHWVideoDecoder|combination.UseScanout|combination.UseHWVideoEncoder)

	registry.WidenLinear()
	return nil
}

func (b *Backend) Close() error {
	return b.device.Close()
}

func (b *Backend) Create(bo *drv.BufferObject, width, height uint32, f format.Format, usage combination.UsageFlags) error {
	return b.createLinear(bo, width, height, f)
}

func (b *Backend) CreateWithModifiers(bo *drv.BufferObject, width, height uint32, f format.Format, modifiers []modifier.Modifier) error {
	// Candidates without a supported layout fall back to linear
	picked := modifier.Pick(modifiers, modifierOrder)
	b.logger.Debug("Backend::CreateWithModifiers", slog.String("Modifier", picked.String()))

	return b.createLinear(bo, width, height, f)
}

func (b *Backend) createLinear(bo *drv.BufferObject, width, height uint32, f format.Format) error {
	dimensions, err := format.NewDumbDimensions(f, width, height, b.quirks)
	if err != nil {
		return err
	}

	created, err := b.device.CreateDumb(dimensions.Width, dimensions.Height, dimensions.BitsPerPixel)
	if err != nil {
		b.logger.Error("failed to create dumb buffer",
			slog.Int("Width", int(dimensions.Width)),
			slog.Int("Height", int(dimensions.Height)),
			slog.Any("error", err),
		)
		return err
	}

	// The chroma planes are laid out against the visible height, not the allocation height
	layout, err := format.Resolve(f, created.Pitch, height)
	if err != nil {
		destroyErr := b.device.DestroyDumb(created.Handle)
		if destroyErr != nil {
			b.logger.Error("failed to release dumb buffer after layout failed", slog.Any("error", destroyErr))
		}
		return err
	}

	bo.SetLayout(layout)
	bo.TotalSize = created.Size
	bo.Modifier = modifier.Linear
	bo.Priv = originCreated
	for plane := 0; plane < bo.NumPlanes; plane++ {
		bo.Handles[plane] = ledger.Handle(created.Handle)
	}

	return nil
}

func (b *Backend) Import(bo *drv.BufferObject, data *drv.ImportData) error {
	for plane := 0; plane < bo.NumPlanes; plane++ {
		handle, err := b.device.PrimeFDToHandle(data.FDs[plane])
		if err != nil {
			b.logger.Error("failed to import plane", slog.Int("Plane", plane), slog.Int("FD", data.FDs[plane]), slog.Any("error", err))

			// Release the planes opened so far
			closeErr := b.closeHandles(bo.Handles[:plane])
			if closeErr != nil {
				b.logger.Error("failed to release imported planes", slog.Any("error", closeErr))
			}
			return err
		}

		bo.Handles[plane] = ledger.Handle(handle)
	}

	bo.Tiling = data.Tiling
	bo.Priv = originImported
	return nil
}

// closeHandles closes each distinct GEM handle once
func (b *Backend) closeHandles(handles []ledger.Handle) error {
	var err error
	for index, handle := range handles {
		if firstIndex(handles, handle) != index {
			continue
		}

		err = errors.CombineErrors(err, b.device.GEMClose(uint32(handle)))
	}

	return err
}

func firstIndex(handles []ledger.Handle, handle ledger.Handle) int {
	for index := range handles {
		if handles[index] == handle {
			return index
		}
	}
	return -1
}

func (b *Backend) Map(bo *drv.BufferObject, vma *ledger.VMA, plane int, flags ledger.MapFlags) error {
	handle := bo.Handles[plane]

	offset, err := b.device.MapDumb(uint32(handle))
	if err != nil {
		b.logger.Error("failed to prepare dumb buffer mapping", slog.Any("error", err))
		return err
	}

	// Map every plane that shares the handle at once
	var length uint64
	for i := 0; i < bo.NumPlanes; i++ {
		if bo.Handles[i] == handle {
			length += uint64(bo.Sizes[i])
		}
	}

	data, err := b.device.Mmap(offset, int(length), flags)
	if err != nil {
		return errors.Wrapf(err, "failed to mmap %d bytes", length)
	}

	vma.Data = data
	vma.Length = length
	return nil
}

func (b *Backend) Unmap(bo *drv.BufferObject, vma *ledger.VMA) error {
	return b.device.Munmap(vma.Data)
}

func (b *Backend) Destroy(bo *drv.BufferObject) error {
	if bo.Priv == originImported {
		return b.closeHandles(bo.Handles[:bo.NumPlanes])
	}

	err := b.device.DestroyDumb(uint32(bo.Handles[0]))
	if err != nil {
		b.logger.Error("failed to destroy dumb buffer", slog.Any("error", err))
	}
	return err
}

func (b *Backend) PlaneFD(bo *drv.BufferObject, plane int) (int, error) {
	return b.device.PrimeHandleToFD(uint32(bo.Handles[plane]))
}
