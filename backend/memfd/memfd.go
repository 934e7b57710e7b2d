//go:build linux

package memfd

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/drv"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/ledger"
	"github.com/vkngwrapper/gralloc/modifier"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

// strideAlignment matches the ARM L1 cache line size
const strideAlignment = 64

const defaultName = "gralloc-bo"

var renderTargetFormats = []format.Format{
	format.ABGR8888,
	format.ARGB8888,
	format.XBGR8888,
	format.XRGB8888,
}

var textureOnlyFormats = []format.Format{
	format.NV12,
	format.YVU420,
}

var modifierOrder = []modifier.Modifier{
	modifier.Linear,
}

// Options contains optional settings for the memfd backend
type Options struct {
	// Name labels every memfd this backend creates, as shown in /proc/<pid>/fd. Defaults to
	// "gralloc-bo".
	Name string
}

// Backend allocates buffer objects in anonymous shared memory. Each buffer object is one sealed
// memfd whose file descriptor doubles as the plane handle, so buffers can be passed to other
// processes over unix sockets and imported there.
type Backend struct {
	logger *slog.Logger
	name   string
}

var _ drv.Backend = &Backend{}
var _ drv.ModifierCreator = &Backend{}
var _ drv.PlaneExporter = &Backend{}

func New(logger *slog.Logger, options Options) *Backend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	name := options.Name
	if name == "" {
		name = defaultName
	}

	return &Backend{
		logger: logger,
		name:   name,
	}
}

func (b *Backend) Name() string {
	return "memfd"
}

func (b *Backend) Init(registry *combination.Registry) error {
	registry.AddMany(renderTargetFormats, combination.LinearMetadata, combination.UseRenderMask|combination.UseScanout)
	registry.AddMany(textureOnlyFormats, combination.LinearMetadata, combination.UseTextureMask)

	registry.WidenLinear()
	return nil
}

func (b *Backend) Close() error {
	return nil
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
	if format.NumPlanes(f) == 0 {
		return errors.Wrapf(format.ErrUnsupportedFormat, "format %s", f)
	}

	stride := bufutils.AlignUp[uint32](format.Stride(f, width, 0), strideAlignment)
	layout, err := format.Resolve(f, stride, height)
	if err != nil {
		return err
	}

	fd, err := b.allocate(int64(layout.TotalSize))
	if err != nil {
		b.logger.Error("failed to allocate shared memory", slog.Int("Size", int(layout.TotalSize)), slog.Any("error", err))
		return err
	}

	bo.SetLayout(layout)
	bo.Modifier = modifier.Linear
	for plane := 0; plane < bo.NumPlanes; plane++ {
		bo.Handles[plane] = ledger.Handle(fd)
	}

	return nil
}

func (b *Backend) allocate(size int64) (int, error) {
	fd, err := unix.MemfdCreate(b.name, unix.MFD_CLOEXEC|unix.MFD_ALLOW_SEALING)
	if err != nil {
		return -1, errors.Wrap(err, "memfd_create")
	}

	err = unix.Ftruncate(fd, size)
	if err != nil {
		_ = unix.Close(fd)
		return -1, errors.Wrapf(err, "failed to size memfd to %d bytes", size)
	}

	// Importers must never see the buffer change size
	_, err = unix.FcntlInt(uintptr(fd), unix.F_ADD_SEALS, unix.F_SEAL_SHRINK|unix.F_SEAL_GROW|unix.F_SEAL_SEAL)
	if err != nil {
		_ = unix.Close(fd)
		return -1, errors.Wrap(err, "failed to seal memfd")
	}

	return fd, nil
}

func duplicate(fd int) (int, error) {
	return unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
}

func (b *Backend) Import(bo *drv.BufferObject, data *drv.ImportData) error {
	for plane := 0; plane < bo.NumPlanes; plane++ {
		// Planes sharing a file descriptor share a handle
		if plane > 0 && data.FDs[plane] == data.FDs[plane-1] {
			bo.Handles[plane] = bo.Handles[plane-1]
			continue
		}

		fd, err := duplicate(data.FDs[plane])
		if err != nil {
			b.logger.Error("failed to import plane", slog.Int("Plane", plane), slog.Int("FD", data.FDs[plane]), slog.Any("error", err))

			closeErr := closeHandles(bo.Handles[:plane])
			if closeErr != nil {
				b.logger.Error("failed to release imported planes", slog.Any("error", closeErr))
			}
			return errors.Wrapf(err, "failed to duplicate fd %d", data.FDs[plane])
		}

		bo.Handles[plane] = ledger.Handle(fd)
	}

	bo.Tiling = data.Tiling
	return nil
}

// closeHandles closes each distinct handle once
func closeHandles(handles []ledger.Handle) error {
	var err error
	for index, handle := range handles {
		if index > 0 && handles[index-1] == handle {
			continue
		}

		err = errors.CombineErrors(err, unix.Close(int(handle)))
	}

	return err
}

func (b *Backend) Map(bo *drv.BufferObject, vma *ledger.VMA, plane int, flags ledger.MapFlags) error {
	handle := bo.Handles[plane]

	// The mapping starts at the beginning of the fd and covers every plane stored in it
	var length uint64
	for i := 0; i < bo.NumPlanes; i++ {
		if bo.Handles[i] != handle {
			continue
		}

		end := uint64(bo.Offsets[i]) + uint64(bo.Sizes[i])
		if end > length {
			length = end
		}
	}

	prot := unix.PROT_READ
	if flags&ledger.MapWrite != 0 {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(handle), 0, int(length), prot, unix.MAP_SHARED)
	if err != nil {
		b.logger.Error("failed to map shared memory", slog.Int("Length", int(length)), slog.Any("error", err))
		return errors.Wrapf(err, "failed to mmap %d bytes", length)
	}

	vma.Data = data
	vma.Length = length
	return nil
}

func (b *Backend) Unmap(bo *drv.BufferObject, vma *ledger.VMA) error {
	return unix.Munmap(vma.Data)
}

func (b *Backend) Destroy(bo *drv.BufferObject) error {
	return closeHandles(bo.Handles[:bo.NumPlanes])
}

func (b *Backend) PlaneFD(bo *drv.BufferObject, plane int) (int, error) {
	return duplicate(int(bo.Handles[plane]))
}
