//go:build linux

package drv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/drv"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/modifier"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

func sizedFile(t *testing.T, size int64) *os.File {
	file, err := os.Create(filepath.Join(t.TempDir(), "plane"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	require.NoError(t, file.Truncate(size))
	return file
}

func TestImport_SizesPlanesFromOffsetsAndFD(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, driver := readyDriver(t, ctrl, drv.CreateOptions{})

	file := sizedFile(t, 16*16*3/2)
	fd := int(file.Fd())

	data := &drv.ImportData{
		Width:    16,
		Height:   16,
		Format:   format.NV12,
		Modifier: modifier.Linear,
		Usage:    combination.UseTexture,
		Strides:  [format.MaxPlanes]uint32{16, 16},
		Offsets:  [format.MaxPlanes]uint32{0, 256},
	}
	data.FDs[0] = fd
	data.FDs[1] = fd

	backend.EXPECT().Import(gomock.Any(), data).DoAndReturn(func(bo *drv.BufferObject, data *drv.ImportData) error {
		bo.Handles[0] = 21
		bo.Handles[1] = 21
		return nil
	})

	bo, err := driver.Import(data)
	require.NoError(t, err)
	require.Equal(t, 2, bo.NumPlanes)
	require.Equal(t, [format.MaxPlanes]uint32{256, 128}, bo.Sizes)
	require.Equal(t, uint64(384), bo.TotalSize)
	require.Equal(t, modifier.Linear, bo.Modifier)
	require.Equal(t, uint32(2), driver.Handles().Get(21))

	// Import reproduces the layout this module would compute for the same buffer
	created, err := format.Resolve(format.NV12, 16, 16)
	require.NoError(t, err)
	require.Equal(t, created.Strides, bo.Strides)
	require.Equal(t, created.Offsets, bo.Offsets)
	require.Equal(t, created.Sizes, bo.Sizes)
	require.Equal(t, created.TotalSize, bo.TotalSize)

	backend.EXPECT().Destroy(bo).Return(nil)
	require.NoError(t, driver.Destroy(bo))
}

func TestImport_SeparateFDsForOneAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, driver := readyDriver(t, ctrl, drv.CreateOptions{})

	file := sizedFile(t, 16*16*3/2)
	chromaFD, err := unix.Dup(int(file.Fd()))
	require.NoError(t, err)
	defer func() { _ = unix.Close(chromaFD) }()

	data := &drv.ImportData{
		Width:   16,
		Height:  16,
		Format:  format.NV12,
		Usage:   combination.UseTexture,
		Strides: [format.MaxPlanes]uint32{16, 16},
		Offsets: [format.MaxPlanes]uint32{0, 256},
	}
	data.FDs[0] = int(file.Fd())
	data.FDs[1] = chromaFD

	backend.EXPECT().Import(gomock.Any(), data).DoAndReturn(func(bo *drv.BufferObject, data *drv.ImportData) error {
		bo.Handles[0] = 30
		bo.Handles[1] = 30
		return nil
	})

	bo, err := driver.Import(data)
	require.NoError(t, err)
	require.Equal(t, [format.MaxPlanes]uint32{256, 128}, bo.Sizes)
	require.Equal(t, uint64(384), bo.TotalSize)

	backend.EXPECT().Destroy(bo).Return(nil)
	require.NoError(t, driver.Destroy(bo))
}

func TestImport_PlaneTooLargeForSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, driver := readyDriver(t, ctrl, drv.CreateOptions{})

	file := sizedFile(t, 5<<30)

	data := &drv.ImportData{
		Width:   16,
		Height:  16,
		Format:  format.XRGB8888,
		Strides: [format.MaxPlanes]uint32{64},
	}
	data.FDs[0] = int(file.Fd())

	backend.EXPECT().Import(gomock.Any(), gomock.Any()).Times(0)

	_, err := driver.Import(data)
	require.Error(t, err)
	require.Equal(t, 0, driver.Handles().Count())
}

func TestImport_PlanePastEndOfFD(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, driver := readyDriver(t, ctrl, drv.CreateOptions{})

	luma := sizedFile(t, 256)
	chroma := sizedFile(t, 100)

	data := &drv.ImportData{
		Width:   16,
		Height:  16,
		Format:  format.NV12,
		Strides: [format.MaxPlanes]uint32{16, 16},
		Offsets: [format.MaxPlanes]uint32{0, 200},
	}
	data.FDs[0] = int(luma.Fd())
	data.FDs[1] = int(chroma.Fd())

	backend.EXPECT().Import(gomock.Any(), gomock.Any()).Times(0)

	_, err := driver.Import(data)
	require.Error(t, err)
	require.Equal(t, 0, driver.Handles().Count())
}

func TestImport_UnsupportedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, driver := readyDriver(t, ctrl, drv.CreateOptions{})

	_, err := driver.Import(&drv.ImportData{Width: 4, Height: 4, Format: format.FlexYCbCr420888})
	require.ErrorIs(t, err, format.ErrUnsupportedFormat)
}
