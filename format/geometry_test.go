package format_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/format"
)

func TestResolveEveryCatalogFormat(t *testing.T) {
	for _, f := range format.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			stride := format.Stride(f, 333, 0)
			if f == format.YVU420Android {
				require.Zero(t, stride%32)
			}

			geometry, err := format.Resolve(f, stride, 77)
			require.NoError(t, err)
			require.NoError(t, geometry.Validate())
			require.Equal(t, format.NumPlanes(f), geometry.NumPlanes)

			var sum uint64
			for plane := 0; plane < geometry.NumPlanes; plane++ {
				require.Equal(t, sum, uint64(geometry.Offsets[plane]))
				sum += uint64(geometry.Sizes[plane])
			}
			require.Equal(t, sum, geometry.TotalSize)
		})
	}
}

func TestResolveNV12ChromaHeight(t *testing.T) {
	stride := 1920 * format.BytesPerPixel(format.NV12, 0)
	geometry, err := format.Resolve(format.NV12, stride, 1080)
	require.NoError(t, err)

	require.Equal(t, uint32(540), format.PlaneHeight(format.NV12, 1080, 1))
	require.Equal(t, [format.MaxPlanes]uint32{1920, 1920}, geometry.Strides)
	require.Equal(t, [format.MaxPlanes]uint32{1920 * 1080, 1920 * 540}, geometry.Sizes)
	require.Equal(t, [format.MaxPlanes]uint32{0, 1920 * 1080}, geometry.Offsets)
	require.Equal(t, uint64(3110400), geometry.TotalSize)
}

func TestResolveTriplanarSubsamplesStride(t *testing.T) {
	geometry, err := format.Resolve(format.YVU420, 64, 10)
	require.NoError(t, err)

	require.Equal(t, 3, geometry.NumPlanes)
	require.Equal(t, [format.MaxPlanes]uint32{64, 32, 32}, geometry.Strides)
	require.Equal(t, [format.MaxPlanes]uint32{640, 160, 160}, geometry.Sizes)
	require.Equal(t, [format.MaxPlanes]uint32{0, 640, 800}, geometry.Offsets)
	require.Equal(t, uint64(960), geometry.TotalSize)
}

func TestResolveP010DoesNotSubsampleStride(t *testing.T) {
	geometry, err := format.Resolve(format.P010, 3840, 1080)
	require.NoError(t, err)

	require.Equal(t, [format.MaxPlanes]uint32{3840, 3840}, geometry.Strides)
	require.Equal(t, [format.MaxPlanes]uint32{3840 * 1080, 3840 * 540}, geometry.Sizes)
}

func TestResolveAndroidYV12(t *testing.T) {
	stride := format.Stride(format.YVU420Android, 100, 0)
	require.Equal(t, uint32(128), stride)
	require.Equal(t, uint32(64), format.Stride(format.YVU420Android, 100, 1))

	geometry, err := format.Resolve(format.YVU420Android, stride, 75)
	require.NoError(t, err)

	require.Equal(t, [format.MaxPlanes]uint32{128, 64, 64}, geometry.Strides)
	require.Equal(t, [format.MaxPlanes]uint32{9600, 2432, 2432}, geometry.Sizes)
	require.Equal(t, [format.MaxPlanes]uint32{0, 9600, 12032}, geometry.Offsets)
	require.Equal(t, uint64(14464), geometry.TotalSize)
}

func TestResolveAndroidYV12RejectsUnalignedStride(t *testing.T) {
	require.Panics(t, func() {
		_, _ = format.Resolve(format.YVU420Android, 100, 75)
	})
}

func TestResolveWithPadding(t *testing.T) {
	geometry, err := format.ResolveWithPadding(format.NV12, 64, 4, [format.MaxPlanes]uint32{16, 8})
	require.NoError(t, err)

	require.Equal(t, [format.MaxPlanes]uint32{272, 136}, geometry.Sizes)
	require.Equal(t, [format.MaxPlanes]uint32{0, 272}, geometry.Offsets)
	require.Equal(t, uint64(408), geometry.TotalSize)
	require.NoError(t, geometry.Validate())
}

func TestResolveUnsupportedFormat(t *testing.T) {
	_, err := format.Resolve(format.FourCC('N', 'O', 'P', 'E'), 64, 64)
	require.Error(t, err)
	require.True(t, errors.Is(err, format.ErrUnsupportedFormat))
}

func TestResolveIsDeterministic(t *testing.T) {
	first, err := format.Resolve(format.NV21, 256, 97)
	require.NoError(t, err)
	second, err := format.Resolve(format.NV21, 256, 97)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestValidateDetectsGaps(t *testing.T) {
	geometry, err := format.Resolve(format.NV12, 64, 4)
	require.NoError(t, err)

	geometry.Offsets[1]++
	require.Error(t, geometry.Validate())

	geometry.Offsets[1]--
	geometry.TotalSize++
	require.Error(t, geometry.Validate())
}

func TestPixelStride(t *testing.T) {
	geometry, err := format.Resolve(format.XRGB8888, 4*130, 10)
	require.NoError(t, err)

	require.Equal(t, uint32(130), geometry.PixelStride())
}
