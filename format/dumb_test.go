package format_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/format"
)

func TestDumbDimensionsAndroidYV12(t *testing.T) {
	dims, err := format.NewDumbDimensions(format.YVU420Android, 100, 75, format.QuirkNone)
	require.NoError(t, err)

	require.Equal(t, format.DumbDimensions{
		Width:        128,
		Height:       114,
		BitsPerPixel: 8,
	}, dims)
}

func TestDumbDimensionsReserveChroma(t *testing.T) {
	for _, f := range []format.Format{format.NV12, format.NV21, format.YVU420} {
		dims, err := format.NewDumbDimensions(f, 640, 481, format.QuirkNone)
		require.NoError(t, err)

		require.Equal(t, format.DumbDimensions{
			Width:        640,
			Height:       723,
			BitsPerPixel: 8,
		}, dims)
	}
}

func TestDumbDimensionsR16(t *testing.T) {
	dims, err := format.NewDumbDimensions(format.R16, 100, 10, format.QuirkNone)
	require.NoError(t, err)

	require.Equal(t, uint32(112), dims.Width)
	require.Equal(t, uint32(10), dims.Height)
	require.Equal(t, uint32(16), dims.BitsPerPixel)
}

func TestDumbDimensions32bppQuirk(t *testing.T) {
	dims, err := format.NewDumbDimensions(format.RGB565, 100, 10, format.QuirkDumb32bpp)
	require.NoError(t, err)
	require.Equal(t, format.DumbDimensions{Width: 50, Height: 10, BitsPerPixel: 32}, dims)

	dims, err = format.NewDumbDimensions(format.XRGB8888, 100, 10, format.QuirkDumb32bpp)
	require.NoError(t, err)
	require.Equal(t, format.DumbDimensions{Width: 100, Height: 10, BitsPerPixel: 32}, dims)

	dims, err = format.NewDumbDimensions(format.RGB888, 101, 10, format.QuirkNone)
	require.NoError(t, err)
	require.Equal(t, format.DumbDimensions{Width: 101, Height: 10, BitsPerPixel: 24}, dims)
}

func TestDumbDimensionsUnsupported(t *testing.T) {
	_, err := format.NewDumbDimensions(format.FlexImplementationDefined, 10, 10, format.QuirkNone)
	require.True(t, errors.Is(err, format.ErrUnsupportedFormat))
}
