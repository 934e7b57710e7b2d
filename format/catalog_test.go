package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/format"
)

func TestCatalogLayouts(t *testing.T) {
	testCases := map[format.Format]struct {
		planes int
		bpp    []uint32
		vsub   []uint32
	}{
		format.R8:            {planes: 1, bpp: []uint32{1}, vsub: []uint32{1}},
		format.R16:           {planes: 1, bpp: []uint32{2}, vsub: []uint32{1}},
		format.RGB565:        {planes: 1, bpp: []uint32{2}, vsub: []uint32{1}},
		format.YUYV:          {planes: 1, bpp: []uint32{2}, vsub: []uint32{1}},
		format.BGR888:        {planes: 1, bpp: []uint32{3}, vsub: []uint32{1}},
		format.ARGB8888:      {planes: 1, bpp: []uint32{4}, vsub: []uint32{1}},
		format.ABGR2101010:   {planes: 1, bpp: []uint32{4}, vsub: []uint32{1}},
		format.ABGR16161616F: {planes: 1, bpp: []uint32{8}, vsub: []uint32{1}},
		format.NV12:          {planes: 2, bpp: []uint32{1, 2}, vsub: []uint32{1, 2}},
		format.NV21:          {planes: 2, bpp: []uint32{1, 2}, vsub: []uint32{1, 2}},
		format.P010:          {planes: 2, bpp: []uint32{2, 4}, vsub: []uint32{1, 2}},
		format.YVU420:        {planes: 3, bpp: []uint32{1, 1, 1}, vsub: []uint32{1, 2, 2}},
		format.YVU420Android: {planes: 3, bpp: []uint32{1, 1, 1}, vsub: []uint32{1, 2, 2}},
	}

	for f, testCase := range testCases {
		t.Run(f.String(), func(t *testing.T) {
			require.Equal(t, testCase.planes, format.NumPlanes(f))

			for plane := 0; plane < testCase.planes; plane++ {
				require.Equal(t, testCase.bpp[plane], format.BytesPerPixel(f, plane))
				require.Equal(t, testCase.vsub[plane], format.VerticalSubsampling(f, plane))
			}
		})
	}
}

func TestCatalogNeverExceedsMaxPlanes(t *testing.T) {
	for _, f := range format.Formats() {
		layout, ok := format.Layout(f)
		require.True(t, ok)
		require.LessOrEqual(t, layout.NumPlanes, format.MaxPlanes)
		require.GreaterOrEqual(t, layout.NumPlanes, 1)
	}
}

func TestUnsupportedFormatHasNoPlanes(t *testing.T) {
	require.Equal(t, 0, format.NumPlanes(format.FlexImplementationDefined))
	require.Equal(t, 0, format.NumPlanes(format.Invalid))

	_, ok := format.Layout(format.FlexYCbCr420888)
	require.False(t, ok)
}

func TestStrideSubsamplesWidth(t *testing.T) {
	require.Equal(t, uint32(101), format.Stride(format.NV12, 101, 0))
	require.Equal(t, uint32(102), format.Stride(format.NV12, 101, 1))
	require.Equal(t, uint32(404), format.Stride(format.XBGR8888, 101, 0))
}

func TestInvalidPlanePanics(t *testing.T) {
	require.Panics(t, func() { format.Stride(format.XRGB8888, 64, 1) })
	require.Panics(t, func() { format.PlaneHeight(format.NV12, 64, 2) })
	require.Panics(t, func() { format.BytesPerPixel(format.YVU420, 3) })
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "NV12", format.NV12.String())
	require.Equal(t, "YVU420_ANDROID", format.YVU420Android.String())
	require.Equal(t, "Format(NOPE)", format.FourCC('N', 'O', 'P', 'E').String())
	require.Equal(t, format.XRGB8888, format.FourCC('X', 'R', '2', '4'))
}

func TestStandardFourCC(t *testing.T) {
	require.Equal(t, format.YVU420, format.StandardFourCC(format.YVU420Android))
	require.Equal(t, format.NV12, format.StandardFourCC(format.NV12))
	require.True(t, format.IsFlexible(format.FlexYCbCr420888))
	require.False(t, format.IsFlexible(format.NV12))
}
