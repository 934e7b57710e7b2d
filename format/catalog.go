package format

import "github.com/vkngwrapper/gralloc/bufutils"

// MaxPlanes is the largest number of planes any buffer object may carry
const MaxPlanes = 4

// PlaneLayout describes how a format splits into planes: how many there are, how far each plane is
// subsampled horizontally and vertically relative to the luma plane, and how many bytes each pixel
// of the plane occupies.
type PlaneLayout struct {
	NumPlanes             int
	HorizontalSubsampling [MaxPlanes]uint32
	VerticalSubsampling   [MaxPlanes]uint32
	BytesPerPixel         [MaxPlanes]uint32
}

var (
	packed1bppLayout = PlaneLayout{
		NumPlanes:             1,
		HorizontalSubsampling: [MaxPlanes]uint32{1},
		VerticalSubsampling:   [MaxPlanes]uint32{1},
		BytesPerPixel:         [MaxPlanes]uint32{1},
	}
	packed2bppLayout = PlaneLayout{
		NumPlanes:             1,
		HorizontalSubsampling: [MaxPlanes]uint32{1},
		VerticalSubsampling:   [MaxPlanes]uint32{1},
		BytesPerPixel:         [MaxPlanes]uint32{2},
	}
	packed3bppLayout = PlaneLayout{
		NumPlanes:             1,
		HorizontalSubsampling: [MaxPlanes]uint32{1},
		VerticalSubsampling:   [MaxPlanes]uint32{1},
		BytesPerPixel:         [MaxPlanes]uint32{3},
	}
	packed4bppLayout = PlaneLayout{
		NumPlanes:             1,
		HorizontalSubsampling: [MaxPlanes]uint32{1},
		VerticalSubsampling:   [MaxPlanes]uint32{1},
		BytesPerPixel:         [MaxPlanes]uint32{4},
	}
	packed8bppLayout = PlaneLayout{
		NumPlanes:             1,
		HorizontalSubsampling: [MaxPlanes]uint32{1},
		VerticalSubsampling:   [MaxPlanes]uint32{1},
		BytesPerPixel:         [MaxPlanes]uint32{8},
	}
	biplanarYUV420Layout = PlaneLayout{
		NumPlanes:             2,
		HorizontalSubsampling: [MaxPlanes]uint32{1, 2},
		VerticalSubsampling:   [MaxPlanes]uint32{1, 2},
		BytesPerPixel:         [MaxPlanes]uint32{1, 2},
	}
	triplanarYUV420Layout = PlaneLayout{
		NumPlanes:             3,
		HorizontalSubsampling: [MaxPlanes]uint32{1, 2, 2},
		VerticalSubsampling:   [MaxPlanes]uint32{1, 2, 2},
		BytesPerPixel:         [MaxPlanes]uint32{1, 1, 1},
	}
	biplanarYUVP010Layout = PlaneLayout{
		NumPlanes:             2,
		HorizontalSubsampling: [MaxPlanes]uint32{1, 2},
		VerticalSubsampling:   [MaxPlanes]uint32{1, 2},
		BytesPerPixel:         [MaxPlanes]uint32{2, 4},
	}
)

var catalog = make(map[Format]*PlaneLayout)

func register(layout *PlaneLayout, formats ...Format) {
	for _, f := range formats {
		catalog[f] = layout
	}
}

func init() {
	register(&packed1bppLayout, BGR233, C8, R8, RGB332)
	register(&packed2bppLayout, R16)
	register(&triplanarYUV420Layout, YVU420, YVU420Android)
	register(&biplanarYUV420Layout, NV12, NV21)
	register(&biplanarYUVP010Layout, P010)
	register(&packed2bppLayout,
		ABGR1555, ABGR4444, ARGB1555, ARGB4444, BGR565, BGRA4444, BGRA5551, BGRX4444, BGRX5551,
		GR88, RG88, RGB565, RGBA4444, RGBA5551, RGBX4444, RGBX5551, UYVY, VYUY, XBGR1555,
		XBGR4444, XRGB1555, XRGB4444, YUYV, YVYU, MTISPSXYZW10,
	)
	register(&packed3bppLayout, BGR888, RGB888)
	register(&packed4bppLayout,
		ABGR2101010, ABGR8888, ARGB2101010, ARGB8888, AYUV, BGRA1010102, BGRA8888, BGRX1010102,
		BGRX8888, RGBA1010102, RGBA8888, RGBX1010102, RGBX8888, XBGR2101010, XBGR8888,
		XRGB2101010, XRGB8888,
	)
	register(&packed8bppLayout, ABGR16161616F)
}

// Layout retrieves the catalog entry for a format. The boolean return is false when the format is
// not supported.
func Layout(f Format) (PlaneLayout, bool) {
	layout, ok := catalog[f]
	if !ok {
		return PlaneLayout{}, false
	}

	return *layout, true
}

// Formats returns every format present in the catalog, in no particular order
func Formats() []Format {
	formats := make([]Format, 0, len(catalog))
	for f := range catalog {
		formats = append(formats, f)
	}
	return formats
}

func mustLayout(f Format) *PlaneLayout {
	layout, ok := catalog[f]
	if !ok {
		panic(ErrUnsupportedFormat.Error() + ": " + f.String())
	}
	return layout
}

// NumPlanes returns the number of planes in the provided format, or 0 if the format is not supported
func NumPlanes(f Format) int {
	layout, ok := catalog[f]
	if !ok {
		return 0
	}

	return layout.NumPlanes
}

// PlaneHeight returns the number of rows the plane occupies for a buffer of the provided height
func PlaneHeight(f Format, height uint32, plane int) uint32 {
	layout := mustLayout(f)
	bufutils.CheckPlane(plane, layout.NumPlanes)

	return bufutils.DivRoundUp(height, layout.VerticalSubsampling[plane])
}

func VerticalSubsampling(f Format, plane int) uint32 {
	layout := mustLayout(f)
	bufutils.CheckPlane(plane, layout.NumPlanes)

	return layout.VerticalSubsampling[plane]
}

func BytesPerPixel(f Format, plane int) uint32 {
	layout := mustLayout(f)
	bufutils.CheckPlane(plane, layout.NumPlanes)

	return layout.BytesPerPixel[plane]
}

// Stride returns the minimum stride in bytes of the requested plane for a buffer of the provided width
func Stride(f Format, width uint32, plane int) uint32 {
	layout := mustLayout(f)
	bufutils.CheckPlane(plane, layout.NumPlanes)

	planeWidth := bufutils.DivRoundUp(width, layout.HorizontalSubsampling[plane])
	stride := planeWidth * layout.BytesPerPixel[plane]

	// HAL_PIXEL_FORMAT_YV12 requires 16-byte aligned chroma strides, see <system/graphics.h>
	if f == YVU420Android {
		if plane == 0 {
			stride = bufutils.AlignUp[uint32](stride, 32)
		} else {
			stride = bufutils.AlignUp[uint32](stride, 16)
		}
	}

	return stride
}

// PlaneSize returns the size in bytes of a plane with the provided stride for a buffer of the provided height
func PlaneSize(f Format, stride uint32, height uint32, plane int) uint32 {
	return stride * PlaneHeight(f, height, plane)
}
