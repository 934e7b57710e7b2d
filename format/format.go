package format

import "fmt"

// Format is a DRM fourcc pixel format code
type Format uint32

// FourCC packs four characters into a Format the same way drm_fourcc.h does
func FourCC(a, b, c, d byte) Format {
	return Format(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const (
	Invalid Format = 0

	C8     = Format('C' | '8'<<8 | ' '<<16 | ' '<<24)
	R8     = Format('R' | '8'<<8 | ' '<<16 | ' '<<24)
	R16    = Format('R' | '1'<<8 | '6'<<16 | ' '<<24)
	RG88   = Format('R' | 'G'<<8 | '8'<<16 | '8'<<24)
	GR88   = Format('G' | 'R'<<8 | '8'<<16 | '8'<<24)
	RGB332 = Format('R' | 'G'<<8 | 'B'<<16 | '8'<<24)
	BGR233 = Format('B' | 'G'<<8 | 'R'<<16 | '8'<<24)

	XRGB4444 = Format('X' | 'R'<<8 | '1'<<16 | '2'<<24)
	XBGR4444 = Format('X' | 'B'<<8 | '1'<<16 | '2'<<24)
	RGBX4444 = Format('R' | 'X'<<8 | '1'<<16 | '2'<<24)
	BGRX4444 = Format('B' | 'X'<<8 | '1'<<16 | '2'<<24)
	ARGB4444 = Format('A' | 'R'<<8 | '1'<<16 | '2'<<24)
	ABGR4444 = Format('A' | 'B'<<8 | '1'<<16 | '2'<<24)
	RGBA4444 = Format('R' | 'A'<<8 | '1'<<16 | '2'<<24)
	BGRA4444 = Format('B' | 'A'<<8 | '1'<<16 | '2'<<24)

	XRGB1555 = Format('X' | 'R'<<8 | '1'<<16 | '5'<<24)
	XBGR1555 = Format('X' | 'B'<<8 | '1'<<16 | '5'<<24)
	RGBX5551 = Format('R' | 'X'<<8 | '1'<<16 | '5'<<24)
	BGRX5551 = Format('B' | 'X'<<8 | '1'<<16 | '5'<<24)
	ARGB1555 = Format('A' | 'R'<<8 | '1'<<16 | '5'<<24)
	ABGR1555 = Format('A' | 'B'<<8 | '1'<<16 | '5'<<24)
	RGBA5551 = Format('R' | 'A'<<8 | '1'<<16 | '5'<<24)
	BGRA5551 = Format('B' | 'A'<<8 | '1'<<16 | '5'<<24)

	RGB565 = Format('R' | 'G'<<8 | '1'<<16 | '6'<<24)
	BGR565 = Format('B' | 'G'<<8 | '1'<<16 | '6'<<24)

	RGB888 = Format('R' | 'G'<<8 | '2'<<16 | '4'<<24)
	BGR888 = Format('B' | 'G'<<8 | '2'<<16 | '4'<<24)

	XRGB8888 = Format('X' | 'R'<<8 | '2'<<16 | '4'<<24)
	XBGR8888 = Format('X' | 'B'<<8 | '2'<<16 | '4'<<24)
	RGBX8888 = Format('R' | 'X'<<8 | '2'<<16 | '4'<<24)
	BGRX8888 = Format('B' | 'X'<<8 | '2'<<16 | '4'<<24)
	ARGB8888 = Format('A' | 'R'<<8 | '2'<<16 | '4'<<24)
	ABGR8888 = Format('A' | 'B'<<8 | '2'<<16 | '4'<<24)
	RGBA8888 = Format('R' | 'A'<<8 | '2'<<16 | '4'<<24)
	BGRA8888 = Format('B' | 'A'<<8 | '2'<<16 | '4'<<24)

	XRGB2101010 = Format('X' | 'R'<<8 | '3'<<16 | '0'<<24)
	XBGR2101010 = Format('X' | 'B'<<8 | '3'<<16 | '0'<<24)
	RGBX1010102 = Format('R' | 'X'<<8 | '3'<<16 | '0'<<24)
	BGRX1010102 = Format('B' | 'X'<<8 | '3'<<16 | '0'<<24)
	ARGB2101010 = Format('A' | 'R'<<8 | '3'<<16 | '0'<<24)
	ABGR2101010 = Format('A' | 'B'<<8 | '3'<<16 | '0'<<24)
	RGBA1010102 = Format('R' | 'A'<<8 | '3'<<16 | '0'<<24)
	BGRA1010102 = Format('B' | 'A'<<8 | '3'<<16 | '0'<<24)

	ABGR16161616F = Format('A' | 'B'<<8 | '4'<<16 | 'H'<<24)

	YUYV = Format('Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24)
	YVYU = Format('Y' | 'V'<<8 | 'Y'<<16 | 'U'<<24)
	UYVY = Format('U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24)
	VYUY = Format('V' | 'Y'<<8 | 'U'<<16 | 'Y'<<24)
	AYUV = Format('A' | 'Y'<<8 | 'U'<<16 | 'V'<<24)

	NV12   = Format('N' | 'V'<<8 | '1'<<16 | '2'<<24)
	NV21   = Format('N' | 'V'<<8 | '2'<<16 | '1'<<24)
	P010   = Format('P' | '0'<<8 | '1'<<16 | '0'<<24)
	YVU420 = Format('Y' | 'V'<<8 | '1'<<16 | '2'<<24)

	// MTISPSXYZW10 is the MediaTek ISP packed 10-bit format
	MTISPSXYZW10 = Format('M' | 'B'<<8 | '1'<<16 | '0'<<24)

	// YVU420Android is YVU420 with the HAL_PIXEL_FORMAT_YV12 alignment rules: a 32-byte
	// aligned luma stride, 16-byte aligned chroma strides, and an unaligned height.
	YVU420Android = Format('9' | '9'<<8 | '9'<<16 | '7'<<24)
	// FlexImplementationDefined lets the driver choose the format from the usage flags
	FlexImplementationDefined = Format('9' | '9'<<8 | '9'<<16 | '8'<<24)
	// FlexYCbCr420888 is any 4:2:0 8-bit YUV format the driver prefers
	FlexYCbCr420888 = Format('9' | '9'<<8 | '9'<<16 | '9'<<24)
)

var formatNames = make(map[Format]string)

func init() {
	for name, f := range map[string]Format{
		"C8": C8, "R8": R8, "R16": R16, "RG88": RG88, "GR88": GR88, "RGB332": RGB332, "BGR233": BGR233,
		"XRGB4444": XRGB4444, "XBGR4444": XBGR4444, "RGBX4444": RGBX4444, "BGRX4444": BGRX4444,
		"ARGB4444": ARGB4444, "ABGR4444": ABGR4444, "RGBA4444": RGBA4444, "BGRA4444": BGRA4444,
		"XRGB1555": XRGB1555, "XBGR1555": XBGR1555, "RGBX5551": RGBX5551, "BGRX5551": BGRX5551,
		"ARGB1555": ARGB1555, "ABGR1555": ABGR1555, "RGBA5551": RGBA5551, "BGRA5551": BGRA5551,
		"RGB565": RGB565, "BGR565": BGR565, "RGB888": RGB888, "BGR888": BGR888,
		"XRGB8888": XRGB8888, "XBGR8888": XBGR8888, "RGBX8888": RGBX8888, "BGRX8888": BGRX8888,
		"ARGB8888": ARGB8888, "ABGR8888": ABGR8888, "RGBA8888": RGBA8888, "BGRA8888": BGRA8888,
		"XRGB2101010": XRGB2101010, "XBGR2101010": XBGR2101010, "RGBX1010102": RGBX1010102, "BGRX1010102": BGRX1010102,
		"ARGB2101010": ARGB2101010, "ABGR2101010": ABGR2101010, "RGBA1010102": RGBA1010102, "BGRA1010102": BGRA1010102,
		"ABGR16161616F": ABGR16161616F,
		"YUYV": YUYV, "YVYU": YVYU, "UYVY": UYVY, "VYUY": VYUY, "AYUV": AYUV,
		"NV12": NV12, "NV21": NV21, "P010": P010, "YVU420": YVU420,
		"MTISP_SXYZW10": MTISPSXYZW10,
		"YVU420_ANDROID": YVU420Android,
		"FLEX_IMPLEMENTATION_DEFINED": FlexImplementationDefined,
		"FLEX_YCbCr_420_888": FlexYCbCr420888,
	} {
		formatNames[f] = name
	}
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if ok {
		return name
	}

	return fmt.Sprintf("Format(%c%c%c%c)", byte(f), byte(f>>8), byte(f>>16), byte(f>>24))
}
