package format

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/gralloc/bufutils"
)

// Quirks adjust how kernel allocation dimensions are derived for hardware with unusual requirements
type Quirks uint32

var quirksMapping = common.NewFlagStringMapping[Quirks]()

func (f Quirks) Register(str string) {
	quirksMapping.Register(f, str)
}
func (f Quirks) String() string {
	return quirksMapping.FlagsToString(f)
}

const QuirkNone Quirks = 0

const (
	// QuirkDumb32bpp requests every dumb buffer at 32 bits per pixel, scaling the width so that
	// the resulting pitch still matches the real pixel size
	QuirkDumb32bpp Quirks = 1 << iota
)

func init() {
	QuirkDumb32bpp.Register("QuirkDumb32bpp")
}

// DumbDimensions are the dimensions requested from the kernel for a dumb buffer. They can differ
// from the buffer's visible dimensions: room is reserved for chroma planes, and some formats demand
// wider alignment than the kernel applies.
type DumbDimensions struct {
	Width        uint32
	Height       uint32
	BitsPerPixel uint32
}

// NewDumbDimensions computes the kernel allocation dimensions for a width x height buffer in format f.
// The buffer's visible height is not changed by this: plane geometry should still be resolved using
// the caller's height.
func NewDumbDimensions(f Format, width, height uint32, quirks Quirks) (DumbDimensions, error) {
	layout, ok := catalog[f]
	if !ok {
		return DumbDimensions{}, errors.Wrapf(ErrUnsupportedFormat, "format %s", f)
	}

	alignedWidth := width
	alignedHeight := height

	switch f {
	case R16:
		// HAL_PIXEL_FORMAT_Y16 requires a 16 pixel aligned width
		alignedWidth = bufutils.AlignUp[uint32](width, 16)
	case YVU420Android:
		// 32 pixel alignment gives 16 byte chroma strides. The height reported for the buffer
		// must stay unaligned, so only the allocation height grows.
		alignedWidth = bufutils.AlignUp[uint32](width, 32)
		alignedHeight = 3 * bufutils.DivRoundUp[uint32](height, 2)
	case YVU420, NV12, NV21:
		alignedHeight = 3 * bufutils.DivRoundUp[uint32](height, 2)
	}

	dims := DumbDimensions{
		Width:  alignedWidth,
		Height: alignedHeight,
	}

	if quirks&QuirkDumb32bpp != 0 {
		dims.Width = bufutils.DivRoundUp(alignedWidth*layout.BytesPerPixel[0], 4)
		dims.BitsPerPixel = 32
	} else {
		dims.BitsPerPixel = layout.BytesPerPixel[0] * 8
	}

	return dims, nil
}
