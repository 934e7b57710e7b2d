package format

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/modifier"
)

// ErrUnsupportedFormat is returned when a format is not present in the layout catalog
var ErrUnsupportedFormat = errors.New("unsupported format")

// Geometry is the physical layout of a buffer object: the per-plane stride, offset and size, along
// with the total size of the allocation and the layout selected for it.
type Geometry struct {
	Format    Format
	Width     uint32
	Height    uint32
	NumPlanes int

	Strides   [MaxPlanes]uint32
	Offsets   [MaxPlanes]uint32
	Sizes     [MaxPlanes]uint32
	TotalSize uint64

	Tiling   uint32
	Modifier modifier.Modifier
}

// Resolve computes the plane geometry of a buffer in format f whose first plane has the provided
// stride and whose planes are alignedHeight rows tall before subsampling. Only Format, NumPlanes,
// Strides, Offsets, Sizes and TotalSize are populated. The result is a pure function of its inputs.
func Resolve(f Format, stride uint32, alignedHeight uint32) (Geometry, error) {
	var padding [MaxPlanes]uint32
	return ResolveWithPadding(f, stride, alignedHeight, padding)
}

// ResolveWithPadding behaves like Resolve, but adds padding[p] bytes to the end of each plane p
func ResolveWithPadding(f Format, stride uint32, alignedHeight uint32, padding [MaxPlanes]uint32) (Geometry, error) {
	layout, ok := catalog[f]
	if !ok {
		return Geometry{}, errors.Wrapf(ErrUnsupportedFormat, "format %s", f)
	}

	// HAL_PIXEL_FORMAT_YV12 chroma strides must be 16-byte aligned, so the luma stride must be 32-byte aligned
	if f == YVU420Android && stride != bufutils.AlignUp[uint32](stride, 32) {
		panic(errors.Newf("attempted to lay out %s with stride %d, which is not 32-byte aligned", f, stride))
	}

	geometry := Geometry{
		Format:    f,
		NumPlanes: layout.NumPlanes,
	}

	var offset uint32
	for plane := 0; plane < layout.NumPlanes; plane++ {
		geometry.Strides[plane] = subsampleStride(stride, f, plane)
		geometry.Sizes[plane] = PlaneSize(f, geometry.Strides[plane], alignedHeight, plane) + padding[plane]
		geometry.Offsets[plane] = offset
		offset += geometry.Sizes[plane]
	}

	geometry.TotalSize = uint64(offset)
	return geometry, nil
}

func subsampleStride(stride uint32, f Format, plane int) uint32 {
	if plane != 0 && (f == YVU420 || f == YVU420Android) {
		return bufutils.DivRoundUp[uint32](stride, 2)
	}

	return stride
}

// Validate checks that every plane begins where the previous plane ends and that the planes sum
// to the total size
func (g *Geometry) Validate() error {
	if g.NumPlanes < 1 || g.NumPlanes > MaxPlanes {
		return errors.Newf("geometry has %d planes, which is outside [1, %d]", g.NumPlanes, MaxPlanes)
	}

	var offset uint64
	for plane := 0; plane < g.NumPlanes; plane++ {
		if uint64(g.Offsets[plane]) != offset {
			return errors.Newf("plane %d begins at offset %d, but the previous planes end at %d", plane, g.Offsets[plane], offset)
		}
		offset += uint64(g.Sizes[plane])
	}

	if offset != g.TotalSize {
		return errors.Newf("planes total %d bytes, but the total size is %d", offset, g.TotalSize)
	}

	return nil
}

// PixelStride returns the stride of the first plane measured in pixels rather than bytes
func (g *Geometry) PixelStride() uint32 {
	return bufutils.DivRoundUp(g.Strides[0], BytesPerPixel(g.Format, 0))
}

// PrintParameters writes the geometry into an open json object
func (g *Geometry) PrintParameters(json *jwriter.ObjectState) {
	json.Name("Format").String(g.Format.String())
	json.Name("Width").Int(int(g.Width))
	json.Name("Height").Int(int(g.Height))
	json.Name("Modifier").String(g.Modifier.String())
	json.Name("Tiling").Int(int(g.Tiling))
	json.Name("TotalSize").Int(int(g.TotalSize))

	planes := json.Name("Planes").Array()
	for plane := 0; plane < g.NumPlanes; plane++ {
		p := planes.Object()
		p.Name("Stride").Int(int(g.Strides[plane]))
		p.Name("Offset").Int(int(g.Offsets[plane]))
		p.Name("Size").Int(int(g.Sizes[plane]))
		p.End()
	}
	planes.End()
}
