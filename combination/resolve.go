package combination

import "github.com/vkngwrapper/gralloc/format"

// ResolveFormat maps the flexible placeholder formats to the concrete format most backends prefer
// for the requested usage. Concrete formats are returned unchanged.
func ResolveFormat(f format.Format, usage UsageFlags) format.Format {
	switch f {
	case format.FlexImplementationDefined:
		// Camera pipelines want YUV
		if usage&(UseCameraRead|UseCameraWrite) != 0 {
			return format.NV12
		}
		return format.XBGR8888
	case format.FlexYCbCr420888:
		return format.NV12
	default:
		return f
	}
}
