package combination

import "github.com/vkngwrapper/core/v2/common"

// UsageFlags describe the consumers a buffer object is intended for
type UsageFlags uint32

var usageFlagsMapping = common.NewFlagStringMapping[UsageFlags]()

func (f UsageFlags) Register(str string) {
	usageFlagsMapping.Register(f, str)
}
func (f UsageFlags) String() string {
	return usageFlagsMapping.FlagsToString(f)
}

const UseNone UsageFlags = 0

const (
	// UseScanout indicates the buffer will be presented by a display controller
	UseScanout UsageFlags = 1 << iota
	// UseCursor indicates the buffer will be used as a hardware cursor image
	UseCursor
	// UseRendering indicates the buffer will be a GPU render target
	UseRendering
	// UseLinear requires the buffer to use the linear layout
	UseLinear
	// UseTexture indicates the buffer will be sampled by the GPU
	UseTexture
	UseCameraWrite
	UseCameraRead
	// UseProtected requests a buffer whose contents are inaccessible to the CPU
	UseProtected
	UseSWReadOften
	UseSWReadRarely
	UseSWWriteOften
	UseSWWriteRarely
	UseHWVideoDecoder
	UseHWVideoEncoder
	// UseTestAlloc asks whether an allocation would succeed without performing it
	UseTestAlloc
	// UseFrontRendering indicates the buffer is rendered to while it is being displayed
	UseFrontRendering
	UseRenderscript
	UseGPUDataBuffer
	UseSensorDirectData

	UseSWMask = UseSWReadOften | UseSWReadRarely | UseSWWriteOften | UseSWWriteRarely

	UseRenderMask = UseLinear | UseRendering | UseRenderscript | UseSWMask | UseTexture

	UseTextureMask = UseLinear | UseRenderscript | UseSWMask | UseTexture

	UseNonGPUHW = UseScanout | UseCameraWrite | UseCameraRead | UseHWVideoEncoder | UseHWVideoDecoder |
		UseSensorDirectData | UseGPUDataBuffer
)

func init() {
	UseScanout.Register("UseScanout")
	UseCursor.Register("UseCursor")
	UseRendering.Register("UseRendering")
	UseLinear.Register("UseLinear")
	UseTexture.Register("UseTexture")
	UseCameraWrite.Register("UseCameraWrite")
	UseCameraRead.Register("UseCameraRead")
	UseProtected.Register("UseProtected")
	UseSWReadOften.Register("UseSWReadOften")
	UseSWReadRarely.Register("UseSWReadRarely")
	UseSWWriteOften.Register("UseSWWriteOften")
	UseSWWriteRarely.Register("UseSWWriteRarely")
	UseHWVideoDecoder.Register("UseHWVideoDecoder")
	UseHWVideoEncoder.Register("UseHWVideoEncoder")
	UseTestAlloc.Register("UseTestAlloc")
	UseFrontRendering.Register("UseFrontRendering")
	UseRenderscript.Register("UseRenderscript")
	UseGPUDataBuffer.Register("UseGPUDataBuffer")
	UseSensorDirectData.Register("UseSensorDirectData")
}
