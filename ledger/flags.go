package ledger

import "github.com/vkngwrapper/core/v2/common"

// MapFlags describe the CPU access requested when mapping a buffer object
type MapFlags uint32

var mapFlagsMapping = common.NewFlagStringMapping[MapFlags]()

func (f MapFlags) Register(str string) {
	mapFlagsMapping.Register(f, str)
}
func (f MapFlags) String() string {
	return mapFlagsMapping.FlagsToString(f)
}

const (
	MapRead MapFlags = 1 << iota
	MapWrite

	MapReadWrite = MapRead | MapWrite
)

func init() {
	MapRead.Register("MapRead")
	MapWrite.Register("MapWrite")
}
