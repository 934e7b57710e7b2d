package combination

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/modifier"
)

// Metadata identifies one layout variant of a format: the backend's tiling id, the modifier
// exposed to other processes, and a priority that backends may use to rank variants
type Metadata struct {
	Priority uint32
	Tiling   uint32
	Modifier modifier.Modifier
}

// LinearMetadata is the metadata of the untiled layout every backend can produce
var LinearMetadata = Metadata{
	Priority: 1,
	Tiling:   0,
	Modifier: modifier.Linear,
}

// Combination records that buffers in Format laid out according to Metadata may be used for
// any subset of Usage
type Combination struct {
	Format   format.Format
	Metadata Metadata
	Usage    UsageFlags
}

func (c *Combination) matchesVariant(f format.Format, metadata *Metadata) bool {
	return c.Format == f && c.Metadata.Tiling == metadata.Tiling && c.Metadata.Modifier == metadata.Modifier
}

// Supports returns true if this combination permits every usage bit in usage
func (c *Combination) Supports(usage UsageFlags) bool {
	return c.Usage&usage == usage
}

func (c *Combination) printParameters(json *jwriter.ObjectState) {
	json.Name("Format").String(c.Format.String())
	json.Name("Modifier").String(c.Metadata.Modifier.String())
	json.Name("Tiling").Int(int(c.Metadata.Tiling))
	json.Name("Priority").Int(int(c.Metadata.Priority))
	json.Name("Usage").String(c.Usage.String())
}
