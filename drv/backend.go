package drv

//go:generate mockgen -source backend.go -destination ./mocks/backend.go

import (
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/ledger"
	"github.com/vkngwrapper/gralloc/modifier"
)

// Backend is the platform-specific half of a Driver. The Driver owns all bookkeeping (handle
// reference counts, mapping records, the live buffer list) and calls into the Backend only to
// acquire or release the underlying resources.
//
// A Backend is only ever called with the Driver's lock held, so implementations do not need to
// synchronize with themselves.
type Backend interface {
	// Name identifies the backend in logs and statistics
	Name() string
	// Init registers every combination the backend supports
	Init(registry *combination.Registry) error
	Close() error

	// Create allocates storage for bo and fills in its geometry and plane handles. bo's Width,
	// Height, Format and Usage are already populated.
	Create(bo *BufferObject, width, height uint32, f format.Format, usage combination.UsageFlags) error
	// Import acquires a plane handle for each of data's file descriptors. bo's geometry has already
	// been populated from data.
	Import(bo *BufferObject, data *ImportData) error
	// Map populates vma's Data and Length with a CPU mapping of the handle backing the plane
	Map(bo *BufferObject, vma *ledger.VMA, plane int, flags ledger.MapFlags) error
	// Unmap releases a mapping previously created by Map
	Unmap(bo *BufferObject, vma *ledger.VMA) error
	// Destroy releases every distinct plane handle of bo
	Destroy(bo *BufferObject) error
}

// ModifierCreator is implemented by backends that can allocate with an explicit list of
// acceptable modifiers
type ModifierCreator interface {
	CreateWithModifiers(bo *BufferObject, width, height uint32, f format.Format, modifiers []modifier.Modifier) error
}

// ModifierPlaneCounter is implemented by backends whose modifiers add auxiliary planes, such as
// compression metadata
type ModifierPlaneCounter interface {
	NumPlanesForModifier(f format.Format, m modifier.Modifier) int
}

// FormatResolver is implemented by backends that map flexible formats differently from the
// default rules
type FormatResolver interface {
	ResolveFormatAndUsage(f format.Format, usage combination.UsageFlags) (format.Format, combination.UsageFlags)
}

// PlaneExporter is implemented by backends that can share a plane with other processes as a file
// descriptor
type PlaneExporter interface {
	PlaneFD(bo *BufferObject, plane int) (int, error)
}

// CacheController is implemented by backends whose CPU mappings are not coherent with the device
type CacheController interface {
	Invalidate(bo *BufferObject, mapping *ledger.Mapping) error
	Flush(bo *BufferObject, mapping *ledger.Mapping) error
}
