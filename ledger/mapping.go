package ledger

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// Rect is the region of a plane a caller asked to access when mapping
type Rect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// VMA is one live CPU mapping of a handle. Several Mapping records may share a VMA as long as
// they map the same handle with the same flags.
type VMA struct {
	Handle Handle
	Flags  MapFlags
	// Data is the full mapped range, populated by the backend
	Data []byte
	// Length is the number of bytes the backend must release when unmapping
	Length uint64
	// Priv is backend-private state attached to the mapping
	Priv any

	refCount int
}

// NewVMA returns an unreferenced VMA for the handle. Backends fill in Data and Length; the
// cache takes a reference when a Mapping is appended for it.
func NewVMA(handle Handle, flags MapFlags) *VMA {
	return &VMA{
		Handle: handle,
		Flags:  flags,
	}
}

func (v *VMA) RefCount() int {
	return v.refCount
}

// Mapping is a caller-visible lease on a VMA for one rect
type Mapping struct {
	VMA  *VMA
	Rect Rect

	refCount int
}

func (m *Mapping) RefCount() int {
	return m.refCount
}

// Acquire adds a lease to an existing mapping record
func (m *Mapping) Acquire() {
	m.refCount++
}

// UnmapFunc releases a VMA whose last reference was dropped
type UnmapFunc func(vma *VMA) error

// MappingCache is the ordered list of live mapping records for one driver.
//
// MappingCache is not safe for concurrent use.
type MappingCache struct {
	mappings []*Mapping
}

// FindExact returns the record mapping the handle with exactly these flags and this rect, or nil
func (c *MappingCache) FindExact(handle Handle, flags MapFlags, rect Rect) *Mapping {
	for _, mapping := range c.mappings {
		if mapping.VMA.Handle == handle && mapping.VMA.Flags == flags && mapping.Rect == rect {
			return mapping
		}
	}

	return nil
}

// FindVMA returns a live VMA for the handle mapped with these flags, or nil
func (c *MappingCache) FindVMA(handle Handle, flags MapFlags) *VMA {
	for _, mapping := range c.mappings {
		if mapping.VMA.Handle == handle && mapping.VMA.Flags == flags {
			return mapping.VMA
		}
	}

	return nil
}

// Append records a new single-lease mapping for the rect, taking a reference on the VMA
func (c *MappingCache) Append(vma *VMA, rect Rect) *Mapping {
	vma.refCount++
	mapping := &Mapping{
		VMA:      vma,
		Rect:     rect,
		refCount: 1,
	}
	c.mappings = append(c.mappings, mapping)
	return mapping
}

// Release drops one lease on the mapping. When the last lease is dropped the record is removed
// and its VMA loses a reference; unmap is called if that was the VMA's last reference. The record
// is removed even if unmap fails.
func (c *MappingCache) Release(mapping *Mapping, unmap UnmapFunc) error {
	if mapping.refCount <= 0 {
		panic("attempted to release a mapping with no outstanding leases")
	}

	mapping.refCount--
	if mapping.refCount > 0 {
		return nil
	}

	index := slices.Index(c.mappings, mapping)
	if index < 0 {
		panic("attempted to release a mapping that is not in this cache")
	}
	c.mappings = slices.Delete(c.mappings, index, index+1)

	return c.releaseVMA(mapping.VMA, unmap)
}

func (c *MappingCache) releaseVMA(vma *VMA, unmap UnmapFunc) error {
	vma.refCount--
	if vma.refCount > 0 {
		return nil
	}

	err := unmap(vma)
	if err != nil {
		return errors.Wrapf(err, "failed to unmap handle %d", vma.Handle)
	}

	return nil
}

// DestroyFor removes every record tied to any of the provided handles, regardless of how many
// leases it has, as part of destroying the buffer that owns them. Each distinct handle is visited
// once even if it appears several times. All records are removed even if an unmap fails; the
// failures are combined into the returned error.
func (c *MappingCache) DestroyFor(handles []Handle, unmap UnmapFunc) error {
	var err error

	for planeIndex, handle := range handles {
		if slices.Index(handles, handle) < planeIndex {
			continue
		}

		for i := 0; i < len(c.mappings); {
			mapping := c.mappings[i]
			if mapping.VMA.Handle != handle {
				i++
				continue
			}

			c.mappings = slices.Delete(c.mappings, i, i+1)
			mapping.refCount = 0
			err = errors.CombineErrors(err, c.releaseVMA(mapping.VMA, unmap))
		}
	}

	return err
}

// Count returns the number of live mapping records
func (c *MappingCache) Count() int {
	return len(c.mappings)
}

// Each calls the provided callback once per live mapping record, in creation order
func (c *MappingCache) Each(visit func(mapping *Mapping)) {
	for _, mapping := range c.mappings {
		visit(mapping)
	}
}

// Validate verifies that every record holds a lease and every VMA's reference count equals the
// number of records that share it
func (c *MappingCache) Validate() error {
	vmaRecords := make(map[*VMA]int, len(c.mappings))
	for index, mapping := range c.mappings {
		if mapping.refCount <= 0 {
			return errors.Newf("mapping %d for handle %d has no leases", index, mapping.VMA.Handle)
		}
		vmaRecords[mapping.VMA]++
	}

	for vma, records := range vmaRecords {
		if vma.refCount != records {
			return errors.Newf("vma for handle %d has reference count %d but is shared by %d mappings", vma.Handle, vma.refCount, records)
		}
	}

	return nil
}
