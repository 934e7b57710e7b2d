package ledger

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
)

// Handle is a kernel- or vendor-issued identifier for one underlying allocation. Several planes
// of a buffer object, and several buffer objects, may share a handle.
type Handle uint64

// HandleTable counts how many plane references each live handle has. It only tracks integers:
// releasing the handle itself when the count reaches zero is the caller's responsibility.
//
// HandleTable is not safe for concurrent use.
type HandleTable struct {
	refs *swiss.Map[Handle, uint32]
}

func NewHandleTable() *HandleTable {
	return &HandleTable{
		refs: swiss.NewMap[Handle, uint32](16),
	}
}

// Get returns the current reference count for the handle, or 0 if it is not tracked
func (t *HandleTable) Get(handle Handle) uint32 {
	count, _ := t.refs.Get(handle)
	return count
}

// Increment adds a reference to the handle, starting to track it if necessary, and returns the
// new count
func (t *HandleTable) Increment(handle Handle) uint32 {
	count, _ := t.refs.Get(handle)
	count++
	t.refs.Put(handle, count)
	return count
}

// Decrement removes a reference from the handle and returns the remaining count. A handle whose
// count reaches zero stops being tracked. Decrementing an untracked handle is a no-op that
// returns 0.
func (t *HandleTable) Decrement(handle Handle) uint32 {
	count, ok := t.refs.Get(handle)
	if !ok || count <= 1 {
		t.refs.Delete(handle)
		return 0
	}

	count--
	t.refs.Put(handle, count)
	return count
}

// Count returns the number of tracked handles
func (t *HandleTable) Count() int {
	return t.refs.Count()
}

func (t *HandleTable) Validate() error {
	var err error
	t.refs.Iter(func(handle Handle, count uint32) bool {
		if count == 0 {
			err = errors.Newf("handle %d is tracked with a zero reference count", handle)
			return true
		}
		return false
	})

	return err
}
