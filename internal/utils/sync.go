package utils

import (
	"sync"
)

// OptionalMutex is a mutex that only locks when UseMutex is set. Driver instances created as
// externally synchronized leave it unset and rely on the caller to serialize access.
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}
