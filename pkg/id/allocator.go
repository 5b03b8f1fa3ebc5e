// Package id mints unique element identifiers for auto-positioned views.
package id

import (
	"fmt"
	"sync/atomic"
)

// DefaultPrefix is the prefix used by the package-level allocator.
const DefaultPrefix = "vk-node-"

// Allocator is the source of unique anchor identifiers. The counter is
// monotonically increasing and ids are never reused, even after the node
// holding a previously allocated id is destroyed. Using atomic operations
// ensures thread-safe allocation without locks.
type Allocator struct {
	prefix  string
	counter uint64
}

// New creates an Allocator with the given prefix. An empty prefix falls
// back to DefaultPrefix.
func New(prefix string) *Allocator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Allocator{prefix: prefix}
}

// NextID returns the next unique identifier.
func (a *Allocator) NextID() string {
	n := atomic.AddUint64(&a.counter, 1)
	return fmt.Sprintf("%s%d", a.prefix, n)
}

// Prefix returns the allocator's identifier prefix.
func (a *Allocator) Prefix() string {
	return a.prefix
}

// Reset rewinds the counter to zero. Only intended for tests; resetting a
// live allocator breaks the never-reused guarantee.
func (a *Allocator) Reset() {
	atomic.StoreUint64(&a.counter, 0)
}

// Default is the process-wide allocator shared by trees that do not inject
// their own.
var Default = New(DefaultPrefix)
