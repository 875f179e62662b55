// Package views carries the invalidation signal between the mutation layer
// and whatever renders or caches a view. Invalidation is fire-and-forget:
// no return value, no failure mode visible to the caller.
package views

import (
	"fmt"
	"sync"
)

// Keys mirror the rendered pages whose data a mutation can stale.
const (
	Root      = "/"
	Products  = "/products"
	Admin     = "/admin"
	Cart      = "/cart"
	CartBadge = "cart-badge"
)

// ProductPage is the single-product view key for one catalog id.
func ProductPage(id uint) string {
	return fmt.Sprintf("/products/%d", id)
}

type Invalidator interface {
	Invalidate(key string)
}

// Registry is an in-memory Invalidator. It keeps a monotonically increasing
// revision per view key; a cached renderer recomputes when the revision it
// stamped no longer matches. Invalidating Root bumps the global epoch that
// every view compares against in addition to its own key.
type Registry struct {
	mu   sync.Mutex
	revs map[string]uint64
}

func NewRegistry() *Registry {
	return &Registry{revs: make(map[string]uint64)}
}

func (r *Registry) Invalidate(key string) {
	r.mu.Lock()
	r.revs[key]++
	r.mu.Unlock()
}

// Revision reports the current revision for a key; a never-invalidated key
// is revision zero.
func (r *Registry) Revision(key string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revs[key]
}

// Noop discards every signal. Useful in tests that don't care about views.
type Noop struct{}

func (Noop) Invalidate(string) {}
