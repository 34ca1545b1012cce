// Package catalog keeps a local view of products announced by other services
// over the broker.
package catalog

import (
	"sync"
	"time"
)

type Registry struct {
	mu       sync.RWMutex
	products map[string]time.Time
}

func NewRegistry() *Registry {
	return &Registry{products: make(map[string]time.Time)}
}

// Record notes that a product now exists upstream. Re-announcing an already
// known product refreshes its timestamp.
func (r *Registry) Record(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[productID] = time.Now().UTC()
}

func (r *Registry) Known(productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.products[productID]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
