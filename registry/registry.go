// Package registry assigns the codec's container-facing filter identity
// and caches the frozen params.Params block negotiated per dataset, keyed
// by dataset name via xxHash64.
package registry

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/scaleoffset/errs"
	"github.com/arloliu/scaleoffset/params"
)

// FilterID is the unsigned 16-bit filter identity tag a container registers
// the codec under. It is a fixed constant rather than something assigned at
// runtime: containers that embed this codec compile it in once.
const FilterID uint16 = 0x4F53 // "OS", chosen arbitrarily outside HDF5's reserved range

// FilterName is the display name the container shows alongside FilterID.
const FilterName = "scaleoffset"

// DatasetKey derives the cache key for a dataset name: xxHash64 of the name
// string.
func DatasetKey(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Registry caches one frozen params.Params block per dataset, so a
// container need only negotiate (can-apply/set-local) once per dataset
// lifetime and replay the cached block on every subsequent chunk.
//
// Registry is safe for concurrent use; readers and writers may overlap
// across goroutines handling independent chunks of the same dataset.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint64]params.Params
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[uint64]params.Params)}
}

// Freeze stores p under name's dataset key, overwriting any prior entry.
func (r *Registry) Freeze(name string, p params.Params) {
	key := DatasetKey(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = p
}

// Lookup returns the frozen params.Params for name.
//
// Returns errs.ErrUnknownDataset if name was never frozen.
func (r *Registry) Lookup(name string) (params.Params, error) {
	key := DatasetKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.entries[key]
	if !ok {
		return params.Params{}, errs.ErrUnknownDataset
	}

	return p, nil
}

// Forget removes name's cached entry, if any.
func (r *Registry) Forget(name string) {
	key := DatasetKey(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}
