package editor

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry holds editor providers and selects among them per file.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	byTypeID  map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		byTypeID: make(map[string]Provider),
	}
}

// Register adds a provider. Type IDs must be unique.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.TypeID()
	if _, exists := r.byTypeID[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, id)
	}
	r.byTypeID[id] = p
	r.providers = append(r.providers, p)
	return nil
}

// Unregister removes a provider by type ID.
func (r *Registry) Unregister(typeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTypeID[typeID]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, typeID)
	}
	delete(r.byTypeID, typeID)
	for i, p := range r.providers {
		if p.TypeID() == typeID {
			r.providers = append(r.providers[:i], r.providers[i+1:]...)
			break
		}
	}
	return nil
}

// Provider returns the provider registered under the given type ID.
func (r *Registry) Provider(typeID string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byTypeID[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, typeID)
	}
	return p, nil
}

// Providers returns all registered providers in registration order.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// ProvidersFor returns the providers accepting the file, ordered by policy
// precedence: hide-default first, then default, then place-after-default.
// Registration order breaks ties.
func (r *Registry) ProvidersFor(ctx context.Context, file File) []Provider {
	r.mu.RLock()
	candidates := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Accept(ctx, file) {
			candidates = append(candidates, p)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Policy() > candidates[j].Policy()
	})
	return candidates
}

// Open constructs an editor for the file using the highest-precedence
// accepting provider.
func (r *Registry) Open(ctx context.Context, file File) (Editor, error) {
	candidates := r.ProvidersFor(ctx, file)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvider, file.Path)
	}
	return candidates[0].CreateEditor(ctx, file)
}
