package provider

import (
	"sort"
	"sync"
)

// Registry maps provider names to backend factories. The set is assembled at
// startup and looked up per invocation.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	factory         Factory
	needsCredential bool
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a backend factory under the given name. needsCredential
// records whether the backend requires an API key. Registering an existing
// name replaces it.
func (r *Registry) Register(name string, needsCredential bool, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{factory: f, needsCredential: needsCredential}
}

// New constructs the named provider with the given options.
// Returns *UnknownProviderError for unregistered names.
func (r *Registry) New(name string, opts Options) (Provider, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownProviderError{Name: name, Available: r.List()}
	}

	return e.factory(opts)
}

// Has returns true if a backend with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// NeedsCredential reports whether the named backend requires an API key.
// Returns *UnknownProviderError for unregistered names.
func (r *Registry) NeedsCredential(name string) (bool, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return false, &UnknownProviderError{Name: name, Available: r.List()}
	}
	return e.needsCredential, nil
}

// List returns the sorted names of all registered backends.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
