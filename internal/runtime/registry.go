package runtime

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fabworks/contentbridge/internal/domain"
)

// Registry holds the configurations a deployment exposes, keyed by name.
// Registration happens at bootstrap; lookups happen per request.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]Configuration
}

func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]Configuration)}
}

// Register adds a configuration under its own name. Re-registering a name
// replaces the previous entry.
func (r *Registry) Register(c Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[c.Name()] = c
}

// Get returns the configuration registered under name.
func (r *Registry) Get(name string) (Configuration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigurationNotFound, name)
	}
	return c, nil
}

// Names returns the registered configuration names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
