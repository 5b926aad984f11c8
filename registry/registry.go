package registry

import (
	"fmt"
	"sync"

	"github.com/stewardhq/steward/core"
)

// Registry is an ordered, name-unique collection of plugins. Enumeration
// order equals registration order and determines routing precedence.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	plugins map[string]core.Plugin
}

// New constructs an empty registry.
func New() *Registry {
	return &Registry{plugins: make(map[string]core.Plugin)}
}

// Register adds a plugin under its name. A plugin whose name is already
// taken is rejected with *core.DuplicatePluginError; the earlier
// registration is never overwritten.
func (r *Registry) Register(p core.Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := p.Name()
	if _, exists := r.plugins[name]; exists {
		return &core.DuplicatePluginError{Name: name}
	}
	r.plugins[name] = p
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a plugin by name, wrapping core.ErrPluginNotFound when absent.
func (r *Registry) Get(name string) (core.Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrPluginNotFound, name)
	}
	return p, nil
}

// Plugins returns the registered plugins in stable registration order.
func (r *Registry) Plugins() []core.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Plugin, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.plugins[name])
	}
	return out
}

// Names returns the plugin names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
