package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Backend name constants.
const (
	// BackendWindow is the name of the interactive desktop backend.
	BackendWindow = "window"
	// BackendHeadless is the name of the scripted file-output backend.
	BackendHeadless = "headless"
)

// Factory creates a backend instance.
type Factory func(cfg Config) (Backend, error)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{BackendWindow, BackendHeadless}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get creates the named backend.
func Get(name string, cfg Config) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(cfg)
}

// Default creates the highest-priority registered backend.
func Default(cfg Config) (Backend, error) {
	registryMu.RLock()
	var factory Factory
	for _, name := range backendPriority {
		if f, ok := backends[name]; ok {
			factory = f
			break
		}
	}
	registryMu.RUnlock()

	if factory == nil {
		return nil, ErrBackendNotAvailable
	}
	return factory(cfg)
}
