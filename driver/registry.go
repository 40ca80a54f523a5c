package driver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNoDriver is returned when no registered driver could be loaded.
var ErrNoDriver = errors.New("driver: no driver available")

// Factory loads a driver for the GL context that is current on the calling
// thread.
type Factory func() (Functions, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for driver selection (first that loads wins).
	driverPriority = []string{"glcore"}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// A driver registered under an existing name replaces it.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a driver from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered driver names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get loads the driver registered under name.
func Get(name string) (Functions, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrNoDriver, name)
	}
	return factory()
}

// Default loads the best available driver based on priority, falling back
// to any other registered driver. The errors of every failed attempt are
// joined into the returned error.
func Default() (Functions, error) {
	registryMu.RLock()
	ordered := make([]string, 0, len(factories))
	seen := make(map[string]bool, len(factories))
	for _, name := range driverPriority {
		if _, ok := factories[name]; ok {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range factories {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)
	candidates := make([]Factory, len(ordered))
	for i, name := range ordered {
		candidates[i] = factories[name]
	}
	registryMu.RUnlock()

	errs := []error{ErrNoDriver}
	for i, factory := range candidates {
		fns, err := factory()
		if err == nil && fns != nil {
			return fns, nil
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ordered[i], err))
		}
	}
	return nil, errors.Join(errs...)
}
