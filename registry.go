// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixsurf

import (
	"errors"
	"sort"
	"sync"
)

// DriverEntry represents a registered driver.
type DriverEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// The built-in software driver registers with priority 10.
	Priority int

	// Driver allocates surface memory.
	Driver Driver

	// Available reports if the driver can be used on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered surface drivers.
//
// Example registration:
//
//	func init() {
//	    pixsurf.RegisterDriver("shm", 50, shmDriver, shmAvailable)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*DriverEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via RegisterDriver.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*DriverEntry),
	}
}

// RegisterDriver adds a driver to the global registry.
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterDriver(name string, priority int, d Driver, available func() bool) {
	globalRegistry.Register(name, priority, d, available)
}

// UnregisterDriver removes a driver from the global registry.
func UnregisterDriver(name string) {
	globalRegistry.Unregister(name)
}

// Drivers returns all registered driver names sorted by priority.
func Drivers() []string {
	return globalRegistry.List()
}

// DefaultDriver returns the best available driver of the global registry.
func DefaultDriver() (Driver, error) {
	return globalRegistry.Best()
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, d Driver, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &DriverEntry{
		Name:      name,
		Priority:  priority,
		Driver:    d,
		Available: available,
	}
}

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry for a specific driver.
func (r *Registry) Get(name string) (*DriverEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// Lookup returns the named driver if it is registered and available.
func (r *Registry) Lookup(name string) (Driver, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}
	return entry.Driver, nil
}

// Best returns the available driver with the highest priority.
func (r *Registry) Best() (Driver, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	for _, name := range names {
		if d, err := r.Lookup(name); err == nil {
			return d, nil
		}
	}
	return nil, ErrNoDriverAvailable
}

// NewSurface creates a surface with the best available driver of this
// registry. A WithDriver option still takes precedence.
func (r *Registry) NewSurface(w, h int, opts ...SurfaceOption) (*Surface, error) {
	d, err := r.Best()
	if err != nil {
		return nil, err
	}
	return NewSurface(w, h, append([]SurfaceOption{WithDriver(d)}, opts...)...)
}

// NewSurfaceByName creates a surface with a specific driver.
func (r *Registry) NewSurfaceByName(name string, w, h int, opts ...SurfaceOption) (*Surface, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewSurface(w, h, append([]SurfaceOption{WithDriver(d)}, opts...)...)
}

// sortedNames returns driver names sorted by priority (highest first),
// then by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*DriverEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoDriverAvailable is returned when no drivers are registered or
// available on the current system.
var ErrNoDriverAvailable = errors.New("pixsurf: no driver available")

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "pixsurf: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but is not available.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "pixsurf: driver unavailable: " + e.Name
}

func init() {
	RegisterDriver("software", 10, &SoftwareDriver{}, nil)
}
