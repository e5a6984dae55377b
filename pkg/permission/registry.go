package permission

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Registry is a read-only lookup of registered permissions.
// A Base only ever reads from its registry; registration is the
// business of whoever owns the registry.
type Registry interface {
	// Permission returns the permission registered
	// under the given case-insensitive name, or nil.
	Permission(name string) *Permission
	// Permissions returns all registered permissions.
	Permissions() []*Permission
}

// Registrar is a Registry that also accepts registrations,
// enforcing name uniqueness.
type Registrar interface {
	Registry
	Register(p *Permission) error
	Unregister(name string)
}

// Returned by Registrar.Register when the
// permission name is already taken.
var ErrAlreadyRegistered = errors.New("permission is already registered")

// SimpleRegistry is an in-memory, thread-safe Registrar.
type SimpleRegistry struct {
	mu    sync.RWMutex
	perms map[string]*Permission // lower case names
}

var _ Registrar = (*SimpleRegistry)(nil)

// NewRegistry returns a new empty SimpleRegistry.
func NewRegistry() *SimpleRegistry {
	return &SimpleRegistry{perms: map[string]*Permission{}}
}

func (r *SimpleRegistry) Permission(name string) *Permission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.perms[strings.ToLower(name)]
}

func (r *SimpleRegistry) Permissions() []*Permission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	perms := make([]*Permission, 0, len(r.perms))
	for _, p := range r.perms {
		perms = append(perms, p)
	}
	return perms
}

func (r *SimpleRegistry) Register(p *Permission) error {
	if p == nil || p.Name() == "" {
		return errors.New("permission must have a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.perms[p.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, p.Name())
	}
	r.perms[p.Name()] = p
	return nil
}

func (r *SimpleRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.perms, strings.ToLower(name))
}
