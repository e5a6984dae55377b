// Package permission implements permission resolution for command-capable
// subjects like players and the console.
//
// A Permission is a named capability with a default-access policy and
// optional child permissions used for wildcard-style grouping.
// A Subject's effective permissions are resolved by a Base from the
// registered defaults, the subject's operator flag and the overrides of
// every Attachment a plugin has applied to the subject.
//
// E.g. a plugin grants a player the "economy.pay" capability on join by
// adding an attachment and setting the override; removing the attachment
// restores the registered default.
package permission

import (
	"fmt"
	"strings"
	"sync"
)

// Subject is a permission holder like a player.
type Subject interface {
	HasPermission(permission string) bool // Equal to PermissionValue(...).Bool()
	PermissionValue(permission string) TriState
}

// Func is the permission function to obtain the TriState for a permission.
type Func func(permission string) TriState

// TriState can be in three states (True, False, Undefined), used for a setting.
type TriState uint8

const (
	Undefined TriState = iota // A permission is undefined.
	True                      // A permission is allowed.
	False                     // A permission is explicitly denied.
)

// Bool returns the bool value of a TriState where
// Undefined is converted to false.
func (t TriState) Bool() bool {
	return t == True
}

// FromBool converts a bool to True or False.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// Default is the default-access policy of a Permission, determining the
// value a subject has for the permission absent any attachment override.
type Default uint8

const (
	DefaultDenied   Default = iota // Not granted by default.
	DefaultGranted                 // Granted to every subject by default.
	DefaultOperator                // Granted to operators only.
)

// UnknownDefault is the policy used for permission names
// not known to the registry.
var UnknownDefault = DefaultOperator

// Value resolves the policy for a subject with the given operator status.
func (d Default) Value(op bool) bool {
	switch d {
	case DefaultGranted:
		return true
	case DefaultOperator:
		return op
	}
	return false
}

func (d Default) String() string {
	switch d {
	case DefaultGranted:
		return "granted"
	case DefaultOperator:
		return "operator"
	}
	return "denied"
}

// ParseDefault parses a Default from its common spellings
// as found in config files and plugin descriptions.
func ParseDefault(s string) (Default, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "granted", "yes":
		return DefaultGranted, nil
	case "false", "denied", "no", "":
		return DefaultDenied, nil
	case "op", "operator", "admin":
		return DefaultOperator, nil
	}
	return DefaultDenied, fmt.Errorf("unknown permission default %q", s)
}

// Permission is a named capability subjects can hold.
//
// Permissions are registered once by plugin setup code and are immutable
// by identity thereafter; only children may still be added, which is safe
// to race with resolution.
type Permission struct {
	name        string
	description string
	def         Default

	mu       sync.RWMutex // Protects children.
	children map[string]bool
}

// New returns a new Permission.
// The name is lower-cased; the children map is copied and may be nil.
func New(name, description string, def Default, children map[string]bool) *Permission {
	c := make(map[string]bool, len(children))
	for child, implied := range children {
		c[strings.ToLower(child)] = implied
	}
	return &Permission{
		name:        strings.ToLower(name),
		description: description,
		def:         def,
		children:    c,
	}
}

// Name returns the unique, lower-cased name of this permission.
func (p *Permission) Name() string { return p.name }

// Description returns the human-readable description.
func (p *Permission) Description() string { return p.description }

// Default returns the default-access policy.
func (p *Permission) Default() Default { return p.def }

// Children returns a copy of the child permission names
// mapped to their implied value.
func (p *Permission) Children() map[string]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c := make(map[string]bool, len(p.children))
	for child, implied := range p.children {
		c[child] = implied
	}
	return c
}

// AddChild adds a child permission implication.
// Subjects only observe the change after their next recalculation.
func (p *Permission) AddChild(name string, implied bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.children[strings.ToLower(name)] = implied
}
