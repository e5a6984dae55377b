package permission

import (
	"strings"
	"sync"
)

// Owner is the plugin an Attachment belongs to.
// It is a non-owning handle; an owner that reports Enabled() == false
// can no longer acquire attachments and its existing attachments are
// detached on the next recalculation.
type Owner interface {
	Name() string
	Enabled() bool
}

// Attachment is a revocable set of permission overrides a plugin
// applies to exactly one subject.
//
// Every mutation synchronously triggers the owning Base's
// recalculation. After Remove, an Attachment is inert: mutations are
// still accepted but no subject consults the attachment anymore.
type Attachment struct {
	owner Owner
	base  *Base

	mu        sync.Mutex
	overrides map[string]bool // lower case names
	onRemoved func(*Attachment)
	removed   bool
}

func newAttachment(owner Owner, base *Base) *Attachment {
	return &Attachment{
		owner:     owner,
		base:      base,
		overrides: map[string]bool{},
	}
}

// Owner returns the plugin that created this attachment.
func (a *Attachment) Owner() Owner { return a.owner }

// Permissible returns the Base this attachment is applied to.
func (a *Attachment) Permissible() *Base { return a.base }

// Permissions returns a copy of the overrides held by this attachment.
func (a *Attachment) Permissions() map[string]bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	m := make(map[string]bool, len(a.overrides))
	for name, value := range a.overrides {
		m[name] = value
	}
	return m
}

// SetPermission inserts or overwrites an override
// and recalculates the owning subject.
func (a *Attachment) SetPermission(name string, value bool) {
	a.mu.Lock()
	a.overrides[strings.ToLower(name)] = value
	a.mu.Unlock()
	a.base.RecalculatePermissions()
}

// SetPermissionOf is SetPermission using the permission's name.
func (a *Attachment) SetPermissionOf(p *Permission, value bool) {
	a.SetPermission(p.Name(), value)
}

// UnsetPermission removes an override if present (no-op otherwise)
// and recalculates the owning subject.
func (a *Attachment) UnsetPermission(name string) {
	a.mu.Lock()
	delete(a.overrides, strings.ToLower(name))
	a.mu.Unlock()
	a.base.RecalculatePermissions()
}

// SetRemovalHook sets the function called exactly once when this
// attachment is detached from its subject.
// The hook must not call back into the subject's Base.
func (a *Attachment) SetRemovalHook(fn func(*Attachment)) {
	a.mu.Lock()
	a.onRemoved = fn
	a.mu.Unlock()
}

// Remove detaches this attachment from its subject and fires the
// removal hook. It returns false if the attachment was already removed.
func (a *Attachment) Remove() bool {
	return a.base.RemoveAttachment(a)
}

// detach marks the attachment removed and fires the removal hook once.
// Called with the owning Base's mutex held.
func (a *Attachment) detach() {
	a.mu.Lock()
	fn := a.onRemoved
	fired := a.removed
	a.removed = true
	a.mu.Unlock()
	if !fired && fn != nil {
		fn(a)
	}
}
