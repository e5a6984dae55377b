package permission

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	uatomic "go.uber.org/atomic"
)

// Source tells where a resolved permission entry came from.
type Source string

const (
	SourceDefault    Source = "default"           // A registered permission's default policy.
	SourceAttachment Source = "attachment"        // An explicit attachment override.
	SourceOperator   Source = "operator-override" // The blanket operator grant.
)

// OperatorWildcard is the reserved all-permissions marker
// granted to operators.
const OperatorWildcard = "*"

// AttachmentInfo is one resolved entry of a subject's
// effective permission set.
type AttachmentInfo struct {
	Name       string
	Value      bool
	Source     Source
	Attachment *Attachment // nil unless Source is SourceAttachment
}

var (
	// Returned by AddAttachment when the owner is nil.
	ErrNoOwner = errors.New("attachment must have an owning plugin")
	// Returned by AddAttachment when the owning plugin is not enabled.
	ErrOwnerDisabled = errors.New("disabled plugin can not register an attachment")
)

// Base is the per-subject permission resolution engine.
//
// It aggregates the registry defaults, the subject's operator flag and
// all attached overrides into one effective permission set. The set is
// rebuilt on every mutation and published atomically as an immutable
// snapshot, so queries are lock-free and never observe a partially
// rebuilt set. Mutations (attachment add/remove, override changes, op
// toggling) are serialized by an internal mutex.
type Base struct {
	registry Registry
	log      logr.Logger

	op uatomic.Bool

	mu          sync.Mutex // Protects attachments and serializes rebuilds.
	attachments []*Attachment

	effective atomic.Pointer[map[string]AttachmentInfo]
}

var _ Subject = (*Base)(nil)

// NewBase returns a Base resolving against the given registry.
// The registry may be nil, in which case only attachment overrides and
// the operator wildcard resolve. The zero logr.Logger logs nothing.
func NewBase(registry Registry, log logr.Logger) *Base {
	b := &Base{registry: registry, log: log}
	b.recalculate()
	return b
}

// IsOp returns whether the subject is a server operator.
func (b *Base) IsOp() bool { return b.op.Load() }

// SetOp updates the operator flag and recalculates.
// Setting the current value is a no-op.
func (b *Base) SetOp(op bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.op.Load() == op {
		return
	}
	b.op.Store(op)
	b.recalculate()
}

// IsPermissionSet returns true if the effective permission set
// contains an entry for the exact given name.
func (b *Base) IsPermissionSet(name string) bool {
	_, ok := b.snapshot()[strings.ToLower(name)]
	return ok
}

// IsPermissionSetOf is IsPermissionSet using the permission's name.
func (b *Base) IsPermissionSetOf(p *Permission) bool {
	return p != nil && b.IsPermissionSet(p.Name())
}

// HasPermission returns whether the subject holds the permission,
// falling back to the registered default for unset names.
func (b *Base) HasPermission(name string) bool {
	return b.PermissionValue(name).Bool()
}

// HasPermissionOf is HasPermission using the permission's own default
// if its name is not registered.
func (b *Base) HasPermissionOf(p *Permission) bool {
	if p == nil {
		return false
	}
	if info, ok := b.snapshot()[p.Name()]; ok {
		return info.Value
	}
	return p.Default().Value(b.IsOp())
}

// PermissionValue returns the TriState of the permission.
// Names neither set nor registered resolve via UnknownDefault,
// yielding Undefined for non-operators.
func (b *Base) PermissionValue(name string) TriState {
	name = strings.ToLower(name)
	if info, ok := b.snapshot()[name]; ok {
		return FromBool(info.Value)
	}
	if b.registry != nil {
		if p := b.registry.Permission(name); p != nil {
			return FromBool(p.Default().Value(b.IsOp()))
		}
	}
	if UnknownDefault.Value(b.IsOp()) {
		return True
	}
	return Undefined
}

// EffectivePermissions returns the resolved permission set as a copy,
// sorted by name.
func (b *Base) EffectivePermissions() []AttachmentInfo {
	m := b.snapshot()
	infos := make([]AttachmentInfo, 0, len(m))
	for _, info := range m {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// AddAttachment registers a new attachment owned by the given plugin.
// It fails with ErrOwnerDisabled if the plugin is not currently enabled.
func (b *Base) AddAttachment(owner Owner) (*Attachment, error) {
	return b.addAttachment(owner, nil)
}

// AddAttachmentValue is AddAttachment seeding one override.
func (b *Base) AddAttachmentValue(owner Owner, name string, value bool) (*Attachment, error) {
	return b.addAttachment(owner, func(a *Attachment) {
		a.overrides[strings.ToLower(name)] = value
	})
}

func (b *Base) addAttachment(owner Owner, seed func(*Attachment)) (*Attachment, error) {
	if owner == nil {
		return nil, ErrNoOwner
	}
	if !owner.Enabled() {
		b.log.Info("Disabled plugin attempted to register a permission attachment",
			"plugin", owner.Name())
		return nil, ErrOwnerDisabled
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a := newAttachment(owner, b)
	if seed != nil {
		seed(a)
	}
	b.attachments = append(b.attachments, a)
	b.recalculate()
	return a, nil
}

// RemoveAttachment detaches the attachment and recalculates.
// It returns false if the attachment does not belong to this subject
// or was already detached.
func (b *Base) RemoveAttachment(a *Attachment) bool {
	if a == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, x := range b.attachments {
		if x == a {
			b.attachments = append(b.attachments[:i], b.attachments[i+1:]...)
			a.detach()
			b.recalculate()
			return true
		}
	}
	return false
}

// Attachments returns a copy of the attachments currently
// applied to this subject, in insertion order.
func (b *Base) Attachments() []*Attachment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Attachment(nil), b.attachments...)
}

// RecalculatePermissions rebuilds the effective permission set and
// publishes it. Attachments whose owning plugin is no longer enabled
// are detached in the process, firing their removal hooks.
func (b *Base) RecalculatePermissions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recalculate()
}

func (b *Base) snapshot() map[string]AttachmentInfo {
	if m := b.effective.Load(); m != nil {
		return *m
	}
	return nil
}

// Resolution phases, in increasing strength.
const (
	phaseDefault = iota
	phaseAttachment
)

// writeOrder records how an entry was written: a later write only
// replaces an earlier one from a weaker phase, or from the same phase
// at the same or greater child depth (closest-definer-wins).
type writeOrder struct {
	phase int
	depth int
}

// recalculate rebuilds the effective permission set off to the side
// and publishes it with a single atomic store. Callers must hold b.mu
// (except during construction).
func (b *Base) recalculate() {
	op := b.op.Load()

	// A disabled plugin must not influence live authorization
	// decisions: drop its attachments before resolving.
	var detached []*Attachment
	kept := make([]*Attachment, 0, len(b.attachments))
	for _, a := range b.attachments {
		if a.owner != nil && !a.owner.Enabled() {
			detached = append(detached, a)
			continue
		}
		kept = append(kept, a)
	}
	b.attachments = kept

	eff := make(map[string]AttachmentInfo)
	order := make(map[string]writeOrder)

	if b.registry != nil {
		for _, p := range b.registry.Permissions() {
			if !p.Default().Value(op) {
				continue
			}
			b.write(eff, order, p.Name(), true, phaseDefault, 0, nil)
		}
	}

	for _, a := range b.attachments {
		for name, value := range a.Permissions() {
			b.write(eff, order, name, value, phaseAttachment, 0, a)
		}
	}

	if op {
		// Explicit beats implicit: an attachment override for the
		// wildcard outranks the blanket operator grant.
		if e, ok := eff[OperatorWildcard]; !ok || e.Source != SourceAttachment {
			eff[OperatorWildcard] = AttachmentInfo{
				Name:   OperatorWildcard,
				Value:  true,
				Source: SourceOperator,
			}
		}
	}

	b.effective.Store(&eff)

	for _, a := range detached {
		a.detach()
	}
}

// write inserts a resolved entry and recurses into the permission's
// children. A child implied by a denied parent is inverted; an entry
// already defined by a closer ancestor, or by a stronger phase, wins.
func (b *Base) write(
	eff map[string]AttachmentInfo,
	order map[string]writeOrder,
	name string,
	value bool,
	phase, depth int,
	att *Attachment,
) {
	name = strings.ToLower(name)
	if cur, ok := order[name]; ok {
		if cur.phase > phase || (cur.phase == phase && cur.depth < depth) {
			return
		}
	}
	src := SourceDefault
	if att != nil {
		src = SourceAttachment
	}
	eff[name] = AttachmentInfo{Name: name, Value: value, Source: src, Attachment: att}
	order[name] = writeOrder{phase: phase, depth: depth}

	if b.registry == nil {
		return
	}
	p := b.registry.Permission(name)
	if p == nil {
		return
	}
	for child, implied := range p.Children() {
		b.write(eff, order, child, implied == value, phase, depth+1, att)
	}
}
