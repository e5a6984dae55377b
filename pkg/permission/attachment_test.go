package permission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachmentSetUnset(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b.AddAttachment(plugin)
	require.NoError(t, err)
	require.Same(t, b, a.Permissible())
	require.Equal(t, plugin, a.Owner())

	a.SetPermission("Economy.Pay", true)
	require.True(t, b.HasPermission("economy.pay"))
	require.Equal(t, map[string]bool{"economy.pay": true}, a.Permissions())

	a.SetPermission("economy.pay", false)
	require.False(t, b.HasPermission("economy.pay"))

	a.UnsetPermission("economy.pay")
	require.False(t, b.IsPermissionSet("economy.pay"))

	// Unsetting an absent override is a no-op, not an error.
	a.UnsetPermission("never.set")
}

func TestAttachmentInsertionOrder(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	first, err := b.AddAttachmentValue(plugin, "x", true)
	require.NoError(t, err)
	second, err := b.AddAttachmentValue(plugin, "x", false)
	require.NoError(t, err)

	// The later attached override wins.
	require.False(t, b.HasPermission("x"))
	require.Equal(t, []*Attachment{first, second}, b.Attachments())

	require.True(t, b.RemoveAttachment(second))
	require.True(t, b.HasPermission("x"))
}

func TestAttachmentRemove(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b.AddAttachmentValue(plugin, "x", true)
	require.NoError(t, err)

	var hookFired int
	a.SetRemovalHook(func(removed *Attachment) {
		require.Same(t, a, removed)
		hookFired++
	})

	require.True(t, a.Remove())
	require.Equal(t, 1, hookFired)
	require.False(t, b.HasPermission("x"))
	require.Empty(t, b.EffectivePermissions())

	// A second removal fails and must not fire the hook again.
	require.False(t, a.Remove())
	require.False(t, b.RemoveAttachment(a))
	require.Equal(t, 1, hookFired)
}

func TestAttachmentInertAfterRemove(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b.AddAttachment(plugin)
	require.NoError(t, err)
	require.True(t, a.Remove())

	// Mutations are accepted but have no observable effect.
	a.SetPermission("x", true)
	a.UnsetPermission("x")
	require.False(t, b.IsPermissionSet("x"))
}

func TestAttachmentForeignBase(t *testing.T) {
	b1 := NewBase(NewRegistry(), testLog(t))
	b2 := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b1.AddAttachment(plugin)
	require.NoError(t, err)

	// Ownership mismatch is a boolean failure, not a fatal condition.
	require.False(t, b2.RemoveAttachment(a))
	require.True(t, b1.RemoveAttachment(a))
}
