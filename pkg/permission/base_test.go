package permission

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakePlugin implements Owner for testing.
type fakePlugin struct {
	name    string
	enabled bool
}

func (p *fakePlugin) Name() string  { return p.name }
func (p *fakePlugin) Enabled() bool { return p.enabled }

func newTestRegistry(t *testing.T, perms ...*Permission) *SimpleRegistry {
	t.Helper()
	r := NewRegistry()
	for _, p := range perms {
		require.NoError(t, r.Register(p))
	}
	return r
}

func TestBaseDefaults(t *testing.T) {
	r := newTestRegistry(t,
		New("chat.talk", "", DefaultGranted, nil),
		New("server.stop", "", DefaultOperator, nil),
		New("secret", "", DefaultDenied, nil),
	)
	b := NewBase(r, testLog(t))

	require.True(t, b.HasPermission("chat.talk"))
	require.False(t, b.HasPermission("server.stop"))
	require.False(t, b.HasPermission("secret"))
	require.True(t, b.IsPermissionSet("chat.talk"))
	require.False(t, b.IsPermissionSet("server.stop"))
}

func TestBaseOperatorDefaults(t *testing.T) {
	r := newTestRegistry(t, New("server.stop", "", DefaultOperator, nil))
	b := NewBase(r, testLog(t))

	require.False(t, b.HasPermission("server.stop"))
	b.SetOp(true)
	require.True(t, b.HasPermission("server.stop"))
	require.True(t, b.HasPermission(OperatorWildcard))
	b.SetOp(false)
	require.False(t, b.HasPermission("server.stop"))
	require.False(t, b.HasPermission(OperatorWildcard))
}

func TestBaseSetOpIdempotent(t *testing.T) {
	r := newTestRegistry(t, New("server.stop", "", DefaultOperator, nil))
	b := NewBase(r, testLog(t))

	b.SetOp(true)
	once := b.EffectivePermissions()
	b.SetOp(true)
	require.Equal(t, once, b.EffectivePermissions())
}

func TestBaseExplicitDenyBeatsOperator(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	b.SetOp(true)

	plugin := &fakePlugin{name: "Foo", enabled: true}
	_, err := b.AddAttachmentValue(plugin, "x", false)
	require.NoError(t, err)

	require.False(t, b.HasPermission("x"))
	require.True(t, b.IsPermissionSet("x"))

	// The wildcard itself can be denied explicitly, too.
	_, err = b.AddAttachmentValue(plugin, OperatorWildcard, false)
	require.NoError(t, err)
	require.False(t, b.HasPermission(OperatorWildcard))
}

func TestBaseClosestDefinerWins(t *testing.T) {
	r := newTestRegistry(t,
		New("group.all", "", DefaultDenied, map[string]bool{"group.sub": true}),
	)
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b.AddAttachmentValue(plugin, "group.all", true)
	require.NoError(t, err)
	require.True(t, b.HasPermission("group.sub"))

	// A direct override is a closer definer than the implied child.
	a.SetPermission("group.sub", false)
	require.True(t, b.HasPermission("group.all"))
	require.False(t, b.HasPermission("group.sub"))
}

func TestBaseDeniedParentInvertsChildren(t *testing.T) {
	r := newTestRegistry(t,
		New("moderate", "", DefaultDenied, map[string]bool{
			"moderate.kick": true,
			"moderate.chat": false,
		}),
	)
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	_, err := b.AddAttachmentValue(plugin, "moderate", false)
	require.NoError(t, err)
	require.False(t, b.HasPermission("moderate"))
	require.False(t, b.HasPermission("moderate.kick"))
	require.True(t, b.HasPermission("moderate.chat"))
}

func TestBaseChildResolutionRecursesAndTerminates(t *testing.T) {
	root := New("root", "", DefaultDenied, map[string]bool{"mid": true})
	mid := New("mid", "", DefaultDenied, map[string]bool{"leaf": true, "root": true}) // cycle back
	r := newTestRegistry(t, root, mid, New("leaf", "", DefaultDenied, nil))
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	_, err := b.AddAttachmentValue(plugin, "root", true)
	require.NoError(t, err)
	require.True(t, b.HasPermission("root"))
	require.True(t, b.HasPermission("mid"))
	require.True(t, b.HasPermission("leaf"))
}

func TestBaseUnknownNameFallback(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	require.False(t, b.HasPermission("never.registered"))
	require.Equal(t, Undefined, b.PermissionValue("never.registered"))

	b.SetOp(true)
	require.True(t, b.HasPermission("never.registered"))
}

func TestBaseHasPermissionOfUnregistered(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	granted := New("loose.granted", "", DefaultGranted, nil)
	opOnly := New("loose.op", "", DefaultOperator, nil)

	require.True(t, b.HasPermissionOf(granted))
	require.False(t, b.HasPermissionOf(opOnly))
	require.False(t, b.IsPermissionSetOf(granted))

	b.SetOp(true)
	require.True(t, b.HasPermissionOf(opOnly))
}

func TestBaseCaseInsensitive(t *testing.T) {
	r := newTestRegistry(t, New("Chat.Talk", "", DefaultGranted, nil))
	b := NewBase(r, testLog(t))
	require.True(t, b.HasPermission("CHAT.TALK"))
	require.True(t, b.IsPermissionSet("chat.talk"))
}

func TestBaseDisabledPluginCannotAttach(t *testing.T) {
	b := NewBase(NewRegistry(), testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: false}

	a, err := b.AddAttachment(plugin)
	require.ErrorIs(t, err, ErrOwnerDisabled)
	require.Nil(t, a)

	a, err = b.AddAttachment(nil)
	require.ErrorIs(t, err, ErrNoOwner)
	require.Nil(t, a)
}

func TestBaseDisablingPluginDetachesAttachments(t *testing.T) {
	r := newTestRegistry(t, New("economy.pay", "", DefaultDenied, nil))
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	a, err := b.AddAttachmentValue(plugin, "economy.pay", true)
	require.NoError(t, err)
	require.True(t, b.HasPermission("economy.pay"))

	var hookFired int
	a.SetRemovalHook(func(*Attachment) { hookFired++ })

	plugin.enabled = false
	b.RecalculatePermissions()

	require.False(t, b.HasPermission("economy.pay"), "must fall back to the registry default")
	require.Equal(t, 1, hookFired)
	require.Empty(t, b.Attachments())
	require.False(t, b.RemoveAttachment(a), "already detached")
}

func TestBaseEffectivePermissionsSnapshot(t *testing.T) {
	r := newTestRegistry(t, New("chat.talk", "", DefaultGranted, nil))
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	snap := b.EffectivePermissions()
	require.Len(t, snap, 1)

	_, err := b.AddAttachmentValue(plugin, "extra", true)
	require.NoError(t, err)

	// The earlier snapshot must not have mutated.
	require.Len(t, snap, 1)
	require.Len(t, b.EffectivePermissions(), 2)

	for _, info := range b.EffectivePermissions() {
		switch info.Name {
		case "chat.talk":
			require.Equal(t, SourceDefault, info.Source)
			require.Nil(t, info.Attachment)
		case "extra":
			require.Equal(t, SourceAttachment, info.Source)
			require.NotNil(t, info.Attachment)
		default:
			t.Errorf("unexpected entry %q", info.Name)
		}
	}
}

func TestBaseConcurrentQueries(t *testing.T) {
	r := newTestRegistry(t,
		New("chat.talk", "", DefaultGranted, nil),
		New("server.stop", "", DefaultOperator, nil),
	)
	b := NewBase(r, testLog(t))
	plugin := &fakePlugin{name: "Foo", enabled: true}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				// Whatever interleaving, chat.talk is either the
				// default grant or an explicit override, never absent.
				require.True(t, b.HasPermission("chat.talk"))
				_ = b.EffectivePermissions()
				_ = b.IsPermissionSet("server.stop")
			}
		}()
	}

	for i := 0; i < 100; i++ {
		a, err := b.AddAttachmentValue(plugin, "chat.talk", true)
		require.NoError(t, err)
		b.SetOp(i%2 == 0)
		require.True(t, b.RemoveAttachment(a))
	}
	close(done)
	wg.Wait()
}
