package permission

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/require"
)

func testLog(t *testing.T) logr.Logger {
	t.Helper()
	return testr.New(t)
}

func TestDefaultValue(t *testing.T) {
	require.True(t, DefaultGranted.Value(false))
	require.True(t, DefaultGranted.Value(true))
	require.False(t, DefaultDenied.Value(true))
	require.False(t, DefaultOperator.Value(false))
	require.True(t, DefaultOperator.Value(true))
}

func TestParseDefault(t *testing.T) {
	for in, want := range map[string]Default{
		"true":     DefaultGranted,
		"Granted":  DefaultGranted,
		"false":    DefaultDenied,
		"op":       DefaultOperator,
		"OPERATOR": DefaultOperator,
		"":         DefaultDenied,
	} {
		got, err := ParseDefault(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseDefault("sometimes")
	require.Error(t, err)
}

func TestPermissionName(t *testing.T) {
	p := New("Chat.Talk", "allows chatting", DefaultGranted, nil)
	require.Equal(t, "chat.talk", p.Name())
	require.Equal(t, "allows chatting", p.Description())
	require.Equal(t, DefaultGranted, p.Default())
}

func TestPermissionChildrenCopied(t *testing.T) {
	children := map[string]bool{"Group.Sub": true}
	p := New("group.all", "", DefaultDenied, children)

	children["group.sub"] = false // callers must not reach the internal map
	require.Equal(t, map[string]bool{"group.sub": true}, p.Children())

	got := p.Children()
	got["group.sub"] = false
	require.Equal(t, map[string]bool{"group.sub": true}, p.Children())
}

func TestPermissionAddChild(t *testing.T) {
	p := New("group.all", "", DefaultDenied, nil)
	p.AddChild("Group.Late", true)
	require.Equal(t, map[string]bool{"group.late": true}, p.Children())
}

func TestTriState(t *testing.T) {
	require.True(t, True.Bool())
	require.False(t, False.Bool())
	require.False(t, Undefined.Bool())
	require.Equal(t, True, FromBool(true))
	require.Equal(t, False, FromBool(false))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New("a.b", "", DefaultGranted, nil)))
	require.ErrorIs(t, r.Register(New("A.B", "", DefaultDenied, nil)), ErrAlreadyRegistered)
	require.Error(t, r.Register(nil))

	require.NotNil(t, r.Permission("A.b"))
	require.Nil(t, r.Permission("missing"))
	require.Len(t, r.Permissions(), 1)

	r.Unregister("a.B")
	require.Nil(t, r.Permission("a.b"))
	require.Empty(t, r.Permissions())
}
