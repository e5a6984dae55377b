package stone

import (
	"context"
	"testing"

	"github.com/robinbraemer/event"
	"github.com/stretchr/testify/require"
	. "go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/permission"
	"go.minekube.com/stone/pkg/plugin"
)

// economyPlugin grants its target a permission while enabled.
type economyPlugin struct {
	plugin.Base
	target *HumanActor
}

func (p *economyPlugin) Description() plugin.Description {
	return plugin.Description{
		Name:    "Economy",
		Version: "1.0.0",
		Permissions: []*permission.Permission{
			permission.New("economy.pay", "Allows sending money", permission.DefaultDenied, nil),
		},
	}
}

func (p *economyPlugin) OnEnable() {
	_, _ = p.target.AddAttachmentValue(p, "economy.pay", true)
}

func TestPluginGrantDetachedOnDisable(t *testing.T) {
	s := newTestServer(t, nil)
	steve := s.NewHumanActor(newFakePlayer("Steve"))

	p := &economyPlugin{target: steve}
	require.NoError(t, s.Loader().Load(p))
	require.False(t, steve.HasPermission("economy.pay"))

	require.NoError(t, s.Loader().Enable(p))
	require.True(t, steve.HasPermission("economy.pay"))

	// Disabling the plugin detaches its attachments from every live
	// subject; the query falls back to the registered default.
	require.NoError(t, s.Loader().Disable(p))
	require.False(t, steve.HasPermission("economy.pay"))
	require.False(t, steve.IsPermissionSet("economy.pay"))
}

func TestPluginCommandBlockedWhileDisabled(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	var runs int
	p := &economyPlugin{target: s.NewHumanActor(newFakePlayer("Steve"))}
	require.NoError(t, s.Loader().Load(p))
	_, err := p.RegisterCommand(command.Definition{
		Name: "pay",
		Run: func(c *command.Context) error {
			runs++
			return nil
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Loader().Enable(p))

	require.NoError(t, s.Commands().Do(ctx, s.Console(), "pay"))
	require.Equal(t, 1, runs)

	require.NoError(t, s.Loader().Disable(p))
	require.Error(t, s.Commands().Do(ctx, s.Console(), "pay"))
	require.Equal(t, 1, runs)
}

func TestInitPlugins(t *testing.T) {
	s := newTestServer(t, nil)
	p := &economyPlugin{target: s.NewHumanActor(newFakePlayer("Steve"))}

	Plugins = append(Plugins, p)
	t.Cleanup(func() { Plugins = nil })

	require.NoError(t, s.InitPlugins())
	require.True(t, p.Enabled())
	require.Equal(t, plugin.Plugin(p), s.Loader().Plugin("Economy"))
}

func TestShutdown(t *testing.T) {
	s := newTestServer(t, nil)
	p := &economyPlugin{target: s.NewHumanActor(newFakePlayer("Steve"))}
	require.NoError(t, s.Loader().Load(p))
	require.NoError(t, s.Loader().Enable(p))

	var fired int
	event.Subscribe(s.Events(), 0, func(e *ShutdownEvent) { fired++ })

	s.Shutdown(&Text{Content: "maintenance"})
	require.False(t, p.Enabled())
	require.Equal(t, 1, fired)
}
