package stone

import (
	"fmt"

	"go.minekube.com/brigodier"
	. "go.minekube.com/common/minecraft/color"
	. "go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/permission"
	"go.minekube.com/stone/pkg/plugin"
)

// command for listing the loaded plugins and their state
func newPluginsCmd(s *Server) brigodier.LiteralNodeBuilder {
	return brigodier.Literal("plugins").
		Requires(hasCmdPerm(pluginsCmdPermission)).
		Executes(command.Command(func(c *command.Context) error {
			return c.SendMessage(pluginList(s.loader.Plugins()))
		}))
}

func pluginList(plugins []plugin.Plugin) Component {
	extra := []Component{&Text{
		Content: fmt.Sprintf("Plugins (%d):", len(plugins)),
		S:       Style{Color: Yellow},
	}}
	for i, p := range plugins {
		if i != 0 {
			extra = append(extra, &Text{Content: ","})
		}
		c := Red
		if o, ok := p.(permission.Owner); ok && o.Enabled() {
			c = Green
		}
		desc := p.Description()
		name := desc.Name
		if desc.Version != "" {
			name = fmt.Sprintf("%s %s", name, desc.Version)
		}
		extra = append(extra, &Text{Content: " " + name, S: Style{Color: c}})
	}
	return &Text{Extra: extra}
}
