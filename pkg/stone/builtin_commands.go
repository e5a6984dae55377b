package stone

import (
	"go.minekube.com/brigodier"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/command/suggest"
	"go.minekube.com/stone/pkg/permission"
)

const (
	pluginsCmdPermission    = "stone.command.plugins"
	opCmdPermission         = "stone.command.op"
	deopCmdPermission       = "stone.command.deop"
	permsCmdPermission      = "stone.command.perms"
	permsOtherCmdPermission = "stone.command.perms.other"
)

// builtinPermissions are registered before any plugin can declare
// permissions, so plugins collide with them, not the other way round.
func builtinPermissions() []*permission.Permission {
	return []*permission.Permission{
		permission.New(pluginsCmdPermission,
			"Allows listing the loaded plugins", permission.DefaultGranted, nil),
		permission.New(opCmdPermission,
			"Allows granting operator status", permission.DefaultOperator, nil),
		permission.New(deopCmdPermission,
			"Allows revoking operator status", permission.DefaultOperator, nil),
		permission.New(permsCmdPermission,
			"Allows inspecting one's own effective permissions", permission.DefaultGranted,
			map[string]bool{permsOtherCmdPermission: false}),
		permission.New(permsOtherCmdPermission,
			"Allows inspecting any actor's effective permissions", permission.DefaultOperator, nil),
	}
}

func (s *Server) registerBuiltinCommands() {
	s.commands.RegisterWithAliases(newPluginsCmd(s), "pl")
	s.commands.Register(newOpCmd(s))
	s.commands.Register(newDeopCmd(s))
	s.commands.Register(newPermsCmd(s))
}

func hasCmdPerm(perm string) brigodier.RequireFn {
	return command.Requires(func(c *command.RequiresContext) bool {
		return c.Source.HasPermission(perm)
	})
}

func actorSuggestionProvider(s *Server) brigodier.SuggestionProvider {
	return command.SuggestFunc(func(
		_ *command.Context,
		b *brigodier.SuggestionsBuilder,
	) *brigodier.Suggestions {
		return suggest.Similar(b, actorNames(s)).Build()
	})
}

func actorNames(s *Server) []string {
	actors := s.Actors()
	n := make([]string, len(actors))
	for i, a := range actors {
		n[i] = a.Name()
	}
	return n
}
