package stone

import (
	"fmt"

	"go.minekube.com/brigodier"
	. "go.minekube.com/common/minecraft/color"
	. "go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/permission"
)

// effectiveSubject is an Actor whose resolved permission set can be
// listed. All server-created actors satisfy it.
type effectiveSubject interface {
	Actor
	EffectivePermissions() []permission.AttachmentInfo
}

// command for inspecting an actor's resolved permission set
func newPermsCmd(s *Server) brigodier.LiteralNodeBuilder {
	const permsActorArg = "actor"
	return brigodier.Literal("perms").
		Requires(hasCmdPerm(permsCmdPermission)).
		Executes(command.Command(func(c *command.Context) error {
			subject, ok := c.Source.(effectiveSubject)
			if !ok {
				return c.SendMessage(&Text{
					S: Style{Color: Red}, Content: "Only tracked actors have a permission set."})
			}
			return c.SendMessage(permsList(subject))
		})).
		Then(brigodier.Argument(permsActorArg, brigodier.String).
			Suggests(actorSuggestionProvider(s)).
			Executes(command.Command(func(c *command.Context) error {
				if !c.Source.HasPermission(permsOtherCmdPermission) {
					return c.SendMessage(&Text{
						S: Style{Color: Red}, Content: "You are not allowed to inspect other actors."})
				}
				name := c.String(permsActorArg)
				subject, ok := s.ActorByName(name).(effectiveSubject)
				if !ok {
					return c.SendMessage(&Text{
						S: Style{Color: Red}, Content: fmt.Sprintf("Actor %q doesn't exist.", name)})
				}
				return c.SendMessage(permsList(subject))
			})),
		)
}

func permsList(a effectiveSubject) Component {
	perms := a.EffectivePermissions()
	extra := []Component{&Text{
		Content: fmt.Sprintf("%s (operator: %t) has %d effective permissions:",
			a.Name(), a.IsOp(), len(perms)),
		S: Style{Color: Yellow},
	}}
	for _, info := range perms {
		c := Red
		if info.Value {
			c = Green
		}
		extra = append(extra,
			&Text{Content: fmt.Sprintf("\n %s: %t", info.Name, info.Value), S: Style{Color: c}},
			&Text{Content: fmt.Sprintf(" (%s)", info.Source), S: Style{Color: Gray}},
		)
	}
	return &Text{Extra: extra}
}
