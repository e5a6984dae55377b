package stone

import (
	"fmt"

	"go.minekube.com/brigodier"
	. "go.minekube.com/common/minecraft/color"
	. "go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/command"
)

func newOpCmd(s *Server) brigodier.LiteralNodeBuilder {
	const opActorArg = "actor"
	return brigodier.Literal("op").
		Requires(hasCmdPerm(opCmdPermission)).
		Then(brigodier.Argument(opActorArg, brigodier.String).
			Suggests(actorSuggestionProvider(s)).
			Executes(command.Command(func(c *command.Context) error {
				return setOperator(s, c, c.String(opActorArg), true)
			})),
		)
}

func newDeopCmd(s *Server) brigodier.LiteralNodeBuilder {
	const deopActorArg = "actor"
	return brigodier.Literal("deop").
		Requires(hasCmdPerm(deopCmdPermission)).
		Then(brigodier.Argument(deopActorArg, brigodier.String).
			Suggests(actorSuggestionProvider(s)).
			Executes(command.Command(func(c *command.Context) error {
				return setOperator(s, c, c.String(deopActorArg), false)
			})),
		)
}

func setOperator(s *Server, c *command.Context, name string, op bool) error {
	a := s.ActorByName(name)
	if a == nil {
		return c.SendMessage(&Text{
			S: Style{Color: Red}, Content: fmt.Sprintf("Actor %q doesn't exist.", name)})
	}
	a.SetOp(op)
	verb := "Revoked operator status of"
	if op {
		verb = "Granted operator status to"
	}
	s.log.Info("Changed operator status", "actor", a.Name(), "op", op)
	return c.SendMessage(&Text{
		S: Style{Color: Yellow}, Content: fmt.Sprintf("%s %s.", verb, a.Name())})
}
